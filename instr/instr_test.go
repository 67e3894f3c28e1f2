package instr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/value"
)

func TestOpcodeAndByteCount(t *testing.T) {
	cases := []struct {
		name        string
		instruction instr.Instruction
		wantOpcode  byte
		wantBytes   uint16
	}{
		{"Fail", instr.Fail{}, opcode.Fail, 1},
		{"Succ", instr.Succ{}, opcode.Succ, 1},
		{"Jmp", instr.Jmp{Offset: 10}, opcode.Jmp, 3},
		{"Jif", instr.Jif{Offset: 10}, opcode.Jif, 3},
		{"Routine", instr.Routine{Offset: 10}, opcode.Routine, 3},
		{"Call", instr.Call{Site: reg.LibSite{Offset: 1}}, opcode.Call, 35},
		{"Exec", instr.Exec{Site: reg.LibSite{Offset: 1}}, opcode.Exec, 35},
		{"Ret", instr.Ret{}, opcode.Ret, 1},
		{"Nop", instr.Nop{}, opcode.Nop, 1},

		{"ZeroA", instr.ZeroA{}, opcode.ZeroA, 2},
		{"ZeroR", instr.ZeroR{}, opcode.ZeroR, 2},
		{"ClA", instr.ClA{}, opcode.ClA, 2},
		{"ClR", instr.ClR{}, opcode.ClR, 2},
		{"PutA/a8", instr.PutA{Family: 0, Value: value.Zero(8)}, opcode.PutA, 3},
		{"PutA/a1024", instr.PutA{Family: reg.WidestAFamily, Value: value.Zero(1024)}, opcode.PutA, 2 + 128},
		{"PutR", instr.PutR{Family: 0, Value: value.Zero(128)}, opcode.PutR, 2 + 16},
		{"PutIfA", instr.PutIfA{Family: 0, Value: value.Zero(8)}, opcode.PutIfA, 3},
		{"PutIfR", instr.PutIfR{Family: 0, Value: value.Zero(128)}, opcode.PutIfR, 2 + 16},

		{"SwpA", instr.SwpA{}, opcode.SwpA, 3},
		{"SwpR", instr.SwpR{}, opcode.SwpR, 3},
		{"SwpAR", instr.SwpAR{}, opcode.SwpAR, 3},
		{"MovA", instr.MovA{}, opcode.MovA, 3},
		{"MovR", instr.MovR{}, opcode.MovR, 3},
		{"MovAR", instr.MovAR{}, opcode.MovAR, 3},
		{"MovRA", instr.MovRA{}, opcode.MovRA, 3},
		{"AMov", instr.AMov{}, opcode.AMov, 2},

		{"Gt", instr.Gt{}, opcode.Gt, 3},
		{"Lt", instr.Lt{}, opcode.Lt, 3},
		{"EqA", instr.EqA{}, opcode.EqA, 3},
		{"EqR", instr.EqR{}, opcode.EqR, 3},
		{"Len", instr.Len{}, opcode.Len, 2},
		{"Cnt", instr.Cnt{}, opcode.Cnt, 2},
		{"St2A", instr.St2A{}, opcode.St2A, 1},
		{"A2St", instr.A2St{}, opcode.A2St, 1},

		{"Neg", instr.Neg{}, opcode.Neg, 2},
		{"Stp", instr.Stp{}, opcode.Stp, 3},
		{"Add", instr.Add{}, opcode.Add, 3},
		{"Sub", instr.Sub{}, opcode.Sub, 3},
		{"Mul", instr.Mul{}, opcode.Mul, 3},
		{"Div", instr.Div{}, opcode.Div, 3},
		{"Mod", instr.Mod{}, opcode.Mod, 4},
		{"Abs", instr.Abs{}, opcode.Abs, 2},

		{"And", instr.And{}, opcode.And, 3},
		{"Or", instr.Or{}, opcode.Or, 3},
		{"Xor", instr.Xor{}, opcode.Xor, 3},
		{"Shl", instr.Shl{}, opcode.Shl, 3},
		{"Shr", instr.Shr{}, opcode.Shr, 3},
		{"Scl", instr.Scl{}, opcode.Scl, 3},
		{"Scr", instr.Scr{}, opcode.Scr, 3},
		{"Not", instr.Not{}, opcode.Not, 2},

		{"BytesPut", instr.BytesPut{Blob: value.NewBlob([]byte("hi"))}, opcode.BytesPut, 6},
		{"BytesMov", instr.BytesMov{}, opcode.BytesMov, 3},
		{"BytesSwp", instr.BytesSwp{}, opcode.BytesSwp, 3},
		{"BytesFill", instr.BytesFill{}, opcode.BytesFill, 7},
		{"BytesLenS", instr.BytesLenS{}, opcode.BytesLenS, 2},
		{"BytesCount", instr.BytesCount{}, opcode.BytesCount, 3},
		{"BytesCmp", instr.BytesCmp{}, opcode.BytesCmp, 3},
		{"BytesComm", instr.BytesComm{}, opcode.BytesComm, 3},
		{"BytesFind", instr.BytesFind{}, opcode.BytesFind, 3},
		{"BytesExtrA", instr.BytesExtrA{}, opcode.BytesExtrA, 5},
		{"BytesExtrR", instr.BytesExtrR{}, opcode.BytesExtrR, 5},
		{"BytesJoin", instr.BytesJoin{}, opcode.BytesJoin, 4},
		{"BytesSplit", instr.BytesSplit{}, opcode.BytesSplit, 6},
		{"BytesIns", instr.BytesIns{}, opcode.BytesIns, 5},
		{"BytesDel", instr.BytesDel{}, opcode.BytesDel, 6},
		{"BytesTransl", instr.BytesTransl{}, opcode.BytesTransl, 7},

		{"DigestRipemd", instr.DigestRipemd{}, opcode.DigestRipemd, 4},
		{"DigestSha2", instr.DigestSha2{}, opcode.DigestSha2, 4},
		{"DigestSha3", instr.DigestSha3{}, opcode.DigestSha3, 4},
		{"DigestBlake3", instr.DigestBlake3{}, opcode.DigestBlake3, 4},

		{"SecpGen", instr.SecpGen{}, opcode.SecpGen, 2},
		{"SecpMul", instr.SecpMul{}, opcode.SecpMul, 4},
		{"SecpAdd", instr.SecpAdd{}, opcode.SecpAdd, 4},
		{"SecpNeg", instr.SecpNeg{}, opcode.SecpNeg, 2},

		{"EdGen", instr.EdGen{}, opcode.EdGen, 2},
		{"EdMul", instr.EdMul{}, opcode.EdMul, 4},
		{"EdAdd", instr.EdAdd{}, opcode.EdAdd, 4},
		{"EdNeg", instr.EdNeg{}, opcode.EdNeg, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOpcode, tc.instruction.Opcode())
			assert.Equal(t, tc.wantBytes, tc.instruction.ByteCount())
		})
	}
}

func TestGtLtFamilyAsymmetry(t *testing.T) {
	// spec.md §4.3.4: Gt compares A registers, Lt compares R registers.
	// Preserved verbatim rather than "fixed" into a symmetric pair.
	gt := instr.Gt{Family: reg.WidestAFamily, IndexFirst: 1, IndexOther: 2}
	lt := instr.Lt{Family: reg.WidestRFamily, IndexFirst: 1, IndexOther: 2}
	assert.Equal(t, reg.WidestAFamily, gt.Family)
	assert.Equal(t, reg.WidestRFamily, lt.Family)
}
