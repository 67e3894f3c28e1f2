package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/codec"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/value"
)

// roundTrip encodes i into a fresh buffer sized to its own ByteCount,
// decodes it back with a fresh Cursor over the same bytes, and asserts
// the result equals i and consumed exactly ByteCount() bytes.
func roundTrip(t *testing.T, i instr.Instruction) {
	t.Helper()
	buf := make([]byte, i.ByteCount())
	enc := bitcursor.New(buf)
	require.NoError(t, codec.Encode(enc, i, nil))
	assert.Equal(t, uint32(i.ByteCount()), enc.BytePos(), "encode did not consume exactly ByteCount bytes")

	dec := bitcursor.New(buf)
	got, err := codec.Decode(dec, nil)
	require.NoError(t, err)
	assert.Equal(t, i, got)
	assert.Equal(t, uint32(i.ByteCount()), dec.BytePos(), "decode did not consume exactly ByteCount bytes")
}

func TestRoundTrip_ControlFlow(t *testing.T) {
	roundTrip(t, instr.Fail{})
	roundTrip(t, instr.Succ{})
	roundTrip(t, instr.Ret{})
	roundTrip(t, instr.Jmp{Offset: 0x1234})
	roundTrip(t, instr.Jif{Offset: 0xFFFF})
	roundTrip(t, instr.Routine{Offset: 7})
	roundTrip(t, instr.Call{Site: reg.LibSite{Offset: 99, LibHash: [32]byte{1, 2, 3}}})
	roundTrip(t, instr.Exec{Site: reg.LibSite{Offset: 0}})
	roundTrip(t, instr.Nop{})
}

func TestRoundTrip_Put(t *testing.T) {
	roundTrip(t, instr.ZeroA{Family: reg.AFamily(3), Index: 17})
	roundTrip(t, instr.ZeroR{Family: reg.RFamily(5), Index: 2})
	roundTrip(t, instr.ClA{Family: reg.AFamily(0), Index: 31})
	roundTrip(t, instr.ClR{Family: reg.RFamily(7), Index: 0})
	roundTrip(t, instr.PutA{Family: reg.AFamily(0), Index: 1, Value: value.FromBytes([]byte{0x42})})
	roundTrip(t, instr.PutR{Family: reg.RFamily(0), Index: 1, Value: value.FromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})})
	roundTrip(t, instr.PutIfA{Family: reg.AFamily(0), Index: 2, Value: value.FromBytes([]byte{0xAA})})
	roundTrip(t, instr.PutIfR{Family: reg.RFamily(0), Index: 2, Value: value.FromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})})
}

func TestRoundTrip_Move(t *testing.T) {
	roundTrip(t, instr.SwpA{Family: reg.AFamily(1), IndexFirst: 3, IndexOther: 4})
	roundTrip(t, instr.SwpR{Family: reg.RFamily(1), IndexFirst: 3, IndexOther: 4})
	roundTrip(t, instr.SwpAR{FamilyA: reg.AFamily(2), IndexA: 5, FamilyR: reg.RFamily(2), IndexR: 6})
	roundTrip(t, instr.MovA{Family: reg.AFamily(0), IndexSrc: 0, IndexDst: 31})
	roundTrip(t, instr.MovR{Family: reg.RFamily(0), IndexSrc: 0, IndexDst: 31})
	roundTrip(t, instr.MovAR{FamilyA: reg.AFamily(4), IndexA: 9, FamilyR: reg.RFamily(4), IndexR: 10})
	roundTrip(t, instr.MovRA{FamilyR: reg.RFamily(3), IndexR: 11, FamilyA: reg.AFamily(3), IndexA: 12})
	roundTrip(t, instr.AMov{SrcFamily: reg.AFamily(0), DstFamily: reg.AFamily(7), NumType: reg.NumType(2)})
}

func TestRoundTrip_Compare(t *testing.T) {
	roundTrip(t, instr.Gt{Family: reg.AFamily(0), IndexFirst: 1, IndexOther: 2})
	roundTrip(t, instr.Lt{Family: reg.RFamily(0), IndexFirst: 1, IndexOther: 2})
	roundTrip(t, instr.EqA{Family: reg.AFamily(5), IndexFirst: 6, IndexOther: 7})
	roundTrip(t, instr.EqR{Family: reg.RFamily(5), IndexFirst: 6, IndexOther: 7})
	roundTrip(t, instr.Len{Family: reg.AFamily(1), Index: 8})
	roundTrip(t, instr.Cnt{Family: reg.AFamily(1), Index: 9})
	roundTrip(t, instr.St2A{})
	roundTrip(t, instr.A2St{})
}

func TestRoundTrip_Arithmetic(t *testing.T) {
	roundTrip(t, instr.Neg{Family: reg.AFamily(0), Index: 1})
	roundTrip(t, instr.Stp{Increment: true, Mode: reg.IntCheckedSigned, Family: reg.AFamily(2), Index: 3, Step: 9})
	roundTrip(t, instr.Stp{Increment: false, Mode: reg.FloatArbitraryPrecision, Family: reg.AFamily(0), Index: 0, Step: 0})
	roundTrip(t, instr.Add{Mode: reg.IntCheckedUnsigned, Family: reg.AFamily(1), Src1: 5, Src2: 6})
	roundTrip(t, instr.Sub{Mode: reg.IntUncheckedSigned, Family: reg.AFamily(1), Src1: 5, Src2: 6})
	roundTrip(t, instr.Mul{Mode: reg.IntArbitraryPrecisionUnsigned, Family: reg.AFamily(1), Src1: 5, Src2: 6})
	roundTrip(t, instr.Div{Mode: reg.Float, Family: reg.AFamily(1), Src1: 5, Src2: 6})
	roundTrip(t, instr.Mod{FamilySrc1: reg.AFamily(0), Src1: 1, FamilySrc2: reg.AFamily(1), Src2: 2, FamilyDst: reg.AFamily(2), Dst: 3})
	roundTrip(t, instr.Abs{Family: reg.AFamily(7), Index: 31})
}

func TestRoundTrip_Bitwise(t *testing.T) {
	roundTrip(t, instr.And{Family: reg.AFamily(0), Src1: 1, Src2: 2, Dst: reg.Reg8(3)})
	roundTrip(t, instr.Or{Family: reg.AFamily(0), Src1: 1, Src2: 2, Dst: reg.Reg8(3)})
	roundTrip(t, instr.Xor{Family: reg.AFamily(0), Src1: 1, Src2: 2, Dst: reg.Reg8(3)})
	roundTrip(t, instr.Shl{Family: reg.AFamily(1), Src1: 4, Src2: 5, Dst: reg.Reg8(6)})
	roundTrip(t, instr.Shr{Family: reg.AFamily(1), Src1: 4, Src2: 5, Dst: reg.Reg8(6)})
	roundTrip(t, instr.Scl{Family: reg.AFamily(1), Src1: 4, Src2: 5, Dst: reg.Reg8(6)})
	roundTrip(t, instr.Scr{Family: reg.AFamily(1), Src1: 4, Src2: 5, Dst: reg.Reg8(6)})
	roundTrip(t, instr.Not{Family: reg.AFamily(7), Index: 31})
}

func TestRoundTrip_Bytes(t *testing.T) {
	roundTrip(t, instr.BytesPut{Index: reg.SIndex(9), Blob: value.NewBlob([]byte("hello world"))})
	roundTrip(t, instr.BytesPut{Index: reg.SIndex(0), Blob: value.NewBlob(nil)})
	roundTrip(t, instr.BytesMov{Src: reg.SIndex(1), Dst: reg.SIndex(2)})
	roundTrip(t, instr.BytesSwp{First: reg.SIndex(1), Other: reg.SIndex(2)})
	roundTrip(t, instr.BytesFill{Index: reg.SIndex(3), From: 0, To: 10, Val: 0xFF})
	roundTrip(t, instr.BytesLenS{Index: reg.SIndex(4)})
	roundTrip(t, instr.BytesCount{Index: reg.SIndex(5), Byte: 0x00})
	roundTrip(t, instr.BytesCmp{First: reg.SIndex(6), Other: reg.SIndex(7)})
	roundTrip(t, instr.BytesComm{First: reg.SIndex(6), Other: reg.SIndex(7)})
	roundTrip(t, instr.BytesFind{Haystack: reg.SIndex(8), Needle: reg.SIndex(9)})
	roundTrip(t, instr.BytesExtrA{Dst: reg.RegA{Family: reg.AFamily(0), Index: 1}, Src: reg.SIndex(10), Offset: 256})
	roundTrip(t, instr.BytesExtrR{Dst: reg.RegR{Family: reg.RFamily(0), Index: 1}, Src: reg.SIndex(10), Offset: 256})
	roundTrip(t, instr.BytesJoin{Src1: reg.SIndex(1), Src2: reg.SIndex(2), Dst: reg.SIndex(3)})
	roundTrip(t, instr.BytesSplit{Src: reg.SIndex(1), Offset: 5, Dst1: reg.SIndex(2), Dst2: reg.SIndex(3)})
	roundTrip(t, instr.BytesIns{From: reg.SIndex(1), To: reg.SIndex(2), Offset: 5})
	roundTrip(t, instr.BytesDel{Index: reg.SIndex(1), From: 2, To: 9})
	roundTrip(t, instr.BytesTransl{Src: reg.SIndex(1), From: 2, To: 9, Dst: reg.SIndex(3)})
}

func TestRoundTrip_Digest(t *testing.T) {
	mk := func(clear bool) instr.DigestRipemd {
		d := instr.DigestRipemd{}
		d.SrcOffset, d.Src, d.Dst, d.Clear = 3, 7, reg.RegR{Family: reg.RFamily(0), Index: 1}, clear
		return d
	}
	roundTrip(t, mk(true))
	roundTrip(t, mk(false))

	s2 := instr.DigestSha2{}
	s2.SrcOffset, s2.Src, s2.Dst, s2.Clear = 0, 0, reg.RegR{Family: reg.RFamily(7), Index: 31}, true
	roundTrip(t, s2)

	s3 := instr.DigestSha3{}
	s3.SrcOffset, s3.Src, s3.Dst, s3.Clear = 31, 31, reg.RegR{Family: reg.RFamily(3), Index: 15}, false
	roundTrip(t, s3)

	b3 := instr.DigestBlake3{}
	b3.SrcOffset, b3.Src, b3.Dst, b3.Clear = 1, 1, reg.RegR{Family: reg.RFamily(1), Index: 1}, true
	roundTrip(t, b3)
}

func TestRoundTrip_Secp256k1(t *testing.T) {
	roundTrip(t, instr.SecpGen{Scalar: 3, Dst: reg.Reg8(5)})
	roundTrip(t, instr.SecpNeg{Point: 4, Dst: reg.Reg8(6)})
	roundTrip(t, instr.SecpMul{ScalarIsA: true, Scalar: 1, Point: 2, Dst: 3})
	roundTrip(t, instr.SecpMul{ScalarIsA: false, Scalar: 31, Point: 31, Dst: 31})
	roundTrip(t, instr.SecpAdd{AllowOverflow: true, Src1: 1, Src2: 2, Src3: 3})
	roundTrip(t, instr.SecpAdd{AllowOverflow: false, Src1: 31, Src2: 31, Src3: 31})
}

func TestRoundTrip_Curve25519(t *testing.T) {
	roundTrip(t, instr.EdGen{Scalar: 3, Dst: reg.Reg8(5)})
	roundTrip(t, instr.EdNeg{Point: 4, Dst: reg.Reg8(6)})
	roundTrip(t, instr.EdMul{ScalarIsA: true, Scalar: 1, Point: 2, Dst: 3})
	roundTrip(t, instr.EdAdd{AllowOverflow: false, Src1: 31, Src2: 31, Src3: 31})
}

func TestDecode_UnassignedOpcodeFails(t *testing.T) {
	buf := []byte{0x44} // between DigestBlake3 (0x43) and SecpGen (0x48)
	_, err := codec.Decode(bitcursor.New(buf), nil)
	require.Error(t, err)
	var unsupported *codec.UnsupportedInstruction
	assert.ErrorAs(t, err, &unsupported)
}

func TestEncode_HostOpcodeWithoutRegistryFails(t *testing.T) {
	// instr.Instruction stub whose Opcode() falls in the host window but
	// has no registered host.Extension; Encode must reject it rather
	// than silently writing a truncated instruction.
	err := codec.Encode(bitcursor.New(make([]byte, 4)), hostStub{}, nil)
	require.Error(t, err)
}

type hostStub struct{}

func (hostStub) Opcode() byte      { return 0x80 }
func (hostStub) ByteCount() uint16 { return 1 }
