package exec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/codec"
	"github.com/aluvm-go/aluvm/exec"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/value"
)

// assemble encodes is back-to-back into one library's bytecode.
func assemble(t *testing.T, is ...instr.Instruction) []byte {
	t.Helper()
	buf := make([]byte, 0, 64)
	for _, i := range is {
		buf = append(buf, make([]byte, i.ByteCount())...)
	}
	c := bitcursor.New(buf)
	for _, i := range is {
		require.NoError(t, codec.Encode(c, i, nil))
	}
	return buf
}

func newVM(t *testing.T, code []byte) *exec.VM {
	t.Helper()
	var lib [32]byte
	lib[0] = 1
	vm := exec.New(lib, map[[32]byte][]byte{lib: code}, nil)
	return vm
}

// Scenario A: [Succ] -> st0 = true.
func TestRun_Succ(t *testing.T) {
	vm := newVM(t, assemble(t, instr.Succ{}))
	ok, err := vm.Run()
	require.NoError(t, err)
	assert.True(t, ok)
}

// Scenario B: [Fail] -> st0 = false.
func TestRun_Fail(t *testing.T) {
	vm := newVM(t, assemble(t, instr.Fail{}))
	ok, err := vm.Run()
	require.NoError(t, err)
	assert.False(t, ok)
}

// Scenario C: an unconditional jump back to its own offset with no
// limiter loops until cy0 overflows, forcing st0=false.
func TestRun_JmpSelfLoopOverflowsCy0(t *testing.T) {
	vm := newVM(t, assemble(t, instr.Jmp{Offset: 0}))
	ok, err := vm.Run()
	require.NoError(t, err)
	assert.False(t, ok)
}

// Scenario D: Add under IntCheckedUnsigned proves the sum lands in
// src2, then EqA confirms it.
func TestRun_AddThenEqA(t *testing.T) {
	code := assemble(t,
		instr.PutA{Family: 2, Index: 0, Value: value.FromBytes([]byte{2, 0, 0, 0})},
		instr.PutA{Family: 2, Index: 1, Value: value.FromBytes([]byte{3, 0, 0, 0})},
		instr.Add{Mode: reg.IntCheckedUnsigned, Family: 2, Src1: 0, Src2: 1},
		instr.PutA{Family: 2, Index: 2, Value: value.FromBytes([]byte{5, 0, 0, 0})},
		instr.EqA{Family: 2, IndexFirst: 1, IndexOther: 2},
		instr.Succ{},
	)
	vm := newVM(t, code)
	ok, err := vm.Run()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, vm.Regs.St0)
}

// Scenario E: Stp wraps under IntUnchecked but traps under IntChecked.
func TestRun_StpWrapVsTrap(t *testing.T) {
	unchecked := assemble(t,
		instr.PutA{Family: 0, Index: 0, Value: value.FromBytes([]byte{0xFE})},
		instr.Stp{Increment: true, Mode: reg.IntUncheckedUnsigned, Family: 0, Index: 0, Step: 4},
		instr.Succ{},
	)
	vm := newVM(t, unchecked)
	ok, err := vm.Run()
	require.NoError(t, err)
	assert.True(t, ok)
	got, present := vm.Regs.GetA(0, 0)
	require.True(t, present)
	assert.Equal(t, []byte{2}, got.Bytes()) // 0xFE + 4 = 0x102, wraps to 0x02

	checked := assemble(t,
		instr.PutA{Family: 0, Index: 0, Value: value.FromBytes([]byte{0xFE})},
		instr.Stp{Increment: true, Mode: reg.IntCheckedUnsigned, Family: 0, Index: 0, Step: 4},
		instr.Succ{},
	)
	vm2 := newVM(t, checked)
	ok2, err2 := vm2.Run()
	require.NoError(t, err2)
	assert.False(t, ok2) // traps before reaching Succ
}

// Scenario F: Routine jumps straight to Ret, skipping over Succ; Ret
// then pops the return site Routine pushed — the address immediately
// following the Routine instruction, which is Succ's — and falls
// through there. Layout: [Routine(ofs=Ret), Succ, Ret, Fail]. Fail is
// never reached, exercising cs0 push/pop without touching cp0.
func TestRun_RoutineFallsThroughAfterRet(t *testing.T) {
	routine := instr.Routine{}
	succ := instr.Succ{}
	ret := instr.Ret{}
	fail := instr.Fail{}

	routine.Offset = uint16(routine.ByteCount() + succ.ByteCount())
	code := assemble(t, routine, succ, ret, fail)

	vm := newVM(t, code)
	ok, err := vm.Run()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint16(1), vm.Regs.Cy0)
	assert.Equal(t, uint16(0), vm.Regs.Cp0)
}

// stepN runs vm exactly n steps, for inspecting state before any
// Succ/Fail/end-of-code condition would force st0 one way or the
// other.
func stepN(t *testing.T, vm *exec.VM, n int) {
	t.Helper()
	for j := 0; j < n; j++ {
		_, err := vm.Step()
		require.NoError(t, err)
	}
}

// St2A/A2St: st0 is a literal a8[0]==1 comparison, not a nonzero test.
func TestRun_St2A_LiteralOneComparison(t *testing.T) {
	cases := []struct {
		name string
		flag byte
		want bool
	}{
		{"zero", 0, false},
		{"one", 1, true},
		{"two", 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := assemble(t,
				instr.PutA{Family: 0, Index: 0, Value: value.FromBytes([]byte{tc.flag})},
				instr.St2A{},
			)
			vm := newVM(t, code)
			stepN(t, vm, 2)
			assert.Equal(t, tc.want, vm.Regs.St0)
		})
	}
}

func TestRun_St2A_UninitializedIsFalse(t *testing.T) {
	code := assemble(t, instr.St2A{})
	vm := newVM(t, code)
	stepN(t, vm, 1)
	assert.False(t, vm.Regs.St0)
}

func TestRun_A2St_WritesLiteralOne(t *testing.T) {
	// EqA of two equal a registers sets st0=true without stopping
	// execution, unlike Succ/Fail.
	code := assemble(t,
		instr.PutA{Family: 2, Index: 0, Value: value.FromBytes([]byte{9, 0, 0, 0})},
		instr.PutA{Family: 2, Index: 1, Value: value.FromBytes([]byte{9, 0, 0, 0})},
		instr.EqA{Family: 2, IndexFirst: 0, IndexOther: 1},
		instr.A2St{},
	)
	vm := newVM(t, code)
	stepN(t, vm, 4)
	got, present := vm.Regs.GetA(0, 0)
	require.True(t, present)
	assert.Equal(t, []byte{1}, got.Bytes())
}

// BytesComm/BytesFind write numeric results to a16[0], per
// original_source/src/instruction.rs's Common/Find documentation, not
// a boolean st0.
func TestRun_BytesComm_WritesCommonPrefixLength(t *testing.T) {
	code := assemble(t,
		instr.BytesPut{Index: 0, Blob: value.NewBlob([]byte("hello"))},
		instr.BytesPut{Index: 1, Blob: value.NewBlob([]byte("help"))},
		instr.BytesComm{First: 0, Other: 1},
	)
	vm := newVM(t, code)
	stepN(t, vm, 3)
	got, present := vm.Regs.GetA(1, 0) // a16 family
	require.True(t, present)
	assert.Equal(t, uint64(3), got.ToBigIntUnsigned().Uint64())
}

func TestRun_BytesFind_WritesOccurrenceCount(t *testing.T) {
	code := assemble(t,
		instr.BytesPut{Index: 0, Blob: value.NewBlob([]byte("abcabcabc"))},
		instr.BytesPut{Index: 1, Blob: value.NewBlob([]byte("abc"))},
		instr.BytesFind{Haystack: 0, Needle: 1},
	)
	vm := newVM(t, code)
	stepN(t, vm, 3)
	got, present := vm.Regs.GetA(1, 0) // a16 family
	require.True(t, present)
	assert.Equal(t, uint64(3), got.ToBigIntUnsigned().Uint64())
}

func TestRun_MissingLibraryErrors(t *testing.T) {
	var entry, other [32]byte
	entry[0], other[0] = 1, 2
	vm := exec.New(entry, map[[32]byte][]byte{other: assemble(t, instr.Succ{})}, nil)
	_, err := vm.Run()
	assert.Error(t, err)
}

func TestRun_CallAndRetSwitchLibraries(t *testing.T) {
	var entry, callee [32]byte
	entry[0], callee[0] = 1, 2

	callCode := assemble(t, instr.Call{Site: reg.LibSite{LibHash: callee, Offset: 0}}, instr.Succ{})
	calleeCode := assemble(t, instr.Ret{})

	vm := exec.New(entry, map[[32]byte][]byte{entry: callCode, callee: calleeCode}, nil)
	ok, err := vm.Run()
	require.NoError(t, err)
	assert.True(t, ok)
}
