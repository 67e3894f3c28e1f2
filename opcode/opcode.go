// Package opcode defines the ALU-VM's single 8-bit opcode namespace
// (spec.md §4.2): one disjoint contiguous range per instruction
// category, a fixed dispatch order, and the host-extension window.
// Grounded on arm-emulator's vm/constants.go convention of grouping
// related constants into banner-commented blocks.
package opcode

// Category identifies one of the disjoint instruction-category opcode
// ranges, in the fixed order the decoder tests them.
type Category int

const (
	CategoryControlFlow Category = iota
	CategoryPut
	CategoryMove
	CategoryCompare
	CategoryArithmetic
	CategoryBitwise
	CategoryBytes
	CategoryDigest
	CategorySecp256k1
	CategoryCurve25519
	CategoryHost
	CategoryNop
)

// Range is an inclusive [Low, High] byte range.
type Range struct {
	Low, High byte
}

// Contains reports whether op falls within the range.
func (r Range) Contains(op byte) bool {
	return op >= r.Low && op <= r.High
}

// ============================================================================
// Control-flow category (spec.md §4.3.1)
// ============================================================================
const (
	Fail byte = 0x00 + iota
	Succ
	Jmp
	Jif
	Routine
	Call
	Exec
	Ret
)

// ControlFlowRange spans Fail..Ret.
var ControlFlowRange = Range{Fail, Ret}

// ============================================================================
// Put category (spec.md §4.3.2)
// ============================================================================
const (
	ZeroA byte = 0x08 + iota
	ZeroR
	ClA
	ClR
	PutA
	PutR
	PutIfA
	PutIfR
)

// PutRange spans ZeroA..PutIfR.
var PutRange = Range{ZeroA, PutIfR}

// ============================================================================
// Move category (spec.md §4.3.3)
// ============================================================================
const (
	SwpA byte = 0x10 + iota
	SwpR
	SwpAR
	MovA
	MovR
	MovAR
	MovRA
	AMov
)

// MoveRange spans SwpA..AMov.
var MoveRange = Range{SwpA, AMov}

// ============================================================================
// Compare category (spec.md §4.3.4)
// ============================================================================
const (
	Gt byte = 0x18 + iota
	Lt
	EqA
	EqR
	Len
	Cnt
	St2A
	A2St
)

// CompareRange spans Gt..A2St.
var CompareRange = Range{Gt, A2St}

// ============================================================================
// Arithmetic category (spec.md §4.3.5)
// ============================================================================
const (
	Neg byte = 0x20 + iota
	Stp
	Add
	Sub
	Mul
	Div
	Mod
	Abs
)

// ArithmeticRange spans Neg..Abs.
var ArithmeticRange = Range{Neg, Abs}

// ============================================================================
// Bitwise category (spec.md §4.3.6)
// ============================================================================
const (
	And byte = 0x28 + iota
	Or
	Xor
	Shl
	Shr
	Scl
	Scr
	Not
)

// BitwiseRange spans And..Not.
var BitwiseRange = Range{And, Not}

// ============================================================================
// Bytes category (spec.md §4.3.7)
// ============================================================================
const (
	BytesPut byte = 0x30 + iota
	BytesMov
	BytesSwp
	BytesFill
	BytesLenS
	BytesCount
	BytesCmp
	BytesComm
	BytesFind
	BytesExtrA
	BytesExtrR
	BytesJoin
	BytesSplit
	BytesIns
	BytesDel
	BytesTransl
)

// BytesRange spans BytesPut..BytesTransl.
var BytesRange = Range{BytesPut, BytesTransl}

// ============================================================================
// Digest category (spec.md §4.3.8) — opaque argument layouts only
// ============================================================================
const (
	DigestRipemd byte = 0x40 + iota
	DigestSha2
	DigestSha3
	DigestBlake3
)

// DigestRange spans DigestRipemd..DigestBlake3.
var DigestRange = Range{DigestRipemd, DigestBlake3}

// ============================================================================
// secp256k1 category (spec.md §4.3.8) — opaque argument layouts only
// ============================================================================
const (
	SecpGen byte = 0x48 + iota
	SecpMul
	SecpAdd
	SecpNeg
)

// Secp256k1Range spans SecpGen..SecpNeg.
var Secp256k1Range = Range{SecpGen, SecpNeg}

// ============================================================================
// curve25519 category (spec.md §4.3.8) — opaque argument layouts only
// ============================================================================
const (
	EdGen byte = 0x4C + iota
	EdMul
	EdAdd
	EdNeg
)

// Curve25519Range spans EdGen..EdNeg.
var Curve25519Range = Range{EdGen, EdNeg}

// ============================================================================
// Host extension window and NOP sentinel
// ============================================================================

// HostWindow is the range unassigned core opcodes may be claimed from by
// a registered host.Extension, per spec.md §4.2.
var HostWindow = Range{0x80, 0xBF}

// Nop is the sentinel no-operation opcode.
const Nop byte = 0xFF

// coreRanges lists every core category's range in the fixed dispatch
// order the decoder tests them in (spec.md §4.2: "the chosen order is
// stable and documented so future assignments never shadow existing
// ones").
var coreRanges = []struct {
	Category Category
	Range    Range
}{
	{CategoryControlFlow, ControlFlowRange},
	{CategoryPut, PutRange},
	{CategoryMove, MoveRange},
	{CategoryCompare, CompareRange},
	{CategoryArithmetic, ArithmeticRange},
	{CategoryBitwise, BitwiseRange},
	{CategoryBytes, BytesRange},
	{CategoryDigest, DigestRange},
	{CategorySecp256k1, Secp256k1Range},
	{CategoryCurve25519, Curve25519Range},
}

// Classify returns the core category owning op, CategoryHost if op falls
// in HostWindow, CategoryNop for the sentinel, or false if op is
// unassigned.
func Classify(op byte) (Category, bool) {
	if op == Nop {
		return CategoryNop, true
	}
	for _, c := range coreRanges {
		if c.Range.Contains(op) {
			return c.Category, true
		}
	}
	if HostWindow.Contains(op) {
		return CategoryHost, true
	}
	return 0, false
}

// AllCoreRanges returns every core category's range, for disjointness
// testing.
func AllCoreRanges() []Range {
	out := make([]Range, 0, len(coreRanges))
	for _, c := range coreRanges {
		out = append(out, c.Range)
	}
	return out
}
