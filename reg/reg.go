// Package reg defines ALU-VM register identifiers: the family tags and
// slot indices spec.md §3 describes, encoded the way
// bassosimone-risc32's instruction encoder packs register fields into
// bit-width-tagged integers (there: raw `uint32` shifts; here: a typed
// family/index pair with a Width() accessor instead of magic numbers).
package reg

import "fmt"

// AWidths lists the eight bit widths addressable by the A (arithmetic)
// family's 3-bit family tag, in tag order (spec.md §3).
var AWidths = [8]int{8, 16, 32, 64, 128, 256, 512, 1024}

// RWidths lists the eight bit widths addressable by the R
// (non-arithmetic) family's 3-bit family tag, in tag order (spec.md §3).
var RWidths = [8]int{128, 160, 256, 512, 1024, 2048, 4096, 8192}

// AFamily is a 3-bit tag selecting one of the eight A register widths.
type AFamily uint8

// RFamily is a 3-bit tag selecting one of the eight R register widths.
type RFamily uint8

// Width returns the bit width this A family tag addresses.
func (f AFamily) Width() int {
	if int(f) >= len(AWidths) {
		panic(fmt.Sprintf("reg: invalid A family tag %d", f))
	}
	return AWidths[f]
}

// Width returns the bit width this R family tag addresses.
func (f RFamily) Width() int {
	if int(f) >= len(RWidths) {
		panic(fmt.Sprintf("reg: invalid R family tag %d", f))
	}
	return RWidths[f]
}

// WidestAFamily is the A family tag for the 1024-bit width, the
// conventional arbitrary-precision destination (spec.md §9).
const WidestAFamily AFamily = 7

// WidestRFamily is the R family tag for the 8192-bit width.
const WidestRFamily RFamily = 7

// APIndex is the reserved arbitrary-precision destination slot within
// WidestAFamily, per spec.md §9's design note: arithmetic modes that
// widen rather than trap write here instead of needing a third operand
// in the wire format.
const APIndex Reg32 = 31

// Reg32 is a 5-bit index into a 32-slot register family (A or R).
type Reg32 uint8

// Reg8 is a 3-bit index restricting destination to the first 8 slots
// of a family, used where spec.md names a narrower destination field.
type Reg8 uint8

// MaxReg32 is the largest valid Reg32 value.
const MaxReg32 = 31

// MaxReg8 is the largest valid Reg8 value.
const MaxReg8 = 7

// RegA is a fully-qualified arithmetic register reference.
type RegA struct {
	Family AFamily
	Index  Reg32
}

// Width returns the bit width of this register.
func (r RegA) Width() int { return r.Family.Width() }

// RegR is a fully-qualified non-arithmetic register reference.
type RegR struct {
	Family RFamily
	Index  Reg32
}

// Width returns the bit width of this register.
func (r RegR) Width() int { return r.Family.Width() }

// SIndex addresses one of the 256 S (string) register slots.
type SIndex uint8

// LibSite is a content-addressed location inside a specific library:
// a 16-bit offset plus the library's 32-byte hash (spec.md §6).
type LibSite struct {
	Offset  uint16
	LibHash [32]byte
}

// NumType tags how AMov (spec.md §4.3.3) reinterprets a register's raw
// bytes when copying between A families of different widths.
type NumType uint8

const (
	NumUnsigned NumType = iota
	NumSigned
	NumFloat23
	NumFloat52
)

func (n NumType) String() string {
	switch n {
	case NumUnsigned:
		return "Unsigned"
	case NumSigned:
		return "Signed"
	case NumFloat23:
		return "Float23"
	case NumFloat52:
		return "Float52"
	default:
		return "?unknown?"
	}
}

// ArithmeticMode is the 3-bit `ar` field of spec.md §4.3.5: eight values,
// six of them the signed/unsigned pairing of IntChecked, IntUnchecked,
// and IntArbitraryPrecision, the remaining two the two float modes
// (floats carry their own sign bit, so they have no unsigned variant).
// Checked integer ops trap to st0=false on overflow; unchecked ops wrap
// at the register width; arbitrary-precision ops widen into reg.APIndex
// instead of either.
type ArithmeticMode uint8

const (
	IntCheckedUnsigned ArithmeticMode = iota
	IntCheckedSigned
	IntUncheckedUnsigned
	IntUncheckedSigned
	IntArbitraryPrecisionUnsigned
	IntArbitraryPrecisionSigned
	Float
	FloatArbitraryPrecision
)

func (m ArithmeticMode) String() string {
	switch m {
	case IntCheckedUnsigned:
		return "IntCheckedUnsigned"
	case IntCheckedSigned:
		return "IntCheckedSigned"
	case IntUncheckedUnsigned:
		return "IntUncheckedUnsigned"
	case IntUncheckedSigned:
		return "IntUncheckedSigned"
	case IntArbitraryPrecisionUnsigned:
		return "IntArbitraryPrecisionUnsigned"
	case IntArbitraryPrecisionSigned:
		return "IntArbitraryPrecisionSigned"
	case Float:
		return "Float"
	case FloatArbitraryPrecision:
		return "FloatArbitraryPrecision"
	default:
		return "?unknown?"
	}
}

// Signed reports whether m operates on signed operands. Float modes are
// always signed.
func (m ArithmeticMode) Signed() bool {
	switch m {
	case IntCheckedSigned, IntUncheckedSigned, IntArbitraryPrecisionSigned, Float, FloatArbitraryPrecision:
		return true
	default:
		return false
	}
}

// ArbitraryPrecision reports whether m widens its result into APIndex
// instead of trapping or wrapping.
func (m ArithmeticMode) ArbitraryPrecision() bool {
	switch m {
	case IntArbitraryPrecisionUnsigned, IntArbitraryPrecisionSigned, FloatArbitraryPrecision:
		return true
	default:
		return false
	}
}
