package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// Neg flips an A register's sign bit in place. spec.md §4.3.5 gives it
// no arithmetic-mode field: sign-bit flip is mode-independent.
type Neg struct {
	Family reg.AFamily
	Index  reg.Reg32
}

func (Neg) Opcode() byte      { return opcode.Neg }
func (Neg) ByteCount() uint16 { return 2 }

// Stp steps an A register by Step (a 4-bit magnitude) under Mode, in
// the direction Increment selects.
type Stp struct {
	Increment bool
	Mode      reg.ArithmeticMode
	Family    reg.AFamily
	Index     reg.Reg32
	Step      uint8 // 4-bit magnitude, 0-15
}

func (Stp) Opcode() byte      { return opcode.Stp }
func (Stp) ByteCount() uint16 { return 3 }

// Add sets src2 := src1 + src2 under Mode; spec.md §4.3.5 fixes the
// destination to the second source slot rather than naming one
// separately.
type Add struct {
	Mode   reg.ArithmeticMode
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
}

func (Add) Opcode() byte      { return opcode.Add }
func (Add) ByteCount() uint16 { return 3 }

// Sub sets src2 := src1 - src2 under Mode.
type Sub struct {
	Mode   reg.ArithmeticMode
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
}

func (Sub) Opcode() byte      { return opcode.Sub }
func (Sub) ByteCount() uint16 { return 3 }

// Mul sets src2 := src1 * src2 under Mode.
type Mul struct {
	Mode   reg.ArithmeticMode
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
}

func (Mul) Opcode() byte      { return opcode.Mul }
func (Mul) ByteCount() uint16 { return 3 }

// Div sets src2 := src1 / src2 under Mode; division by zero sets
// st0=false regardless of Mode.
type Div struct {
	Mode   reg.ArithmeticMode
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
}

func (Div) Opcode() byte      { return opcode.Div }
func (Div) ByteCount() uint16 { return 3 }

// Mod computes Dst := Src1 mod Src2. Unlike Add/Sub/Mul/Div, spec.md
// §4.3.5 gives Mod three independent (family, index) register refs and
// no arithmetic-mode field.
type Mod struct {
	FamilySrc1 reg.AFamily
	Src1       reg.Reg32
	FamilySrc2 reg.AFamily
	Src2       reg.Reg32
	FamilyDst  reg.AFamily
	Dst        reg.Reg32
}

func (Mod) Opcode() byte      { return opcode.Mod }
func (Mod) ByteCount() uint16 { return 4 }

// Abs replaces an A register with its absolute value in place; no
// arithmetic-mode field, matching Neg.
type Abs struct {
	Family reg.AFamily
	Index  reg.Reg32
}

func (Abs) Opcode() byte      { return opcode.Abs }
func (Abs) ByteCount() uint16 { return 2 }
