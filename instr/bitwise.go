package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// And sets a8[dst] := src1 & src2 (bit patterns of the given A family).
type And struct {
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
	Dst    reg.Reg8
}

func (And) Opcode() byte      { return opcode.And }
func (And) ByteCount() uint16 { return 3 }

// Or sets dst := src1 | src2.
type Or struct {
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
	Dst    reg.Reg8
}

func (Or) Opcode() byte      { return opcode.Or }
func (Or) ByteCount() uint16 { return 3 }

// Xor sets dst := src1 ^ src2.
type Xor struct {
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
	Dst    reg.Reg8
}

func (Xor) Opcode() byte      { return opcode.Xor }
func (Xor) ByteCount() uint16 { return 3 }

// Shl sets dst := src1 << shift, zero-filling. The shift amount is read
// from a8[Src2], per spec.md §4.3.6, not taken as an immediate.
type Shl struct {
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
	Dst    reg.Reg8
}

func (Shl) Opcode() byte      { return opcode.Shl }
func (Shl) ByteCount() uint16 { return 3 }

// Shr sets dst := src1 >> shift, zero-filling. The shift amount is read
// from a8[Src2].
type Shr struct {
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
	Dst    reg.Reg8
}

func (Shr) Opcode() byte      { return opcode.Shr }
func (Shr) ByteCount() uint16 { return 3 }

// Scl rotates src1 left by the amount in a8[Src2] into dst.
type Scl struct {
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
	Dst    reg.Reg8
}

func (Scl) Opcode() byte      { return opcode.Scl }
func (Scl) ByteCount() uint16 { return 3 }

// Scr rotates src1 right by the amount in a8[Src2] into dst.
type Scr struct {
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
	Dst    reg.Reg8
}

func (Scr) Opcode() byte      { return opcode.Scr }
func (Scr) ByteCount() uint16 { return 3 }

// Not complements an A register's bits in place.
type Not struct {
	Family reg.AFamily
	Index  reg.Reg32
}

func (Not) Opcode() byte      { return opcode.Not }
func (Not) ByteCount() uint16 { return 2 }
