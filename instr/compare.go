package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// Gt compares two A registers of the same family and sets
// st0 = (first > other). spec.md §4.3.4 notes this asymmetry: Gt
// operates on A, Lt operates on R.
type Gt struct {
	Family     reg.AFamily
	IndexFirst reg.Reg32
	IndexOther reg.Reg32
}

func (Gt) Opcode() byte      { return opcode.Gt }
func (Gt) ByteCount() uint16 { return 3 }

// Lt compares two R registers of the same family and sets
// st0 = (first < other).
type Lt struct {
	Family     reg.RFamily
	IndexFirst reg.Reg32
	IndexOther reg.Reg32
}

func (Lt) Opcode() byte      { return opcode.Lt }
func (Lt) ByteCount() uint16 { return 3 }

// EqA sets st0 = (first == other) for two A registers, treating two
// uninitialized slots as equal.
type EqA struct {
	Family     reg.AFamily
	IndexFirst reg.Reg32
	IndexOther reg.Reg32
}

func (EqA) Opcode() byte      { return opcode.EqA }
func (EqA) ByteCount() uint16 { return 3 }

// EqR sets st0 = (first == other) for two R registers.
type EqR struct {
	Family     reg.RFamily
	IndexFirst reg.Reg32
	IndexOther reg.Reg32
}

func (EqR) Opcode() byte      { return opcode.EqR }
func (EqR) ByteCount() uint16 { return 3 }

// Len stores an A register's bit length into the fixed a16[0] counter
// slot. spec.md §4.3.4 names no destination operand: the target is
// always a16[0].
type Len struct {
	Family reg.AFamily
	Index  reg.Reg32
}

func (Len) Opcode() byte      { return opcode.Len }
func (Len) ByteCount() uint16 { return 2 }

// Cnt stores an A register's population count into the fixed a16[0]
// counter slot.
type Cnt struct {
	Family reg.AFamily
	Index  reg.Reg32
}

func (Cnt) Opcode() byte      { return opcode.Cnt }
func (Cnt) ByteCount() uint16 { return 2 }

// St2A sets st0 from the fixed a8[0] slot: st0 := (a8[0] == 1). It
// names no operand; the source is always a8[0].
type St2A struct{}

func (St2A) Opcode() byte      { return opcode.St2A }
func (St2A) ByteCount() uint16 { return 1 }

// A2St writes st0 into the fixed a8[0] slot: a8[0] := if st0 then 1
// else 0.
type A2St struct{}

func (A2St) Opcode() byte      { return opcode.A2St }
func (A2St) ByteCount() uint16 { return 1 }
