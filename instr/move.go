package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// SwpA exchanges the contents of two A registers of the same family.
type SwpA struct {
	Family     reg.AFamily
	IndexFirst reg.Reg32
	IndexOther reg.Reg32
}

func (SwpA) Opcode() byte      { return opcode.SwpA }
func (SwpA) ByteCount() uint16 { return 3 }

// SwpR exchanges the contents of two R registers of the same family.
type SwpR struct {
	Family     reg.RFamily
	IndexFirst reg.Reg32
	IndexOther reg.Reg32
}

func (SwpR) Opcode() byte      { return opcode.SwpR }
func (SwpR) ByteCount() uint16 { return 3 }

// SwpAR exchanges an A register's bytes with an R register's bytes,
// truncating/zero-extending across the width difference.
type SwpAR struct {
	FamilyA reg.AFamily
	IndexA  reg.Reg32
	FamilyR reg.RFamily
	IndexR  reg.Reg32
}

func (SwpAR) Opcode() byte      { return opcode.SwpAR }
func (SwpAR) ByteCount() uint16 { return 3 }

// MovA copies an A register's value into another A register, leaving
// the source unchanged.
type MovA struct {
	Family     reg.AFamily
	IndexSrc   reg.Reg32
	IndexDst   reg.Reg32
}

func (MovA) Opcode() byte      { return opcode.MovA }
func (MovA) ByteCount() uint16 { return 3 }

// MovR copies an R register's value into another R register.
type MovR struct {
	Family   reg.RFamily
	IndexSrc reg.Reg32
	IndexDst reg.Reg32
}

func (MovR) Opcode() byte      { return opcode.MovR }
func (MovR) ByteCount() uint16 { return 3 }

// MovAR copies an A register's value into an R register.
type MovAR struct {
	FamilyA reg.AFamily
	IndexA  reg.Reg32
	FamilyR reg.RFamily
	IndexR  reg.Reg32
}

func (MovAR) Opcode() byte      { return opcode.MovAR }
func (MovAR) ByteCount() uint16 { return 3 }

// MovRA copies an R register's value into an A register.
type MovRA struct {
	FamilyR reg.RFamily
	IndexR  reg.Reg32
	FamilyA reg.AFamily
	IndexA  reg.Reg32
}

func (MovRA) Opcode() byte      { return opcode.MovRA }
func (MovRA) ByteCount() uint16 { return 3 }

// AMov array-copies all 32 slots of SrcFamily into DstFamily,
// reinterpreting each value under NumType with truncation of the
// most-significant bits on overflow. Unlike the other Move variants it
// names no register index: it moves the whole family at once.
type AMov struct {
	SrcFamily reg.AFamily
	DstFamily reg.AFamily
	NumType   reg.NumType
}

func (AMov) Opcode() byte      { return opcode.AMov }
func (AMov) ByteCount() uint16 { return 2 }
