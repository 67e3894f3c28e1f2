package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/value"
)

// ZeroA sets an A register to the all-zero value of its width.
type ZeroA struct {
	Family reg.AFamily
	Index  reg.Reg32
}

func (ZeroA) Opcode() byte      { return opcode.ZeroA }
func (ZeroA) ByteCount() uint16 { return 2 }

// ZeroR sets an R register to the all-zero value of its width.
type ZeroR struct {
	Family reg.RFamily
	Index  reg.Reg32
}

func (ZeroR) Opcode() byte      { return opcode.ZeroR }
func (ZeroR) ByteCount() uint16 { return 2 }

// ClA marks an A register uninitialized.
type ClA struct {
	Family reg.AFamily
	Index  reg.Reg32
}

func (ClA) Opcode() byte      { return opcode.ClA }
func (ClA) ByteCount() uint16 { return 2 }

// ClR marks an R register uninitialized.
type ClR struct {
	Family reg.RFamily
	Index  reg.Reg32
}

func (ClR) Opcode() byte      { return opcode.ClR }
func (ClR) ByteCount() uint16 { return 2 }

// PutA assigns Value to an A register.
type PutA struct {
	Family reg.AFamily
	Index  reg.Reg32
	Value  value.Value
}

func (PutA) Opcode() byte { return opcode.PutA }
func (p PutA) ByteCount() uint16 {
	return 2 + uint16(p.Family.Width()/8)
}

// PutR assigns Value to an R register.
type PutR struct {
	Family reg.RFamily
	Index  reg.Reg32
	Value  value.Value
}

func (PutR) Opcode() byte { return opcode.PutR }
func (p PutR) ByteCount() uint16 {
	return 2 + uint16(p.Family.Width()/8)
}

// PutIfA assigns Value to an A register only if it is currently
// uninitialized.
type PutIfA struct {
	Family reg.AFamily
	Index  reg.Reg32
	Value  value.Value
}

func (PutIfA) Opcode() byte { return opcode.PutIfA }
func (p PutIfA) ByteCount() uint16 {
	return 2 + uint16(p.Family.Width()/8)
}

// PutIfR assigns Value to an R register only if it is currently
// uninitialized.
type PutIfR struct {
	Family reg.RFamily
	Index  reg.Reg32
	Value  value.Value
}

func (PutIfR) Opcode() byte { return opcode.PutIfR }
func (p PutIfR) ByteCount() uint16 {
	return 2 + uint16(p.Family.Width()/8)
}
