package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// Fail sets st0=false and stops. spec.md §4.3.1.
type Fail struct{}

func (Fail) Opcode() byte     { return opcode.Fail }
func (Fail) ByteCount() uint16 { return 1 }

// Succ sets st0=true and stops.
type Succ struct{}

func (Succ) Opcode() byte     { return opcode.Succ }
func (Succ) ByteCount() uint16 { return 1 }

// Jmp jumps unconditionally to Offset within the current library.
type Jmp struct{ Offset uint16 }

func (Jmp) Opcode() byte      { return opcode.Jmp }
func (Jmp) ByteCount() uint16 { return 3 }

// Jif jumps to Offset iff st0 == true.
type Jif struct{ Offset uint16 }

func (Jif) Opcode() byte      { return opcode.Jif }
func (Jif) ByteCount() uint16 { return 3 }

// Routine jumps to Offset, pushing the current instruction's end
// (pc+3) onto cs0 as a same-library return site.
type Routine struct{ Offset uint16 }

func (Routine) Opcode() byte      { return opcode.Routine }
func (Routine) ByteCount() uint16 { return 3 }

// Call enters an external library at Site, pushing a return site and
// incrementing cp0.
type Call struct{ Site reg.LibSite }

func (Call) Opcode() byte      { return opcode.Call }
func (Call) ByteCount() uint16 { return 35 }

// Exec tail-calls into an external library at Site without pushing a
// return site or touching cp0.
type Exec struct{ Site reg.LibSite }

func (Exec) Opcode() byte      { return opcode.Exec }
func (Exec) ByteCount() uint16 { return 35 }

// Ret pops cs0 and decrements cp0.
type Ret struct{}

func (Ret) Opcode() byte      { return opcode.Ret }
func (Ret) ByteCount() uint16 { return 1 }

// Nop advances to the next instruction with no other effect.
type Nop struct{}

func (Nop) Opcode() byte      { return opcode.Nop }
func (Nop) ByteCount() uint16 { return 1 }
