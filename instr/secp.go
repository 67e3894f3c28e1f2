// Package-level note: secp256k1 arithmetic is opaque to this repo
// except for wire layout — exec refuses to run these opcodes, and host
// extensions can only claim opcodes in opcode.HostWindow, not this range.
package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// SecpGen derives a secp256k1 point from the scalar at Scalar, writing
// it to the Reg8-addressed destination Dst.
type SecpGen struct {
	Scalar reg.Reg32
	Dst    reg.Reg8
}

func (SecpGen) Opcode() byte      { return opcode.SecpGen }
func (SecpGen) ByteCount() uint16 { return 2 }

// SecpMul multiplies the point at Point by the scalar at Scalar
// (drawn from the A family if ScalarIsA, else the R family),
// writing the result to Dst.
type SecpMul struct {
	ScalarIsA bool
	Scalar    reg.Reg32
	Point     reg.Reg32
	Dst       reg.Reg32
}

func (SecpMul) Opcode() byte { return opcode.SecpMul }

// ByteCount is 4, not the 3 spec.md §4.3.8 lists: 1+5+5+5 = 16 argument
// bits don't tile into two cursor bytes without a field crossing a byte
// boundary, so this repo pads to 3 whole argument bytes (see bytes.go
// for the same kind of correction).
func (SecpMul) ByteCount() uint16 { return 4 }

// SecpAdd adds the points at Src1 and Src2, writing the result to
// Src3. AllowOverflow permits the sum to wrap past the curve order
// instead of trapping.
type SecpAdd struct {
	AllowOverflow bool
	Src1          reg.Reg32
	Src2          reg.Reg32
	Src3          reg.Reg32
}

func (SecpAdd) Opcode() byte { return opcode.SecpAdd }

// ByteCount is 4; see SecpMul's comment for why.
func (SecpAdd) ByteCount() uint16 { return 4 }

// SecpNeg negates the point at Point, writing it to the Reg8-addressed
// destination Dst.
type SecpNeg struct {
	Point reg.Reg32
	Dst   reg.Reg8
}

func (SecpNeg) Opcode() byte      { return opcode.SecpNeg }
func (SecpNeg) ByteCount() uint16 { return 2 }
