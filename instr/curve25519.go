// Package-level note: curve25519 arithmetic is opaque to this repo
// except for wire layout — exec refuses to run these opcodes, and host
// extensions can only claim opcodes in opcode.HostWindow, not this range.
package instr

import (
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// EdGen derives a curve25519 point from the scalar at Scalar, writing
// it to the Reg8-addressed destination Dst.
type EdGen struct {
	Scalar reg.Reg32
	Dst    reg.Reg8
}

func (EdGen) Opcode() byte      { return opcode.EdGen }
func (EdGen) ByteCount() uint16 { return 2 }

// EdMul multiplies the point at Point by the scalar at Scalar (drawn
// from the A family if ScalarIsA, else the R family), writing the
// result to Dst.
type EdMul struct {
	ScalarIsA bool
	Scalar    reg.Reg32
	Point     reg.Reg32
	Dst       reg.Reg32
}

func (EdMul) Opcode() byte { return opcode.EdMul }

// ByteCount is 4; see instr/secp.go's SecpMul comment for why 16
// argument bits don't tile into two cursor bytes here.
func (EdMul) ByteCount() uint16 { return 4 }

// EdAdd adds the points at Src1 and Src2, writing the result to Src3.
// AllowOverflow permits the sum to wrap instead of trapping.
type EdAdd struct {
	AllowOverflow bool
	Src1          reg.Reg32
	Src2          reg.Reg32
	Src3          reg.Reg32
}

func (EdAdd) Opcode() byte { return opcode.EdAdd }

// ByteCount is 4; see instr/secp.go's SecpMul comment for why.
func (EdAdd) ByteCount() uint16 { return 4 }

// EdNeg negates the point at Point, writing it to the Reg8-addressed
// destination Dst.
type EdNeg struct {
	Point reg.Reg32
	Dst   reg.Reg8
}

func (EdNeg) Opcode() byte      { return opcode.EdNeg }
func (EdNeg) ByteCount() uint16 { return 2 }
