package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
)

// Shares encodeGenNeg/decodeGenNeg and encodeMulShape/decodeMulShape
// with secp.go: EdGen/EdMul/EdAdd/EdNeg tile identically to their
// secp256k1 counterparts.

func encodeCurve25519(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.EdGen:
		return encodeGenNeg(c, v.Scalar, v.Dst)
	case instr.EdNeg:
		return encodeGenNeg(c, v.Point, v.Dst)
	case instr.EdMul:
		return encodeMulShape(c, v.ScalarIsA, v.Scalar, v.Point, v.Dst)
	case instr.EdAdd:
		return encodeMulShape(c, v.AllowOverflow, v.Src1, v.Src2, v.Src3)
	default:
		return &EncodeError{Op: "curve25519", Message: "unknown curve25519 instruction"}
	}
}

func decodeCurve25519(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.EdGen:
		scalar, dst, err := decodeGenNeg(c)
		if err != nil {
			return nil, err
		}
		return instr.EdGen{Scalar: scalar, Dst: dst}, nil
	case opcode.EdNeg:
		point, dst, err := decodeGenNeg(c)
		if err != nil {
			return nil, err
		}
		return instr.EdNeg{Point: point, Dst: dst}, nil
	case opcode.EdMul:
		scalarIsA, scalar, point, dst, err := decodeMulShape(c)
		if err != nil {
			return nil, err
		}
		return instr.EdMul{ScalarIsA: scalarIsA, Scalar: scalar, Point: point, Dst: dst}, nil
	case opcode.EdAdd:
		allowOverflow, src1, src2, src3, err := decodeMulShape(c)
		if err != nil {
			return nil, err
		}
		return instr.EdAdd{AllowOverflow: allowOverflow, Src1: src1, Src2: src2, Src3: src3}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
