package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// encodeGenNeg packs {Src(5)+Dst(3)} into a single byte, shared by
// SecpGen/SecpNeg/EdGen/EdNeg.
func encodeGenNeg(c *bitcursor.Cursor, src reg.Reg32, dst reg.Reg8) error {
	if err := c.WriteUN(5, uint8(src)); err != nil {
		return err
	}
	return c.WriteUN(3, uint8(dst))
}

func decodeGenNeg(c *bitcursor.Cursor) (reg.Reg32, reg.Reg8, error) {
	src, err := c.ReadUN(5)
	if err != nil {
		return 0, 0, err
	}
	dst, err := c.ReadUN(3)
	if err != nil {
		return 0, 0, err
	}
	return reg.Reg32(src), reg.Reg8(dst), nil
}

// encodeMulShape packs {flag(1)+a(5)+pad(2)} then {b(5)+pad(3)} then
// {c(5)+pad(3)}: three whole bytes, each padded to its own byte since
// the 16 live bits (1+5+5+5) have no partition into two bytes without
// one field crossing a cursor byte boundary, per SecpMul's ByteCount
// comment.
func encodeMulShape(c *bitcursor.Cursor, flag bool, a, b, cReg reg.Reg32) error {
	f := uint8(0)
	if flag {
		f = 1
	}
	if err := c.WriteUN(1, f); err != nil {
		return err
	}
	if err := c.WriteUN(5, uint8(a)); err != nil {
		return err
	}
	if err := c.WriteUN(2, 0); err != nil {
		return err
	}
	if err := c.WriteUN(5, uint8(b)); err != nil {
		return err
	}
	if err := c.WriteUN(3, 0); err != nil {
		return err
	}
	if err := c.WriteUN(5, uint8(cReg)); err != nil {
		return err
	}
	return c.WriteUN(3, 0)
}

func decodeMulShape(c *bitcursor.Cursor) (flag bool, a, b, cReg reg.Reg32, err error) {
	f, err := c.ReadUN(1)
	if err != nil {
		return
	}
	av, err := c.ReadUN(5)
	if err != nil {
		return
	}
	if _, err = c.ReadUN(2); err != nil {
		return
	}
	bv, err := c.ReadUN(5)
	if err != nil {
		return
	}
	if _, err = c.ReadUN(3); err != nil {
		return
	}
	cv, err := c.ReadUN(5)
	if err != nil {
		return
	}
	if _, err = c.ReadUN(3); err != nil {
		return
	}
	flag = f == 1
	a = reg.Reg32(av)
	b = reg.Reg32(bv)
	cReg = reg.Reg32(cv)
	return
}

func encodeSecp(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.SecpGen:
		return encodeGenNeg(c, v.Scalar, v.Dst)
	case instr.SecpNeg:
		return encodeGenNeg(c, v.Point, v.Dst)
	case instr.SecpMul:
		return encodeMulShape(c, v.ScalarIsA, v.Scalar, v.Point, v.Dst)
	case instr.SecpAdd:
		return encodeMulShape(c, v.AllowOverflow, v.Src1, v.Src2, v.Src3)
	default:
		return &EncodeError{Op: "secp256k1", Message: "unknown secp256k1 instruction"}
	}
}

func decodeSecp(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.SecpGen:
		scalar, dst, err := decodeGenNeg(c)
		if err != nil {
			return nil, err
		}
		return instr.SecpGen{Scalar: scalar, Dst: dst}, nil
	case opcode.SecpNeg:
		point, dst, err := decodeGenNeg(c)
		if err != nil {
			return nil, err
		}
		return instr.SecpNeg{Point: point, Dst: dst}, nil
	case opcode.SecpMul:
		scalarIsA, scalar, point, dst, err := decodeMulShape(c)
		if err != nil {
			return nil, err
		}
		return instr.SecpMul{ScalarIsA: scalarIsA, Scalar: scalar, Point: point, Dst: dst}, nil
	case opcode.SecpAdd:
		allowOverflow, src1, src2, src3, err := decodeMulShape(c)
		if err != nil {
			return nil, err
		}
		return instr.SecpAdd{AllowOverflow: allowOverflow, Src1: src1, Src2: src2, Src3: src3}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
