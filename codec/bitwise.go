package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

// bitwiseShape is shared by And/Or/Xor/Shl/Shr/Scl/Scr: packed as
// {Family(3)+Src1(5)} then {Src2(5)+Dst(3)}, each group filling one
// byte exactly.
type bitwiseShape struct {
	Family reg.AFamily
	Src1   reg.Reg32
	Src2   reg.Reg32
	Dst    reg.Reg8
}

func encodeBitwiseShape(c *bitcursor.Cursor, s bitwiseShape) error {
	if err := c.WriteUN(3, uint8(s.Family)); err != nil {
		return err
	}
	if err := c.WriteUN(5, uint8(s.Src1)); err != nil {
		return err
	}
	if err := c.WriteUN(5, uint8(s.Src2)); err != nil {
		return err
	}
	return c.WriteUN(3, uint8(s.Dst))
}

func decodeBitwiseShape(c *bitcursor.Cursor) (bitwiseShape, error) {
	fam, err := c.ReadUN(3)
	if err != nil {
		return bitwiseShape{}, err
	}
	src1, err := c.ReadUN(5)
	if err != nil {
		return bitwiseShape{}, err
	}
	src2, err := c.ReadUN(5)
	if err != nil {
		return bitwiseShape{}, err
	}
	dst, err := c.ReadUN(3)
	if err != nil {
		return bitwiseShape{}, err
	}
	return bitwiseShape{
		Family: reg.AFamily(fam),
		Src1:   reg.Reg32(src1),
		Src2:   reg.Reg32(src2),
		Dst:    reg.Reg8(dst),
	}, nil
}

func encodeBitwise(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.And:
		return encodeBitwiseShape(c, bitwiseShape{v.Family, v.Src1, v.Src2, v.Dst})
	case instr.Or:
		return encodeBitwiseShape(c, bitwiseShape{v.Family, v.Src1, v.Src2, v.Dst})
	case instr.Xor:
		return encodeBitwiseShape(c, bitwiseShape{v.Family, v.Src1, v.Src2, v.Dst})
	case instr.Shl:
		return encodeBitwiseShape(c, bitwiseShape{v.Family, v.Src1, v.Src2, v.Dst})
	case instr.Shr:
		return encodeBitwiseShape(c, bitwiseShape{v.Family, v.Src1, v.Src2, v.Dst})
	case instr.Scl:
		return encodeBitwiseShape(c, bitwiseShape{v.Family, v.Src1, v.Src2, v.Dst})
	case instr.Scr:
		return encodeBitwiseShape(c, bitwiseShape{v.Family, v.Src1, v.Src2, v.Dst})
	case instr.Not:
		return writeAFamilyIndex(c, v.Family, v.Index)
	default:
		return &EncodeError{Op: "bitwise", Message: "unknown bitwise instruction"}
	}
}

func decodeBitwise(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.And:
		s, err := decodeBitwiseShape(c)
		if err != nil {
			return nil, err
		}
		return instr.And{Family: s.Family, Src1: s.Src1, Src2: s.Src2, Dst: s.Dst}, nil
	case opcode.Or:
		s, err := decodeBitwiseShape(c)
		if err != nil {
			return nil, err
		}
		return instr.Or{Family: s.Family, Src1: s.Src1, Src2: s.Src2, Dst: s.Dst}, nil
	case opcode.Xor:
		s, err := decodeBitwiseShape(c)
		if err != nil {
			return nil, err
		}
		return instr.Xor{Family: s.Family, Src1: s.Src1, Src2: s.Src2, Dst: s.Dst}, nil
	case opcode.Shl:
		s, err := decodeBitwiseShape(c)
		if err != nil {
			return nil, err
		}
		return instr.Shl{Family: s.Family, Src1: s.Src1, Src2: s.Src2, Dst: s.Dst}, nil
	case opcode.Shr:
		s, err := decodeBitwiseShape(c)
		if err != nil {
			return nil, err
		}
		return instr.Shr{Family: s.Family, Src1: s.Src1, Src2: s.Src2, Dst: s.Dst}, nil
	case opcode.Scl:
		s, err := decodeBitwiseShape(c)
		if err != nil {
			return nil, err
		}
		return instr.Scl{Family: s.Family, Src1: s.Src1, Src2: s.Src2, Dst: s.Dst}, nil
	case opcode.Scr:
		s, err := decodeBitwiseShape(c)
		if err != nil {
			return nil, err
		}
		return instr.Scr{Family: s.Family, Src1: s.Src1, Src2: s.Src2, Dst: s.Dst}, nil
	case opcode.Not:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Not{Family: fam, Index: idx}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
