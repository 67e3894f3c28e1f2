package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

func writeMode(c *bitcursor.Cursor, m reg.ArithmeticMode) error {
	return c.WriteUN(3, uint8(m))
}

func readMode(c *bitcursor.Cursor) (reg.ArithmeticMode, error) {
	v, err := c.ReadUN(3)
	if err != nil {
		return 0, err
	}
	return reg.ArithmeticMode(v), nil
}

func encodeArithmetic(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.Neg:
		return writeAFamilyIndex(c, v.Family, v.Index)
	case instr.Stp:
		// Packed as {Increment(1)+Mode(3)+Step(4)} then
		// {Family(3)+Index(5)}: each group fills one byte exactly, so
		// no field crosses a cursor byte boundary.
		inc := uint8(0)
		if v.Increment {
			inc = 1
		}
		if err := c.WriteUN(1, inc); err != nil {
			return err
		}
		if err := writeMode(c, v.Mode); err != nil {
			return err
		}
		if err := c.WriteUN(4, v.Step); err != nil {
			return err
		}
		return writeAFamilyIndex(c, v.Family, v.Index)
	case instr.Add:
		return encodeArBinOp(c, v.Mode, v.Family, v.Src1, v.Src2)
	case instr.Sub:
		return encodeArBinOp(c, v.Mode, v.Family, v.Src1, v.Src2)
	case instr.Mul:
		return encodeArBinOp(c, v.Mode, v.Family, v.Src1, v.Src2)
	case instr.Div:
		return encodeArBinOp(c, v.Mode, v.Family, v.Src1, v.Src2)
	case instr.Mod:
		if err := writeAFamilyIndex(c, v.FamilySrc1, v.Src1); err != nil {
			return err
		}
		if err := writeAFamilyIndex(c, v.FamilySrc2, v.Src2); err != nil {
			return err
		}
		return writeAFamilyIndex(c, v.FamilyDst, v.Dst)
	case instr.Abs:
		return writeAFamilyIndex(c, v.Family, v.Index)
	default:
		return &EncodeError{Op: "arithmetic", Message: "unknown arithmetic instruction"}
	}
}

// encodeArBinOp packs {Mode(3)+Src1(5)} then {Family(3)+Src2(5)}: each
// group fills one byte exactly, so no field crosses a cursor byte
// boundary (unlike the naive {Mode+Family}/{Src1+Src2} grouping, which
// would split Src1 across the first and second bytes).
func encodeArBinOp(c *bitcursor.Cursor, mode reg.ArithmeticMode, fam reg.AFamily, src1, src2 reg.Reg32) error {
	if err := writeMode(c, mode); err != nil {
		return err
	}
	if err := c.WriteUN(5, uint8(src1)); err != nil {
		return err
	}
	return writeAFamilyIndex(c, fam, src2)
}

func decodeArBinOp(c *bitcursor.Cursor) (reg.ArithmeticMode, reg.AFamily, reg.Reg32, reg.Reg32, error) {
	mode, err := readMode(c)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	src1, err := c.ReadUN(5)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	fam, src2, err := readAFamilyIndex(c)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return mode, fam, reg.Reg32(src1), src2, nil
}

func decodeArithmetic(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.Neg:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Neg{Family: fam, Index: idx}, nil
	case opcode.Stp:
		inc, err := c.ReadUN(1)
		if err != nil {
			return nil, err
		}
		mode, err := readMode(c)
		if err != nil {
			return nil, err
		}
		step, err := c.ReadUN(4)
		if err != nil {
			return nil, err
		}
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Stp{Increment: inc == 1, Mode: mode, Family: fam, Index: idx, Step: step}, nil
	case opcode.Add:
		mode, fam, src1, src2, err := decodeArBinOp(c)
		if err != nil {
			return nil, err
		}
		return instr.Add{Mode: mode, Family: fam, Src1: src1, Src2: src2}, nil
	case opcode.Sub:
		mode, fam, src1, src2, err := decodeArBinOp(c)
		if err != nil {
			return nil, err
		}
		return instr.Sub{Mode: mode, Family: fam, Src1: src1, Src2: src2}, nil
	case opcode.Mul:
		mode, fam, src1, src2, err := decodeArBinOp(c)
		if err != nil {
			return nil, err
		}
		return instr.Mul{Mode: mode, Family: fam, Src1: src1, Src2: src2}, nil
	case opcode.Div:
		mode, fam, src1, src2, err := decodeArBinOp(c)
		if err != nil {
			return nil, err
		}
		return instr.Div{Mode: mode, Family: fam, Src1: src1, Src2: src2}, nil
	case opcode.Mod:
		fam1, src1, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		fam2, src2, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		fam3, dst, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Mod{FamilySrc1: fam1, Src1: src1, FamilySrc2: fam2, Src2: src2, FamilyDst: fam3, Dst: dst}, nil
	case opcode.Abs:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Abs{Family: fam, Index: idx}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
