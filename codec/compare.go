package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
)

func encodeCompare(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.Gt:
		if err := writeAFamilyIndex(c, v.Family, v.IndexFirst); err != nil {
			return err
		}
		return writeAFamilyIndex(c, v.Family, v.IndexOther)
	case instr.Lt:
		if err := writeRFamilyIndex(c, v.Family, v.IndexFirst); err != nil {
			return err
		}
		return writeRFamilyIndex(c, v.Family, v.IndexOther)
	case instr.EqA:
		if err := writeAFamilyIndex(c, v.Family, v.IndexFirst); err != nil {
			return err
		}
		return writeAFamilyIndex(c, v.Family, v.IndexOther)
	case instr.EqR:
		if err := writeRFamilyIndex(c, v.Family, v.IndexFirst); err != nil {
			return err
		}
		return writeRFamilyIndex(c, v.Family, v.IndexOther)
	case instr.Len:
		return writeAFamilyIndex(c, v.Family, v.Index)
	case instr.Cnt:
		return writeAFamilyIndex(c, v.Family, v.Index)
	case instr.St2A, instr.A2St:
		return nil
	default:
		return &EncodeError{Op: "compare", Message: "unknown compare instruction"}
	}
}

func decodeCompare(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.Gt:
		fam, first, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		_, other, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Gt{Family: fam, IndexFirst: first, IndexOther: other}, nil
	case opcode.Lt:
		fam, first, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		_, other, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Lt{Family: fam, IndexFirst: first, IndexOther: other}, nil
	case opcode.EqA:
		fam, first, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		_, other, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.EqA{Family: fam, IndexFirst: first, IndexOther: other}, nil
	case opcode.EqR:
		fam, first, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		_, other, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.EqR{Family: fam, IndexFirst: first, IndexOther: other}, nil
	case opcode.Len:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Len{Family: fam, Index: idx}, nil
	case opcode.Cnt:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.Cnt{Family: fam, Index: idx}, nil
	case opcode.St2A:
		return instr.St2A{}, nil
	case opcode.A2St:
		return instr.A2St{}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
