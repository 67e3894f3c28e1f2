package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

func encodeMove(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.SwpA:
		if err := writeAFamilyIndex(c, v.Family, v.IndexFirst); err != nil {
			return err
		}
		return writeAFamilyIndex(c, v.Family, v.IndexOther)
	case instr.SwpR:
		if err := writeRFamilyIndex(c, v.Family, v.IndexFirst); err != nil {
			return err
		}
		return writeRFamilyIndex(c, v.Family, v.IndexOther)
	case instr.SwpAR:
		if err := writeAFamilyIndex(c, v.FamilyA, v.IndexA); err != nil {
			return err
		}
		return writeRFamilyIndex(c, v.FamilyR, v.IndexR)
	case instr.MovA:
		if err := writeAFamilyIndex(c, v.Family, v.IndexSrc); err != nil {
			return err
		}
		return writeAFamilyIndex(c, v.Family, v.IndexDst)
	case instr.MovR:
		if err := writeRFamilyIndex(c, v.Family, v.IndexSrc); err != nil {
			return err
		}
		return writeRFamilyIndex(c, v.Family, v.IndexDst)
	case instr.MovAR:
		if err := writeAFamilyIndex(c, v.FamilyA, v.IndexA); err != nil {
			return err
		}
		return writeRFamilyIndex(c, v.FamilyR, v.IndexR)
	case instr.MovRA:
		if err := writeRFamilyIndex(c, v.FamilyR, v.IndexR); err != nil {
			return err
		}
		return writeAFamilyIndex(c, v.FamilyA, v.IndexA)
	case instr.AMov:
		if err := c.WriteUN(3, uint8(v.SrcFamily)); err != nil {
			return err
		}
		if err := c.WriteUN(3, uint8(v.DstFamily)); err != nil {
			return err
		}
		return c.WriteUN(2, uint8(v.NumType))
	default:
		return &EncodeError{Op: "move", Message: "unknown move instruction"}
	}
}

func decodeMove(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.SwpA:
		fam, first, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		_, other, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.SwpA{Family: fam, IndexFirst: first, IndexOther: other}, nil
	case opcode.SwpR:
		fam, first, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		_, other, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.SwpR{Family: fam, IndexFirst: first, IndexOther: other}, nil
	case opcode.SwpAR:
		famA, idxA, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		famR, idxR, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.SwpAR{FamilyA: famA, IndexA: idxA, FamilyR: famR, IndexR: idxR}, nil
	case opcode.MovA:
		fam, src, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		_, dst, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.MovA{Family: fam, IndexSrc: src, IndexDst: dst}, nil
	case opcode.MovR:
		fam, src, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		_, dst, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.MovR{Family: fam, IndexSrc: src, IndexDst: dst}, nil
	case opcode.MovAR:
		famA, idxA, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		famR, idxR, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.MovAR{FamilyA: famA, IndexA: idxA, FamilyR: famR, IndexR: idxR}, nil
	case opcode.MovRA:
		famR, idxR, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		famA, idxA, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.MovRA{FamilyR: famR, IndexR: idxR, FamilyA: famA, IndexA: idxA}, nil
	case opcode.AMov:
		src, err := c.ReadUN(3)
		if err != nil {
			return nil, err
		}
		dst, err := c.ReadUN(3)
		if err != nil {
			return nil, err
		}
		nt, err := c.ReadUN(2)
		if err != nil {
			return nil, err
		}
		return instr.AMov{SrcFamily: reg.AFamily(src), DstFamily: reg.AFamily(dst), NumType: reg.NumType(nt)}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
