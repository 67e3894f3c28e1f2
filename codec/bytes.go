package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/value"
)

func writeSIndex(c *bitcursor.Cursor, s reg.SIndex) error { return reg.WriteSIndex(c, s) }
func readSIndex(c *bitcursor.Cursor) (reg.SIndex, error)  { return reg.ReadSIndex(c) }

func encodeBytes(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.BytesPut:
		if err := writeSIndex(c, v.Index); err != nil {
			return err
		}
		return value.WriteBlob(c, v.Blob)
	case instr.BytesMov:
		if err := writeSIndex(c, v.Src); err != nil {
			return err
		}
		return writeSIndex(c, v.Dst)
	case instr.BytesSwp:
		if err := writeSIndex(c, v.First); err != nil {
			return err
		}
		return writeSIndex(c, v.Other)
	case instr.BytesFill:
		if err := writeSIndex(c, v.Index); err != nil {
			return err
		}
		if err := c.WriteU16(v.From); err != nil {
			return err
		}
		if err := c.WriteU16(v.To); err != nil {
			return err
		}
		return c.WriteU8(v.Val)
	case instr.BytesLenS:
		return writeSIndex(c, v.Index)
	case instr.BytesCount:
		if err := writeSIndex(c, v.Index); err != nil {
			return err
		}
		return c.WriteU8(v.Byte)
	case instr.BytesCmp:
		if err := writeSIndex(c, v.First); err != nil {
			return err
		}
		return writeSIndex(c, v.Other)
	case instr.BytesComm:
		if err := writeSIndex(c, v.First); err != nil {
			return err
		}
		return writeSIndex(c, v.Other)
	case instr.BytesFind:
		if err := writeSIndex(c, v.Haystack); err != nil {
			return err
		}
		return writeSIndex(c, v.Needle)
	case instr.BytesExtrA:
		if err := writeAFamilyIndex(c, v.Dst.Family, v.Dst.Index); err != nil {
			return err
		}
		if err := writeSIndex(c, v.Src); err != nil {
			return err
		}
		return c.WriteU16(v.Offset)
	case instr.BytesExtrR:
		if err := writeRFamilyIndex(c, v.Dst.Family, v.Dst.Index); err != nil {
			return err
		}
		if err := writeSIndex(c, v.Src); err != nil {
			return err
		}
		return c.WriteU16(v.Offset)
	case instr.BytesJoin:
		if err := writeSIndex(c, v.Src1); err != nil {
			return err
		}
		if err := writeSIndex(c, v.Src2); err != nil {
			return err
		}
		return writeSIndex(c, v.Dst)
	case instr.BytesSplit:
		if err := writeSIndex(c, v.Src); err != nil {
			return err
		}
		if err := c.WriteU16(v.Offset); err != nil {
			return err
		}
		if err := writeSIndex(c, v.Dst1); err != nil {
			return err
		}
		return writeSIndex(c, v.Dst2)
	case instr.BytesIns:
		if err := writeSIndex(c, v.From); err != nil {
			return err
		}
		if err := writeSIndex(c, v.To); err != nil {
			return err
		}
		return c.WriteU16(v.Offset)
	case instr.BytesDel:
		if err := writeSIndex(c, v.Index); err != nil {
			return err
		}
		if err := c.WriteU16(v.From); err != nil {
			return err
		}
		return c.WriteU16(v.To)
	case instr.BytesTransl:
		if err := writeSIndex(c, v.Src); err != nil {
			return err
		}
		if err := c.WriteU16(v.From); err != nil {
			return err
		}
		if err := c.WriteU16(v.To); err != nil {
			return err
		}
		return writeSIndex(c, v.Dst)
	default:
		return &EncodeError{Op: "bytes", Message: "unknown bytes instruction"}
	}
}

func decodeBytes(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.BytesPut:
		idx, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		blob, err := value.ReadBlob(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesPut{Index: idx, Blob: blob}, nil
	case opcode.BytesMov:
		src, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		dst, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesMov{Src: src, Dst: dst}, nil
	case opcode.BytesSwp:
		first, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		other, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesSwp{First: first, Other: other}, nil
	case opcode.BytesFill:
		idx, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		from, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		to, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		val, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		return instr.BytesFill{Index: idx, From: from, To: to, Val: val}, nil
	case opcode.BytesLenS:
		idx, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesLenS{Index: idx}, nil
	case opcode.BytesCount:
		idx, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		b, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		return instr.BytesCount{Index: idx, Byte: b}, nil
	case opcode.BytesCmp:
		first, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		other, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesCmp{First: first, Other: other}, nil
	case opcode.BytesComm:
		first, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		other, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesComm{First: first, Other: other}, nil
	case opcode.BytesFind:
		hay, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		needle, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesFind{Haystack: hay, Needle: needle}, nil
	case opcode.BytesExtrA:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		src, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		offset, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		return instr.BytesExtrA{Dst: reg.RegA{Family: fam, Index: idx}, Src: src, Offset: offset}, nil
	case opcode.BytesExtrR:
		fam, idx, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		src, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		offset, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		return instr.BytesExtrR{Dst: reg.RegR{Family: fam, Index: idx}, Src: src, Offset: offset}, nil
	case opcode.BytesJoin:
		s1, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		s2, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		dst, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesJoin{Src1: s1, Src2: s2, Dst: dst}, nil
	case opcode.BytesSplit:
		src, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		offset, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		dst1, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		dst2, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesSplit{Src: src, Offset: offset, Dst1: dst1, Dst2: dst2}, nil
	case opcode.BytesIns:
		from, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		to, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		offset, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		return instr.BytesIns{From: from, To: to, Offset: offset}, nil
	case opcode.BytesDel:
		idx, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		from, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		to, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		return instr.BytesDel{Index: idx, From: from, To: to}, nil
	case opcode.BytesTransl:
		src, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		from, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		to, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		dst, err := readSIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.BytesTransl{Src: src, From: from, To: to, Dst: dst}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
