package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/value"
)

func encodePut(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.ZeroA:
		return writeAFamilyIndex(c, v.Family, v.Index)
	case instr.ZeroR:
		return writeRFamilyIndex(c, v.Family, v.Index)
	case instr.ClA:
		return writeAFamilyIndex(c, v.Family, v.Index)
	case instr.ClR:
		return writeRFamilyIndex(c, v.Family, v.Index)
	case instr.PutA:
		if err := writeAFamilyIndex(c, v.Family, v.Index); err != nil {
			return err
		}
		return value.WriteFixed(c, v.Family.Width(), v.Value)
	case instr.PutR:
		if err := writeRFamilyIndex(c, v.Family, v.Index); err != nil {
			return err
		}
		return value.WriteFixed(c, v.Family.Width(), v.Value)
	case instr.PutIfA:
		if err := writeAFamilyIndex(c, v.Family, v.Index); err != nil {
			return err
		}
		return value.WriteFixed(c, v.Family.Width(), v.Value)
	case instr.PutIfR:
		if err := writeRFamilyIndex(c, v.Family, v.Index); err != nil {
			return err
		}
		return value.WriteFixed(c, v.Family.Width(), v.Value)
	default:
		return &EncodeError{Op: "put", Message: "unknown put instruction"}
	}
}

func decodePut(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.ZeroA:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.ZeroA{Family: fam, Index: idx}, nil
	case opcode.ZeroR:
		fam, idx, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.ZeroR{Family: fam, Index: idx}, nil
	case opcode.ClA:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.ClA{Family: fam, Index: idx}, nil
	case opcode.ClR:
		fam, idx, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		return instr.ClR{Family: fam, Index: idx}, nil
	case opcode.PutA:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		val, err := value.ReadFixed(c, fam.Width())
		if err != nil {
			return nil, err
		}
		return instr.PutA{Family: fam, Index: idx, Value: val}, nil
	case opcode.PutR:
		fam, idx, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		val, err := value.ReadFixed(c, fam.Width())
		if err != nil {
			return nil, err
		}
		return instr.PutR{Family: fam, Index: idx, Value: val}, nil
	case opcode.PutIfA:
		fam, idx, err := readAFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		val, err := value.ReadFixed(c, fam.Width())
		if err != nil {
			return nil, err
		}
		return instr.PutIfA{Family: fam, Index: idx, Value: val}, nil
	case opcode.PutIfR:
		fam, idx, err := readRFamilyIndex(c)
		if err != nil {
			return nil, err
		}
		val, err := value.ReadFixed(c, fam.Width())
		if err != nil {
			return nil, err
		}
		return instr.PutIfR{Family: fam, Index: idx, Value: val}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
