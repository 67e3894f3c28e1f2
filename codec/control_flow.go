package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
)

func encodeControlFlow(c *bitcursor.Cursor, i instr.Instruction) error {
	switch v := i.(type) {
	case instr.Fail, instr.Succ, instr.Ret:
		return nil
	case instr.Jmp:
		return c.WriteU16(v.Offset)
	case instr.Jif:
		return c.WriteU16(v.Offset)
	case instr.Routine:
		return c.WriteU16(v.Offset)
	case instr.Call:
		return reg.WriteLibSite(c, v.Site)
	case instr.Exec:
		return reg.WriteLibSite(c, v.Site)
	default:
		return &EncodeError{Op: "control_flow", Message: "unknown control-flow instruction"}
	}
}

func decodeControlFlow(c *bitcursor.Cursor, op byte) (instr.Instruction, error) {
	switch op {
	case opcode.Fail:
		return instr.Fail{}, nil
	case opcode.Succ:
		return instr.Succ{}, nil
	case opcode.Jmp:
		off, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		return instr.Jmp{Offset: off}, nil
	case opcode.Jif:
		off, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		return instr.Jif{Offset: off}, nil
	case opcode.Routine:
		off, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		return instr.Routine{Offset: off}, nil
	case opcode.Call:
		site, err := reg.ReadLibSite(c)
		if err != nil {
			return nil, err
		}
		return instr.Call{Site: site}, nil
	case opcode.Exec:
		site, err := reg.ReadLibSite(c)
		if err != nil {
			return nil, err
		}
		return instr.Exec{Site: site}, nil
	case opcode.Ret:
		return instr.Ret{}, nil
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: c.BytePos()}
	}
}
