// Package codec encodes and decodes instr.Instruction values to and
// from the bit-packed wire format spec.md §4.1/§4.3 defines, dispatching
// by opcode category the way arm-emulator's encoder package dispatches
// by ARM instruction class.
package codec

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
)

// Encode writes i's opcode byte and argument bytes to c, delegating to
// a registered host.Extension for opcodes in opcode.HostWindow.
func Encode(c *bitcursor.Cursor, i instr.Instruction, registry *host.Registry) error {
	op := i.Opcode()
	if err := c.WriteU8(op); err != nil {
		return &EncodeError{Op: "opcode", Message: "failed to write opcode byte", Err: err}
	}
	cat, ok := opcode.Classify(op)
	if !ok {
		return &EncodeError{Op: "opcode", Message: "opcode is not assigned to any category"}
	}
	switch cat {
	case opcode.CategoryNop:
		return nil
	case opcode.CategoryControlFlow:
		return encodeControlFlow(c, i)
	case opcode.CategoryPut:
		return encodePut(c, i)
	case opcode.CategoryMove:
		return encodeMove(c, i)
	case opcode.CategoryCompare:
		return encodeCompare(c, i)
	case opcode.CategoryArithmetic:
		return encodeArithmetic(c, i)
	case opcode.CategoryBitwise:
		return encodeBitwise(c, i)
	case opcode.CategoryBytes:
		return encodeBytes(c, i)
	case opcode.CategoryDigest:
		return encodeDigest(c, i)
	case opcode.CategorySecp256k1:
		return encodeSecp(c, i)
	case opcode.CategoryCurve25519:
		return encodeCurve25519(c, i)
	case opcode.CategoryHost:
		if registry == nil {
			return &EncodeError{Op: "host", Message: "no host registry supplied for a host-window opcode"}
		}
		ext, found := registry.Find(op)
		if !found {
			return &EncodeError{Op: "host", Message: "no extension claims this host-window opcode"}
		}
		return ext.Encode(c, i)
	default:
		return &EncodeError{Op: "opcode", Message: "unhandled category"}
	}
}

// Decode reads one instruction's opcode byte and argument bytes from c,
// delegating to a registered host.Extension for opcodes in
// opcode.HostWindow and returning instr.Nop{} directly for the sentinel.
func Decode(c *bitcursor.Cursor, registry *host.Registry) (instr.Instruction, error) {
	pos := c.BytePos()
	op, err := c.ReadU8()
	if err != nil {
		return nil, &DecodeError{Op: "opcode", Pos: pos, Message: "failed to read opcode byte", Err: err}
	}
	cat, ok := opcode.Classify(op)
	if !ok {
		return nil, &UnsupportedInstruction{Opcode: op, Pos: pos}
	}
	switch cat {
	case opcode.CategoryNop:
		return instr.Nop{}, nil
	case opcode.CategoryControlFlow:
		return decodeControlFlow(c, op)
	case opcode.CategoryPut:
		return decodePut(c, op)
	case opcode.CategoryMove:
		return decodeMove(c, op)
	case opcode.CategoryCompare:
		return decodeCompare(c, op)
	case opcode.CategoryArithmetic:
		return decodeArithmetic(c, op)
	case opcode.CategoryBitwise:
		return decodeBitwise(c, op)
	case opcode.CategoryBytes:
		return decodeBytes(c, op)
	case opcode.CategoryDigest:
		return decodeDigest(c, op)
	case opcode.CategorySecp256k1:
		return decodeSecp(c, op)
	case opcode.CategoryCurve25519:
		return decodeCurve25519(c, op)
	case opcode.CategoryHost:
		if registry == nil {
			return nil, &DecodeError{Op: "host", Pos: pos, Message: "no host registry supplied for a host-window opcode"}
		}
		ext, found := registry.Find(op)
		if !found {
			return nil, &DecodeError{Op: "host", Pos: pos, Message: "no extension claims this host-window opcode"}
		}
		return ext.Decode(c, op)
	default:
		return nil, &UnsupportedInstruction{Opcode: op, Pos: pos}
	}
}
