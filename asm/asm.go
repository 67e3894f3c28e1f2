// Package asm implements the assembler/disassembler entry points named
// in spec.md §6: turning a slice of instr.Instruction into a library's
// raw bytecode and back, with no textual assembly syntax of its own
// (the bytecode buffer is the wire format; disassembly pretty-printing
// is out of scope). Grounded on bassosimone-risc32's pkg/asm/asm.go
// Assemble-a-sequence shape, trimmed to this spec's label-free,
// lexer-free domain — there is no source text to parse, only a
// []instr.Instruction to encode or a []byte to decode back into one.
package asm

import (
	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/codec"
	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
)

// MaxInstructions is the largest instruction count a single library may
// hold, per spec.md §3/§6.
const MaxInstructions = 1 << 16

// Assemble encodes instructions into one library's bytecode buffer,
// returning a buffer sized exactly to the encoded bytes. registry resolves any
// host-window instructions present; it may be nil if there are none.
func Assemble(instructions []instr.Instruction, registry *host.Registry) ([]byte, error) {
	if len(instructions) > MaxInstructions {
		return nil, &codec.TooManyInstructions{Count: len(instructions), Limit: MaxInstructions}
	}

	total := 0
	for _, i := range instructions {
		total += int(i.ByteCount())
	}
	if total > bitcursor.MaxBytes {
		return nil, &codec.TooManyInstructions{Count: total, Limit: bitcursor.MaxBytes}
	}

	buf := make([]byte, total)
	c := bitcursor.New(buf)
	for _, i := range instructions {
		if err := codec.Encode(c, i, registry); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// Disassemble decodes a library's bytecode buffer back into its
// constituent instructions, in wire order. registry resolves any
// host-window instructions present; it may be nil if there are none.
func Disassemble(code []byte, registry *host.Registry) ([]instr.Instruction, error) {
	if len(code) > bitcursor.MaxBytes {
		return nil, &codec.TooManyInstructions{Count: len(code), Limit: bitcursor.MaxBytes}
	}

	c := bitcursor.New(code)
	var out []instr.Instruction
	for int(c.BytePos()) < len(code) {
		if len(out) >= MaxInstructions {
			return nil, &codec.TooManyInstructions{Count: len(out), Limit: MaxInstructions}
		}
		i, err := codec.Decode(c, registry)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}
