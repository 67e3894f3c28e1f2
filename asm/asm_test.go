package asm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aluvm-go/aluvm/asm"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/value"
)

func TestAssembleDisassemble_RoundTrip(t *testing.T) {
	program := []instr.Instruction{
		instr.PutA{Family: 2, Index: 0, Value: value.FromBytes([]byte{7, 0, 0, 0})},
		instr.Add{Mode: reg.IntCheckedUnsigned, Family: 2, Src1: 0, Src2: 1},
		instr.Jif{Offset: 0},
		instr.Succ{},
	}

	code, err := asm.Assemble(program, nil)
	require.NoError(t, err)

	decoded, err := asm.Disassemble(code, nil)
	require.NoError(t, err)
	assert.Equal(t, program, decoded)
}

func TestAssemble_EmptyProgram(t *testing.T) {
	code, err := asm.Assemble(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestDisassemble_EmptyBuffer(t *testing.T) {
	decoded, err := asm.Disassemble(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestAssemble_TooManyInstructions(t *testing.T) {
	program := make([]instr.Instruction, asm.MaxInstructions+1)
	for i := range program {
		program[i] = instr.Nop{}
	}
	_, err := asm.Assemble(program, nil)
	assert.Error(t, err)
}
