package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/regfile"
)

type stubExtension struct {
	name string
	rng  opcode.Range
}

func (s stubExtension) Name() string          { return s.name }
func (s stubExtension) Range() opcode.Range   { return s.rng }
func (s stubExtension) ByteCount(byte) (uint16, error) { return 1, nil }
func (s stubExtension) Decode(*bitcursor.Cursor, byte) (instr.Instruction, error) {
	return instr.Nop{}, nil
}
func (s stubExtension) Encode(*bitcursor.Cursor, instr.Instruction) error { return nil }
func (s stubExtension) Exec(*regfile.RegisterFile, instr.Instruction) (host.Step, error) {
	return host.Step{Kind: host.StepNext}, nil
}

func TestRegistry_RejectsRangeEscapingHostWindow(t *testing.T) {
	r := host.NewRegistry()
	err := r.Register(stubExtension{name: "bad", rng: opcode.Range{Low: 0x00, High: 0x01}})
	assert.Error(t, err)
}

func TestRegistry_RejectsOverlap(t *testing.T) {
	r := host.NewRegistry()
	require.NoError(t, r.Register(stubExtension{name: "first", rng: opcode.Range{Low: 0x80, High: 0x8F}}))
	err := r.Register(stubExtension{name: "second", rng: opcode.Range{Low: 0x85, High: 0x90}})
	assert.Error(t, err)
}

func TestRegistry_FindLocatesOwningExtension(t *testing.T) {
	r := host.NewRegistry()
	ext := stubExtension{name: "first", rng: opcode.Range{Low: 0x80, High: 0x8F}}
	require.NoError(t, r.Register(ext))

	found, ok := r.Find(0x85)
	require.True(t, ok)
	assert.Equal(t, "first", found.Name())

	_, ok = r.Find(0x90)
	assert.False(t, ok)
}
