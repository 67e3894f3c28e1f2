// Package host defines the plug-in contract unassigned core opcodes in
// opcode.HostWindow can be claimed through (spec.md §6). No extension
// ships in this repo — secp256k1, curve25519, and digest support are
// wire-layout-only stubs in the instr/codec packages — but the
// interface and a Registry are provided so an embedder can add real
// instructions without forking the decoder.
package host

import (
	"fmt"

	"github.com/aluvm-go/aluvm/bitcursor"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/opcode"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/regfile"
)

// Step is the outcome of executing one instruction, mirroring spec.md
// §4.5's Stop/Next/Jump/Call. It lives here rather than in exec so that
// both exec and host.Extension implementations can depend on it without
// a cycle (exec imports host; host must not import exec).
type Step struct {
	Kind StepKind
	// Offset is valid when Kind == StepJump: the target pc within the
	// current library.
	Offset uint16
	// Site is valid when Kind == StepCall: the target library and
	// offset to switch execution to.
	Site reg.LibSite
}

// StepKind discriminates Step's variants.
type StepKind uint8

const (
	StepStop StepKind = iota
	StepNext
	StepJump
	StepCall
)

// Extension decodes, encodes, and executes the instructions living in
// one claimed sub-range of opcode.HostWindow.
type Extension interface {
	// Name identifies the extension for diagnostics.
	Name() string

	// Range is the sub-range of opcode.HostWindow this extension owns.
	// It must not intersect any core category's range or another
	// registered extension's range.
	Range() opcode.Range

	// ByteCount returns the wire length, opcode byte included, for the
	// instruction whose opcode byte is op.
	ByteCount(op byte) (uint16, error)

	// Decode reads one instruction's argument bytes, given that op (the
	// opcode byte) has already been consumed from c.
	Decode(c *bitcursor.Cursor, op byte) (instr.Instruction, error)

	// Encode writes i's argument bytes to c. The opcode byte has
	// already been written by the caller.
	Encode(c *bitcursor.Cursor, i instr.Instruction) error

	// Exec runs i against f, returning the same Stop/Next/Jump/Call
	// outcome the core exec loop expects from any instruction.
	Exec(f *regfile.RegisterFile, i instr.Instruction) (Step, error)
}

// Registry holds the extensions claimed for the current VM instance,
// keyed by their non-overlapping ranges.
type Registry struct {
	extensions []Extension
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds ext, rejecting it if its range overlaps the core
// opcode ranges, opcode.Nop, or a previously registered extension.
func (r *Registry) Register(ext Extension) error {
	rng := ext.Range()
	if !opcode.HostWindow.Contains(rng.Low) || !opcode.HostWindow.Contains(rng.High) {
		return fmt.Errorf("host: extension %q range [0x%02x,0x%02x] escapes the host window [0x%02x,0x%02x]",
			ext.Name(), rng.Low, rng.High, opcode.HostWindow.Low, opcode.HostWindow.High)
	}
	for _, existing := range r.extensions {
		if rangesOverlap(rng, existing.Range()) {
			return fmt.Errorf("host: extension %q range [0x%02x,0x%02x] overlaps %q",
				ext.Name(), rng.Low, rng.High, existing.Name())
		}
	}
	r.extensions = append(r.extensions, ext)
	return nil
}

// Find returns the extension claiming op, if any.
func (r *Registry) Find(op byte) (Extension, bool) {
	for _, ext := range r.extensions {
		if ext.Range().Contains(op) {
			return ext, true
		}
	}
	return nil, false
}

func rangesOverlap(a, b opcode.Range) bool {
	return a.Low <= b.High && b.Low <= a.High
}
