package exec

import "github.com/aluvm-go/aluvm/host"

// TraceEntry records one executed instruction, the unit vm/trace.go's
// TraceEntry records for ARM generalized to this VM's library+pc
// addressing and single st0 flag.
type TraceEntry struct {
	Sequence uint64
	Library  [32]byte
	PC       uint16
	Opcode   byte
	St0      bool
	Kind     host.StepKind
}

// Trace is a bounded ring of recent TraceEntry values. Unlike
// vm/trace.go's ExecutionTrace, this is a plain recording buffer with no
// register-diffing or disassembly text: the ambient stack carries no
// logging library (SPEC_FULL.md's Ambient Stack section), so diagnostics
// here are hand-rolled structs rather than structured log lines.
type Trace struct {
	Enabled    bool
	MaxEntries int

	entries  []TraceEntry
	sequence uint64
}

// NewTrace creates a disabled Trace with room for maxEntries before the
// oldest entries are evicted.
func NewTrace(maxEntries int) *Trace {
	return &Trace{MaxEntries: maxEntries}
}

// record appends one entry, evicting the oldest if MaxEntries is
// exceeded. A no-op when the trace is disabled.
func (t *Trace) record(lib [32]byte, pc uint16, op byte, st0 bool, kind host.StepKind) {
	if t == nil || !t.Enabled {
		return
	}
	t.sequence++
	entry := TraceEntry{Sequence: t.sequence, Library: lib, PC: pc, Opcode: op, St0: st0, Kind: kind}
	t.entries = append(t.entries, entry)
	if t.MaxEntries > 0 && len(t.entries) > t.MaxEntries {
		t.entries = t.entries[len(t.entries)-t.MaxEntries:]
	}
}

// Entries returns the entries currently retained, oldest first.
func (t *Trace) Entries() []TraceEntry {
	if t == nil {
		return nil
	}
	return append([]TraceEntry(nil), t.entries...)
}

// Reset discards all retained entries and resets the sequence counter.
func (t *Trace) Reset() {
	if t == nil {
		return
	}
	t.entries = nil
	t.sequence = 0
}
