// Package regfile implements the ALU-VM register file (spec.md §4.4):
// the A/R/S register banks, the st0 status flag, and the cy0/cp0/cs0
// control counters, plus the operations instructions execute against
// them. Grounded on arm-emulator's vm/cpu.go CPU struct — NewCPU/Reset
// and GetRegister/SetRegister become New/Reset and the
// typed Get*/Set* pairs below, generalized from ARM's one flat 15-slot
// bank to this spec's three typed banks plus counters.
package regfile

import (
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/value"
)

// MaxCallDepth bounds cs0, the return-site stack. spec.md §3 requires
// "at least 256"; this implementation uses exactly that floor.
const MaxCallDepth = 256

// MaxCounter is the ceiling for cy0 and cp0, both 16-bit per spec.md §3.
const MaxCounter = 0xFFFF

// RegisterFile holds all per-execution VM state: the A and R arithmetic/
// non-arithmetic banks, the S string bank, st0, and the cy0/cp0/cs0
// control counters. A zero-value RegisterFile is not ready for use;
// call New.
type RegisterFile struct {
	a [8][32]*value.Value
	r [8][32]*value.Value
	s [256]*value.Blob

	St0 bool
	Cy0 uint16
	Cp0 uint16
	Cs0 []reg.LibSite
}

// New creates a register file with all slots uninitialized and
// st0 = true, per spec.md §3's Lifecycle.
func New() *RegisterFile {
	return &RegisterFile{St0: true}
}

// Reset restores a register file to its freshly-created state in place.
func (f *RegisterFile) Reset() {
	*f = RegisterFile{St0: true}
}

// GetA reads an A-family register slot. The boolean result is false
// when the slot is uninitialized.
func (f *RegisterFile) GetA(fam reg.AFamily, idx reg.Reg32) (value.Value, bool) {
	slot := f.a[fam][idx]
	if slot == nil {
		return value.Value{}, false
	}
	return *slot, true
}

// GetR reads an R-family register slot.
func (f *RegisterFile) GetR(fam reg.RFamily, idx reg.Reg32) (value.Value, bool) {
	slot := f.r[fam][idx]
	if slot == nil {
		return value.Value{}, false
	}
	return *slot, true
}

// SetA writes a Value into an A-family slot, truncating to the
// register's width (spec.md §4.4: truncation, not rejection, outside
// IntChecked arithmetic, which callers enforce before calling SetA).
func (f *RegisterFile) SetA(fam reg.AFamily, idx reg.Reg32, v value.Value) {
	narrowed := v.Truncated(fam.Width())
	f.a[fam][idx] = &narrowed
}

// SetR writes a Value into an R-family slot, truncating to width.
func (f *RegisterFile) SetR(fam reg.RFamily, idx reg.Reg32, v value.Value) {
	narrowed := v.Truncated(fam.Width())
	f.r[fam][idx] = &narrowed
}

// ClA marks an A-family slot uninitialized.
func (f *RegisterFile) ClA(fam reg.AFamily, idx reg.Reg32) {
	f.a[fam][idx] = nil
}

// ClR marks an R-family slot uninitialized.
func (f *RegisterFile) ClR(fam reg.RFamily, idx reg.Reg32) {
	f.r[fam][idx] = nil
}

// ZeroA sets an A-family slot to the all-zero value of its width.
func (f *RegisterFile) ZeroA(fam reg.AFamily, idx reg.Reg32) {
	z := value.Zero(fam.Width())
	f.a[fam][idx] = &z
}

// ZeroR sets an R-family slot to the all-zero value of its width.
func (f *RegisterFile) ZeroR(fam reg.RFamily, idx reg.Reg32) {
	z := value.Zero(fam.Width())
	f.r[fam][idx] = &z
}

// PutIfA writes v only if the slot is currently uninitialized, per
// spec.md §4.3.2's PutIfA. Returns whether the write happened.
func (f *RegisterFile) PutIfA(fam reg.AFamily, idx reg.Reg32, v value.Value) bool {
	if f.a[fam][idx] != nil {
		return false
	}
	f.SetA(fam, idx, v)
	return true
}

// PutIfR writes v only if the slot is currently uninitialized.
func (f *RegisterFile) PutIfR(fam reg.RFamily, idx reg.Reg32, v value.Value) bool {
	if f.r[fam][idx] != nil {
		return false
	}
	f.SetR(fam, idx, v)
	return true
}

// GetS reads an S-family (string) slot.
func (f *RegisterFile) GetS(idx reg.SIndex) (value.Blob, bool) {
	slot := f.s[idx]
	if slot == nil {
		return value.Blob{}, false
	}
	return *slot, true
}

// SetS writes a Blob into an S-family slot.
func (f *RegisterFile) SetS(idx reg.SIndex, b value.Blob) {
	f.s[idx] = &b
}

// ClS marks an S-family slot uninitialized.
func (f *RegisterFile) ClS(idx reg.SIndex) {
	f.s[idx] = nil
}

// Jmp bumps cy0. Returns false when cy0 would overflow, in which case
// it is left unchanged and the caller must terminate the program
// (spec.md §4.3.1: "Overflow of any counter ... causes an immediate
// Stop").
func (f *RegisterFile) Jmp() bool {
	if f.Cy0 >= MaxCounter {
		return false
	}
	f.Cy0++
	return true
}

// Call bumps cy0 and cp0 and pushes site onto cs0. Returns false
// (leaving all three unchanged) on overflow of either counter or the
// call stack.
func (f *RegisterFile) Call(site reg.LibSite) bool {
	if f.Cy0 >= MaxCounter || f.Cp0 >= MaxCounter || len(f.Cs0) >= MaxCallDepth {
		return false
	}
	f.Cy0++
	f.Cp0++
	f.Cs0 = append(f.Cs0, site)
	return true
}

// PushReturn pushes site onto cs0 without touching cp0, used by
// Routine: a same-library jump-and-link that bumps cy0 (via Jmp) and
// records a return site but, unlike Call, never counts against cp0's
// library-depth budget. Returns false on cs0 overflow, leaving cs0
// unchanged.
func (f *RegisterFile) PushReturn(site reg.LibSite) bool {
	if len(f.Cs0) >= MaxCallDepth {
		return false
	}
	f.Cs0 = append(f.Cs0, site)
	return true
}

// Ret pops cs0 and decrements cp0, per the Ret instruction's effect
// (spec.md §4.3.1). Returns false on cs0 underflow, leaving state
// unchanged.
func (f *RegisterFile) Ret() (reg.LibSite, bool) {
	if len(f.Cs0) == 0 {
		return reg.LibSite{}, false
	}
	n := len(f.Cs0) - 1
	site := f.Cs0[n]
	f.Cs0 = f.Cs0[:n]
	if f.Cp0 > 0 {
		f.Cp0--
	}
	return site, true
}
