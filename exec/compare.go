package exec

import (
	"fmt"
	"math/big"

	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/regfile"
	"github.com/aluvm-go/aluvm/value"
)

// execCompare runs the Gt/Lt/EqA/EqR/Len/Cnt/St2A/A2St family (spec.md
// §4.3.4).
func execCompare(f *regfile.RegisterFile, i instr.Instruction) (host.Step, error) {
	switch v := i.(type) {
	case instr.Gt:
		a, aOk := f.GetA(v.Family, v.IndexFirst)
		b, bOk := f.GetA(v.Family, v.IndexOther)
		// Neither operand has a defined ordering against "no value":
		// an uninitialized operand on either side makes the
		// comparison false rather than trapping.
		f.St0 = aOk && bOk && a.ToBigIntUnsigned().Cmp(b.ToBigIntUnsigned()) > 0

	case instr.Lt:
		a, aOk := f.GetR(v.Family, v.IndexFirst)
		b, bOk := f.GetR(v.Family, v.IndexOther)
		f.St0 = aOk && bOk && a.ToBigIntUnsigned().Cmp(b.ToBigIntUnsigned()) < 0

	case instr.EqA:
		a, aOk := f.GetA(v.Family, v.IndexFirst)
		b, bOk := f.GetA(v.Family, v.IndexOther)
		f.St0 = eqValues(a, aOk, b, bOk)

	case instr.EqR:
		a, aOk := f.GetR(v.Family, v.IndexFirst)
		b, bOk := f.GetR(v.Family, v.IndexOther)
		f.St0 = eqValues(a, aOk, b, bOk)

	case instr.Len:
		val, ok := f.GetA(v.Family, v.Index)
		n := 0
		if ok {
			n = val.BitLen()
		}
		f.SetA(a16Family, 0, value.FromUintWrapped(uint64(n), a16Family.Width()))

	case instr.Cnt:
		val, ok := f.GetA(v.Family, v.Index)
		n := 0
		if ok {
			n = val.PopCount()
		}
		f.SetA(a16Family, 0, value.FromUintWrapped(uint64(n), a16Family.Width()))

	case instr.St2A:
		// spec.md §4.3.4 pins this to the literal comparison a8[0] == 1,
		// not "nonzero" — a8[0] == 2 must yield st0=false.
		flag, ok := f.GetA(a8Family, 0)
		f.St0 = ok && flag.ToBigIntUnsigned().Cmp(big.NewInt(1)) == 0

	case instr.A2St:
		var n uint64
		if f.St0 {
			n = 1
		}
		f.SetA(a8Family, 0, value.FromUintWrapped(n, a8Family.Width()))

	default:
		return host.Step{}, fmt.Errorf("exec: unhandled compare instruction %T", i)
	}
	return host.Step{Kind: host.StepNext}, nil
}

// eqValues implements EqA/EqR's equality rule: two uninitialized slots
// compare equal, one initialized and one not compare unequal, and two
// initialized slots compare by value.
func eqValues(a value.Value, aOk bool, b value.Value, bOk bool) bool {
	if aOk != bOk {
		return false
	}
	if !aOk {
		return true
	}
	return a.ToBigIntUnsigned().Cmp(b.ToBigIntUnsigned()) == 0
}
