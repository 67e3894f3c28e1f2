package exec

import (
	"fmt"

	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/regfile"
	"github.com/aluvm-go/aluvm/value"
)

// execMove runs the Swp*/Mov*/AMov family (spec.md §4.3.3). Every
// variant here propagates an uninitialized source by clearing the
// destination slot rather than writing a zero Value, keeping the
// register file's "no value" state distinct from an actual zero all
// the way through a move, the same distinction ZeroA/ClA already
// preserve at the Put layer.
func execMove(f *regfile.RegisterFile, i instr.Instruction) (host.Step, error) {
	switch v := i.(type) {
	case instr.SwpA:
		a, aOk := f.GetA(v.Family, v.IndexFirst)
		b, bOk := f.GetA(v.Family, v.IndexOther)
		setOrClearA(f, v.Family, v.IndexFirst, b, bOk)
		setOrClearA(f, v.Family, v.IndexOther, a, aOk)

	case instr.SwpR:
		a, aOk := f.GetR(v.Family, v.IndexFirst)
		b, bOk := f.GetR(v.Family, v.IndexOther)
		setOrClearR(f, v.Family, v.IndexFirst, b, bOk)
		setOrClearR(f, v.Family, v.IndexOther, a, aOk)

	case instr.SwpAR:
		a, aOk := f.GetA(v.FamilyA, v.IndexA)
		r, rOk := f.GetR(v.FamilyR, v.IndexR)
		setOrClearA(f, v.FamilyA, v.IndexA, r, rOk)
		setOrClearR(f, v.FamilyR, v.IndexR, a, aOk)

	case instr.MovA:
		val, ok := f.GetA(v.Family, v.IndexSrc)
		setOrClearA(f, v.Family, v.IndexDst, val, ok)

	case instr.MovR:
		val, ok := f.GetR(v.Family, v.IndexSrc)
		setOrClearR(f, v.Family, v.IndexDst, val, ok)

	case instr.MovAR:
		val, ok := f.GetA(v.FamilyA, v.IndexA)
		setOrClearR(f, v.FamilyR, v.IndexR, val, ok)

	case instr.MovRA:
		val, ok := f.GetR(v.FamilyR, v.IndexR)
		setOrClearA(f, v.FamilyA, v.IndexA, val, ok)

	case instr.AMov:
		execAMov(f, v)

	default:
		return host.Step{}, fmt.Errorf("exec: unhandled move instruction %T", i)
	}
	return host.Step{Kind: host.StepNext}, nil
}

func setOrClearA(f *regfile.RegisterFile, fam reg.AFamily, idx reg.Reg32, v value.Value, ok bool) {
	if !ok {
		f.ClA(fam, idx)
		return
	}
	f.SetA(fam, idx, v)
}

func setOrClearR(f *regfile.RegisterFile, fam reg.RFamily, idx reg.Reg32, v value.Value, ok bool) {
	if !ok {
		f.ClR(fam, idx)
		return
	}
	f.SetR(fam, idx, v)
}

// execAMov reinterprets every slot of SrcFamily under NumType and
// writes the result into the matching slot of DstFamily, widening or
// truncating via big.Int conversion so sign extension on growth and
// MSB truncation on shrinkage both fall out of the same code path
// (value.ToBigInt / value.FromBigIntWrapped). NumFloat23/NumFloat52 are
// handled identically to NumSigned: SPEC_FULL.md carries no IEEE
// conformance requirement for float registers, so AMov's float variants
// only need to preserve the same truncate/extend behavior as signed
// integers, not reproduce float bit-layout semantics.
func execAMov(f *regfile.RegisterFile, v instr.AMov) {
	signed := v.NumType != reg.NumUnsigned
	dstWidth := v.DstFamily.Width()
	for idx := reg.Reg32(0); idx <= reg.MaxReg32; idx++ {
		src, ok := f.GetA(v.SrcFamily, idx)
		if !ok {
			f.ClA(v.DstFamily, idx)
			continue
		}
		bi := src.ToBigInt(signed)
		f.SetA(v.DstFamily, idx, value.FromBigIntWrapped(bi, dstWidth))
	}
}
