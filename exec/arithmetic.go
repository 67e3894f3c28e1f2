package exec

import (
	"fmt"
	"math/big"

	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/regfile"
	"github.com/aluvm-go/aluvm/value"
)

// execArithmetic runs the Neg/Stp/Add/Sub/Mul/Div/Mod/Abs family
// (spec.md §4.3.5). IntChecked* modes trap (Stop, st0=false) on
// overflow; IntUnchecked* and Float wrap at the destination's width;
// the ArbitraryPrecision modes widen the result into the fixed
// reg.WidestAFamily/reg.APIndex slot instead of either, per spec.md §9.
func execArithmetic(f *regfile.RegisterFile, i instr.Instruction) (host.Step, error) {
	switch v := i.(type) {
	case instr.Neg:
		val, ok := f.GetA(v.Family, v.Index)
		if ok {
			f.SetA(v.Family, v.Index, val.WithSignFlipped())
		}

	case instr.Abs:
		val, ok := f.GetA(v.Family, v.Index)
		if ok {
			bi := val.ToBigIntSigned()
			bi.Abs(bi)
			f.SetA(v.Family, v.Index, value.FromBigIntWrapped(bi, v.Family.Width()))
		}

	case instr.Stp:
		return execStp(f, v)

	case instr.Add:
		return execArithBinary(f, v.Mode, v.Family, v.Src1, v.Src2, func(a, b *big.Int) *big.Int {
			return new(big.Int).Add(a, b)
		})

	case instr.Sub:
		return execArithBinary(f, v.Mode, v.Family, v.Src1, v.Src2, func(a, b *big.Int) *big.Int {
			return new(big.Int).Sub(a, b)
		})

	case instr.Mul:
		return execArithBinary(f, v.Mode, v.Family, v.Src1, v.Src2, func(a, b *big.Int) *big.Int {
			return new(big.Int).Mul(a, b)
		})

	case instr.Div:
		return execDiv(f, v)

	case instr.Mod:
		return execMod(f, v)

	default:
		return host.Step{}, fmt.Errorf("exec: unhandled arithmetic instruction %T", i)
	}
	return host.Step{Kind: host.StepNext}, nil
}

// arithDest resolves where a binary arithmetic op's result lands:
// src2's own slot ordinarily, or the fixed arbitrary-precision slot
// when mode widens instead of trapping/wrapping (spec.md §9).
func arithDest(mode reg.ArithmeticMode, family reg.AFamily, src2 reg.Reg32) (reg.AFamily, reg.Reg32) {
	if mode.ArbitraryPrecision() {
		return reg.WidestAFamily, reg.APIndex
	}
	return family, src2
}

// execArithBinary implements the shared trap/wrap/widen dispatch for
// Add/Sub/Mul: read src1 and src2 under Mode's signedness, compute op,
// and land the result per arithDest. An uninitialized operand makes the
// whole op a no-op preserving existing register contents, consistent
// with spec.md §4.3.5's silence on uninitialized arithmetic operands
// and with Gt/Lt's "no value has no defined result" treatment.
func execArithBinary(f *regfile.RegisterFile, mode reg.ArithmeticMode, family reg.AFamily, src1, src2 reg.Reg32, op func(a, b *big.Int) *big.Int) (host.Step, error) {
	a, aOk := f.GetA(family, src1)
	b, bOk := f.GetA(family, src2)
	if !aOk || !bOk {
		return host.Step{Kind: host.StepNext}, nil
	}
	result := op(a.ToBigInt(mode.Signed()), b.ToBigInt(mode.Signed()))

	dstFam, dstIdx := arithDest(mode, family, src2)
	if mode.ArbitraryPrecision() {
		f.SetA(dstFam, dstIdx, value.FromBigIntWrapped(result, dstFam.Width()))
		return host.Step{Kind: host.StepNext}, nil
	}

	width := dstFam.Width()
	if mode == reg.IntCheckedUnsigned || mode == reg.IntCheckedSigned {
		if !value.FitsWidth(result, width, mode.Signed()) {
			f.St0 = false
			return host.Step{Kind: host.StepStop}, nil
		}
	}
	f.SetA(dstFam, dstIdx, value.FromBigIntWrapped(result, width))
	return host.Step{Kind: host.StepNext}, nil
}

// execDiv implements Div's div-by-zero-always-stops rule, which holds
// regardless of Mode (spec.md §4.3.5), checked ahead of the normal
// trap/wrap/widen dispatch.
func execDiv(f *regfile.RegisterFile, v instr.Div) (host.Step, error) {
	a, aOk := f.GetA(v.Family, v.Src1)
	b, bOk := f.GetA(v.Family, v.Src2)
	if !aOk || !bOk {
		return host.Step{Kind: host.StepNext}, nil
	}
	divisor := b.ToBigInt(v.Mode.Signed())
	if divisor.Sign() == 0 {
		f.St0 = false
		return host.Step{Kind: host.StepStop}, nil
	}
	return execArithBinary(f, v.Mode, v.Family, v.Src1, v.Src2, func(a, b *big.Int) *big.Int {
		return new(big.Int).Quo(a, b)
	})
}

// execMod implements Mod: an unsigned-only modulus with three
// independently-named (family, index) operands and no arithmetic mode
// (instr.Mod carries none). Division by zero stops the program, the
// same universal rule Div enforces, applied here by extrapolation since
// spec.md is silent on Mod specifically.
func execMod(f *regfile.RegisterFile, v instr.Mod) (host.Step, error) {
	a, aOk := f.GetA(v.FamilySrc1, v.Src1)
	b, bOk := f.GetA(v.FamilySrc2, v.Src2)
	if !aOk || !bOk {
		return host.Step{Kind: host.StepNext}, nil
	}
	divisor := b.ToBigIntUnsigned()
	if divisor.Sign() == 0 {
		f.St0 = false
		return host.Step{Kind: host.StepStop}, nil
	}
	result := new(big.Int).Mod(a.ToBigIntUnsigned(), divisor)
	f.SetA(v.FamilyDst, v.Dst, value.FromBigIntWrapped(result, v.FamilyDst.Width()))
	return host.Step{Kind: host.StepNext}, nil
}

// execStp implements Stp: step Index by the 4-bit magnitude Step, in
// the direction Increment selects, under the exact same trap/wrap/widen
// dispatch as Add/Sub (spec.md's Execution Scenario E: wraparound under
// IntUnchecked, a trap under IntChecked).
func execStp(f *regfile.RegisterFile, v instr.Stp) (host.Step, error) {
	_, ok := f.GetA(v.Family, v.Index)
	if !ok {
		return host.Step{Kind: host.StepNext}, nil
	}
	delta := new(big.Int).SetUint64(uint64(v.Step))
	op := func(a, _ *big.Int) *big.Int {
		if v.Increment {
			return new(big.Int).Add(a, delta)
		}
		return new(big.Int).Sub(a, delta)
	}
	// Stp has one operand, not two; reuse execArithBinary by reading
	// Index against itself, since op ignores its second argument.
	return execArithBinary(f, v.Mode, v.Family, v.Index, v.Index, op)
}
