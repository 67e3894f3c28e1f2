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

// execBitwise runs the And/Or/Xor/Shl/Shr/Scl/Scr/Not family (spec.md
// §4.3.6). And/Or/Xor/Shl/Shr/Scl/Scr all narrow their result to the
// fixed a8[Dst] slot, the same "narrow destination" convention Len/Cnt
// already use for a16[0]; Shl/Shr/Scl/Scr in turn read their shift or
// rotate amount from the fixed a8[Src2] slot rather than Src2's own
// family, per instr/bitwise.go's doc comments.
func execBitwise(f *regfile.RegisterFile, i instr.Instruction) (host.Step, error) {
	switch v := i.(type) {
	case instr.And:
		bitwiseBinary(f, v.Family, v.Src1, v.Src2, v.Dst, func(a, b *big.Int) *big.Int {
			return new(big.Int).And(a, b)
		})

	case instr.Or:
		bitwiseBinary(f, v.Family, v.Src1, v.Src2, v.Dst, func(a, b *big.Int) *big.Int {
			return new(big.Int).Or(a, b)
		})

	case instr.Xor:
		bitwiseBinary(f, v.Family, v.Src1, v.Src2, v.Dst, func(a, b *big.Int) *big.Int {
			return new(big.Int).Xor(a, b)
		})

	case instr.Shl:
		shiftOp(f, v.Family, v.Src1, v.Src2, v.Dst, func(a *big.Int, amt uint, width int) *big.Int {
			return new(big.Int).Lsh(a, amt)
		})

	case instr.Shr:
		shiftOp(f, v.Family, v.Src1, v.Src2, v.Dst, func(a *big.Int, amt uint, width int) *big.Int {
			return new(big.Int).Rsh(a, amt)
		})

	case instr.Scl:
		shiftOp(f, v.Family, v.Src1, v.Src2, v.Dst, func(a *big.Int, amt uint, width int) *big.Int {
			return rotateBits(a, amt, width, true)
		})

	case instr.Scr:
		shiftOp(f, v.Family, v.Src1, v.Src2, v.Dst, func(a *big.Int, amt uint, width int) *big.Int {
			return rotateBits(a, amt, width, false)
		})

	case instr.Not:
		val, ok := f.GetA(v.Family, v.Index)
		if ok {
			mask := new(big.Int).Lsh(big.NewInt(1), uint(v.Family.Width()))
			mask.Sub(mask, big.NewInt(1))
			result := new(big.Int).Xor(val.ToBigIntUnsigned(), mask)
			f.SetA(v.Family, v.Index, value.FromBigIntWrapped(result, v.Family.Width()))
		}

	default:
		return host.Step{}, fmt.Errorf("exec: unhandled bitwise instruction %T", i)
	}
	return host.Step{Kind: host.StepNext}, nil
}

func bitwiseBinary(f *regfile.RegisterFile, family reg.AFamily, src1, src2 reg.Reg32, dst reg.Reg8, op func(a, b *big.Int) *big.Int) {
	a, aOk := f.GetA(family, src1)
	b, bOk := f.GetA(family, src2)
	if !aOk || !bOk {
		return
	}
	result := op(a.ToBigIntUnsigned(), b.ToBigIntUnsigned())
	f.SetA(a8Family, reg.Reg32(dst), value.FromBigIntWrapped(result, a8Family.Width()))
}

// shiftOp reads src1's full-width value and the shift/rotate amount
// from a8[Src2], applies compute within src1's family width, and writes
// the truncated result into a8[Dst].
func shiftOp(f *regfile.RegisterFile, family reg.AFamily, src1, src2 reg.Reg32, dst reg.Reg8, compute func(a *big.Int, amt uint, width int) *big.Int) {
	a, aOk := f.GetA(family, src1)
	if !aOk {
		return
	}
	amtVal, amtOk := f.GetA(a8Family, src2)
	if !amtOk {
		return
	}
	amt := uint(amtVal.ToBigIntUnsigned().Uint64())
	width := family.Width()
	result := compute(a.ToBigIntUnsigned(), amt, width)
	f.SetA(a8Family, reg.Reg32(dst), value.FromBigIntWrapped(result, a8Family.Width()))
}

// rotateBits rotates a left (left=true) or right within a width-bit
// field, used by Scl/Scr.
func rotateBits(a *big.Int, amt uint, width int, left bool) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(width))
	mask.Sub(mask, big.NewInt(1))
	n := new(big.Int).And(a, mask)
	amt %= uint(width)
	if amt == 0 {
		return n
	}
	if !left {
		amt = uint(width) - amt
	}
	hi := new(big.Int).Lsh(n, amt)
	hi.And(hi, mask)
	lo := new(big.Int).Rsh(n, uint(width)-amt)
	return new(big.Int).Or(hi, lo)
}
