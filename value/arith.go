package value

import "math/big"

// ToBigIntUnsigned interprets the active bytes as an unsigned
// little-endian integer.
func (v Value) ToBigIntUnsigned() *big.Int {
	be := make([]byte, v.ActiveLen)
	for i := 0; i < v.ActiveLen; i++ {
		be[v.ActiveLen-1-i] = v.bytes[i]
	}
	return new(big.Int).SetBytes(be)
}

// ToBigIntSigned interprets the active bytes as a two's-complement
// signed little-endian integer of the value's active width.
func (v Value) ToBigIntSigned() *big.Int {
	u := v.ToBigIntUnsigned()
	if !v.SignBit() {
		return u
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(v.ActiveLen*8))
	return u.Sub(u, mod)
}

// ToBigInt interprets v as signed or unsigned per the caller's
// arithmetic mode, the common entry point exec's arithmetic executors
// use instead of picking between ToBigIntUnsigned/ToBigIntSigned
// themselves.
func (v Value) ToBigInt(signed bool) *big.Int {
	if signed {
		return v.ToBigIntSigned()
	}
	return v.ToBigIntUnsigned()
}

// FromBigIntWrapped reduces bi modulo 2^widthBits and encodes the
// result little-endian, the "truncate rather than reject" policy
// spec.md §4.4 mandates for register writes outside IntChecked
// arithmetic: negative results wrap into their two's-complement
// bit pattern the same way an unchecked subtraction would.
func FromBigIntWrapped(bi *big.Int, widthBits int) Value {
	widthBytes := widthBits / 8
	mod := new(big.Int).Lsh(big.NewInt(1), uint(widthBits))
	r := new(big.Int).Mod(bi, mod)
	if r.Sign() < 0 {
		r.Add(r, mod)
	}
	be := r.Bytes()
	le := make([]byte, widthBytes)
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return FromBytes(le)
}

// FromUintWrapped is FromBigIntWrapped for a plain uint64, used by the
// instructions that write a small unsigned result (a bit length, a
// population count, a byte count) into a fixed-width counter slot.
func FromUintWrapped(n uint64, widthBits int) Value {
	return FromBigIntWrapped(new(big.Int).SetUint64(n), widthBits)
}

// FitsWidth reports whether bi is representable in widthBits without
// truncation, for the given signedness — the overflow test IntChecked
// arithmetic traps on.
func FitsWidth(bi *big.Int, widthBits int, signed bool) bool {
	if !signed {
		if bi.Sign() < 0 {
			return false
		}
		max := new(big.Int).Lsh(big.NewInt(1), uint(widthBits))
		return bi.Cmp(max) < 0
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(widthBits-1))
	min := new(big.Int).Neg(max)
	max.Sub(max, big.NewInt(1))
	return bi.Cmp(min) >= 0 && bi.Cmp(max) <= 0
}
