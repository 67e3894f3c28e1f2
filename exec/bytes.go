package exec

import (
	"bytes"
	"fmt"

	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/regfile"
	"github.com/aluvm-go/aluvm/value"
)

// execBytes runs the S-register (blob) instruction family (spec.md
// §4.3.7), using the standard library's bytes package for the
// comparison/search primitives the same way arm-emulator leans on
// stdlib for its own byte-slice bookkeeping.
func execBytes(f *regfile.RegisterFile, i instr.Instruction) (host.Step, error) {
	switch v := i.(type) {
	case instr.BytesPut:
		f.SetS(v.Index, v.Blob)

	case instr.BytesMov:
		b, ok := f.GetS(v.Src)
		if ok {
			f.SetS(v.Dst, b)
		} else {
			f.ClS(v.Dst)
		}

	case instr.BytesSwp:
		a, aOk := f.GetS(v.First)
		b, bOk := f.GetS(v.Other)
		if bOk {
			f.SetS(v.First, b)
		} else {
			f.ClS(v.First)
		}
		if aOk {
			f.SetS(v.Other, a)
		} else {
			f.ClS(v.Other)
		}

	case instr.BytesFill:
		b, ok := f.GetS(v.Index)
		if !ok {
			break
		}
		filled := value.NewBlob(b.Bytes)
		from, to := clampRange(v.From, v.To, len(filled.Bytes))
		for j := from; j < to; j++ {
			filled.Bytes[j] = v.Val
		}
		f.SetS(v.Index, filled)

	case instr.BytesLenS:
		n := 0
		if b, ok := f.GetS(v.Index); ok {
			n = b.Len()
		}
		f.SetA(a16Family, 0, value.FromUintWrapped(uint64(n), a16Family.Width()))

	case instr.BytesCount:
		n := 0
		if b, ok := f.GetS(v.Index); ok {
			n = bytes.Count(b.Bytes, []byte{v.Byte})
		}
		f.SetA(a16Family, 0, value.FromUintWrapped(uint64(n), a16Family.Width()))

	case instr.BytesCmp:
		a, aOk := f.GetS(v.First)
		b, bOk := f.GetS(v.Other)
		f.St0 = aOk && bOk && bytes.Equal(a.Bytes, b.Bytes)

	case instr.BytesComm:
		n := 0
		a, aOk := f.GetS(v.First)
		b, bOk := f.GetS(v.Other)
		if aOk && bOk {
			n = commonPrefixLen(a.Bytes, b.Bytes)
		}
		f.SetA(a16Family, 0, value.FromUintWrapped(uint64(n), a16Family.Width()))

	case instr.BytesFind:
		n := 0
		hay, hOk := f.GetS(v.Haystack)
		needle, nOk := f.GetS(v.Needle)
		if hOk && nOk && len(needle.Bytes) > 0 {
			n = bytes.Count(hay.Bytes, needle.Bytes)
		}
		f.SetA(a16Family, 0, value.FromUintWrapped(uint64(n), a16Family.Width()))

	case instr.BytesExtrA:
		src, ok := f.GetS(v.Src)
		widthBytes := v.Dst.Width() / 8
		var slice []byte
		if ok {
			slice = extractPadded(src.Bytes, int(v.Offset), widthBytes)
		} else {
			slice = make([]byte, widthBytes)
		}
		f.SetA(v.Dst.Family, v.Dst.Index, value.FromBytes(slice))

	case instr.BytesExtrR:
		src, ok := f.GetS(v.Src)
		widthBytes := v.Dst.Width() / 8
		var slice []byte
		if ok {
			slice = extractPadded(src.Bytes, int(v.Offset), widthBytes)
		} else {
			slice = make([]byte, widthBytes)
		}
		f.SetR(v.Dst.Family, v.Dst.Index, value.FromBytes(slice))

	case instr.BytesJoin:
		a, _ := f.GetS(v.Src1)
		b, _ := f.GetS(v.Src2)
		joined := append(append([]byte{}, a.Bytes...), b.Bytes...)
		f.SetS(v.Dst, value.NewBlob(clampBlob(joined)))

	case instr.BytesSplit:
		src, ok := f.GetS(v.Src)
		if !ok {
			break
		}
		at := int(v.Offset)
		if at > len(src.Bytes) {
			at = len(src.Bytes)
		}
		f.SetS(v.Dst1, value.NewBlob(src.Bytes[:at]))
		f.SetS(v.Dst2, value.NewBlob(src.Bytes[at:]))

	case instr.BytesIns:
		from, fOk := f.GetS(v.From)
		to, tOk := f.GetS(v.To)
		if !tOk {
			break
		}
		if !fOk {
			break
		}
		at := clampOffset(int(v.Offset), len(to.Bytes))
		out := append(append([]byte{}, to.Bytes[:at]...), from.Bytes...)
		out = append(out, to.Bytes[at:]...)
		f.SetS(v.To, value.NewBlob(clampBlob(out)))

	case instr.BytesDel:
		b, ok := f.GetS(v.Index)
		if !ok {
			break
		}
		from, to := clampRange(v.From, v.To, len(b.Bytes))
		out := append(append([]byte{}, b.Bytes[:from]...), b.Bytes[to:]...)
		f.SetS(v.Index, value.NewBlob(out))

	case instr.BytesTransl:
		src, ok := f.GetS(v.Src)
		if !ok {
			f.ClS(v.Dst)
			break
		}
		from, to := clampRange(v.From, v.To, len(src.Bytes))
		f.SetS(v.Dst, value.NewBlob(append([]byte{}, src.Bytes[from:to]...)))

	default:
		return host.Step{}, fmt.Errorf("exec: unhandled bytes instruction %T", i)
	}
	return host.Step{Kind: host.StepNext}, nil
}

// clampRange narrows [from, to) to a valid, ordered slice bound within
// [0, n].
func clampRange(from, to uint16, n int) (int, int) {
	f := clampOffset(int(from), n)
	t := clampOffset(int(to), n)
	if t < f {
		t = f
	}
	return f, t
}

func clampOffset(offset, n int) int {
	if offset < 0 {
		return 0
	}
	if offset > n {
		return n
	}
	return offset
}

// extractPadded returns exactly n bytes of src starting at offset,
// zero-padding past the end of src. BytesExtrA/BytesExtrR name no
// explicit length field (instr/bytes.go): the extraction length is the
// destination register's own width in bytes.
func extractPadded(src []byte, offset, n int) []byte {
	out := make([]byte, n)
	if offset >= len(src) {
		return out
	}
	copy(out, src[offset:])
	return out
}

// clampBlob truncates b to value.MaxBlobLen. spec.md names no
// Bytes-category overflow-Stop condition, so a result that would
// exceed the wire format's length cap is clamped rather than trapping
// the program.
func clampBlob(b []byte) []byte {
	if len(b) > value.MaxBlobLen {
		return b[:value.MaxBlobLen]
	}
	return b
}

// commonPrefixLen returns the length of the shared prefix of a and b.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
