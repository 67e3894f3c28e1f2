package value

// MaxBlobLen is the largest a Blob may be, per spec.md §3.
const MaxBlobLen = 65535

// Blob is a variable-length byte string carrying its own length
// explicitly (rather than being null-terminated or capacity-padded).
type Blob struct {
	Bytes []byte
}

// NewBlob constructs a Blob, panicking if b exceeds MaxBlobLen — callers
// at the codec boundary are expected to have already validated length
// against the u16 length prefix they read.
func NewBlob(b []byte) Blob {
	if len(b) > MaxBlobLen {
		panic("value: blob exceeds 65535 bytes")
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Blob{Bytes: cp}
}

// Len returns the blob's length in bytes.
func (b Blob) Len() int {
	return len(b.Bytes)
}
