package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aluvm-go/aluvm/value"
)

func TestZero_AllBytesZero(t *testing.T) {
	v := value.Zero(64)
	assert.True(t, v.IsZero())
	assert.Equal(t, 8, len(v.Bytes()))
}

func TestTruncated_NarrowsAndZeroExtends(t *testing.T) {
	v := value.FromBytes([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	narrow := v.Truncated(8)
	assert.Equal(t, []byte{0xFF}, narrow.Bytes())

	wide := v.Truncated(64)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0}, wide.Bytes())
}

func TestBitLen(t *testing.T) {
	assert.Equal(t, 0, value.FromBytes([]byte{0, 0}).BitLen())
	assert.Equal(t, 1, value.FromBytes([]byte{1}).BitLen())
	assert.Equal(t, 8, value.FromBytes([]byte{0x80}).BitLen())
	assert.Equal(t, 9, value.FromBytes([]byte{0x00, 0x01}).BitLen())
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, value.FromBytes([]byte{0}).PopCount())
	assert.Equal(t, 8, value.FromBytes([]byte{0xFF}).PopCount())
	assert.Equal(t, 4, value.FromBytes([]byte{0x0F}).PopCount())
}

func TestWithSignFlipped(t *testing.T) {
	v := value.FromBytes([]byte{0x00, 0x00})
	flipped := v.WithSignFlipped()
	assert.Equal(t, []byte{0x00, 0x80}, flipped.Bytes())
}
