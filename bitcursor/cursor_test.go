package bitcursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aluvm-go/aluvm/bitcursor"
)

func TestCursor_SubByteRoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	w := bitcursor.New(buf)

	require.NoError(t, w.WriteUN(3, 0b101))
	require.NoError(t, w.WriteUN(5, 0b10110))
	require.NoError(t, w.WriteUN(1, 1))
	require.NoError(t, w.WriteUN(7, 0b1010101))

	r := bitcursor.New(buf)
	v3, err := r.ReadUN(3)
	require.NoError(t, err)
	assert.Equal(t, uint8(0b101), v3)

	v5, err := r.ReadUN(5)
	require.NoError(t, err)
	assert.Equal(t, uint8(0b10110), v5)

	v1, err := r.ReadUN(1)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v1)

	v7, err := r.ReadUN(7)
	require.NoError(t, err)
	assert.Equal(t, uint8(0b1010101), v7)
}

func TestCursor_U16LittleEndian(t *testing.T) {
	buf := make([]byte, 2)
	w := bitcursor.New(buf)
	require.NoError(t, w.WriteU16(0x1234))
	assert.Equal(t, []byte{0x34, 0x12}, buf)

	r := bitcursor.New(buf)
	v, err := r.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
}

func TestCursor_RequiresByteAlignmentForU8(t *testing.T) {
	buf := make([]byte, 1)
	c := bitcursor.New(buf)
	require.NoError(t, c.WriteUN(3, 1))
	err := c.WriteU8(0xFF)
	require.Error(t, err)
}

func TestCursor_SliceRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	w := bitcursor.New(buf)
	require.NoError(t, w.WriteSlice([]byte("hello")))

	r := bitcursor.New(buf)
	got, err := r.ReadSlice()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestCursor_EOFOnExactFill(t *testing.T) {
	buf := make([]byte, bitcursor.MaxBytes)
	c := bitcursor.New(buf)
	for i := 0; i < bitcursor.MaxBytes; i++ {
		require.NoError(t, c.WriteU8(0))
	}
	assert.True(t, c.EOF())
	_, err := c.PeekU8()
	require.Error(t, err)
}

func TestCursor_ReadPastEndReturnsEOF(t *testing.T) {
	buf := make([]byte, 1)
	c := bitcursor.New(buf)
	_, err := c.ReadU8()
	require.NoError(t, err)
	_, err = c.ReadU8()
	require.Error(t, err)
}
