package regfile_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/regfile"
	"github.com/aluvm-go/aluvm/value"
)

func TestNew_St0StartsTrue(t *testing.T) {
	f := regfile.New()
	assert.True(t, f.St0)
}

func TestZeroA_AllBytesZero(t *testing.T) {
	f := regfile.New()
	f.ZeroA(0, 0)
	v, ok := f.GetA(0, 0)
	require.True(t, ok)
	if !v.IsZero() {
		t.Fatalf("expected zero value, got %s", spew.Sdump(v))
	}
}

func TestClA_MakesSlotAbsent(t *testing.T) {
	f := regfile.New()
	f.SetA(0, 0, value.Zero(8))
	f.ClA(0, 0)
	_, ok := f.GetA(0, 0)
	assert.False(t, ok)
}

func TestPutIfA_NeverOverwritesInitialized(t *testing.T) {
	f := regfile.New()
	f.SetA(0, 0, value.FromBytes([]byte{5}))

	changed := f.PutIfA(0, 0, value.FromBytes([]byte{9}))
	assert.False(t, changed)

	got, ok := f.GetA(0, 0)
	require.True(t, ok)
	assert.Equal(t, []byte{5}, got.Bytes())
}

func TestPutIfA_WritesWhenUninitialized(t *testing.T) {
	f := regfile.New()
	changed := f.PutIfA(0, 0, value.FromBytes([]byte{9}))
	assert.True(t, changed)
	got, ok := f.GetA(0, 0)
	require.True(t, ok)
	assert.Equal(t, []byte{9}, got.Bytes())
}

func TestSetA_TruncatesToWidth(t *testing.T) {
	f := regfile.New()
	f.SetA(0, 0, value.FromBytes([]byte{1, 2, 3, 4})) // a8 width is 8 bits = 1 byte
	got, ok := f.GetA(0, 0)
	require.True(t, ok)
	assert.Equal(t, []byte{1}, got.Bytes())
}

func TestJmp_OverflowsAtMaxCounter(t *testing.T) {
	f := regfile.New()
	f.Cy0 = regfile.MaxCounter
	ok := f.Jmp()
	assert.False(t, ok)
	assert.Equal(t, uint16(regfile.MaxCounter), f.Cy0)
}

func TestCallRet_RoundTrip(t *testing.T) {
	f := regfile.New()
	site := reg.LibSite{Offset: 42}
	ok := f.Call(site)
	require.True(t, ok)
	assert.Equal(t, uint16(1), f.Cy0)
	assert.Equal(t, uint16(1), f.Cp0)

	got, ok := f.Ret()
	require.True(t, ok)
	assert.Equal(t, site, got)
	assert.Equal(t, uint16(0), f.Cp0)
}

func TestRet_UnderflowFails(t *testing.T) {
	f := regfile.New()
	_, ok := f.Ret()
	assert.False(t, ok)
}

func TestCall_StackDepthBound(t *testing.T) {
	f := regfile.New()
	for i := 0; i < regfile.MaxCallDepth; i++ {
		require.True(t, f.Call(reg.LibSite{Offset: uint16(i)}))
	}
	assert.False(t, f.Call(reg.LibSite{Offset: 0}))
}

func TestBlobRegisters(t *testing.T) {
	f := regfile.New()
	b := value.NewBlob([]byte("hello"))
	f.SetS(reg.SIndex(3), b)
	got, ok := f.GetS(reg.SIndex(3))
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), got.Bytes)
}
