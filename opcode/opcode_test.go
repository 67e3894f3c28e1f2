package opcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aluvm-go/aluvm/opcode"
)

func TestCoreRanges_ArePairwiseDisjoint(t *testing.T) {
	ranges := opcode.AllCoreRanges()
	for i := range ranges {
		for j := range ranges {
			if i == j {
				continue
			}
			a, b := ranges[i], ranges[j]
			overlap := a.Low <= b.High && b.Low <= a.High
			assert.Falsef(t, overlap, "ranges %v and %v overlap", a, b)
		}
	}
}

func TestClassify_Nop(t *testing.T) {
	cat, ok := opcode.Classify(opcode.Nop)
	assert.True(t, ok)
	assert.Equal(t, opcode.CategoryNop, cat)
}

func TestClassify_HostWindow(t *testing.T) {
	cat, ok := opcode.Classify(opcode.HostWindow.Low)
	assert.True(t, ok)
	assert.Equal(t, opcode.CategoryHost, cat)
}

func TestClassify_UnassignedGapFails(t *testing.T) {
	_, ok := opcode.Classify(0x60)
	assert.False(t, ok)
}

func TestClassify_EachCoreOpcode(t *testing.T) {
	cases := []struct {
		op  byte
		cat opcode.Category
	}{
		{opcode.Fail, opcode.CategoryControlFlow},
		{opcode.Ret, opcode.CategoryControlFlow},
		{opcode.ZeroA, opcode.CategoryPut},
		{opcode.PutIfR, opcode.CategoryPut},
		{opcode.SwpA, opcode.CategoryMove},
		{opcode.AMov, opcode.CategoryMove},
		{opcode.Gt, opcode.CategoryCompare},
		{opcode.A2St, opcode.CategoryCompare},
		{opcode.Neg, opcode.CategoryArithmetic},
		{opcode.Abs, opcode.CategoryArithmetic},
		{opcode.And, opcode.CategoryBitwise},
		{opcode.Not, opcode.CategoryBitwise},
		{opcode.BytesPut, opcode.CategoryBytes},
		{opcode.BytesTransl, opcode.CategoryBytes},
		{opcode.DigestRipemd, opcode.CategoryDigest},
		{opcode.SecpGen, opcode.CategorySecp256k1},
		{opcode.EdGen, opcode.CategoryCurve25519},
	}
	for _, tc := range cases {
		cat, ok := opcode.Classify(tc.op)
		assert.True(t, ok)
		assert.Equal(t, tc.cat, cat)
	}
}
