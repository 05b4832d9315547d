package coherent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestANDTruthTable(t *testing.T) {
	cases := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for i, c := range cases {
		u, err := New(3, WithRand(rand.New(rand.NewSource(int64(90+i)))))
		require.NoError(t, err)
		require.NoError(t, u.SetBit(0, c.a))
		require.NoError(t, u.SetBit(1, c.b))
		require.NoError(t, u.AND(0, 1, 2))
		p, err := u.Prob(2)
		require.NoError(t, err)
		if c.want {
			assert.InDelta(t, 1.0, p, 1e-9, "case %d", i)
		} else {
			assert.InDelta(t, 0.0, p, 1e-9, "case %d", i)
		}
	}
}

func TestORTruthTable(t *testing.T) {
	cases := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, true},
	}
	for i, c := range cases {
		u, err := New(3, WithRand(rand.New(rand.NewSource(int64(100+i)))))
		require.NoError(t, err)
		require.NoError(t, u.SetBit(0, c.a))
		require.NoError(t, u.SetBit(1, c.b))
		require.NoError(t, u.OR(0, 1, 2))
		p, err := u.Prob(2)
		require.NoError(t, err)
		if c.want {
			assert.InDelta(t, 1.0, p, 1e-9, "case %d", i)
		} else {
			assert.InDelta(t, 0.0, p, 1e-9, "case %d", i)
		}
	}
}

func TestXORTruthTable(t *testing.T) {
	cases := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	for i, c := range cases {
		u, err := New(3, WithRand(rand.New(rand.NewSource(int64(110+i)))))
		require.NoError(t, err)
		require.NoError(t, u.SetBit(0, c.a))
		require.NoError(t, u.SetBit(1, c.b))
		require.NoError(t, u.XOR(0, 1, 2))
		p, err := u.Prob(2)
		require.NoError(t, err)
		if c.want {
			assert.InDelta(t, 1.0, p, 1e-9, "case %d", i)
		} else {
			assert.InDelta(t, 0.0, p, 1e-9, "case %d", i)
		}
	}
}

func TestANDWithAliasedOutput(t *testing.T) {
	// outputBit aliases inputBit1: exercises the ancilla-compose path.
	u, err := New(2, WithRand(rand.New(rand.NewSource(120))))
	require.NoError(t, err)
	require.NoError(t, u.SetBit(0, true))
	require.NoError(t, u.SetBit(1, false))
	require.NoError(t, u.AND(0, 1, 0))
	p, err := u.Prob(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p, 1e-9)
	assert.Equal(t, 2, u.QubitCount())
}

func TestXORSameInputIsZero(t *testing.T) {
	u, err := New(2, WithRand(rand.New(rand.NewSource(121))))
	require.NoError(t, err)
	require.NoError(t, u.SetBit(0, true))
	require.NoError(t, u.XOR(0, 0, 1))
	p, err := u.Prob(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p, 1e-9)
}

func TestCLANDWithClassicalTrue(t *testing.T) {
	u, err := New(2, WithRand(rand.New(rand.NewSource(122))))
	require.NoError(t, err)
	require.NoError(t, u.SetBit(0, true))
	require.NoError(t, u.CLAND(0, true, 1))
	p, err := u.Prob(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestCLORWithClassicalFalse(t *testing.T) {
	u, err := New(2, WithRand(rand.New(rand.NewSource(123))))
	require.NoError(t, err)
	require.NoError(t, u.SetBit(0, true))
	require.NoError(t, u.CLOR(0, false, 1))
	p, err := u.Prob(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestCLXORWithClassicalTrue(t *testing.T) {
	u, err := New(2, WithRand(rand.New(rand.NewSource(124))))
	require.NoError(t, err)
	require.NoError(t, u.SetBit(0, true))
	require.NoError(t, u.CLXOR(0, true, 1))
	p, err := u.Prob(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p, 1e-9)
}

func TestXORRangeAppliesBitwise(t *testing.T) {
	u, err := New(6, WithRand(rand.New(rand.NewSource(125))))
	require.NoError(t, err)
	require.NoError(t, u.SetBit(0, true))
	require.NoError(t, u.SetBit(1, false))
	require.NoError(t, u.SetBit(2, true))
	require.NoError(t, u.SetBit(3, true))
	require.NoError(t, u.XORRange(0, 2, 4, 2))

	p4, err := u.Prob(4)
	require.NoError(t, err)
	p5, err := u.Prob(5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p4, 1e-9)
	assert.InDelta(t, 1.0, p5, 1e-9)
}
