package coherent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQFTOnZeroStateGivesUniformSuperposition(t *testing.T) {
	u := newTestUnit(t, 3, 130)
	require.NoError(t, u.QFT(0, 3))
	out := make([]float64, u.MaxQPower())
	require.NoError(t, u.ProbArray(out))
	for i, p := range out {
		assert.InDelta(t, 1.0/8.0, p, 1e-9, "basis state %d", i)
	}
}

func TestQFTRejectsOutOfRange(t *testing.T) {
	u := newTestUnit(t, 2, 131)
	assert.ErrorIs(t, u.QFT(1, 5), ErrInvalidArgument)
}

func TestQFTOnSingleQubitIsHadamard(t *testing.T) {
	a := newTestUnit(t, 1, 132)
	require.NoError(t, a.QFT(0, 1))

	b := newTestUnit(t, 1, 132)
	require.NoError(t, b.H(0))

	outA := make([]complex128, a.MaxQPower())
	outB := make([]complex128, b.MaxQPower())
	a.CloneRawState(outA)
	b.CloneRawState(outB)
	assert.Equal(t, outA, outB)
}
