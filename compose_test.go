package coherent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeJoinsTwoBasisStates(t *testing.T) {
	a, err := NewWithPermutation(2, 1, WithRand(rand.New(rand.NewSource(50))))
	require.NoError(t, err)
	b, err := NewWithPermutation(1, 1, WithRand(rand.New(rand.NewSource(51))))
	require.NoError(t, err)

	joined := Compose(a, b)
	assert.Equal(t, 3, joined.QubitCount())

	want := uint64(1) | (uint64(1) << 2)
	p, err := joined.ProbAll(want)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestComposeLeavesInputsUnmodified(t *testing.T) {
	a, err := NewWithPermutation(1, 1, WithRand(rand.New(rand.NewSource(52))))
	require.NoError(t, err)
	b, err := NewWithPermutation(1, 0, WithRand(rand.New(rand.NewSource(53))))
	require.NoError(t, err)

	_ = Compose(a, b)

	pa, err := a.ProbAll(1)
	require.NoError(t, err)
	pb, err := b.ProbAll(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pa, 1e-9)
	assert.InDelta(t, 1.0, pb, 1e-9)
}

func TestDecohereSplitsBasisState(t *testing.T) {
	u, err := NewWithPermutation(3, 5, WithRand(rand.New(rand.NewSource(54)))) // 101
	require.NoError(t, err)

	part, err := New(1, WithRand(rand.New(rand.NewSource(541))))
	require.NoError(t, err)
	require.NoError(t, u.Decohere(0, 1, part))

	pPart, err := part.ProbAll(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pPart, 1e-9)

	assert.Equal(t, 2, u.QubitCount())
	pRem, err := u.ProbAll(2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pRem, 1e-9)
}

func TestDisposeDropsQubitsWithoutReturningThem(t *testing.T) {
	u, err := NewWithPermutation(3, 7, WithRand(rand.New(rand.NewSource(55))))
	require.NoError(t, err)
	require.NoError(t, u.Dispose(0, 2))
	assert.Equal(t, 1, u.QubitCount())
	p, err := u.ProbAll(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestDecohereRejectsOutOfRange(t *testing.T) {
	u := newTestUnit(t, 2, 56)
	dest, err := New(5, WithRand(rand.New(rand.NewSource(560))))
	require.NoError(t, err)
	err = u.Decohere(1, 5, dest)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDecohereRejectsMismatchedDestinationWidth(t *testing.T) {
	u := newTestUnit(t, 3, 561)
	dest, err := New(2, WithRand(rand.New(rand.NewSource(562))))
	require.NoError(t, err)
	err = u.Decohere(0, 1, dest)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestComposeThenDecohereRoundTripsMagnitude(t *testing.T) {
	a := newTestUnit(t, 1, 57)
	require.NoError(t, a.H(0))
	b, err := NewWithPermutation(1, 1, WithRand(rand.New(rand.NewSource(58))))
	require.NoError(t, err)

	joined := Compose(a, b)
	part, err := New(1, WithRand(rand.New(rand.NewSource(581))))
	require.NoError(t, err)
	require.NoError(t, joined.Decohere(1, 1, part))

	pPart, err := part.ProbAll(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pPart, 1e-9)

	pRem, err := joined.Prob(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pRem, 1e-9)
}
