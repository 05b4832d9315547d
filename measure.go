package coherent

import (
	"fmt"
	"math"
)

// Prob returns the probability that qubit i reads |1⟩, normalizing the
// register first to restore the invariant that probabilities sum to 1.
func (u *CoherentUnit) Prob(i int) (float64, error) {
	if err := u.checkQubit(i); err != nil {
		return 0, err
	}
	u.normalize()
	p := uint64(1) << uint(i)
	var sum float64
	for idx, a := range u.stateVec {
		if uint64(idx)&p != 0 {
			sum += sqMag(a)
		}
	}
	return sum, nil
}

// ProbAll returns the probability of the exact basis state perm.
func (u *CoherentUnit) ProbAll(perm uint64) (float64, error) {
	if perm >= u.maxQPower {
		return 0, fmt.Errorf("%w: permutation %d out of range for %d qubits", ErrInvalidArgument, perm, u.qubitCount)
	}
	u.normalize()
	return sqMag(u.stateVec[perm]), nil
}

// ProbArray writes the probability of every basis state into out, which
// must have length MaxQPower().
func (u *CoherentUnit) ProbArray(out []float64) error {
	if len(out) != len(u.stateVec) {
		return fmt.Errorf("%w: probability array has %d entries, want %d", ErrInvalidArgument, len(out), len(u.stateVec))
	}
	u.normalize()
	for i, a := range u.stateVec {
		out[i] = sqMag(a)
	}
	return nil
}

// M measures qubit i in the computational basis: it draws an outcome
// weighted by Prob(i), projects the state onto that outcome (zeroing
// every disagreeing amplitude and rescaling the survivors by a freshly
// drawn random global phase over sqrt of the outcome's probability),
// and returns the outcome.
//
// If the outcome has probability exactly 0 — normalize() should make
// this unreachable for any qubit index that passed checkQubit, since
// the two outcome probabilities always sum to 1 — M returns
// ErrDegenerateMeasurement rather than dividing by zero.
func (u *CoherentUnit) M(i int) (bool, error) {
	prob1, err := u.Prob(i)
	if err != nil {
		return false, err
	}
	outcome := u.Rand() < prob1
	var outcomeProb float64
	if outcome {
		outcomeProb = prob1
	} else {
		outcomeProb = 1 - prob1
	}
	if outcomeProb <= 0 {
		return false, fmt.Errorf("%w: measured outcome has zero probability", ErrDegenerateMeasurement)
	}
	p := uint64(1) << uint(i)
	phase := u.randomPhase()
	scale := phase / complex(math.Sqrt(outcomeProb), 0)
	for idx := range u.stateVec {
		bitSet := uint64(idx)&p != 0
		if bitSet != outcome {
			u.stateVec[idx] = 0
		} else {
			u.stateVec[idx] *= scale
		}
	}
	u.updateRunningNorm()
	return outcome, nil
}
