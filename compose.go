package coherent

import (
	"fmt"
	"math"
)

// Compose forms the tensor product of u and other, returning a new
// register of u.QubitCount()+other.QubitCount() qubits with other's
// qubits placed above u's (amplitude index = otherIndex<<u.qubitCount |
// uIndex). The two inputs are left unmodified.
//
// Unlike SetQuantumState, Compose does not preserve per-amplitude
// relative phase between u and other: only their joint magnitude
// survives, combined with a single freshly drawn global phase. This
// mirrors the asymmetric cost of physically bringing two independently
// phase-referenced registers into a shared frame.
func Compose(u, other *CoherentUnit) *CoherentUnit {
	u.normalize()
	other.normalize()

	qubitCount := u.qubitCount + other.qubitCount
	result := &CoherentUnit{
		qubitCount:  qubitCount,
		maxQPower:   uint64(1) << uint(qubitCount),
		runningNorm: 1.0,
		backend:     u.backend,
		rng:         u.rng,
	}
	result.stateVec = make([]complex128, result.maxQPower)

	startMask := u.maxQPower - 1
	phase := result.randomPhase()
	result.backend.CopyOut(result.maxQPower, func(j uint64) {
		uIdx := j & startMask
		otherIdx := j >> uint(u.qubitCount)
		mag := sqMag(u.stateVec[uIdx]) * sqMag(other.stateVec[otherIdx])
		if mag == 0 {
			result.stateVec[j] = 0
			return
		}
		result.stateVec[j] = phase * complex(math.Sqrt(mag), 0)
	})
	return result
}

// Decohere splits off length qubits starting at start, writing the
// split-off sub-register's reconstructed state into destination (which
// must already be allocated with exactly length qubits) and shrinking
// u in place to its remaining u.QubitCount()-length qubits. The two
// halves each receive an independently drawn random global phase:
// Decohere is the inverse of Compose only up to global phase, exactly
// as Compose is lossy in the forward direction.
//
// If the marginal probability mass of the kept sub-register (or of the
// remainder) is exactly zero — which cannot happen for a properly
// normalized register, only as a consequence of a precondition
// violation upstream — the degenerate case places a bare phase factor
// at index 0 rather than dividing by zero.
func (u *CoherentUnit) Decohere(start, length int, destination *CoherentUnit) error {
	if err := u.checkRange(start, length); err != nil {
		return err
	}
	if destination.qubitCount != length {
		return fmt.Errorf("%w: destination has %d qubits, want %d", ErrInvalidArgument, destination.qubitCount, length)
	}
	u.normalize()

	remainderCount := u.qubitCount - length
	partMask := (uint64(1) << uint(length)) - 1
	lowMask := (uint64(1) << uint(start)) - 1

	remainder := make([]complex128, uint64(1)<<uint(remainderCount))

	partProb := make([]float64, destination.maxQPower)
	remainderProb := make([]float64, len(remainder))
	for idx, a := range u.stateVec {
		i := uint64(idx)
		low := i & lowMask
		mid := (i >> uint(start)) & partMask
		high := i >> uint(start+length)
		remIdx := low | (high << uint(start))
		partProb[mid] += sqMag(a)
		remainderProb[remIdx] += sqMag(a)
	}

	fillFromMarginal(destination.stateVec, partProb, destination.randomPhase())
	destination.runningNorm = 1.0
	fillFromMarginal(remainder, remainderProb, u.randomPhase())

	u.qubitCount = remainderCount
	u.maxQPower = uint64(1) << uint(remainderCount)
	u.stateVec = remainder
	u.runningNorm = 1.0

	return nil
}

// fillFromMarginal fills dst[i] = phase * sqrt(prob[i]/totProb) for
// every i, the shared reconstruction step behind both of Decohere's
// outputs. If the marginal carries no probability mass at all, it
// places the bare phase at index 0 instead (the degenerate case: a
// normalized input never reaches this branch).
func fillFromMarginal(dst []complex128, prob []float64, phase complex128) {
	var tot float64
	for _, p := range prob {
		tot += p
	}
	if tot == 0 {
		dst[0] = phase
		return
	}
	for i, p := range prob {
		dst[i] = phase * complex(math.Sqrt(p/tot), 0)
	}
}

// Dispose discards length qubits starting at start, keeping only the
// remainder. It differs from Decohere only in that the split-off part
// is reconstructed into a throwaway destination and discarded rather
// than handed back to the caller.
func (u *CoherentUnit) Dispose(start, length int) error {
	if err := u.checkRange(start, length); err != nil {
		return err
	}
	scratch, err := New(length, WithRand(u.rng))
	if err != nil {
		return err
	}
	return u.Decohere(start, length, scratch)
}
