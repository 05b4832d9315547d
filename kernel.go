package coherent

import (
	"fmt"
	"sort"
)

// matrix2x2 is a 2x2 complex matrix in row-major order: {M00, M01, M10, M11}.
type matrix2x2 [4]complex128

// sortedBitPowers returns 1<<k for each qubit index in qubits, sorted
// ascending. This is the kernel's primary input per the design notes:
// it generalizes to any number of controls, not just one or two.
func sortedBitPowers(qubits ...int) []uint64 {
	powers := make([]uint64, len(qubits))
	for i, q := range qubits {
		powers[i] = uint64(1) << uint(q)
	}
	sort.Slice(powers, func(i, j int) bool { return powers[i] < powers[j] })
	return powers
}

// expandIndex computes I(i): the i-th basis index, among those with
// every involved bit (every power in bitPowers) clear, enumerated in
// ascending order. It does so by repeatedly peeling the low bits below
// each involved power off of i and shifting the remainder left by one,
// which is exactly the bit-insertion the amplitude-update kernel needs
// to skip over involved bit positions.
func expandIndex(i uint64, bitPowers []uint64) uint64 {
	var result uint64
	iHigh := i
	for _, p := range bitPowers {
		iLow := iHigh % p
		result += iLow
		iHigh = (iHigh - iLow) << 1
	}
	result += iHigh
	return result
}

// apply2x2 applies mtrx to the amplitude pair at (I(i)+o1, I(i)+o2) for
// every i in [0, maxQPower>>len(bitPowers)), where I is the index
// expansion over bitPowers (sorted ascending). norm is an extra scalar
// multiplier folded into both outputs — 1/runningNorm when the caller
// wants lazy renormalization folded into the same pass, 1 otherwise.
//
// After the kernel, if recalcNorm is set the register's runningNorm is
// recomputed from the full vector; otherwise it is set to 1 (pure
// permutation-plus-phase gates never change it).
func (u *CoherentUnit) apply2x2(o1, o2 uint64, mtrx matrix2x2, bitPowers []uint64, norm complex128, recalcNorm bool) {
	n := u.maxQPower >> uint(len(bitPowers))
	u.backend.InPlace(n, func(i uint64) {
		idx := expandIndex(i, bitPowers)
		a := u.stateVec[idx+o1]
		b := u.stateVec[idx+o2]
		u.stateVec[idx+o1] = norm * (mtrx[0]*a + mtrx[1]*b)
		u.stateVec[idx+o2] = norm * (mtrx[2]*a + mtrx[3]*b)
	})
	if recalcNorm {
		u.updateRunningNorm()
	} else {
		u.runningNorm = 1.0
	}
}

// applySingleBit applies mtrx to qubitIndex alone: P = {p_t}, o1 = p_t,
// o2 = 0.
func (u *CoherentUnit) applySingleBit(qubitIndex int, mtrx matrix2x2, doCalcNorm bool) error {
	if err := u.checkQubit(qubitIndex); err != nil {
		return err
	}
	p := uint64(1) << uint(qubitIndex)
	nrm := complex(1.0, 0)
	if doCalcNorm {
		nrm = complex(1.0/u.runningNorm, 0)
	}
	u.apply2x2(p, 0, mtrx, []uint64{p}, nrm, doCalcNorm)
	return nil
}

// applyControlled2x2 applies mtrx to target conditional on control being
// |1⟩: P = {p_c, p_t} sorted, o1 = p_c+p_t, o2 = p_c.
func (u *CoherentUnit) applyControlled2x2(control, target int, mtrx matrix2x2, doCalcNorm bool) error {
	if control == target {
		return fmt.Errorf("%w: control bit cannot also be target", ErrInvalidArgument)
	}
	if err := u.checkQubit(control); err != nil {
		return err
	}
	if err := u.checkQubit(target); err != nil {
		return err
	}
	pc := uint64(1) << uint(control)
	pt := uint64(1) << uint(target)
	nrm := complex(1.0, 0)
	if doCalcNorm {
		nrm = complex(1.0/u.runningNorm, 0)
	}
	u.apply2x2(pc+pt, pc, mtrx, sortedBitPowers(control, target), nrm, doCalcNorm)
	return nil
}

// applyAntiControlled2x2 applies mtrx to target conditional on control
// being |0⟩: same P as applyControlled2x2, o1 = 0, o2 = p_t.
func (u *CoherentUnit) applyAntiControlled2x2(control, target int, mtrx matrix2x2, doCalcNorm bool) error {
	if control == target {
		return fmt.Errorf("%w: control bit cannot also be target", ErrInvalidArgument)
	}
	if err := u.checkQubit(control); err != nil {
		return err
	}
	if err := u.checkQubit(target); err != nil {
		return err
	}
	pt := uint64(1) << uint(target)
	nrm := complex(1.0, 0)
	if doCalcNorm {
		nrm = complex(1.0/u.runningNorm, 0)
	}
	u.apply2x2(0, pt, mtrx, sortedBitPowers(control, target), nrm, doCalcNorm)
	return nil
}

// applyDoublyControlled2x2 applies mtrx to target conditional on both
// control1 and control2 being |1⟩: P = {p_c1, p_c2, p_t} sorted,
// o1 = p_c1+p_c2+p_t, o2 = p_c1+p_c2.
func (u *CoherentUnit) applyDoublyControlled2x2(control1, control2, target int, mtrx matrix2x2, doCalcNorm bool) error {
	if control1 == control2 {
		return fmt.Errorf("%w: control bits cannot be the same bit", ErrInvalidArgument)
	}
	if control1 == target || control2 == target {
		return fmt.Errorf("%w: control bits cannot also be target", ErrInvalidArgument)
	}
	for _, q := range []int{control1, control2, target} {
		if err := u.checkQubit(q); err != nil {
			return err
		}
	}
	pc1 := uint64(1) << uint(control1)
	pc2 := uint64(1) << uint(control2)
	pt := uint64(1) << uint(target)
	nrm := complex(1.0, 0)
	if doCalcNorm {
		nrm = complex(1.0/u.runningNorm, 0)
	}
	u.apply2x2(pc1+pc2+pt, pc1+pc2, mtrx, sortedBitPowers(control1, control2, target), nrm, doCalcNorm)
	return nil
}

// applyAntiDoublyControlled2x2 applies mtrx to target conditional on
// both control1 and control2 being |0⟩: same P, o1 = 0, o2 = p_t.
func (u *CoherentUnit) applyAntiDoublyControlled2x2(control1, control2, target int, mtrx matrix2x2, doCalcNorm bool) error {
	if control1 == control2 {
		return fmt.Errorf("%w: control bits cannot be the same bit", ErrInvalidArgument)
	}
	if control1 == target || control2 == target {
		return fmt.Errorf("%w: control bits cannot also be target", ErrInvalidArgument)
	}
	for _, q := range []int{control1, control2, target} {
		if err := u.checkQubit(q); err != nil {
			return err
		}
	}
	pt := uint64(1) << uint(target)
	nrm := complex(1.0, 0)
	if doCalcNorm {
		nrm = complex(1.0/u.runningNorm, 0)
	}
	u.apply2x2(0, pt, mtrx, sortedBitPowers(control1, control2, target), nrm, doCalcNorm)
	return nil
}
