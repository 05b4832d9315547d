package coherent

import "math"

var pauliX = matrix2x2{0, 1, 1, 0}
var pauliY = matrix2x2{0, complex(0, -1), complex(0, 1), 0}
var pauliZ = matrix2x2{1, 0, 0, -1}

var hadamardFactor = complex(1/math.Sqrt2, 0)
var hadamardMtrx = matrix2x2{hadamardFactor, hadamardFactor, hadamardFactor, -hadamardFactor}

func r1Matrix(radians float64) matrix2x2 {
	return matrix2x2{1, 0, 0, complex(math.Cos(radians), math.Sin(radians))}
}

func rxMatrix(radians float64) matrix2x2 {
	cos := complex(math.Cos(radians/2), 0)
	sin := complex(0, -math.Sin(radians/2))
	return matrix2x2{cos, sin, sin, cos}
}

func ryMatrix(radians float64) matrix2x2 {
	cos := complex(math.Cos(radians/2), 0)
	sin := complex(math.Sin(radians/2), 0)
	return matrix2x2{cos, -sin, sin, cos}
}

func rzMatrix(radians float64) matrix2x2 {
	neg := complex(math.Cos(-radians/2), math.Sin(-radians/2))
	pos := complex(math.Cos(radians/2), math.Sin(radians/2))
	return matrix2x2{neg, 0, 0, pos}
}

// X applies the Pauli-X (bit-flip) gate to qubit i.
func (u *CoherentUnit) X(i int) error {
	return u.applySingleBit(i, pauliX, false)
}

// Y applies the Pauli-Y gate to qubit i.
func (u *CoherentUnit) Y(i int) error {
	return u.applySingleBit(i, pauliY, false)
}

// Z applies the Pauli-Z (phase-flip) gate to qubit i.
func (u *CoherentUnit) Z(i int) error {
	return u.applySingleBit(i, pauliZ, false)
}

// H applies the Hadamard gate to qubit i.
func (u *CoherentUnit) H(i int) error {
	return u.applySingleBit(i, hadamardMtrx, false)
}

// XRange applies X to every qubit in [start, start+length).
func (u *CoherentUnit) XRange(start, length int) error {
	if err := u.checkRange(start, length); err != nil {
		return err
	}
	for i := start; i < start+length; i++ {
		if err := u.X(i); err != nil {
			return err
		}
	}
	return nil
}

// YRange applies Y to every qubit in [start, start+length).
func (u *CoherentUnit) YRange(start, length int) error {
	if err := u.checkRange(start, length); err != nil {
		return err
	}
	for i := start; i < start+length; i++ {
		if err := u.Y(i); err != nil {
			return err
		}
	}
	return nil
}

// ZRange applies Z to every qubit in [start, start+length).
func (u *CoherentUnit) ZRange(start, length int) error {
	if err := u.checkRange(start, length); err != nil {
		return err
	}
	for i := start; i < start+length; i++ {
		if err := u.Z(i); err != nil {
			return err
		}
	}
	return nil
}

// HRange applies H to every qubit in [start, start+length).
func (u *CoherentUnit) HRange(start, length int) error {
	if err := u.checkRange(start, length); err != nil {
		return err
	}
	for i := start; i < start+length; i++ {
		if err := u.H(i); err != nil {
			return err
		}
	}
	return nil
}

// Swap exchanges the states of qubit1 and qubit2: P = {p_q1, p_q2}
// sorted, o1 = p_q2, o2 = p_q1.
func (u *CoherentUnit) Swap(qubit1, qubit2 int) error {
	if qubit1 == qubit2 {
		return nil
	}
	if err := u.checkQubit(qubit1); err != nil {
		return err
	}
	if err := u.checkQubit(qubit2); err != nil {
		return err
	}
	p1 := uint64(1) << uint(qubit1)
	p2 := uint64(1) << uint(qubit2)
	u.apply2x2(p2, p1, matrix2x2{0, 1, 1, 0}, sortedBitPowers(qubit1, qubit2), complex(1, 0), false)
	return nil
}

// R1 applies the phase gate diag(1, e^{iθ}) to qubit i.
func (u *CoherentUnit) R1(radians float64, i int) error {
	return u.applySingleBit(i, r1Matrix(radians), false)
}

// R1Dyad applies R1 with θ given as a dyadic fraction of π: the radian
// argument is not negated (unlike the other *Dyad rotations).
func (u *CoherentUnit) R1Dyad(numerator, denominator, i int) error {
	return u.R1(dyadAngle(numerator, denominator), i)
}

// RX applies a rotation of radians about the X axis to qubit i.
func (u *CoherentUnit) RX(radians float64, i int) error {
	return u.applySingleBit(i, rxMatrix(radians), false)
}

// RXDyad applies RX with θ given as a dyadic fraction of π, negated.
func (u *CoherentUnit) RXDyad(numerator, denominator, i int) error {
	return u.RX(-dyadAngle(numerator, denominator), i)
}

// RY applies a rotation of radians about the Y axis to qubit i.
func (u *CoherentUnit) RY(radians float64, i int) error {
	return u.applySingleBit(i, ryMatrix(radians), false)
}

// RYDyad applies RY with θ given as a dyadic fraction of π, negated.
func (u *CoherentUnit) RYDyad(numerator, denominator, i int) error {
	return u.RY(-dyadAngle(numerator, denominator), i)
}

// RZ applies a rotation of radians about the Z axis to qubit i.
func (u *CoherentUnit) RZ(radians float64, i int) error {
	return u.applySingleBit(i, rzMatrix(radians), false)
}

// RZDyad applies RZ with θ given as a dyadic fraction of π, negated.
func (u *CoherentUnit) RZDyad(numerator, denominator, i int) error {
	return u.RZ(-dyadAngle(numerator, denominator), i)
}

// CNOT flips target conditional on control being |1⟩.
func (u *CoherentUnit) CNOT(control, target int) error {
	return u.applyControlled2x2(control, target, pauliX, false)
}

// AntiCNOT flips target conditional on control being |0⟩.
func (u *CoherentUnit) AntiCNOT(control, target int) error {
	return u.applyAntiControlled2x2(control, target, pauliX, false)
}

// CCNOT flips target conditional on both control1 and control2 being |1⟩.
func (u *CoherentUnit) CCNOT(control1, control2, target int) error {
	return u.applyDoublyControlled2x2(control1, control2, target, pauliX, false)
}

// AntiCCNOT flips target conditional on both control1 and control2 being |0⟩.
func (u *CoherentUnit) AntiCCNOT(control1, control2, target int) error {
	return u.applyAntiDoublyControlled2x2(control1, control2, target, pauliX, false)
}

// CY applies Y to target conditional on control being |1⟩.
func (u *CoherentUnit) CY(control, target int) error {
	return u.applyControlled2x2(control, target, pauliY, false)
}

// CZ applies Z to target conditional on control being |1⟩.
func (u *CoherentUnit) CZ(control, target int) error {
	return u.applyControlled2x2(control, target, pauliZ, false)
}

// CRT applies R1(radians) to target conditional on control being |1⟩.
func (u *CoherentUnit) CRT(radians float64, control, target int) error {
	return u.applyControlled2x2(control, target, r1Matrix(radians), false)
}

// CRTDyad applies CRT with θ given as a dyadic fraction of π, negated.
func (u *CoherentUnit) CRTDyad(numerator, denominator, control, target int) error {
	return u.CRT(-dyadAngle(numerator, denominator), control, target)
}

// CR1 is CRT under its other name: the controlled phase-shift gate. Two
// independent lineages of this engine named the same gate differently;
// both names are kept on the programmatic surface, backed by one
// implementation and one dyadic-angle convention.
func (u *CoherentUnit) CR1(radians float64, control, target int) error {
	return u.CRT(radians, control, target)
}

// CR1Dyad is CRTDyad under its other name.
func (u *CoherentUnit) CR1Dyad(numerator, denominator, control, target int) error {
	return u.CRTDyad(numerator, denominator, control, target)
}

// CRX applies RX(radians) to target conditional on control being |1⟩.
func (u *CoherentUnit) CRX(radians float64, control, target int) error {
	return u.applyControlled2x2(control, target, rxMatrix(radians), false)
}

// CRXDyad applies CRX with θ given as a dyadic fraction of π, negated.
func (u *CoherentUnit) CRXDyad(numerator, denominator, control, target int) error {
	return u.CRX(-dyadAngle(numerator, denominator), control, target)
}

// CRY applies RY(radians) to target conditional on control being |1⟩.
func (u *CoherentUnit) CRY(radians float64, control, target int) error {
	return u.applyControlled2x2(control, target, ryMatrix(radians), false)
}

// CRYDyad applies CRY with θ given as a dyadic fraction of π, negated.
func (u *CoherentUnit) CRYDyad(numerator, denominator, control, target int) error {
	return u.CRY(-dyadAngle(numerator, denominator), control, target)
}

// CRZ applies RZ(radians) to target conditional on control being |1⟩.
func (u *CoherentUnit) CRZ(radians float64, control, target int) error {
	return u.applyControlled2x2(control, target, rzMatrix(radians), false)
}

// CRZDyad applies CRZ with θ given as a dyadic fraction of π, negated.
func (u *CoherentUnit) CRZDyad(numerator, denominator, control, target int) error {
	return u.CRZ(-dyadAngle(numerator, denominator), control, target)
}
