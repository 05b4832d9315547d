package coherent

import "math"

// QFT applies the quantum Fourier transform to the sub-register
// [start, start+length): a Hadamard on each qubit in ascending order,
// interleaved with controlled phase rotations CR1(π/2^j) from every
// higher qubit in the range back down onto it. The caller is
// responsible for any final bit-reversal.
func (u *CoherentUnit) QFT(start, length int) error {
	if err := u.checkRange(start, length); err != nil {
		return err
	}
	end := start + length
	for i := start; i < end; i++ {
		if err := u.H(i); err != nil {
			return err
		}
		for j := 1; j < end-i; j++ {
			radians := math.Pi / math.Pow(2, float64(j))
			if err := u.CR1(radians, i+j, i); err != nil {
				return err
			}
		}
	}
	return nil
}
