package coherent

import "math"

// sqMag returns the squared magnitude of a complex amplitude, the
// quantity whose sum over the whole state vector is runningNorm^2.
func sqMag(a complex128) float64 {
	re, im := real(a), imag(a)
	return re*re + im*im
}

// vectorNorm returns the Euclidean norm of the amplitude slice, i.e.
// sqrt(sum_i |a_i|^2).
func vectorNorm(amps []complex128) float64 {
	var sum float64
	for _, a := range amps {
		sum += sqMag(a)
	}
	return math.Sqrt(sum)
}

// dyadAngle converts a dyadic-fraction rotation argument (numerator,
// denominator) into radians: (π·num·2)/den, returned unnegated. The
// sign reversal of the dyadic convention is applied by the callers:
// RXDyad/RYDyad/RZDyad/CRXDyad/CRYDyad/CRZDyad/CRTDyad negate it when
// calling their radian-form counterpart; R1Dyad does not.
func dyadAngle(numerator, denominator int) float64 {
	return (math.Pi * float64(numerator) * 2) / float64(denominator)
}
