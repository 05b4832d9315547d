package coherent

import "errors"

// Sentinel errors, one per symbolic category the engine signals. Call
// sites wrap these with fmt.Errorf("...: %w", ErrX) so errors.Is keeps
// working after the violated precondition is named.
var (
	// ErrInvalidArgument covers qubit counts exceeding the native word
	// width, controls that coincide with targets or with each other,
	// BCD opcodes given a length not divisible by four, and similar
	// caller-side precondition violations.
	ErrInvalidArgument = errors.New("coherent: invalid argument")

	// ErrDegenerateMeasurement covers Prob(i) reporting exactly 0 or 1
	// under an outcome inconsistent with that — a precondition
	// violation, not a recoverable runtime condition.
	ErrDegenerateMeasurement = errors.New("coherent: degenerate measurement")

	// ErrBackendUnavailable covers a compute backend that is missing or
	// fails to dispatch a kernel. Surfaced as fatal to the operation
	// that triggered it; the engine has no retry loop.
	ErrBackendUnavailable = errors.New("coherent: backend unavailable")
)
