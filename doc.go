// Package coherent implements a dense state-vector simulator for a
// register of qubits: the full complex amplitude vector of an n-qubit
// pure state, the gates and measurements that act on it, and the
// integer-arithmetic opcodes that permute its amplitudes over
// sub-registers.
//
// The register is explicitly "pseudo-quantum": callers may clone state,
// read raw amplitudes, and query exact probabilities, none of which a
// physical quantum computer could offer. That is by design — this
// package exists to accelerate algorithm development and testing, not
// to model physical realism.
package coherent
