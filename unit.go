package coherent

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/perclft/qubitengine/backend"
)

// maxQubitWidth is the largest register this engine can address: the
// amplitude vector's index must fit in a uint64, and bit widths beyond
// that have no native word to permute amplitudes over.
const maxQubitWidth = 63

// CoherentUnit is a coherent register of qubitCount qubits: the full
// complex amplitude vector of an n-qubit pure state, plus the running
// norm and per-register PRNG that every operation on it threads through.
//
// The state buffer is exclusively owned by one CoherentUnit. Operations
// that change qubitCount (Compose, Decohere, Dispose) acquire a fresh
// buffer, copy derived values into it, then release the old one — never
// by aliasing.
type CoherentUnit struct {
	qubitCount  int
	maxQPower   uint64
	stateVec    []complex128
	runningNorm float64

	rng     *rand.Rand
	backend backend.Backend

	// optErr carries a failure from applying an Option (currently only
	// WithConfig) forward to the constructor, since Option itself has
	// no error return.
	optErr error
}

// Option configures a CoherentUnit at construction time.
type Option func(*CoherentUnit)

// WithBackend overrides the default CPU backend. Present for parity with
// the engine's "optional compute backend" contract; there is only one
// backend implementation today.
func WithBackend(b backend.Backend) Option {
	return func(u *CoherentUnit) { u.backend = b }
}

// WithConfig resolves a backend from a platform/device configuration via
// the default registry. A platform/device pair that resolves to no
// backend fails construction with ErrBackendUnavailable rather than
// silently keeping the default CPU backend.
func WithConfig(cfg backend.Config) Option {
	return func(u *CoherentUnit) {
		b, err := backend.NewRegistry().Resolve(cfg)
		if err != nil {
			u.optErr = fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			return
		}
		u.backend = b
	}
}

// WithRand overrides the register's PRNG, for deterministic tests
// (spec §8 invariant 2: fixed seed ⇒ byte-identical stateVec).
func WithRand(rng *rand.Rand) Option {
	return func(u *CoherentUnit) { u.rng = rng }
}

func newBase(qubitCount int, opts []Option) (*CoherentUnit, error) {
	if qubitCount <= 0 || qubitCount > maxQubitWidth {
		return nil, fmt.Errorf("%w: qubit count %d exceeds native word width", ErrInvalidArgument, qubitCount)
	}
	u := &CoherentUnit{
		qubitCount: qubitCount,
		maxQPower:  uint64(1) << uint(qubitCount),
		backend:    backend.NewCPU(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.optErr != nil {
		return nil, u.optErr
	}
	if u.rng == nil {
		u.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	u.stateVec = make([]complex128, u.maxQPower)
	return u, nil
}

// randomPhase draws a uniform angle in [0, 2π) and returns e^{iφ}.
func (u *CoherentUnit) randomPhase() complex128 {
	angle := u.Rand() * 2.0 * math.Pi
	return complex(math.Cos(angle), math.Sin(angle))
}

// New constructs a qubitCount-qubit register in basis state |0...0⟩,
// modulo a random global phase.
func New(qubitCount int, opts ...Option) (*CoherentUnit, error) {
	u, err := newBase(qubitCount, opts)
	if err != nil {
		return nil, err
	}
	u.runningNorm = 1.0
	u.stateVec[0] = u.randomPhase()
	return u, nil
}

// NewWithPermutation constructs a qubitCount-qubit register in basis
// state |initPerm⟩, modulo a random global phase.
func NewWithPermutation(qubitCount int, initPerm uint64, opts ...Option) (*CoherentUnit, error) {
	u, err := newBase(qubitCount, opts)
	if err != nil {
		return nil, err
	}
	if initPerm >= u.maxQPower {
		return nil, fmt.Errorf("%w: permutation %d out of range for %d qubits", ErrInvalidArgument, initPerm, qubitCount)
	}
	u.runningNorm = 1.0
	u.stateVec[initPerm] = u.randomPhase()
	return u, nil
}

// Clone returns an exact amplitude copy of other, sharing no state with
// it (including its PRNG, which is independently seeded).
func Clone(other *CoherentUnit, opts ...Option) *CoherentUnit {
	u := &CoherentUnit{
		qubitCount:  other.qubitCount,
		maxQPower:   other.maxQPower,
		runningNorm: other.runningNorm,
		backend:     other.backend,
		stateVec:    append([]complex128(nil), other.stateVec...),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.rng == nil {
		u.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return u
}

// QubitCount returns the number of qubits in the register.
func (u *CoherentUnit) QubitCount() int { return u.qubitCount }

// MaxQPower returns 2^QubitCount(), the size of the amplitude vector.
func (u *CoherentUnit) MaxQPower() uint64 { return u.maxQPower }

// Rand draws a uniform float64 in [0, 1) from the register's PRNG.
func (u *CoherentUnit) Rand() float64 { return u.rng.Float64() }

// CloneRawState normalizes the register and copies its amplitude vector
// into out, which must have length MaxQPower().
func (u *CoherentUnit) CloneRawState(out []complex128) {
	u.normalize()
	copy(out, u.stateVec)
}

// SetPermutation collapses the register to basis state |perm⟩, modulo a
// random global phase.
func (u *CoherentUnit) SetPermutation(perm uint64) error {
	if perm >= u.maxQPower {
		return fmt.Errorf("%w: permutation %d out of range for %d qubits", ErrInvalidArgument, perm, u.qubitCount)
	}
	for i := range u.stateVec {
		u.stateVec[i] = 0
	}
	u.stateVec[perm] = u.randomPhase()
	u.runningNorm = 1.0
	return nil
}

// SetQuantumState overwrites the register's amplitude vector with in,
// which must have length MaxQPower(). The caller is responsible for the
// vector being appropriately normalized; SetQuantumState does not
// recompute runningNorm (matching the source, which leaves the
// responsibility with the caller here).
func (u *CoherentUnit) SetQuantumState(in []complex128) error {
	if len(in) != len(u.stateVec) {
		return fmt.Errorf("%w: state vector has %d entries, want %d", ErrInvalidArgument, len(in), len(u.stateVec))
	}
	copy(u.stateVec, in)
	return nil
}

// SetBit forces qubit i into a definite classical value by measuring it
// and, if the outcome disagrees with value, flipping it with X.
func (u *CoherentUnit) SetBit(i int, value bool) error {
	outcome, err := u.M(i)
	if err != nil {
		return err
	}
	if outcome != value {
		return u.X(i)
	}
	return nil
}

// normalize rescales the amplitude vector so runningNorm becomes 1,
// restoring the invariant ∑|stateVec[i]|² = runningNorm² = 1. A no-op
// when already normalized.
func (u *CoherentUnit) normalize() {
	if u.runningNorm == 1.0 {
		return
	}
	for i, a := range u.stateVec {
		u.stateVec[i] = a / complex(u.runningNorm, 0)
	}
	u.runningNorm = 1.0
}

// updateRunningNorm recomputes runningNorm from the current amplitude
// vector, used after any operation that may have changed the total
// probability (rotations, measurement projection).
func (u *CoherentUnit) updateRunningNorm() {
	u.runningNorm = vectorNorm(u.stateVec)
}

func (u *CoherentUnit) checkQubit(i int) error {
	if i < 0 || i >= u.qubitCount {
		return fmt.Errorf("%w: qubit index %d out of range for %d qubits", ErrInvalidArgument, i, u.qubitCount)
	}
	return nil
}

func (u *CoherentUnit) checkRange(start, length int) error {
	if length < 0 || start < 0 || start+length > u.qubitCount {
		return fmt.Errorf("%w: sub-register [%d,%d) out of range for %d qubits", ErrInvalidArgument, start, start+length, u.qubitCount)
	}
	return nil
}
