// Package backend abstracts the kernel-dispatch strategy the dense
// state-vector engine runs its amplitude-update and permutation kernels
// on. The engine's contract (see the root coherent package) is
// backend-independent: callers may configure a platform/device pair and
// the engine will dispatch through whichever Backend the configuration
// resolves to, without the gate or arithmetic layers needing to know
// which one is in play.
package backend

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Resolve when no backend is registered for
// the requested platform/device pair.
var ErrNotFound = errors.New("backend: not found")

// Config selects a compute backend at register-construction time.
// PlatformIndex and DeviceIndex default to zero, meaning "the default
// CPU backend" — there is no platform/device enumeration to perform
// until a second backend exists.
type Config struct {
	PlatformIndex int
	DeviceIndex   int
}

// Backend dispatches the three kernel shapes the engine's parallel
// dispatcher contract requires. Implementations must guarantee that fn
// is invoked exactly once per index in range and that distinct
// concurrent invocations of fn never touch overlapping state — the
// caller constructs fn closures that are only safe under that
// guarantee, never under mutual exclusion.
type Backend interface {
	// Name identifies the backend, e.g. "cpu".
	Name() string

	// InPlace runs fn(i) for every i in [0, n), where fn reads and
	// writes amplitude pairs directly in the shared state buffer. Used
	// by the amplitude-update kernel (gate application).
	InPlace(n uint64, fn func(i uint64))

	// CopyOut runs fn(i) for every i in [0, n), where fn fills entry i
	// of a freshly allocated output buffer from the old state at an
	// index it computes itself. Used by the
	// permutation-style arithmetic opcodes (ADD, SUB, ROL, ROR, ...).
	CopyOut(n uint64, fn func(i uint64))

	// RegisterRotate runs fn(other) for every value in [0, otherCount),
	// where fn performs an in-place rotate-by-stride over one
	// contiguous block of the sub-register's amplitudes. Used by
	// INC/DEC.
	RegisterRotate(otherCount uint64, fn func(other uint64))
}

// Registry maps a backend name to an implementation, the same
// register/lookup shape the engine's optional remote-compute ancestor
// used to select among vendor backends — repurposed here to select
// among local kernel-dispatch strategies.
type Registry struct {
	backends map[string]Backend
}

// NewRegistry returns a Registry pre-populated with the CPU backend
// under the name "cpu".
func NewRegistry() *Registry {
	r := &Registry{backends: make(map[string]Backend)}
	r.Register(NewCPU())
	return r
}

// Register adds or replaces the backend under its own Name().
func (r *Registry) Register(b Backend) {
	r.backends[b.Name()] = b
}

// Get looks up a backend by name.
func (r *Registry) Get(name string) (Backend, bool) {
	b, ok := r.backends[name]
	return b, ok
}

// Resolve picks a backend for a Config. Only the CPU backend exists
// today, so every platform/device pair resolves to it; a future GPU
// backend would key off PlatformIndex/DeviceIndex here instead.
func (r *Registry) Resolve(cfg Config) (Backend, error) {
	b, ok := r.Get("cpu")
	if !ok {
		return nil, fmt.Errorf("%w: no backend registered for platform %d device %d", ErrNotFound, cfg.PlatformIndex, cfg.DeviceIndex)
	}
	return b, nil
}
