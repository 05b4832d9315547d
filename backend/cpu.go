package backend

import "github.com/perclft/qubitengine/internal/parallel"

// CPU is the default Backend: a fixed-size goroutine worker pool sized
// to GOMAXPROCS, with no locks inside any kernel — safety comes from
// disjoint-index construction in the caller, matching the engine's
// concurrency model.
type CPU struct{}

// NewCPU returns the CPU backend. It carries no state: the worker pool
// is ephemeral, spun up fresh for each dispatch.
func NewCPU() *CPU {
	return &CPU{}
}

func (*CPU) Name() string { return "cpu" }

func (*CPU) InPlace(n uint64, fn func(i uint64)) {
	parallel.For(0, n, fn)
}

func (*CPU) CopyOut(n uint64, fn func(i uint64)) {
	parallel.ForStride(n, fn)
}

func (*CPU) RegisterRotate(otherCount uint64, fn func(other uint64)) {
	parallel.For(0, otherCount, fn)
}
