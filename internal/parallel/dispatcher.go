// Package parallel splits an index range across a fixed pool of workers.
// It is the Go translation of the two scheduling models the dense
// state-vector engine needs: an atomic fetch-and-add counter for
// in-place kernels where workers race to claim the next index, and an
// equal-stride (id, stride) loop for copy-out kernels where each worker
// owns a disjoint arithmetic progression of indices up front.
package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// workerCount returns the number of workers to fan a range out across,
// never more than the number of indices there are to process.
func workerCount(n uint64) int {
	w := runtime.GOMAXPROCS(0)
	if w < 1 {
		w = 1
	}
	if uint64(w) > n {
		w = int(n)
	}
	if w < 1 {
		w = 1
	}
	return w
}

// For calls fn(i) exactly once for every i in [begin, end), distributing
// work across a fixed worker pool by atomic fetch-and-add: each worker
// repeatedly claims the next unclaimed index until the range is
// exhausted. No ordering between workers is guaranteed. fn must only
// touch state at indices disjoint from any other index fn may be called
// with concurrently — the caller, not this function, is responsible for
// that disjointness.
func For(begin, end uint64, fn func(i uint64)) {
	if end <= begin {
		return
	}
	n := end - begin
	workers := workerCount(n)

	var next atomic.Uint64
	next.Store(begin)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := next.Add(1) - 1
				if i >= end {
					return nil
				}
				fn(i)
			}
		})
	}
	_ = g.Wait()
}

// ForStride calls fn(i) exactly once for every i in [0, n), distributing
// work across a fixed worker pool by partitioning the range into
// Nthreads equal-stride arithmetic progressions: worker k processes
// k, k+Nthreads, k+2*Nthreads, .... This mirrors the (id, stride) loop
// every copy-out kernel in the original engine uses.
func ForStride(n uint64, fn func(i uint64)) {
	if n == 0 {
		return
	}
	workers := workerCount(n)
	stride := uint64(workers)

	var g errgroup.Group
	for id := uint64(0); id < stride; id++ {
		id := id
		g.Go(func() error {
			for i := id; i < n; i += stride {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
