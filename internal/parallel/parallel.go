// Package parallel splits a row range into contiguous chunks and runs them
// on a bounded set of goroutines.
//
// Each chunk is owned by exactly one goroutine, so kernels whose rows are
// independent can write their output without synchronization.
package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-sparse/sparse/core"
)

// Chunks returns the number of contiguous ranges For would split n rows
// into under cfg.
func Chunks(n int, cfg core.Config) int {
	if n <= 0 {
		return 0
	}

	grain := max(cfg.Grain, 1)
	workers := max(cfg.Workers, 1)

	chunks := min(workers, (n+grain-1)/grain)

	return max(chunks, 1)
}

// For calls fn over disjoint [lo, hi) ranges covering [0, n) and blocks
// until all of them returned. The ranges run concurrently when cfg allows
// more than one chunk; otherwise fn(0, n) runs on the calling goroutine.
func For(n int, cfg core.Config, fn func(lo, hi int)) {
	_ = ForErr(n, cfg, func(lo, hi int) error {
		fn(lo, hi)
		return nil
	})
}

// ForErr is For with a fallible fn. The first non-nil error is returned
// after every range has finished.
func ForErr(n int, cfg core.Config, fn func(lo, hi int) error) error {
	chunks := Chunks(n, cfg)
	if chunks == 0 {
		return nil
	}
	if chunks == 1 {
		return fn(0, n)
	}

	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(chunks)

	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}

	return g.Wait()
}
