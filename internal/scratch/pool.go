// Package scratch provides sync.Pool-based reuse of the per-worker
// buffers kernels need while sliding a window, such as the dense window
// gathered for convolution.
package scratch

import (
	"sync"

	"github.com/cwbudde/algo-sparse/sparse/core"
)

// Pool hands out zeroed slices of T.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return new([]T)
			},
		},
	}
}

// Get returns a zeroed slice of length n.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(n int) *[]T {
	b := p.pool.Get().(*[]T)
	*b = core.EnsureLen(*b, n)
	clear(*b)

	return b
}

// Put returns a slice to the pool for reuse.
// The caller must not use the slice after calling Put.
func (p *Pool[T]) Put(b *[]T) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
