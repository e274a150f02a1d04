package csr

import (
	"github.com/cwbudde/algo-sparse/internal/parallel"
	"github.com/cwbudde/algo-sparse/sparse/core"
)

// SortIndices sorts the columns of every row in place, moving the data in
// lock-step. Rows with duplicate columns stay non-canonical; duplicates are
// not merged.
func SortIndices[I core.Index, D core.Float](m Matrix[I, D], opts ...core.Option) {
	cfg := core.ApplyOptions(opts...)

	parallel.For(m.Rows(), cfg, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			cols, vals := m.Row(r)
			core.CoSort(cols, vals)
		}
	})
}
