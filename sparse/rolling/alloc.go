package rolling

import (
	"github.com/cwbudde/algo-sparse/internal/parallel"
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// Alloc computes how many entries a rolling window of the given width
// produces in every row of m. It writes the exclusive prefix sum of those
// counts to outRowPtr, which must have length m.Rows()+1, and returns the
// total. outRowPtr is the row pointer of the result and must be passed on
// to Fill.
//
// A non-empty row with first column f, last column l and columns c0 < c1
// in between contributes
//
//	min(w/2, f) + Σ min(w, c1-c0) + min((w+1)/2, NumCols-l)
//
// entries; an empty row contributes nothing. Every term is clamped at zero
// so rows with unsorted or duplicate columns never yield a negative count.
func Alloc[I, J core.Index, D core.Float](m csr.Matrix[I, D], outRowPtr []J, window int, opts ...core.Option) J {
	cfg := core.ApplyOptions(opts...)
	rows := m.Rows()

	outRowPtr[0] = 0
	parallel.For(rows, cfg, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			cols, _ := m.Row(r)
			outRowPtr[r+1] = J(rowSize(cols, window, m.NumCols))
		}
	})

	for r := range rows {
		outRowPtr[r+1] += outRowPtr[r]
	}

	return outRowPtr[rows]
}

func rowSize[I core.Index](cols []I, window, numCols int) int {
	if len(cols) == 0 {
		return 0
	}

	lhs := window / 2
	rhs := (window + 1) / 2

	size := max(0, min(lhs, int(cols[0])))
	for c0, c1 := range core.Adjacent(cols) {
		size += max(0, min(window, int(c1-c0)))
	}
	size += max(0, min(rhs, numCols-int(cols[len(cols)-1])))

	return size
}
