package rolling

import (
	"fmt"

	"github.com/cwbudde/algo-sparse/internal/parallel"
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// Fill evaluates the built-in kernel kind over every window of m and writes
// the output columns and values. outRowPtr must be the row pointer written
// by Alloc for the same matrix and width, and outCols and outData must have
// exactly the length Alloc returned.
//
// Fill panics if kind is not one of the Kind constants.
func Fill[I, J core.Index, D core.Float](m csr.Matrix[I, D], outRowPtr, outCols []J, outData []D, window int, kind Kind, opts ...core.Option) {
	switch kind {
	case KindMin:
		FillWith(m, outRowPtr, outCols, outData, window, NewMin[D], opts...)
	case KindMax:
		FillWith(m, outRowPtr, outCols, outData, window, NewMax[D], opts...)
	case KindMean:
		FillWith(m, outRowPtr, outCols, outData, window, NewMean[D], opts...)
	case KindMedian:
		FillWith(m, outRowPtr, outCols, outData, window, NewMedian[D], opts...)
	default:
		panic(fmt.Sprintf("rolling: unknown kernel %v", kind))
	}
}

// FillWith is Fill with a caller-supplied kernel. newKernel is called once
// per row range, so a kernel instance is never shared between goroutines.
func FillWith[I, J core.Index, D core.Float, K Kernel[D]](m csr.Matrix[I, D], outRowPtr, outCols []J, outData []D, window int, newKernel func(window int) K, opts ...core.Option) {
	cfg := core.ApplyOptions(opts...)

	parallel.For(m.Rows(), cfg, func(lo, hi int) {
		a, b := outRowPtr[lo], outRowPtr[hi]
		fillRows(m, lo, hi, outCols[a:b], outData[a:b], window, newKernel(window))
	})
}

// Apply runs Alloc and Fill and returns the result as a new matrix with
// the same shape as m.
func Apply[J, I core.Index, D core.Float](m csr.Matrix[I, D], window int, kind Kind, opts ...core.Option) csr.Matrix[J, D] {
	rowPtr := make([]J, m.Rows()+1)
	nnz := Alloc(m, rowPtr, window, opts...)

	out := csr.Matrix[J, D]{
		RowPtr:  rowPtr,
		ColIdx:  make([]J, nnz),
		Data:    make([]D, nnz),
		NumCols: m.NumCols,
	}
	Fill(m, out.RowPtr, out.ColIdx, out.Data, window, kind, opts...)

	return out
}

// fillRows slides the window over rows [lo, hi) of m. The window starting
// at column start covers [start, start+window) and is written to output
// column start+lhs. start skips ahead to the first window that reaches the
// next stored column, so only windows overlapping stored entries are
// evaluated. The stored entries inside a window are found by a two-pointer
// walk from the first column not yet left behind. Emission stops once
// outCols is full, which only happens for non-canonical rows.
func fillRows[I, J core.Index, D core.Float, K Kernel[D]](m csr.Matrix[I, D], lo, hi int, outCols []J, outData []D, window int, kernel K) {
	lhs := (window - 1) / 2
	stop := m.NumCols - lhs

	n := 0
	for r := lo; r < hi; r++ {
		cols, vals := m.Row(r)

		start := -lhs
		next := 0
		for next < len(cols) {
			start = max(start, int(cols[next])-window+1)
			if start >= stop {
				break
			}
			if n == len(outCols) {
				return
			}

			kernel.Init()
			k := next
			for index := start; index < start+window; index++ {
				if k < len(cols) && index == int(cols[k]) {
					kernel.Push(vals[k])
					k++
				} else {
					kernel.Push(0)
				}
			}

			outCols[n] = J(start + lhs)
			outData[n] = kernel.Pop()
			n++

			start++
			if start > int(cols[next]) {
				next++
			}
		}
	}
}
