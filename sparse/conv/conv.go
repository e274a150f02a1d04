package conv

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sparse/internal/parallel"
	"github.com/cwbudde/algo-sparse/internal/scratch"
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// vectorThreshold is the smallest kernel that uses the gathered window path.
const vectorThreshold = 4

var windowPool = scratch.NewPool[float64]()

// Alloc computes how many entries convolving m with a kernel of the given
// width produces per row, writes the exclusive prefix sum to outRowPtr
// (length m.Rows()+1) and returns the total.
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

// rowSize counts the window starts in [-w/2, numCols-w/2) whose window
// [s, s+w) holds a stored column. Column c is reached by the starts
// [c-w+1, c]; overlapping runs of those intervals are merged before being
// clipped to the start range.
func rowSize[I core.Index](cols []I, window, numCols int) int {
	first := -window / 2
	last := numCols - window/2 - 1

	clipped := func(a, b int) int {
		return max(0, min(b, last)-max(a, first)+1)
	}

	size := 0
	runLo, runHi := 0, -1
	for i, c := range cols {
		a, b := int(c)-window+1, int(c)
		if i > 0 && a <= runHi+1 {
			runHi = b
			continue
		}
		if i > 0 {
			size += clipped(runLo, runHi)
		}
		runLo, runHi = a, b
	}
	if len(cols) > 0 {
		size += clipped(runLo, runHi)
	}

	return size
}

// Fill convolves every row of m with coeffs. outRowPtr must be the row
// pointer written by Alloc for the same matrix and len(coeffs), and
// outCols and outData must have exactly the length Alloc returned.
func Fill[I, J core.Index, D core.Float](m csr.Matrix[I, D], outRowPtr, outCols []J, outData []D, coeffs []D, opts ...core.Option) {
	cfg := core.ApplyOptions(opts...)

	parallel.For(m.Rows(), cfg, func(lo, hi int) {
		a, b := outRowPtr[lo], outRowPtr[hi]
		cols, data := outCols[a:b], outData[a:b]

		if len(coeffs) >= vectorThreshold {
			if m64, ok := any(m).(csr.Matrix[I, float64]); ok {
				fillRowsGathered(m64, lo, hi, cols, any(data).([]float64), any(coeffs).([]float64))
				return
			}
		}
		fillRows(m, lo, hi, cols, data, coeffs)
	})
}

// Convolve runs Alloc and Fill and returns the result as a new matrix.
func Convolve[J, I core.Index, D core.Float](m csr.Matrix[I, D], coeffs []D, opts ...core.Option) csr.Matrix[J, D] {
	rowPtr := make([]J, m.Rows()+1)
	nnz := Alloc(m, rowPtr, len(coeffs), opts...)

	out := csr.Matrix[J, D]{
		RowPtr:  rowPtr,
		ColIdx:  make([]J, nnz),
		Data:    make([]D, nnz),
		NumCols: m.NumCols,
	}
	Fill(m, out.RowPtr, out.ColIdx, out.Data, coeffs, opts...)

	return out
}

// fillRows walks rows [lo, hi) with the same cursor as the rolling
// evaluator and accumulates the weighted sum of the stored entries in each
// window directly. A range stops emitting once outCols is full, which
// only non-canonical rows can cause.
func fillRows[I, J core.Index, D core.Float](m csr.Matrix[I, D], lo, hi int, outCols []J, outData []D, coeffs []D) {
	window := len(coeffs)
	lhs := window / 2
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

			var value D
			k := next
			for index := start; index < start+window && k < len(cols); index++ {
				if index == int(cols[k]) {
					value += coeffs[window-1-(index-start)] * vals[k]
					k++
				}
			}

			outCols[n] = J(start + lhs)
			outData[n] = value
			n++

			start++
			if start > int(cols[next]) {
				next++
			}
		}
	}
}

// fillRowsGathered is fillRows for float64 data: the stored entries of a
// window are scattered into a dense row and multiplied with the flipped
// kernel in one vectorized call.
func fillRowsGathered[I, J core.Index](m csr.Matrix[I, float64], lo, hi int, outCols []J, outData []float64, coeffs []float64) {
	window := len(coeffs)
	lhs := window / 2
	stop := m.NumCols - lhs

	buf := windowPool.Get(3 * window)
	defer windowPool.Put(buf)

	flipped := (*buf)[:window]
	dense := (*buf)[window : 2*window]
	prod := (*buf)[2*window:]
	for k, c := range coeffs {
		flipped[window-1-k] = c
	}

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

			clear(dense)
			for k := next; k < len(cols) && int(cols[k]) < start+window; k++ {
				if offset := int(cols[k]) - start; offset >= 0 {
					dense[offset] = vals[k]
				}
			}
			vecmath.MulBlock(prod, dense, flipped)

			value := 0.0
			for _, p := range prod {
				value += p
			}

			outCols[n] = J(start + lhs)
			outData[n] = value
			n++

			start++
			if start > int(cols[next]) {
				next++
			}
		}
	}
}
