package testutil

import (
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// DenseRolling is a dense reference for the rolling-window evaluator. The
// window emitted at output column p covers columns [p-(w-1)/2, p-(w-1)/2+w)
// with zeros for absent and out-of-range cells. A column is emitted only
// when its window contains at least one stored entry. reduce receives the
// w window values in column order.
func DenseRolling[I core.Index, D core.Float](m csr.Matrix[I, D], w int, reduce func([]float64) float64) csr.Matrix[I, D] {
	lhs := (w - 1) / 2
	out := csr.Matrix[I, D]{RowPtr: []I{0}, NumCols: m.NumCols}

	for r := range m.Rows() {
		dense, stored := denseRow(m, r)
		for p := range m.NumCols {
			lo := p - lhs
			if !anyStored(stored, lo, lo+w) {
				continue
			}
			out.ColIdx = append(out.ColIdx, I(p))
			out.Data = append(out.Data, D(reduce(windowValues(dense, lo, w))))
		}
		out.RowPtr = append(out.RowPtr, I(len(out.ColIdx)))
	}

	return out
}

// DenseConvolve is a dense reference for the convolution evaluator. Window
// starts s range over [-w/2, numCols-w/2) and the result for s lands in
// column s+w/2.
func DenseConvolve[I core.Index, D core.Float](m csr.Matrix[I, D], coeffs []float64) csr.Matrix[I, D] {
	w := len(coeffs)
	out := csr.Matrix[I, D]{RowPtr: []I{0}, NumCols: m.NumCols}

	for r := range m.Rows() {
		dense, stored := denseRow(m, r)
		for s := -w / 2; s < m.NumCols-w/2; s++ {
			if !anyStored(stored, s, s+w) {
				continue
			}
			vals := windowValues(dense, s, w)
			sum := 0.0
			for k, v := range vals {
				sum += coeffs[w-1-k] * v
			}
			out.ColIdx = append(out.ColIdx, I(s+w/2))
			out.Data = append(out.Data, D(sum))
		}
		out.RowPtr = append(out.RowPtr, I(len(out.ColIdx)))
	}

	return out
}

func denseRow[I core.Index, D core.Float](m csr.Matrix[I, D], r int) ([]float64, []bool) {
	dense := make([]float64, m.NumCols)
	stored := make([]bool, m.NumCols)
	cols, vals := m.Row(r)
	for k, c := range cols {
		dense[c] = float64(vals[k])
		stored[c] = true
	}

	return dense, stored
}

func anyStored(stored []bool, lo, hi int) bool {
	for c := max(lo, 0); c < min(hi, len(stored)); c++ {
		if stored[c] {
			return true
		}
	}

	return false
}

func windowValues(dense []float64, lo, w int) []float64 {
	vals := make([]float64, w)
	for k := range w {
		if c := lo + k; c >= 0 && c < len(dense) {
			vals[k] = dense[c]
		}
	}

	return vals
}
