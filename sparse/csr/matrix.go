package csr

import "github.com/cwbudde/algo-sparse/sparse/core"

// Matrix is a sparse matrix in compressed-sparse-row layout. The slices are
// caller owned; kernels read them in place and never reallocate.
type Matrix[I core.Index, D core.Float] struct {
	RowPtr  []I
	ColIdx  []I
	Data    []D
	NumCols int
}

// New wraps existing buffers without copying.
func New[I core.Index, D core.Float](numCols int, rowPtr, colIdx []I, data []D) Matrix[I, D] {
	return Matrix[I, D]{
		RowPtr:  rowPtr,
		ColIdx:  colIdx,
		Data:    data,
		NumCols: numCols,
	}
}

// Rows returns the number of rows.
func (m Matrix[I, D]) Rows() int {
	return max(len(m.RowPtr)-1, 0)
}

// NNZ returns the number of explicitly stored entries.
func (m Matrix[I, D]) NNZ() int {
	return len(m.ColIdx)
}

// Row returns the column indices and values of row r.
func (m Matrix[I, D]) Row(r int) ([]I, []D) {
	a, b := m.RowPtr[r], m.RowPtr[r+1]
	return m.ColIdx[a:b], m.Data[a:b]
}

// IsCanonical reports whether every row has strictly increasing columns.
func (m Matrix[I, D]) IsCanonical() bool {
	return IsCanonicalCSR(m.RowPtr, m.ColIdx)
}

// Clone returns a deep copy of m.
func (m Matrix[I, D]) Clone() Matrix[I, D] {
	return Matrix[I, D]{
		RowPtr:  append([]I(nil), m.RowPtr...),
		ColIdx:  append([]I(nil), m.ColIdx...),
		Data:    append([]D(nil), m.Data...),
		NumCols: m.NumCols,
	}
}

// FromDense builds a canonical matrix from a row-major dense slice,
// storing only non-zero values. All rows must have numCols entries.
func FromDense[I core.Index, D core.Float](dense [][]D, numCols int) Matrix[I, D] {
	m := Matrix[I, D]{
		RowPtr:  make([]I, 1, len(dense)+1),
		NumCols: numCols,
	}

	for _, row := range dense {
		for c, v := range row {
			if v != 0 {
				m.ColIdx = append(m.ColIdx, I(c))
				m.Data = append(m.Data, v)
			}
		}
		m.RowPtr = append(m.RowPtr, I(len(m.ColIdx)))
	}

	return m
}

// ToDense expands m into a row-major dense slice. Duplicate columns are
// summed. Intended for inspection of small matrices.
func (m Matrix[I, D]) ToDense() [][]D {
	out := make([][]D, m.Rows())
	for r := range out {
		out[r] = make([]D, m.NumCols)
		cols, vals := m.Row(r)
		for k, c := range cols {
			out[r][c] += vals[k]
		}
	}

	return out
}
