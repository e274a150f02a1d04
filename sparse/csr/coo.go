package csr

import (
	"fmt"

	"github.com/cwbudde/algo-sparse/sparse/core"
)

// FromCOO builds a matrix from coordinate triplets. The coordinates must
// already be in canonical COO order (see IsCanonicalCOO); duplicates are
// rejected rather than merged.
func FromCOO[I core.Index, D core.Float](numRows, numCols int, rows, cols []I, vals []D) (Matrix[I, D], error) {
	if len(rows) != len(cols) || len(cols) != len(vals) {
		return Matrix[I, D]{}, fmt.Errorf("%w: %d rows, %d columns, %d values", ErrLengthMismatch, len(rows), len(cols), len(vals))
	}
	if !IsCanonicalCOO(rows, cols) {
		return Matrix[I, D]{}, fmt.Errorf("%w: coordinates not in row-major order", ErrNotCanonical)
	}

	m := Matrix[I, D]{
		RowPtr:  make([]I, numRows+1),
		ColIdx:  make([]I, 0, len(cols)),
		Data:    make([]D, 0, len(vals)),
		NumCols: numCols,
	}

	var err error
	core.Zip3(rows, cols, vals, func(r, c *I, v *D) bool {
		switch {
		case *r < 0 || int(*r) >= numRows:
			err = fmt.Errorf("%w: %d, matrix has %d rows", ErrRowRange, *r, numRows)
		case *c < 0 || int(*c) >= numCols:
			err = fmt.Errorf("%w: %d, matrix has %d columns", ErrColumnRange, *c, numCols)
		default:
			m.RowPtr[*r+1]++
			m.ColIdx = append(m.ColIdx, *c)
			m.Data = append(m.Data, *v)

			return true
		}

		return false
	})
	if err != nil {
		return Matrix[I, D]{}, err
	}

	for r := range numRows {
		m.RowPtr[r+1] += m.RowPtr[r]
	}

	return m, nil
}
