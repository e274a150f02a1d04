package csr

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/cwbudde/algo-sparse/sparse/core"
)

// Validate checks the structural invariants of m and returns every
// violation found, combined with multierr. Each error wraps one of the
// package sentinels so callers can test with errors.Is.
//
// The canonical-form check only runs once the row pointer is known to be
// within bounds.
func Validate[I core.Index, D core.Float](m Matrix[I, D]) error {
	var err error

	nnz := len(m.ColIdx)
	if len(m.Data) != nnz {
		err = multierr.Append(err, fmt.Errorf("%w: %d columns, %d values", ErrLengthMismatch, nnz, len(m.Data)))
	}
	if m.NumCols < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrNumCols, m.NumCols))
	}
	if len(m.RowPtr) == 0 {
		return multierr.Append(err, fmt.Errorf("%w: empty row pointer", ErrRowPtrStart))
	}

	pointersOK := true
	if m.RowPtr[0] != 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrRowPtrStart, m.RowPtr[0]))
		pointersOK = false
	}
	if last := m.RowPtr[len(m.RowPtr)-1]; int(last) != nnz {
		err = multierr.Append(err, fmt.Errorf("%w: got %d, nnz %d", ErrRowPtrEnd, last, nnz))
		pointersOK = false
	}

	r := 0
	for a, b := range core.Adjacent(m.RowPtr) {
		if a > b {
			err = multierr.Append(err, fmt.Errorf("%w: row %d spans [%d, %d)", ErrRowPtrOrder, r, a, b))
			pointersOK = false

			break
		}
		r++
	}

	for k, c := range m.ColIdx {
		if c < 0 || int(c) >= m.NumCols {
			err = multierr.Append(err, fmt.Errorf("%w: entry %d has column %d, matrix has %d", ErrColumnRange, k, c, m.NumCols))

			break
		}
	}

	if pointersOK && len(m.Data) == nnz {
		if row := firstUnsortedRow(m.RowPtr, m.ColIdx); row >= 0 {
			err = multierr.Append(err, fmt.Errorf("%w: row %d", ErrNotCanonical, row))
		}
	}

	return err
}

func firstUnsortedRow[I core.Index](rowPtr, colIdx []I) int {
	r := 0
	for a, b := range core.Adjacent(rowPtr) {
		for u, v := range core.Adjacent(colIdx[a:b]) {
			if u >= v {
				return r
			}
		}
		r++
	}

	return -1
}
