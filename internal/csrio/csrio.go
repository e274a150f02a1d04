// Package csrio reads and writes CSR matrices as JSON documents of the
// form
//
//	{"n_cols": 5, "row_ptr": [0, 3], "col_idx": [0, 2, 4], "values": [5, 1, 3]}
//
// Matrices are always held with int64 indices and float64 values.
package csrio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/multierr"

	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// Matrix is the matrix type exchanged by this package.
type Matrix = csr.Matrix[int64, float64]

type document struct {
	NumCols int       `json:"n_cols"`
	RowPtr  []int64   `json:"row_ptr"`
	ColIdx  []int64   `json:"col_idx"`
	Values  []float64 `json:"values"`
}

// Decode reads one matrix from r without checking its structure.
func Decode(r io.Reader) (Matrix, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Matrix{}, fmt.Errorf("csrio: decode: %w", err)
	}
	if len(doc.RowPtr) == 0 {
		doc.RowPtr = []int64{0}
	}

	return csr.New(doc.NumCols, doc.RowPtr, doc.ColIdx, doc.Values), nil
}

// Load decodes a matrix and validates its structure. Unsorted rows are
// accepted: callers decide whether to sort them or fail.
func Load(r io.Reader) (Matrix, error) {
	m, err := Decode(r)
	if err != nil {
		return Matrix{}, err
	}

	if err := csr.Validate(m); err != nil {
		for _, e := range multierr.Errors(err) {
			if !errors.Is(e, csr.ErrNotCanonical) {
				return Matrix{}, fmt.Errorf("csrio: %w", err)
			}
		}
	}

	return m, nil
}

// Encode writes m to w as a single JSON line.
func Encode(w io.Writer, m Matrix) error {
	doc := document{
		NumCols: m.NumCols,
		RowPtr:  m.RowPtr,
		ColIdx:  nonNil(m.ColIdx),
		Values:  nonNil(m.Data),
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("csrio: encode: %w", err)
	}

	return nil
}

// ReadFile loads the matrix stored at path.
func ReadFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("csrio: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
