package csr

import "github.com/cwbudde/algo-sparse/sparse/core"

// Transpose returns the CSR form of the transpose of m, which is also the
// CSC form of m. The result has m.NumCols rows and m.Rows() columns, and
// its rows are canonical whenever the columns of m are within range.
//
// The entries are bucketed by column with a histogram, an exclusive scan
// turns the counts into row pointers, and a scatter pass visits the rows of
// m in order so every output row receives increasing indices.
func Transpose[I core.Index, D core.Float](m Matrix[I, D]) Matrix[I, D] {
	nnz := m.NNZ()
	out := Matrix[I, D]{
		RowPtr:  make([]I, m.NumCols+1),
		ColIdx:  make([]I, nnz),
		Data:    make([]D, nnz),
		NumCols: m.Rows(),
	}

	for _, c := range m.ColIdx {
		out.RowPtr[c+1]++
	}
	for c := range m.NumCols {
		out.RowPtr[c+1] += out.RowPtr[c]
	}

	next := append([]I(nil), out.RowPtr[:m.NumCols]...)

	r := 0
	for a, b := range core.Adjacent(m.RowPtr) {
		for c, v := range core.Zip(m.ColIdx[a:b], m.Data[a:b]) {
			dst := next[*c]
			out.ColIdx[dst] = I(r)
			out.Data[dst] = *v
			next[*c]++
		}
		r++
	}

	return out
}
