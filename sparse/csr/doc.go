// Package csr defines the compressed-sparse-row matrix shared by every
// kernel in this module, together with the canonical-form checker and
// structural helpers.
//
// A Matrix with R rows stores RowPtr (length R+1, non-decreasing, starting
// at 0 and ending at nnz), ColIdx and Data (both length nnz). Row r owns the
// entries RowPtr[r]:RowPtr[r+1]. In canonical form the columns of every row
// are strictly increasing, which all kernels assume without checking.
//
// # Canonical form
//
//	ok := csr.IsCanonicalCSR(m.RowPtr, m.ColIdx)
//	ok = csr.IsCanonicalCOO(rows, cols) // row-major lexicographic order
//
// Structural problems (bad row pointers, length mismatches, columns out of
// range, unsorted rows) are reported all at once by [Validate]:
//
//	if err := csr.Validate(m); err != nil {
//		// errors.Is(err, csr.ErrNotCanonical) ...
//	}
//
// Unsorted rows can be put in canonical order with [SortIndices] as long as
// they contain no duplicate columns. [FromCOO] builds a matrix from
// coordinate triplets already in canonical COO order, and [Transpose]
// returns the CSC form of a matrix as the CSR form of its transpose.
package csr
