package csr

import "github.com/cwbudde/algo-sparse/sparse/core"

// IsCanonicalCSR reports whether the columns of every row are strictly
// increasing. Duplicate or out-of-order columns fail their row.
func IsCanonicalCSR[I core.Index](rowPtr, colIdx []I) bool {
	for a, b := range core.Adjacent(rowPtr) {
		for u, v := range core.Adjacent(colIdx[a:b]) {
			if u >= v {
				return false
			}
		}
	}

	return true
}

// IsCanonicalCOO reports whether the coordinates (rows[i], cols[i]) are in
// strictly increasing row-major lexicographic order.
func IsCanonicalCOO[I core.Index](rows, cols []I) bool {
	n := min(len(rows), len(cols))
	for i := 1; i < n; i++ {
		r0, r1 := rows[i-1], rows[i]
		if r0 < r1 {
			continue
		}
		if r0 != r1 || cols[i-1] >= cols[i] {
			return false
		}
	}

	return true
}
