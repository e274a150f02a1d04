// Package rowstats reduces each row of a CSR matrix to a moment of its
// conceptual dense row.
//
// Absent entries count as zeros, so every statistic divides by the column
// count of the matrix and not by the number of stored entries. All
// functions write one value per row into a caller-provided slice of length
// m.Rows() and touch only the stored values.
//
// # Usage
//
//	out := make([]float64, m.Rows())
//	rowstats.Stdev(m, out)
//
// [Stdev] uses the single-pass sum of squares, which can round a
// near-constant row to a slightly negative variance and return NaN.
// [StableStdev] uses Welford's update and never does.
package rowstats
