// Package rolling computes centered rolling-window statistics along the
// rows of a CSR matrix without densifying it.
//
// Absent entries count as implicit zeros, so a window produces an output
// column whenever it overlaps at least one stored entry. Windows are
// clipped at the matrix edges but never renormalized: the mean always
// divides by the configured width.
//
// # Two-phase protocol
//
// The output size is computed exactly before any value is produced, so
// output buffers are allocated once:
//
//	rowPtr := make([]int64, m.Rows()+1)
//	nnz := rolling.Alloc(m, rowPtr, w)
//	cols := make([]int64, nnz)
//	vals := make([]float64, nnz)
//	rolling.Fill(m, rowPtr, cols, vals, w, rolling.KindMedian)
//
// [Apply] runs both phases and returns the result as a new matrix.
//
// # Kernels
//
// The built-in reducers are min, max, mean and median, selected with
// [Kind]. Custom reducers implement [Kernel] and are passed to [FillWith];
// the kernel type is a type parameter so its methods are resolved at
// compile time.
//
// Rows are independent. With more than one worker configured (see
// core.WithWorkers) both phases split the rows into contiguous ranges and
// process them concurrently, each range writing its own slice of the
// output.
package rolling
