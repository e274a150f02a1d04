// Package conv convolves the rows of a CSR matrix with a short dense
// coefficient kernel without densifying the matrix.
//
// The kernel is flipped as in discrete convolution: for the window starting
// at column s the result is
//
//	Σ coeffs[w-1-k] * x[s+k],  k = 0 .. w-1
//
// where x is the conceptual dense row with implicit zeros. Window starts
// range over [-w/2, NumCols-w/2) and the result for start s is stored
// in column s+w/2, so output columns cover [0, NumCols) as in the rolling
// evaluator. Only windows that overlap a stored entry produce output.
//
// Like the rolling kernels, convolution follows an allocate-then-fill
// protocol:
//
//	rowPtr := make([]int32, m.Rows()+1)
//	nnz := conv.Alloc(m, rowPtr, len(coeffs))
//	cols := make([]int32, nnz)
//	vals := make([]float64, nnz)
//	conv.Fill(m, rowPtr, cols, vals, coeffs)
//
// or in one call with [Convolve]. Smoothing kernels can be generated with
// [Coefficients].
//
// For float64 data and kernels of at least four taps each window is
// gathered into a dense scratch row and multiplied with the flipped kernel
// by the vectorized algo-vecmath routines. The products are summed in the
// same order as the scalar path, so both paths give identical results for
// finite coefficients.
package conv
