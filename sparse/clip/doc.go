// Package clip bounds the stored values of a CSR matrix from above.
//
// [MaxClip] caps every entry of A at a per-row ceiling c[i], raised by the
// value of B at the same position when B stores one:
//
//	a[i,j] = min(a[i,j], b[i,j] + c[i])   if B stores (i, j)
//	a[i,j] = min(a[i,j], c[i])            otherwise
//
// A is modified in place. B and c must be non-negative; the whole input is
// checked before any value of A changes, so a failed call leaves A intact.
package clip
