// Package core holds the shared building blocks of the sparse kernels:
// the numeric type constraints, the adjacent-pair and lock-step iteration
// helpers used to walk row pointers and coordinate lists, and the
// execution options accepted by every row-parallel kernel.
//
// Flat views are plain Go slices. A slice already is a bounds-described,
// non-owning view over a contiguous buffer and s[a:b] is O(1), so the
// kernels slice caller-owned buffers directly and never copy them.
package core
