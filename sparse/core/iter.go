package core

import (
	"cmp"
	"iter"
	"sort"
)

// Adjacent yields the overlapping pairs (s[i], s[i+1]) of s. A slice with
// fewer than two elements yields nothing.
//
// Ranging over a row pointer with Adjacent visits the [begin, end) bounds
// of every row.
func Adjacent[T any](s []T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for i := 1; i < len(s); i++ {
			if !yield(s[i-1], s[i]) {
				return
			}
		}
	}
}

// Zip yields references to the elements of a and b at the same position,
// stopping at the end of the shorter slice. Writes through the pointers
// mutate the underlying buffers.
func Zip[A, B any](a []A, b []B) iter.Seq2[*A, *B] {
	return func(yield func(*A, *B) bool) {
		n := min(len(a), len(b))
		for i := range n {
			if !yield(&a[i], &b[i]) {
				return
			}
		}
	}
}

// Zip3 calls fn with references to the elements of a, b and c at every
// position shared by all three slices. Returning false stops the walk.
func Zip3[A, B, C any](a []A, b []B, c []C, fn func(*A, *B, *C) bool) {
	n := min(len(a), len(b), len(c))
	for i := range n {
		if !fn(&a[i], &b[i], &c[i]) {
			return
		}
	}
}

// CoSort sorts keys in ascending order and applies the same permutation
// to vals. Both slices must have the same length.
func CoSort[K cmp.Ordered, V any](keys []K, vals []V) {
	sort.Sort(lockstep[K, V]{keys: keys, vals: vals})
}

type lockstep[K cmp.Ordered, V any] struct {
	keys []K
	vals []V
}

func (l lockstep[K, V]) Len() int           { return len(l.keys) }
func (l lockstep[K, V]) Less(i, j int) bool { return l.keys[i] < l.keys[j] }

func (l lockstep[K, V]) Swap(i, j int) {
	l.keys[i], l.keys[j] = l.keys[j], l.keys[i]
	l.vals[i], l.vals[j] = l.vals[j], l.vals[i]
}
