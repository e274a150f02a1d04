package core

import (
	"math"
	"unsafe"
)

// Index is the set of integer types accepted for row pointers and column
// indices.
type Index interface {
	~int32 | ~int64
}

// Float is the set of value types accepted for matrix data.
type Float interface {
	~float32 | ~float64
}

// Highest returns the largest finite value representable by D.
func Highest[D Float]() D {
	var zero D
	if unsafe.Sizeof(zero) == 4 {
		f := float32(math.MaxFloat32)
		return D(f)
	}

	f := math.MaxFloat64

	return D(f)
}

// Lowest returns the most negative finite value representable by D.
func Lowest[D Float]() D {
	return -Highest[D]()
}

// NearlyEqual reports whether a and b are equal within eps, using an
// absolute test near zero and a relative test elsewhere.
func NearlyEqual[D Float](a, b, eps D) bool {
	if a == b {
		return true
	}

	diff := D(math.Abs(float64(a - b)))
	if diff <= eps {
		return true
	}

	largest := D(math.Max(math.Abs(float64(a)), math.Abs(float64(b))))

	return diff/largest <= eps
}
