package rolling

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-sparse/sparse/core"
)

// Kernel reduces the values of one window. Init starts a new window, Push
// receives the window values in column order (implicit zeros included) and
// Pop returns the reduced value.
type Kernel[D core.Float] interface {
	Init()
	Push(value D)
	Pop() D
}

// Kind selects one of the built-in kernels.
type Kind int

const (
	KindMin Kind = iota
	KindMax
	KindMean
	KindMedian
)

var kindNames = [...]string{
	KindMin:    "min",
	KindMax:    "max",
	KindMean:   "mean",
	KindMedian: "median",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kernel name ("min", "max", "mean", "median") to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MinKernel tracks the smallest pushed value.
type MinKernel[D core.Float] struct {
	result D
}

// NewMin returns a MinKernel. The window width is unused.
func NewMin[D core.Float](int) *MinKernel[D] {
	return &MinKernel[D]{}
}

func (k *MinKernel[D]) Init()        { k.result = core.Highest[D]() }
func (k *MinKernel[D]) Push(value D) { k.result = min(k.result, value) }
func (k *MinKernel[D]) Pop() D       { return k.result }

// MaxKernel tracks the largest pushed value.
type MaxKernel[D core.Float] struct {
	result D
}

// NewMax returns a MaxKernel. The window width is unused.
func NewMax[D core.Float](int) *MaxKernel[D] {
	return &MaxKernel[D]{}
}

func (k *MaxKernel[D]) Init()        { k.result = core.Lowest[D]() }
func (k *MaxKernel[D]) Push(value D) { k.result = max(k.result, value) }
func (k *MaxKernel[D]) Pop() D       { return k.result }

// MeanKernel sums the pushed values and divides by the configured window
// width, not by the number of stored entries in the window.
type MeanKernel[D core.Float] struct {
	sum    D
	window D
}

// NewMean returns a MeanKernel for the given window width.
func NewMean[D core.Float](window int) *MeanKernel[D] {
	return &MeanKernel[D]{window: D(window)}
}

func (k *MeanKernel[D]) Init()        { k.sum = 0 }
func (k *MeanKernel[D]) Push(value D) { k.sum += value }
func (k *MeanKernel[D]) Pop() D       { return k.sum / k.window }

// MedianKernel buffers the pushed values and returns the element at index
// len/2 of the sorted buffer: the median for odd widths and the upper of
// the two middle values for even widths.
type MedianKernel[D core.Float] struct {
	buf []D
}

// NewMedian returns a MedianKernel with room for window values.
func NewMedian[D core.Float](window int) *MedianKernel[D] {
	return &MedianKernel[D]{buf: make([]D, 0, window)}
}

func (k *MedianKernel[D]) Init()        { k.buf = k.buf[:0] }
func (k *MedianKernel[D]) Push(value D) { k.buf = append(k.buf, value) }

func (k *MedianKernel[D]) Pop() D {
	slices.Sort(k.buf)
	return k.buf[len(k.buf)/2]
}
