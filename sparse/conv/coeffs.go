package conv

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Shape identifies a generated kernel.
type Shape int

const (
	ShapeRectangular Shape = iota
	ShapeTriangle
	ShapeHann
	ShapeHamming
	ShapeBlackman
)

var shapeNames = [...]string{
	ShapeRectangular: "rectangular",
	ShapeTriangle:    "triangle",
	ShapeHann:        "hann",
	ShapeHamming:     "hamming",
	ShapeBlackman:    "blackman",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}

	return shapeNames[s]
}

// ParseShape returns the Shape with the given name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return Shape(s), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

var cosineTerms = map[Shape][]float64{
	ShapeHann:     {0.5, -0.5},
	ShapeHamming:  {0.54, -0.46},
	ShapeBlackman: {0.42, -0.5, 0.08},
}

// ShapeOption configures Coefficients.
type ShapeOption func(*shapeConfig)

type shapeConfig struct {
	normalize bool
}

// WithNormalize scales the kernel to unit sum, which makes the
// convolution a weighted moving average.
func WithNormalize() ShapeOption {
	return func(c *shapeConfig) {
		c.normalize = true
	}
}

// Coefficients generates a symmetric kernel of the given width.
//
// Taps are sampled at (n+1)/(width+1), so the zero endpoints of the
// tapered shapes fall outside the kernel and every tap is positive.
func Coefficients(shape Shape, width int, opts ...ShapeOption) ([]float64, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	var cfg shapeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]float64, width)
	for n := range out {
		x := float64(n+1) / float64(width+1)

		switch shape {
		case ShapeRectangular:
			out[n] = 1
		case ShapeTriangle:
			out[n] = 1 - math.Abs(2*x-1)
		case ShapeHann, ShapeHamming, ShapeBlackman:
			out[n] = cosineAt(x, cosineTerms[shape])
		default:
			return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
		}
	}

	if cfg.normalize {
		if err := Normalize(out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Normalize scales coeffs in place to unit sum.
func Normalize(coeffs []float64) error {
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	if sum == 0 {
		return ErrZeroSum
	}
	vecmath.ScaleBlock(coeffs, coeffs, 1/sum)

	return nil
}

func cosineAt(x float64, terms []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range terms {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}
