package conv

import "errors"

// Errors returned by coefficient generation.
var (
	ErrInvalidWidth = errors.New("conv: kernel width must be > 0")
	ErrZeroSum      = errors.New("conv: kernel sums to zero")
	ErrUnknownShape = errors.New("conv: unknown kernel shape")
)
