package clip

import "errors"

// ErrNegativeOperand is returned when B or c holds a negative value.
var ErrNegativeOperand = errors.New("clip: negative operand")
