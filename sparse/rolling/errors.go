package rolling

import "errors"

// ErrUnknownKind is returned by ParseKind for unrecognized kernel names.
var ErrUnknownKind = errors.New("rolling: unknown kernel")
