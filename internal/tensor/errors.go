package tensor

import "github.com/pkg/errors"

// ErrShapeMismatch is the sentinel for operand shapes an operation cannot
// accept. It is surfaced synchronously at apply time and is recoverable:
// the caller may retry with corrected shapes.
var ErrShapeMismatch = errors.New("shape mismatch")
