package autograd

import "github.com/pkg/errors"

var (
	// ErrNonScalarRoot is returned when Backward is invoked on a Value that
	// is not rank-0. The pass aborts before mutating any gradient.
	ErrNonScalarRoot = errors.New("backward requires a scalar (rank-0) root")

	// ErrNoGradRoot is returned when Backward is invoked on a Value that does
	// not require gradients, e.g. one produced inside a NoGrad scope.
	ErrNoGradRoot = errors.New("backward root does not require gradients")

	// ErrBrokenInvariant indicates a corrupted graph: a cycle found during
	// the topological walk, or a node reached during replay whose output has
	// no seeded gradient. These are construction bugs, not user errors, and
	// a backward pass that hits one leaves gradients in an unusable,
	// partially accumulated state.
	ErrBrokenInvariant = errors.New("autograd graph invariant violated")
)
