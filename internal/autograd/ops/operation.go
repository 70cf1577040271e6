// Package ops implements the differentiable operation catalog.
//
// Each operation is a small stateful struct created per invocation. Forward
// validates its operands, dispatches to the backend kernel, and saves
// whatever it will need for the backward pass (inputs, the output, or
// nothing at all). Backward turns the output gradient into one gradient per
// input using the saved state.
//
// Gradients are returned in the output's broadcast shape; reconciling them
// back to the input shapes is the engine's job, not the operation's. A nil
// entry in the returned slice marks an input that structurally cannot
// receive a gradient, such as a selection mask.
package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Operation is one differentiable step in the computation graph. An
// instance is used for exactly one invocation: Forward once, then Backward
// at most once.
type Operation interface {
	// Name identifies the operation in error messages and traces.
	Name() string

	// Forward validates inputs, computes the result eagerly, and saves the
	// state Backward will need. Validation failures are returned as errors;
	// the backend kernel is only reached with well-formed operands.
	Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error)

	// Backward computes the gradient of each input given the gradient of
	// the output, in input order. Entries may be nil for inputs that have
	// no gradient by construction.
	Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor
}
