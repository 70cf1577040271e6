package ops

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Expand broadcasts x to a larger shape, materializing the result.
//
// Backward: the engine's broadcast reconciliation sums the gradient back to
// the input shape, so the output gradient is returned untouched.
type Expand struct {
	shape tensor.Shape
}

// NewExpand creates a new Expand to the given shape.
func NewExpand(shape tensor.Shape) *Expand {
	return &Expand{shape: shape.Clone()}
}

func (op *Expand) Name() string { return "expand" }

// Forward validates that x broadcasts to the target shape exactly.
func (op *Expand) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	merged, _, err := tensor.BroadcastShapes(x.Shape(), op.shape)
	if err != nil {
		return nil, errors.WithMessage(err, op.Name())
	}
	if !merged.Equal(op.shape) {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"expand: %v does not broadcast to %v", x.Shape(), op.shape)
	}
	return b.Expand(x, op.shape), nil
}

// Backward passes the gradient through for the engine to reduce.
func (op *Expand) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}
