package ops

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Reshape reinterprets x under a new shape with the same element count.
//
// Backward: grad_x is the output gradient reshaped back to the input shape.
type Reshape struct {
	shape   tensor.Shape
	inShape tensor.Shape
}

// NewReshape creates a new Reshape to the given shape.
func NewReshape(shape tensor.Shape) *Reshape {
	return &Reshape{shape: shape.Clone()}
}

func (op *Reshape) Name() string { return "reshape" }

// Forward validates the element count and returns a reshaped view.
func (op *Reshape) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	if err := op.shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, op.Name())
	}
	if x.Shape().NumElements() != op.shape.NumElements() {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"reshape: cannot view %v as %v", x.Shape(), op.shape)
	}
	op.inShape = x.Shape().Clone()
	return b.Reshape(x, op.shape), nil
}

// Backward reshapes the gradient back to the input shape.
func (op *Reshape) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Reshape(outputGrad, op.inShape)}
}
