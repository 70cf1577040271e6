package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Cast converts x to another element type.
//
// Backward: the gradient arrives in the target type and is cast back to the
// source type. The cast itself is treated as the identity for
// differentiation purposes.
type Cast struct {
	dtype tensor.DataType
	from  tensor.DataType
}

// NewCast creates a new Cast to the given element type.
func NewCast(dtype tensor.DataType) *Cast {
	return &Cast{dtype: dtype}
}

func (op *Cast) Name() string { return "cast" }

// Forward converts x, saving the source type.
func (op *Cast) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.from = x.DType()
	return b.Cast(x, op.dtype), nil
}

// Backward casts the gradient back to the source type.
func (op *Cast) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Cast(outputGrad, op.from)}
}
