package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Sum reduces over all axes: output = sum(x), a rank-0 tensor.
//
// Backward: every element contributes with weight 1, so grad_x is the
// scalar output gradient broadcast back to the input shape.
type Sum struct {
	inShape tensor.Shape
}

// NewSum creates a new Sum.
func NewSum() *Sum { return &Sum{} }

func (op *Sum) Name() string { return "sum" }

// Forward sums all elements into a rank-0 tensor, saving the input shape.
func (op *Sum) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.inShape = x.Shape().Clone()
	return b.Sum(x), nil
}

// Backward broadcasts the scalar gradient to the input shape.
func (op *Sum) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Expand(outputGrad, op.inShape)}
}
