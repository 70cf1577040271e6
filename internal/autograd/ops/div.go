package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Div is element-wise division: output = a / b.
//
// Backward:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b^2, so grad_b = -outputGrad * output / b
type Div struct {
	b   *tensor.RawTensor
	out *tensor.RawTensor
}

// NewDiv creates a new Div.
func NewDiv() *Div { return &Div{} }

func (op *Div) Name() string { return "div" }

// Forward computes a / b with broadcasting, saving the divisor and output.
func (op *Div) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, y, err := binaryArgs(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.b = y
	op.out = b.Div(x, y)
	return op.out, nil
}

// Backward computes input gradients for division.
func (op *Div) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	gradA := b.Div(outputGrad, op.b)
	gradB := b.Neg(b.Div(b.Mul(outputGrad, op.out), op.b))
	return []*tensor.RawTensor{gradA, gradB}
}
