package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Sqrt is the element-wise square root: output = sqrt(x).
//
// Backward: d(sqrt(x))/dx = 1/(2*sqrt(x)), so grad_x = outputGrad / (2 * output).
type Sqrt struct {
	out *tensor.RawTensor
}

// NewSqrt creates a new Sqrt.
func NewSqrt() *Sqrt { return &Sqrt{} }

func (op *Sqrt) Name() string { return "sqrt" }

// Forward computes sqrt(x), saving the output.
func (op *Sqrt) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.out = b.Sqrt(x)
	return op.out, nil
}

// Backward computes grad_x = outputGrad / (2 * sqrt(x)).
func (op *Sqrt) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Div(outputGrad, b.MulScalar(op.out, 2))}
}
