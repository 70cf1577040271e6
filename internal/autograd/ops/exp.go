package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Exp is the element-wise exponential: output = e^x.
//
// Backward: d(e^x)/dx = e^x, so grad_x = outputGrad * output.
type Exp struct {
	out *tensor.RawTensor
}

// NewExp creates a new Exp.
func NewExp() *Exp { return &Exp{} }

func (op *Exp) Name() string { return "exp" }

// Forward computes e^x, saving the output for the backward pass.
func (op *Exp) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.out = b.Exp(x)
	return op.out, nil
}

// Backward computes grad_x = outputGrad * e^x.
func (op *Exp) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Mul(outputGrad, op.out)}
}
