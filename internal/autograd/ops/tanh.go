package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Tanh is the hyperbolic tangent: output = tanh(x).
//
// Backward: d(tanh(x))/dx = 1 - tanh(x)^2, so grad_x = outputGrad * (1 - output^2).
type Tanh struct {
	out *tensor.RawTensor
}

// NewTanh creates a new Tanh.
func NewTanh() *Tanh { return &Tanh{} }

func (op *Tanh) Name() string { return "tanh" }

// Forward computes tanh(x), saving the output.
func (op *Tanh) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.out = b.Tanh(x)
	return op.out, nil
}

// Backward computes grad_x = outputGrad * (1 - tanh(x)^2).
func (op *Tanh) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	oneMinusSq := b.AddScalar(b.Neg(b.Mul(op.out, op.out)), 1)
	return []*tensor.RawTensor{b.Mul(outputGrad, oneMinusSq)}
}
