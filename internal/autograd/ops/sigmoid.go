package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Sigmoid is the logistic function: output = 1 / (1 + e^-x).
//
// Backward: d(sigmoid(x))/dx = sigmoid(x) * (1 - sigmoid(x)), so
// grad_x = outputGrad * output * (1 - output).
type Sigmoid struct {
	out *tensor.RawTensor
}

// NewSigmoid creates a new Sigmoid.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

func (op *Sigmoid) Name() string { return "sigmoid" }

// Forward computes the logistic function, saving the output.
func (op *Sigmoid) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.out = b.Sigmoid(x)
	return op.out, nil
}

// Backward computes grad_x = outputGrad * output * (1 - output).
func (op *Sigmoid) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	oneMinus := b.AddScalar(b.Neg(op.out), 1)
	return []*tensor.RawTensor{b.Mul(outputGrad, b.Mul(op.out, oneMinus))}
}
