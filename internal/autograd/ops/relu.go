package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Relu is the rectified linear unit: output = max(0, x).
//
// Backward: d(relu(x))/dx = 1 if x > 0, else 0. The gradient at exactly
// zero is taken as 0.
type Relu struct {
	x *tensor.RawTensor
}

// NewRelu creates a new Relu.
func NewRelu() *Relu { return &Relu{} }

func (op *Relu) Name() string { return "relu" }

// Forward computes max(0, x), saving the input.
func (op *Relu) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.x = x
	return b.Relu(x), nil
}

// Backward masks the output gradient to the positive region of the input.
func (op *Relu) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	zero := scalarZero(op.x)
	mask := b.Greater(op.x, zero)
	return []*tensor.RawTensor{b.Where(mask, outputGrad, zero)}
}
