package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Neg is element-wise negation: output = -x.
//
// Backward: d(-x)/dx = -1, so grad_x = -outputGrad.
type Neg struct{}

// NewNeg creates a new Neg.
func NewNeg() *Neg { return &Neg{} }

func (op *Neg) Name() string { return "neg" }

// Forward computes -x.
func (op *Neg) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	return b.Neg(x), nil
}

// Backward negates the output gradient.
func (op *Neg) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Neg(outputGrad)}
}
