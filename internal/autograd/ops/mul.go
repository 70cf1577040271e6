package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Mul is element-wise multiplication: output = a * b.
//
// Backward:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type Mul struct {
	a, b *tensor.RawTensor
}

// NewMul creates a new Mul.
func NewMul() *Mul { return &Mul{} }

func (op *Mul) Name() string { return "mul" }

// Forward computes a * b with broadcasting, saving both inputs.
func (op *Mul) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, y, err := binaryArgs(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.a, op.b = x, y
	return b.Mul(x, y), nil
}

// Backward computes input gradients for multiplication.
func (op *Mul) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		b.Mul(outputGrad, op.b),
		b.Mul(outputGrad, op.a),
	}
}
