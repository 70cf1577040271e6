package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Pow is element-wise exponentiation: output = a ^ b.
//
// Backward:
//   - d(a^b)/da = b * a^(b-1), so grad_a = outputGrad * b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a), so grad_b = outputGrad * output * ln(a)
//
// The exponent gradient is only finite for positive bases; callers raising
// non-positive values should not differentiate with respect to the exponent.
type Pow struct {
	a, b *tensor.RawTensor
	out  *tensor.RawTensor
}

// NewPow creates a new Pow.
func NewPow() *Pow { return &Pow{} }

func (op *Pow) Name() string { return "pow" }

// Forward computes a ^ b with broadcasting, saving both inputs and the output.
func (op *Pow) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, y, err := binaryArgs(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.a, op.b = x, y
	op.out = b.Pow(x, y)
	return op.out, nil
}

// Backward computes input gradients for exponentiation.
func (op *Pow) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	gradA := b.Mul(outputGrad, b.Mul(op.b, b.Pow(op.a, b.AddScalar(op.b, -1))))
	gradB := b.Mul(outputGrad, b.Mul(op.out, b.Log(op.a)))
	return []*tensor.RawTensor{gradA, gradB}
}
