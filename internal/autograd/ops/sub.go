package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Sub is element-wise subtraction: output = a - b.
//
// Backward:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type Sub struct{}

// NewSub creates a new Sub.
func NewSub() *Sub { return &Sub{} }

func (op *Sub) Name() string { return "sub" }

// Forward computes a - b with broadcasting.
func (op *Sub) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, y, err := binaryArgs(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	return b.Sub(x, y), nil
}

// Backward computes input gradients for subtraction.
func (op *Sub) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad, b.Neg(outputGrad)}
}
