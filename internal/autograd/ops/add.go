package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Add is element-wise addition: output = a + b.
//
// Backward:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// Addition saves nothing; the output gradient flows to both inputs as is.
type Add struct{}

// NewAdd creates a new Add.
func NewAdd() *Add { return &Add{} }

func (op *Add) Name() string { return "add" }

// Forward computes a + b with broadcasting.
func (op *Add) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, y, err := binaryArgs(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	return b.Add(x, y), nil
}

// Backward passes the output gradient through to both inputs.
func (op *Add) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad, outputGrad}
}
