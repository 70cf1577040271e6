package ops

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// MatMul is matrix multiplication: output = a @ b, [M, K] @ [K, N] -> [M, N].
//
// Backward:
//   - dL/da = outputGrad @ b^T
//   - dL/db = a^T @ outputGrad
type MatMul struct {
	a, b *tensor.RawTensor
}

// NewMatMul creates a new MatMul.
func NewMatMul() *MatMul { return &MatMul{} }

func (op *MatMul) Name() string { return "matmul" }

// Forward multiplies two rank-2 tensors, saving both inputs.
func (op *MatMul) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	if len(inputs) != 2 {
		return nil, errors.Errorf("matmul: want 2 inputs, got %d", len(inputs))
	}
	x, y := inputs[0], inputs[1]
	if x.DType() != y.DType() {
		return nil, errors.Errorf("matmul: dtype mismatch %s vs %s", x.DType(), y.DType())
	}
	if x.Shape().Rank() != 2 || y.Shape().Rank() != 2 {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"matmul: want rank-2 operands, got %v and %v", x.Shape(), y.Shape())
	}
	if x.Shape()[1] != y.Shape()[0] {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"matmul: inner dimensions disagree, %v @ %v", x.Shape(), y.Shape())
	}
	op.a, op.b = x, y
	return b.MatMul(x, y), nil
}

// Backward computes input gradients for matrix multiplication.
func (op *MatMul) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	gradA := b.MatMul(outputGrad, b.Transpose(op.b))
	gradB := b.MatMul(b.Transpose(op.a), outputGrad)
	return []*tensor.RawTensor{gradA, gradB}
}
