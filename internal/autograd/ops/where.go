package ops

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Where selects elements: output = x where cond, else y.
//
// Backward: the condition is a selection mask with no gradient of its own,
// so its slot is nil. The gradient splits between the branches:
//   - grad_x = outputGrad where cond, else 0
//   - grad_y = 0 where cond, else outputGrad
type Where struct {
	cond *tensor.RawTensor
}

// NewWhere creates a new Where. Inputs are [cond, x, y].
func NewWhere() *Where { return &Where{} }

func (op *Where) Name() string { return "where" }

// Forward selects from x and y under the bool mask cond, with three-way
// broadcasting.
func (op *Where) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	if len(inputs) != 3 {
		return nil, errors.Errorf("where: want 3 inputs, got %d", len(inputs))
	}
	cond, x, y := inputs[0], inputs[1], inputs[2]
	if cond.DType() != tensor.Bool {
		return nil, errors.Errorf("where: condition must be %s, got %s", tensor.Bool, cond.DType())
	}
	if x.DType() != y.DType() {
		return nil, errors.Errorf("where: dtype mismatch %s vs %s", x.DType(), y.DType())
	}
	merged, _, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		return nil, errors.WithMessage(err, op.Name())
	}
	if _, _, err := tensor.BroadcastShapes(cond.Shape(), merged); err != nil {
		return nil, errors.WithMessage(err, op.Name())
	}
	op.cond = cond
	return b.Where(cond, x, y), nil
}

// Backward splits the gradient between the selected branches.
func (op *Where) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	zero := scalarZero(outputGrad)
	return []*tensor.RawTensor{
		nil,
		b.Where(op.cond, outputGrad, zero),
		b.Where(op.cond, zero, outputGrad),
	}
}
