package ops

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Transpose permutes x's axes. With no axes given every dimension reverses.
//
// Backward: grad_x is the output gradient transposed by the inverse
// permutation.
type Transpose struct {
	axes []int
}

// NewTranspose creates a new Transpose with the given axis permutation.
func NewTranspose(axes ...int) *Transpose {
	return &Transpose{axes: axes}
}

func (op *Transpose) Name() string { return "transpose" }

// Forward validates the permutation and permutes the axes.
func (op *Transpose) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	rank := x.Shape().Rank()
	if len(op.axes) == 0 {
		op.axes = make([]int, rank)
		for i := range op.axes {
			op.axes[i] = rank - 1 - i
		}
	}
	if len(op.axes) != rank {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"transpose: %d axes for rank %d", len(op.axes), rank)
	}
	seen := make([]bool, rank)
	for _, a := range op.axes {
		if a < 0 || a >= rank || seen[a] {
			return nil, errors.Wrapf(tensor.ErrShapeMismatch,
				"transpose: %v is not a permutation of rank %d", op.axes, rank)
		}
		seen[a] = true
	}
	return b.Transpose(x, op.axes...), nil
}

// Backward applies the inverse permutation to the gradient.
func (op *Transpose) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	inverse := make([]int, len(op.axes))
	for i, a := range op.axes {
		inverse[a] = i
	}
	return []*tensor.RawTensor{b.Transpose(outputGrad, inverse...)}
}
