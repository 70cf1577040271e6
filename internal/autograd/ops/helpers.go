package ops

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// binaryArgs validates a two-input element-wise invocation: arity, matching
// dtypes, and broadcast-compatible shapes.
func binaryArgs(name string, inputs []*tensor.RawTensor) (a, b *tensor.RawTensor, err error) {
	if len(inputs) != 2 {
		return nil, nil, errors.Errorf("%s: want 2 inputs, got %d", name, len(inputs))
	}
	a, b = inputs[0], inputs[1]
	if a.DType() != b.DType() {
		return nil, nil, errors.Errorf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType())
	}
	if _, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape()); err != nil {
		return nil, nil, errors.WithMessage(err, name)
	}
	return a, b, nil
}

// unaryArg validates a single-input invocation.
func unaryArg(name string, inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	if len(inputs) != 1 {
		return nil, errors.Errorf("%s: want 1 input, got %d", name, len(inputs))
	}
	return inputs[0], nil
}

// normalizeDim resolves a possibly negative axis against rank.
func normalizeDim(name string, dim, rank int) (int, error) {
	d := dim
	if d < 0 {
		d += rank
	}
	if d < 0 || d >= rank {
		return 0, errors.Errorf("%s: dim %d out of range for rank %d", name, dim, rank)
	}
	return d, nil
}

// scalarZero returns a rank-0 zero matching like's dtype and device, for use
// as the rejected branch of a Where mask.
func scalarZero(like *tensor.RawTensor) *tensor.RawTensor {
	return tensor.Zeros(tensor.Shape{}, like.DType(), like.Device())
}

// keepDims reinserts a reduced axis as size 1 so the tensor broadcasts
// against the pre-reduction shape.
func keepDims(b tensor.Backend, t *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := make(tensor.Shape, 0, len(t.Shape())+1)
	shape = append(shape, t.Shape()[:dim]...)
	shape = append(shape, 1)
	shape = append(shape, t.Shape()[dim:]...)
	return b.Reshape(t, shape)
}
