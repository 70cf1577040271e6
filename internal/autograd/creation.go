package autograd

import (
	"github.com/gradia-ml/gradia/internal/tensor"
)

// FromSlice creates a leaf Value from a Go slice with an unset gradient
// requirement.
func FromSlice[T tensor.DType](data []T, shape tensor.Shape, b tensor.Backend) (*Value, error) {
	raw, err := tensor.FromSlice(data, shape, b.Device())
	if err != nil {
		return nil, err
	}
	return New(raw, b), nil
}

// Scalar creates a rank-0 constant leaf that never requires gradients.
// Go scalars mixed into Value arithmetic are normalized through here.
func Scalar(v float64, dtype tensor.DataType, b tensor.Backend) *Value {
	return NewLeaf(tensor.Full(tensor.Shape{}, v, dtype, b.Device()), b, false)
}

// Zeros creates a zero-filled leaf Value with an unset gradient requirement.
func Zeros(shape tensor.Shape, dtype tensor.DataType, b tensor.Backend) *Value {
	return New(tensor.Zeros(shape, dtype, b.Device()), b)
}

// Ones creates a one-filled leaf Value with an unset gradient requirement.
func Ones(shape tensor.Shape, dtype tensor.DataType, b tensor.Backend) *Value {
	return New(tensor.Ones(shape, dtype, b.Device()), b)
}

// Full creates a leaf Value filled with a constant, with an unset gradient
// requirement.
func Full(shape tensor.Shape, v float64, dtype tensor.DataType, b tensor.Backend) *Value {
	return New(tensor.Full(shape, v, dtype, b.Device()), b)
}
