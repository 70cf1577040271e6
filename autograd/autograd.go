// Copyright 2025 Gradia ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autograd provides reverse-mode automatic differentiation.
//
// Operations on Values execute eagerly and record a computation graph when
// gradients are required. Backward replays the graph in reverse topological
// order, accumulating a gradient into every participating Value.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := autograd.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	x.SetRequiresGrad(true)
//
//	loss := x.Mul(x).Sum()
//	if err := loss.Backward(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Grad().Float32s()) // [2 4 6]
package autograd

import (
	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/autograd/ops"
	"github.com/gradia-ml/gradia/tensor"
)

// Value is a buffer with autograd bookkeeping. See the convenience methods
// for the operation catalog.
type Value = autograd.Value

// Operation is one differentiable step in the computation graph.
type Operation = ops.Operation

// Error sentinels. Check with errors.Is.
var (
	// ErrNonScalarRoot is returned by Backward on a root with rank > 0.
	ErrNonScalarRoot = autograd.ErrNonScalarRoot

	// ErrNoGradRoot is returned by Backward on a root that does not
	// require gradients.
	ErrNoGradRoot = autograd.ErrNoGradRoot

	// ErrBrokenInvariant marks internal graph corruption, such as a cycle.
	ErrBrokenInvariant = autograd.ErrBrokenInvariant
)

// New wraps a buffer in a leaf Value with an unset gradient requirement.
func New(data *tensor.RawTensor, b tensor.Backend) *Value {
	return autograd.New(data, b)
}

// NewLeaf wraps a buffer in a leaf Value with an explicit gradient
// requirement.
func NewLeaf(data *tensor.RawTensor, b tensor.Backend, requiresGrad bool) *Value {
	return autograd.NewLeaf(data, b, requiresGrad)
}

// FromSlice creates a leaf Value from a Go slice.
func FromSlice[T tensor.DType](data []T, shape tensor.Shape, b tensor.Backend) (*Value, error) {
	return autograd.FromSlice(data, shape, b)
}

// Scalar creates a rank-0 constant that never requires gradients.
func Scalar(v float64, dtype tensor.DataType, b tensor.Backend) *Value {
	return autograd.Scalar(v, dtype, b)
}

// Zeros creates a zero-filled leaf Value.
func Zeros(shape tensor.Shape, dtype tensor.DataType, b tensor.Backend) *Value {
	return autograd.Zeros(shape, dtype, b)
}

// Ones creates a one-filled leaf Value.
func Ones(shape tensor.Shape, dtype tensor.DataType, b tensor.Backend) *Value {
	return autograd.Ones(shape, dtype, b)
}

// Full creates a constant-filled leaf Value.
func Full(shape tensor.Shape, v float64, dtype tensor.DataType, b tensor.Backend) *Value {
	return autograd.Full(shape, v, dtype, b)
}

// Apply runs one operation over the given inputs, recording a graph node
// when gradients are in play. Validation errors are returned; the Value
// convenience methods panic instead.
func Apply(op Operation, inputs ...*Value) (*Value, error) {
	return autograd.Apply(op, inputs...)
}

// Backward computes gradients for every Value reachable from root.
func Backward(root *Value) error {
	return autograd.Backward(root)
}

// GradEnabled reports whether operations currently record graph nodes.
func GradEnabled() bool {
	return autograd.GradEnabled()
}

// NoGrad runs fn with graph recording disabled, restoring the previous
// state afterwards. Scopes nest.
func NoGrad(fn func()) {
	autograd.NoGrad(fn)
}

// WithGradEnabled runs fn with graph recording set explicitly, restoring
// the previous state afterwards.
func WithGradEnabled(enabled bool, fn func()) {
	autograd.WithGradEnabled(enabled, fn)
}

// IsTraining reports the training-mode flag consulted by mode-dependent
// layers.
func IsTraining() bool {
	return autograd.IsTraining()
}

// WithTraining runs fn with the training-mode flag set, restoring the
// previous state afterwards.
func WithTraining(training bool, fn func()) {
	autograd.WithTraining(training, fn)
}
