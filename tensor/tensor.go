// Copyright 2025 Gradia ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for buffers, shapes, and backends
// in the Gradia ML framework.
//
// The package re-exports the core types used throughout the framework:
//   - RawTensor: a typed n-dimensional buffer
//   - Shape, DataType, Device: structural metadata
//   - Backend: the compute kernel seam (see backend/cpu for the reference
//     implementation)
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	y := tensor.Ones(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
package tensor

import (
	"github.com/gradia-ml/gradia/internal/tensor"
)

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType identifies the element type of a buffer at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Float16 DataType = tensor.Float16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device identifies where a buffer's memory lives.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape is the dimension vector of a tensor. Shape{2, 3} is a 2x3 matrix;
// the empty Shape{} is a scalar.
type Shape = tensor.Shape

// RawTensor is an n-dimensional buffer of one element type on one device.
type RawTensor = tensor.RawTensor

// Backend is the compute kernel interface consumed by the autograd engine.
type Backend = tensor.Backend

// ErrShapeMismatch marks shape validation failures. Check for it with
// errors.Is.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// BroadcastShapes merges two shapes under NumPy alignment rules, reporting
// whether any stretching is needed.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// NewRaw allocates a zeroed buffer.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice builds a buffer from a Go slice. The slice length must match
// the shape's element count.
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, device)
}

// Zeros creates a zero-filled buffer.
func Zeros(shape Shape, dtype DataType, device Device) *RawTensor {
	return tensor.Zeros(shape, dtype, device)
}

// Ones creates a one-filled buffer.
func Ones(shape Shape, dtype DataType, device Device) *RawTensor {
	return tensor.Ones(shape, dtype, device)
}

// Full creates a buffer filled with a constant.
func Full(shape Shape, value float64, dtype DataType, device Device) *RawTensor {
	return tensor.Full(shape, value, dtype, device)
}
