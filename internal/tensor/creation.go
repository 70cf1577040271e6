package tensor

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// FromSlice creates a RawTensor from a Go slice.
// The slice is copied into the buffer's memory.
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		return nil, err
	}

	copy(typedData[T](raw), data)
	return raw, nil
}

// typedData returns the buffer's memory as a []T.
func typedData[T DType](r *RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	case uint8:
		return any(r.AsUint8()).([]T)
	case bool:
		return any(r.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}

// Zeros creates a zero-filled RawTensor.
func Zeros(shape Shape, dtype DataType, device Device) *RawTensor {
	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return raw
}

// Ones creates a RawTensor filled with the multiplicative identity.
func Ones(shape Shape, dtype DataType, device Device) *RawTensor {
	return Full(shape, 1, dtype, device)
}

// Full creates a RawTensor filled with a specific value, interpreted in the
// buffer's element type.
func Full(shape Shape, value float64, dtype DataType, device Device) *RawTensor {
	raw := Zeros(shape, dtype, device)
	FillScalar(raw, value)
	return raw
}

// FillScalar overwrites every element of a freshly created buffer with value.
// Used only during construction; computed buffers are never mutated.
func FillScalar(r *RawTensor, value float64) {
	switch r.dtype {
	case Float32:
		data := r.AsFloat32()
		for i := range data {
			data[i] = float32(value)
		}
	case Float64:
		data := r.AsFloat64()
		for i := range data {
			data[i] = value
		}
	case Float16:
		data := r.AsFloat16()
		h := float16.Fromfloat32(float32(value))
		for i := range data {
			data[i] = h
		}
	case Int32:
		data := r.AsInt32()
		for i := range data {
			data[i] = int32(value)
		}
	case Int64:
		data := r.AsInt64()
		for i := range data {
			data[i] = int64(value)
		}
	case Uint8:
		data := r.AsUint8()
		for i := range data {
			data[i] = uint8(value)
		}
	default:
		panic("FillScalar: unsupported dtype " + r.dtype.String())
	}
}
