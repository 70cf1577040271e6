package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestNewRaw(t *testing.T) {
	r, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)
	assert.True(t, r.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, Float32, r.DType())
	assert.Equal(t, 6, r.NumElements())
	assert.Equal(t, 24, r.ByteSize())
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, r.AsFloat32())
}

func TestNewRawInvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{2, -1}, Float32, CPU)
	require.Error(t, err)

	// Empty tensors are not supported either.
	_, err = NewRaw(Shape{2, 0}, Float32, CPU)
	require.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	r, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, CPU)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, r.AsFloat32())
	assert.Equal(t, Float32, r.DType())

	b, err := FromSlice([]bool{true, false, true}, Shape{3}, CPU)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, b.AsBool())
	assert.Equal(t, Bool, b.DType())
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, CPU)
	require.Error(t, err)
}

func TestCloneSharesBuffer(t *testing.T) {
	r, err := FromSlice([]float64{1, 2, 3}, Shape{3}, CPU)
	require.NoError(t, err)

	c := r.Clone()
	assert.True(t, c.Shape().Equal(r.Shape()))

	// The clone views the same memory.
	r.AsFloat64()[0] = 9
	assert.Equal(t, 9.0, c.AsFloat64()[0])
}

func TestWithShape(t *testing.T) {
	r, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, CPU)
	require.NoError(t, err)

	v := r.WithShape(Shape{3, 2})
	assert.True(t, v.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, v.AsFloat32())
}

func TestScalar(t *testing.T) {
	r := Full(Shape{}, 2.5, Float64, CPU)
	assert.Equal(t, 2.5, r.Scalar())

	f := Full(Shape{}, 1.5, Float32, CPU)
	assert.Equal(t, 1.5, f.Scalar())
}

func TestFullFloat16(t *testing.T) {
	r := Full(Shape{2}, 0.5, Float16, CPU)
	want := float16.Fromfloat32(0.5)
	assert.Equal(t, []float16.Float16{want, want}, r.AsFloat16())
}

func TestZerosOnes(t *testing.T) {
	z := Zeros(Shape{2, 2}, Float32, CPU)
	assert.Equal(t, []float32{0, 0, 0, 0}, z.AsFloat32())

	o := Ones(Shape{2, 2}, Float32, CPU)
	assert.Equal(t, []float32{1, 1, 1, 1}, o.AsFloat32())
}
