package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradia-ml/gradia/internal/tensor"
)

func TestReshape(t *testing.T) {
	c := New()
	x := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := c.Reshape(x, tensor.Shape{3, 2})
	assert.True(t, got.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, got.AsFloat32())

	flat := c.Reshape(x, tensor.Shape{6})
	assert.True(t, flat.Shape().Equal(tensor.Shape{6}))
}

func TestReshapeWrongCountPanics(t *testing.T) {
	c := New()
	x := fromF32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	assert.Panics(t, func() { c.Reshape(x, tensor.Shape{3}) })
}

func TestTranspose(t *testing.T) {
	c := New()
	x := fromF32(t, []float32{
		1, 2, 3,
		4, 5, 6,
	}, tensor.Shape{2, 3})

	got := c.Transpose(x)
	assert.True(t, got.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float32{
		1, 4,
		2, 5,
		3, 6,
	}, got.AsFloat32())
}

func TestTransposeAxes(t *testing.T) {
	c := New()
	x := fromF32(t, []float32{
		1, 2,
		3, 4,

		5, 6,
		7, 8,
	}, tensor.Shape{2, 2, 2})

	// Swap the last two axes only.
	got := c.Transpose(x, 0, 2, 1)
	assert.True(t, got.Shape().Equal(tensor.Shape{2, 2, 2}))
	assert.Equal(t, []float32{1, 3, 2, 4, 5, 7, 6, 8}, got.AsFloat32())
}

func TestTransposeRoundTrip(t *testing.T) {
	c := New()
	x := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	back := c.Transpose(c.Transpose(x))
	assert.True(t, back.Shape().Equal(x.Shape()))
	assert.Equal(t, x.AsFloat32(), back.AsFloat32())
}

func TestExpand(t *testing.T) {
	c := New()

	t.Run("row to matrix", func(t *testing.T) {
		x := fromF32(t, []float32{1, 2, 3}, tensor.Shape{1, 3})
		got := c.Expand(x, tensor.Shape{2, 3})
		assert.Equal(t, []float32{1, 2, 3, 1, 2, 3}, got.AsFloat32())
	})

	t.Run("scalar to matrix", func(t *testing.T) {
		x := fromF32(t, []float32{5}, tensor.Shape{})
		got := c.Expand(x, tensor.Shape{2, 2})
		assert.Equal(t, []float32{5, 5, 5, 5}, got.AsFloat32())
	})

	t.Run("column to matrix", func(t *testing.T) {
		x := fromF32(t, []float32{1, 2}, tensor.Shape{2, 1})
		got := c.Expand(x, tensor.Shape{2, 3})
		assert.Equal(t, []float32{1, 1, 1, 2, 2, 2}, got.AsFloat32())
	})
}

func TestExpandIncompatiblePanics(t *testing.T) {
	c := New()
	x := fromF32(t, []float32{1, 2, 3}, tensor.Shape{3})

	assert.Panics(t, func() { c.Expand(x, tensor.Shape{2, 4}) })
}
