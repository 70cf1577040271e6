package cpu

import (
	"fmt"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Reshape returns a buffer with the same elements under a different shape.
// The element count must match. The underlying bytes are shared.
func (c *CPUBackend) Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if x.NumElements() != shape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			x.Shape(), shape))
	}
	return x.WithShape(shape)
}

// Transpose permutes the buffer's axes. With no axes given, all dimensions
// are reversed.
func (c *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD buffer", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		outShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(outShape, x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	// Read strides in output-axis order, then walk output coordinates and
	// copy element bytes. dtype-agnostic.
	inStrides := shape.ComputeStrides()
	readStrides := make([]int, ndim)
	for i, ax := range axes {
		readStrides[i] = inStrides[ax]
	}
	copyStrided(result, x, outShape, readStrides)

	return result
}

// Expand materializes a broadcast of x to the given shape. x's shape must be
// broadcast-compatible with shape (trailing-aligned, size-1 axes expand).
func (c *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	merged, _, err := tensor.BroadcastShapes(x.Shape(), shape)
	if err != nil || !merged.Equal(shape) {
		panic(fmt.Sprintf("expand: cannot expand %v to %v", x.Shape(), shape))
	}

	result, err := tensor.NewRaw(shape, x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	copyStrided(result, x, shape, broadcastStrides(x.Shape(), shape))
	return result
}

// copyStrided fills out (dense, row-major) by reading elements of in at the
// given per-axis element strides over outShape. Copies element bytes, so it
// works for every dtype.
func copyStrided(out, in *tensor.RawTensor, outShape tensor.Shape, readStrides []int) {
	elemSize := out.DType().Size()
	dst := out.Data()
	src := in.Data()

	rank := len(outShape)
	coords := make([]int, rank)
	srcIdx := 0
	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		copy(dst[i*elemSize:(i+1)*elemSize], src[srcIdx*elemSize:(srcIdx+1)*elemSize])

		for d := rank - 1; d >= 0; d-- {
			coords[d]++
			srcIdx += readStrides[d]
			if coords[d] < outShape[d] {
				break
			}
			coords[d] = 0
			srcIdx -= readStrides[d] * outShape[d]
		}
	}
}
