package cpu

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Sum reduces over all axes to a rank-0 buffer.
func (c *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("sum: failed to create result buffer: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = sumAll(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = sumAll(x.AsFloat64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

func sumAll[T constraints.Float](data []T) T {
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}

// SumDim sums along one axis. With keepDim the reduced axis stays with size 1,
// otherwise it is removed from the result's shape.
func (c *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return c.reduceDim("sumdim", x, dim, keepDim,
		func(acc, v float32) float32 { return acc + v },
		func(acc, v float64) float64 { return acc + v })
}

// MaxDim takes the maximum along one axis. With keepDim the reduced axis stays
// with size 1, otherwise it is removed from the result's shape.
func (c *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return c.reduceDim("maxdim", x, dim, keepDim,
		func(acc, v float32) float32 { return max(acc, v) },
		func(acc, v float64) float64 { return max(acc, v) })
}

// reduceDim folds along one axis, seeding the accumulator with the first
// element of the lane (correct for both sum and max).
func (c *CPUBackend) reduceDim(name string, x *tensor.RawTensor, dim int, keepDim bool,
	f32 func(acc, v float32) float32, f64 func(acc, v float64) float64) *tensor.RawTensor {

	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("%s: invalid dimension %d for shape %v", name, dim, shape))
	}

	outShape := make(tensor.Shape, 0, len(shape))
	for i, d := range shape {
		if i == dim {
			if keepDim {
				outShape = append(outShape, 1)
			}
			continue
		}
		outShape = append(outShape, d)
	}

	result, err := tensor.NewRaw(outShape, x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result buffer: %v", name, err))
	}

	pre, n, post := splitAt(shape, dim)

	switch x.DType() {
	case tensor.Float32:
		foldAxis(result.AsFloat32(), x.AsFloat32(), pre, n, post, f32)
	case tensor.Float64:
		foldAxis(result.AsFloat64(), x.AsFloat64(), pre, n, post, f64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

// splitAt factors shape into (product before dim, dim size, product after dim).
func splitAt(shape tensor.Shape, dim int) (pre, n, post int) {
	pre, post = 1, 1
	for i := 0; i < dim; i++ {
		pre *= shape[i]
	}
	n = shape[dim]
	for i := dim + 1; i < len(shape); i++ {
		post *= shape[i]
	}
	return pre, n, post
}

func foldAxis[T constraints.Float](out, in []T, pre, n, post int, f func(acc, v T) T) {
	for p := 0; p < pre; p++ {
		for q := 0; q < post; q++ {
			acc := in[p*n*post+q]
			for k := 1; k < n; k++ {
				acc = f(acc, in[(p*n+k)*post+q])
			}
			out[p*post+q] = acc
		}
	}
}
