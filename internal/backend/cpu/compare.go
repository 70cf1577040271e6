package cpu

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Greater computes the element-wise a > b mask with broadcasting.
// The result has dtype Bool.
func (c *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("greater", a, b,
		func(x, y float32) bool { return x > y },
		func(x, y float64) bool { return x > y })
}

// Equal computes the element-wise a == b mask with broadcasting.
// The result has dtype Bool.
func (c *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("equal", a, b,
		func(x, y float32) bool { return x == y },
		func(x, y float64) bool { return x == y })
}

func (c *CPUBackend) compare(name string, a, b *tensor.RawTensor,
	f32 func(x, y float32) bool, f64 func(x, y float64) bool) *tensor.RawTensor {

	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, c.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result buffer: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		comparePairs(result.AsBool(), a.AsFloat32(), b.AsFloat32(), outShape, a.Shape(), b.Shape(), f32)
	case tensor.Float64:
		comparePairs(result.AsBool(), a.AsFloat64(), b.AsFloat64(), outShape, a.Shape(), b.Shape(), f64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

func comparePairs[T constraints.Float](out []bool, a, b []T,
	outShape, aShape, bShape tensor.Shape, f func(x, y T) bool) {

	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	rank := len(outShape)
	coords := make([]int, rank)
	aIdx, bIdx := 0, 0
	for i := range out {
		out[i] = f(a[aIdx], b[bIdx])

		for d := rank - 1; d >= 0; d-- {
			coords[d]++
			aIdx += aStrides[d]
			bIdx += bStrides[d]
			if coords[d] < outShape[d] {
				break
			}
			coords[d] = 0
			aIdx -= aStrides[d] * outShape[d]
			bIdx -= bStrides[d] * outShape[d]
		}
	}
}

// Where selects x where cond is true and y elsewhere. cond must have dtype
// Bool; cond, x and y broadcast together.
func (c *CPUBackend) Where(cond, x, y *tensor.RawTensor) *tensor.RawTensor {
	if cond.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition dtype must be bool, got %s", cond.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch %s vs %s", x.DType(), y.DType()))
	}

	valShape, _, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(valShape, cond.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("where: failed to create result buffer: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		selectWhere(result.AsFloat32(), cond.AsBool(), x.AsFloat32(), y.AsFloat32(),
			outShape, cond.Shape(), x.Shape(), y.Shape())
	case tensor.Float64:
		selectWhere(result.AsFloat64(), cond.AsBool(), x.AsFloat64(), y.AsFloat64(),
			outShape, cond.Shape(), x.Shape(), y.Shape())
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}

func selectWhere[T constraints.Float](out []T, cond []bool, x, y []T,
	outShape, condShape, xShape, yShape tensor.Shape) {

	condStrides := broadcastStrides(condShape, outShape)
	xStrides := broadcastStrides(xShape, outShape)
	yStrides := broadcastStrides(yShape, outShape)

	rank := len(outShape)
	coords := make([]int, rank)
	cIdx, xIdx, yIdx := 0, 0, 0
	for i := range out {
		if cond[cIdx] {
			out[i] = x[xIdx]
		} else {
			out[i] = y[yIdx]
		}

		for d := rank - 1; d >= 0; d-- {
			coords[d]++
			cIdx += condStrides[d]
			xIdx += xStrides[d]
			yIdx += yStrides[d]
			if coords[d] < outShape[d] {
				break
			}
			coords[d] = 0
			cIdx -= condStrides[d] * outShape[d]
			xIdx -= xStrides[d] * outShape[d]
			yIdx -= yStrides[d] * outShape[d]
		}
	}
}
