package cpu

import (
	"golang.org/x/exp/constraints"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// mapBinary applies f over two same-shape dense slices.
func mapBinary[T constraints.Float](out, a, b []T, f func(x, y T) T) {
	for i := range out {
		out[i] = f(a[i], b[i])
	}
}

// mapUnary applies f over a dense slice.
func mapUnary[T constraints.Float](out, x []T, f func(v T) T) {
	for i := range out {
		out[i] = f(x[i])
	}
}

// broadcastStrides computes per-output-axis element strides for reading an
// input of shape in while iterating an output of shape out. Axes the input
// lacks, and axes where the input has size 1, get stride 0 so the single
// element is reused across the expanded axis.
func broadcastStrides(in, out tensor.Shape) []int {
	inStrides := in.ComputeStrides()
	strides := make([]int, len(out))
	offset := len(out) - len(in)
	for d := range out {
		if d < offset {
			continue // axis absent in input: stride 0
		}
		if in[d-offset] == 1 && out[d] != 1 {
			continue // size-1 axis expanded: stride 0
		}
		strides[d] = inStrides[d-offset]
	}
	return strides
}

// mapBinaryBroadcast applies f over the broadcast of a and b into out.
// Iteration uses an odometer over output coordinates so no div/mod per
// element is needed.
func mapBinaryBroadcast[T constraints.Float](out, a, b []T,
	outShape, aShape, bShape tensor.Shape, f func(x, y T) T) {

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
