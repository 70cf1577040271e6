package autograd

import (
	"github.com/gradia-ml/gradia/internal/autograd/ops"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// Convenience arithmetic on Values. Each method applies one catalog
// operation through Apply and panics on operand validation errors, matching
// the kernels' own treatment of malformed shapes as programmer errors.
// Callers that need recoverable validation use Apply directly.

// Add returns v + other, element-wise with broadcasting.
func (v *Value) Add(other *Value) *Value { return mustApply(ops.NewAdd(), v, other) }

// Sub returns v - other, element-wise with broadcasting.
func (v *Value) Sub(other *Value) *Value { return mustApply(ops.NewSub(), v, other) }

// Mul returns v * other, element-wise with broadcasting.
func (v *Value) Mul(other *Value) *Value { return mustApply(ops.NewMul(), v, other) }

// Div returns v / other, element-wise with broadcasting.
func (v *Value) Div(other *Value) *Value { return mustApply(ops.NewDiv(), v, other) }

// Pow returns v ** other, element-wise with broadcasting.
func (v *Value) Pow(other *Value) *Value { return mustApply(ops.NewPow(), v, other) }

// Maximum returns the element-wise maximum of v and other.
func (v *Value) Maximum(other *Value) *Value { return mustApply(ops.NewMaximum(), v, other) }

// MatMul multiplies two rank-2 Values: [M, K] @ [K, N] -> [M, N].
func (v *Value) MatMul(other *Value) *Value { return mustApply(ops.NewMatMul(), v, other) }

// Scalar-operand variants. The scalar is normalized to a rank-0 constant
// leaf, so broadcasting and the graph machinery treat it like any operand.

// AddScalar returns v + s.
func (v *Value) AddScalar(s float64) *Value { return v.Add(Scalar(s, v.DType(), v.backend)) }

// SubScalar returns v - s.
func (v *Value) SubScalar(s float64) *Value { return v.Sub(Scalar(s, v.DType(), v.backend)) }

// MulScalar returns v * s.
func (v *Value) MulScalar(s float64) *Value { return v.Mul(Scalar(s, v.DType(), v.backend)) }

// DivScalar returns v / s.
func (v *Value) DivScalar(s float64) *Value { return v.Div(Scalar(s, v.DType(), v.backend)) }

// PowScalar returns v ** s.
func (v *Value) PowScalar(s float64) *Value { return v.Pow(Scalar(s, v.DType(), v.backend)) }

// Neg returns -v.
func (v *Value) Neg() *Value { return mustApply(ops.NewNeg(), v) }

// Exp returns e ** v element-wise.
func (v *Value) Exp() *Value { return mustApply(ops.NewExp(), v) }

// Log returns the element-wise natural logarithm.
func (v *Value) Log() *Value { return mustApply(ops.NewLog(), v) }

// Sqrt returns the element-wise square root.
func (v *Value) Sqrt() *Value { return mustApply(ops.NewSqrt(), v) }

// Relu returns max(0, v) element-wise.
func (v *Value) Relu() *Value { return mustApply(ops.NewRelu(), v) }

// Sigmoid returns 1/(1+exp(-v)) element-wise.
func (v *Value) Sigmoid() *Value { return mustApply(ops.NewSigmoid(), v) }

// Tanh returns the element-wise hyperbolic tangent.
func (v *Value) Tanh() *Value { return mustApply(ops.NewTanh(), v) }

// Sum reduces over all axes to a rank-0 Value.
func (v *Value) Sum() *Value { return mustApply(ops.NewSum(), v) }

// SumDim sums along one axis, keeping it as size 1 when keepDim is set.
func (v *Value) SumDim(dim int, keepDim bool) *Value {
	return mustApply(ops.NewSumDim(dim, keepDim), v)
}

// Max takes the maximum along one axis, keeping it as size 1 when keepDim is
// set. Gradient is routed to every position attaining the maximum.
func (v *Value) Max(dim int, keepDim bool) *Value {
	return mustApply(ops.NewMaxDim(dim, keepDim), v)
}

// Mean reduces over all axes to the arithmetic mean.
func (v *Value) Mean() *Value {
	return v.Sum().MulScalar(1 / float64(v.data.NumElements()))
}

// MeanDim averages along one axis.
func (v *Value) MeanDim(dim int, keepDim bool) *Value {
	if dim < 0 {
		dim += v.Shape().Rank()
	}
	return v.SumDim(dim, keepDim).MulScalar(1 / float64(v.Shape()[dim]))
}

// Reshape returns v under a different shape with the same elements.
func (v *Value) Reshape(shape tensor.Shape) *Value {
	return mustApply(ops.NewReshape(shape), v)
}

// Expand broadcasts v to the given shape, materializing the result.
func (v *Value) Expand(shape tensor.Shape) *Value {
	return mustApply(ops.NewExpand(shape), v)
}

// Transpose permutes v's axes; with no axes given all dimensions reverse.
func (v *Value) Transpose(axes ...int) *Value {
	return mustApply(ops.NewTranspose(axes...), v)
}

// Cast converts v to a different element type. The gradient, if any, is cast
// back to the source type on the way down.
func (v *Value) Cast(dtype tensor.DataType) *Value {
	return mustApply(ops.NewCast(dtype), v)
}

// Where selects v where cond holds and other elsewhere. cond must be a Bool
// Value; it is a structurally non-differentiable input.
func (v *Value) Where(cond, other *Value) *Value {
	return mustApply(ops.NewWhere(), cond, v, other)
}

// Softmax computes exp(v - max) normalized along the given axis.
func (v *Value) Softmax(dim int) *Value {
	shifted := v.Sub(v.Max(dim, true))
	e := shifted.Exp()
	return e.Div(e.SumDim(dim, true))
}

// LogSoftmax computes log(softmax(v)) along the given axis using the
// max-shift for numerical stability.
func (v *Value) LogSoftmax(dim int) *Value {
	shifted := v.Sub(v.Max(dim, true))
	return shifted.Sub(shifted.Exp().SumDim(dim, true).Log())
}
