package autograd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradia-ml/gradia/internal/backend/cpu"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// checkGradient compares accumulated gradients against central finite
// differences of the scalar forward function.
//
// build must construct the output from the given leaves alone, so the graph
// can be rebuilt from perturbed copies of the same data.
func checkGradient(t *testing.T, build func(leaves []*Value) *Value,
	inputs [][]float32, shapes []tensor.Shape, eps, tol float64,
) {
	t.Helper()
	b := cpu.New()

	makeLeaves := func(data [][]float32, requires bool) []*Value {
		leaves := make([]*Value, len(data))
		for i := range data {
			v, err := FromSlice(append([]float32{}, data[i]...), shapes[i], b)
			require.NoError(t, err)
			v.SetRequiresGrad(requires)
			leaves[i] = v
		}
		return leaves
	}

	leaves := makeLeaves(inputs, true)
	out := build(leaves)
	require.True(t, out.Shape().IsScalar(), "build must return a scalar")
	require.NoError(t, out.Backward())

	eval := func(data [][]float32) float64 {
		var r float64
		NoGrad(func() {
			r = build(makeLeaves(data, false)).Item()
		})
		return r
	}

	for i, v := range leaves {
		grad := v.Grad()
		require.NotNil(t, grad, "leaf %d has no gradient", i)
		require.True(t, grad.Shape().Equal(v.Shape()),
			"leaf %d gradient shape %v, want %v", i, grad.Shape(), v.Shape())
		gradData := grad.Float32s()

		for j := range inputs[i] {
			perturbed := clone2D(inputs)
			perturbed[i][j] += float32(eps)
			plus := eval(perturbed)

			perturbed = clone2D(inputs)
			perturbed[i][j] -= float32(eps)
			minus := eval(perturbed)

			numeric := (plus - minus) / (2 * eps)
			assert.InDelta(t, numeric, float64(gradData[j]), tol,
				"leaf %d element %d: analytic %v vs numeric %v", i, j, gradData[j], numeric)
		}
	}
}

func clone2D(in [][]float32) [][]float32 {
	out := make([][]float32, len(in))
	for i := range in {
		out[i] = append([]float32{}, in[i]...)
	}
	return out
}

// checkGradient64 is checkGradient over float64 leaves, for checks that need
// tolerances below float32 rounding noise.
func checkGradient64(t *testing.T, build func(leaves []*Value) *Value,
	inputs [][]float64, shapes []tensor.Shape, eps, tol float64,
) {
	t.Helper()
	b := cpu.New()

	makeLeaves := func(data [][]float64, requires bool) []*Value {
		leaves := make([]*Value, len(data))
		for i := range data {
			v, err := FromSlice(append([]float64{}, data[i]...), shapes[i], b)
			require.NoError(t, err)
			v.SetRequiresGrad(requires)
			leaves[i] = v
		}
		return leaves
	}

	leaves := makeLeaves(inputs, true)
	out := build(leaves)
	require.True(t, out.Shape().IsScalar(), "build must return a scalar")
	require.NoError(t, out.Backward())

	eval := func(data [][]float64) float64 {
		var r float64
		NoGrad(func() {
			r = build(makeLeaves(data, false)).Item()
		})
		return r
	}

	for i, v := range leaves {
		grad := v.Grad()
		require.NotNil(t, grad, "leaf %d has no gradient", i)
		require.True(t, grad.Shape().Equal(v.Shape()),
			"leaf %d gradient shape %v, want %v", i, grad.Shape(), v.Shape())
		gradData := grad.Float64s()

		for j := range inputs[i] {
			perturbed := clone2D64(inputs)
			perturbed[i][j] += eps
			plus := eval(perturbed)

			perturbed = clone2D64(inputs)
			perturbed[i][j] -= eps
			minus := eval(perturbed)

			numeric := (plus - minus) / (2 * eps)
			assert.InDelta(t, numeric, gradData[j], tol,
				"leaf %d element %d: analytic %v vs numeric %v", i, j, gradData[j], numeric)
		}
	}
}

func clone2D64(in [][]float64) [][]float64 {
	out := make([][]float64, len(in))
	for i := range in {
		out[i] = append([]float64{}, in[i]...)
	}
	return out
}

func TestGradCheckElementwiseBinary(t *testing.T) {
	a := []float32{0.8, -1.2, 2.1, 0.4}
	b := []float32{1.5, 0.7, -0.9, 2.2}
	shape := tensor.Shape{2, 2}

	tests := []struct {
		name  string
		build func(l []*Value) *Value
	}{
		{"add", func(l []*Value) *Value { return l[0].Add(l[1]).Sum() }},
		{"sub", func(l []*Value) *Value { return l[0].Sub(l[1]).Sum() }},
		{"mul", func(l []*Value) *Value { return l[0].Mul(l[1]).Sum() }},
		{"div", func(l []*Value) *Value { return l[0].Div(l[1]).Sum() }},
		{"maximum", func(l []*Value) *Value { return l[0].Maximum(l[1]).Sum() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.build, [][]float32{a, b},
				[]tensor.Shape{shape, shape}, 1e-3, 1e-2)
		})
	}
}

func TestGradCheckPow(t *testing.T) {
	// Positive base keeps the exponent gradient finite.
	a := []float32{1.3, 2.1, 0.8}
	b := []float32{2.0, 0.5, 1.7}
	shape := tensor.Shape{3}

	checkGradient(t, func(l []*Value) *Value {
		return l[0].Pow(l[1]).Sum()
	}, [][]float32{a, b}, []tensor.Shape{shape, shape}, 1e-3, 2e-2)
}

func TestGradCheckUnary(t *testing.T) {
	x := []float32{0.8, -1.2, 2.1, 0.4}
	shape := tensor.Shape{4}

	tests := []struct {
		name  string
		data  []float32
		build func(l []*Value) *Value
	}{
		{"neg", x, func(l []*Value) *Value { return l[0].Neg().Sum() }},
		{"exp", x, func(l []*Value) *Value { return l[0].Exp().Sum() }},
		{"sigmoid", x, func(l []*Value) *Value { return l[0].Sigmoid().Sum() }},
		{"tanh", x, func(l []*Value) *Value { return l[0].Tanh().Sum() }},
		{"relu", x, func(l []*Value) *Value { return l[0].Relu().Sum() }},
		{"log", []float32{0.5, 1.3, 2.8, 0.9}, func(l []*Value) *Value { return l[0].Log().Sum() }},
		{"sqrt", []float32{0.5, 1.3, 2.8, 0.9}, func(l []*Value) *Value { return l[0].Sqrt().Sum() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.build, [][]float32{tt.data},
				[]tensor.Shape{shape}, 1e-3, 1e-2)
		})
	}
}

func TestGradCheckMatMul(t *testing.T) {
	a := []float32{0.5, -1.1, 2.0, 0.3, 1.7, -0.4}
	b := []float32{1.2, -0.6, 0.9, 2.1, -1.3, 0.8}

	checkGradient(t, func(l []*Value) *Value {
		return l[0].MatMul(l[1]).Sum()
	}, [][]float32{a, b}, []tensor.Shape{{2, 3}, {3, 2}}, 1e-3, 2e-2)
}

func TestGradCheckReductions(t *testing.T) {
	// No duplicate values, so the argmax is unambiguous under perturbation.
	x := []float32{0.3, 1.9, -0.7, 2.6, 0.1, -1.4}
	shape := tensor.Shape{2, 3}

	tests := []struct {
		name  string
		build func(l []*Value) *Value
	}{
		{"sum_dim", func(l []*Value) *Value { return l[0].SumDim(1, false).Sum() }},
		{"sum_dim_keep", func(l []*Value) *Value { return l[0].SumDim(0, true).Sum() }},
		{"mean", func(l []*Value) *Value { return l[0].Mean() }},
		{"max_dim", func(l []*Value) *Value { return l[0].Max(1, false).Sum() }},
		{"max_dim_keep", func(l []*Value) *Value { return l[0].Max(0, true).Sum() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.build, [][]float32{x},
				[]tensor.Shape{shape}, 1e-3, 1e-2)
		})
	}
}

func TestGradCheckMovement(t *testing.T) {
	x := []float32{0.5, -1.1, 2.0, 0.3, 1.7, -0.4}

	t.Run("reshape", func(t *testing.T) {
		checkGradient(t, func(l []*Value) *Value {
			r := l[0].Reshape(tensor.Shape{3, 2})
			return r.Mul(r).Sum()
		}, [][]float32{x}, []tensor.Shape{{2, 3}}, 1e-3, 1e-2)
	})

	t.Run("transpose", func(t *testing.T) {
		checkGradient(t, func(l []*Value) *Value {
			tr := l[0].Transpose()
			return tr.Mul(tr).Sum()
		}, [][]float32{x}, []tensor.Shape{{2, 3}}, 1e-3, 1e-2)
	})

	t.Run("expand", func(t *testing.T) {
		checkGradient(t, func(l []*Value) *Value {
			e := l[0].Expand(tensor.Shape{4, 3})
			return e.Mul(e).Sum()
		}, [][]float32{{0.5, -1.1, 2.0}}, []tensor.Shape{{1, 3}}, 1e-3, 1e-2)
	})
}

func TestGradCheckSoftmax(t *testing.T) {
	x := []float32{0.3, 1.9, -0.7, 2.6, 0.1, -1.4}
	w := []float32{0.5, -0.2, 1.1, 0.8, -0.9, 0.4}
	shape := tensor.Shape{2, 3}

	t.Run("softmax weighted", func(t *testing.T) {
		checkGradient(t, func(l []*Value) *Value {
			return l[0].Softmax(1).Mul(l[1]).Sum()
		}, [][]float32{x, w}, []tensor.Shape{shape, shape}, 1e-3, 1e-2)
	})

	t.Run("log softmax weighted", func(t *testing.T) {
		checkGradient(t, func(l []*Value) *Value {
			return l[0].LogSoftmax(1).Mul(l[1]).Sum()
		}, [][]float32{x, w}, []tensor.Shape{shape, shape}, 1e-3, 1e-2)
	})
}

func TestGradCheckEndToEnd(t *testing.T) {
	// A small network slice exercising matmul, relu, the stabilized
	// log-softmax, broadcasting, and fan-out in one graph.
	x := []float32{1.0, 0.5, -0.5}
	w := []float32{
		0.6, -0.3, 0.9,
		-1.1, 0.4, 0.2,
		0.7, 1.3, -0.8,
	}
	m := []float32{2.0, -1.0, 0.5}

	checkGradient(t, func(l []*Value) *Value {
		hidden := l[0].MatMul(l[1]).Relu()
		return hidden.LogSoftmax(1).Mul(l[2]).Add(l[2]).Sum()
	}, [][]float32{x, w, m}, []tensor.Shape{{1, 3}, {3, 3}, {1, 3}}, 1e-3, 2e-2)
}

func TestGradCheckEndToEndFloat64(t *testing.T) {
	// The same network slice in float64, where finite differences resolve
	// the gradients to 1e-4.
	x := []float64{1.0, 0.5, -0.5}
	w := []float64{
		0.6, -0.3, 0.9,
		-1.1, 0.4, 0.2,
		0.7, 1.3, -0.8,
	}
	m := []float64{2.0, -1.0, 0.5}

	checkGradient64(t, func(l []*Value) *Value {
		hidden := l[0].MatMul(l[1]).Relu()
		return hidden.LogSoftmax(1).Mul(l[2]).Add(l[2]).Sum()
	}, [][]float64{x, w, m}, []tensor.Shape{{1, 3}, {3, 3}, {1, 3}}, 1e-6, 1e-4)
}
