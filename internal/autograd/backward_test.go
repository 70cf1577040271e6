package autograd

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradia-ml/gradia/internal/autograd/ops"
	"github.com/gradia-ml/gradia/internal/tensor"
)

func TestBackwardSimpleChain(t *testing.T) {
	x := valueOf(t, []float32{1, 2, 3}, tensor.Shape{3})
	x.SetRequiresGrad(true)

	// y = sum(x * x), dy/dx = 2x
	y := x.Mul(x).Sum()
	require.NoError(t, y.Backward())

	assert.Equal(t, []float32{2, 4, 6}, x.Grad().Float32s())
}

func TestBackwardFanOutAccumulates(t *testing.T) {
	// Diamond: a feeds two consumers whose results are summed. Each branch
	// deposits its own contribution; the total is their sum.
	a := valueOf(t, []float32{3}, tensor.Shape{})
	a.SetRequiresGrad(true)

	left := a.Mul(a)       // a^2, d/da = 2a = 6
	right := a.MulScalar(5) // 5a, d/da = 5
	out := left.Add(right).Sum()
	require.NoError(t, out.Backward())

	assert.InDelta(t, 11.0, a.Grad().Item(), 1e-6)
}

func TestBackwardSharedSubexpression(t *testing.T) {
	// b = a*a is consumed twice; its node must be replayed exactly once
	// with the summed output gradient.
	a := valueOf(t, []float32{2}, tensor.Shape{})
	a.SetRequiresGrad(true)

	sq := a.Mul(a)
	out := sq.Add(sq).Sum() // 2a^2, d/da = 4a = 8
	require.NoError(t, out.Backward())

	assert.InDelta(t, 8.0, a.Grad().Item(), 1e-6)
}

func TestBackwardBroadcastReducesGradients(t *testing.T) {
	a := valueOf(t, []float32{1, 2, 3}, tensor.Shape{3, 1})
	b := valueOf(t, []float32{10, 20, 30, 40}, tensor.Shape{1, 4})
	a.SetRequiresGrad(true)
	b.SetRequiresGrad(true)

	// (3,1) + (1,4) broadcasts to (3,4); summing gives every element a
	// unit gradient, which folds back to the operand shapes.
	out := a.Add(b).Sum()
	require.NoError(t, out.Backward())

	require.True(t, a.Grad().Shape().Equal(tensor.Shape{3, 1}))
	assert.Equal(t, []float32{4, 4, 4}, a.Grad().Float32s())

	require.True(t, b.Grad().Shape().Equal(tensor.Shape{1, 4}))
	assert.Equal(t, []float32{3, 3, 3, 3}, b.Grad().Float32s())
}

func TestBackwardBroadcastRankPad(t *testing.T) {
	v := valueOf(t, []float32{1, 2, 3}, tensor.Shape{3})
	m := valueOf(t, []float32{1, 1, 1, 1, 1, 1}, tensor.Shape{2, 3})
	v.SetRequiresGrad(true)

	out := m.Mul(v).Sum()
	require.NoError(t, out.Backward())

	require.True(t, v.Grad().Shape().Equal(tensor.Shape{3}))
	assert.Equal(t, []float32{2, 2, 2}, v.Grad().Float32s())
}

func TestBackwardNonScalarRoot(t *testing.T) {
	x := valueOf(t, []float32{1, 2}, tensor.Shape{2})
	x.SetRequiresGrad(true)

	y := x.Mul(x)
	err := y.Backward()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonScalarRoot))
	assert.Nil(t, x.Grad())
}

func TestBackwardRootWithoutGrad(t *testing.T) {
	x := valueOf(t, []float32{1}, tensor.Shape{})

	err := x.Mul(x).Backward()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoGradRoot))
}

func TestBackwardLeavesWithoutGradStayNil(t *testing.T) {
	x := valueOf(t, []float32{2}, tensor.Shape{})
	c := valueOf(t, []float32{3}, tensor.Shape{})
	x.SetRequiresGrad(true)
	c.SetRequiresGrad(false)

	out := x.Mul(c).Sum()
	require.NoError(t, out.Backward())

	assert.InDelta(t, 3.0, x.Grad().Item(), 1e-6)
	assert.Nil(t, c.Grad())
}

func TestBackwardReleasesGraph(t *testing.T) {
	x := valueOf(t, []float32{2}, tensor.Shape{})
	x.SetRequiresGrad(true)

	y := x.Mul(x)
	out := y.Sum()
	require.False(t, y.IsLeaf())
	require.False(t, out.IsLeaf())

	require.NoError(t, out.Backward())

	// Every consumed node is dismantled; intermediates become leaves.
	assert.True(t, y.IsLeaf())
	assert.True(t, out.IsLeaf())
}

func TestBackwardAccumulatesAcrossRounds(t *testing.T) {
	// Two identical forward+backward rounds with no ZeroGrad in between:
	// the leaf gradient doubles.
	x := valueOf(t, []float32{3}, tensor.Shape{})
	x.SetRequiresGrad(true)

	require.NoError(t, x.Mul(x).Sum().Backward())
	first := x.Grad().Item()
	assert.InDelta(t, 6.0, first, 1e-6)

	require.NoError(t, x.Mul(x).Sum().Backward())
	assert.InDelta(t, 2*first, x.Grad().Item(), 1e-6)
}

func TestBackwardDeterministicAcrossRounds(t *testing.T) {
	x := valueOf(t, []float32{1, -2, 3, 0.5}, tensor.Shape{2, 2})
	w := valueOf(t, []float32{0.3, -0.1, 0.7, 0.2}, tensor.Shape{2, 2})
	x.SetRequiresGrad(true)
	w.SetRequiresGrad(true)

	run := func() []float32 {
		defer x.ZeroGrad()
		defer w.ZeroGrad()
		out := x.MatMul(w).Tanh().Sum()
		require.NoError(t, out.Backward())
		grads := append([]float32{}, x.Grad().Float32s()...)
		return append(grads, w.Grad().Float32s()...)
	}

	assert.Equal(t, run(), run())
}

func TestBackwardWhereMaskGetsNoGradient(t *testing.T) {
	b := valueOf(t, []float32{1}, tensor.Shape{}).Backend()
	cond, err := FromSlice([]bool{true, false, true}, tensor.Shape{3}, b)
	require.NoError(t, err)

	x := New(tensor.Full(tensor.Shape{3}, 2, tensor.Float32, b.Device()), b)
	y := New(tensor.Full(tensor.Shape{3}, 5, tensor.Float32, b.Device()), b)
	x.SetRequiresGrad(true)
	y.SetRequiresGrad(true)

	out := x.Where(cond, y).Sum()
	require.NoError(t, out.Backward())

	assert.Equal(t, []float32{1, 0, 1}, x.Grad().Float32s())
	assert.Equal(t, []float32{0, 1, 0}, y.Grad().Float32s())
	assert.Nil(t, cond.Grad())
}

func TestBackwardCycleDetected(t *testing.T) {
	// Graphs built through Apply are acyclic by construction; corrupt one
	// by hand to check the walker refuses to loop.
	x := valueOf(t, []float32{1}, tensor.Shape{})
	x.SetRequiresGrad(true)

	y := x.Mul(x).Sum()
	require.NotNil(t, y.producer)
	y.producer.inputs = []*Value{y}

	err := y.Backward()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBrokenInvariant))
}

func TestApplyValidatesShapes(t *testing.T) {
	a := valueOf(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := valueOf(t, []float32{1, 2}, tensor.Shape{2})

	_, err := Apply(ops.NewAdd(), a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}

func TestApplyRecordsOnlyWhenNeeded(t *testing.T) {
	a := valueOf(t, []float32{1}, tensor.Shape{})
	b := valueOf(t, []float32{2}, tensor.Shape{})

	out, err := Apply(ops.NewAdd(), a, b)
	require.NoError(t, err)
	assert.True(t, out.IsLeaf(), "no input requires grad, no node expected")

	a.SetRequiresGrad(true)
	tracked, err := Apply(ops.NewAdd(), a, b)
	require.NoError(t, err)
	assert.False(t, tracked.IsLeaf())
	assert.True(t, tracked.RequiresGrad())
}
