package optim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/backend/cpu"
	"github.com/gradia-ml/gradia/internal/nn"
	"github.com/gradia-ml/gradia/internal/tensor"
)

func paramOf(t *testing.T, data []float32, shape tensor.Shape) *autograd.Value {
	t.Helper()
	v, err := autograd.FromSlice(data, shape, cpu.New())
	require.NoError(t, err)
	return v
}

func TestRegistrationResolvesTriState(t *testing.T) {
	p := paramOf(t, []float32{1}, tensor.Shape{1})
	explicitNo := paramOf(t, []float32{1}, tensor.Shape{1})
	explicitNo.SetRequiresGrad(false)

	NewSGD([]*autograd.Value{p, explicitNo}, SGDConfig{LR: 0.1})

	assert.True(t, p.RequiresGrad())
	assert.False(t, explicitNo.RequiresGrad())
}

func TestSGDStep(t *testing.T) {
	p := paramOf(t, []float32{1, 2}, tensor.Shape{2})
	opt := NewSGD([]*autograd.Value{p}, SGDConfig{LR: 0.5})

	// loss = sum(p^2), d/dp = 2p = [2, 4]
	require.NoError(t, p.Mul(p).Sum().Backward())
	require.NoError(t, opt.Step())

	// p - 0.5 * [2, 4]
	assert.Equal(t, []float32{0, 0}, p.Float32s())
}

func TestSGDSkipsParamsWithoutGradient(t *testing.T) {
	used := paramOf(t, []float32{1}, tensor.Shape{})
	unused := paramOf(t, []float32{7}, tensor.Shape{})
	opt := NewSGD([]*autograd.Value{used, unused}, SGDConfig{LR: 0.1})

	require.NoError(t, used.Mul(used).Sum().Backward())
	require.NoError(t, opt.Step())

	assert.InDelta(t, 0.8, float64(used.Float32s()[0]), 1e-6)
	assert.Equal(t, []float32{7}, unused.Float32s())
}

func TestSGDMomentum(t *testing.T) {
	p := paramOf(t, []float32{0}, tensor.Shape{})
	opt := NewSGD([]*autograd.Value{p}, SGDConfig{LR: 1, Momentum: 0.5})

	// Constant gradient of 1 each step: velocity 1, then 1.5, then 1.75.
	c := paramOf(t, []float32{1}, tensor.Shape{})
	step := func() {
		require.NoError(t, p.Mul(c).Sum().Backward())
		require.NoError(t, opt.Step())
		opt.ZeroGrad()
	}

	step()
	assert.InDelta(t, -1.0, float64(p.Float32s()[0]), 1e-6)
	step()
	assert.InDelta(t, -2.5, float64(p.Float32s()[0]), 1e-6)
	step()
	assert.InDelta(t, -4.25, float64(p.Float32s()[0]), 1e-6)
}

func TestZeroGrad(t *testing.T) {
	p := paramOf(t, []float32{2}, tensor.Shape{})
	opt := NewSGD([]*autograd.Value{p}, SGDConfig{LR: 0.1})

	require.NoError(t, p.Mul(p).Sum().Backward())
	require.NotNil(t, p.Grad())

	opt.ZeroGrad()
	assert.Nil(t, p.Grad())
}

func TestAdamFirstStep(t *testing.T) {
	p := paramOf(t, []float32{1, -3}, tensor.Shape{2})
	opt := NewAdam([]*autograd.Value{p}, AdamConfig{LR: 0.1})

	// Bias correction makes the first update lr * g/|g| regardless of the
	// gradient magnitude (up to eps).
	require.NoError(t, p.Mul(p).Sum().Backward())
	require.NoError(t, opt.Step())

	got := p.Float32s()
	assert.InDelta(t, 0.9, float64(got[0]), 1e-4)
	assert.InDelta(t, -2.9, float64(got[1]), 1e-4)
}

func TestAdamDefaults(t *testing.T) {
	opt := NewAdam(nil, AdamConfig{})
	assert.Equal(t, 0.001, opt.lr)
	assert.Equal(t, 0.9, opt.beta1)
	assert.Equal(t, 0.999, opt.beta2)
	assert.Equal(t, 1e-8, opt.eps)
}

func TestTrainingConvergesOnXOR(t *testing.T) {
	b := cpu.New()
	nn.SeedInit(3)

	inputs, err := autograd.FromSlice([]float32{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}, tensor.Shape{4, 2}, b)
	require.NoError(t, err)
	targets, err := autograd.FromSlice([]float32{0, 1, 1, 0}, tensor.Shape{4, 1}, b)
	require.NoError(t, err)

	model := nn.NewSequential(
		nn.NewLinear(2, 8, b),
		nn.NewTanh(),
		nn.NewLinear(8, 1, b),
		nn.NewSigmoid(),
	)
	opt := NewAdam(model.Parameters(), AdamConfig{LR: 0.05})

	var lastLoss float64
	for i := 0; i < 500; i++ {
		loss := nn.MSELoss(model.Forward(inputs), targets)
		require.NoError(t, loss.Backward())
		require.NoError(t, opt.Step())
		opt.ZeroGrad()
		lastLoss = loss.Item()
	}

	assert.Less(t, lastLoss, 0.05, "XOR training did not converge, loss %v", lastLoss)

	autograd.NoGrad(func() {
		pred := model.Forward(inputs).Float32s()
		want := []float32{0, 1, 1, 0}
		for i := range want {
			assert.Less(t, math.Abs(float64(pred[i]-want[i])), 0.3,
				"sample %d predicted %v, want %v", i, pred[i], want[i])
		}
	})
}
