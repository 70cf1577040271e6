package optim

import (
	"math"

	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// Adam implements the Adam optimizer (Kingma & Ba, 2014).
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * grad
//	v_t = beta2 * v_{t-1} + (1-beta2) * grad^2
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
type Adam struct {
	params []*autograd.Value
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // timestep for bias correction
	m      map[*autograd.Value]*tensor.RawTensor
	v      map[*autograd.Value]*tensor.RawTensor
}

// AdamConfig configures an Adam optimizer.
type AdamConfig struct {
	LR    float64    // learning rate, defaults to 0.001
	Betas [2]float64 // moving-average coefficients, default [0.9, 0.999]
	Eps   float64    // numerical stability term, defaults to 1e-8
}

// NewAdam creates an Adam optimizer over the given parameters, resolving
// their gradient requirements to trainable.
func NewAdam(params []*autograd.Value, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: register(params),
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*autograd.Value]*tensor.RawTensor),
		v:      make(map[*autograd.Value]*tensor.RawTensor),
	}
}

// Step applies one Adam update to every parameter holding a gradient.
func (a *Adam) Step() error {
	a.t++
	bc1 := 1 - math.Pow(a.beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, p := range a.params {
		grad := p.Grad()
		if grad == nil {
			continue
		}
		b := p.Backend()
		g := grad.Data()

		m := b.MulScalar(g, 1-a.beta1)
		if prev, ok := a.m[p]; ok {
			m = b.Add(b.MulScalar(prev, a.beta1), m)
		}
		a.m[p] = m

		v := b.MulScalar(b.Mul(g, g), 1-a.beta2)
		if prev, ok := a.v[p]; ok {
			v = b.Add(b.MulScalar(prev, a.beta2), v)
		}
		a.v[p] = v

		mHat := b.MulScalar(m, 1/bc1)
		vHat := b.MulScalar(v, 1/bc2)
		update := b.Div(mHat, b.AddScalar(b.Sqrt(vHat), a.eps))

		if err := applyUpdate(p, update, a.lr); err != nil {
			return err
		}
	}
	return nil
}

// ZeroGrad clears every registered parameter's gradient.
func (a *Adam) ZeroGrad() {
	for _, p := range a.params {
		p.ZeroGrad()
	}
}
