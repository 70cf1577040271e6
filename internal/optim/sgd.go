package optim

import (
	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Without momentum:
//
//	param = param - lr * grad
//
// With momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
type SGD struct {
	params     []*autograd.Value
	lr         float64
	momentum   float64
	velocities map[*autograd.Value]*tensor.RawTensor
}

// SGDConfig configures an SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate, defaults to 0.01
	Momentum float64 // momentum factor in [0, 1), defaults to 0
}

// NewSGD creates an SGD optimizer over the given parameters, resolving
// their gradient requirements to trainable.
func NewSGD(params []*autograd.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     register(params),
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autograd.Value]*tensor.RawTensor),
	}
}

// Step applies one SGD update to every parameter holding a gradient.
func (s *SGD) Step() error {
	for _, p := range s.params {
		g := p.Grad()
		if g == nil {
			continue
		}
		update := g.Data()
		if s.momentum != 0 {
			b := p.Backend()
			if vel, ok := s.velocities[p]; ok {
				update = b.Add(b.MulScalar(vel, s.momentum), update)
			}
			s.velocities[p] = update
		}
		if err := applyUpdate(p, update, s.lr); err != nil {
			return err
		}
	}
	return nil
}

// ZeroGrad clears every registered parameter's gradient.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}
