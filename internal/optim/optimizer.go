// Package optim implements gradient-based parameter optimizers.
//
// Registering a parameter with an optimizer resolves an unset gradient
// requirement to true, so parameters created by layers start accumulating
// gradients exactly when they become optimizable. Step reads each
// parameter's accumulated gradient and updates the parameter buffer in
// place; ZeroGrad clears the gradients for the next iteration.
package optim

import (
	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// Optimizer updates registered parameters from their accumulated gradients.
type Optimizer interface {
	// Step applies one update to every registered parameter that holds a
	// gradient. Parameters that did not participate in the last backward
	// pass are skipped.
	Step() error

	// ZeroGrad clears the accumulated gradient of every registered
	// parameter. Call it between training iterations; without it
	// gradients keep summing across passes.
	ZeroGrad()
}

// register marks every parameter as trainable and returns the slice.
func register(params []*autograd.Value) []*autograd.Value {
	for _, p := range params {
		p.MarkTrainable()
	}
	return params
}

// applyUpdate writes p - lr*update into the parameter buffer.
func applyUpdate(p *autograd.Value, update *tensor.RawTensor, lr float64) error {
	b := p.Backend()
	next := b.Sub(p.Data(), b.MulScalar(update, lr))
	return p.Assign(autograd.New(next, b))
}
