// Package nn implements neural network building blocks on top of the
// autograd engine: layers, activations, loss functions, and a Sequential
// container.
//
// Layers create their parameters with an unset gradient requirement; the
// requirement resolves to true when the parameters are registered with an
// optimizer. A model that is only ever run for inference therefore records
// no graph at all.
package nn

import (
	"github.com/gradia-ml/gradia/internal/autograd"
)

// Module is the base interface for all network components.
type Module interface {
	// Forward computes the module's output for the given input.
	Forward(input *autograd.Value) *autograd.Value

	// Parameters returns the module's trainable parameters, including
	// those of nested modules. Modules without parameters return nil.
	Parameters() []*autograd.Value
}
