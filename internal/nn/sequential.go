package nn

import "github.com/gradia-ml/gradia/internal/autograd"

// Sequential chains modules, feeding each output into the next input.
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 8, backend),
//	    nn.NewTanh(),
//	    nn.NewLinear(8, 1, backend),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a Sequential container over the given modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward runs the input through every module in order.
func (s *Sequential) Forward(input *autograd.Value) *autograd.Value {
	out := input
	for _, m := range s.modules {
		out = m.Forward(out)
	}
	return out
}

// Parameters collects the parameters of every contained module.
func (s *Sequential) Parameters() []*autograd.Value {
	var params []*autograd.Value
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}
