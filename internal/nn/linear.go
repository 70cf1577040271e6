package nn

import (
	"fmt"

	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// Linear implements a fully connected layer: y = x @ W + b.
//
//   - x: [batch, in]
//   - W: [in, out], Xavier-initialized
//   - b: [out], zero-initialized, optional
//   - y: [batch, out]
type Linear struct {
	in, out int
	weight  *autograd.Value
	bias    *autograd.Value // nil when created without bias
}

// NewLinear creates a Linear layer with bias.
func NewLinear(in, out int, b tensor.Backend) *Linear {
	return &Linear{
		in:     in,
		out:    out,
		weight: Xavier(in, out, tensor.Shape{in, out}, b),
		bias:   Zeros(tensor.Shape{out}, b),
	}
}

// NewLinearNoBias creates a Linear layer without a bias term.
func NewLinearNoBias(in, out int, b tensor.Backend) *Linear {
	return &Linear{
		in:     in,
		out:    out,
		weight: Xavier(in, out, tensor.Shape{in, out}, b),
	}
}

// Forward computes x @ W + b for a [batch, in] input.
func (l *Linear) Forward(input *autograd.Value) *autograd.Value {
	shape := input.Shape()
	if shape.Rank() != 2 || shape[1] != l.in {
		panic(fmt.Sprintf("linear: want input [batch, %d], got %v", l.in, shape))
	}
	out := input.MatMul(l.weight)
	if l.bias != nil {
		out = out.Add(l.bias.Reshape(tensor.Shape{1, l.out}))
	}
	return out
}

// Parameters returns [weight, bias], or [weight] without bias.
func (l *Linear) Parameters() []*autograd.Value {
	if l.bias != nil {
		return []*autograd.Value{l.weight, l.bias}
	}
	return []*autograd.Value{l.weight}
}

// Weight returns the weight parameter, shape [in, out].
func (l *Linear) Weight() *autograd.Value { return l.weight }

// Bias returns the bias parameter, or nil.
func (l *Linear) Bias() *autograd.Value { return l.bias }
