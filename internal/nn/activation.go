package nn

import "github.com/gradia-ml/gradia/internal/autograd"

// ReLU applies max(0, x) element-wise.
type ReLU struct{}

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU { return &ReLU{} }

func (r *ReLU) Forward(input *autograd.Value) *autograd.Value { return input.Relu() }

func (r *ReLU) Parameters() []*autograd.Value { return nil }

// Sigmoid applies the logistic function element-wise.
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

func (s *Sigmoid) Forward(input *autograd.Value) *autograd.Value { return input.Sigmoid() }

func (s *Sigmoid) Parameters() []*autograd.Value { return nil }

// Tanh applies the hyperbolic tangent element-wise.
type Tanh struct{}

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh { return &Tanh{} }

func (t *Tanh) Forward(input *autograd.Value) *autograd.Value { return input.Tanh() }

func (t *Tanh) Parameters() []*autograd.Value { return nil }

// LogSoftmax applies log(softmax(x)) along a fixed axis.
type LogSoftmax struct {
	dim int
}

// NewLogSoftmax creates a LogSoftmax over the given axis.
func NewLogSoftmax(dim int) *LogSoftmax { return &LogSoftmax{dim: dim} }

func (l *LogSoftmax) Forward(input *autograd.Value) *autograd.Value {
	return input.LogSoftmax(l.dim)
}

func (l *LogSoftmax) Parameters() []*autograd.Value { return nil }
