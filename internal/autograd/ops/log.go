package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Log is the element-wise natural logarithm: output = ln(x).
//
// Backward: d(ln(x))/dx = 1/x, so grad_x = outputGrad / x.
type Log struct {
	x *tensor.RawTensor
}

// NewLog creates a new Log.
func NewLog() *Log { return &Log{} }

func (op *Log) Name() string { return "log" }

// Forward computes ln(x), saving the input.
func (op *Log) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.x = x
	return b.Log(x), nil
}

// Backward computes grad_x = outputGrad / x.
func (op *Log) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Div(outputGrad, op.x)}
}
