package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// MaxDim takes the maximum along one axis: output = max(x, dim).
//
// Backward: the gradient flows to every position attaining the maximum in
// its lane. When several positions tie, the output gradient is split evenly
// among them, so lane gradients always sum to the output gradient.
type MaxDim struct {
	dim     int
	keepDim bool
	x       *tensor.RawTensor
	kept    *tensor.RawTensor // output in keepDim form, for the equality mask
}

// NewMaxDim creates a new MaxDim over the given axis. A negative dim counts
// from the back.
func NewMaxDim(dim int, keepDim bool) *MaxDim {
	return &MaxDim{dim: dim, keepDim: keepDim}
}

func (op *MaxDim) Name() string { return "max_dim" }

// Forward reduces along the configured axis, saving the input and the
// keepDim form of the output.
func (op *MaxDim) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	d, err := normalizeDim(op.Name(), op.dim, x.Shape().Rank())
	if err != nil {
		return nil, err
	}
	op.dim = d
	op.x = x
	out := b.MaxDim(x, d, op.keepDim)
	op.kept = out
	if !op.keepDim {
		op.kept = keepDims(b, out, d)
	}
	return out, nil
}

// Backward routes the gradient to the argmax positions via an equality mask,
// dividing by the per-lane tie count.
func (op *MaxDim) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	g := outputGrad
	if !op.keepDim {
		g = keepDims(b, g, op.dim)
	}
	mask := b.Cast(b.Equal(op.x, op.kept), op.x.DType())
	ties := b.SumDim(mask, op.dim, true)
	return []*tensor.RawTensor{b.Div(b.Mul(mask, g), ties)}
}
