package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// SumDim sums along one axis: output = sum(x, dim).
//
// Backward: grad_x is the output gradient broadcast back along the reduced
// axis. With keepDim unset the axis is first reinserted as size 1 so the
// broadcast lines up.
type SumDim struct {
	dim     int
	keepDim bool
	inShape tensor.Shape
}

// NewSumDim creates a new SumDim over the given axis. A negative dim counts
// from the back.
func NewSumDim(dim int, keepDim bool) *SumDim {
	return &SumDim{dim: dim, keepDim: keepDim}
}

func (op *SumDim) Name() string { return "sum_dim" }

// Forward sums along the configured axis, saving the input shape.
func (op *SumDim) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := unaryArg(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	d, err := normalizeDim(op.Name(), op.dim, x.Shape().Rank())
	if err != nil {
		return nil, err
	}
	op.dim = d
	op.inShape = x.Shape().Clone()
	return b.SumDim(x, d, op.keepDim), nil
}

// Backward broadcasts the gradient back along the reduced axis.
func (op *SumDim) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	g := outputGrad
	if !op.keepDim {
		g = keepDims(b, g, op.dim)
	}
	return []*tensor.RawTensor{b.Expand(g, op.inShape)}
}
