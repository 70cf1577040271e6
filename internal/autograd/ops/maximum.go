package ops

import "github.com/gradia-ml/gradia/internal/tensor"

// Maximum is the element-wise maximum: output = max(a, b).
//
// Backward:
//   - grad_a = outputGrad where a >= b, else 0
//   - grad_b = outputGrad where b > a, else 0
//
// Ties route the whole gradient to the first input rather than splitting it.
type Maximum struct {
	a, b *tensor.RawTensor
}

// NewMaximum creates a new Maximum.
func NewMaximum() *Maximum { return &Maximum{} }

func (op *Maximum) Name() string { return "maximum" }

// Forward computes max(a, b) with broadcasting, saving both inputs.
func (op *Maximum) Forward(b tensor.Backend, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	x, y, err := binaryArgs(op.Name(), inputs)
	if err != nil {
		return nil, err
	}
	op.a, op.b = x, y
	return b.Maximum(x, y), nil
}

// Backward routes the output gradient to whichever input won each element.
func (op *Maximum) Backward(b tensor.Backend, outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	bWins := b.Greater(op.b, op.a)
	zero := scalarZero(outputGrad)
	gradA := b.Where(bWins, zero, outputGrad)
	gradB := b.Where(bWins, outputGrad, zero)
	return []*tensor.RawTensor{gradA, gradB}
}
