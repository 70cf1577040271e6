package nn

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// MSELoss computes the mean squared error between predictions and targets:
// mean((pred - target)^2). The result is a rank-0 Value, ready to be
// differentiated.
func MSELoss(pred, target *autograd.Value) *autograd.Value {
	diff := pred.Sub(target)
	return diff.Mul(diff).Mean()
}

// CrossEntropyLoss computes the categorical cross entropy between logits
// [batch, classes] and one-hot targets of the same shape, averaged over the
// batch:
//
//	-mean(sum(target * log_softmax(logits), dim=1))
//
// The log-softmax is computed with the max-shift, so large logits do not
// overflow.
func CrossEntropyLoss(logits, target *autograd.Value) *autograd.Value {
	batch := logits.Shape()[0]
	perSample := logits.LogSoftmax(1).Mul(target).SumDim(1, false)
	return perSample.Sum().MulScalar(-1 / float64(batch))
}

// SparseCrossEntropyLoss is CrossEntropyLoss with targets given as class
// indices, one per batch row. The one-hot matrix is built on the fly as a
// constant, so no gradient flows into the targets.
func SparseCrossEntropyLoss(logits *autograd.Value, classes []int) (*autograd.Value, error) {
	shape := logits.Shape()
	if shape.Rank() != 2 {
		return nil, errors.Errorf("sparse cross entropy: logits must be rank 2, got shape %v", shape)
	}
	batch, numClasses := shape[0], shape[1]
	if len(classes) != batch {
		return nil, errors.Errorf("sparse cross entropy: %d class indices for batch of %d", len(classes), batch)
	}
	oneHot := make([]float32, batch*numClasses)
	for i, c := range classes {
		if c < 0 || c >= numClasses {
			return nil, errors.Errorf("sparse cross entropy: class index %d out of range [0, %d)", c, numClasses)
		}
		oneHot[i*numClasses+c] = 1
	}
	target, err := autograd.FromSlice(oneHot, tensor.Shape{batch, numClasses}, logits.Backend())
	if err != nil {
		return nil, err
	}
	if logits.DType() != tensor.Float32 {
		target = target.Cast(logits.DType())
	}
	return CrossEntropyLoss(logits, target), nil
}
