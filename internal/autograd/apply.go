package autograd

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/autograd/ops"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// Apply runs one operation over the given input Values as a single atomic
// step: validate, compute the forward kernel eagerly, and — only when at
// least one input requires gradients and gradient recording is enabled —
// record a graph node on the output.
//
// Shape and dtype validation errors are surfaced here, synchronously, and
// are recoverable: the caller may retry with corrected operands. When no
// node is recorded the output is an ordinary leaf and retains no reference
// to the inputs (graph pruning).
func Apply(op ops.Operation, inputs ...*Value) (*Value, error) {
	if len(inputs) == 0 {
		return nil, errors.Errorf("apply %s: operation needs at least one input", op.Name())
	}

	b := inputs[0].backend
	raws := make([]*tensor.RawTensor, len(inputs))
	requires := false
	for i, in := range inputs {
		raws[i] = in.data
		requires = requires || in.RequiresGrad()
	}

	out, err := op.Forward(b, raws...)
	if err != nil {
		return nil, errors.WithMessagef(err, "apply %s", op.Name())
	}

	v := &Value{data: out, backend: b, flag: gradNo}
	if requires && GradEnabled() {
		v.flag = gradYes
		v.producer = &node{op: op, inputs: inputs, output: v}
	}
	return v, nil
}

// mustApply is the panicking form of Apply backing the convenience methods
// on Value. Operand shape errors there are programmer errors, matching the
// kernels' own behavior.
func mustApply(op ops.Operation, inputs ...*Value) *Value {
	v, err := Apply(op, inputs...)
	if err != nil {
		panic(err)
	}
	return v
}
