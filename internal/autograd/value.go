// Package autograd implements reverse-mode automatic differentiation over a
// dynamically recorded graph of buffer operations.
//
// Every operation applied through this package executes eagerly and, when
// gradients are in play, records a graph node linking the result to its
// inputs. Backward replays the recorded graph in reverse topological order,
// accumulating gradients into every reachable Value that requires them.
package autograd

import (
	"github.com/pkg/errors"

	"github.com/gradia-ml/gradia/internal/autograd/ops"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// gradFlag is the tri-state gradient requirement of a Value.
//
// gradUnset defers the decision: it behaves as "no" until the Value is
// registered as an optimizable parameter, which resolves it to "yes".
type gradFlag int8

const (
	gradUnset gradFlag = iota
	gradNo
	gradYes
)

// Value is the user-facing handle to a buffer plus autograd bookkeeping:
// an optional accumulated gradient and an optional producer node linking it
// into the computation graph.
//
// A Value with no producer is a graph leaf (user-created or detached).
type Value struct {
	data     *tensor.RawTensor
	backend  tensor.Backend
	flag     gradFlag
	grad     *Value
	producer *node
}

// node is one recorded application of an operation: the operation instance
// (which carries its saved backward state), the ordered input Values, and a
// back-reference to the output. It exists only while gradients may still
// flow; the backward pass dismantles it as soon as it has been consumed.
type node struct {
	op     ops.Operation
	inputs []*Value
	output *Value
}

// New wraps a buffer in a leaf Value with an unset gradient requirement.
// The requirement resolves to true if the Value is later registered with an
// optimizer; until then it behaves as false.
func New(data *tensor.RawTensor, b tensor.Backend) *Value {
	return &Value{data: data, backend: b}
}

// NewLeaf wraps a buffer in a leaf Value with an explicit gradient requirement.
func NewLeaf(data *tensor.RawTensor, b tensor.Backend, requiresGrad bool) *Value {
	v := New(data, b)
	v.SetRequiresGrad(requiresGrad)
	return v
}

// Shape returns the shape of the underlying buffer.
func (v *Value) Shape() tensor.Shape {
	return v.data.Shape()
}

// DType returns the element type of the underlying buffer.
func (v *Value) DType() tensor.DataType {
	return v.data.DType()
}

// Data returns the underlying buffer.
func (v *Value) Data() *tensor.RawTensor {
	return v.data
}

// Backend returns the compute backend this Value was created on.
func (v *Value) Backend() tensor.Backend {
	return v.backend
}

// RequiresGrad reports whether gradients accumulate on this Value.
// An unset requirement behaves as false.
func (v *Value) RequiresGrad() bool {
	return v.flag == gradYes
}

// SetRequiresGrad resolves the gradient requirement explicitly.
func (v *Value) SetRequiresGrad(requires bool) {
	if requires {
		v.flag = gradYes
	} else {
		v.flag = gradNo
	}
}

// MarkTrainable resolves an unset gradient requirement to true. Optimizers
// call this when a Value is registered as a parameter; an explicit false is
// left untouched.
func (v *Value) MarkTrainable() {
	if v.flag == gradUnset {
		v.flag = gradYes
	}
}

// Grad returns the accumulated gradient, or nil if no backward pass has
// deposited one. A nil result is the expected answer for Values that never
// required gradients; it is not an error.
func (v *Value) Grad() *Value {
	return v.grad
}

// ZeroGrad drops the accumulated gradient so the next backward pass starts
// fresh.
func (v *Value) ZeroGrad() {
	v.grad = nil
}

// IsLeaf reports whether this Value has no producer node.
func (v *Value) IsLeaf() bool {
	return v.producer == nil
}

// Detach returns a new leaf Value sharing the same buffer but carrying no
// graph linkage and no gradient requirement. Gradient flow stops here.
func (v *Value) Detach() *Value {
	return &Value{
		data:    v.data.Clone(),
		backend: v.backend,
		flag:    gradNo,
	}
}

// Assign substitutes this Value's buffer with x's, in place. The shapes and
// dtypes must match and x must not require gradients (assignment is a data
// write, not a differentiable operation). The old buffer is released.
func (v *Value) Assign(x *Value) error {
	if !v.Shape().Equal(x.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "assign: %v != %v", v.Shape(), x.Shape())
	}
	if v.DType() != x.DType() {
		return errors.Errorf("assign: dtype mismatch %s != %s", v.DType(), x.DType())
	}
	if x.RequiresGrad() {
		return errors.New("assign: source must not require gradients")
	}

	old := v.data
	v.data = x.data.Clone()
	old.Release()
	return nil
}

// Item returns the single element of a scalar Value as float64.
// Panics for non-scalar Values; use Data() for bulk access.
func (v *Value) Item() float64 {
	return v.data.Scalar()
}

// Float32s returns the underlying buffer as a []float32 view.
func (v *Value) Float32s() []float32 {
	return v.data.AsFloat32()
}

// Float64s returns the underlying buffer as a []float64 view.
func (v *Value) Float64s() []float64 {
	return v.data.AsFloat64()
}
