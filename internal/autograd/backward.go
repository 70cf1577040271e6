package autograd

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Backward computes gradients for every Value reachable from root that
// requires them, by replaying the recorded graph in reverse topological
// order and accumulating (summing) each node's input gradients.
//
// The root must be a scalar (rank-0) Value that requires gradients; both
// preconditions are checked before anything is mutated. Gradients accumulate
// across calls: a leaf differentiated by two forward+backward rounds without
// an intervening ZeroGrad holds the sum of both passes.
//
// As each node is consumed its saved state is released and its output is
// detached (producer set to nil), so peak memory during a long pass is
// bounded by the live frontier of the walk and a fresh forward pass is
// required to differentiate again.
//
// An ErrBrokenInvariant returned mid-pass leaves gradients in a partially
// accumulated, unusable state.
func Backward(root *Value) error {
	if !root.Shape().IsScalar() {
		return errors.Wrapf(ErrNonScalarRoot, "got shape %v", root.Shape())
	}
	if !root.RequiresGrad() {
		return errors.WithStack(ErrNoGradRoot)
	}

	order, err := collectBackwardGraph(root)
	if err != nil {
		return err
	}

	// Seed the root with the multiplicative identity in its own dtype.
	b := root.backend
	accumulate(root, tensor.Ones(root.Shape(), root.DType(), b.Device()))

	klog.V(2).Infof("autograd: replaying %d nodes in reverse", len(order))

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		out := n.output

		// Every consumer of out precedes n in the reversed order and has
		// already deposited its contribution.
		if out.grad == nil {
			return errors.Wrapf(ErrBrokenInvariant, "%s node reached with no seeded output gradient", n.op.Name())
		}

		grads := n.op.Backward(b, out.grad.data)
		if len(grads) != len(n.inputs) {
			return errors.Wrapf(ErrBrokenInvariant, "%s backward returned %d gradients for %d inputs",
				n.op.Name(), len(grads), len(n.inputs))
		}

		for j, in := range n.inputs {
			g := grads[j]
			if g == nil {
				continue // input structurally cannot receive a gradient
			}
			if !in.RequiresGrad() {
				continue // dead end for accumulation; flow is discarded
			}
			if !g.Shape().Equal(in.Shape()) {
				g = reduceGradient(b, g, in.Shape())
				if !g.Shape().Equal(in.Shape()) {
					return errors.Wrapf(ErrBrokenInvariant,
						"%s gradient shape %v cannot be reconciled with input shape %v",
						n.op.Name(), grads[j].Shape(), in.Shape())
				}
			}
			accumulate(in, g)
		}

		// Release the node: saved state goes with the operation instance,
		// and the output becomes an ordinary leaf.
		out.producer = nil
		n.op = nil
		n.inputs = nil
		n.output = nil
	}

	return nil
}

// Backward replays the graph from this Value. See the package-level Backward.
func (v *Value) Backward() error {
	return Backward(v)
}

// accumulate sums g into v's gradient, creating it on first contribution.
// Summation, not overwrite: correctness of the chain rule at fan-out points
// depends on every consumer depositing its partial gradient independently.
func accumulate(v *Value, g *tensor.RawTensor) {
	if v.grad == nil {
		v.grad = &Value{data: g, backend: v.backend, flag: gradNo}
		return
	}
	v.grad.data = v.backend.Add(v.grad.data, g)
}

// reduceGradient undoes an implicit forward broadcast: axes the target shape
// lacks are summed away entirely, and axes where the target has size 1 are
// summed with the dimension kept.
func reduceGradient(b tensor.Backend, grad *tensor.RawTensor, target tensor.Shape) *tensor.RawTensor {
	if len(target) == 0 {
		return b.Sum(grad)
	}

	for len(grad.Shape()) > len(target) {
		grad = b.SumDim(grad, 0, false)
	}

	for i, want := range target {
		if want == 1 && grad.Shape()[i] != 1 {
			grad = b.SumDim(grad, i, true)
		}
	}

	return grad
}
