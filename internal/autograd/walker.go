package autograd

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Walk states for the depth-first topological sort.
const (
	walkInProgress = 1
	walkDone       = 2
)

// collectBackwardGraph returns the nodes reachable from root's producer in
// depth-first post-order: every node appears after all nodes producing its
// inputs, exactly once, even when reachable through multiple paths. The
// reversed order is the backward replay order.
//
// Construction-time acyclicity means a cycle should be impossible; if one is
// detected anyway the graph is corrupt and ErrBrokenInvariant is returned
// rather than looping forever.
func collectBackwardGraph(root *Value) ([]*node, error) {
	if root.producer == nil {
		return nil, nil
	}

	var order []*node
	state := make(map[*node]int8)

	var visit func(n *node) error
	visit = func(n *node) error {
		switch state[n] {
		case walkDone:
			return nil
		case walkInProgress:
			return errors.Wrap(ErrBrokenInvariant, "cycle detected in computation graph")
		}
		state[n] = walkInProgress

		for _, in := range n.inputs {
			if in.producer == nil {
				continue
			}
			if err := visit(in.producer); err != nil {
				return err
			}
		}

		state[n] = walkDone
		order = append(order, n)
		return nil
	}

	if err := visit(root.producer); err != nil {
		return nil, err
	}

	klog.V(2).Infof("autograd: collected %d nodes for backward walk", len(order))
	return order, nil
}
