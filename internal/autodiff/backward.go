package autodiff

// Backward computes the gradient of root with respect to every node reachable
// from it.
//
// Algorithm:
//  1. Compute the topological order once
//  2. Seed root's gradient with 1 (d(root)/d(root))
//  3. Walk the order in reverse; for every non-leaf node, ask its operation
//     for the operand contributions and add them into the operands' gradients
//
// Reverse topological order guarantees a node has received the contributions
// of all its consumers before it propagates further.
//
// Gradients accumulate: a second call without ZeroGrad adds on top of the
// intermediate gradients left by the previous pass, and those stale values are
// propagated again, so results are not simply doubled. The seed overwrites
// root's gradient.
func Backward(root Value) {
	g := sameGraph("backward", root)
	order := g.topoOrder(root.id)

	g.at(root.id).grad = 1

	var inputs []float64
	for i := len(order) - 1; i >= 0; i-- {
		n := g.at(order[i])
		if n.op == nil {
			continue // Leaves have nothing to propagate
		}

		inputs = inputs[:0]
		for _, id := range n.operands {
			inputs = append(inputs, g.at(id).value)
		}

		grads := n.op.Backward(n.grad, n.value, inputs)
		for j, id := range n.operands {
			g.at(id).grad += grads[j]
		}
	}
}

// ZeroGrad sets the gradient of every node reachable from root to zero.
// Calling it again is a no-op.
func ZeroGrad(root Value) {
	g := sameGraph("zero grad", root)
	for _, id := range g.topoOrder(root.id) {
		g.at(id).grad = 0
	}
}

// ZeroGrad sets the gradient of every node in the graph to zero, including
// nodes not reachable from any particular root.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}
