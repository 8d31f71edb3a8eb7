package autodiff

// Validate checks the structure of the subgraph reachable from root.
//
// It rejects operand indices outside the arena, operand counts that do not
// match the operator's arity, and cycles. Graphs built through the builder
// functions always pass, so this is a defensive check against a corrupted
// arena (the package tests corrupt one deliberately). TopologicalOrder,
// Backward and ZeroGrad do no such checks and do not terminate on a cyclic
// graph.
//
// Errors wrap ErrInvalidGraph or ErrCyclicGraph.
func (g *Graph) Validate(root Value) error {
	if root.graph != g {
		return invalidf("root does not belong to this graph")
	}
	if err := g.checkNode(root.id); err != nil {
		return err
	}
	return g.checkAcyclic(root.id)
}

func (g *Graph) checkNode(id NodeID) error {
	if id < 0 || int(id) >= len(g.nodes) {
		return invalidf("node %d out of range [0, %d)", id, len(g.nodes))
	}
	n := &g.nodes[id]
	switch {
	case n.op == nil && len(n.operands) != 0:
		return invalidf("leaf %d has %d operands", id, len(n.operands))
	case n.op != nil && len(n.operands) != n.op.Arity():
		return invalidf("node %d (%s) has %d operands, want %d", id, n.op, len(n.operands), n.op.Arity())
	}
	for _, op := range n.operands {
		if op < 0 || int(op) >= len(g.nodes) {
			return invalidf("node %d references operand %d out of range [0, %d)", id, op, len(g.nodes))
		}
	}
	return nil
}

// checkAcyclic runs an iterative white/gray/black depth-first search from root
// and returns one cycle witness if a back edge is found.
func (g *Graph) checkAcyclic(root NodeID) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[NodeID]int)
	parent := make(map[NodeID]NodeID)

	type frame struct {
		id   NodeID
		next int // next operand index to explore
	}
	stack := []frame{{id: root}}
	color[root] = gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		operands := g.nodes[top.id].operands

		if top.next == len(operands) {
			color[top.id] = black
			stack = stack[:len(stack)-1]
			continue
		}

		u := top.id
		v := operands[top.next]
		top.next++

		switch color[v] {
		case white:
			if err := g.checkNode(v); err != nil {
				return err
			}
			parent[v] = u
			color[v] = gray
			stack = append(stack, frame{id: v})
		case gray:
			// Back edge u -> v. Reconstruct v -> ... -> u -> v.
			var rev []NodeID
			for cur := u; cur != v; cur = parent[cur] {
				rev = append(rev, cur)
			}
			path := make([]NodeID, 0, len(rev)+2)
			path = append(path, v)
			for i := len(rev) - 1; i >= 0; i-- {
				path = append(path, rev[i])
			}
			path = append(path, v)
			return cycleError(path)
		}
	}
	return nil
}
