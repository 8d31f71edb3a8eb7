package autodiff

// TopologicalOrder returns every node reachable from root, each exactly once,
// ordered so that a node appears after all of its operands. Root is last.
//
// The traversal is a depth-first postorder visiting operands in construction
// order. It uses an explicit stack, so deep expression chains do not grow the
// goroutine stack.
//
// Precondition: the graph reachable from root is acyclic. Graphs built with
// this package always are; see Graph.Validate for arenas of unknown origin.
func TopologicalOrder(root Value) []Value {
	g := sameGraph("topological order", root)
	ids := g.topoOrder(root.id)

	order := make([]Value, len(ids))
	for i, id := range ids {
		order[i] = Value{graph: g, id: id}
	}
	return order
}

// visitFrame is a pending step of the depth-first traversal. An unexpanded
// frame schedules the node's operands; an expanded one emits the node.
type visitFrame struct {
	id       NodeID
	expanded bool
}

// topoOrder returns the node ids reachable from root in postorder.
func (g *Graph) topoOrder(root NodeID) []NodeID {
	visited := make(map[NodeID]bool)
	order := make([]NodeID, 0, 16)
	stack := []visitFrame{{id: root}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.expanded {
			order = append(order, frame.id)
			continue
		}
		if visited[frame.id] {
			continue
		}
		visited[frame.id] = true

		// Emit this node once its operands are done.
		stack = append(stack, visitFrame{id: frame.id, expanded: true})

		// Push in reverse so operand 0 is visited first.
		operands := g.at(frame.id).operands
		for i := len(operands) - 1; i >= 0; i-- {
			if !visited[operands[i]] {
				stack = append(stack, visitFrame{id: operands[i]})
			}
		}
	}

	return order
}
