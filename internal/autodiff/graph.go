package autodiff

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// NodeID is the index of a node in its Graph.
type NodeID int

// node is a single arena entry.
type node struct {
	value    float64
	grad     float64
	op       ops.Operation // nil for leaves
	operands []NodeID
}

// Graph owns the nodes of a computation graph.
//
// Nodes are appended as expressions are built and are never removed. Operands
// are stored as indices into the arena, so a node shared by many consumers is
// stored once and every consumer sees the same gradient accumulation.
//
// A node can only reference nodes that already exist, so graphs built through
// this package are acyclic.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Leaf adds a leaf node holding x. Leaves have no operator and no operands.
func (g *Graph) Leaf(x float64) Value {
	return g.push(node{value: x})
}

// push appends n to the arena and returns a handle to it.
func (g *Graph) push(n node) Value {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return Value{graph: g, id: id}
}

// at returns a pointer to the arena entry for id.
// The pointer is only valid until the next push.
func (g *Graph) at(id NodeID) *node {
	if id < 0 || int(id) >= len(g.nodes) {
		panic(fmt.Sprintf("autodiff: node %d out of range [0, %d)", id, len(g.nodes)))
	}
	return &g.nodes[id]
}

// Value is a handle to a node in a Graph. Copies of a Value refer to the same
// node.
//
// The zero Value is not attached to any graph; using it panics.
type Value struct {
	graph *Graph
	id    NodeID
}

// Graph returns the graph that owns v.
func (v Value) Graph() *Graph {
	return v.graph
}

// ID returns v's index within its graph.
func (v Value) ID() NodeID {
	return v.id
}

// Data returns the forward value computed when v was built.
func (v Value) Data() float64 {
	return v.node().value
}

// Grad returns the gradient accumulated into v by Backward.
func (v Value) Grad() float64 {
	return v.node().grad
}

// Op returns the operation that produced v, or nil for a leaf.
func (v Value) Op() ops.Operation {
	return v.node().op
}

// IsLeaf reports whether v was created by Graph.Leaf.
func (v Value) IsLeaf() bool {
	return v.node().op == nil
}

// Operands returns the direct predecessors of v in construction order.
func (v Value) Operands() []Value {
	n := v.node()
	out := make([]Value, len(n.operands))
	for i, id := range n.operands {
		out[i] = Value{graph: v.graph, id: id}
	}
	return out
}

// String returns a short description of v, e.g. "Value(data=15, grad=1, op=mul)".
func (v Value) String() string {
	if v.graph == nil {
		return "Value(<nil>)"
	}
	n := v.node()
	if n.op == nil {
		return fmt.Sprintf("Value(data=%g, grad=%g)", n.value, n.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", n.value, n.grad, n.op)
}

func (v Value) node() *node {
	if v.graph == nil {
		panic("autodiff: use of zero Value")
	}
	return v.graph.at(v.id)
}

// sameGraph returns the graph shared by all values, panicking if they differ.
func sameGraph(name string, values ...Value) *Graph {
	var g *Graph
	for _, v := range values {
		if v.graph == nil {
			panic(fmt.Sprintf("autodiff: %s: use of zero Value", name))
		}
		if g == nil {
			g = v.graph
			continue
		}
		if v.graph != g {
			panic(fmt.Sprintf("autodiff: %s: operands belong to different graphs", name))
		}
	}
	return g
}
