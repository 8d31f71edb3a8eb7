// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// float64 scalars.
//
// Expressions are built on a Graph. Every builder function evaluates its
// result immediately and records how it was produced, so Backward can later
// push gradients from any root to all of its ancestors.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.Leaf(2)
//	    y := g.Leaf(3)
//
//	    // z = (x + y) * y
//	    z := autodiff.Mul(autodiff.Add(x, y), y)
//
//	    autodiff.Backward(z)
//	    fmt.Println(x.Grad(), y.Grad()) // 3 8
//	}
//
// Gradients accumulate across Backward calls. Use ZeroGrad before reusing a
// graph for an independent pass. A Graph is not safe for concurrent use.
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Graph owns the nodes of a computation graph.
type Graph = autodiff.Graph

// Value is a handle to a node in a Graph.
type Value = autodiff.Value

// NodeID is the index of a node in its Graph.
type NodeID = autodiff.NodeID

// Operation is a differentiable scalar operator.
type Operation = ops.Operation

// Kind identifies an operator; compare v.Op().Kind() against the Kind constants.
type Kind = ops.Kind

// Operator kinds.
const (
	KindAdd  = ops.KindAdd
	KindMul  = ops.KindMul
	KindPow  = ops.KindPow
	KindExp  = ops.KindExp
	KindReLU = ops.KindReLU
)

// GraphError describes a structural problem reported by Graph.Validate.
type GraphError = autodiff.GraphError

// Errors reported by Graph.Validate.
var (
	ErrInvalidGraph = autodiff.ErrInvalidGraph
	ErrCyclicGraph  = autodiff.ErrCyclicGraph
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Add returns a + b.
func Add(a, b Value) Value {
	return autodiff.Add(a, b)
}

// Mul returns a * b.
func Mul(a, b Value) Value {
	return autodiff.Mul(a, b)
}

// Pow returns a raised to the constant exponent.
func Pow(a Value, exponent float64) Value {
	return autodiff.Pow(a, exponent)
}

// Exp returns e^a.
func Exp(a Value) Value {
	return autodiff.Exp(a)
}

// ReLU returns max(0, a).
func ReLU(a Value) Value {
	return autodiff.ReLU(a)
}

// Neg returns -a.
func Neg(a Value) Value {
	return autodiff.Neg(a)
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	return autodiff.Sub(a, b)
}

// Div returns a / b.
func Div(a, b Value) Value {
	return autodiff.Div(a, b)
}

// TopologicalOrder returns the nodes reachable from root, operands first and
// root last.
func TopologicalOrder(root Value) []Value {
	return autodiff.TopologicalOrder(root)
}

// Backward computes the gradient of root with respect to all of its ancestors.
func Backward(root Value) {
	autodiff.Backward(root)
}

// ZeroGrad clears the gradients of every node reachable from root.
func ZeroGrad(root Value) {
	autodiff.ZeroGrad(root)
}
