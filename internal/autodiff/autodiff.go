// Package autodiff implements reverse-mode automatic differentiation over
// float64 scalars.
//
// Architecture:
//   - Graph: an append-only arena of nodes; operands are stored as indices
//   - Value: a handle to one node, returned by the builder functions
//   - ops.Operation: each operator (Add, Mul, Pow, Exp, ReLU) implements its
//     forward and backward rules
//   - Backward: seeds the root gradient with 1 and walks the topological
//     order in reverse, accumulating gradients into operands
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(2)
//	y := g.Leaf(3)
//	z := autodiff.Mul(autodiff.Add(x, y), y) // z = (x + y) * y
//
//	autodiff.Backward(z)
//	fmt.Println(x.Grad(), y.Grad()) // 3 8
//
// Gradients accumulate across calls to Backward; call ZeroGrad between
// independent passes over the same graph.
package autodiff

import "github.com/born-ml/scalargrad/internal/autodiff/ops"

// apply evaluates op on the operands and appends the resulting node.
// Operands are read, never written.
func apply(op ops.Operation, operands ...Value) Value {
	g := sameGraph(op.Kind().String(), operands...)

	inputs := make([]float64, len(operands))
	ids := make([]NodeID, len(operands))
	for i, v := range operands {
		inputs[i] = g.at(v.id).value
		ids[i] = v.id
	}

	return g.push(node{
		value:    op.Forward(inputs),
		op:       op,
		operands: ids,
	})
}

// Add returns a + b.
func Add(a, b Value) Value {
	return apply(ops.NewAddOp(), a, b)
}

// Mul returns a * b.
func Mul(a, b Value) Value {
	return apply(ops.NewMulOp(), a, b)
}

// Pow returns a raised to the constant exponent.
// Any float exponent is accepted; 0 raised to a negative power gives +Inf.
func Pow(a Value, exponent float64) Value {
	return apply(ops.NewPowOp(exponent), a)
}

// Exp returns e^a.
func Exp(a Value) Value {
	return apply(ops.NewExpOp(), a)
}

// ReLU returns a if a > 0, else 0.
func ReLU(a Value) Value {
	return apply(ops.NewReLUOp(), a)
}

// Neg returns -a, built as a * -1 with a fresh constant leaf.
func Neg(a Value) Value {
	g := sameGraph("neg", a)
	return Mul(a, g.Leaf(-1))
}

// Sub returns a - b, built as a + (-b).
func Sub(a, b Value) Value {
	sameGraph("sub", a, b)
	return Add(a, Neg(b))
}

// Div returns a / b, built as a * b^-1.
func Div(a, b Value) Value {
	sameGraph("div", a, b)
	return Mul(a, Pow(b, -1))
}
