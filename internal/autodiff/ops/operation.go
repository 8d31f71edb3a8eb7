// Package ops defines the operator set of the scalar autodiff engine.
//
// Each operator implements the Operation interface, which provides:
//   - Forward pass: the output value as a pure function of operand values
//   - Backward pass: the gradient contribution for each operand given the
//     output gradient
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - PowOp: power with a fixed exponent (d(x^e)/dx = e * x^(e-1))
//   - ExpOp: natural exponential (d(exp(x))/dx = exp(x))
//   - ReLUOp: rectified linear unit (d(ReLU(x))/dx = 1 if ReLU(x) > 0, else 0)
//
// The set is closed: Operation has an unexported method, so only this package
// can add operators. Negation, subtraction and division are built from these
// primitives by the graph builder.
package ops

import "fmt"

// Kind identifies an operator.
type Kind uint8

// Operator kinds.
const (
	KindAdd Kind = iota + 1
	KindMul
	KindPow
	KindExp
	KindReLU
)

// String returns the operator name.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindMul:
		return "mul"
	case KindPow:
		return "pow"
	case KindExp:
		return "exp"
	case KindReLU:
		return "relu"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Operation represents a differentiable scalar operation.
type Operation interface {
	// Kind reports which operator this is.
	Kind() Kind

	// Arity returns the number of operands the operation consumes.
	Arity() int

	// Forward computes the output value from the operand values.
	// len(inputs) must equal Arity().
	Forward(inputs []float64) float64

	// Backward computes the gradient contribution for each operand.
	//
	// outputGrad is the accumulated gradient of the node produced by this
	// operation, output is that node's forward value, and inputs are the
	// operand forward values in construction order. The returned slice is
	// indexed like inputs; the caller adds each entry into the matching
	// operand's gradient.
	//
	// Example for MulOp:
	//   inputs: [a, b]
	//   returns: [outputGrad * b, outputGrad * a]
	Backward(outputGrad, output float64, inputs []float64) []float64

	// String returns a short human-readable description, e.g. "pow(3)".
	String() string

	sealed()
}

// checkArity panics when an operator receives the wrong number of operands.
func checkArity(op Operation, inputs []float64) {
	if len(inputs) != op.Arity() {
		panic(fmt.Sprintf("%s: expected %d operands, got %d", op.Kind(), op.Arity(), len(inputs)))
	}
}
