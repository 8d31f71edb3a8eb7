package ops

import "math"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct{}

// NewExpOp creates a new ExpOp.
func NewExpOp() ExpOp {
	return ExpOp{}
}

// Kind returns KindExp.
func (ExpOp) Kind() Kind { return KindExp }

// Arity returns 1.
func (ExpOp) Arity() int { return 1 }

// Forward returns e^x.
func (op ExpOp) Forward(inputs []float64) float64 {
	checkArity(op, inputs)
	return math.Exp(inputs[0])
}

// Backward computes input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (op ExpOp) Backward(outputGrad, output float64, inputs []float64) []float64 {
	checkArity(op, inputs)
	return []float64{output * outputGrad}
}

func (ExpOp) String() string { return "exp" }

func (ExpOp) sealed() {}
