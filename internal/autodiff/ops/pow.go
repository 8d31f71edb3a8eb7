package ops

import (
	"math"
	"strconv"
)

// PowOp raises its operand to a constant exponent: output = x^Exponent.
//
// Backward pass:
//   - d(x^e)/dx = e * x^(e-1)
//   - grad_input = outputGrad * e * x^(e-1)
//
// A zero base with e-1 < 0 yields an infinite or NaN gradient. That follows
// math.Pow and is not reported as an error.
type PowOp struct {
	Exponent float64
}

// NewPowOp creates a new PowOp with the given exponent.
func NewPowOp(exponent float64) PowOp {
	return PowOp{Exponent: exponent}
}

// Kind returns KindPow.
func (PowOp) Kind() Kind { return KindPow }

// Arity returns 1.
func (PowOp) Arity() int { return 1 }

// Forward returns x^Exponent.
func (op PowOp) Forward(inputs []float64) float64 {
	checkArity(op, inputs)
	return math.Pow(inputs[0], op.Exponent)
}

// Backward computes the input gradient from the operand value.
func (op PowOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	checkArity(op, inputs)
	x := inputs[0]
	return []float64{op.Exponent * math.Pow(x, op.Exponent-1) * outputGrad}
}

func (op PowOp) String() string {
	return "pow(" + strconv.FormatFloat(op.Exponent, 'g', -1, 64) + ")"
}

func (PowOp) sealed() {}
