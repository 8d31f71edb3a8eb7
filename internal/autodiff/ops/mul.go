package ops

// MulOp represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// NewMulOp creates a new MulOp.
func NewMulOp() MulOp {
	return MulOp{}
}

// Kind returns KindMul.
func (MulOp) Kind() Kind { return KindMul }

// Arity returns 2.
func (MulOp) Arity() int { return 2 }

// Forward returns a * b.
func (op MulOp) Forward(inputs []float64) float64 {
	checkArity(op, inputs)
	return inputs[0] * inputs[1]
}

// Backward computes input gradients for multiplication.
// Each operand receives the other operand's value scaled by outputGrad.
func (op MulOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	checkArity(op, inputs)
	a, b := inputs[0], inputs[1]
	return []float64{b * outputGrad, a * outputGrad}
}

func (MulOp) String() string { return "mul" }

func (MulOp) sealed() {}
