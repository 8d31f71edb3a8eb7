package ops

// AddOp represents scalar addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// NewAddOp creates a new AddOp.
func NewAddOp() AddOp {
	return AddOp{}
}

// Kind returns KindAdd.
func (AddOp) Kind() Kind { return KindAdd }

// Arity returns 2.
func (AddOp) Arity() int { return 2 }

// Forward returns a + b.
func (op AddOp) Forward(inputs []float64) float64 {
	checkArity(op, inputs)
	return inputs[0] + inputs[1]
}

// Backward passes the output gradient through to both operands unchanged.
func (op AddOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	checkArity(op, inputs)
	return []float64{outputGrad, outputGrad}
}

func (AddOp) String() string { return "add" }

func (AddOp) sealed() {}
