package ops

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if output > 0, else 0
//
// The mask is taken from the output rather than the input, so an input of
// exactly zero blocks the gradient.
type ReLUOp struct{}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp() ReLUOp {
	return ReLUOp{}
}

// Kind returns KindReLU.
func (ReLUOp) Kind() Kind { return KindReLU }

// Arity returns 1.
func (ReLUOp) Arity() int { return 1 }

// Forward returns x if x > 0, else 0.
func (op ReLUOp) Forward(inputs []float64) float64 {
	checkArity(op, inputs)
	if x := inputs[0]; x > 0 {
		return x
	}
	return 0
}

// Backward computes input gradient for ReLU.
func (op ReLUOp) Backward(outputGrad, output float64, inputs []float64) []float64 {
	checkArity(op, inputs)
	if output > 0 {
		return []float64{outputGrad}
	}
	return []float64{0}
}

func (ReLUOp) String() string { return "relu" }

func (ReLUOp) sealed() {}
