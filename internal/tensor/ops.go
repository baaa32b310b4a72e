package tensor

// Binary operations validate shapes at this layer and return a
// *ShapeMismatchError on incompatible operands; backends only ever see
// operands that satisfy the contract.
//
// Gradient intent propagates through every operation: the result of a binary
// op requires gradients when either operand does, and a unary op preserves
// its operand's flag.

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	c, err := a.Add(b) // c[i] = a[i] + b[i]
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := validateSameOrBroadcastable("add", t.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return t.binaryOp(other, t.backend.Add(t.raw, other.raw)), nil
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := validateSameOrBroadcastable("sub", t.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return t.binaryOp(other, t.backend.Sub(t.raw, other.raw)), nil
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := validateSameOrBroadcastable("mul", t.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return t.binaryOp(other, t.backend.Mul(t.raw, other.raw)), nil
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := validateSameOrBroadcastable("div", t.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return t.binaryOp(other, t.backend.Div(t.raw, other.raw)), nil
}

// MatMul performs 2-D matrix multiplication: [m, k] x [k, n] -> [m, n].
//
// Both operands must be rank 2 and the inner dimensions must agree;
// otherwise a *ShapeMismatchError is returned.
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := validateMatMul(t.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return t.binaryOp(other, t.backend.MatMul(t.raw, other.raw)), nil
}

// AddScalar adds a scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	return t.unaryOp(t.backend.AddScalar(t.raw, float64(scalar)))
}

// SubScalar subtracts a scalar from every element.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	return t.unaryOp(t.backend.SubScalar(t.raw, float64(scalar)))
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	return t.unaryOp(t.backend.MulScalar(t.raw, float64(scalar)))
}

// DivScalar divides every element by a scalar.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	return t.unaryOp(t.backend.DivScalar(t.raw, float64(scalar)))
}

// ReLU applies the rectified linear unit element-wise: max(0, x).
func (t *Tensor[T, B]) ReLU() *Tensor[T, B] {
	return t.unaryOp(t.backend.ReLU(t.raw))
}

// Sigmoid applies the logistic function element-wise: 1 / (1 + exp(-x)).
func (t *Tensor[T, B]) Sigmoid() *Tensor[T, B] {
	return t.unaryOp(t.backend.Sigmoid(t.raw))
}

// Tanh applies the hyperbolic tangent element-wise.
func (t *Tensor[T, B]) Tanh() *Tensor[T, B] {
	return t.unaryOp(t.backend.Tanh(t.raw))
}

// Transpose swaps the two dimensions of a rank-2 tensor.
func (t *Tensor[T, B]) Transpose() (*Tensor[T, B], error) {
	if len(t.Shape()) != 2 {
		return nil, &ShapeMismatchError{Op: "transpose", Left: t.Shape().Clone(), Right: nil}
	}
	return t.unaryOp(t.backend.Transpose(t.raw)), nil
}

// Reshape returns a tensor with the same data and a new shape.
// The total number of elements must be preserved.
func (t *Tensor[T, B]) Reshape(shape Shape) (*Tensor[T, B], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != t.NumElements() {
		return nil, &ShapeMismatchError{Op: "reshape", Left: t.Shape().Clone(), Right: shape.Clone()}
	}
	return t.unaryOp(t.backend.Reshape(t.raw, shape)), nil
}

// binaryOp wraps a backend result, OR-ing the gradient flags of both operands.
func (t *Tensor[T, B]) binaryOp(other *Tensor[T, B], raw *RawTensor) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:          raw,
		backend:      t.backend,
		requiresGrad: t.requiresGrad || other.requiresGrad,
	}
}

// unaryOp wraps a backend result, preserving the operand's gradient flag.
func (t *Tensor[T, B]) unaryOp(raw *RawTensor) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:          raw,
		backend:      t.backend,
		requiresGrad: t.requiresGrad,
	}
}
