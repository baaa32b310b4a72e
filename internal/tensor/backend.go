package tensor

// Backend defines the computation backend interface.
// Implementations execute the actual kernels on specific devices
// (CPU, WebGPU, etc.).
//
// Backends operate on RawTensors and assume their inputs already satisfy the
// operation's shape contract; validation happens at the Tensor layer. A
// backend that receives inconsistent raw tensors may panic.
type Backend interface {
	// Name returns the backend identifier (e.g., "cpu", "webgpu").
	Name() string

	// Device returns the device this backend computes on.
	Device() Device

	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul computes the 2-D matrix product [m, k] x [k, n] -> [m, n].
	MatMul(a, b *RawTensor) *RawTensor

	// Scalar operations: the scalar is applied to every element.
	AddScalar(a *RawTensor, scalar float64) *RawTensor
	SubScalar(a *RawTensor, scalar float64) *RawTensor
	MulScalar(a *RawTensor, scalar float64) *RawTensor
	DivScalar(a *RawTensor, scalar float64) *RawTensor

	// Element-wise activation functions.
	ReLU(a *RawTensor) *RawTensor
	Sigmoid(a *RawTensor) *RawTensor
	Tanh(a *RawTensor) *RawTensor

	// Transpose swaps the two dimensions of a rank-2 tensor.
	Transpose(a *RawTensor) *RawTensor

	// Reshape returns a tensor with the same data and a new shape.
	// The number of elements must be preserved.
	Reshape(a *RawTensor, shape Shape) *RawTensor
}
