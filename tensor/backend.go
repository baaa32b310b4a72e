// Copyright 2026 Graphene ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/graphene-ml/graphene/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go with chunked parallel kernels
//   - backend/webgpu: Cross-platform GPU compute via WebGPU (Windows)
//
// Backends operate on RawTensors that already satisfy the operation's shape
// contract; validation happens at the Tensor layer.
//
// Example:
//
//	import (
//	    "github.com/graphene-ml/graphene/tensor"
//	    "github.com/graphene-ml/graphene/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z, err := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor // 2-D matrix multiplication.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar float64) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar float64) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar float64) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar float64) *RawTensor // Divide by scalar.

	// Activation functions (element-wise).
	ReLU(x *RawTensor) *RawTensor    // max(0, x).
	Sigmoid(x *RawTensor) *RawTensor // 1 / (1 + exp(-x)).
	Tanh(x *RawTensor) *RawTensor    // Hyperbolic tangent.

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Transpose(t *RawTensor) *RawTensor               // Swap rank-2 dimensions.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "WebGPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
