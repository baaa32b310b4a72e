// Copyright 2026 Graphene ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Graphene framework.
//
// # Overview
//
// Tensors are the fundamental data structure in Graphene. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Shape-validated operations with typed errors
//   - Device abstraction (CPU, WebGPU)
//
// # Basic Usage
//
//	import (
//	    "github.com/graphene-ml/graphene/tensor"
//	    "github.com/graphene-ml/graphene/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z, err := x.Add(y)
//	    if err != nil {
//	        // *tensor.ShapeMismatchError carries both operand shapes
//	    }
//	}
//
// # Supported Data Types
//
// The tensor package supports floating-point types via the DType constraint:
//   - float32 (the working dtype of the nn package)
//   - float64 (for numerical verification)
//
// # Error Handling
//
// Operations whose validity depends on operand shapes (Add, Sub, Mul, Div,
// MatMul, Transpose, Reshape) return an explicit error. Incompatible shapes
// produce a *ShapeMismatchError naming the operation and both shapes:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 4}, backend)
//	b := tensor.Zeros[float32](tensor.Shape{3, 5}, backend)
//	_, err := a.Add(b)
//	var mismatch *tensor.ShapeMismatchError
//	if errors.As(err, &mismatch) {
//	    fmt.Println(mismatch.Left, mismatch.Right)
//	}
//
// # Broadcasting
//
// Element-wise binary operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)     // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)      // (3, 4)
//	c, _ := a.Add(b)                                            // (3, 4)
//
// # Gradient Intent
//
// Tensors carry a requires-grad flag set via RequireGrad(). The flag
// propagates through operations (binary results require gradients when either
// operand does) but no backward pass is performed; it records intent for
// later training infrastructure.
package tensor
