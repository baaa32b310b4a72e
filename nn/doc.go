// Copyright 2026 Graphene ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: ReLU, Sigmoid, Tanh
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: HeUniform, Xavier, Zeros, Ones, Randn
//
// # Basic Usage
//
//	import (
//	    "github.com/graphene-ml/graphene/nn"
//	    "github.com/graphene-ml/graphene/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Build a simple MLP
//	    model := nn.NewSequential(
//	        nn.NewLinear(784, 128, backend),
//	        nn.NewReLU[*cpu.Backend](),
//	        nn.NewLinear(128, 10, backend),
//	    )
//
//	    // Forward pass
//	    output, err := model.Forward(input)
//	}
//
// # Layers
//
// Linear: Fully connected layer with He initialization
//
//	layer := nn.NewLinear(inFeatures, outFeatures, backend)
//	layer := nn.NewLinearWithOptions(inFeatures, outFeatures, backend, false) // no bias
//
// # Activations
//
// Common activation functions:
//
//	relu := nn.NewReLU[B]()
//	sigmoid := nn.NewSigmoid[B]()
//	tanh := nn.NewTanh[B]()
//
// # Sequential Models
//
// Build models by composing layers, either at construction or fluently:
//
//	model := nn.NewSequential[B]().
//	    Add(nn.NewLinear(784, 256, backend)).
//	    Add(nn.NewReLU[B]()).
//	    Add(nn.NewLinear(256, 10, backend))
//
// An empty Sequential is the identity transformation.
//
// # Error Handling
//
// Forward returns an explicit error. A shape that violates a module's
// contract produces a *tensor.ShapeMismatchError; containers stop at the
// first failing module.
//
// # Parameter Management
//
// Access model parameters:
//
//	params := model.Parameters()
//	for _, param := range params {
//	    fmt.Println(param.Name(), param.Tensor().Shape())
//	}
//
// Parameters are live handles: writing through Tensor().Data() updates the
// module, which is how pre-trained weights are loaded.
package nn
