// Package nn implements neural network modules for the Graphene framework.
//
// This package provides forward-pass building blocks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named parameter tensors marked for gradient tracking
//   - Linear: Fully connected layer
//   - Activations: ReLU, Sigmoid, Tanh
//   - Sequential: Container for stacking layers
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/graphene-ml/graphene/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all parameter tensors
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewSequential[Backend]().
//	    Add(nn.NewLinear(784, 128, backend)).
//	    Add(nn.NewReLU[Backend]()).
//	    Add(nn.NewLinear(128, 10, backend))
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input tensor should have the appropriate shape for this module;
	// for example, Linear expects [batch_size, in_features]. A shape that
	// violates the module's contract yields a *tensor.ShapeMismatchError.
	Forward(input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error)

	// Parameters returns all parameters of this module.
	//
	// This includes weights, biases, and any nested module parameters.
	// The returned tensors are live handles: mutating their data mutates
	// the module. Returns an empty slice for modules without parameters
	// (e.g., activation functions).
	Parameters() []*Parameter[B]
}
