package nn

import (
	"github.com/graphene-ml/graphene/internal/tensor"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input, creating a
// sequential pipeline of transformations. An empty Sequential acts as the
// identity: Forward returns a copy of its input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(128, 10, backend),
//	)
//
//	output, err := model.Forward(input)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a new Sequential container from the given modules.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{
		modules: modules,
	}
}

// Forward applies all modules in order, feeding each output to the next
// module. Evaluation stops at the first module that fails and its error is
// returned.
//
// An empty Sequential returns a copy of the input.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	if len(s.modules) == 0 {
		return input.Clone(), nil
	}

	output := input
	for _, module := range s.modules {
		var err error
		output, err = module.Forward(output)
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// Parameters returns all parameters from all modules, in insertion order.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]

	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}

	return params
}

// Add appends a module to the sequence and returns the container, so models
// can be built fluently:
//
//	model := nn.NewSequential[Backend]().
//	    Add(nn.NewLinear(784, 128, backend)).
//	    Add(nn.NewReLU[Backend]()).
//	    Add(nn.NewLinear(128, 10, backend))
func (s *Sequential[B]) Add(module Module[B]) *Sequential[B] {
	s.modules = append(s.modules, module)
	return s
}

// Len returns the number of modules in the sequence.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
// Panics if index is out of bounds.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
