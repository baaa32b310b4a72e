package nn

import (
	"github.com/graphene-ml/graphene/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// The weight is stored input-major so the forward pass needs no transpose.
// Weights are initialized with He (Kaiming) scaling, which suits the ReLU
// layers this substrate stacks them with. Biases are initialized to zeros.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 128, backend)
//
//	input := tensor.Randn[float32](tensor.Shape{32, 784}, backend)
//	output, err := layer.Forward(input) // shape: [32, 128]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B] // [in_features, out_features]
	bias        *Parameter[B] // [out_features], nil when bias is disabled
	backend     B
}

// NewLinear creates a new Linear layer with a bias vector.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return NewLinearWithOptions(inFeatures, outFeatures, backend, true)
}

// NewLinearWithOptions creates a new Linear layer, optionally without bias.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//   - backend: Backend to use for tensor operations
//   - useBias: Whether the layer carries a bias vector
func NewLinearWithOptions[B tensor.Backend](inFeatures, outFeatures int, backend B, useBias bool) *Linear[B] {
	// Weight: [in_features, out_features]
	weightShape := tensor.Shape{inFeatures, outFeatures}
	weight := NewParameter("weight", HeUniform(inFeatures, weightShape, backend))

	var bias *Parameter[B]
	if useBias {
		bias = NewParameter("bias", Zeros(tensor.Shape{outFeatures}, backend))
	}

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}
}

// Forward computes the output of the linear layer.
//
// Performs: y = x @ W + b
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// Returns a *tensor.ShapeMismatchError when the input is not rank 2 with
// in_features columns.
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	// [batch_size, in_features] @ [in_features, out_features] = [batch_size, out_features]
	output, err := input.MatMul(l.weight.Tensor())
	if err != nil {
		return nil, err
	}

	if l.bias != nil {
		// Bias [out_features] broadcasts across the batch dimension.
		output, err = output.Add(l.bias.Tensor())
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// Parameters returns [weight, bias] if bias is present, otherwise [weight].
func (l *Linear[B]) Parameters() []*Parameter[B] {
	if l.bias != nil {
		return []*Parameter[B]{l.weight, l.bias}
	}
	return []*Parameter[B]{l.weight}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter, or nil when bias is disabled.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
