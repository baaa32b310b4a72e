//go:build windows

package webgpu

import (
	"fmt"

	"github.com/graphene-ml/graphene/internal/tensor"
)

// Add performs element-wise addition on GPU.
func (b *Backend) Add(a, other *tensor.RawTensor) *tensor.RawTensor {
	a, other = materializeBroadcast("add", a, other)
	result, err := b.runBinaryOp(a, other, "add", addShader)
	if err != nil {
		panic("webgpu: Add: " + err.Error())
	}
	return result
}

// Sub performs element-wise subtraction on GPU.
func (b *Backend) Sub(a, other *tensor.RawTensor) *tensor.RawTensor {
	a, other = materializeBroadcast("sub", a, other)
	result, err := b.runBinaryOp(a, other, "sub", subShader)
	if err != nil {
		panic("webgpu: Sub: " + err.Error())
	}
	return result
}

// Mul performs element-wise multiplication on GPU.
func (b *Backend) Mul(a, other *tensor.RawTensor) *tensor.RawTensor {
	a, other = materializeBroadcast("mul", a, other)
	result, err := b.runBinaryOp(a, other, "mul", mulShader)
	if err != nil {
		panic("webgpu: Mul: " + err.Error())
	}
	return result
}

// Div performs element-wise division on GPU.
func (b *Backend) Div(a, other *tensor.RawTensor) *tensor.RawTensor {
	a, other = materializeBroadcast("div", a, other)
	result, err := b.runBinaryOp(a, other, "div", divShader)
	if err != nil {
		panic("webgpu: Div: " + err.Error())
	}
	return result
}

// MatMul performs matrix multiplication on GPU.
func (b *Backend) MatMul(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runMatMul(a, other)
	if err != nil {
		panic("webgpu: MatMul: " + err.Error())
	}
	return result
}

// AddScalar adds a scalar to every element on GPU.
func (b *Backend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result, err := b.runScalarOp(x, scalar, "addScalar", addScalarShader)
	if err != nil {
		panic("webgpu: AddScalar: " + err.Error())
	}
	return result
}

// SubScalar subtracts a scalar from every element on GPU.
func (b *Backend) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result, err := b.runScalarOp(x, scalar, "subScalar", subScalarShader)
	if err != nil {
		panic("webgpu: SubScalar: " + err.Error())
	}
	return result
}

// MulScalar multiplies every element by a scalar on GPU.
func (b *Backend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result, err := b.runScalarOp(x, scalar, "mulScalar", mulScalarShader)
	if err != nil {
		panic("webgpu: MulScalar: " + err.Error())
	}
	return result
}

// DivScalar divides every element by a scalar on GPU.
func (b *Backend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result, err := b.runScalarOp(x, scalar, "divScalar", divScalarShader)
	if err != nil {
		panic("webgpu: DivScalar: " + err.Error())
	}
	return result
}

// ReLU applies ReLU activation: max(0, x).
func (b *Backend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "relu", reluShader)
	if err != nil {
		panic("webgpu: ReLU: " + err.Error())
	}
	return result
}

// Sigmoid applies sigmoid activation: 1 / (1 + exp(-x)).
func (b *Backend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "sigmoid", sigmoidShader)
	if err != nil {
		panic("webgpu: Sigmoid: " + err.Error())
	}
	return result
}

// Tanh applies tanh activation.
func (b *Backend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "tanh", tanhShader)
	if err != nil {
		panic("webgpu: Tanh: " + err.Error())
	}
	return result
}

// Reshape returns a tensor with new shape.
func (b *Backend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic("webgpu: reshape: invalid shape: " + err.Error())
	}

	if t.NumElements() != newShape.NumElements() {
		panic("webgpu: reshape: incompatible number of elements")
	}

	result, err := tensor.NewRaw(newShape, t.DType(), tensor.WebGPU)
	if err != nil {
		panic("webgpu: reshape: " + err.Error())
	}

	copy(result.Data(), t.Data())
	return result
}

// Transpose swaps the two dimensions of a rank-2 tensor on GPU.
func (b *Backend) Transpose(t *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runTranspose(t)
	if err != nil {
		panic("webgpu: Transpose: " + err.Error())
	}
	return result
}

// materializeBroadcast expands both operands to their common broadcast shape.
// The element-wise shaders index both arrays linearly, so broadcast operands
// are gathered into contiguous buffers on the host before upload.
func materializeBroadcast(op string, a, b *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor) {
	if a.Shape().Equal(b.Shape()) {
		return a, b
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("webgpu: %s: %v", op, err))
	}

	return expandToShape(a, outShape), expandToShape(b, outShape)
}

// expandToShape gathers src into a contiguous tensor of the given broadcast
// shape. Returns src unchanged when no expansion is needed.
func expandToShape(src *tensor.RawTensor, outShape tensor.Shape) *tensor.RawTensor {
	if src.Shape().Equal(outShape) {
		return src
	}

	result, err := tensor.NewRaw(outShape, src.DType(), src.Device())
	if err != nil {
		panic("webgpu: broadcast expand: " + err.Error())
	}

	outStrides := outShape.ComputeStrides()
	srcStrides := broadcastStrides(src.Shape(), outShape)

	srcData := src.AsFloat32()
	dstData := result.AsFloat32()

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		srcIdx := 0
		rem := i
		for d := range outStrides {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			srcIdx += coord * srcStrides[d]
		}
		dstData[i] = srcData[srcIdx]
	}

	return result
}

// broadcastStrides returns strides for indexing src as if it had outShape,
// with stride 0 on broadcast dimensions.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}
