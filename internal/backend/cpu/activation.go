package cpu

import (
	"fmt"
	"math"

	"github.com/graphene-ml/graphene/internal/tensor"
)

// Element-wise activation functions.

// ReLU computes max(0, x) element-wise.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("relu", x,
		func(v float32) float32 {
			if v > 0 {
				return v
			}
			return 0
		},
		func(v float64) float64 {
			if v > 0 {
				return v
			}
			return 0
		})
}

// Sigmoid computes 1 / (1 + exp(-x)) element-wise.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("sigmoid", x,
		func(v float32) float32 {
			return float32(1 / (1 + math.Exp(-float64(v))))
		},
		func(v float64) float64 {
			return 1 / (1 + math.Exp(-v))
		})
}

// Tanh computes the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("tanh", x,
		func(v float32) float32 {
			return float32(math.Tanh(float64(v)))
		},
		func(v float64) float64 {
			return math.Tanh(v)
		})
}

func (cpu *CPUBackend) unaryOp(
	op string,
	x *tensor.RawTensor,
	f32 func(v float32) float32,
	f64 func(v float64) float64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i := range dst {
			dst[i] = f32(src[i])
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i := range dst {
			dst[i] = f64(src[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", op, x.DType()))
	}

	return result
}
