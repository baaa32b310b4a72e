package cpu

import (
	"fmt"

	"github.com/graphene-ml/graphene/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
// The scalar arrives as float64 and is narrowed to the tensor's dtype.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar,
		func(v float32, s float32) float32 { return v + s },
		func(v float64, s float64) float64 { return v + s })
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar,
		func(v float32, s float32) float32 { return v - s },
		func(v float64, s float64) float64 { return v - s })
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar,
		func(v float32, s float32) float32 { return v * s },
		func(v float64, s float64) float64 { return v * s })
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar,
		func(v float32, s float32) float32 { return v / s },
		func(v float64, s float64) float64 { return v / s })
}

func (cpu *CPUBackend) scalarOp(
	op string,
	x *tensor.RawTensor,
	scalar float64,
	f32 func(v, s float32) float32,
	f64 func(v, s float64) float64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		s := float32(scalar)
		for i := range dst {
			dst[i] = f32(src[i], s)
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i := range dst {
			dst[i] = f64(src[i], scalar)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", op, x.DType()))
	}

	return result
}
