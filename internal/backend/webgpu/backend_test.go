//go:build windows

package webgpu

import (
	"math"
	"testing"

	"github.com/graphene-ml/graphene/internal/tensor"
)

const epsilon = 1e-5

func newGPUBackend(t *testing.T) *Backend {
	t.Helper()
	if !IsAvailable() {
		t.Skip("WebGPU not available on this system")
	}
	backend, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(backend.Release)
	return backend
}

func newRawFloat32(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.WebGPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsFloat32(), data)
	return raw
}

func float32SliceEqual(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > epsilon {
			return false
		}
	}
	return true
}

func TestGPUAdd(t *testing.T) {
	backend := newGPUBackend(t)

	a := newRawFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := newRawFloat32(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})

	result := backend.Add(a, b)
	if !float32SliceEqual(result.AsFloat32(), []float32{6, 8, 10, 12}) {
		t.Errorf("Add = %v, want [6 8 10 12]", result.AsFloat32())
	}
}

func TestGPUAdd_Broadcast(t *testing.T) {
	backend := newGPUBackend(t)

	a := newRawFloat32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	bias := newRawFloat32(t, []float32{10, 20, 30}, tensor.Shape{3})

	result := backend.Add(a, bias)
	if !float32SliceEqual(result.AsFloat32(), []float32{11, 22, 33, 14, 25, 36}) {
		t.Errorf("Add = %v, want [11 22 33 14 25 36]", result.AsFloat32())
	}
}

func TestGPUMatMul(t *testing.T) {
	backend := newGPUBackend(t)

	a := newRawFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := newRawFloat32(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})

	result := backend.MatMul(a, b)
	if !float32SliceEqual(result.AsFloat32(), []float32{19, 22, 43, 50}) {
		t.Errorf("MatMul = %v, want [19 22 43 50]", result.AsFloat32())
	}
}

func TestGPUReLU(t *testing.T) {
	backend := newGPUBackend(t)

	a := newRawFloat32(t, []float32{-1, 0, 2}, tensor.Shape{3})

	result := backend.ReLU(a)
	if !float32SliceEqual(result.AsFloat32(), []float32{0, 0, 2}) {
		t.Errorf("ReLU = %v, want [0 0 2]", result.AsFloat32())
	}
}

func TestGPUScalarOps(t *testing.T) {
	backend := newGPUBackend(t)

	a := newRawFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{4})

	if got := backend.MulScalar(a, 2).AsFloat32(); !float32SliceEqual(got, []float32{2, 4, 6, 8}) {
		t.Errorf("MulScalar = %v, want [2 4 6 8]", got)
	}
	if got := backend.AddScalar(a, 1).AsFloat32(); !float32SliceEqual(got, []float32{2, 3, 4, 5}) {
		t.Errorf("AddScalar = %v, want [2 3 4 5]", got)
	}
}
