package tensor_test

import (
	"testing"

	"github.com/graphene-ml/graphene/internal/backend/cpu"
	"github.com/graphene-ml/graphene/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if !x.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape = %v, want [2 3]", x.Shape())
	}
	if x.DType() != tensor.Float32 {
		t.Errorf("DType = %v, want Float32", x.DType())
	}
	if x.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %f, want 6", x.At(1, 2))
	}

	// The slice is copied, not aliased
	data[0] = 100
	if x.At(0, 0) != 1 {
		t.Error("FromSlice should copy the input slice")
	}
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	backend := cpu.New()

	_, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 3}, backend)
	if err == nil {
		t.Fatal("FromSlice should fail when slice length does not match shape")
	}
}

func TestZerosOnesFull(t *testing.T) {
	backend := cpu.New()

	zeros := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
	for i, v := range zeros.Data() {
		if v != 0 {
			t.Fatalf("Zeros: element %d = %f, want 0", i, v)
		}
	}

	ones := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	for i, v := range ones.Data() {
		if v != 1 {
			t.Fatalf("Ones: element %d = %f, want 1", i, v)
		}
	}

	full := tensor.Full[float32](tensor.Shape{4}, 2.5, backend)
	for i, v := range full.Data() {
		if v != 2.5 {
			t.Fatalf("Full: element %d = %f, want 2.5", i, v)
		}
	}
}

func TestRand_Range(t *testing.T) {
	backend := cpu.New()

	x := tensor.Rand[float32](tensor.Shape{100}, backend)
	for i, v := range x.Data() {
		if v < 0 || v >= 1 {
			t.Fatalf("Rand: element %d = %f, want [0, 1)", i, v)
		}
	}
}

func TestEye(t *testing.T) {
	backend := cpu.New()

	eye := tensor.Eye[float32](3, backend)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if eye.At(i, j) != want {
				t.Errorf("Eye(3)[%d,%d] = %f, want %f", i, j, eye.At(i, j), want)
			}
		}
	}
}

func TestArange(t *testing.T) {
	backend := cpu.New()

	x := tensor.Arange[float32](5, backend)
	for i, v := range x.Data() {
		if v != float32(i) {
			t.Errorf("Arange(5)[%d] = %f, want %d", i, v, i)
		}
	}
}

func TestLinspace(t *testing.T) {
	backend := cpu.New()

	x := tensor.Linspace[float64](0, 1, 5, backend)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, v := range x.Data() {
		if v != want[i] {
			t.Errorf("Linspace(0, 1, 5)[%d] = %f, want %f", i, v, want[i])
		}
	}
}

func TestTensor_SetAt(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
	x.Set(5, 1, 0)

	if x.At(1, 0) != 5 {
		t.Errorf("At(1, 0) = %f, want 5", x.At(1, 0))
	}
	if x.At(0, 1) != 0 {
		t.Errorf("At(0, 1) = %f, want 0", x.At(0, 1))
	}
}

func TestTensor_Item(t *testing.T) {
	backend := cpu.New()

	x := tensor.Full[float32](tensor.Shape{1}, 42, backend)
	if x.Item() != 42 {
		t.Errorf("Item() = %f, want 42", x.Item())
	}
}

func TestTensor_Clone(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	y := x.Clone()

	if !y.Shape().Equal(x.Shape()) {
		t.Errorf("Clone shape = %v, want %v", y.Shape(), x.Shape())
	}
	for i := range x.Data() {
		if y.Data()[i] != x.Data()[i] {
			t.Errorf("Clone data differs at %d", i)
		}
	}
}

func TestTensor_Clone_IndependentStorage(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	y := x.Clone()

	// Writing through the clone must not reach the source.
	y.Data()[0] = 99
	if x.At(0) != 1 {
		t.Errorf("source At(0) = %f after clone write, want 1", x.At(0))
	}

	// And writing through the source must not reach the clone.
	z := x.Clone()
	x.Data()[1] = -5
	if z.At(1) != 2 {
		t.Errorf("clone At(1) = %f after source write, want 2", z.At(1))
	}
}

func TestTensor_RequireGrad(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{2}, backend)
	if x.RequiresGrad() {
		t.Error("new tensor should not require gradients")
	}

	y := x.RequireGrad()
	if y != x {
		t.Error("RequireGrad should return the receiver for chaining")
	}
	if !x.RequiresGrad() {
		t.Error("RequireGrad should mark the tensor")
	}

	// The flag survives Clone
	if !x.Clone().RequiresGrad() {
		t.Error("Clone should preserve the gradient flag")
	}
}

func TestTensor_Float64(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1.5, 2.5}, tensor.Shape{2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if x.DType() != tensor.Float64 {
		t.Errorf("DType = %v, want Float64", x.DType())
	}
	if x.At(1) != 2.5 {
		t.Errorf("At(1) = %f, want 2.5", x.At(1))
	}
}
