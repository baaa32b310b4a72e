package nn_test

import (
	"testing"

	"github.com/graphene-ml/graphene/internal/backend/cpu"
	"github.com/graphene-ml/graphene/internal/nn"
	"github.com/graphene-ml/graphene/internal/tensor"
)

func TestSequential_Empty(t *testing.T) {
	backend := cpu.New()
	model := nn.NewSequential[*cpu.CPUBackend]()

	input, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	output, err := model.Forward(input)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if output == input {
		t.Error("empty Sequential should return a copy, not the input itself")
	}
	for i, v := range output.Data() {
		if v != input.Data()[i] {
			t.Errorf("output[%d] = %f, want %f", i, v, input.Data()[i])
		}
	}
	if len(model.Parameters()) != 0 {
		t.Error("empty Sequential should have no parameters")
	}

	// The returned copy owns its storage: writes must not reach the input.
	output.Data()[0] = 99
	if input.At(0) != 1 {
		t.Errorf("input At(0) = %f after writing to the output, want 1", input.At(0))
	}
}

func TestSequential_Forward(t *testing.T) {
	backend := cpu.New()

	l1 := nn.NewLinearWithOptions(2, 2, backend, false)
	copy(l1.Weight().Tensor().Data(), []float32{1, -1, 1, -1})

	model := nn.NewSequential[*cpu.CPUBackend](
		l1,
		nn.NewReLU[*cpu.CPUBackend](),
	)

	input, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{1, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	output, err := model.Forward(input)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	// x @ W = [3, -3], ReLU -> [3, 0]
	got := output.Data()
	if !floatEqual(got[0], 3) || !floatEqual(got[1], 0) {
		t.Errorf("Forward = %v, want [3 0]", got)
	}
}

func TestSequential_Add(t *testing.T) {
	backend := cpu.New()

	model := nn.NewSequential[*cpu.CPUBackend]().
		Add(nn.NewLinear(4, 3, backend)).
		Add(nn.NewReLU[*cpu.CPUBackend]()).
		Add(nn.NewLinear(3, 2, backend))

	if model.Len() != 3 {
		t.Errorf("Len() = %d, want 3", model.Len())
	}

	input := tensor.Ones[float32](tensor.Shape{5, 4}, backend)
	output, err := model.Forward(input)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if !output.Shape().Equal(tensor.Shape{5, 2}) {
		t.Errorf("output shape = %v, want [5 2]", output.Shape())
	}
}

func TestSequential_Parameters(t *testing.T) {
	backend := cpu.New()

	l1 := nn.NewLinear(4, 3, backend)
	l2 := nn.NewLinear(3, 2, backend)
	model := nn.NewSequential[*cpu.CPUBackend](l1, nn.NewReLU[*cpu.CPUBackend](), l2)

	params := model.Parameters()
	if len(params) != 4 {
		t.Fatalf("Parameters() length = %d, want 4", len(params))
	}

	// Insertion order: l1 weight, l1 bias, l2 weight, l2 bias.
	if params[0] != l1.Weight() || params[1] != l1.Bias() {
		t.Error("first layer parameters out of order")
	}
	if params[2] != l2.Weight() || params[3] != l2.Bias() {
		t.Error("second layer parameters out of order")
	}
}

func TestSequential_ErrorPropagation(t *testing.T) {
	backend := cpu.New()

	model := nn.NewSequential[*cpu.CPUBackend](
		nn.NewLinear(4, 3, backend),
		nn.NewLinear(5, 2, backend), // expects 5 features, gets 3
	)

	input := tensor.Ones[float32](tensor.Shape{1, 4}, backend)
	if _, err := model.Forward(input); err == nil {
		t.Fatal("Forward should propagate the inner module's shape error")
	}
}

func TestSequential_Module(t *testing.T) {
	backend := cpu.New()

	l1 := nn.NewLinear(2, 2, backend)
	model := nn.NewSequential[*cpu.CPUBackend](l1)

	if model.Module(0) != nn.Module[*cpu.CPUBackend](l1) {
		t.Error("Module(0) should return the first module")
	}

	defer func() {
		if recover() == nil {
			t.Error("Module with out-of-bounds index should panic")
		}
	}()
	model.Module(5)
}
