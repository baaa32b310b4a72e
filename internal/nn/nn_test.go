package nn_test

import (
	"errors"
	"math"
	"testing"

	"github.com/graphene-ml/graphene/internal/backend/cpu"
	"github.com/graphene-ml/graphene/internal/nn"
	"github.com/graphene-ml/graphene/internal/tensor"
)

const epsilon = 1e-5

func floatEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestParameter(t *testing.T) {
	backend := cpu.New()

	w := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
	param := nn.NewParameter("weight", w)

	if param.Name() != "weight" {
		t.Errorf("Name() = %q, want \"weight\"", param.Name())
	}
	if param.Tensor() != w {
		t.Error("Tensor() should return the wrapped tensor")
	}
	if !param.Tensor().RequiresGrad() {
		t.Error("parameter tensors should be marked for gradient tracking")
	}
}

func TestLinear_Creation(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(784, 128, backend)

	if layer.InFeatures() != 784 {
		t.Errorf("InFeatures() = %d, want 784", layer.InFeatures())
	}
	if layer.OutFeatures() != 128 {
		t.Errorf("OutFeatures() = %d, want 128", layer.OutFeatures())
	}

	weight := layer.Weight().Tensor()
	if !weight.Shape().Equal(tensor.Shape{784, 128}) {
		t.Errorf("weight shape = %v, want [784 128]", weight.Shape())
	}

	// He initialization draws from [0, sqrt(2/fan_in))
	scale := float32(math.Sqrt(2.0 / 784.0))
	for i, v := range weight.Data() {
		if v < 0 || v >= scale {
			t.Fatalf("weight[%d] = %f, want [0, %f)", i, v, scale)
		}
	}

	bias := layer.Bias().Tensor()
	if !bias.Shape().Equal(tensor.Shape{128}) {
		t.Errorf("bias shape = %v, want [128]", bias.Shape())
	}
	for i, v := range bias.Data() {
		if v != 0 {
			t.Fatalf("bias[%d] = %f, want 0", i, v)
		}
	}

	if len(layer.Parameters()) != 2 {
		t.Errorf("Parameters() length = %d, want 2", len(layer.Parameters()))
	}
}

func TestLinear_NoBias(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinearWithOptions(4, 2, backend, false)

	if layer.Bias() != nil {
		t.Error("Bias() should be nil when bias is disabled")
	}
	if len(layer.Parameters()) != 1 {
		t.Errorf("Parameters() length = %d, want 1", len(layer.Parameters()))
	}
}

func TestLinear_Forward(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(2, 2, backend)

	// W = [[1, 2], [3, 4]], b = [0.5, 1]
	copy(layer.Weight().Tensor().Data(), []float32{1, 2, 3, 4})
	copy(layer.Bias().Tensor().Data(), []float32{0.5, 1})

	input, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{1, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	output, err := layer.Forward(input)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	// y = x @ W + b = [1+3, 2+4] + [0.5, 1] = [4.5, 7]
	if !output.Shape().Equal(tensor.Shape{1, 2}) {
		t.Fatalf("output shape = %v, want [1 2]", output.Shape())
	}
	got := output.Data()
	if !floatEqual(got[0], 4.5) || !floatEqual(got[1], 7) {
		t.Errorf("Forward = %v, want [4.5 7]", got)
	}
	if !output.RequiresGrad() {
		t.Error("output should be gradient-tracked through the parameters")
	}
}

func TestLinear_Forward_Batch(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinearWithOptions(3, 2, backend, false)
	copy(layer.Weight().Tensor().Data(), []float32{1, 0, 0, 1, 1, 1})

	input, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	output, err := layer.Forward(input)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	// W = [[1,0],[0,1],[1,1]]: y = [x0+x2, x1+x2]
	want := []float32{4, 5, 10, 11}
	for i, v := range output.Data() {
		if !floatEqual(v, want[i]) {
			t.Errorf("Forward[%d] = %f, want %f", i, v, want[i])
		}
	}
}

func TestLinear_Forward_ShapeMismatch(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(4, 2, backend)
	input := tensor.Zeros[float32](tensor.Shape{1, 3}, backend)

	_, err := layer.Forward(input)
	if err == nil {
		t.Fatal("Forward should fail when input features do not match")
	}

	var mismatch *tensor.ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type = %T, want *ShapeMismatchError", err)
	}
}

func TestHeUniform(t *testing.T) {
	backend := cpu.New()

	w := nn.HeUniform(50, tensor.Shape{50, 10}, backend)
	scale := float32(math.Sqrt(2.0 / 50.0))

	for i, v := range w.Data() {
		if v < 0 || v >= scale {
			t.Fatalf("HeUniform[%d] = %f, want [0, %f)", i, v, scale)
		}
	}

	// Initialization alone does not mark tensors; NewParameter does.
	if w.RequiresGrad() {
		t.Error("HeUniform should not mark tensors for gradient tracking")
	}
}
