package tensor

import (
	"errors"
	"testing"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // Scalar
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShape_Validate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() on valid shape returned error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate() should reject zero dimension")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("Validate() should reject negative dimension")
	}
}

func TestShape_Equal(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("Equal shapes reported as unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("Different shapes reported as equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("Shapes of different rank reported as equal")
	}
}

func TestShape_ComputeStrides(t *testing.T) {
	strides := (Shape{2, 3, 4}).ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ComputeStrides() = %v, want %v", strides, want)
			break
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name           string
		a, b           Shape
		want           Shape
		needsBroadcast bool
	}{
		{"SameShape", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{"ColumnPlusMatrix", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{"MatrixPlusVector", Shape{2, 4}, Shape{4}, Shape{2, 4}, true},
		{"VectorPlusMatrix", Shape{4}, Shape{2, 4}, Shape{2, 4}, true},
		{"ScalarLike", Shape{1}, Shape{3, 5}, Shape{3, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, needs, err := BroadcastShapes(tt.a, tt.b)
			if err != nil {
				t.Fatalf("BroadcastShapes(%v, %v) error: %v", tt.a, tt.b, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if needs != tt.needsBroadcast {
				t.Errorf("needsBroadcast = %v, want %v", needs, tt.needsBroadcast)
			}
		})
	}
}

func TestBroadcastShapes_Incompatible(t *testing.T) {
	_, _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	if err == nil {
		t.Fatal("BroadcastShapes should fail for incompatible shapes")
	}

	var mismatch *ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type = %T, want *ShapeMismatchError", err)
	}
	if !mismatch.Left.Equal(Shape{3, 4}) || !mismatch.Right.Equal(Shape{3, 5}) {
		t.Errorf("mismatch shapes = %v, %v; want [3 4], [3 5]", mismatch.Left, mismatch.Right)
	}
}
