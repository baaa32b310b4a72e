package tensor

import "fmt"

// ShapeMismatchError reports two tensor shapes that are incompatible for an
// operation. It is returned (never panicked) by shape-validated operations so
// callers can inspect both operand shapes.
type ShapeMismatchError struct {
	Op    string // Operation that failed (e.g., "add", "matmul").
	Left  Shape  // Shape of the left operand.
	Right Shape  // Shape of the right operand.
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: incompatible shapes %v and %v", e.Op, e.Left, e.Right)
}

// validateSameOrBroadcastable checks that a and b may be combined element-wise
// under the broadcasting contract, attributing any failure to op.
func validateSameOrBroadcastable(op string, a, b Shape) error {
	if _, _, err := BroadcastShapes(a, b); err != nil {
		return &ShapeMismatchError{Op: op, Left: a.Clone(), Right: b.Clone()}
	}
	return nil
}

// validateMatMul checks the 2-D matrix product contract: both operands are
// rank 2 and the inner dimensions agree.
func validateMatMul(a, b Shape) error {
	if len(a) != 2 || len(b) != 2 || a[1] != b[0] {
		return &ShapeMismatchError{Op: "matmul", Left: a.Clone(), Right: b.Clone()}
	}
	return nil
}
