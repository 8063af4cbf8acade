package layergo

import (
	"context"
	"errors"
	"fmt"
)

// ErrPrecondition is the sentinel every precondition violation unwraps to.
//
// Operations panic with one of the typed errors below rather than returning
// it; use recover together with errors.Is or errors.As to inspect the cause.
var ErrPrecondition = errors.New("precondition violated")

// ErrLengthMismatch indicates an operand, mask, weight or output layer whose
// length differs from what the operation requires.
type ErrLengthMismatch struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("%s: length mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrPrecondition }

// ErrMappingIndex indicates a mapping value outside the indexed layer.
type ErrMappingIndex struct {
	Op       string
	Position int // position within the mapping
	Index    int // offending mapping value
	Length   int // length of the indexed layer
}

func (e *ErrMappingIndex) Error() string {
	return fmt.Sprintf("%s: mapping[%d] = %d out of range [0, %d)", e.Op, e.Position, e.Index, e.Length)
}

func (e *ErrMappingIndex) Unwrap() error { return ErrPrecondition }

func violate(op string, err error) {
	l := logger().WithOp(op)

	var lengthErr *ErrLengthMismatch
	var indexErr *ErrMappingIndex
	switch {
	case errors.As(err, &lengthErr):
		l = l.WithLength(lengthErr.Expected)
	case errors.As(err, &indexErr):
		l = l.WithLength(indexErr.Length)
	}

	l.LogPreconditionViolation(context.Background(), err)
	panic(err)
}

func checkLength(op string, expected, actual int) {
	if expected != actual {
		violate(op, &ErrLengthMismatch{Op: op, Expected: expected, Actual: actual})
	}
}

// checkAtLeast accepts any actual length that is not shorter than expected.
func checkAtLeast(op string, expected, actual int) {
	if actual < expected {
		violate(op, &ErrLengthMismatch{Op: op, Expected: expected, Actual: actual})
	}
}

// RequireLength panics with an *ErrLengthMismatch, after logging it, when
// actual differs from expected. Packages building their own operations on
// top of Layer use it to report preconditions the same way.
func RequireLength(op string, expected, actual int) {
	checkLength(op, expected, actual)
}
