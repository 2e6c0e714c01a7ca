package two

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrVertexCountMismatch is returned when a morph target does not have
	// exactly as many vertices as its shape.
	ErrVertexCountMismatch = errors.New("two: vertex count mismatch")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("two: invalid size")

	// ErrDisposed is returned when a disposed surface or driver is used.
	ErrDisposed = errors.New("two: disposed")
)

// VertexCountError reports a morph target of the wrong length.
// It matches ErrVertexCountMismatch with errors.Is.
type VertexCountError struct {
	Name string
	Want int
	Got  int
}

func (e *VertexCountError) Error() string {
	return fmt.Sprintf("two: morph %q: vertex count mismatch: shape has %d, target has %d", e.Name, e.Want, e.Got)
}

// Is reports whether target is ErrVertexCountMismatch.
func (e *VertexCountError) Is(target error) bool {
	return target == ErrVertexCountMismatch
}
