package wrap

import (
	"errors"
	"fmt"
)

// ErrInvalidComposition is returned when two operands cannot be composed,
// for example plain text followed by a closing Wrapper.
var ErrInvalidComposition = errors.New("invalid composition")

// CompositionError describes the rejected operand pair.
type CompositionError struct {
	Left  Kind
	Right Kind
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("%s: cannot compose %s with %s", ErrInvalidComposition, e.Left, e.Right)
}

// Unwrap lets errors.Is match ErrInvalidComposition.
func (e *CompositionError) Unwrap() error {
	return ErrInvalidComposition
}
