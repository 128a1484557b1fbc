package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrDisallowedCharacter is returned for bytes outside the allowed set.
	ErrDisallowedCharacter = errors.New("disallowed character")
	// ErrRepeatedOperator is returned when an operator is immediately repeated.
	ErrRepeatedOperator = errors.New("repeated operator")
	// ErrSyntax is returned for text that does not match the grammar.
	ErrSyntax = errors.New("syntax error")
	// ErrNonFinite is returned when the result is NaN or infinite.
	ErrNonFinite = errors.New("result is not a finite number")
)

// Error locates an evaluation failure within the expression text.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func errAt(off int, err error) error { return &Error{Offset: off, Err: err} }
