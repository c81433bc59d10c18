package fn

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc is returned when a nil function value is invoked.
	ErrNilFunc = errors.New("nil function")
	// ErrNilContainer is returned when a function expecting a container receives nil.
	ErrNilContainer = errors.New("nil container")
	// ErrEmptyContainer is returned when a function needs at least one element.
	ErrEmptyContainer = errors.New("empty container")
	// ErrIncompatibleCall matches every *IncompatibleCallError via errors.Is.
	ErrIncompatibleCall = errors.New("incompatible call")
)

// IncompatibleCallError reports a call whose argument the function cannot accept.
type IncompatibleCallError struct {
	Func string
	Want string
	Got  string
}

func NewIncompatibleCallError(name, want string, got any) *IncompatibleCallError {
	return &IncompatibleCallError{Func: name, Want: want, Got: TypeName(got)}
}

func (e *IncompatibleCallError) Error() string {
	name := e.Func
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("%s: %v: want %s, got %s", name, ErrIncompatibleCall, e.Want, e.Got)
}

func (e *IncompatibleCallError) Is(target error) bool {
	return target == ErrIncompatibleCall
}

// TypeName returns the dynamic type of v, or "nil".
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
