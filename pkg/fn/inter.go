package fn

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if the invocation failed
	Err() error
	// IsSuccess returns true if the invocation was successful
	IsSuccess() bool
}

// Traced is a WithError that carries an evaluation id.
type Traced[T any] interface {
	WithError[T]
	Id() uuid.UUID
}

var _ Traced[int] = Result[int]{}
