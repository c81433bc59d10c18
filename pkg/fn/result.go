package fn

import (
	"time"

	"github.com/google/uuid"
)

// Result records the outcome of one invocation of a Func.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Run invokes f with in and records the outcome.
func Run[In, Out any](f Func[In, Out], in In) Result[Out] {
	out, err := f.Call(in)
	if err != nil {
		return Fail[Out](err)
	}
	return Success(out)
}

// Finally collapses a Result into a concrete value.
func Finally[T, Out any](input Result[T],
	onSuccess func(r T) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

// Get returns the value and error as a plain pair.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
