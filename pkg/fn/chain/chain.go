package chain

import (
	"golang.org/x/exp/slices"

	"github.com/ib-77/fcomp/pkg/fn"
	"github.com/ib-77/fcomp/pkg/fn/compose"
)

// Chain is an ordered list of steps applied left to right.
type Chain[T any] struct {
	steps []fn.Func[T, T]
}

// New creates a chain from steps, applied in the given order.
func New[T any](steps ...fn.Func[T, T]) Chain[T] {
	return Chain[T]{steps: slices.Clone(steps)}
}

// Then returns a chain with f applied after the existing steps.
func (c Chain[T]) Then(f fn.Func[T, T]) Chain[T] {
	steps := make([]fn.Func[T, T], 0, len(c.steps)+1)
	steps = append(steps, c.steps...)
	return Chain[T]{steps: append(steps, f)}
}

// Before returns a chain with f applied ahead of the existing steps.
func (c Chain[T]) Before(f fn.Func[T, T]) Chain[T] {
	steps := make([]fn.Func[T, T], 0, len(c.steps)+1)
	steps = append(steps, f)
	return Chain[T]{steps: append(steps, c.steps...)}
}

// ThenMap appends an infallible step.
func (c Chain[T]) ThenMap(f func(T) T) Chain[T] {
	return c.Then(fn.Lift(f))
}

func (c Chain[T]) Len() int {
	return len(c.steps)
}

// Func builds the composition. An empty chain is the identity.
func (c Chain[T]) Func() fn.Func[T, T] {
	return compose.Pipe(c.steps...)
}

// Run builds the composition and invokes it with in.
func (c Chain[T]) Run(in T) fn.Result[T] {
	return fn.Run(c.Func(), in)
}
