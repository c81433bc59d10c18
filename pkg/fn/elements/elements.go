package elements

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/fcomp/pkg/fn"
)

// ElementError wraps the failure of the element function at Index.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// Apply returns a new slice with out[i] = f(l[i]), in index order.
// It stops at the first failing element and returns no partial output.
func Apply[T, U any](l []T, f fn.Func[T, U]) ([]U, error) {
	if l == nil {
		return nil, nil
	}

	out := make([]U, len(l))
	for i, v := range l {
		u, err := f.Call(v)
		if err != nil {
			return nil, &ElementError{Index: i, Err: err}
		}
		out[i] = u
	}
	return out, nil
}

// Partial fixes f so that Partial(f)(l) == Apply(l, f).
func Partial[T, U any](f fn.Func[T, U]) fn.Func[[]T, []U] {
	return func(l []T) ([]U, error) {
		return Apply(l, f)
	}
}

// ApplyConcurrent is Apply spread across a bounded number of goroutines.
// Output stays index-aligned, but elements may be processed in any order.
// The first failure cancels the elements not yet started.
func ApplyConcurrent[T, U any](ctx context.Context, l []T, f fn.Func[T, U]) ([]U, error) {
	if l == nil {
		return nil, nil
	}

	workers := GetWorkerMaxCount(ctx, runtime.GOMAXPROCS(0))
	if workers < 1 {
		workers = 1
	}

	out := make([]U, len(l))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, v := range l {
		if gctx.Err() != nil {
			break
		}
		i, v := i, v
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			u, err := f.Call(v)
			if err != nil {
				return &ElementError{Index: i, Err: err}
			}
			out[i] = u
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
