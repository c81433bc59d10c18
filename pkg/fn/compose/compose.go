package compose

import (
	"golang.org/x/exp/slices"

	"github.com/ib-77/fcomp/pkg/fn"
)

// Once returns h with h(a) = f(g(a)). An error from g stops before f is called.
func Once[A, B, C any](f fn.Func[B, C], g fn.Func[A, B]) fn.Func[A, C] {
	return func(a A) (C, error) {
		b, err := g.Call(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return f.Call(b)
	}
}

// Compose applies fns right to left: Compose(f1, f2, f3)(x) = f1(f2(f3(x))).
// Compose() is the identity.
func Compose[T any](fns ...fn.Func[T, T]) fn.Func[T, T] {
	acc := fn.Func[T, T](fn.Identity[T])
	for _, f := range fns {
		acc = Once(acc, f)
	}
	return acc
}

// Pipe applies fns left to right: Pipe(f1, f2, f3)(x) = f3(f2(f1(x))).
func Pipe[T any](fns ...fn.Func[T, T]) fn.Func[T, T] {
	reversed := slices.Clone(fns)
	slices.Reverse(reversed)
	return Compose(reversed...)
}

// Compose3 returns x -> f(g(h(x))).
func Compose3[A, B, C, D any](f fn.Func[C, D], g fn.Func[B, C], h fn.Func[A, B]) fn.Func[A, D] {
	return Once(f, Once(g, h))
}
