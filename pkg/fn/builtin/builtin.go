package builtin

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	"github.com/ib-77/fcomp/pkg/fn"
)

// Length counts the elements of l.
func Length[T any](l []T) (int, error) {
	if l == nil {
		return 0, fmt.Errorf("length: %w", fn.ErrNilContainer)
	}
	return len(l), nil
}

// Unique drops repeated elements, keeping first occurrences in order.
func Unique[T comparable](l []T) ([]T, error) {
	return UniqueBy(func(v T) T { return v })(l)
}

// UniqueBy is Unique with equality decided by key.
func UniqueBy[T any, K comparable](key func(T) K) fn.Func[[]T, []T] {
	return func(l []T) ([]T, error) {
		if l == nil {
			return nil, fmt.Errorf("unique: %w", fn.ErrNilContainer)
		}
		seen := make(map[K]struct{}, len(l))
		out := make([]T, 0, len(l))
		for _, v := range l {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, v)
		}
		return out, nil
	}
}

// Sort returns a sorted copy of l.
func Sort[T constraints.Ordered](l []T) ([]T, error) {
	out := slices.Clone(l)
	slices.Sort(out)
	return out, nil
}

// Reverse returns a reversed copy of l.
func Reverse[T any](l []T) ([]T, error) {
	out := slices.Clone(l)
	slices.Reverse(out)
	return out, nil
}

func Head[T any](l []T) (T, error) {
	if len(l) == 0 {
		var zero T
		return zero, fmt.Errorf("head: %w", fn.ErrEmptyContainer)
	}
	return l[0], nil
}

func Tail[T any](l []T) ([]T, error) {
	if len(l) == 0 {
		return nil, fmt.Errorf("tail: %w", fn.ErrEmptyContainer)
	}
	return slices.Clone(l[1:]), nil
}

// Sum adds l exactly. The sum of nothing is zero.
func Sum(l []decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, d := range l {
		total = total.Add(d)
	}
	return total, nil
}

// Mean is the arithmetic mean of l.
func Mean(l []float64) (float64, error) {
	if len(l) == 0 {
		return 0, fmt.Errorf("mean: %w", fn.ErrEmptyContainer)
	}
	return stat.Mean(l, nil), nil
}

// SD is the sample standard deviation of l; it needs two elements.
func SD(l []float64) (float64, error) {
	if len(l) < 2 {
		return 0, fmt.Errorf("sd: need at least 2 elements, got %d: %w", len(l), fn.ErrEmptyContainer)
	}
	return stat.StdDev(l, nil), nil
}
