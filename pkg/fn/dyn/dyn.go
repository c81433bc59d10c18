package dyn

import (
	"reflect"

	"github.com/ib-77/fcomp/pkg/fn"
	"github.com/ib-77/fcomp/pkg/fn/compose"
	"github.com/ib-77/fcomp/pkg/fn/elements"
)

// Func is a structurally untyped function value.
type Func = fn.Func[any, any]

// Identity returns its argument unchanged.
var Identity Func = fn.Identity[any]

// Of adapts a typed function. A nil argument is accepted when In is a nilable
// type and arrives as the zero value of In.
func Of[In, Out any](name string, f fn.Func[In, Out]) Func {
	want := reflect.TypeOf((*In)(nil)).Elem()

	return func(v any) (any, error) {
		in, ok := v.(In)
		if !ok {
			if v != nil || !nilable(want) {
				return nil, fn.NewIncompatibleCallError(name, want.String(), v)
			}
		}
		out, err := f.Call(in)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// OfSlice adapts a function over []any so that it accepts any slice or array.
// A nil argument arrives as a nil []any.
func OfSlice[Out any](name string, f fn.Func[[]any, Out]) Func {
	return func(v any) (any, error) {
		xs, err := Slice(name, v)
		if err != nil {
			return nil, err
		}
		out, err := f.Call(xs)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Slice converts a slice or array value to []any. nil and nil slices yield nil.
func Slice(name string, v any) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	if xs, ok := v.([]any); ok {
		return xs, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
	case reflect.Array:
	default:
		return nil, fn.NewIncompatibleCallError(name, "slice or array", v)
	}

	xs := make([]any, rv.Len())
	for i := range xs {
		xs[i] = rv.Index(i).Interface()
	}
	return xs, nil
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return true
	}
	return false
}

// Once returns h with h(x) = f(g(x)).
func Once(f, g Func) Func {
	return compose.Once(f, g)
}

// Compose applies fns right to left. Compose() is Identity.
func Compose(fns ...Func) Func {
	return compose.Compose(fns...)
}

// Pipe applies fns left to right. Pipe() is Identity.
func Pipe(fns ...Func) Func {
	return compose.Pipe(fns...)
}

// ApplyOnElements maps f over any slice or array and returns []any.
func ApplyOnElements(l any, f Func) (any, error) {
	xs, err := Slice("apply_on_elements", l)
	if err != nil {
		return nil, err
	}
	out, err := elements.Apply(xs, f)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PartialApply fixes f so that PartialApply(f)(l) == ApplyOnElements(l, f).
func PartialApply(f Func) Func {
	return func(l any) (any, error) {
		return ApplyOnElements(l, f)
	}
}
