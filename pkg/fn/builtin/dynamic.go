package builtin

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/ib-77/fcomp/pkg/fn"
	"github.com/ib-77/fcomp/pkg/fn/dyn"
)

// Dynamic forms, accepting any slice or array.
var (
	DynLength  = dyn.OfSlice[int]("length", Length[any])
	DynUnique  = dyn.OfSlice[[]any]("unique", uniqueAny)
	DynSort    = dyn.OfSlice[[]any]("sort", sortAny)
	DynReverse = dyn.OfSlice[[]any]("reverse", Reverse[any])
	DynHead    = dyn.OfSlice[any]("head", Head[any])
	DynTail    = dyn.OfSlice[[]any]("tail", Tail[any])
	DynSum     = dyn.OfSlice[any]("sum", sumAny)
	DynMean    = dyn.OfSlice[float64]("mean", floatsOf("mean", Mean))
	DynSD      = dyn.OfSlice[float64]("sd", floatsOf("sd", SD))
)

// uniqueAny is Unique for elements that may not be comparable, such as nested
// lists. Those are matched against earlier ones with reflect.DeepEqual.
func uniqueAny(l []any) ([]any, error) {
	if l == nil {
		return nil, fmt.Errorf("unique: %w", fn.ErrNilContainer)
	}

	seen := make(map[any]struct{}, len(l))
	var deep []any
	out := make([]any, 0, len(l))

	for _, v := range l {
		if v == nil || reflect.ValueOf(v).Comparable() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
		} else {
			if slices.ContainsFunc(deep, func(d any) bool { return reflect.DeepEqual(d, v) }) {
				continue
			}
			deep = append(deep, v)
		}
		out = append(out, v)
	}
	return out, nil
}

func sortAny(l []any) ([]any, error) {
	out := slices.Clone(l)
	if len(out) == 0 {
		return out, nil
	}

	if _, ok := out[0].(string); ok {
		for _, v := range out {
			if _, ok := v.(string); !ok {
				return nil, fn.NewIncompatibleCallError("sort", "string", v)
			}
		}
		slices.SortStableFunc(out, func(a, b any) int {
			return cmp.Compare(a.(string), b.(string))
		})
		return out, nil
	}

	keys := make([]float64, len(out))
	idx := make([]int, len(out))
	for i, v := range out {
		f, err := toFloat("sort", v)
		if err != nil {
			return nil, err
		}
		keys[i] = f
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})
	sorted := make([]any, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted, nil
}

func sumAny(l []any) (any, error) {
	ds := make([]decimal.Decimal, len(l))
	for i, v := range l {
		d, err := toDecimal("sum", v)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	total, err := Sum(ds)
	if err != nil {
		return nil, err
	}
	return json.Number(total.String()), nil
}

func floatsOf(name string, f func([]float64) (float64, error)) fn.Func[[]any, float64] {
	return func(l []any) (float64, error) {
		xs := make([]float64, len(l))
		for i, v := range l {
			x, err := toFloat(name, v)
			if err != nil {
				return 0, err
			}
			xs[i] = x
		}
		return f(xs)
	}
}

func toFloat(name string, v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return f, nil
	case decimal.Decimal:
		return n.InexactFloat64(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fn.NewIncompatibleCallError(name, "number", v)
}

func toDecimal(name string, v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", name, err)
		}
		return d, nil
	case decimal.Decimal:
		return n, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, fn.NewIncompatibleCallError(name, "finite number", v)
		}
		return decimal.NewFromFloat(f), nil
	}
	return decimal.Zero, fn.NewIncompatibleCallError(name, "number", v)
}
