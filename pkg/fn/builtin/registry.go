package builtin

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/exp/slices"

	"github.com/ib-77/fcomp/pkg/fn/dyn"
)

var (
	ErrUnknownFunc   = errors.New("unknown function")
	ErrDuplicateFunc = errors.New("duplicate function")
)

// Registry maps names to dynamic function values.
type Registry struct {
	funcs map[string]dyn.Func
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]dyn.Func)}
}

// Default returns a registry holding every builtin.
func Default() *Registry {
	r := NewRegistry()
	for name, f := range map[string]dyn.Func{
		"identity": dyn.Identity,
		"length":   DynLength,
		"unique":   DynUnique,
		"sort":     DynSort,
		"reverse":  DynReverse,
		"head":     DynHead,
		"tail":     DynTail,
		"sum":      DynSum,
		"mean":     DynMean,
		"sd":       DynSD,
	} {
		r.funcs[name] = f
	}
	return r
}

func (r *Registry) Register(name string, f dyn.Func) error {
	if name == "" {
		return fmt.Errorf("register: empty name")
	}
	if _, ok := r.funcs[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateFunc)
	}
	r.funcs[name] = f
	return nil
}

func (r *Registry) Lookup(name string) (dyn.Func, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Resolve looks up every name and reports all unknown names at once.
func (r *Registry) Resolve(names ...string) ([]dyn.Func, error) {
	var err error
	fns := make([]dyn.Func, 0, len(names))
	for _, name := range names {
		f, ok := r.funcs[name]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%q: %w", name, ErrUnknownFunc))
			continue
		}
		fns = append(fns, f)
	}
	if err != nil {
		return nil, err
	}
	return fns, nil
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
