package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yourbasic/graph"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/fcomp/pkg/fn/builtin"
	"github.com/ib-77/fcomp/pkg/fn/dyn"
)

var (
	ErrInvalidDefinition = errors.New("invalid pipeline definition")
	ErrUnknownStep       = errors.New("unknown step")
	ErrUnknownPipeline   = errors.New("unknown pipeline")
	ErrCycle             = errors.New("pipeline reference cycle")
)

// Definition describes one pipeline.
type Definition struct {
	Compose []string `yaml:"compose,omitempty"`
	Pipe    []string `yaml:"pipe,omitempty"`
	Map     string   `yaml:"map,omitempty"`
}

// Config is a set of named pipelines.
type Config struct {
	Pipelines map[string]Definition `yaml:"pipelines"`
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse pipelines: %w", err)
	}
	if c.Pipelines == nil {
		c.Pipelines = map[string]Definition{}
	}
	return &c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (d Definition) shapes() int {
	n := 0
	if d.Compose != nil {
		n++
	}
	if d.Pipe != nil {
		n++
	}
	if d.Map != "" {
		n++
	}
	return n
}

func (d Definition) steps() []string {
	switch {
	case d.Compose != nil:
		return d.Compose
	case d.Pipe != nil:
		return d.Pipe
	case d.Map != "":
		return []string{d.Map}
	}
	return nil
}

// Names lists pipeline names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Pipelines))
	for name := range c.Pipelines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate reports every malformed definition, unknown step and reference
// cycle at once.
func (c *Config) Validate(reg *builtin.Registry) error {
	var err error
	for _, name := range c.Names() {
		d := c.Pipelines[name]
		if n := d.shapes(); n != 1 {
			err = multierr.Append(err, fmt.Errorf("%q: want exactly one of compose, pipe, map, got %d: %w",
				name, n, ErrInvalidDefinition))
			continue
		}
		for _, step := range d.steps() {
			if _, ok := c.Pipelines[step]; ok {
				continue
			}
			if _, ok := reg.Lookup(step); !ok {
				err = multierr.Append(err, fmt.Errorf("%q: %q: %w", name, step, ErrUnknownStep))
			}
		}
	}
	if _, cerr := c.order(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	return err
}

// order returns pipeline names so that every pipeline follows the pipelines it references.
func (c *Config) order() ([]string, error) {
	names := c.Names()
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	g := graph.New(len(names))
	for i, name := range names {
		for _, step := range c.Pipelines[name].steps() {
			if j, ok := index[step]; ok {
				g.Add(i, j)
			}
		}
	}

	topo, ok := graph.TopSort(g)
	if !ok {
		var err error
		for _, comp := range graph.StrongComponents(g) {
			if len(comp) == 1 && !g.Edge(comp[0], comp[0]) {
				continue
			}
			members := make([]string, len(comp))
			for k, v := range comp {
				members[k] = names[v]
			}
			slices.Sort(members)
			err = multierr.Append(err, fmt.Errorf("%v: %w", members, ErrCycle))
		}
		return nil, err
	}

	ordered := make([]string, len(topo))
	for k, v := range topo {
		ordered[len(topo)-1-k] = names[v]
	}
	return ordered, nil
}

// Build validates the config and returns one function value per pipeline.
func (c *Config) Build(reg *builtin.Registry) (map[string]dyn.Func, error) {
	if err := c.Validate(reg); err != nil {
		return nil, err
	}
	ordered, err := c.order()
	if err != nil {
		return nil, err
	}

	built := make(map[string]dyn.Func, len(ordered))
	for _, name := range ordered {
		d := c.Pipelines[name]
		fns := make([]dyn.Func, 0, len(d.steps()))
		for _, step := range d.steps() {
			if f, ok := built[step]; ok {
				fns = append(fns, f)
				continue
			}
			f, _ := reg.Lookup(step)
			fns = append(fns, f)
		}

		switch {
		case d.Compose != nil:
			built[name] = dyn.Compose(fns...)
		case d.Pipe != nil:
			built[name] = dyn.Pipe(fns...)
		default:
			built[name] = dyn.PartialApply(fns[0])
		}
	}
	return built, nil
}

// Lookup builds the config and returns the named pipeline.
func (c *Config) Lookup(reg *builtin.Registry, name string) (dyn.Func, error) {
	if _, ok := c.Pipelines[name]; !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPipeline)
	}
	built, err := c.Build(reg)
	if err != nil {
		return nil, err
	}
	return built[name], nil
}
