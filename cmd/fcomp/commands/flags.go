package commands

import (
	"fmt"

	"github.com/spf13/pflag"
)

type colorFlag string

const (
	colorAuto   colorFlag = "auto"
	colorAlways colorFlag = "always"
	colorNever  colorFlag = "never"
)

var _ pflag.Value = (*colorFlag)(nil)

func (f colorFlag) String() string {
	return string(f)
}

// Set implements pflag.Value.
func (f *colorFlag) Set(v string) error {
	switch c := colorFlag(v); c {
	case colorAuto, colorAlways, colorNever:
		*f = c
		return nil
	}
	return fmt.Errorf("invalid color mode %q", v)
}

// Type implements pflag.Value.
func (f colorFlag) Type() string {
	return "auto|always|never"
}

// ioFlags are shared by every evaluating command.
type ioFlags struct {
	input  string
	output string
}

func (f *ioFlags) setup(fs *pflag.FlagSet) {
	fs.StringVarP(&f.input, "input", "i", "", "JSON input; empty or - reads stdin")
	fs.StringVarP(&f.output, "output", "o", "", "write the JSON result to this file instead of stdout")
}
