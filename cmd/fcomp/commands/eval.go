package commands

import (
	"github.com/spf13/cobra"

	"github.com/ib-77/fcomp/pkg/fn/builtin"
	"github.com/ib-77/fcomp/pkg/fn/dyn"
)

type evalMode int

const (
	modeCompose evalMode = iota
	modePipe
	modeMap
)

// CreateComposeCommand creates the compose command.
func CreateComposeCommand() *cobra.Command {
	return createEvalCommand(modeCompose, &cobra.Command{
		Use:   "compose [fn...]",
		Short: "apply functions right to left",
		Long:  `Compose the named functions so that the last one runs first, and apply the result to the input.`,
	})
}

// CreatePipeCommand creates the pipe command.
func CreatePipeCommand() *cobra.Command {
	return createEvalCommand(modePipe, &cobra.Command{
		Use:   "pipe [fn...]",
		Short: "apply functions left to right",
		Long:  `Pipe the input through the named functions, first one first.`,
	})
}

// CreateMapCommand creates the map command.
func CreateMapCommand() *cobra.Command {
	return createEvalCommand(modeMap, &cobra.Command{
		Use:   "map [fn...]",
		Short: "apply a composition to every element",
		Long:  `Compose the named functions right to left and apply the composition to each element of the input array.`,
	})
}

func createEvalCommand(mode evalMode, cmd *cobra.Command) *cobra.Command {
	r := evalRunner{mode: mode}
	cmd.Args = cobra.ArbitraryArgs
	cmd.ValidArgs = builtin.Default().Names()
	cmd.RunE = r.run
	r.setupFlags(cmd)
	return cmd
}

type evalRunner struct {
	mode evalMode
	io   ioFlags
}

func (r *evalRunner) setupFlags(c *cobra.Command) {
	r.io.setup(c.Flags())
}

func (r *evalRunner) run(cmd *cobra.Command, args []string) error {
	f, err := r.build(args)
	if err != nil {
		return err
	}
	in, err := readInput(cmd, r.io.input)
	if err != nil {
		return err
	}
	return evaluate(cmd, f, in, r.io.output)
}

func (r *evalRunner) build(names []string) (dyn.Func, error) {
	fns, err := builtin.Default().Resolve(names...)
	if err != nil {
		return nil, err
	}
	switch r.mode {
	case modePipe:
		return dyn.Pipe(fns...), nil
	case modeMap:
		return dyn.PartialApply(dyn.Compose(fns...)), nil
	default:
		return dyn.Compose(fns...), nil
	}
}
