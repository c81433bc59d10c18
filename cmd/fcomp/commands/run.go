package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/fcomp/pkg/fn/builtin"
	"github.com/ib-77/fcomp/pkg/fn/pipeline"
)

// CreateRunCommand creates the run command.
func CreateRunCommand() *cobra.Command {
	var r runRunner

	cmd := &cobra.Command{
		Use:   "run <pipeline>",
		Short: "run a named pipeline from a config file",
		Long:  `Load pipeline definitions from a YAML file and apply the named pipeline to the input.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runRunner struct {
	config string
	io     ioFlags
}

func (r *runRunner) setupFlags(c *cobra.Command) {
	c.Flags().StringVarP(&r.config, "config", "c", "", "pipeline definitions (YAML)")
	cobra.CheckErr(c.MarkFlagRequired("config"))
	r.io.setup(c.Flags())
}

func (r *runRunner) run(cmd *cobra.Command, args []string) error {
	c, err := pipeline.Load(r.config)
	if err != nil {
		return err
	}
	f, err := c.Lookup(builtin.Default(), args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", r.config, err)
	}
	in, err := readInput(cmd, r.io.input)
	if err != nil {
		return err
	}
	return evaluate(cmd, f, in, r.io.output)
}
