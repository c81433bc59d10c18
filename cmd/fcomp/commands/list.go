package commands

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/fcomp/pkg/fn/builtin"
	"github.com/ib-77/fcomp/pkg/fn/pipeline"
)

// CreateListCommand creates the list command.
func CreateListCommand() *cobra.Command {
	var r listRunner

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list available functions",
		Long:  `List builtin functions, and the pipelines of a config file when one is given.`,

		Args: cobra.NoArgs,

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type listRunner struct {
	config string
}

func (r *listRunner) setupFlags(c *cobra.Command) {
	c.Flags().StringVarP(&r.config, "config", "c", "", "also list pipelines from this YAML file")
}

func (r *listRunner) run(cmd *cobra.Command, _ []string) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()

	for _, name := range builtin.Default().Names() {
		fmt.Fprintln(w, name)
	}
	if r.config == "" {
		return nil
	}

	c, err := pipeline.Load(r.config)
	if err != nil {
		return err
	}
	if err := c.Validate(builtin.Default()); err != nil {
		return err
	}
	for _, name := range c.Names() {
		fmt.Fprintf(w, "%s (pipeline)\n", name)
	}
	return nil
}
