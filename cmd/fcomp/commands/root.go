// Package commands holds the cobra commands of the fcomp CLI.
package commands

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ib-77/fcomp/pkg/fn"
)

var red = color.New(color.FgRed)

// CreateRootCommand creates the fcomp command with all subcommands attached.
func CreateRootCommand() *cobra.Command {
	var r rootRunner

	cmd := &cobra.Command{
		Use:   "fcomp",
		Short: "fcomp composes functions over JSON data",
		Long: `fcomp builds compositions of named functions and applies them to JSON input.

  fcomp compose length unique -i '[0,0,0,1,2]'   # 3
  fcomp pipe unique length -i '[0,0,0,1,2]'      # 3
  fcomp map length unique -i '[[0,0,1],[5,5,5,5]]' # [2,1]`,

		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	r.setupFlags(cmd)

	cmd.AddCommand(CreateComposeCommand())
	cmd.AddCommand(CreatePipeCommand())
	cmd.AddCommand(CreateMapCommand())
	cmd.AddCommand(CreateRunCommand())
	cmd.AddCommand(CreateListCommand())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := CreateRootCommand()
	if err := cmd.Execute(); err != nil {
		reportError(cmd, err)
		os.Exit(1)
	}
}

type rootRunner struct {
	color   colorFlag
	verbose bool
}

func (r *rootRunner) setupFlags(c *cobra.Command) {
	r.color = colorAuto
	c.PersistentFlags().Var(&r.color, "color", "colorize errors (auto, always, never)")
	c.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "log evaluation details to stderr")
}

func (r *rootRunner) setup(cmd *cobra.Command, _ []string) error {
	switch r.color {
	case colorAlways:
		color.NoColor = false
	case colorNever:
		color.NoColor = true
	}

	level := slog.LevelWarn
	if r.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func reportError(cmd *cobra.Command, err error) {
	for _, e := range fn.GetErrors(err) {
		red.Fprintf(cmd.ErrOrStderr(), "error: %v\n", e)
	}
}
