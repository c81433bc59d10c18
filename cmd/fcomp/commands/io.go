package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ib-77/fcomp/pkg/fn"
	"github.com/ib-77/fcomp/pkg/fn/dyn"
)

// readInput decodes one JSON value, keeping numbers as json.Number.
func readInput(cmd *cobra.Command, input string) (any, error) {
	var src io.Reader = strings.NewReader(input)
	if input == "" || input == "-" {
		src = cmd.InOrStdin()
	}

	dec := json.NewDecoder(src)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return v, nil
}

func evaluate(cmd *cobra.Command, f dyn.Func, in any, output string) error {
	res := fn.Run(f, in)
	logEvaluation(res)

	return fn.Finally(res,
		func(v any) error { return writeOutput(cmd, v, output) },
		func(err error) error { return err })
}

func writeOutput(cmd *cobra.Command, v any, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if path == "" && isTerminal(cmd.OutOrStdout()) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if path != "" {
		return atomic.WriteFile(path, &buf)
	}
	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func logEvaluation(res fn.Traced[any]) {
	slog.Debug("evaluated",
		"id", res.Id(),
		"created", res.CreatedAt(),
		"success", res.IsSuccess())
}
