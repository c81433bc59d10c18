package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fcomp/pkg/fn"
	"github.com/ib-77/fcomp/pkg/fn/builtin"
	"github.com/ib-77/fcomp/pkg/fn/pipeline"
)

func execute(t *testing.T, stdin string, args ...string) ([]byte, error) {
	t.Helper()
	cmd := CreateRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := cmd.Execute()
	return out.Bytes(), err
}

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	out, err := execute(t, "", args...)
	require.NoError(t, err)
	return out
}

func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"compose_length_unique", []string{"compose", "length", "unique", "-i", "[0,0,0,1,2]"}},
		{"pipe_unique_length", []string{"pipe", "unique", "length", "-i", "[0,0,0,1,2]"}},
		{"map_length_unique", []string{"map", "length", "unique", "-i", "[[0,0,1],[5,5,5,5]]"}},
		{"run_per_row", []string{"run", "per-row", "-c", "testdata/pipelines.yaml", "-i", "[[0,0,1],[5,5,5,5]]"}},
		{"compose_sum", []string{"compose", "sum", "-i", "[0.1,0.2,1]"}},
		{"list", []string{"list"}},
		{"list_config", []string{"list", "-c", "testdata/pipelines.yaml"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := run(t, test.args...)

			goldie.New(t).Assert(t, test.name, got)
		})
	}
}

func TestCompose_NoFunctionsIsIdentity(t *testing.T) {
	got := run(t, "compose", "-i", `{"a":[1,2]}`)
	assert.Equal(t, "{\"a\":[1,2]}\n", string(got))
}

func TestInputFromStdin(t *testing.T) {
	out, err := execute(t, "[3,3,4]", "pipe", "unique", "length")
	require.NoError(t, err)
	assert.Equal(t, "2\n", string(out))

	out, err = execute(t, "[1,2]", "pipe", "reverse", "-i", "-")
	require.NoError(t, err)
	assert.Equal(t, "[2,1]\n", string(out))
}

func TestOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	out := run(t, "map", "length", "-i", "[[1],[1,2]]", "-o", path)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]\n", string(data))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown function", []string{"compose", "lenght", "-i", "[1]"}, builtin.ErrUnknownFunc},
		{"nil container", []string{"compose", "length", "unique", "-i", "null"}, fn.ErrNilContainer},
		{"not a container", []string{"compose", "length", "unique", "-i", "5"}, fn.ErrIncompatibleCall},
		{"unknown pipeline", []string{"run", "nope", "-c", "testdata/pipelines.yaml", "-i", "[]"}, pipeline.ErrUnknownPipeline},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, "", test.args...)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestErrors_BadInput(t *testing.T) {
	_, err := execute(t, "", "compose", "length", "-i", "[1,")
	assert.ErrorContains(t, err, "decode input")

	_, err = execute(t, "", "run", "per-row", "-i", "[]")
	assert.Error(t, err, "--config is required")

	_, err = execute(t, "", "--color", "sometimes", "list")
	assert.Error(t, err)
}

func TestReportError(t *testing.T) {
	color.NoColor = true
	cmd := CreateRootCommand()
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)

	_, err := builtin.Default().Resolve("a", "b")
	reportError(cmd, err)

	assert.Equal(t, "error: \"a\": unknown function\nerror: \"b\": unknown function\n", errOut.String())
}

func TestPipe_UniqueKeepsNestedDistinct(t *testing.T) {
	got := run(t, "pipe", "unique", "-i", `[[1],["1"],["a b"],["a","b"],[1]]`)
	assert.Equal(t, "[[1],[\"1\"],[\"a b\"],[\"a\",\"b\"]]\n", string(got))
}

func TestRun_ConfigFlagRequired(t *testing.T) {
	cmd := CreateRunCommand()
	f := cmd.Flags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, []string{"true"}, f.Annotations[cobra.BashCompOneRequiredFlag])
}

func TestVerbose_LogsEvaluationId(t *testing.T) {
	cmd := CreateRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--color", "never", "-v", "pipe", "unique", "length", "-i", "[1,1,2]"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2\n", out.String())
	assert.Regexp(t, `msg=evaluated id=[0-9a-f-]{36} created=\S+ success=true`, errOut.String())
}
