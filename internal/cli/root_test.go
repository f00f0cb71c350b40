package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/silisk/internal/cli/commands"
	"github.com/leapstack-labs/silisk/internal/cli/config"
)

// runRoot executes the root command in an empty working directory.
func runRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"parse", "check", "fmt", "tokens", "shell", "version", "completion"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "output", "max-depth", "color", "verbose", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "persistent flag %q should exist", flag)
	}
}

func TestRoot_OutputFlag(t *testing.T) {
	out, _, err := runRoot(t, "-o", "sql", "parse", "select a from t;")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t;\n", out)
}

func TestRoot_EnvConfig(t *testing.T) {
	t.Setenv("SILISK_OUTPUT", "json")

	out, _, err := runRoot(t, "parse", "drop table t;")
	require.NoError(t, err)
	assert.Contains(t, out, `"node": "DropTable"`)
}

func TestRoot_ConfigFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\n"), 0600))

	out, _, err := runRoot(t, "--config", path, "parse", "drop table t;")
	require.NoError(t, err)
	assert.Contains(t, out, "node: DropTable")
}

func TestRoot_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{name: "unknown output", args: []string{"-o", "xml", "parse", "drop table t;"}, errSubstr: `invalid output format "xml"`},
		{name: "zero depth", args: []string{"--max-depth", "0", "parse", "drop table t;"}, errSubstr: "max_depth must be positive"},
		{name: "bad color", args: []string{"--color", "rainbow", "parse", "drop table t;"}, errSubstr: `invalid color mode "rainbow"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runRoot(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestRoot_ParseErrorIsReported(t *testing.T) {
	_, errOut, err := runRoot(t, "parse", "select from t;")
	require.ErrorIs(t, err, commands.ErrReported)
	assert.Contains(t, errOut, "error: syntax error at line 1, column 8")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	_, errOut, err := runRoot(t, "-v", "parse", "drop table t;")
	require.NoError(t, err)
	assert.Contains(t, errOut, "parsed input")
}

func TestRoot_Version(t *testing.T) {
	out, _, err := runRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "silisk "+Version)
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := runRoot(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "silisk")
		})
	}

	_, _, err := runRoot(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestGetConfig(t *testing.T) {
	assert.Equal(t, config.Default(), GetConfig(context.Background()))

	cfg := &config.Config{Output: "json"}
	ctx := context.WithValue(context.Background(), configKey{}, cfg)
	assert.Same(t, cfg, GetConfig(ctx))
}
