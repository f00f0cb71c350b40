// Package commands implements the silisk subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/silisk/internal/cli/config"
	"github.com/leapstack-labs/silisk/internal/cli/output"
	"github.com/leapstack-labs/silisk/pkg/parser"
)

// ErrReported is returned by commands that already wrote their diagnostics.
// The root command exits non-zero without printing it again.
var ErrReported = errors.New("errors reported")

// CommandContext holds common dependencies for command execution.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		format = output.FormatTree
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, cfg.Color)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// ParserConfig returns the parser settings derived from the configuration.
func (c *CommandContext) ParserConfig() parser.Config {
	return parser.Config{MaxDepth: c.Cfg.MaxDepth}
}

// getConfig returns the current configuration, or the defaults when no
// configuration has been loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// readSQL returns the SQL text to work on and a name describing its source.
// Arguments win, then --file, then standard input.
func readSQL(cmd *cobra.Command, args []string, file string) (sql, source string, err error) {
	switch {
	case len(args) > 0 && file != "":
		return "", "", fmt.Errorf("pass SQL as an argument or with --file, not both")
	case len(args) > 0:
		return strings.Join(args, " "), "<arg>", nil
	case file != "":
		data, err := os.ReadFile(file) //nolint:gosec // reading user-named input is the point
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), file, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}
