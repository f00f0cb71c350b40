package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/silisk/pkg/parser"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	File string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [SQL]",
		Short: "Parse SQL and print its syntax tree",
		Long: `Parse one or more ';'-terminated statements and print the syntax tree.

SQL is read from the argument, from --file, or from standard input.
The output format follows --output: tree, json, yaml or sql.`,
		Example: `  # Print the tree of a query
  silisk parse "SELECT a, b FROM t WHERE a > 1;"

  # JSON for a whole file
  silisk parse -f schema.sql -o json

  # From a pipe
  echo "DROP TABLE t;" | silisk parse -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from a file")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sql, source, err := readSQL(cmd, args, opts.File)
	if err != nil {
		return err
	}
	if strings.TrimSpace(sql) == "" {
		return fmt.Errorf("no SQL to parse in %s", source)
	}

	start := time.Now()
	stmts, err := parser.ParseScript(sql, cmdCtx.ParserConfig())
	cmdCtx.Logger.Debug("parsed input",
		"source", source,
		"statements", len(stmts),
		"elapsed", time.Since(start))
	if err != nil {
		r.Diagnostic(err)
		return ErrReported
	}

	return r.Statements(stmts)
}
