package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/silisk/pkg/format"
	"github.com/leapstack-labs/silisk/pkg/parser"
)

// FmtOptions holds options for the fmt command.
type FmtOptions struct {
	File   string
	Pretty bool
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &FmtOptions{}
	cmd := &cobra.Command{
		Use:   "fmt [SQL]",
		Short: "Print SQL in canonical form",
		Long: `Parse SQL and print every statement in canonical form: upper-case
keywords, single spaces and only the parentheses precedence requires.

The output parses back to the same syntax tree.`,
		Example: `  silisk fmt "select a+b*c from t where not (x=1 or y=2);"
  silisk fmt --pretty -f queries.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from a file")
	cmd.Flags().BoolVarP(&opts.Pretty, "pretty", "p", false, "One clause per line with indented lists")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, opts *FmtOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sql, source, err := readSQL(cmd, args, opts.File)
	if err != nil {
		return err
	}
	if strings.TrimSpace(sql) == "" {
		return fmt.Errorf("no SQL to format in %s", source)
	}

	stmts, err := parser.ParseScript(sql, cmdCtx.ParserConfig())
	if err != nil {
		r.Diagnostic(err)
		return ErrReported
	}

	for i, stmt := range stmts {
		if !opts.Pretty {
			r.Println(format.SQL(stmt))
			continue
		}
		if i > 0 {
			r.Println()
		}
		r.Printf("%s", format.Pretty(stmt))
	}
	return nil
}
