package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/silisk/pkg/parser"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "tokens [SQL]",
		Short: "Print the token stream of SQL",
		Long: `Run the lexer alone and print every token with its position.

Lexical errors show up as ILLEGAL tokens; the grammar is not checked.
With --output json or yaml the tokens are printed as records.`,
		Example: `  silisk tokens "SELECT a FROM t;"
  silisk tokens -f query.sql -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			sql, _, err := readSQL(cmd, args, file)
			if err != nil {
				return err
			}
			return cmdCtx.Renderer.Tokens(parser.Tokenize(sql))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read SQL from a file")

	return cmd
}
