package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/silisk/internal/cli/output"
	"github.com/leapstack-labs/silisk/pkg/parser"
	"github.com/leapstack-labs/silisk/pkg/token"
)

const (
	shellPrompt     = "silisk> "
	shellContPrompt = "    ...> "
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive SQL parsing shell",
		Long: `Start an interactive shell that parses each statement as it is typed.

Input accumulates until a line ends with ';'. Every parsed statement is
printed in the current output format; errors are shown with a caret.
History is kept in the configured history_file.`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		HistoryFile:     cmdCtx.Cfg.HistoryFile,
		AutoComplete:    newKeywordCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r := cmdCtx.Renderer
	r.Println("silisk shell")
	r.Println("Type .help for commands, .quit to exit")
	r.Println()

	s := newShell(r, cmdCtx.ParserConfig(), cmdCtx.Logger)
	return s.run(rl)
}

// lineReader is the part of readline the shell loop needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// shell holds the state of one interactive session.
type shell struct {
	r      *output.Renderer
	cfg    parser.Config
	logger *slog.Logger
	buf    strings.Builder
}

func newShell(r *output.Renderer, cfg parser.Config, logger *slog.Logger) *shell {
	return &shell{r: r, cfg: cfg, logger: logger}
}

// run reads lines until EOF or a quit command.
func (s *shell) run(lr lineReader) error {
	for {
		line, err := lr.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.buf.Reset()
			lr.SetPrompt(shellPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if s.handleLine(line) {
			return nil
		}
		if s.buf.Len() > 0 {
			lr.SetPrompt(shellContPrompt)
		} else {
			lr.SetPrompt(shellPrompt)
		}
	}
}

// handleLine processes one line of input and reports whether to exit.
func (s *shell) handleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	// Dot-commands are only recognised at the start of a statement
	if s.buf.Len() == 0 && strings.HasPrefix(trimmed, ".") {
		return s.dotCommand(trimmed)
	}

	// Accumulate multi-line SQL until semicolon
	if s.buf.Len() > 0 {
		s.buf.WriteByte('\n')
	}
	s.buf.WriteString(line)
	if !strings.HasSuffix(trimmed, ";") {
		return false
	}

	sql := s.buf.String()
	s.buf.Reset()
	s.eval(sql)
	return false
}

func (s *shell) eval(sql string) {
	stmts, err := parser.ParseScript(sql, s.cfg)
	if err != nil {
		s.r.Diagnostic(err)
		return
	}
	s.logger.Debug("parsed statements", "count", len(stmts))
	if err := s.r.Statements(stmts); err != nil {
		s.r.Diagnostic(err)
	}
}

func (s *shell) dotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printShellHelp(s.r.Out())

	case ".output":
		if len(parts) < 2 {
			s.r.Println("output:", s.r.Format())
			return false
		}
		if err := s.r.SetFormat(parts[1]); err != nil {
			s.r.Diagnostic(err)
		}

	default:
		s.r.Diagnostic(fmt.Errorf("unknown command %s (type .help for commands)", command))
	}
	return false
}

func printShellHelp(w io.Writer) {
	help := `
Commands:
  .help               Show this help message
  .output [format]    Show or set the output format (tree, json, yaml, sql)
  .quit / .exit       Exit the shell

Tips:
  - Statements must end with a semicolon (;)
  - Several statements on one line are parsed together
  - Ctrl-C discards the statement being typed, Ctrl-D exits
`
	_, _ = fmt.Fprintln(w, help)
}

// newKeywordCompleter completes reserved keywords and dot-commands.
func newKeywordCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, kw := range token.Keywords() {
		items = append(items, readline.PcItem(kw.String()))
	}

	formats := make([]readline.PrefixCompleterInterface, 0, len(output.Formats()))
	for _, f := range output.Formats() {
		formats = append(formats, readline.PcItem(string(f)))
	}

	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".output", formats...),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}
