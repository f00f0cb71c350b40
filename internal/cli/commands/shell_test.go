package commands

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/silisk/internal/cli/output"
	clitest "github.com/leapstack-labs/silisk/internal/cli/testutil"
	"github.com/leapstack-labs/silisk/internal/testutil"
	"github.com/leapstack-labs/silisk/pkg/parser"
)

// interrupt stands in for Ctrl-C in scripted input.
const interrupt = "\x03"

// scriptedReader feeds fixed lines to the shell loop.
type scriptedReader struct {
	lines   []string
	prompts []string
	read    int
	err     error // returned once the lines run out; io.EOF when nil
}

func (s *scriptedReader) Readline() (string, error) {
	if s.read >= len(s.lines) {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[s.read]
	s.read++
	if line == interrupt {
		return "", readline.ErrInterrupt
	}
	return line, nil
}

func (s *scriptedReader) SetPrompt(prompt string) {
	s.prompts = append(s.prompts, prompt)
}

func runScript(t *testing.T, format output.Format, lines ...string) (*clitest.TestRenderer, *scriptedReader) {
	t.Helper()
	tr := clitest.NewTestRendererPlain(format)
	lr := &scriptedReader{lines: lines}
	sh := newShell(tr.Renderer, parser.DefaultConfig(), testutil.NewTestLogger(t))
	require.NoError(t, sh.run(lr))
	return tr, lr
}

func TestShell_SingleLine(t *testing.T) {
	tr, _ := runScript(t, output.FormatSQL, "select a from t;")
	assert.Equal(t, "SELECT a FROM t;\n", tr.Output())
	assert.Empty(t, tr.ErrorOutput())
}

func TestShell_MultiLine(t *testing.T) {
	tr, lr := runScript(t, output.FormatSQL,
		"select a",
		"  from t",
		"  where a > 1;",
	)

	assert.Equal(t, "SELECT a FROM t WHERE a > 1;\n", tr.Output())
	assert.Equal(t, []string{shellContPrompt, shellContPrompt, shellPrompt}, lr.prompts)
}

func TestShell_SeveralStatementsOnOneLine(t *testing.T) {
	tr, _ := runScript(t, output.FormatSQL, "drop table a; drop table b;")
	assert.Equal(t, "DROP TABLE a;\nDROP TABLE b;\n", tr.Output())
}

func TestShell_SyntaxErrorKeepsRunning(t *testing.T) {
	tr, _ := runScript(t, output.FormatSQL,
		"select a",
		"from;",
		"drop table t;",
	)

	assert.Contains(t, tr.ErrorOutput(), "error: syntax error at line 2, column 5")
	assert.Contains(t, tr.ErrorOutput(), "  from;\n      ^\n")
	assert.Equal(t, "DROP TABLE t;\n", tr.Output())
}

func TestShell_DotCommands(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		wantOut   []string
		wantErr   []string
		notOutput []string
	}{
		{
			name:    "help",
			lines:   []string{".help"},
			wantOut: []string{".output [format]", ".quit / .exit"},
		},
		{
			name:    "show output format",
			lines:   []string{".output"},
			wantOut: []string{"output: tree"},
		},
		{
			name:    "switch output format",
			lines:   []string{".output sql", "drop table t;"},
			wantOut: []string{"DROP TABLE t;"},
		},
		{
			name:    "bad output format",
			lines:   []string{".output csv"},
			wantErr: []string{`unknown output format "csv"`},
		},
		{
			name:    "unknown command",
			lines:   []string{".tables"},
			wantErr: []string{"unknown command .tables"},
		},
		{
			name:      "quit stops reading",
			lines:     []string{".quit", "drop table t;"},
			notOutput: []string{"DropTable"},
		},
		{
			name:      "exit stops reading",
			lines:     []string{".EXIT", "drop table t;"},
			notOutput: []string{"DropTable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := runScript(t, output.FormatTree, tt.lines...)
			for _, want := range tt.wantOut {
				assert.Contains(t, tr.Output(), want)
			}
			for _, want := range tt.wantErr {
				assert.Contains(t, tr.ErrorOutput(), want)
			}
			for _, unwanted := range tt.notOutput {
				assert.NotContains(t, tr.Output(), unwanted)
			}
		})
	}
}

func TestShell_DotInsideStatementIsSQL(t *testing.T) {
	tr, _ := runScript(t, output.FormatSQL,
		"select t",
		".a from t;",
	)
	assert.Equal(t, "SELECT t.a FROM t;\n", tr.Output())
}

func TestShell_InterruptDiscardsBuffer(t *testing.T) {
	tr, lr := runScript(t, output.FormatSQL,
		"select broken",
		interrupt,
		"drop table t;",
	)

	assert.Equal(t, "DROP TABLE t;\n", tr.Output())
	assert.Empty(t, tr.ErrorOutput())
	assert.Equal(t, []string{shellContPrompt, shellPrompt, shellPrompt}, lr.prompts)
}

func TestShell_LogsParsedStatements(t *testing.T) {
	tr := clitest.NewTestRendererPlain(output.FormatSQL)
	logger, logs := testutil.NewCaptureLogger(t)
	sh := newShell(tr.Renderer, parser.DefaultConfig(), logger)

	require.NoError(t, sh.run(&scriptedReader{lines: []string{"drop table a; drop table b;"}}))
	assert.True(t, logs.Contains("parsed statements"))
	assert.True(t, logs.Contains("count=2"))
}

func TestShell_ReadError(t *testing.T) {
	tr := clitest.NewTestRendererPlain(output.FormatTree)
	boom := errors.New("terminal gone")
	sh := newShell(tr.Renderer, parser.DefaultConfig(), testutil.NewTestLogger(t))

	err := sh.run(&scriptedReader{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestKeywordCompleter(t *testing.T) {
	c := newKeywordCompleter()

	var names []string
	for _, child := range c.GetChildren() {
		names = append(names, strings.TrimSpace(string(child.GetName())))
	}
	assert.Contains(t, names, "SELECT")
	assert.Contains(t, names, "WHERE")
	assert.Contains(t, names, ".output")
}
