package output_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/silisk/internal/cli/output"
	"github.com/leapstack-labs/silisk/internal/cli/testutil"
	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/parser"
)

func mustParse(t *testing.T, sql string) core.Stmt {
	t.Helper()
	stmt, err := parser.Parse(sql)
	require.NoError(t, err)
	return stmt
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    output.Format
		wantErr bool
	}{
		{in: "tree", want: output.FormatTree},
		{in: "JSON", want: output.FormatJSON},
		{in: " yaml ", want: output.FormatYAML},
		{in: "sql", want: output.FormatSQL},
		{in: "markdown", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := output.ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_Statement(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t WHERE a > 1;")

	t.Run("tree", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatTree)
		require.NoError(t, tr.Statement(stmt))
		assert.Contains(t, tr.Output(), "Select")
		assert.Contains(t, tr.Output(), "Table t")
		assert.Contains(t, tr.Output(), "Compare >")
	})

	t.Run("sql", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatSQL)
		require.NoError(t, tr.Statement(stmt))
		assert.Equal(t, "SELECT a FROM t WHERE a > 1;\n", tr.Output())
	})

	t.Run("json", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatJSON)
		require.NoError(t, tr.Statement(stmt))

		var got map[string]any
		require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
		assert.Equal(t, "Select", got["node"])
	})

	t.Run("yaml", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatYAML)
		require.NoError(t, tr.Statement(stmt))

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(tr.Out.Bytes(), &got))
		assert.Equal(t, "Select", got["node"])
	})
}

func TestRenderer_Statements(t *testing.T) {
	stmts, err := parser.ParseScript("DROP TABLE a; DROP TABLE b;", parser.DefaultConfig())
	require.NoError(t, err)

	t.Run("json array", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatJSON)
		require.NoError(t, tr.Statements(stmts))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[1]["table"])
	})

	t.Run("yaml stream", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatYAML)
		require.NoError(t, tr.Statements(stmts))

		dec := yaml.NewDecoder(strings.NewReader(tr.Output()))
		var docs int
		for {
			var m map[string]any
			if err := dec.Decode(&m); err != nil {
				break
			}
			docs++
		}
		assert.Equal(t, 2, docs)
	})

	t.Run("sql lines", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatSQL)
		require.NoError(t, tr.Statements(stmts))
		assert.Equal(t, "DROP TABLE a;\nDROP TABLE b;\n", tr.Output())
	})
}

func TestRenderer_SetFormat(t *testing.T) {
	tr := testutil.NewTestRendererPlain(output.FormatTree)
	require.NoError(t, tr.SetFormat("sql"))
	assert.Equal(t, output.FormatSQL, tr.Format())

	require.Error(t, tr.SetFormat("csv"))
	assert.Equal(t, output.FormatSQL, tr.Format(), "failed change keeps the old format")
}

func TestRenderer_Diagnostic(t *testing.T) {
	_, err := parser.Parse("SELECT a FROM;")
	require.Error(t, err)

	tr := testutil.NewTestRendererPlain(output.FormatTree)
	tr.Diagnostic(err)

	assert.Empty(t, tr.Output(), "diagnostics go to stderr")
	lines := strings.Split(strings.TrimRight(tr.ErrorOutput(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "error: syntax error at line 1, column 14"), lines[0])
	assert.Equal(t, "  SELECT a FROM;", lines[1])
	assert.Equal(t, "  "+strings.Repeat(" ", 13)+"^", lines[2])
	testutil.AssertNoANSI(t, tr.ErrorOutput())
}

func TestRenderer_DiagnosticColor(t *testing.T) {
	_, err := parser.Parse("SELECT 1 +;")
	require.Error(t, err)

	tr := testutil.NewTestRenderer(output.FormatTree, output.ColorAlways)
	assert.True(t, tr.Color())
	tr.Diagnostic(err)

	assert.True(t, testutil.HasANSI(tr.ErrorOutput()))
	plain := testutil.StripANSI(tr.ErrorOutput())
	assert.Contains(t, plain, "error: syntax error")
	assert.Contains(t, plain, "  SELECT 1 +;\n")
}

func TestRenderer_DiagnosticPlainError(t *testing.T) {
	tr := testutil.NewTestRendererPlain(output.FormatTree)
	tr.FileDiagnostic("q.sql", fmt.Errorf("read q.sql: %w", errors.New("permission denied")))

	assert.Equal(t, "q.sql: error: read q.sql: permission denied\n", tr.ErrorOutput())
}

func TestRenderer_DiagnosticWrappedSyntaxError(t *testing.T) {
	_, err := parser.Parse("DROP x;")
	require.Error(t, err)

	tr := testutil.NewTestRendererPlain(output.FormatTree)
	tr.FileDiagnostic("a.sql", fmt.Errorf("a.sql: %w", err))

	out := tr.ErrorOutput()
	assert.True(t, strings.HasPrefix(out, "a.sql: error: "), out)
	assert.Contains(t, out, "  DROP x;\n       ^\n")
}

func TestRenderer_Success(t *testing.T) {
	tr := testutil.NewTestRendererPlain(output.FormatTree)
	tr.Success("a.sql", 1)
	tr.Success("b.sql", 3)

	assert.Equal(t, "a.sql: OK (1 statement)\nb.sql: OK (3 statements)\n", tr.Output())
}

func TestRenderer_Tokens(t *testing.T) {
	toks := parser.Tokenize("SELECT a;")

	t.Run("table", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatTree)
		require.NoError(t, tr.Tokens(toks))

		out := tr.Output()
		for _, want := range []string{"TYPE", "LITERAL", "LINE:COL", "OFFSET", "SELECT", "IDENT", "1:8", "EOF"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		tr := testutil.NewTestRendererPlain(output.FormatJSON)
		require.NoError(t, tr.Tokens(toks))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
		require.Len(t, got, 4)
		assert.Equal(t, "IDENT", got[1]["type"])
		assert.Equal(t, "a", got[1]["literal"])
		assert.EqualValues(t, 7, got[1]["offset"])
	})
}

func TestColorNeverWithoutTTY(t *testing.T) {
	tr := testutil.NewTestRenderer(output.FormatTree, output.ColorAuto)
	assert.False(t, tr.Color(), "auto disables color off a terminal")
}
