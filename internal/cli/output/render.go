package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/format"
	"github.com/leapstack-labs/silisk/pkg/parser"
	"github.com/leapstack-labs/silisk/pkg/token"
)

// Statement writes one statement in the current format.
func (r *Renderer) Statement(stmt core.Stmt) error {
	return r.Statements([]core.Stmt{stmt})
}

// Statements writes stmts in the current format. JSON output is an array
// when there is more than one statement; YAML output is a document stream.
func (r *Renderer) Statements(stmts []core.Stmt) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if len(stmts) == 1 {
			return enc.Encode(format.ToMap(stmts[0]))
		}
		maps := make([]map[string]any, len(stmts))
		for i, s := range stmts {
			maps[i] = format.ToMap(s)
		}
		return enc.Encode(maps)

	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		for _, s := range stmts {
			if err := enc.Encode(format.ToMap(s)); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
		}
		return enc.Close()

	case FormatSQL:
		for _, s := range stmts {
			r.Println(format.SQL(s))
		}
		return nil

	default:
		for i, s := range stmts {
			if i > 0 {
				r.Println()
			}
			r.Println(format.Tree(s))
		}
		return nil
	}
}

// Diagnostic writes err to stderr. Syntax errors get the offending source
// line and a caret under the error position.
func (r *Renderer) Diagnostic(err error) {
	r.diagnostic("", err)
}

// FileDiagnostic is Diagnostic with the file name as prefix.
func (r *Renderer) FileDiagnostic(path string, err error) {
	r.diagnostic(path+":", err)
}

func (r *Renderer) diagnostic(prefix string, err error) {
	if err == nil {
		return
	}
	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteByte(' ')
	}
	b.WriteString(r.styles.err.Render("error:"))
	b.WriteByte(' ')
	b.WriteString(err.Error())
	b.WriteByte('\n')

	var se *parser.SyntaxError
	if errors.As(err, &se) {
		line, caret := se.Snippet()
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n  ")
		b.WriteString(caret[:len(caret)-1])
		b.WriteString(r.styles.caret.Render("^"))
		b.WriteByte('\n')
	}
	_, _ = fmt.Fprint(r.errOut, b.String())
}

// Success writes a status line for a file that parsed cleanly.
func (r *Renderer) Success(path string, statements int) {
	noun := "statements"
	if statements == 1 {
		noun = "statement"
	}
	_, _ = fmt.Fprintf(r.out, "%s: %s %s\n", path, r.styles.ok.Render("OK"),
		r.styles.dim.Render(fmt.Sprintf("(%d %s)", statements, noun)))
}

// Info writes a dimmed informational line to stderr.
func (r *Renderer) Info(msg string, a ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.dim.Render(fmt.Sprintf(msg, a...)))
}

// Tokens writes the token stream. JSON and YAML formats emit a list of
// records; every other format prints a table.
func (r *Renderer) Tokens(toks []token.Token) error {
	records := make([]map[string]any, len(toks))
	for i, tok := range toks {
		records[i] = map[string]any{
			"type":    tok.Type.String(),
			"literal": tok.Literal,
			"line":    tok.Pos.Line,
			"column":  tok.Pos.Column,
			"offset":  tok.Pos.Offset,
		}
	}

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"TYPE", "LITERAL", "LINE:COL", "OFFSET"})
	for _, tok := range toks {
		t.AppendRow(table.Row{
			tok.Type.String(),
			tok.Literal,
			fmt.Sprintf("%d:%d", tok.Pos.Line, tok.Pos.Column),
			tok.Pos.Offset,
		})
	}
	t.Render()
	return nil
}
