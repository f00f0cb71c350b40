package parser_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/silisk/pkg/parser"
)

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		offset  int
		message string
	}{
		{"missing projection", "SELECT FROM t;", 7, "expected expression, found FROM"},
		{"keyword as table", "SELECT * FROM select;", 14, "reserved keyword SELECT cannot be used as an identifier"},
		{"keyword as qualified column", "SELECT t.from FROM t;", 9, "reserved keyword FROM cannot be used as an identifier"},
		{"keyword as alias", "SELECT a AS order FROM t;", 12, "reserved keyword ORDER cannot be used as an identifier"},
		{"missing semicolon", "SELECT a FROM t", 15, `expected ";", found end of input`},
		{"trailing statement", "SELECT a FROM t; SELECT", 17, "unexpected SELECT after end of statement"},
		{"empty input", "", 0, "expected statement, found end of input"},
		{"unknown statement", "EXPLAIN SELECT;", 0, `expected statement, found identifier "EXPLAIN"`},
		{"unmatched open paren", "SELECT (a FROM t;", 10, `expected ")", found FROM`},
		{"unmatched close paren", "SELECT a) FROM t;", 8, `expected FROM, found ")"`},
		{"unclosed function", "SELECT f(a FROM t;", 11, `expected ")", found FROM`},
		{"sign after multiplication", "SELECT a * -b FROM t;", 11, `expected expression, found "-"`},
		{"second sign before column", "SELECT --a FROM t;", 8, `expected expression, found "-"`},
		{"sign without operand", "SELECT a * - FROM t;", 11, `expected expression, found "-"`},
		{"double NOT", "SELECT a FROM t WHERE NOT NOT b;", 26, "expected expression, found NOT"},
		{"chained comparison", "SELECT a FROM t WHERE a < b < c;", 28, `expected ";", found "<"`},
		{"comparison in projection", "SELECT a = 1 FROM t;", 9, `expected FROM, found "="`},
		{"star with columns", "SELECT *, a FROM t;", 8, `expected FROM, found ","`},
		{"alias without AS", "SELECT a b FROM t;", 9, `expected FROM, found identifier "b"`},
		{"missing FROM", "SELECT a;", 8, `expected FROM, found ";"`},
		{"ORDER without BY", "SELECT a FROM t ORDER a;", 22, `expected BY, found identifier "a"`},
		{"ORDER BY expression", "SELECT a FROM t ORDER BY 1;", 25, "expected column name, found number 1"},
		{"NULL is not a literal", "SELECT a FROM t WHERE a = NULL;", 26, "expected expression, found NULL"},
		{"bang equals", "SELECT a FROM t WHERE a != 1;", 24, `illegal character '!'`},
		{"leading zero", "INSERT INTO t VALUES (007);", 22, `malformed number literal "007"`},
		{"missing fraction", "SELECT 1. FROM t;", 7, `malformed number literal "1."`},
		{"unterminated string", "SELECT 'abc FROM t;", 7, "unterminated string literal"},
		{"non-ascii identifier", "SELECT café FROM t;", 10, "illegal character 'é'"},
		{"expression in VALUES", "INSERT INTO t VALUES (a);", 22, `expected literal, found identifier "a"`},
		{"arithmetic in VALUES", "INSERT INTO t VALUES (1 + 2);", 24, `expected ")", found "+"`},
		{"sign before string", "INSERT INTO t VALUES (-'x');", 23, "expected number, found string literal"},
		{"empty VALUES", "INSERT INTO t VALUES ();", 22, `expected literal, found ")"`},
		{"INSERT column list", "INSERT INTO t (a) VALUES (1);", 14, `expected VALUES, found "("`},
		{"UPDATE without SET", "UPDATE t a = 1;", 9, `expected SET, found identifier "a"`},
		{"UPDATE boolean value", "UPDATE t SET a = b = c;", 19, `expected ";", found "="`},
		{"DELETE without FROM", "DELETE t;", 7, `expected FROM, found identifier "t"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql)
			se := requireSyntaxError(t, err)
			assert.Equal(t, tt.message, se.Message)
			assert.Equal(t, tt.offset, se.Offset())
			assert.Equal(t, tt.sql, se.SQL)
		})
	}
}

func TestSyntaxError_Error(t *testing.T) {
	_, err := parser.Parse("SELECT a\nFROM select;")
	se := requireSyntaxError(t, err)
	assert.Equal(t, 2, se.Pos.Line)
	assert.Equal(t, 6, se.Pos.Column)
	assert.Equal(t, "syntax error at line 2, column 6: reserved keyword SELECT cannot be used as an identifier", err.Error())
}

func TestDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "single line",
			sql:  "SELECT FROM t;",
			want: "syntax error at line 1, column 8: expected expression, found FROM\n" +
				"  SELECT FROM t;\n" +
				"         ^",
		},
		{
			name: "only the offending line is shown",
			sql:  "SELECT a\nFROM select;\n",
			want: "syntax error at line 2, column 6: reserved keyword SELECT cannot be used as an identifier\n" +
				"  FROM select;\n" +
				"       ^",
		},
		{
			name: "caret at end of input",
			sql:  "SELECT a FROM t",
			want: "syntax error at line 1, column 16: expected \";\", found end of input\n" +
				"  SELECT a FROM t\n" +
				"                 ^",
		},
		{
			name: "tab is kept in the gutter",
			sql:  "SELECT\tFROM t;",
			want: "syntax error at line 1, column 8: expected expression, found FROM\n" +
				"  SELECT\tFROM t;\n" +
				"        \t^",
		},
		{
			name: "wide runes take two cells",
			sql:  "SELECT '日本' 1 FROM t;",
			want: "syntax error at line 1, column 17: expected FROM, found number 1\n" +
				"  SELECT '日本' 1 FROM t;\n" +
				"                ^",
		},
		{
			name: "carriage return is trimmed",
			sql:  "SELECT FROM t;\r\n",
			want: "syntax error at line 1, column 8: expected expression, found FROM\n" +
				"  SELECT FROM t;\n" +
				"         ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql)
			require.Error(t, err)
			assert.Equal(t, tt.want, parser.Diagnostic(err))
		})
	}
}

func TestDiagnostic_NonSyntaxErrors(t *testing.T) {
	assert.Equal(t, "", parser.Diagnostic(nil))
	assert.Equal(t, "boom", parser.Diagnostic(errors.New("boom")))

	ierr := &parser.InternalGrammarError{Production: "factor", Detail: "no rule"}
	assert.Equal(t, "internal grammar error in factor: no rule", parser.Diagnostic(ierr))
}

func TestDiagnostic_WrappedSyntaxError(t *testing.T) {
	_, err := parser.Parse("SELECT FROM t;")
	wrapped := fmt.Errorf("query.sql: %w", err)
	assert.Contains(t, parser.Diagnostic(wrapped), "  SELECT FROM t;\n         ^")
}
