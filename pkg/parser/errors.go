package parser

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/leapstack-labs/silisk/pkg/token"
)

// SyntaxError reports input that does not match the grammar.
// It is the recoverable failure kind: the caller may fix the text and retry.
type SyntaxError struct {
	SQL     string         // the complete input
	Pos     token.Position // where the mismatch was detected
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Offset returns the byte offset of the error in SQL.
func (e *SyntaxError) Offset() int {
	return e.Pos.Offset
}

// Snippet returns the source line holding the error and a caret line
// pointing at the offending byte. The caret is aligned in display cells, so
// East Asian wide runes before it count as two columns and tabs are copied
// through unchanged.
func (e *SyntaxError) Snippet() (line, caret string) {
	off := e.Pos.Offset
	if off > len(e.SQL) {
		off = len(e.SQL)
	}
	if off < 0 {
		off = 0
	}

	start := strings.LastIndexByte(e.SQL[:off], '\n') + 1
	end := strings.IndexByte(e.SQL[off:], '\n')
	if end < 0 {
		end = len(e.SQL)
	} else {
		end += off
	}
	line = strings.TrimRight(e.SQL[start:end], "\r")

	var b strings.Builder
	for _, r := range e.SQL[start:off] {
		switch {
		case r == '\t':
			b.WriteByte('\t')
		case isWide(r):
			b.WriteString("  ")
		default:
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return line, b.String()
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// InternalGrammarError reports a grammar production the parser has no AST
// rule for. It is a parser defect, never a user error.
type InternalGrammarError struct {
	Production string
	Detail     string
}

func (e *InternalGrammarError) Error() string {
	return fmt.Sprintf("internal grammar error in %s: %s", e.Production, e.Detail)
}

// internalError aborts the parse. Parse recovers the panic and returns the
// error to the caller.
func internalError(production, format string, args ...any) {
	panic(&InternalGrammarError{Production: production, Detail: fmt.Sprintf(format, args...)})
}

// Diagnostic renders err for display. A SyntaxError is shown with the
// offending line and a caret under the failure position:
//
//	syntax error at line 1, column 8: expected expression, found FROM
//	  SELECT FROM t;
//	         ^
//
// Any other error renders as err.Error().
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		return err.Error()
	}
	line, caret := se.Snippet()
	return se.Error() + "\n  " + line + "\n  " + caret
}

// Common error messages
const (
	ErrUnexpectedToken    = "expected %s, found %s"
	ErrReservedKeyword    = "reserved keyword %s cannot be used as an identifier"
	ErrUnterminatedString = "unterminated string literal"
	ErrNewlineInString    = "newline in string literal"
	ErrInvalidNumber      = "malformed number literal %q"
	ErrNumberRange        = "number literal %s out of range"
	ErrIllegalCharacter   = "illegal character %q"
	ErrMaxDepth           = "expression nesting exceeds maximum depth of %d"
	ErrTrailingInput      = "unexpected %s after end of statement"
	ErrInvalidSize        = "invalid type size %s: must be a positive integer"
)
