// Package parser turns SQL statement text into a core AST.
//
// # Usage
//
//	stmt, err := parser.Parse("SELECT a, b FROM t WHERE a > 1;")
//	if err != nil {
//	    fmt.Println(parser.Diagnostic(err))
//	}
//
// Parsing is a pure function of its input: a Parser holds no state beyond a
// single call, so any number of goroutines may parse concurrently.
//
// # Grammar Overview
//
// The parser is a single-pass recursive descent parser that builds AST nodes
// as each rule matches:
//
//	statement     → (select | insert | delete | update
//	                 | create_table | create_index | drop_table | drop_index) ";"
//	select        → SELECT [DISTINCT | ALL] select_list FROM table_list
//	                [WHERE bool_expr] [ORDER BY order_list]
//
// See each file for detailed grammar rules for that section.
//
// # Errors
//
// Input that does not match the grammar yields a *SyntaxError carrying the
// byte offset of the offending token. A production the parser cannot
// translate into an AST node yields an *InternalGrammarError; it signals a
// parser bug, not bad input.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/token"
)

// DefaultMaxDepth is the default limit on nested parentheses and function
// calls in one expression.
const DefaultMaxDepth = 200

// Config holds parser options.
type Config struct {
	// MaxDepth bounds expression nesting. Values <= 0 mean DefaultMaxDepth.
	MaxDepth int
}

// DefaultConfig returns the default parser configuration.
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

// Parser parses SQL into an AST.
type Parser struct {
	sql      string
	lexer    *Lexer
	token    token.Token // current token
	peek     token.Token // lookahead token
	depth    int
	maxDepth int
}

// NewParser creates a new parser for the given SQL input.
func NewParser(sql string, cfg Config) *Parser {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &Parser{
		sql:      sql,
		lexer:    NewLexer(sql),
		maxDepth: maxDepth,
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses exactly one statement terminated by ';'. Only whitespace may
// follow the terminator.
func Parse(sql string) (core.Stmt, error) {
	return ParseWithConfig(sql, DefaultConfig())
}

// ParseWithConfig is Parse with explicit options.
func ParseWithConfig(sql string, cfg Config) (stmt core.Stmt, err error) {
	p := NewParser(sql, cfg)
	defer func() {
		if ierr := recoverGrammar(recover()); ierr != nil {
			stmt, err = nil, ierr
		}
	}()

	stmt, err = p.parseStatement()
	if err != nil {
		return nil, err
	}
	if !p.check(token.EOF) {
		return nil, p.errorf(ErrTrailingInput, describe(p.token))
	}
	return stmt, nil
}

// ParseScript parses a sequence of ';'-terminated statements. It stops at
// the first error. Input holding only whitespace yields no statements.
func ParseScript(sql string, cfg Config) (stmts []core.Stmt, err error) {
	p := NewParser(sql, cfg)
	defer func() {
		if ierr := recoverGrammar(recover()); ierr != nil {
			stmts, err = nil, ierr
		}
	}()

	for !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// recoverGrammar converts a recovered *InternalGrammarError into an error.
// Any other panic value is re-raised.
func recoverGrammar(r any) error {
	if r == nil {
		return nil
	}
	if ierr, ok := r.(*InternalGrammarError); ok {
		return ierr
	}
	panic(r)
}

// parseStatement dispatches on the leading keyword and consumes the
// terminating semicolon.
func (p *Parser) parseStatement() (core.Stmt, error) {
	var (
		stmt core.Stmt
		err  error
	)

	switch p.token.Type {
	case token.SELECT:
		stmt, err = p.parseSelect()
	case token.INSERT:
		stmt, err = p.parseInsert()
	case token.DELETE:
		stmt, err = p.parseDelete()
	case token.UPDATE:
		stmt, err = p.parseUpdate()
	case token.CREATE:
		switch p.peek.Type {
		case token.TABLE:
			stmt, err = p.parseCreateTable()
		case token.INDEX:
			stmt, err = p.parseCreateIndex()
		default:
			p.nextToken()
			return nil, p.unexpected("TABLE or INDEX")
		}
	case token.DROP:
		switch p.peek.Type {
		case token.TABLE:
			stmt, err = p.parseDropTable()
		case token.INDEX:
			stmt, err = p.parseDropIndex()
		default:
			p.nextToken()
			return nil, p.unexpected("TABLE or INDEX")
		}
	default:
		return nil, p.unexpected("statement")
	}
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise returns an error.
func (p *Parser) expect(t token.TokenType) error {
	if p.check(t) {
		p.nextToken()
		return nil
	}
	return p.unexpected(describeType(t))
}

// parseIdent consumes an identifier. what names the expected construct in
// the error message.
func (p *Parser) parseIdent(what string) (string, error) {
	switch {
	case p.check(token.IDENT):
		name := p.token.Literal
		p.nextToken()
		return name, nil
	case token.IsKeyword(p.token.Type):
		return "", p.errorf(ErrReservedKeyword, p.token.Type)
	default:
		return "", p.unexpected(what)
	}
}

// ---------- Error Helpers ----------

// errorf returns a SyntaxError at the current token.
func (p *Parser) errorf(format string, args ...any) *SyntaxError {
	return p.errorAt(p.token.Pos, fmt.Sprintf(format, args...))
}

// errorAt returns a SyntaxError at pos.
func (p *Parser) errorAt(pos token.Position, msg string) *SyntaxError {
	return &SyntaxError{SQL: p.sql, Pos: pos, Message: msg}
}

// unexpected reports that the current token is not what the grammar needs.
// An ILLEGAL token reports the lexical problem instead.
func (p *Parser) unexpected(expected string) *SyntaxError {
	if reason := p.lexer.Reason(p.token); reason != "" {
		return p.errorAt(p.token.Pos, reason)
	}
	return p.errorf(ErrUnexpectedToken, expected, describe(p.token))
}

// describe renders a token for error messages.
func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case token.NUMBER:
		return "number " + tok.Literal
	case token.STRING:
		return "string literal"
	case token.ILLEGAL:
		return fmt.Sprintf("%q", tok.Literal)
	default:
		return describeType(tok.Type)
	}
}

// describeType renders a token type for error messages. Keywords are bare,
// punctuation is quoted.
func describeType(t token.TokenType) string {
	if token.IsOperator(t) {
		return fmt.Sprintf("%q", t.String())
	}
	return t.String()
}
