package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/token"
)

// Primary expression parsing: literals, column refs, function calls.
//
// Grammar:
//
//	factor        → literal | column_ref | func_call | "(" bool_expr ")"
//	literal       → ["+" | "-"] NUMBER | STRING
//	column_ref    → [table "."] column
//	func_call     → identifier "(" [arith_expr ("," arith_expr)*] ")"

// parseFactor parses the tightest-binding expression forms.
func (p *Parser) parseFactor() (core.Expr, error) {
	switch p.token.Type {
	case token.NUMBER:
		return p.parseNumber(false)

	case token.STRING:
		lit := &core.StringLiteral{Value: p.token.Literal}
		p.nextToken()
		return lit, nil

	case token.IDENT:
		if p.checkPeek(token.LPAREN) {
			return p.parseFuncCall()
		}
		return p.parseColumnRef()

	case token.LPAREN:
		return p.parseParenExpr()

	case token.MINUS, token.PLUS:
		// a sign is part of a numeric literal; columns take no sign here
		if p.checkPeek(token.NUMBER) {
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			return lit, nil
		}
		return nil, p.unexpected("expression")

	default:
		return nil, p.unexpected("expression")
	}
}

// parseParenExpr parses a parenthesized boolean expression.
func (p *Parser) parseParenExpr() (core.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.nextToken() // consume (
	expr, err := p.parseBoolExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseFuncCall parses a function call. The name keeps its spelling.
func (p *Parser) parseFuncCall() (core.Expr, error) {
	fn := &core.FuncCall{Name: p.token.Literal}
	p.nextToken() // consume name

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.nextToken() // consume (
	if p.match(token.RPAREN) {
		return fn, nil
	}

	for {
		arg, err := p.parseArithExpr()
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, arg)
		if !p.match(token.COMMA) {
			break
		}
	}

	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseColumnRef parses a possibly qualified column reference.
func (p *Parser) parseColumnRef() (*core.ColumnRef, error) {
	name, err := p.parseIdent("column name")
	if err != nil {
		return nil, err
	}
	if !p.match(token.DOT) {
		return &core.ColumnRef{Column: name}, nil
	}
	column, err := p.parseIdent("column name")
	if err != nil {
		return nil, err
	}
	return &core.ColumnRef{Table: name, Column: column}, nil
}

// parseLiteral parses a constant value. A sign is folded into a numeric
// literal instead of producing a NegExpr.
func (p *Parser) parseLiteral() (core.Literal, error) {
	switch p.token.Type {
	case token.STRING:
		lit := &core.StringLiteral{Value: p.token.Literal}
		p.nextToken()
		return lit, nil

	case token.MINUS, token.PLUS:
		negative := p.check(token.MINUS)
		p.nextToken()
		if !p.check(token.NUMBER) {
			return nil, p.unexpected("number")
		}
		return p.parseNumber(negative)

	case token.NUMBER:
		return p.parseNumber(false)

	default:
		return nil, p.unexpected("literal")
	}
}

// parseNumber converts the current NUMBER token.
func (p *Parser) parseNumber(negative bool) (*core.NumberLiteral, error) {
	lit := p.token.Literal
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, p.errorf(ErrNumberRange, lit)
		}
		return nil, p.errorf(ErrInvalidNumber, lit)
	}
	if negative {
		v = -v
	}
	p.nextToken()
	return &core.NumberLiteral{Value: v, Integer: !strings.Contains(lit, ".")}, nil
}

// ---------- Depth Guard ----------

// enter records one more level of expression nesting. It fails at the
// current token once the configured maximum is exceeded.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		return p.errorf(ErrMaxDepth, p.maxDepth)
	}
	return nil
}

// leave undoes enter.
func (p *Parser) leave() {
	p.depth--
}
