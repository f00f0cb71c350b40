package parser

import (
	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/token"
)

// Expression parsing as a precedence cascade. Each level delegates to the
// next tighter one and folds its own operators left-associatively, so
// a - b - c parses as (a - b) - c.
//
// Grammar (loosest to tightest):
//
//	bool_expr     → bool_term (OR bool_term)*
//	bool_term     → bool_factor (AND bool_factor)*
//	bool_factor   → [NOT] predicate
//	predicate     → arith_expr [cmp_op arith_expr]
//	arith_expr    → term (("+" | "-") term)*
//	term          → signed_factor (("*" | "/" | "%") factor)*
//	signed_factor → ["+" | "-"] factor
//	factor        → literal | column_ref | func_call | "(" bool_expr ")"
//	cmp_op        → "=" | "<>" | "<" | "<=" | ">" | ">="

// parseBoolExpr parses an OR chain.
func (p *Parser) parseBoolExpr() (core.Expr, error) {
	left, err := p.parseBoolTerm()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		right, err := p.parseBoolTerm()
		if err != nil {
			return nil, err
		}
		left = &core.LogicalExpr{Op: core.OpOr, Left: left, Right: right}
	}
	return left, nil
}

// parseBoolTerm parses an AND chain.
func (p *Parser) parseBoolTerm() (core.Expr, error) {
	left, err := p.parseBoolFactor()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		right, err := p.parseBoolFactor()
		if err != nil {
			return nil, err
		}
		left = &core.LogicalExpr{Op: core.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

// parseBoolFactor parses an optionally negated predicate.
func (p *Parser) parseBoolFactor() (core.Expr, error) {
	negate := p.match(token.NOT)
	expr, err := p.parsePredicate()
	if err != nil {
		return nil, err
	}
	if negate {
		return &core.NotExpr{Expr: expr}, nil
	}
	return expr, nil
}

// parsePredicate parses an arithmetic expression with at most one comparison.
func (p *Parser) parsePredicate() (core.Expr, error) {
	left, err := p.parseArithExpr()
	if err != nil {
		return nil, err
	}
	if !token.IsComparison(p.token.Type) {
		return left, nil
	}

	op := compareOp(p.token.Type)
	p.nextToken()
	right, err := p.parseArithExpr()
	if err != nil {
		return nil, err
	}
	return &core.CompareExpr{Op: op, Left: left, Right: right}, nil
}

// parseArithExpr parses a chain of additive operators.
func (p *Parser) parseArithExpr() (core.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := arithOp(p.token.Type)
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &core.ArithExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm parses a chain of multiplicative operators. Only the first
// operand may carry a sign.
func (p *Parser) parseTerm() (core.Expr, error) {
	left, err := p.parseSignedFactor()
	if err != nil {
		return nil, err
	}
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		op := arithOp(p.token.Type)
		p.nextToken()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &core.ArithExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseSignedFactor parses a factor with an optional sign. A leading '+'
// is dropped.
func (p *Parser) parseSignedFactor() (core.Expr, error) {
	switch {
	case p.match(token.MINUS):
		expr, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &core.NegExpr{Expr: expr}, nil
	case p.match(token.PLUS):
		return p.parseFactor()
	default:
		return p.parseFactor()
	}
}

// compareOp maps a comparison token to its operator.
func compareOp(t token.TokenType) core.CompareOp {
	switch t {
	case token.EQ:
		return core.OpEq
	case token.NE:
		return core.OpNeq
	case token.LT:
		return core.OpLt
	case token.LE:
		return core.OpLte
	case token.GT:
		return core.OpGt
	case token.GE:
		return core.OpGte
	}
	internalError("predicate", "no comparison operator for token %s", t)
	return 0
}

// arithOp maps an arithmetic token to its operator.
func arithOp(t token.TokenType) core.ArithOp {
	switch t {
	case token.PLUS:
		return core.OpAdd
	case token.MINUS:
		return core.OpSub
	case token.STAR:
		return core.OpMul
	case token.SLASH:
		return core.OpDiv
	case token.PERCENT:
		return core.OpMod
	}
	internalError("arith_expr", "no arithmetic operator for token %s", t)
	return 0
}
