package format

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/token"
)

// Binding strength of each expression form, loosest first. A child whose
// strength is below what its position in the grammar requires is wrapped
// in parentheses.
const (
	precLowest  = iota
	precOr      // OR
	precAnd     // AND
	precNot     // NOT
	precCompare // = <> < <= > >=
	precAdd     // + -
	precMul     // * / %
	precNeg     // unary -
	precFactor  // literals, columns, calls, parenthesized expressions
)

// precArith is what arithmetic-only positions (projections, function
// arguments, SET values) require.
const precArith = precAdd

func precedence(e core.Expr) int {
	switch expr := e.(type) {
	case *core.LogicalExpr:
		if expr.Op == core.OpOr {
			return precOr
		}
		return precAnd
	case *core.NotExpr:
		return precNot
	case *core.CompareExpr:
		return precCompare
	case *core.ArithExpr:
		if expr.Op == core.OpAdd || expr.Op == core.OpSub {
			return precAdd
		}
		return precMul
	case *core.NegExpr:
		return precNeg
	default:
		return precFactor
	}
}

// formatExpr prints e, parenthesized if it binds looser than minPrec.
func (p *Printer) formatExpr(e core.Expr, minPrec int) {
	if e == nil {
		return
	}
	if precedence(e) < minPrec {
		p.write("(")
		defer p.write(")")
	}

	switch expr := e.(type) {
	case *core.NumberLiteral:
		p.write(formatNumber(expr))
	case *core.StringLiteral:
		p.write(quoteString(expr.Value))
	case *core.ColumnRef:
		p.formatColumnRef(expr)
	case *core.FuncCall:
		p.formatFuncCall(expr)
	case *core.NegExpr:
		p.write("-")
		p.formatExpr(expr.Expr, precFactor)
	case *core.NotExpr:
		p.kw(token.NOT)
		p.space()
		p.formatExpr(expr.Expr, precCompare)
	case *core.ArithExpr:
		prec := precedence(expr)
		right := precMul
		if prec == precMul {
			right = precFactor
		}
		p.formatBinary(expr.Left, expr.Op.String(), expr.Right, prec, right)
	case *core.CompareExpr:
		p.formatBinary(expr.Left, expr.Op.String(), expr.Right, precAdd, precAdd)
	case *core.LogicalExpr:
		prec := precedence(expr)
		p.formatBinary(expr.Left, expr.Op.String(), expr.Right, prec, prec+1)
	case *core.StarExpr:
		p.write("*")
	case *core.EmptyExpr:
	}
}

func (p *Printer) formatBinary(left core.Expr, op string, right core.Expr, leftPrec, rightPrec int) {
	p.formatExpr(left, leftPrec)
	p.space()
	p.write(op)
	p.space()
	p.formatExpr(right, rightPrec)
}

func (p *Printer) formatColumnRef(c *core.ColumnRef) {
	if c.Qualified() {
		p.write(c.Table)
		p.write(".")
	}
	p.write(c.Column)
}

func (p *Printer) formatFuncCall(fn *core.FuncCall) {
	p.write(fn.Name)
	p.write("(")
	p.formatList(len(fn.Args), func(i int) {
		p.formatExpr(fn.Args[i], precArith)
	}, ", ", false)
	p.write(")")
}

func (p *Printer) formatLiteral(lit core.Literal) {
	switch l := lit.(type) {
	case *core.NumberLiteral:
		p.write(formatNumber(l))
	case *core.StringLiteral:
		p.write(quoteString(l.Value))
	}
}

// formatNumber renders the shortest decimal that parses back to the same
// value. Float-shaped literals always keep a fractional part.
func formatNumber(n *core.NumberLiteral) string {
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if !n.Integer && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quoteString wraps s in single quotes, doubling embedded quotes.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
