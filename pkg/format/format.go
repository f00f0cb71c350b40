package format

import (
	"github.com/leapstack-labs/silisk/pkg/core"
)

// SQL renders stmt as canonical single-line SQL terminated by ';'.
// Keywords are upper case, identifiers keep their spelling and parentheses
// appear only where the tree needs them, so parsing the result yields a
// tree equal to stmt.
func SQL(stmt core.Stmt) string {
	p := newPrinter(false)
	p.formatStmt(stmt)
	return p.String()
}

// Pretty renders stmt as multi-line SQL with one clause per line.
func Pretty(stmt core.Stmt) string {
	p := newPrinter(true)
	p.formatStmt(stmt)
	return p.String()
}

// Expr renders a single expression in canonical form.
func Expr(e core.Expr) string {
	p := newPrinter(false)
	p.formatExpr(e, precLowest)
	return p.String()
}
