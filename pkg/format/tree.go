package format

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/leapstack-labs/silisk/pkg/core"
)

// Tree renders stmt as an indented tree, one node per line.
func Tree(stmt core.Stmt) string {
	t := &treeWriter{l: list.NewWriter()}
	t.l.SetStyle(list.StyleConnectedRounded)
	t.stmt(stmt)
	return t.l.Render()
}

type treeWriter struct {
	l list.Writer
}

// node appends label and renders children beneath it.
func (t *treeWriter) node(label string, children func()) {
	t.l.AppendItem(label)
	if children == nil {
		return
	}
	t.l.Indent()
	children()
	t.l.UnIndent()
}

func (t *treeWriter) stmt(stmt core.Stmt) {
	switch s := stmt.(type) {
	case *core.SelectStmt:
		label := "Select"
		if s.Distinct {
			label = "Select DISTINCT"
		}
		t.node(label, func() {
			t.node("Projections", func() {
				for _, item := range s.Projections {
					if item.Alias == "" {
						t.expr(item.Expr)
						continue
					}
					t.node("AS "+item.Alias, func() { t.expr(item.Expr) })
				}
			})
			t.node("From", func() {
				for _, ref := range s.From {
					label := "Table " + ref.Name
					if ref.Alias != "" {
						label += " AS " + ref.Alias
					}
					t.node(label, nil)
				}
			})
			t.where(s.Where)
			if len(s.OrderBy) > 0 {
				t.node("OrderBy", func() {
					for _, item := range s.OrderBy {
						t.node(fmt.Sprintf("Column %s %s", columnName(&item.Column), item.Direction), nil)
					}
				})
			}
		})

	case *core.InsertStmt:
		t.node("Insert "+s.Table, func() {
			for _, v := range s.Values {
				t.expr(v)
			}
		})

	case *core.DeleteStmt:
		t.node("Delete "+s.Table, func() { t.where(s.Where) })

	case *core.UpdateStmt:
		t.node("Update "+s.Table, func() {
			t.node("Set", func() {
				for _, set := range s.Set {
					t.node(set.Column+" =", func() { t.expr(set.Value) })
				}
			})
			t.where(s.Where)
		})

	case *core.CreateTableStmt:
		t.node("CreateTable "+s.Table, func() {
			for _, col := range s.Columns {
				label := fmt.Sprintf("Column %s %s", col.Name, col.Type)
				if !col.Nullable {
					label += " NOT NULL"
				}
				t.node(label, nil)
			}
			if s.Index != nil {
				t.node(fmt.Sprintf("Index %s (%s) USING %s",
					s.Index.Name, strings.Join(s.Index.Columns, ", "), s.Index.Kind), nil)
			}
		})

	case *core.CreateIndexStmt:
		t.node(fmt.Sprintf("CreateIndex %s ON %s (%s) USING %s",
			s.Name, s.Table, strings.Join(s.Columns, ", "), s.Kind), nil)

	case *core.DropTableStmt:
		t.node("DropTable "+s.Table, nil)

	case *core.DropIndexStmt:
		t.node(fmt.Sprintf("DropIndex %s ON %s", s.Name, s.Table), nil)
	}
}

func (t *treeWriter) where(e core.Expr) {
	if core.IsEmpty(e) {
		return
	}
	t.node("Where", func() { t.expr(e) })
}

func (t *treeWriter) expr(e core.Expr) {
	switch expr := e.(type) {
	case *core.NumberLiteral:
		t.node("Number "+formatNumber(expr), nil)
	case *core.StringLiteral:
		t.node("String "+quoteString(expr.Value), nil)
	case *core.ColumnRef:
		t.node("Column "+columnName(expr), nil)
	case *core.FuncCall:
		t.node("Call "+expr.Name, func() {
			for _, arg := range expr.Args {
				t.expr(arg)
			}
		})
	case *core.NegExpr:
		t.node("Neg", func() { t.expr(expr.Expr) })
	case *core.NotExpr:
		t.node("Not", func() { t.expr(expr.Expr) })
	case *core.ArithExpr:
		t.binary("Arith "+expr.Op.String(), expr.Left, expr.Right)
	case *core.CompareExpr:
		t.binary("Compare "+expr.Op.String(), expr.Left, expr.Right)
	case *core.LogicalExpr:
		t.binary(expr.Op.String(), expr.Left, expr.Right)
	case *core.StarExpr:
		t.node("*", nil)
	case *core.EmptyExpr:
		t.node("Empty", nil)
	}
}

func (t *treeWriter) binary(label string, left, right core.Expr) {
	t.node(label, func() {
		t.expr(left)
		t.expr(right)
	})
}

func columnName(c *core.ColumnRef) string {
	if c.Qualified() {
		return c.Table + "." + c.Column
	}
	return c.Column
}
