package format

import (
	"strconv"

	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/token"
)

func (p *Printer) formatStmt(stmt core.Stmt) {
	switch s := stmt.(type) {
	case *core.SelectStmt:
		p.formatSelectStmt(s)
	case *core.InsertStmt:
		p.formatInsertStmt(s)
	case *core.DeleteStmt:
		p.formatDeleteStmt(s)
	case *core.UpdateStmt:
		p.formatUpdateStmt(s)
	case *core.CreateTableStmt:
		p.formatCreateTableStmt(s)
	case *core.CreateIndexStmt:
		p.formatCreateIndexStmt(s)
	case *core.DropTableStmt:
		p.formatDropTableStmt(s)
	case *core.DropIndexStmt:
		p.formatDropIndexStmt(s)
	default:
		return
	}
	p.write(";")
}

func (p *Printer) formatSelectStmt(stmt *core.SelectStmt) {
	p.kw(token.SELECT)
	if stmt.Distinct {
		p.space()
		p.kw(token.DISTINCT)
	}
	p.block(len(stmt.Projections), func(i int) {
		item := stmt.Projections[i]
		p.formatExpr(item.Expr, precArith)
		if item.Alias != "" {
			p.space()
			p.kw(token.AS)
			p.space()
			p.write(item.Alias)
		}
	})

	p.clause(token.FROM)
	p.block(len(stmt.From), func(i int) {
		ref := stmt.From[i]
		p.write(ref.Name)
		if ref.Alias != "" {
			p.space()
			p.kw(token.AS)
			p.space()
			p.write(ref.Alias)
		}
	})

	p.formatWhere(stmt.Where)

	if len(stmt.OrderBy) > 0 {
		p.clause(token.ORDER, token.BY)
		p.block(len(stmt.OrderBy), func(i int) {
			item := stmt.OrderBy[i]
			p.formatColumnRef(&item.Column)
			if item.Direction == core.Desc {
				p.space()
				p.kw(token.DESC)
			}
		})
	}
}

func (p *Printer) formatWhere(where core.Expr) {
	if core.IsEmpty(where) {
		return
	}
	p.clause(token.WHERE)
	p.block(1, func(int) {
		p.formatExpr(where, precLowest)
	})
}

func (p *Printer) formatInsertStmt(stmt *core.InsertStmt) {
	p.kw(token.INSERT, token.INTO)
	p.space()
	p.write(stmt.Table)
	p.clause(token.VALUES)
	p.write(" (")
	p.formatList(len(stmt.Values), func(i int) {
		p.formatLiteral(stmt.Values[i])
	}, ", ", false)
	p.write(")")
}

func (p *Printer) formatDeleteStmt(stmt *core.DeleteStmt) {
	p.kw(token.DELETE)
	p.clause(token.FROM)
	p.space()
	p.write(stmt.Table)
	p.formatWhere(stmt.Where)
}

func (p *Printer) formatUpdateStmt(stmt *core.UpdateStmt) {
	p.kw(token.UPDATE)
	p.space()
	p.write(stmt.Table)
	p.clause(token.SET)
	p.block(len(stmt.Set), func(i int) {
		set := stmt.Set[i]
		p.write(set.Column)
		p.write(" = ")
		p.formatExpr(set.Value, precArith)
	})
	p.formatWhere(stmt.Where)
}

func (p *Printer) formatCreateTableStmt(stmt *core.CreateTableStmt) {
	p.kw(token.CREATE, token.TABLE)
	p.space()
	p.write(stmt.Table)
	p.write(" (")

	count := len(stmt.Columns)
	if stmt.Index != nil {
		count++
	}
	format := func(i int) {
		if i == len(stmt.Columns) {
			p.formatInlineIndex(stmt.Index)
			return
		}
		p.formatColumnDef(stmt.Columns[i])
	}

	if p.pretty {
		p.writeln()
		p.indent()
		p.formatList(count, format, ",", true)
		p.dedent()
		p.writeln()
	} else {
		p.formatList(count, format, ", ", false)
	}
	p.write(")")
}

func (p *Printer) formatColumnDef(col core.ColumnDef) {
	p.write(col.Name)
	p.space()
	p.formatDataType(col.Type)
	if !col.Nullable {
		p.space()
		p.kw(token.NOT, token.NULL)
	}
}

func (p *Printer) formatDataType(dt core.DataType) {
	p.write(dt.Kind.String())
	if dt.Kind.Sized() {
		p.write("(")
		p.write(strconv.Itoa(dt.Size))
		p.write(")")
	}
}

func (p *Printer) formatInlineIndex(idx *core.IndexDef) {
	p.kw(token.INDEX)
	p.space()
	p.formatIdentList(idx.Columns)
	p.space()
	p.formatUsing(idx.Kind)
}

func (p *Printer) formatCreateIndexStmt(stmt *core.CreateIndexStmt) {
	p.kw(token.CREATE, token.INDEX)
	p.space()
	p.write(stmt.Name)
	p.space()
	p.kw(token.ON)
	p.space()
	p.write(stmt.Table)
	p.space()
	p.formatIdentList(stmt.Columns)
	p.space()
	p.formatUsing(stmt.Kind)
}

func (p *Printer) formatDropTableStmt(stmt *core.DropTableStmt) {
	p.kw(token.DROP, token.TABLE)
	p.space()
	p.write(stmt.Table)
}

func (p *Printer) formatDropIndexStmt(stmt *core.DropIndexStmt) {
	p.kw(token.DROP, token.INDEX)
	p.space()
	p.write(stmt.Name)
	p.space()
	p.kw(token.ON)
	p.space()
	p.write(stmt.Table)
}

func (p *Printer) formatIdentList(names []string) {
	p.write("(")
	p.formatList(len(names), func(i int) {
		p.write(names[i])
	}, ", ", false)
	p.write(")")
}

func (p *Printer) formatUsing(kind core.IndexKind) {
	p.kw(token.USING)
	p.space()
	p.write(kind.String())
}
