package format

import (
	"github.com/leapstack-labs/silisk/pkg/core"
)

// ToMap converts stmt into nested maps and slices tagged with a "node" key,
// ready for encoding/json or yaml.v3. Absent optional parts are omitted.
func ToMap(stmt core.Stmt) map[string]any {
	switch s := stmt.(type) {
	case *core.SelectStmt:
		m := map[string]any{"node": "Select", "distinct": s.Distinct}
		projections := make([]any, 0, len(s.Projections))
		for _, item := range s.Projections {
			pm := map[string]any{"expr": exprMap(item.Expr)}
			if item.Alias != "" {
				pm["alias"] = item.Alias
			}
			projections = append(projections, pm)
		}
		m["projections"] = projections

		from := make([]any, 0, len(s.From))
		for _, ref := range s.From {
			rm := map[string]any{"name": ref.Name}
			if ref.Alias != "" {
				rm["alias"] = ref.Alias
			}
			from = append(from, rm)
		}
		m["from"] = from

		putWhere(m, s.Where)
		if len(s.OrderBy) > 0 {
			orderBy := make([]any, 0, len(s.OrderBy))
			for _, item := range s.OrderBy {
				orderBy = append(orderBy, map[string]any{
					"column":    exprMap(&item.Column),
					"direction": item.Direction.String(),
				})
			}
			m["order_by"] = orderBy
		}
		return m

	case *core.InsertStmt:
		values := make([]any, 0, len(s.Values))
		for _, v := range s.Values {
			values = append(values, exprMap(v))
		}
		return map[string]any{"node": "Insert", "table": s.Table, "values": values}

	case *core.DeleteStmt:
		m := map[string]any{"node": "Delete", "table": s.Table}
		putWhere(m, s.Where)
		return m

	case *core.UpdateStmt:
		set := make([]any, 0, len(s.Set))
		for _, c := range s.Set {
			set = append(set, map[string]any{"column": c.Column, "value": exprMap(c.Value)})
		}
		m := map[string]any{"node": "Update", "table": s.Table, "set": set}
		putWhere(m, s.Where)
		return m

	case *core.CreateTableStmt:
		columns := make([]any, 0, len(s.Columns))
		for _, c := range s.Columns {
			cm := map[string]any{"name": c.Name, "type": c.Type.Kind.String(), "nullable": c.Nullable}
			if c.Type.Kind.Sized() {
				cm["size"] = c.Type.Size
			}
			columns = append(columns, cm)
		}
		m := map[string]any{"node": "CreateTable", "table": s.Table, "columns": columns}
		if s.Index != nil {
			m["index"] = map[string]any{
				"name":    s.Index.Name,
				"table":   s.Index.Table,
				"columns": stringsToAny(s.Index.Columns),
				"kind":    s.Index.Kind.String(),
			}
		}
		return m

	case *core.CreateIndexStmt:
		return map[string]any{
			"node":    "CreateIndex",
			"name":    s.Name,
			"table":   s.Table,
			"columns": stringsToAny(s.Columns),
			"kind":    s.Kind.String(),
		}

	case *core.DropTableStmt:
		return map[string]any{"node": "DropTable", "table": s.Table}

	case *core.DropIndexStmt:
		return map[string]any{"node": "DropIndex", "name": s.Name, "table": s.Table}
	}
	return nil
}

func putWhere(m map[string]any, where core.Expr) {
	if !core.IsEmpty(where) {
		m["where"] = exprMap(where)
	}
}

func exprMap(e core.Expr) map[string]any {
	switch expr := e.(type) {
	case *core.NumberLiteral:
		return map[string]any{"node": "Number", "value": expr.Value, "integer": expr.Integer}
	case *core.StringLiteral:
		return map[string]any{"node": "String", "value": expr.Value}
	case *core.ColumnRef:
		m := map[string]any{"node": "Column", "column": expr.Column}
		if expr.Qualified() {
			m["table"] = expr.Table
		}
		return m
	case *core.FuncCall:
		args := make([]any, 0, len(expr.Args))
		for _, arg := range expr.Args {
			args = append(args, exprMap(arg))
		}
		return map[string]any{"node": "Call", "name": expr.Name, "args": args}
	case *core.NegExpr:
		return map[string]any{"node": "Neg", "expr": exprMap(expr.Expr)}
	case *core.NotExpr:
		return map[string]any{"node": "Not", "expr": exprMap(expr.Expr)}
	case *core.ArithExpr:
		return binaryMap("Arith", expr.Op.String(), expr.Left, expr.Right)
	case *core.CompareExpr:
		return binaryMap("Compare", expr.Op.String(), expr.Left, expr.Right)
	case *core.LogicalExpr:
		return binaryMap("Logical", expr.Op.String(), expr.Left, expr.Right)
	case *core.StarExpr:
		return map[string]any{"node": "Star"}
	case *core.EmptyExpr:
		return map[string]any{"node": "Empty"}
	}
	return nil
}

func binaryMap(node, op string, left, right core.Expr) map[string]any {
	return map[string]any{"node": node, "op": op, "left": exprMap(left), "right": exprMap(right)}
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
