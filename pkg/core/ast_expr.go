package core

// ---------- Expression Types ----------

// NumberLiteral represents a numeric literal.
type NumberLiteral struct {
	Value   float64
	Integer bool // written without a fractional part
}

func (*NumberLiteral) node()        {}
func (*NumberLiteral) exprNode()    {}
func (*NumberLiteral) literalNode() {}

// StringLiteral represents a single-quoted string literal, unescaped.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) node()        {}
func (*StringLiteral) exprNode()    {}
func (*StringLiteral) literalNode() {}

// ColumnRef represents a column reference (possibly qualified).
type ColumnRef struct {
	Table  string // optional table/alias qualifier
	Column string
}

func (*ColumnRef) node()     {}
func (*ColumnRef) exprNode() {}

// Qualified reports whether the reference names its table.
func (c *ColumnRef) Qualified() bool { return c.Table != "" }

// FuncCall represents a function call. Args may be empty.
type FuncCall struct {
	Name string
	Args []Expr
}

func (*FuncCall) node()     {}
func (*FuncCall) exprNode() {}

// NegExpr represents arithmetic negation (-a).
type NegExpr struct {
	Expr Expr
}

func (*NegExpr) node()     {}
func (*NegExpr) exprNode() {}

// NotExpr represents boolean negation (NOT a).
type NotExpr struct {
	Expr Expr
}

func (*NotExpr) node()     {}
func (*NotExpr) exprNode() {}

// ArithOp is a binary arithmetic operator.
type ArithOp int

// ArithOp constants.
const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

// String returns the operator symbol.
func (o ArithOp) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}

// ArithExpr represents a binary arithmetic expression.
type ArithExpr struct {
	Op    ArithOp
	Left  Expr
	Right Expr
}

func (*ArithExpr) node()     {}
func (*ArithExpr) exprNode() {}

// LogicalOp is a binary boolean connective.
type LogicalOp int

// LogicalOp constants.
const (
	OpAnd LogicalOp = iota
	OpOr
)

// String returns the operator keyword.
func (o LogicalOp) String() string {
	switch o {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return "?"
	}
}

// LogicalExpr represents a binary boolean expression (AND / OR).
type LogicalExpr struct {
	Op    LogicalOp
	Left  Expr
	Right Expr
}

func (*LogicalExpr) node()     {}
func (*LogicalExpr) exprNode() {}

// CompareOp is a predicate operator.
type CompareOp int

// CompareOp constants.
const (
	OpEq CompareOp = iota
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
)

// String returns the operator symbol.
func (o CompareOp) String() string {
	switch o {
	case OpEq:
		return "="
	case OpNeq:
		return "<>"
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	default:
		return "?"
	}
}

// CompareExpr represents a comparison between two arithmetic expressions.
type CompareExpr struct {
	Op    CompareOp
	Left  Expr
	Right Expr
}

func (*CompareExpr) node()     {}
func (*CompareExpr) exprNode() {}

// EmptyExpr stands in for an absent WHERE clause.
type EmptyExpr struct{}

func (*EmptyExpr) node()     {}
func (*EmptyExpr) exprNode() {}

// StarExpr represents * in a SELECT list.
type StarExpr struct{}

func (*StarExpr) node()     {}
func (*StarExpr) exprNode() {}

// IsEmpty reports whether e is absent or an EmptyExpr.
func IsEmpty(e Expr) bool {
	if e == nil {
		return true
	}
	_, ok := e.(*EmptyExpr)
	return ok
}
