package core

// ---------- Statement Types ----------

// SelectStmt represents a SELECT statement.
type SelectStmt struct {
	Distinct    bool
	Projections []Projection // a single StarExpr projection for SELECT *
	From        []TableRef
	Where       Expr // EmptyExpr when there is no WHERE clause
	OrderBy     []OrderByColumn
}

func (*SelectStmt) node()     {}
func (*SelectStmt) stmtNode() {}

// Type implements Stmt.
func (*SelectStmt) Type() StatementType { return StmtSelect }

// IsStar reports whether the projection list is SELECT *.
func (s *SelectStmt) IsStar() bool {
	if len(s.Projections) != 1 {
		return false
	}
	_, ok := s.Projections[0].Expr.(*StarExpr)
	return ok
}

// Projection is one item of a SELECT list.
type Projection struct {
	Expr  Expr
	Alias string // optional
}

// TableRef is one entry of a FROM list.
type TableRef struct {
	Name  string
	Alias string // optional
}

// SortDirection is the ordering of an ORDER BY column.
type SortDirection int

// SortDirection constants. Asc is the zero value and the default.
const (
	Asc SortDirection = iota
	Desc
)

// String returns ASC or DESC.
func (d SortDirection) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// OrderByColumn is one entry of an ORDER BY list.
type OrderByColumn struct {
	Column    ColumnRef
	Direction SortDirection
}

// InsertStmt represents INSERT INTO t VALUES (...).
type InsertStmt struct {
	Table  string
	Values []Literal
}

func (*InsertStmt) node()     {}
func (*InsertStmt) stmtNode() {}

// Type implements Stmt.
func (*InsertStmt) Type() StatementType { return StmtInsert }

// DeleteStmt represents DELETE FROM t [WHERE ...].
type DeleteStmt struct {
	Table string
	Where Expr
}

func (*DeleteStmt) node()     {}
func (*DeleteStmt) stmtNode() {}

// Type implements Stmt.
func (*DeleteStmt) Type() StatementType { return StmtDelete }

// UpdateStmt represents UPDATE t SET ... [WHERE ...].
type UpdateStmt struct {
	Table string
	Set   []SetClause
	Where Expr
}

func (*UpdateStmt) node()     {}
func (*UpdateStmt) stmtNode() {}

// Type implements Stmt.
func (*UpdateStmt) Type() StatementType { return StmtUpdate }

// SetClause is one col = expr assignment of an UPDATE.
type SetClause struct {
	Column string
	Value  Expr
}

// CreateTableStmt represents CREATE TABLE.
type CreateTableStmt struct {
	Table   string
	Columns []ColumnDef
	Index   *IndexDef // inline clustered index, nil if none
}

func (*CreateTableStmt) node()     {}
func (*CreateTableStmt) stmtNode() {}

// Type implements Stmt.
func (*CreateTableStmt) Type() StatementType { return StmtCreateTable }

// ColumnDef is a column definition inside CREATE TABLE.
type ColumnDef struct {
	Name     string
	Type     DataType
	Nullable bool
}

// IndexDef describes the clustered index declared inline in CREATE TABLE.
type IndexDef struct {
	Name    string // always PrimaryIndexName(Table)
	Table   string
	Columns []string
	Kind    IndexKind
}

// PrimaryIndexName returns the synthetic name of a table's inline index.
func PrimaryIndexName(table string) string {
	return "pk_" + table
}

// CreateIndexStmt represents CREATE INDEX name ON table (cols) USING kind.
type CreateIndexStmt struct {
	Name    string
	Table   string
	Columns []string
	Kind    IndexKind
}

func (*CreateIndexStmt) node()     {}
func (*CreateIndexStmt) stmtNode() {}

// Type implements Stmt.
func (*CreateIndexStmt) Type() StatementType { return StmtCreateIndex }

// DropTableStmt represents DROP TABLE name.
type DropTableStmt struct {
	Table string
}

func (*DropTableStmt) node()     {}
func (*DropTableStmt) stmtNode() {}

// Type implements Stmt.
func (*DropTableStmt) Type() StatementType { return StmtDropTable }

// DropIndexStmt represents DROP INDEX name ON table.
type DropIndexStmt struct {
	Name  string
	Table string
}

func (*DropIndexStmt) node()     {}
func (*DropIndexStmt) stmtNode() {}

// Type implements Stmt.
func (*DropIndexStmt) Type() StatementType { return StmtDropIndex }
