package core

import "fmt"

// StatementType tags the eight statement forms.
type StatementType int

// StatementType constants.
const (
	StmtSelect StatementType = iota
	StmtInsert
	StmtDelete
	StmtUpdate
	StmtCreateTable
	StmtCreateIndex
	StmtDropTable
	StmtDropIndex
)

// String returns the statement's leading keywords.
func (st StatementType) String() string {
	switch st {
	case StmtSelect:
		return "SELECT"
	case StmtInsert:
		return "INSERT"
	case StmtDelete:
		return "DELETE"
	case StmtUpdate:
		return "UPDATE"
	case StmtCreateTable:
		return "CREATE TABLE"
	case StmtCreateIndex:
		return "CREATE INDEX"
	case StmtDropTable:
		return "DROP TABLE"
	case StmtDropIndex:
		return "DROP INDEX"
	default:
		return "UNKNOWN"
	}
}

// IsDML returns true for SELECT, INSERT, DELETE and UPDATE.
func (st StatementType) IsDML() bool {
	return st == StmtSelect || st == StmtInsert || st == StmtDelete || st == StmtUpdate
}

// IsDDL returns true for the CREATE and DROP statements.
func (st StatementType) IsDDL() bool {
	return st == StmtCreateTable || st == StmtCreateIndex || st == StmtDropTable || st == StmtDropIndex
}

// TypeKind is a SQL column type tag.
type TypeKind int

// TypeKind constants.
const (
	TypeInteger TypeKind = iota
	TypeFloat
	TypeDateTime
	TypeDate
	TypeVarchar
	TypeChar
)

// String returns the type keyword.
func (k TypeKind) String() string {
	switch k {
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeDateTime:
		return "DATETIME"
	case TypeDate:
		return "DATE"
	case TypeVarchar:
		return "VARCHAR"
	case TypeChar:
		return "CHAR"
	default:
		return "UNKNOWN"
	}
}

// Sized reports whether the type takes a length argument.
func (k TypeKind) Sized() bool {
	return k == TypeVarchar || k == TypeChar
}

// DataType is a column type. Size is set only for VARCHAR and CHAR.
type DataType struct {
	Kind TypeKind
	Size int
}

// String renders the type as it is written in SQL.
func (d DataType) String() string {
	if d.Kind.Sized() {
		return fmt.Sprintf("%s(%d)", d.Kind, d.Size)
	}
	return d.Kind.String()
}

// IndexKind is the access method of an index.
type IndexKind int

// IndexKind constants.
const (
	BTree IndexKind = iota
	Hash
)

// String returns BTREE or HASH.
func (k IndexKind) String() string {
	if k == Hash {
		return "HASH"
	}
	return "BTREE"
}
