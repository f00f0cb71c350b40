package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementType(t *testing.T) {
	tests := []struct {
		st   StatementType
		name string
		dml  bool
	}{
		{StmtSelect, "SELECT", true},
		{StmtInsert, "INSERT", true},
		{StmtDelete, "DELETE", true},
		{StmtUpdate, "UPDATE", true},
		{StmtCreateTable, "CREATE TABLE", false},
		{StmtCreateIndex, "CREATE INDEX", false},
		{StmtDropTable, "DROP TABLE", false},
		{StmtDropIndex, "DROP INDEX", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.st.String())
			assert.Equal(t, tt.dml, tt.st.IsDML())
			assert.Equal(t, !tt.dml, tt.st.IsDDL())
		})
	}

	assert.Equal(t, "UNKNOWN", StatementType(99).String())
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "INTEGER", DataType{Kind: TypeInteger}.String())
	assert.Equal(t, "DATETIME", DataType{Kind: TypeDateTime}.String())
	assert.Equal(t, "VARCHAR(20)", DataType{Kind: TypeVarchar, Size: 20}.String())
	assert.Equal(t, "CHAR(1)", DataType{Kind: TypeChar, Size: 1}.String())
	assert.False(t, TypeDate.Sized())
}

func TestStatementTypesMatchNodes(t *testing.T) {
	stmts := map[Stmt]StatementType{
		&SelectStmt{}:      StmtSelect,
		&InsertStmt{}:      StmtInsert,
		&DeleteStmt{}:      StmtDelete,
		&UpdateStmt{}:      StmtUpdate,
		&CreateTableStmt{}: StmtCreateTable,
		&CreateIndexStmt{}: StmtCreateIndex,
		&DropTableStmt{}:   StmtDropTable,
		&DropIndexStmt{}:   StmtDropIndex,
	}
	for stmt, want := range stmts {
		assert.Equal(t, want, stmt.Type())
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(&EmptyExpr{}))
	assert.False(t, IsEmpty(&ColumnRef{Column: "a"}))
}

func TestIsStar(t *testing.T) {
	s := &SelectStmt{Projections: []Projection{{Expr: &StarExpr{}}}}
	assert.True(t, s.IsStar())

	s = &SelectStmt{Projections: []Projection{{Expr: &ColumnRef{Column: "a"}}}}
	assert.False(t, s.IsStar())
}

func TestOperatorStrings(t *testing.T) {
	assert.Equal(t, "%", OpMod.String())
	assert.Equal(t, "<>", OpNeq.String())
	assert.Equal(t, "OR", OpOr.String())
	assert.Equal(t, "DESC", Desc.String())
	assert.Equal(t, "HASH", Hash.String())
	assert.Equal(t, "pk_users", PrimaryIndexName("users"))
}
