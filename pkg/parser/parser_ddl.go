package parser

import (
	"strconv"

	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/token"
)

// Schema statements.
//
// Grammar:
//
//	create_table  → CREATE TABLE identifier "(" column_def ("," column_def)*
//	                ["," inline_index] ")"
//	column_def    → identifier type [NULL | NOT NULL]
//	type          → INTEGER | FLOAT | DATETIME | DATE
//	                | VARCHAR "(" size ")" | CHAR "(" size ")"
//	inline_index  → INDEX [ON] ident_list USING index_kind
//	create_index  → CREATE INDEX identifier ON identifier ident_list
//	                USING index_kind
//	drop_table    → DROP TABLE identifier
//	drop_index    → DROP INDEX identifier ON identifier
//	ident_list    → "(" identifier ("," identifier)* ")"
//	index_kind    → BTREE | HASH

// columnTypes maps type keywords to column type kinds.
var columnTypes = map[token.TokenType]core.TypeKind{
	token.INTEGER:  core.TypeInteger,
	token.FLOAT:    core.TypeFloat,
	token.DATETIME: core.TypeDateTime,
	token.DATE:     core.TypeDate,
	token.VARCHAR:  core.TypeVarchar,
	token.CHAR:     core.TypeChar,
}

// parseCreateTable parses a CREATE TABLE statement.
func (p *Parser) parseCreateTable() (*core.CreateTableStmt, error) {
	p.nextToken() // consume CREATE
	p.nextToken() // consume TABLE

	table, err := p.parseIdent("table name")
	if err != nil {
		return nil, err
	}
	stmt := &core.CreateTableStmt{Table: table}

	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)

		if !p.match(token.COMMA) {
			break
		}
		if p.check(token.INDEX) {
			// The inline index closes the list.
			idx, err := p.parseInlineIndex(table)
			if err != nil {
				return nil, err
			}
			stmt.Index = idx
			break
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseColumnDef parses one column definition. Columns are nullable unless
// declared NOT NULL.
func (p *Parser) parseColumnDef() (core.ColumnDef, error) {
	name, err := p.parseIdent("column name")
	if err != nil {
		return core.ColumnDef{}, err
	}
	typ, err := p.parseDataType()
	if err != nil {
		return core.ColumnDef{}, err
	}

	col := core.ColumnDef{Name: name, Type: typ, Nullable: true}
	switch {
	case p.match(token.NULL):
	case p.match(token.NOT):
		if err := p.expect(token.NULL); err != nil {
			return core.ColumnDef{}, err
		}
		col.Nullable = false
	}
	return col, nil
}

// parseDataType parses a column type.
func (p *Parser) parseDataType() (core.DataType, error) {
	kind, ok := columnTypes[p.token.Type]
	if !ok {
		return core.DataType{}, p.unexpected("column type")
	}
	p.nextToken()
	if !kind.Sized() {
		return core.DataType{Kind: kind}, nil
	}

	if err := p.expect(token.LPAREN); err != nil {
		return core.DataType{}, err
	}
	size, err := p.parseSize()
	if err != nil {
		return core.DataType{}, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return core.DataType{}, err
	}
	return core.DataType{Kind: kind, Size: size}, nil
}

// parseSize parses the length argument of VARCHAR and CHAR.
func (p *Parser) parseSize() (int, error) {
	if !p.check(token.NUMBER) {
		return 0, p.unexpected("type size")
	}
	n, err := strconv.Atoi(p.token.Literal)
	if err != nil || n <= 0 {
		return 0, p.errorf(ErrInvalidSize, p.token.Literal)
	}
	p.nextToken()
	return n, nil
}

// parseInlineIndex parses the clustered index declared inside CREATE TABLE.
func (p *Parser) parseInlineIndex(table string) (*core.IndexDef, error) {
	p.nextToken() // consume INDEX
	p.match(token.ON)

	cols, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	kind, err := p.parseUsing()
	if err != nil {
		return nil, err
	}
	return &core.IndexDef{
		Name:    core.PrimaryIndexName(table),
		Table:   table,
		Columns: cols,
		Kind:    kind,
	}, nil
}

// parseCreateIndex parses a CREATE INDEX statement.
func (p *Parser) parseCreateIndex() (*core.CreateIndexStmt, error) {
	p.nextToken() // consume CREATE
	p.nextToken() // consume INDEX

	name, err := p.parseIdent("index name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	table, err := p.parseIdent("table name")
	if err != nil {
		return nil, err
	}
	cols, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	kind, err := p.parseUsing()
	if err != nil {
		return nil, err
	}
	return &core.CreateIndexStmt{Name: name, Table: table, Columns: cols, Kind: kind}, nil
}

// parseDropTable parses a DROP TABLE statement.
func (p *Parser) parseDropTable() (*core.DropTableStmt, error) {
	p.nextToken() // consume DROP
	p.nextToken() // consume TABLE

	table, err := p.parseIdent("table name")
	if err != nil {
		return nil, err
	}
	return &core.DropTableStmt{Table: table}, nil
}

// parseDropIndex parses a DROP INDEX statement.
func (p *Parser) parseDropIndex() (*core.DropIndexStmt, error) {
	p.nextToken() // consume DROP
	p.nextToken() // consume INDEX

	name, err := p.parseIdent("index name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	table, err := p.parseIdent("table name")
	if err != nil {
		return nil, err
	}
	return &core.DropIndexStmt{Name: name, Table: table}, nil
}

// parseIdentList parses a parenthesized, comma-separated identifier list.
func (p *Parser) parseIdentList() ([]string, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var names []string
	for {
		name, err := p.parseIdent("column name")
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if !p.match(token.COMMA) {
			break
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return names, nil
}

// parseUsing parses USING BTREE | HASH.
func (p *Parser) parseUsing() (core.IndexKind, error) {
	if err := p.expect(token.USING); err != nil {
		return 0, err
	}
	switch p.token.Type {
	case token.BTREE, token.HASH:
		kind := indexKind(p.token.Type)
		p.nextToken()
		return kind, nil
	default:
		return 0, p.unexpected("BTREE or HASH")
	}
}

// indexKind maps an index method keyword to its kind.
func indexKind(t token.TokenType) core.IndexKind {
	switch t {
	case token.BTREE:
		return core.BTree
	case token.HASH:
		return core.Hash
	}
	internalError("index_kind", "no index kind for token %s", t)
	return 0
}
