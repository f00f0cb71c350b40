package parser

import (
	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/token"
)

// Data modification statements.
//
// Grammar:
//
//	insert        → INSERT INTO identifier VALUES "(" value ("," value)* ")"
//	delete        → DELETE FROM identifier [WHERE bool_expr]
//	update        → UPDATE identifier SET assignment ("," assignment)*
//	                [WHERE bool_expr]
//	assignment    → identifier "=" arith_expr

// parseInsert parses an INSERT statement. Values are literals only.
func (p *Parser) parseInsert() (*core.InsertStmt, error) {
	p.nextToken() // consume INSERT
	if err := p.expect(token.INTO); err != nil {
		return nil, err
	}

	table, err := p.parseIdent("table name")
	if err != nil {
		return nil, err
	}
	stmt := &core.InsertStmt{Table: table}

	if err := p.expect(token.VALUES); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, lit)
		if !p.match(token.COMMA) {
			break
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseDelete parses a DELETE statement.
func (p *Parser) parseDelete() (*core.DeleteStmt, error) {
	p.nextToken() // consume DELETE
	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}

	table, err := p.parseIdent("table name")
	if err != nil {
		return nil, err
	}
	where, err := p.parseOptionalWhere()
	if err != nil {
		return nil, err
	}
	return &core.DeleteStmt{Table: table, Where: where}, nil
}

// parseUpdate parses an UPDATE statement.
func (p *Parser) parseUpdate() (*core.UpdateStmt, error) {
	p.nextToken() // consume UPDATE

	table, err := p.parseIdent("table name")
	if err != nil {
		return nil, err
	}
	stmt := &core.UpdateStmt{Table: table}

	if err := p.expect(token.SET); err != nil {
		return nil, err
	}
	for {
		column, err := p.parseIdent("column name")
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.EQ); err != nil {
			return nil, err
		}
		value, err := p.parseArithExpr()
		if err != nil {
			return nil, err
		}
		stmt.Set = append(stmt.Set, core.SetClause{Column: column, Value: value})
		if !p.match(token.COMMA) {
			break
		}
	}

	where, err := p.parseOptionalWhere()
	if err != nil {
		return nil, err
	}
	stmt.Where = where
	return stmt, nil
}
