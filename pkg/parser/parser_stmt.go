package parser

import (
	"github.com/leapstack-labs/silisk/pkg/core"
	"github.com/leapstack-labs/silisk/pkg/token"
)

// SELECT parsing: projection list, FROM list, WHERE, ORDER BY.
//
// Grammar:
//
//	select        → SELECT [DISTINCT | ALL] select_list FROM table_list
//	                [WHERE bool_expr] [ORDER BY order_list]
//	select_list   → "*" | select_item ("," select_item)*
//	select_item   → arith_expr [AS identifier]
//	table_list    → table_ref ("," table_ref)*
//	table_ref     → identifier [[AS] identifier]
//	order_list    → order_item ("," order_item)*
//	order_item    → column_ref [ASC | DESC]

// parseSelect parses a SELECT statement.
func (p *Parser) parseSelect() (*core.SelectStmt, error) {
	p.nextToken() // consume SELECT
	stmt := &core.SelectStmt{}

	if p.match(token.DISTINCT) {
		stmt.Distinct = true
	} else {
		p.match(token.ALL)
	}

	projections, err := p.parseSelectList()
	if err != nil {
		return nil, err
	}
	stmt.Projections = projections

	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	from, err := p.parseTableList()
	if err != nil {
		return nil, err
	}
	stmt.From = from

	where, err := p.parseOptionalWhere()
	if err != nil {
		return nil, err
	}
	stmt.Where = where

	if p.match(token.ORDER) {
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		orderBy, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = orderBy
	}

	return stmt, nil
}

// parseSelectList parses the projection list.
func (p *Parser) parseSelectList() ([]core.Projection, error) {
	if p.match(token.STAR) {
		return []core.Projection{{Expr: &core.StarExpr{}}}, nil
	}

	var items []core.Projection
	for {
		expr, err := p.parseArithExpr()
		if err != nil {
			return nil, err
		}
		item := core.Projection{Expr: expr}
		if p.match(token.AS) {
			alias, err := p.parseIdent("alias")
			if err != nil {
				return nil, err
			}
			item.Alias = alias
		}
		items = append(items, item)

		if !p.match(token.COMMA) {
			return items, nil
		}
	}
}

// parseTableList parses the FROM list. AS before an alias is optional.
func (p *Parser) parseTableList() ([]core.TableRef, error) {
	var refs []core.TableRef
	for {
		name, err := p.parseIdent("table name")
		if err != nil {
			return nil, err
		}
		ref := core.TableRef{Name: name}

		switch {
		case p.match(token.AS):
			alias, err := p.parseIdent("alias")
			if err != nil {
				return nil, err
			}
			ref.Alias = alias
		case p.check(token.IDENT):
			ref.Alias = p.token.Literal
			p.nextToken()
		}
		refs = append(refs, ref)

		if !p.match(token.COMMA) {
			return refs, nil
		}
	}
}

// parseOrderByList parses ORDER BY entries. The direction defaults to ASC.
func (p *Parser) parseOrderByList() ([]core.OrderByColumn, error) {
	var items []core.OrderByColumn
	for {
		col, err := p.parseColumnRef()
		if err != nil {
			return nil, err
		}
		item := core.OrderByColumn{Column: *col, Direction: core.Asc}
		if p.match(token.DESC) {
			item.Direction = core.Desc
		} else {
			p.match(token.ASC)
		}
		items = append(items, item)

		if !p.match(token.COMMA) {
			return items, nil
		}
	}
}

// parseOptionalWhere parses [WHERE bool_expr]. A missing clause yields
// EmptyExpr.
func (p *Parser) parseOptionalWhere() (core.Expr, error) {
	if !p.match(token.WHERE) {
		return &core.EmptyExpr{}, nil
	}
	return p.parseBoolExpr()
}
