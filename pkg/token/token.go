// Package token defines the token types for SQL parsing.
//
// Every reserved keyword has its own TokenType so the parser can switch on
// keywords directly. Keyword lookup is case-insensitive; identifiers keep
// their spelling.
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // customer_id
	NUMBER // 123, 45.67 (unsigned; signs are separate tokens)
	STRING // 'hello'

	// Operators and punctuation
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	EQ        // =
	NE        // <>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	DOT       // .
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )

	// Reserved keywords (alphabetical)
	ALL
	AND
	AS
	ASC
	BTREE
	BY
	CHAR
	CREATE
	DATABASE
	DATE
	DATETIME
	DELETE
	DESC
	DISTINCT
	DROP
	FLOAT
	FROM
	HASH
	INDEX
	INSERT
	INTEGER
	INTO
	NOT
	NULL
	ON
	OR
	ORDER
	SELECT
	SET
	TABLE
	UPDATE
	USING
	VALUES
	VARCHAR
	WHERE

	keywordEnd
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	EQ:        "=",
	NE:        "<>",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	DOT:       ".",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",

	ALL:      "ALL",
	AND:      "AND",
	AS:       "AS",
	ASC:      "ASC",
	BTREE:    "BTREE",
	BY:       "BY",
	CHAR:     "CHAR",
	CREATE:   "CREATE",
	DATABASE: "DATABASE",
	DATE:     "DATE",
	DATETIME: "DATETIME",
	DELETE:   "DELETE",
	DESC:     "DESC",
	DISTINCT: "DISTINCT",
	DROP:     "DROP",
	FLOAT:    "FLOAT",
	FROM:     "FROM",
	HASH:     "HASH",
	INDEX:    "INDEX",
	INSERT:   "INSERT",
	INTEGER:  "INTEGER",
	INTO:     "INTO",
	NOT:      "NOT",
	NULL:     "NULL",
	ON:       "ON",
	OR:       "OR",
	ORDER:    "ORDER",
	SELECT:   "SELECT",
	SET:      "SET",
	TABLE:    "TABLE",
	UPDATE:   "UPDATE",
	USING:    "USING",
	VALUES:   "VALUES",
	VARCHAR:  "VARCHAR",
	WHERE:    "WHERE",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = func() map[string]TokenType {
	m := make(map[string]TokenType, int(keywordEnd-ALL))
	for t := ALL; t < keywordEnd; t++ {
		m[strings.ToLower(tokenNames[t])] = t
	}
	return m
}()

// LookupIdent returns the token type for the given word.
// Matching is case-insensitive: "select", "Select" and "SELECT" all return
// SELECT. Words that are not reserved return IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved keywords in declaration order.
func Keywords() []TokenType {
	out := make([]TokenType, 0, int(keywordEnd-ALL))
	for t := ALL; t < keywordEnd; t++ {
		out = append(out, t)
	}
	return out
}

// IsKeyword returns true if the token type is a reserved keyword.
func IsKeyword(t TokenType) bool {
	return t >= ALL && t < keywordEnd
}

// IsOperator returns true if the token type is an operator or punctuation.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= RPAREN
}

// IsComparison returns true for the predicate operators = <> < <= > >=.
func IsComparison(t TokenType) bool {
	switch t {
	case EQ, NE, LT, GT, LE, GE:
		return true
	}
	return false
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

