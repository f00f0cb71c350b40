package core

// Node is the base interface for all AST nodes.
//
// The node set is closed: only types in this package implement the marker
// methods, so a type switch over Expr or Stmt covers every variant.
type Node interface {
	node()
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode() // Marker method to distinguish expressions
}

// Literal is an expression that is a constant value.
// Only NumberLiteral and StringLiteral implement it, which is what lets
// InsertStmt restrict its values to literals at the type level.
type Literal interface {
	Expr
	literalNode()
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode() // Marker method to distinguish statements
	// Type returns the statement's tag.
	Type() StatementType
}
