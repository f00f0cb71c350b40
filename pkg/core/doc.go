// Package core defines the abstract syntax tree produced by the SQL parser.
//
// An AST is built once per parsed statement and not mutated afterwards.
// Every node is owned by exactly one parent; nothing is shared between
// trees. The tree is purely syntactic: table and column names are not
// resolved against any catalog.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
package core
