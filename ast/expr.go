// Package ast defines the Lox abstract syntax tree as two disjoint sum
// types, Expr and Stmt. Each is a closed set of concrete struct types
// behind an interface with an unexported marker method, so the evaluator
// dispatches on a type switch rather than a virtual call per node
// (REDESIGN FLAGS: tagged variants over subclass/visitor dispatch).
package ast

import "github.com/Facosao/lox/token"

// Expr is the sum type of all expression nodes: Binary, Unary, Grouping,
// Literal, Variable, Assign, Logical, Call.
type Expr interface {
	exprNode()
}

// Binary is a binary operator expression, e.g. "a + b".
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Unary is a prefix operator expression, e.g. "-a" or "!a".
type Unary struct {
	Operator token.Token
	Right    Expr
}

// Grouping is a parenthesized expression, "(expr)".
type Grouping struct {
	Expression Expr
}

// Literal is a literal value: a number, string, boolean, or nil.
type Literal struct {
	Value interface{}
}

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

// Assign is an assignment expression, "name = value". Assignment is an
// expression in Lox: it evaluates to the assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Logical is a short-circuiting "and"/"or" expression.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Call is a function-call expression. Paren is the closing-paren token,
// retained for error reporting (e.g. arity mismatches).
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*Binary) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Call) exprNode()     {}
