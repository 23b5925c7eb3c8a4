package ast

import "github.com/Facosao/lox/token"

// Stmt is the sum type of all statement nodes: ExpressionStmt, Print,
// Var, Block, If, While, Function.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression for its side effects and
// discards the result.
type ExpressionStmt struct {
	Expression Expr
}

// Print evaluates an expression and writes its stringified form.
type Print struct {
	Expression Expr
}

// Var declares a variable, optionally with an initializer. A nil
// Initializer means the variable is bound to Nil.
type Var struct {
	Name        token.Token
	Initializer Expr
}

// Block is a sequence of statements executed in a freshly nested scope.
type Block struct {
	Statements []Stmt
}

// If is a conditional with an optional else branch.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// While repeats Body for as long as Condition evaluates truthy.
type While struct {
	Condition Expr
	Body      Stmt
}

// Function declares a named function: parameters by name, a body of
// statements, bound in the current environment under Name.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*Print) stmtNode()          {}
func (*Var) stmtNode()            {}
func (*Block) stmtNode()          {}
func (*If) stmtNode()             {}
func (*While) stmtNode()          {}
func (*Function) stmtNode()       {}
