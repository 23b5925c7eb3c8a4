package ast

import (
	"fmt"
	"strings"
)

// Print renders an expression as a fully-parenthesized Lisp-like string,
// used for diagnostics only — never on the normal execution path. Binary,
// Unary and Logical render as "(op child ...)"; Grouping as "(group
// expr)"; Literal renders its value ("nil" for a nil value); Variable
// renders its name; Assign renders as "(= name value)".
func Print(e Expr) string {
	switch n := e.(type) {
	case *Binary:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Unary:
		return parenthesize(n.Operator.Lexeme, n.Right)
	case *Logical:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Grouping:
		return parenthesize("group", n.Expression)
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case *Call:
		args := make([]Expr, 0, len(n.Args)+1)
		args = append(args, n.Callee)
		args = append(args, n.Args...)
		return parenthesize("call", args...)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}
