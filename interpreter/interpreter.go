// Package interpreter implements the tree-walking evaluator that drives
// the Lox environment chain (spec §4.5). Grounded on the dispatch shape
// of the teacher's eval.Evaluator (a type switch over AST nodes plus a
// threaded environment), but built as an explicit interpreter context
// value rather than module-level mutable state — REDESIGN FLAGS §9
// replaces the source's module-level globals/current pointer with a
// struct carrying globals, the active environment, and the Print writer,
// enabling multiple independent interpreter instances.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/Facosao/lox/ast"
	"github.com/Facosao/lox/environment"
	"github.com/Facosao/lox/function"
	"github.com/Facosao/lox/token"
	"github.com/Facosao/lox/value"
)

// Interpreter walks a Stmt/Expr tree, mutating the environment chain and
// emitting side effects (printing). It holds no other process-wide
// state; error reporting is left entirely to its caller via returned
// errors.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	Stdout  io.Writer
}

// New creates an Interpreter with clock registered in globals (spec
// §4.6: "Built-ins ... are defined into the globals before execution
// begins"), writing Print output to os.Stdout by default.
func New() *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", function.NewClock())
	return &Interpreter{globals: globals, env: globals, Stdout: os.Stdout}
}

// Globals implements function.Interp.
func (i *Interpreter) Globals() *environment.Environment {
	return i.globals
}

// Interpret executes a statement list in order and stops at the first
// runtime error (spec §7: a runtime error aborts the run at the top
// level of `run`; file mode then exits 70, REPL mode aborts only the
// current line). Static errors must be excluded by the caller before
// Interpret is ever called — spec §7 requires that execution not occur
// when the static-error flag is set.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock implements function.Interp: it runs stmts with env as the
// active environment, restoring whichever environment was active before
// the call on every exit path — normal, error, or (via the deferred
// restore) a panic unwinding through this frame — so block scopes never
// leak across failures (spec §5, §8).
func (i *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evalExpr(s.Expression)
		return err

	case *ast.Print:
		v, err := i.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.Stdout, value.Stringify(v))
		return nil

	case *ast.Var:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = i.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return i.ExecuteBlock(s.Statements, environment.New(i.env))

	case *ast.If:
		cond, err := i.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return i.execStmt(s.Then)
		}
		if s.Else != nil {
			return i.execStmt(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := i.evalExpr(s.Condition)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := i.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := &function.UserFunction{Decl: s}
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	default:
		return nil
	}
}

func (i *Interpreter) evalExpr(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return i.evalExpr(e.Expression)

	case *ast.Variable:
		v, ok := i.env.Get(e.Name.Lexeme)
		if !ok {
			return nil, i.undefinedVariable(e.Name)
		}
		return v, nil

	case *ast.Assign:
		v, err := i.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if !i.env.Assign(e.Name.Lexeme, v) {
			return nil, i.undefinedVariable(e.Name)
		}
		return v, nil

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Call:
		return i.evalCall(e)

	default:
		return nil, &RuntimeError{Message: fmt.Sprintf("unsupported expression %T", expr)}
	}
}

func (i *Interpreter) undefinedVariable(name token.Token) error {
	return &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.BANG:
		return value.Bool(!value.Truthy(right)), nil
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, &RuntimeError{Token: e.Operator, Message: "Operand must be a number."}
		}
		return -n, nil
	}
	return nil, &RuntimeError{Token: e.Operator, Message: "Unknown unary operator."}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS, token.STAR, token.SLASH, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Token: e.Operator, Message: "Operands must be a number."}
		}
		return arithmeticOrComparison(e.Operator.Type, ln, rn)

	case token.PLUS:
		if ln, lok := left.(value.Number); lok {
			if rn, rok := right.(value.Number); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(value.String); lok {
			if rs, rok := right.(value.String); rok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Token: e.Operator, Message: "Operands must be two numbers or two strings."}

	case token.EQUAL_EQUAL:
		return value.Bool(value.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return value.Bool(!value.Equal(left, right)), nil
	}

	return nil, &RuntimeError{Token: e.Operator, Message: "Unknown binary operator."}
}

func arithmeticOrComparison(op token.Type, l, r value.Number) (value.Value, error) {
	switch op {
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		return l / r, nil
	case token.GREATER:
		return value.Bool(l > r), nil
	case token.GREATER_EQUAL:
		return value.Bool(l >= r), nil
	case token.LESS:
		return value.Bool(l < r), nil
	case token.LESS_EQUAL:
		return value.Bool(l <= r), nil
	}
	return nil, &RuntimeError{Message: "Unknown arithmetic/comparison operator."}
}

// evalLogical short-circuits: "or" returns the left value unchanged (not
// coerced to Bool) if it is truthy; "and" returns it unchanged if it is
// falsy. Only when short-circuiting doesn't apply is the right operand
// evaluated and returned.
func (i *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.OR {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}

	return i.evalExpr(e.Right)
}

func (i *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := i.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(function.Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}

	if len(args) != callable.Arity() {
		return nil, &RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)),
		}
	}

	return callable.Call(i, args)
}

// literalValue wraps the interface{} the parser stashed in an
// ast.Literal (nil, bool, float64, or string) into a value.Value.
func literalValue(v interface{}) value.Value {
	switch vv := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool(vv)
	case float64:
		return value.Number(vv)
	case string:
		return value.String(vv)
	default:
		return value.Nil{}
	}
}
