// Package function implements Lox's Callable capability (spec §4.7): the
// built-in clock function and user-defined functions. Grounded on the
// teacher's function.Function (a declaration reference plus a captured
// scope), but a UserFunction here deliberately does NOT capture its
// defining scope — per spec §4.5/§9, this core's function activation
// record is enclosed by the GLOBAL environment, not the scope in effect
// at the point of definition. That mirrors the source behavior the spec
// is built from rather than fixing it; see DESIGN.md.
package function

import (
	"fmt"
	"time"

	"github.com/Facosao/lox/ast"
	"github.com/Facosao/lox/environment"
	"github.com/Facosao/lox/value"
)

// Interp is the slice of interpreter behavior a Callable needs to invoke
// itself, kept as a narrow interface here so this package never imports
// the interpreter package (which imports this one to turn an
// ast.Function declaration into a UserFunction).
type Interp interface {
	// Globals returns the interpreter's global environment.
	Globals() *environment.Environment
	// ExecuteBlock runs stmts with env as the active environment,
	// restoring the interpreter's previously-active environment on
	// every exit path, including error propagation.
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error
}

// Callable is any Value that can be invoked with arguments (spec §4.7).
type Callable interface {
	value.Value
	Arity() int
	Call(interp Interp, args []value.Value) (value.Value, error)
}

// Clock is the sole built-in (spec §4.7): arity 0, returns a monotonic
// elapsed-seconds reading. Resolution is platform-defined but the value
// is always monotonic and expressed in seconds.
type Clock struct {
	start time.Time
}

// NewClock creates a Clock whose zero point is the moment of creation —
// each call thereafter returns a monotonically increasing seconds count.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

func (*Clock) Type() value.Type { return value.CallableType }
func (*Clock) Arity() int       { return 0 }
func (*Clock) String() string   { return "<native fn>" }

// Call returns elapsed seconds since the Clock was created, using Go's
// monotonic clock reading so the result never goes backwards even across
// wall-clock adjustments.
func (c *Clock) Call(_ Interp, _ []value.Value) (value.Value, error) {
	return value.Number(time.Since(c.start).Seconds()), nil
}

// UserFunction is a Callable backed by a parsed function declaration.
type UserFunction struct {
	Decl *ast.Function
}

func (*UserFunction) Type() value.Type { return value.CallableType }

func (f *UserFunction) Arity() int { return len(f.Decl.Params) }

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}

// Call binds each parameter to its argument in a fresh environment
// enclosed by the interpreter's globals, executes the body as a block in
// that environment, and returns Nil on normal fall-through — this core
// has no return statement (spec §1, §9), so every user function call
// evaluates purely for its printed side effects.
func (f *UserFunction) Call(interp Interp, args []value.Value) (value.Value, error) {
	env := environment.New(interp.Globals())
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}
	if err := interp.ExecuteBlock(f.Decl.Body, env); err != nil {
		return nil, err
	}
	return value.Nil{}, nil
}
