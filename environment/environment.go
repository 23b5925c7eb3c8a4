// Package environment implements the lexically-scoped name->Value chain
// that backs variable lookup, assignment, and definition (spec §3,
// §4.6). Grounded on the teacher's scope.Scope, trimmed to the three
// operations Lox actually needs: this core has only one declaration form
// (var), so the Consts/LetVars/LetTypes tracking the teacher's Scope
// carries for its "let"/"const" declarations has no Lox counterpart and
// is dropped (see DESIGN.md).
package environment

import "github.com/Facosao/lox/value"

// Environment is one frame in the scope chain: a map of bindings plus a
// non-owning back-reference to the enclosing frame. Enclosing is nil only
// for the global environment.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates an environment frame enclosed by parent. Pass nil to create
// the global frame.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), enclosing: parent}
}

// Define unconditionally binds name to val in this frame. Redefinition is
// allowed — in particular at global scope — and shadows any binding of
// the same name in an enclosing frame for lookups made against this
// frame or its children.
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = val
}

// Get returns the value bound to name in the nearest enclosing frame
// that defines it. ok is false if no frame in the chain defines name.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign mutates the nearest enclosing binding of name to val. ok is
// false if no frame in the chain defines name, in which case no binding
// is created — assignment never implicitly declares a variable.
func (e *Environment) Assign(name string, val value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, val)
	}
	return false
}
