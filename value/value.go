// Package value defines Lox's runtime value universe: the tagged union
// of Nil, Bool, Number, String, and Callable (spec §3). Grounded on the
// teacher's objects.GoMixObject pattern (a closed interface implemented
// by one concrete type per tag), trimmed to Lox's five-member union —
// go-mix's composite and user-type tags (array, map, set, struct, ...)
// have no Lox counterpart and are dropped.
package value

import (
	"math"
	"strconv"
)

// Type identifies which member of the Value union a Value belongs to.
type Type string

const (
	NilType      Type = "nil"
	BoolType     Type = "bool"
	NumberType   Type = "number"
	StringType   Type = "string"
	CallableType Type = "callable"
)

// Value is the interface every runtime value implements.
type Value interface {
	Type() Type
}

// Nil is Lox's unit value.
type Nil struct{}

func (Nil) Type() Type { return NilType }

// Bool is Lox's two-valued boolean.
type Bool bool

func (Bool) Type() Type { return BoolType }

// Number is Lox's sole numeric type: a 64-bit binary float. Lox has no
// separate integer type (spec §3, §9): never promote to int.
type Number float64

func (Number) Type() Type { return NumberType }

// String is Lox's immutable string value.
type String string

func (String) Type() Type { return StringType }

// Callable is any Value that can be invoked: built-ins (clock) and
// user-defined functions (spec §4.7). Arity/Call are declared by the
// function package rather than here, so that this package never needs to
// import the interpreter — see function.Callable.

// Truthy implements Lox's truthiness coercion: Nil and Bool(false) are
// falsy; every other value, including Number(0) and the empty string, is
// truthy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// Equal implements Value equality (spec §3): Nil equals only Nil;
// otherwise structural equality within the same tag; cross-tag
// comparisons are always false. NaN follows IEEE-754 (NaN != NaN) because
// it falls through to Go's native float comparison.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify implements the canonical Value-to-text conversion (spec
// §4.5): Nil -> "nil", Bool -> "true"/"false", Number -> shortest decimal
// with no trailing ".0" for integral values, String -> itself, Callable
// -> its own String() (e.g. "<fn NAME>" or "<native fn>").
func Stringify(v Value) string {
	switch vv := v.(type) {
	case Nil:
		return "nil"
	case Bool:
		if vv {
			return "true"
		}
		return "false"
	case Number:
		f := float64(vv)
		if math.Trunc(f) == f && !math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case String:
		return string(vv)
	case interface{ String() string }:
		return vv.String()
	default:
		return ""
	}
}
