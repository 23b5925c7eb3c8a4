package interpreter

import "github.com/Facosao/lox/token"

// RuntimeError is a runtime-time diagnostic (spec §4.5, §7): the
// offending token, carried for its line number, and a message. It
// propagates as an ordinary Go error return rather than a panic/unwind
// (REDESIGN FLAGS §9: result-typed propagation), which is what lets
// ExecuteBlock guarantee its defer-based environment restoration runs on
// every exit path, including this one.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}
