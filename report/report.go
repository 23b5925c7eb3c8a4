// Package report renders scan, parse, and runtime errors into the wire
// formats spec §6/§7 define. It exists so that the REPL and the file-mode
// CLI format diagnostics identically, rather than each re-deriving the
// "at end" / "at 'lexeme'" rule on its own.
package report

import (
	"fmt"

	"github.com/Facosao/lox/interpreter"
	"github.com/Facosao/lox/parser"
	"github.com/Facosao/lox/scanner"
	"github.com/Facosao/lox/token"
)

// Scan renders a scan error as "[line N] Error: <message>".
func Scan(e *scanner.Error) string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Syntax renders a parse error as "[line N] Error<where>: <message>",
// where <where> is " at end" for an EOF token or " at 'lexeme'" for any
// other token.
func Syntax(e *parser.SyntaxError) string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, where(e.Token), e.Message)
}

// Runtime renders a runtime error as "<message>\n[line N]".
func Runtime(e *interpreter.RuntimeError) string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func where(tok token.Token) string {
	if tok.Type == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}
