// Package repl implements the Read-Eval-Print Loop for the Lox
// interpreter (spec §6: prompt "> ", read one line, execute, loop; EOF
// terminates; a runtime or parse error on a line is reported but does
// not end the loop).
//
// Grounded on the teacher's repl.Repl: readline for line editing and
// history, fatih/color for banner and error coloring. The REPL
// contract itself — clearing the static-error flag between prompts,
// continuing after a runtime error rather than exiting — comes from
// spec §6/§7, not from the teacher (go-mix's REPL has no such contract:
// it just prints whatever the evaluator returns).
package repl

import (
	"io"
	"strings"

	"github.com/Facosao/lox/interpreter"
	"github.com/Facosao/lox/parser"
	"github.com/Facosao/lox/report"
	"github.com/Facosao/lox/scanner"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session. Its
// fields are display-only; all interpreter state is local to Start so
// that each session gets its own independent globals.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, separator
// line, license, and prompt string.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the welcome banner and usage instructions to w.
func (r *Repl) PrintBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type Lox statements and press enter.")
	cyanColor.Fprintln(w, "Ctrl+D exits.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop: read one line, execute it, loop, until EOF.
// Each line gets a fresh scan/parse/interpret pass sharing the same
// Interpreter, so variable and function definitions persist across
// lines, but a static-error flag is conceptually cleared between prompts
// (spec §6) — each line's own scan/parse errors never affect the next.
//
// in/out are threaded through to readline.Config rather than assumed to
// be os.Stdin/os.Stdout, so the same loop can run over a net.Conn — see
// the "server" CLI mode, which hosts one REPL session per connection.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.PrintBanner(out)

	stdin, ok := in.(io.ReadCloser)
	if !ok {
		stdin = io.NopCloser(in)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  stdin,
		Stdout: out,
	})
	if err != nil {
		redColor.Fprintf(out, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	interp := interpreter.New()
	interp.Stdout = out

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.execLine(out, interp, line)
	}
}

func (r *Repl) execLine(w io.Writer, interp *interpreter.Interpreter, line string) {
	toks, scanErrs := scanner.New(line).ScanTokens()
	for _, e := range scanErrs {
		redColor.Fprintf(w, "%s\n", report.Scan(e))
	}

	stmts, parseErrs := parser.New(toks).Parse()
	for _, e := range parseErrs {
		redColor.Fprintf(w, "%s\n", report.Syntax(e))
	}
	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		return
	}

	if err := interp.Interpret(stmts); err != nil {
		if rtErr, ok := err.(*interpreter.RuntimeError); ok {
			redColor.Fprintf(w, "%s\n", report.Runtime(rtErr))
		} else {
			redColor.Fprintf(w, "%s\n", err)
		}
	}
}
