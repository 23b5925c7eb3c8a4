// Command lox is the entry point for the Lox interpreter. It provides
// three modes of operation (spec §6):
//
//	lox                  REPL mode: read a line, execute it, loop until EOF
//	lox <script>         File mode: run one script, exit 0/65/70
//	lox server <port>    REPL-over-TCP: one independent session per connection
//
// Grounded on the teacher's main/main.go: same flag dispatch shape
// (--help/--version/server/file/repl), same net.Listen-and-goroutine-per-
// connection server loop. The exit-code and error-recovery strategy
// differs deliberately (spec §6/§7, REDESIGN FLAGS §9): the teacher exits
// 1 on every file-mode failure via panic/recover; this command
// distinguishes usage (64), static (65), and runtime (70) errors and
// never recovers a panic, since the interpreter package never panics in
// the first place.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/Facosao/lox/interpreter"
	"github.com/Facosao/lox/parser"
	"github.com/Facosao/lox/report"
	"github.com/Facosao/lox/repl"
	"github.com/Facosao/lox/scanner"
	"github.com/fatih/color"
)

// VERSION is the interpreter's release version.
var VERSION = "v1.0.0"

// AUTHOR is shown by --version and the REPL banner.
var AUTHOR = "Facosao"

// LICENSE is shown by --version and the REPL banner.
var LICENSE = "MIT"

// PROMPT is the interactive prompt string (spec §6: "> ").
var PROMPT = "> "

// BANNER is the ASCII banner shown when the REPL starts.
var BANNER = `
 _
| |    _____  __
| |   / _ \ \/ /
| |__| (_) >  <
|_____\___/_/\_\
`

// LINE separates banner sections.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			os.Exit(exitOK)
		case "--version", "-v":
			showVersion()
			os.Exit(exitOK)
		case "server":
			if len(os.Args) != 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. Usage: lox server <port>\n")
				os.Exit(exitUsage)
			}
			startServer(os.Args[2])
			return
		default:
			if len(os.Args) != 2 {
				redColor.Fprintf(os.Stderr, "Usage: lox [script]\n")
				os.Exit(exitUsage)
			}
			os.Exit(runFile(arg))
		}
		return
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Lox - a tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  lox                   Start the interactive REPL")
	fmt.Println("  lox <script>          Run a Lox source file")
	fmt.Println("  lox server <port>     Host one REPL session per TCP connection")
	fmt.Println("  lox --help            Show this message")
	fmt.Println("  lox --version         Show version information")
}

func showVersion() {
	cyanColor.Printf("Lox %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes one script, returning the process exit code
// per spec §6: 0 on success, 65 if scanning or parsing produced any
// error (execution never starts), 70 if Interpret returned a runtime
// error.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read '%s': %v\n", path, err)
		return exitUsage
	}

	toks, scanErrs := scanner.New(string(source)).ScanTokens()
	for _, e := range scanErrs {
		redColor.Fprintf(os.Stderr, "%s\n", report.Scan(e))
	}

	stmts, parseErrs := parser.New(toks).Parse()
	for _, e := range parseErrs {
		redColor.Fprintf(os.Stderr, "%s\n", report.Syntax(e))
	}

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		return exitStatic
	}

	interp := interpreter.New()
	if err := interp.Interpret(stmts); err != nil {
		if rtErr, ok := err.(*interpreter.RuntimeError); ok {
			redColor.Fprintf(os.Stderr, "%s\n", report.Runtime(rtErr))
		} else {
			redColor.Fprintf(os.Stderr, "%s\n", err)
		}
		return exitRuntime
	}

	return exitOK
}

// startServer listens on port and hands each accepted connection its own
// REPL session (its own Interpreter, its own globals) in a goroutine, so
// concurrent clients never share interpreter state.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(exitUsage)
	}
	cyanColor.Printf("Lox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
