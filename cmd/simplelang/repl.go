package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"simplelang/interpreter-go/pkg/driver"
	"simplelang/interpreter-go/pkg/interpreter"
	"simplelang/interpreter-go/pkg/runtime"
)

func runRepl(args []string, log zerolog.Logger) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "simplelang repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}
	r := newRepl(os.Stdin, os.Stdout, os.Stderr, log)
	return r.loop()
}

// repl reads one program per line and executes it against a persistent
// environment, so declarations from earlier inputs stay visible.
type repl struct {
	in         *os.File
	out        io.Writer
	errOut     io.Writer
	interp     *interpreter.Interpreter
	loader     *driver.Loader
	isTTY      bool
	inputCount int
}

func newRepl(in *os.File, out, errOut io.Writer, log zerolog.Logger) *repl {
	return &repl{
		in:     in,
		out:    out,
		errOut: errOut,
		interp: interpreter.New(interpreter.WithOutput(out)),
		loader: driver.NewLoader(log),
		isTTY:  term.IsTerminal(int(in.Fd())),
	}
}

func (r *repl) loop() int {
	if r.isTTY {
		fmt.Fprintln(r.out, "SimpleLang REPL — :help for commands, :quit to exit")
	}
	scanner := bufio.NewScanner(r.in)
	for {
		if r.isTTY {
			fmt.Fprint(r.out, "sl> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := r.command(line); quit {
				return 0
			}
			continue
		}
		r.eval(line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(r.errOut, err)
		return 1
	}
	return 0
}

// command handles REPL meta-commands; the result reports whether to quit.
func (r *repl) command(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(r.out, "Commands:")
		fmt.Fprintln(r.out, "  :env   list declared variables")
		fmt.Fprintln(r.out, "  :help  show this help")
		fmt.Fprintln(r.out, "  :quit  exit the REPL")
	case ":env":
		env := r.interp.Environment()
		if env.Len() == 0 {
			fmt.Fprintln(r.out, "(no variables declared)")
			return false
		}
		for _, name := range env.Names() {
			if value, ok := env.Get(name); ok {
				fmt.Fprintf(r.out, "%s %s = %s\n", value.Kind(), name, runtime.Display(value))
			}
		}
	default:
		fmt.Fprintf(r.errOut, "unknown command %s (:help lists commands)\n", line)
	}
	return false
}

func (r *repl) eval(line string) {
	r.inputCount++
	program, err := r.loader.ParseSource(fmt.Sprintf("repl:%d", r.inputCount), []byte(line))
	if err != nil {
		var diagErr *driver.ParserDiagnosticError
		if errors.As(err, &diagErr) {
			fmt.Fprintln(r.errOut, driver.DescribeParserDiagnostic(diagErr.Diagnostic))
			return
		}
		fmt.Fprintln(r.errOut, err)
		return
	}
	if runErr := r.interp.EvaluateProgram(program.AST); runErr != nil {
		diag := r.interp.BuildRuntimeDiagnostic(runErr)
		fmt.Fprintln(r.errOut, interpreter.DescribeRuntimeDiagnostic(diag))
	}
}
