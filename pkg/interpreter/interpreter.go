package interpreter

import (
	"io"
	"os"

	"simplelang/interpreter-go/pkg/ast"
	"simplelang/interpreter-go/pkg/runtime"
)

// Interpreter walks a parsed program and mutates its environment. One
// interpreter owns one environment; Run replaces it, EvaluateProgram keeps it
// so callers like the REPL can accumulate state across inputs.
type Interpreter struct {
	out        io.Writer
	env        *runtime.Environment
	sourcePath string
}

// Option configures the interpreter.
type Option func(*Interpreter)

// WithOutput sets the print statement's output writer (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithSourcePath records the source path used in runtime diagnostics.
func WithSourcePath(path string) Option {
	return func(i *Interpreter) { i.sourcePath = path }
}

// New constructs an interpreter with an empty environment.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		out: os.Stdout,
		env: runtime.NewEnvironment(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Environment exposes the interpreter's variable bindings for inspection.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// Run executes a program against a fresh environment, halting at the first
// failure. Output emitted before the failing statement stays emitted.
func (i *Interpreter) Run(program *ast.Program) error {
	i.env = runtime.NewEnvironment()
	return i.EvaluateProgram(program)
}

// EvaluateProgram executes a program's top-level statements in order against
// the interpreter's current environment.
func (i *Interpreter) EvaluateProgram(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := i.executeStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}
