package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"simplelang/interpreter-go/pkg/ast"
	"simplelang/interpreter-go/pkg/driver"
)

// runtimeDiagnosticError pins a runtime failure to the node that raised it.
// The innermost wrap wins, so diagnostics point at the failing expression
// rather than the enclosing statement.
type runtimeDiagnosticError struct {
	err  error
	node ast.Node
}

func (e runtimeDiagnosticError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e runtimeDiagnosticError) Unwrap() error {
	return e.err
}

func (i *Interpreter) attachRuntimeContext(err error, node ast.Node) error {
	if err == nil || node == nil {
		return err
	}
	var diagErr runtimeDiagnosticError
	if errors.As(err, &diagErr) {
		return err
	}
	return runtimeDiagnosticError{err: err, node: node}
}

// RuntimeDiagnostic is a located runtime failure ready for presentation.
type RuntimeDiagnostic struct {
	Severity driver.DiagnosticSeverity
	Message  string
	Location driver.DiagnosticLocation
}

// BuildRuntimeDiagnostic resolves an execution error into a diagnostic with
// the failing node's source location when one was recorded.
func (i *Interpreter) BuildRuntimeDiagnostic(err error) RuntimeDiagnostic {
	location := driver.DiagnosticLocation{Path: i.sourcePath}
	var diagErr runtimeDiagnosticError
	if errors.As(err, &diagErr) && diagErr.node != nil {
		span := diagErr.node.Span()
		location = driver.DiagnosticLocation{
			Path:      i.sourcePath,
			Line:      span.Start.Line,
			Column:    span.Start.Column,
			EndLine:   span.End.Line,
			EndColumn: span.End.Column,
		}
	}
	return RuntimeDiagnostic{
		Severity: driver.SeverityError,
		Message:  err.Error(),
		Location: location,
	}
}

// DescribeRuntimeDiagnostic renders a runtime diagnostic for terminal output.
func DescribeRuntimeDiagnostic(diag RuntimeDiagnostic) string {
	message := strings.TrimSpace(diag.Message)
	if location := driver.FormatLocation(diag.Location); location != "" {
		return fmt.Sprintf("runtime: %s %s", location, message)
	}
	return fmt.Sprintf("runtime: %s", message)
}
