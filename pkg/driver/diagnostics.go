package driver

import (
	"fmt"
	"strings"
)

// DiagnosticSeverity grades a reported problem.
type DiagnosticSeverity int

const (
	SeverityError DiagnosticSeverity = iota
	SeverityWarning
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	default:
		return "error"
	}
}

// DiagnosticLocation pins a diagnostic to a source range.
type DiagnosticLocation struct {
	Path      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParserDiagnostic is a syntax fault with its source location.
type ParserDiagnostic struct {
	Severity DiagnosticSeverity
	Message  string
	Location DiagnosticLocation
}

// ParserDiagnosticError carries a ParserDiagnostic through an error chain.
type ParserDiagnosticError struct {
	Diagnostic ParserDiagnostic
}

func (e *ParserDiagnosticError) Error() string {
	return e.Diagnostic.Message
}

// FormatLocation renders a location as "path:line:col", degrading gracefully
// when parts are absent.
func FormatLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	switch {
	case path != "" && loc.Line > 0 && loc.Column > 0:
		return fmt.Sprintf("%s:%d:%d", path, loc.Line, loc.Column)
	case path != "" && loc.Line > 0:
		return fmt.Sprintf("%s:%d", path, loc.Line)
	case path != "":
		return path
	case loc.Line > 0 && loc.Column > 0:
		return fmt.Sprintf("line %d, column %d", loc.Line, loc.Column)
	case loc.Line > 0:
		return fmt.Sprintf("line %d", loc.Line)
	default:
		return ""
	}
}

// DescribeParserDiagnostic renders a parser diagnostic for terminal output.
func DescribeParserDiagnostic(diag ParserDiagnostic) string {
	prefix := "syntax error"
	if diag.Severity == SeverityWarning {
		prefix = "syntax warning"
	}
	if location := FormatLocation(diag.Location); location != "" {
		return fmt.Sprintf("%s: %s: %s", prefix, location, diag.Message)
	}
	return fmt.Sprintf("%s: %s", prefix, diag.Message)
}
