package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sl")
	require.NoError(t, os.WriteFile(path, []byte("print 1 + 2\n"), 0o644))

	loader := NewLoader(zerolog.Nop())
	program, err := loader.LoadProgram(path)
	require.NoError(t, err)
	require.Equal(t, filepath.ToSlash(path), program.Path)
	require.Len(t, program.AST.Statements, 1)
}

func TestLoadProgramMissingFile(t *testing.T) {
	loader := NewLoader(zerolog.Nop())
	_, err := loader.LoadProgram(filepath.Join(t.TempDir(), "absent.sl"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "loader: read")
}

func TestLoadProgramSyntaxFault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.sl")
	require.NoError(t, os.WriteFile(path, []byte("number = 1\n"), 0o644))

	loader := NewLoader(zerolog.Nop())
	_, err := loader.LoadProgram(path)
	require.Error(t, err)

	var diagErr *ParserDiagnosticError
	require.ErrorAs(t, err, &diagErr)
	require.Equal(t, SeverityError, diagErr.Diagnostic.Severity)
	require.Contains(t, diagErr.Diagnostic.Message, "expected identifier")
	require.Equal(t, filepath.ToSlash(path), diagErr.Diagnostic.Location.Path)
	require.Equal(t, 1, diagErr.Diagnostic.Location.Line)
	require.Equal(t, 8, diagErr.Diagnostic.Location.Column)
}

func TestParseSourceUsesDisplayPath(t *testing.T) {
	loader := NewLoader(zerolog.Nop())
	_, err := loader.ParseSource("repl:1", []byte("print"))
	var diagErr *ParserDiagnosticError
	require.ErrorAs(t, err, &diagErr)
	require.Equal(t, "repl:1", diagErr.Diagnostic.Location.Path)
}

func TestFormatLocation(t *testing.T) {
	cases := []struct {
		name string
		loc  DiagnosticLocation
		want string
	}{
		{"full", DiagnosticLocation{Path: "a.sl", Line: 3, Column: 7}, "a.sl:3:7"},
		{"no column", DiagnosticLocation{Path: "a.sl", Line: 3}, "a.sl:3"},
		{"path only", DiagnosticLocation{Path: "a.sl"}, "a.sl"},
		{"no path", DiagnosticLocation{Line: 3, Column: 7}, "line 3, column 7"},
		{"line only", DiagnosticLocation{Line: 3}, "line 3"},
		{"empty", DiagnosticLocation{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatLocation(tc.loc))
		})
	}
}

func TestDescribeParserDiagnostic(t *testing.T) {
	diag := ParserDiagnostic{
		Severity: SeverityError,
		Message:  "expected expression, found end of input",
		Location: DiagnosticLocation{Path: "main.sl", Line: 1, Column: 6},
	}
	require.Equal(t, "syntax error: main.sl:1:6: expected expression, found end of input", DescribeParserDiagnostic(diag))

	diag.Location = DiagnosticLocation{}
	require.Equal(t, "syntax error: expected expression, found end of input", DescribeParserDiagnostic(diag))
}
