// Package driver wires SimpleLang source files into parsed programs and
// carries the diagnostic types shared by the parser, checker, and
// interpreter boundaries. Execution itself stays in pkg/interpreter; the
// CLI composes the two.
package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"simplelang/interpreter-go/pkg/ast"
	"simplelang/interpreter-go/pkg/parser"
)

// Program is one loaded source unit with its parsed AST.
type Program struct {
	Path   string
	Source []byte
	AST    *ast.Program
}

// Loader reads and parses source units.
type Loader struct {
	log zerolog.Logger
}

// NewLoader constructs a loader; pass zerolog.Nop() to silence it.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// LoadProgram reads one source file and parses it. Parse faults come back as
// *ParserDiagnosticError with the file's path attached.
func (l *Loader) LoadProgram(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return l.ParseSource(filepath.ToSlash(path), source)
}

// ParseSource parses an in-memory source unit under the given display path.
func (l *Loader) ParseSource(path string, source []byte) (*Program, error) {
	start := time.Now()
	programAST, err := parser.Parse(source)
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			return nil, &ParserDiagnosticError{
				Diagnostic: ParserDiagnostic{
					Severity: SeverityError,
					Message:  parseErr.Message,
					Location: DiagnosticLocation{
						Path:      path,
						Line:      parseErr.Location.Line,
						Column:    parseErr.Location.Column,
						EndLine:   parseErr.Location.EndLine,
						EndColumn: parseErr.Location.EndColumn,
					},
				},
			}
		}
		return nil, fmt.Errorf("loader: parse %s: %w", path, err)
	}
	l.log.Debug().
		Str("path", path).
		Int("statements", len(programAST.Statements)).
		Dur("elapsed", time.Since(start)).
		Msg("parsed program")
	return &Program{Path: path, Source: source, AST: programAST}, nil
}
