package parser

import "fmt"

// SourceLocation captures a source span for parser diagnostics.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParseError includes a message plus a best-effort source location. The first
// lexical or syntactic fault aborts the parse; there is no error recovery.
type ParseError struct {
	Message  string
	Location SourceLocation
}

func (e *ParseError) Error() string {
	return e.Message
}

func syntaxErrorAt(tok token, format string, args ...any) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Location: locationForToken(tok),
	}
}

func locationForToken(tok token) SourceLocation {
	return SourceLocation{
		Line:      tok.Line,
		Column:    tok.Col,
		EndLine:   tok.EndLine,
		EndColumn: tok.EndCol,
	}
}
