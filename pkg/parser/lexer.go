package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokEOF       tokenType = iota // End of input
	tokIdent                      // Identifier
	tokInt                        // Decimal integer literal
	tokString                     // String literal (raw, quotes stripped)
	tokLParen                     // (
	tokRParen                     // )
	tokLBrace                     // {
	tokRBrace                     // }
	tokAssign                     // =
	tokPlus                       // +
	tokMinus                      // -
	tokStar                       // *
	tokSlash                      // /
	tokEq                         // ==
	tokNotEq                      // !=
	tokLess                       // <
	tokLessEq                     // <=
	tokGreater                    // >
	tokGreaterEq                  // >=
	tokNumberKw                   // number
	tokTextKw                     // text
	tokPrintKw                    // print
	tokIfKw                       // if
	tokElseKw                     // else
)

var keywords = map[string]tokenType{
	"number": tokNumberKw,
	"text":   tokTextKw,
	"print":  tokPrintKw,
	"if":     tokIfKw,
	"else":   tokElseKw,
}

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokInt:
		return "integer literal"
	case tokString:
		return "string literal"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokAssign:
		return "'='"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokEq:
		return "'=='"
	case tokNotEq:
		return "'!='"
	case tokLess:
		return "'<'"
	case tokLessEq:
		return "'<='"
	case tokGreater:
		return "'>'"
	case tokGreaterEq:
		return "'>='"
	case tokNumberKw:
		return "'number'"
	case tokTextKw:
		return "'text'"
	case tokPrintKw:
		return "'print'"
	case tokIfKw:
		return "'if'"
	case tokElseKw:
		return "'else'"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// token represents one lexical unit of SimpleLang source.
type token struct {
	Lit     string    // Literal value; for strings the raw text between quotes
	Type    tokenType // Type of the token
	Line    int       // Start line (1-based)
	Col     int       // Start column (1-based)
	EndLine int       // Line just after the token
	EndCol  int       // Column just after the token
}

// lexer is a single-pass tokenizer over one source unit.
type lexer struct {
	r   *bufio.Reader // Reader for the input
	pos position      // Position of the current character
	ch  rune          // Current (unconsumed) character
	eof bool          // End of input reached
}

// position represents a position in the input.
type position struct {
	line int
	col  int
}

func newLexer(r io.Reader) *lexer {
	l := &lexer{r: bufio.NewReader(r), pos: position{line: 1, col: 0}}
	l.read()
	if l.ch == 0xFEFF {
		// Skip UTF-8 BOM if present.
		l.read()
	}
	return l
}

// next returns the next token from the input.
func (l *lexer) next() (token, error) {
	if err := l.skipWhitespace(); err != nil {
		return token{}, err
	}
	if l.eof {
		return token{Type: tokEOF, Line: l.pos.line, Col: l.pos.col, EndLine: l.pos.line, EndCol: l.pos.col}, nil
	}

	startLine, startCol := l.pos.line, l.pos.col

	switch l.ch {
	case '(':
		l.read()
		return l.finish(tokLParen, "(", startLine, startCol), nil
	case ')':
		l.read()
		return l.finish(tokRParen, ")", startLine, startCol), nil
	case '{':
		l.read()
		return l.finish(tokLBrace, "{", startLine, startCol), nil
	case '}':
		l.read()
		return l.finish(tokRBrace, "}", startLine, startCol), nil
	case '+':
		l.read()
		return l.finish(tokPlus, "+", startLine, startCol), nil
	case '-':
		l.read()
		return l.finish(tokMinus, "-", startLine, startCol), nil
	case '*':
		l.read()
		return l.finish(tokStar, "*", startLine, startCol), nil
	case '/':
		l.read()
		return l.finish(tokSlash, "/", startLine, startCol), nil
	case '=':
		l.read()
		if !l.eof && l.ch == '=' {
			l.read()
			return l.finish(tokEq, "==", startLine, startCol), nil
		}
		return l.finish(tokAssign, "=", startLine, startCol), nil
	case '!':
		l.read()
		if !l.eof && l.ch == '=' {
			l.read()
			return l.finish(tokNotEq, "!=", startLine, startCol), nil
		}
		return token{}, &ParseError{
			Message:  "unexpected character '!'",
			Location: SourceLocation{Line: startLine, Column: startCol, EndLine: startLine, EndColumn: startCol + 1},
		}
	case '<':
		l.read()
		if !l.eof && l.ch == '=' {
			l.read()
			return l.finish(tokLessEq, "<=", startLine, startCol), nil
		}
		return l.finish(tokLess, "<", startLine, startCol), nil
	case '>':
		l.read()
		if !l.eof && l.ch == '=' {
			l.read()
			return l.finish(tokGreaterEq, ">=", startLine, startCol), nil
		}
		return l.finish(tokGreater, ">", startLine, startCol), nil
	case '"':
		lit, err := l.readString()
		if err != nil {
			return token{}, err
		}
		return l.finish(tokString, lit, startLine, startCol), nil
	}

	if isIdentStart(l.ch) {
		lit := l.readIdent()
		if kw, ok := keywords[lit]; ok {
			return l.finish(kw, lit, startLine, startCol), nil
		}
		return l.finish(tokIdent, lit, startLine, startCol), nil
	}

	if unicode.IsDigit(l.ch) {
		lit := l.readInt()
		return l.finish(tokInt, lit, startLine, startCol), nil
	}

	return token{}, &ParseError{
		Message:  fmt.Sprintf("unexpected character %q", l.ch),
		Location: SourceLocation{Line: startLine, Column: startCol, EndLine: startLine, EndColumn: startCol + 1},
	}
}

func (l *lexer) finish(t tokenType, lit string, startLine, startCol int) token {
	return token{Type: t, Lit: lit, Line: startLine, Col: startCol, EndLine: l.pos.line, EndCol: l.pos.col}
}

func (l *lexer) read() {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		if l.ch == '\n' {
			l.pos.line++
			l.pos.col = 1
		} else {
			l.pos.col++
		}
		l.ch = 0
		return
	}
	if l.ch == '\n' {
		l.pos.line++
		l.pos.col = 1
	} else {
		l.pos.col++
	}
	l.ch = ch
}

// skipWhitespace consumes spaces and // line comments.
func (l *lexer) skipWhitespace() error {
	for !l.eof {
		if unicode.IsSpace(l.ch) {
			l.read()
			continue
		}
		if l.ch == '/' {
			peeked, err := l.r.Peek(1)
			if err == nil && len(peeked) == 1 && peeked[0] == '/' {
				for !l.eof && l.ch != '\n' {
					l.read()
				}
				continue
			}
		}
		return nil
	}
	return nil
}

// readString consumes a double-quoted literal and returns the text between
// the quotes with escape sequences left undecoded. Escaped characters
// (including \") are copied verbatim so the closing quote is found correctly.
func (l *lexer) readString() (string, error) {
	openLine, openCol := l.pos.line, l.pos.col
	var b strings.Builder
	l.read() // consume opening quote
	for {
		if l.eof || l.ch == '\n' {
			return "", &ParseError{
				Message:  "unterminated string literal",
				Location: SourceLocation{Line: openLine, Column: openCol, EndLine: l.pos.line, EndColumn: l.pos.col},
			}
		}
		switch l.ch {
		case '"':
			l.read() // consume closing quote
			return b.String(), nil
		case '\\':
			b.WriteRune('\\')
			l.read()
			if l.eof || l.ch == '\n' {
				return "", &ParseError{
					Message:  "unterminated string literal",
					Location: SourceLocation{Line: openLine, Column: openCol, EndLine: l.pos.line, EndColumn: l.pos.col},
				}
			}
			b.WriteRune(l.ch)
			l.read()
		default:
			b.WriteRune(l.ch)
			l.read()
		}
	}
}

func (l *lexer) readIdent() string {
	var b strings.Builder
	for !l.eof && isIdentPart(l.ch) {
		b.WriteRune(l.ch)
		l.read()
	}
	return b.String()
}

func (l *lexer) readInt() string {
	var b strings.Builder
	for !l.eof && unicode.IsDigit(l.ch) {
		b.WriteRune(l.ch)
		l.read()
	}
	return b.String()
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
