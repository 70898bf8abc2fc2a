// Package runtime defines the SimpleLang value model and the flat variable
// environment shared by one program run.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category. A value's kind is fixed at
// construction; the language has no implicit conversion between kinds.
type Kind int

const (
	KindNumber Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

// NumberValue holds a numeric payload. The language does not distinguish
// integers from floats at the value level; division is true division.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

// TextValue holds a character sequence produced from a string literal (after
// escape decoding) or carried through a variable read.
type TextValue struct {
	Val string
}

func (v TextValue) Kind() Kind { return KindText }

// Display renders a value for the print statement: numbers in their shortest
// round-trip decimal form, text verbatim and unquoted.
func Display(v Value) string {
	switch val := v.(type) {
	case NumberValue:
		return FormatNumber(val.Val)
	case TextValue:
		return val.Val
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// FormatNumber renders a numeric payload without a trailing ".0" for whole
// values: 5 prints as "5", 2.5 as "2.5".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// DecodeEscapes decodes backslash escape sequences inside a string literal's
// raw text. Recognised escapes follow the usual C/Python set; an unrecognised
// escape keeps the backslash and the following character unchanged.
func DecodeEscapes(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '\\' || i+1 >= len(runes) {
			b.WriteRune(ch)
			continue
		}
		i++
		switch runes[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		default:
			b.WriteByte('\\')
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
