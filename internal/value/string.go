package value

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/mcncl/jsontree/internal/errors"
)

// String is a validated sequence of Unicode code points. All code points are
// permitted except the control characters U+0000–U+0007, U+000B and
// U+000E–U+001F. Contents are held decoded; escape sequences are interpreted
// on construction via DecodeString and re-applied on serialization.
type String struct {
	value string
}

// NewString validates s and wraps it as a string value. s is taken as
// literal text; no escape sequences are interpreted.
func NewString(s string) (String, error) {
	for _, c := range s {
		if illegalInString(c) {
			return String{}, errors.NewLexicalError(fmt.Sprintf("the string contains an illegal character (0x%04X)", c), nil)
		}
	}
	return String{value: s}, nil
}

// DecodeString builds a string value from the raw text of a string literal,
// interpreting the two-character escapes and \uXXXX sequences the tokenizer
// preserved, then validating the decoded text.
func DecodeString(raw string) (String, error) {
	decoded, err := decodeEscapes(raw)
	if err != nil {
		return String{}, err
	}
	return NewString(decoded)
}

func (String) Kind() Kind { return KindString }

func (v String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && v.value == o.value
}

// String returns the decoded text without quotes.
func (v String) String() string { return v.value }

// Text returns the decoded contents.
func (v String) Text() string { return v.value }

func (v String) appendJSON(b *strings.Builder) {
	appendEscaped(b, v.value)
}

// appendEscaped writes a quoted JSON string using the fixed substitution
// table: quote, backslash, slash, backspace, form feed, line feed, carriage
// return and tab become two-character escapes; everything else passes
// through literally.
func appendEscaped(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '/':
			b.WriteString(`\/`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
}

// decodeEscapes interprets escape sequences in the raw text of a string
// literal. Surrogate halves escaped as \uXXXX must form a valid pair.
func decodeEscapes(raw string) (string, error) {
	var b strings.Builder
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' {
			b.WriteRune(c)
			continue
		}
		i++
		if i >= len(runes) {
			return "", errors.NewLexicalError(fmt.Sprintf("truncated escape sequence at index %d", i-1), nil)
		}
		switch runes[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, next, err := decodeUnicodeEscape(runes, i)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i = next
		default:
			return "", errors.NewLexicalError(fmt.Sprintf("invalid escape character '%c' at index %d", runes[i], i), nil)
		}
	}
	return b.String(), nil
}

// decodeUnicodeEscape reads the four hex digits following the 'u' at
// runes[i], pairing a high surrogate with a following \uXXXX low surrogate.
// It returns the decoded rune and the index of the last consumed rune.
func decodeUnicodeEscape(runes []rune, i int) (rune, int, error) {
	first, err := hexQuad(runes, i+1)
	if err != nil {
		return 0, 0, err
	}
	i += 4
	if !utf16.IsSurrogate(first) {
		return first, i, nil
	}
	if i+6 < len(runes) && runes[i+1] == '\\' && runes[i+2] == 'u' {
		second, err := hexQuad(runes, i+3)
		if err != nil {
			return 0, 0, err
		}
		if combined := utf16.DecodeRune(first, second); combined != 0xFFFD {
			return combined, i + 6, nil
		}
	}
	return 0, 0, errors.NewLexicalError(fmt.Sprintf("invalid surrogate pair in \\u escape at index %d", i-4), nil)
}

func hexQuad(runes []rune, start int) (rune, error) {
	if start+4 > len(runes) {
		return 0, errors.NewLexicalError(fmt.Sprintf("truncated \\u escape at index %d", start-2), nil)
	}
	var r rune
	for _, c := range runes[start : start+4] {
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, errors.NewLexicalError(fmt.Sprintf("invalid hex digit '%c' in \\u escape", c), nil)
		}
		r = r<<4 | d
	}
	return r, nil
}

func illegalInString(c rune) bool {
	return c < 0x0008 || c == 0x000B || (c > 0x000D && c < 0x0020)
}
