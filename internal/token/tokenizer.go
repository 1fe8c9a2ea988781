package token

import (
	"fmt"
	"strings"

	"github.com/mcncl/jsontree/internal/errors"
)

// Tokenize scans the full document text into its complete token sequence, or
// fails on the first lexical error, reporting the offending character, its
// code point and its rune offset. Escape sequences inside string literals
// are preserved verbatim; numeric spans are delimited but not grammar
// checked here.
func Tokenize(input string) ([]Token, error) {
	s := &scanner{src: []rune(input)}
	var tokens []Token
	for {
		c, ok := s.next()
		if !ok {
			return tokens, nil
		}
		switch {
		case c == '{':
			tokens = append(tokens, Token{Kind: CurlyOpen})
		case c == '}':
			tokens = append(tokens, Token{Kind: CurlyClose})
		case c == '[':
			tokens = append(tokens, Token{Kind: SquareOpen})
		case c == ']':
			tokens = append(tokens, Token{Kind: SquareClose})
		case c == ':':
			tokens = append(tokens, Token{Kind: Colon})
		case c == ',':
			tokens = append(tokens, Token{Kind: Comma})
		case isWhitespace(c):
			// discarded
		case c == '"':
			tok, err := s.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case c == '-' || isDigit(c):
			tok, err := s.scanNumber(c)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case c == 't':
			tok, err := s.keyword(c, "rue", True)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case c == 'f':
			tok, err := s.keyword(c, "alse", False)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case c == 'n':
			tok, err := s.keyword(c, "ull", Null)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			return nil, s.invalidChar(c, s.pos-1)
		}
	}
}

// scanner is a cursor over the document's code points. A fresh scanner is
// built per Tokenize call; nothing is retained across calls.
type scanner struct {
	src []rune
	pos int
}

func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c := s.src[s.pos]
	s.pos++
	return c, true
}

func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

// scanString accumulates the raw contents of a string literal, escapes
// intact, until an unescaped closing quote. Escape state is an explicit
// boolean toggled on every backslash, so a literal backslash followed by a
// closing quote terminates the string.
func (s *scanner) scanString() (Token, error) {
	var b strings.Builder
	escaped := false
	for {
		c, ok := s.next()
		if !ok {
			return Token{}, errors.NewLexicalError("string literal is missing its closing quote", errors.ErrUnterminatedString)
		}
		if escaped {
			b.WriteRune(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			b.WriteRune(c)
			escaped = true
		case '"':
			return Token{Kind: String, Text: b.String()}, nil
		default:
			b.WriteRune(c)
		}
	}
}

// scanNumber greedily consumes the characters a numeric literal may contain
// until a delimiter. The delimiter itself is left for the main loop; full
// grammar validation of the span is deferred to the number package.
func (s *scanner) scanNumber(first rune) (Token, error) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		c, ok := s.peek()
		if !ok {
			break
		}
		switch {
		case isDigit(c) || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E':
			b.WriteRune(c)
			s.pos++
		case isWhitespace(c) || c == ',' || c == ']' || c == '}':
			return Token{Kind: Number, Text: b.String()}, nil
		default:
			return Token{}, s.invalidChar(c, s.pos)
		}
	}
	return Token{Kind: Number, Text: b.String()}, nil
}

// keyword matches the remaining characters of an expected literal, one
// keyword matcher shared by true, false and null. On failure it reports the
// longest prefix matched so far, including the offending character.
func (s *scanner) keyword(first rune, rest string, kind Kind) (Token, error) {
	matched := string(first)
	for _, want := range rest {
		c, ok := s.next()
		if !ok {
			return Token{}, errors.NewLexicalError(fmt.Sprintf("invalid token %q", matched), nil)
		}
		matched += string(c)
		if c != want {
			return Token{}, errors.NewLexicalError(fmt.Sprintf("invalid token %q", matched), nil)
		}
	}
	return Token{Kind: kind}, nil
}

func (s *scanner) invalidChar(c rune, offset int) error {
	return errors.NewLexicalError(fmt.Sprintf("invalid character '%c' (%#04x) at offset %d", c, c, offset), nil)
}

// Whitespace is space, line feed, carriage return or tab; no other control
// characters are permitted in bare positions.
func isWhitespace(c rune) bool {
	return c == 0x0020 || c == 0x000A || c == 0x000D || c == 0x0009
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
