// Package parser turns JSON text into a value tree: it tokenizes the whole
// document, then consumes the token sequence with a recursive-descent walk.
// Each parse call is a fresh, self-contained pass with no shared state.
package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/number"
	"github.com/mcncl/jsontree/internal/token"
	"github.com/mcncl/jsontree/internal/value"
)

// DefaultMaxDepth bounds object/array nesting so adversarial input fails
// with a descriptive error instead of exhausting the call stack.
const DefaultMaxDepth = 512

// Options adjusts a single parse call.
type Options struct {
	// MaxDepth caps container nesting; zero or negative selects
	// DefaultMaxDepth.
	MaxDepth int
}

// Parse reads all of reader and parses it as one JSON document.
func Parse(reader io.Reader) (value.Value, error) {
	return ParseWithOptions(reader, Options{})
}

// ParseWithOptions is Parse with an explicit nesting limit.
func ParseWithOptions(reader io.Reader, opts Options) (value.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return ParseStringWithOptions(string(data), opts)
}

// ParseString parses JSON text into a fully owned value tree, or fails with
// a descriptive error naming the offending character or token and, where
// available, its position.
func ParseString(jsonString string) (value.Value, error) {
	return ParseStringWithOptions(jsonString, Options{})
}

// ParseStringWithOptions is ParseString with an explicit nesting limit.
func ParseStringWithOptions(jsonString string, opts Options) (value.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}

	tokens, err := token.Tokenize(jsonString)
	if err != nil {
		return nil, err
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{tokens: tokens, maxDepth: maxDepth}

	root, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if trailing, ok := p.peek(); ok {
		return nil, errors.NewStructuralError(
			fmt.Sprintf("unexpected token '%s' after the top-level value", trailing),
			errors.ErrTrailingTokens,
		)
	}
	return root, nil
}

// MustParseString parses a JSON literal and panics on error. It is a
// convenience for tests and embedded documents.
func MustParseString(jsonString string) value.Value {
	v, err := ParseString(jsonString)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (value.Value, error) {
	return ParseFileWithOptions(filePath, Options{})
}

// ParseFileWithOptions is ParseFile with an explicit nesting limit.
func ParseFileWithOptions(filePath string, opts Options) (value.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return ParseWithOptions(file, opts)
}

// parser consumes the token sequence left to right exactly once. depth
// tracks container nesting for the configurable limit.
type parser struct {
	tokens   []token.Token
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) next() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, true
}

func (p *parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return errors.NewStructuralError(
			fmt.Sprintf("nesting exceeds the maximum depth of %d", p.maxDepth),
			errors.ErrNestingTooDeep,
		)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// parseValue consumes exactly one value starting at the next token.
func (p *parser) parseValue() (value.Value, error) {
	tok, ok := p.next()
	if !ok {
		return nil, errors.NewStructuralError("no token found where a value was expected", nil)
	}
	switch tok.Kind {
	case token.CurlyOpen:
		return p.parseObject()
	case token.SquareOpen:
		return p.parseArray()
	case token.Number:
		n, err := number.Parse(tok.Text)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(n), nil
	case token.String:
		s, err := value.DecodeString(tok.Text)
		if err != nil {
			return nil, err
		}
		return s, nil
	case token.True:
		return value.Boolean(true), nil
	case token.False:
		return value.Boolean(false), nil
	case token.Null:
		return value.Null{}, nil
	default:
		return nil, errors.NewStructuralError(fmt.Sprintf("invalid token '%s' where a value was expected", tok), nil)
	}
}

// parseObject is entered after the opening brace. Sub-states: key expected,
// colon expected, value expected, separator-or-close expected.
func (p *parser) parseObject() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	obj := value.NewObject()
	first := true
	for {
		tok, ok := p.next()
		if !ok {
			return nil, errors.NewStructuralError(`invalid JSON object: missing a closing curly bracket "}"`, nil)
		}
		if first && tok.Kind == token.CurlyClose {
			return obj, nil
		}
		first = false
		if tok.Kind != token.String {
			return nil, errors.NewStructuralError(fmt.Sprintf("invalid JSON object: invalid token '%s' where a key was expected", tok), nil)
		}
		key, err := value.DecodeString(tok.Text)
		if err != nil {
			return nil, err
		}

		colon, ok := p.next()
		if !ok {
			return nil, errors.NewStructuralError(`invalid JSON object: missing a colon ":"`, nil)
		}
		if colon.Kind != token.Colon {
			return nil, errors.NewStructuralError(fmt.Sprintf(`invalid JSON object: invalid token '%s' instead of ":"`, colon), nil)
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, existed := obj.Insert(key.Text(), v); existed {
			return nil, errors.NewStructuralError(
				fmt.Sprintf("invalid JSON object: the key %q is not unique", key.Text()),
				errors.ErrDuplicateKey,
			)
		}

		sep, ok := p.next()
		if !ok {
			return nil, errors.NewStructuralError(`invalid JSON object: missing a closing curly bracket "}"`, nil)
		}
		switch sep.Kind {
		case token.Comma:
		case token.CurlyClose:
			return obj, nil
		default:
			return nil, errors.NewStructuralError(fmt.Sprintf(`invalid JSON object: invalid token '%s' where "," or "}" was expected`, sep), nil)
		}
	}
}

// parseArray is entered after the opening bracket. Sub-states: value
// expected, separator-or-close expected.
func (p *parser) parseArray() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	arr := value.Array{}
	first := true
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, errors.NewStructuralError(`invalid JSON array: missing a closing square bracket "]"`, nil)
		}
		if first && tok.Kind == token.SquareClose {
			p.pos++
			return arr, nil
		}
		first = false

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		sep, ok := p.next()
		if !ok {
			return nil, errors.NewStructuralError(`invalid JSON array: missing a closing square bracket "]"`, nil)
		}
		switch sep.Kind {
		case token.Comma:
		case token.SquareClose:
			return arr, nil
		default:
			return nil, errors.NewStructuralError(fmt.Sprintf(`invalid JSON array: invalid token '%s' where "," or "]" was expected`, sep), nil)
		}
	}
}
