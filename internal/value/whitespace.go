package value

import "github.com/mcncl/jsontree/internal/errors"

// Whitespace is a validated run of insignificant whitespace: one or more of
// space (U+0020), line feed (U+000A), carriage return (U+000D) and tab
// (U+0009). It is not a tree value; it exists so formatting-aware callers
// can carry whitespace runs around without re-validating them.
type Whitespace struct {
	value string
}

// NewWhitespace validates that s is a non-empty run of whitespace code
// points.
func NewWhitespace(s string) (Whitespace, error) {
	if s == "" {
		return Whitespace{}, errors.NewInputError("the whitespace run is empty", nil)
	}
	for _, c := range s {
		if c != 0x0020 && c != 0x000A && c != 0x000D && c != 0x0009 {
			return Whitespace{}, errors.NewLexicalError("the whitespace run contains illegal characters", nil)
		}
	}
	return Whitespace{value: s}, nil
}

// String returns the original run.
func (w Whitespace) String() string { return w.value }

// Serialize collapses any run to a single space, the minimal form.
func (w Whitespace) Serialize() string { return " " }
