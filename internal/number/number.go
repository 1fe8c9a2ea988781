// Package number implements the JSON numeric-literal grammar: a structured
// decimal representation of a literal plus a derived float64 approximation.
//
// A number is a sequence of decimal digits with no superfluous leading zero.
// It may have a preceding minus sign (U+002D), a fractional part prefixed by
// a decimal point (U+002E), and an exponent prefixed by e (U+0065) or
// E (U+0045) with an optional + (U+002B) or - (U+002D) sign.
package number

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mcncl/jsontree/internal/errors"
)

// Sign represents the sign marker of a number or of its exponent.
type Sign int

const (
	SignNone Sign = iota
	SignPositive
	SignNegative
)

// phase tracks which part of the literal the scan is currently filling.
type phase int

const (
	beforePoint phase = iota
	afterPoint
	afterExponent
)

// Number is the structured form of a JSON numeric literal. The fractional
// and exponent parts use the digit string "0" as the sentinel for "absent",
// so rendering omits them; "1.0" and "1e0" both render as "1".
type Number struct {
	sign      Sign
	integer   string
	fraction  string
	exponent  string
	expSign   Sign
	expMarker rune // 'e' or 'E'; zero when the literal has no exponent
	value     float64
}

// Parse converts a numeric literal into a Number. The input is expected to
// start with a digit or a minus sign, as delimited by the tokenizer. Every
// rejection names the 0-based index of the offending character within the
// literal and the token class that was expected there.
func Parse(s string) (Number, error) {
	var (
		sign, expSign Sign
		marker        rune
		ph            phase
		intPart       []byte
		fracPart      []byte
		expPart       []byte
	)

	// expectPoint is set immediately after a leading zero: the only legal
	// continuation of "0" is a fractional part. expectDigit is set
	// immediately after a decimal point, which must be followed by a digit.
	expectPoint := false
	expectDigit := false

	push := func(c rune) {
		switch ph {
		case beforePoint:
			intPart = append(intPart, byte(c))
		case afterPoint:
			fracPart = append(fracPart, byte(c))
		case afterExponent:
			expPart = append(expPart, byte(c))
		}
	}

	runes := []rune(s)
	for i, c := range runes {
		switch {
		case i == 0 && c == '-':
			sign = SignNegative
		case expectPoint:
			if c != '.' {
				return Number{}, errors.NewGrammarError(fmt.Sprintf("a decimal point was expected at index %d", i), nil)
			}
			expectPoint = false
			expectDigit = true
			ph = afterPoint
		case expectDigit:
			if !isDigit(c) {
				return Number{}, errors.NewGrammarError(fmt.Sprintf("a digit was expected at index %d", i), nil)
			}
			expectDigit = false
			push(c)
		case isDigit(c):
			if ph == beforePoint && len(intPart) == 0 && c == '0' {
				expectPoint = true
			}
			push(c)
		case c == '.':
			if ph != beforePoint {
				return Number{}, errors.NewGrammarError(fmt.Sprintf("an illegal decimal point at index %d", i), nil)
			}
			if len(intPart) == 0 {
				return Number{}, errors.NewGrammarError(fmt.Sprintf("a digit was expected at index %d", i), nil)
			}
			ph = afterPoint
			expectDigit = true
		case c == 'e' || c == 'E':
			if ph == afterExponent {
				return Number{}, errors.NewGrammarError(fmt.Sprintf("an illegal exponent marker '%c' at index %d", c, i), nil)
			}
			if len(intPart) == 0 {
				return Number{}, errors.NewGrammarError(fmt.Sprintf("a digit was expected at index %d", i), nil)
			}
			marker = c
			ph = afterExponent
		case c == '+' || c == '-':
			if ph != afterExponent || len(expPart) > 0 || expSign != SignNone {
				return Number{}, errors.NewGrammarError(fmt.Sprintf("an illegal sign at index %d", i), nil)
			}
			if c == '+' {
				expSign = SignPositive
			} else {
				expSign = SignNegative
			}
		default:
			return Number{}, errors.NewGrammarError(fmt.Sprintf("illegal character '%c' at index %d", c, i), nil)
		}
	}

	// The grammar requires at least one digit in the integer part, after a
	// decimal point, and after an exponent marker.
	if expectDigit || len(intPart) == 0 || (ph == afterExponent && len(expPart) == 0) {
		return Number{}, errors.NewGrammarError(fmt.Sprintf("a digit was expected at index %d", len(runes)), nil)
	}

	if len(fracPart) == 0 {
		fracPart = []byte{'0'}
	}
	if len(expPart) == 0 {
		expPart = []byte{'0'}
	}

	n := Number{
		sign:      sign,
		integer:   string(intPart),
		fraction:  string(fracPart),
		exponent:  string(expPart),
		expSign:   expSign,
		expMarker: marker,
	}
	n.value = derive(n)
	return n, nil
}

// derive composes sign × (integer + fraction/10^len(fraction)) × 10^(±exponent).
// This is a direct floating composition, not a minimal-rounding-error
// conversion: literals with more significant digits than a float64 can hold
// come out approximate.
func derive(n Number) float64 {
	f, _ := strconv.ParseFloat(n.integer, 64)
	frac, _ := strconv.ParseFloat(n.fraction, 64)
	f += frac / math.Pow10(len(n.fraction))
	if n.exponent != "0" {
		// Atoi clamps on overflow, which Pow10 turns into 0 or +Inf.
		e, _ := strconv.Atoi(n.exponent)
		if n.expSign == SignNegative {
			e = -e
		}
		f *= math.Pow10(e)
	}
	if n.sign == SignNegative {
		f = -f
	}
	return f
}

// Float64 returns the derived floating approximation of the literal.
func (n Number) Float64() float64 {
	return n.value
}

// Sign returns the sign marker of the literal.
func (n Number) Sign() Sign {
	return n.sign
}

// Equal reports whether two numbers have the same derived value. Spelling is
// irrelevant: "1e2", "100" and "100.0" all compare equal.
func (n Number) Equal(other Number) bool {
	return n.value == other.value
}

// String renders the literal back to its exact original spelling, except
// that a fractional or exponent part equal to the "0" sentinel is omitted.
func (n Number) String() string {
	var b strings.Builder
	if n.sign == SignNegative {
		b.WriteByte('-')
	}
	b.WriteString(n.integer)
	if n.fraction != "0" {
		b.WriteByte('.')
		b.WriteString(n.fraction)
	}
	if n.exponent != "0" {
		b.WriteRune(n.expMarker)
		switch n.expSign {
		case SignPositive:
			b.WriteByte('+')
		case SignNegative:
			b.WriteByte('-')
		}
		b.WriteString(n.exponent)
	}
	return b.String()
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
