package value

import (
	"strings"

	"github.com/mcncl/jsontree/internal/number"
)

// Number is a JSON numeric value wrapping its structured decimal form.
// String renders the exact literal spelling; equality compares derived
// float64 values, so differently spelled numbers can be equal.
type Number struct {
	number.Number
}

// NewNumber wraps a structured number as a tree value.
func NewNumber(n number.Number) Number {
	return Number{Number: n}
}

func (Number) Kind() Kind { return KindNumber }

func (v Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && v.Number.Equal(o.Number)
}

func (v Number) appendJSON(b *strings.Builder) {
	b.WriteString(v.Number.String())
}
