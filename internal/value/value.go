// Package value implements the tree of typed values a parsed JSON document
// becomes: objects, arrays, strings, numbers, booleans and null. Containers
// exclusively own their children; nodes are built bottom-up during parsing.
package value

import "strings"

// Kind identifies the variant of a Value.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBoolean
	KindNull
)

// Value is one node of the tree. Equality is structural and variant-aware;
// String is a diagnostic rendering that is not valid JSON (see Serialize).
type Value interface {
	Kind() Kind
	Equal(other Value) bool
	String() string

	appendJSON(b *strings.Builder)
}

// Null is the JSON null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) Equal(other Value) bool {
	return other != nil && other.Kind() == KindNull
}

func (Null) String() string { return "null" }

func (Null) appendJSON(b *strings.Builder) { b.WriteString("null") }

// Boolean is a JSON true or false.
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

func (v Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && v == o
}

func (v Boolean) String() string {
	if v {
		return "true"
	}
	return "false"
}

func (v Boolean) appendJSON(b *strings.Builder) { b.WriteString(v.String()) }

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }

// Equal reports whether both arrays hold pairwise equal elements.
func (v Array) Equal(other Value) bool {
	o, ok := other.(Array)
	if !ok || len(v) != len(o) {
		return false
	}
	for i := range v {
		if !v[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// String renders the array for diagnostics, with ", " between elements and
// string elements quoted.
func (v Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, elem := range v {
		if s, ok := elem.(String); ok {
			b.WriteByte('"')
			b.WriteString(s.String())
			b.WriteByte('"')
		} else {
			b.WriteString(elem.String())
		}
		if i < len(v)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (v Array) appendJSON(b *strings.Builder) {
	b.WriteByte('[')
	for i, elem := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		elem.appendJSON(b)
	}
	b.WriteByte(']')
}

// Serialize renders a value tree as compact JSON text: object members in
// insertion order, strings through the standard escape table, numbers via
// their exact literal spelling, and no inserted whitespace anywhere.
func Serialize(v Value) string {
	var b strings.Builder
	v.appendJSON(&b)
	return b.String()
}
