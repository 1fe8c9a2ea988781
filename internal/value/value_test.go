package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsontree/internal/number"
)

func mustNumber(t *testing.T, literal string) Number {
	t.Helper()
	n, err := number.Parse(literal)
	require.NoError(t, err)
	return NewNumber(n)
}

func mustString(t *testing.T, s string) String {
	t.Helper()
	v, err := NewString(s)
	require.NoError(t, err)
	return v
}

func TestNull(t *testing.T) {
	a := Null{}
	b := Null{}
	assert.Equal(t, KindNull, a.Kind())
	assert.Equal(t, "null", a.String())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Boolean(true)))
}

func TestBoolean(t *testing.T) {
	b1 := Boolean(true)
	b2 := Boolean(false)
	assert.Equal(t, "true", b1.String())
	assert.Equal(t, "false", b2.String())
	assert.False(t, b1.Equal(b2))
	assert.True(t, b2.Equal(Boolean(false)))
	assert.False(t, b1.Equal(Null{}))
}

func TestNumberValue(t *testing.T) {
	n1 := mustNumber(t, "90.010")
	n2 := mustNumber(t, "90.010")
	assert.Equal(t, "90.010", n1.String())
	assert.True(t, n1.Equal(n2))

	// Equality is by derived value, not spelling.
	assert.True(t, mustNumber(t, "1e2").Equal(mustNumber(t, "100.0")))
	assert.False(t, n1.Equal(mustNumber(t, "90.011")))
}

func TestArray(t *testing.T) {
	a1 := Array{Boolean(true), mustString(t, "123"), mustNumber(t, "3.4e-3")}
	assert.Equal(t, `[true, "123", 3.4e-3]`, a1.String())

	a2 := Array{Boolean(true)}
	assert.False(t, a1.Equal(a2))
	a3 := Array{Boolean(true), mustString(t, "123"), mustNumber(t, "3.4e-3")}
	assert.True(t, a1.Equal(a3))
}

func TestObject_Display(t *testing.T) {
	obj := NewObject()
	assert.Equal(t, "{}", obj.String())

	obj.Insert("key1", Null{})
	assert.Equal(t, "{key1 : null,}", obj.String())
}

func TestSerialize(t *testing.T) {
	assert.Equal(t, "null", Serialize(Null{}))
	assert.Equal(t, "true", Serialize(Boolean(true)))
	assert.Equal(t, "false", Serialize(Boolean(false)))
	assert.Equal(t, "[]", Serialize(Array{}))
	assert.Equal(t, "[true,null]", Serialize(Array{Boolean(true), Null{}}))
	assert.Equal(t, "{}", Serialize(NewObject()))
	assert.Equal(t, "355.3", Serialize(mustNumber(t, "355.3")))
	assert.Equal(t, `"hello"`, Serialize(mustString(t, "hello")))

	obj := NewObject()
	obj.Insert("key1", Null{})
	assert.Equal(t, `{"key1":null}`, Serialize(obj))
	obj.Insert("key2", Boolean(false))
	// Insertion order is preserved, so serialization is reproducible.
	assert.Equal(t, `{"key1":null,"key2":false}`, Serialize(obj))
}

func TestSerialize_EscapeTable(t *testing.T) {
	s := mustString(t, "a\"b\\c/d\be\ff\ng\rh\ti")
	assert.Equal(t, `"a\"b\\c\/d\be\ff\ng\rh\ti"`, Serialize(s))

	// Characters outside the table pass through literally.
	assert.Equal(t, `"🚗 car"`, Serialize(mustString(t, "🚗 car")))
}
