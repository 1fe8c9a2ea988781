package value

import "strings"

// Object is a mapping of unique string keys to values. Insertion order is
// preserved so that serialization is reproducible; lookup stays by key.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates a new empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

func (*Object) Kind() Kind { return KindObject }

// Len returns the number of members in the object.
func (o *Object) Len() int {
	return len(o.keys)
}

// Insert adds a key/value pair. If the key was already present the value is
// replaced in place, keeping its original position, and the old value is
// returned with true.
func (o *Object) Insert(key string, v Value) (Value, bool) {
	old, existed := o.values[key]
	if !existed {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return old, existed
}

// Remove deletes a key from the object, returning the value that was stored
// under it, if any.
func (o *Object) Remove(key string) (Value, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Get returns the value stored under key, if any.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Equal reports whether both objects hold equal values under the same keys.
// Member order is irrelevant to equality.
func (o *Object) Equal(other Value) bool {
	t, ok := other.(*Object)
	if !ok || len(o.keys) != len(t.keys) {
		return false
	}
	for k, v := range o.values {
		tv, ok := t.values[k]
		if !ok || !v.Equal(tv) {
			return false
		}
	}
	return true
}

// String renders the object for diagnostics: unquoted keys, " : " spacing
// and a trailing comma after every member. Not a wire format.
func (o *Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for _, k := range o.keys {
		b.WriteString(k)
		b.WriteString(" : ")
		b.WriteString(o.values[k].String())
		b.WriteByte(',')
	}
	b.WriteByte('}')
	return b.String()
}

func (o *Object) appendJSON(b *strings.Builder) {
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		appendEscaped(b, k)
		b.WriteByte(':')
		o.values[k].appendJSON(b)
	}
	b.WriteByte('}')
}
