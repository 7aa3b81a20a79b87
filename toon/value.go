package toon

import (
	"fmt"
	"iter"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

// The complete set of value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a tagged scalar-or-composite: null, bool, int64, float64,
// string, array, or insertion-ordered object. The zero Value is null.
//
// Construct values with [Null], [Bool], [Int], [Float], [String],
// [ArrayOf], and [ObjectOf]. Accessors return the zero value of their type
// when the Value holds a different kind.
type Value struct {
	arr  []Value
	obj  *Object
	str  string
	i    int64
	f    float64
	kind Kind
	b    bool
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// ArrayOf returns an array value holding the given elements.
func ArrayOf(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// ObjectOf returns an object value wrapping o. A nil o is treated as an
// empty object.
func ObjectOf(o *Object) Value {
	if o == nil {
		o = NewObject()
	}

	return Value{kind: KindObject, obj: o}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or false for other kinds.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload, or 0 for other kinds.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload, or 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Text returns the string payload, or "" for other kinds.
func (v Value) Text() string { return v.str }

// Array returns the element slice, or nil for other kinds.
// The slice is shared, not copied.
func (v Value) Array() []Value { return v.arr }

// Object returns the object payload, or nil for other kinds.
func (v Value) Object() *Object { return v.obj }

// Equal reports deep equality. Int and Float values never compare equal to
// each other, matching the parse/serialize contract. Object equality
// requires the same keys in the same insertion order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}

		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	}

	return false
}

// Object is a mapping from string keys to [Value] that preserves insertion
// order. Order is significant: the tabular field list is derived from the
// first record's key sequence, and document blocks are emitted in key
// order.
//
// The zero Object is not usable; create instances with [NewObject].
type Object struct {
	index map[string]int
	keys  []string
	vals  []Value
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// ObjectFromPairs creates an object from alternating key, value pairs,
// preserving the given order. It panics if a key is not a string; it is
// intended for literals in tests and examples.
func ObjectFromPairs(pairs ...any) *Object {
	if len(pairs)%2 != 0 {
		panic("toon: ObjectFromPairs requires an even number of arguments")
	}

	o := NewObject()

	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("toon: ObjectFromPairs key %d is %T, not string", i/2, pairs[i]))
		}

		val, ok := pairs[i+1].(Value)
		if !ok {
			panic(fmt.Sprintf("toon: ObjectFromPairs value for %q is %T, not Value", key, pairs[i+1]))
		}

		o.Set(key, val)
	}

	return o
}

// Set stores v under key. An existing key keeps its position; a new key is
// appended.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = v

		return
	}

	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Get returns the value stored under key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}

	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}

	return o.vals[i], true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}

	_, ok := o.index[key]

	return ok
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Entries iterates over key/value pairs in insertion order.
func (o *Object) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}

		for i, key := range o.keys {
			if !yield(key, o.vals[i]) {
				return
			}
		}
	}
}

// Equal reports whether both objects hold equal values under the same keys
// in the same insertion order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}

	for i, key := range o.keys {
		if key != other.keys[i] {
			return false
		}

		if !o.vals[i].Equal(other.vals[i]) {
			return false
		}
	}

	return true
}
