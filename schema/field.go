package schema

import (
	"errors"
	"fmt"
	"regexp"

	"go.toonkit.dev/toonkit/toon"
)

// ErrValidation is the sentinel wrapped by every [*ValidationError];
// match with [errors.Is].
var ErrValidation = errors.New("validation failed")

// FieldType is the declared type of a schema field.
type FieldType uint8

// The complete set of field types. TypeNumber accepts both integers and
// floats; TypeInteger and TypeFloat are deliberately strict and reject
// each other, matching schema inference.
const (
	TypeAny FieldType = iota
	TypeString
	TypeInteger
	TypeFloat
	TypeNumber
	TypeBoolean
)

// String returns the lowercase name of the field type.
func (ft FieldType) String() string {
	switch ft {
	case TypeAny:
		return "any"
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	}

	return fmt.Sprintf("fieldtype(%d)", uint8(ft))
}

// Field declares the validation contract for one record field. Fields are
// required and non-nullable unless configured otherwise.
//
// Create instances with [NewField].
type Field struct {
	// Name is the field name as it appears in records.
	Name string

	// Type gates the value's kind.
	Type FieldType

	// Required demands the field's presence in every record.
	Required bool

	// Nullable permits null in place of a typed value.
	Nullable bool

	// Min and Max bound numeric values inclusively when non-nil.
	Min *float64
	Max *float64

	// Pattern must fully match string values when non-nil.
	Pattern *regexp.Regexp

	// Enum restricts the value to this set when non-empty.
	Enum []toon.Value

	// Check is an optional custom predicate applied last.
	Check func(toon.Value) bool

	// Nested declares the fields of a nested record object. When set, the
	// value must be an object and is validated recursively; without it,
	// nested objects are opaque to the schema.
	Nested []Field
}

// FieldOption configures a [Field].
type FieldOption func(*Field)

// NewField creates a required, non-nullable field of the given type.
func NewField(name string, typ FieldType, opts ...FieldOption) Field {
	f := Field{
		Name:     name,
		Type:     typ,
		Required: true,
	}

	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// Optional marks the field as not required.
func Optional() FieldOption {
	return func(f *Field) {
		f.Required = false
	}
}

// Nullable permits null values.
func Nullable() FieldOption {
	return func(f *Field) {
		f.Nullable = true
	}
}

// WithMin sets the inclusive lower numeric bound.
func WithMin(minVal float64) FieldOption {
	return func(f *Field) {
		f.Min = &minVal
	}
}

// WithMax sets the inclusive upper numeric bound.
func WithMax(maxVal float64) FieldOption {
	return func(f *Field) {
		f.Max = &maxVal
	}
}

// WithPattern requires string values to fully match the regexp.
func WithPattern(re *regexp.Regexp) FieldOption {
	return func(f *Field) {
		f.Pattern = re
	}
}

// WithEnum restricts values to the given set.
func WithEnum(values ...toon.Value) FieldOption {
	return func(f *Field) {
		f.Enum = values
	}
}

// WithCheck adds a custom predicate applied after all other constraints.
func WithCheck(check func(toon.Value) bool) FieldOption {
	return func(f *Field) {
		f.Check = check
	}
}

// WithNested declares the field as a nested record with its own field
// list, validated recursively.
func WithNested(fields ...Field) FieldOption {
	return func(f *Field) {
		f.Nested = fields
	}
}

// ValidationError reports a value that failed its field contract. It wraps
// [ErrValidation] for errors.Is matching.
type ValidationError struct {
	// Array names the array being validated, when known.
	Array string

	// Field names the failing field, when the failure is field-scoped.
	Field string

	// Value is the failing value.
	Value toon.Value

	// Reason describes the failed check.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case e.Array != "" && e.Field != "":
		return fmt.Sprintf("%s.%s: %s", e.Array, e.Field, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	case e.Array != "":
		return fmt.Sprintf("%s: %s", e.Array, e.Reason)
	}

	return e.Reason
}

// Unwrap returns [ErrValidation].
func (e *ValidationError) Unwrap() error { return ErrValidation }

func fieldErr(field string, v toon.Value, format string, args ...any) error {
	return &ValidationError{
		Field:  field,
		Value:  v,
		Reason: fmt.Sprintf(format, args...),
	}
}

// Validate applies the field's checks to v in order: nullability, type
// gate, numeric bounds, pattern, enum membership, custom predicate.
func (f Field) Validate(v toon.Value) error {
	if v.IsNull() {
		if f.Nullable {
			return nil
		}

		return fieldErr(f.Name, v, "null not allowed")
	}

	if err := f.checkType(v); err != nil {
		return err
	}

	if err := f.checkBounds(v); err != nil {
		return err
	}

	if f.Pattern != nil && v.Kind() == toon.KindString {
		if !fullMatch(f.Pattern, v.Text()) {
			return fieldErr(f.Name, v, "%q does not match pattern %s", v.Text(), f.Pattern)
		}
	}

	if len(f.Enum) > 0 && !enumContains(f.Enum, v) {
		return fieldErr(f.Name, v, "value %s not in enum", toon.EncodeScalar(v))
	}

	if f.Check != nil && !f.Check(v) {
		return fieldErr(f.Name, v, "custom check failed")
	}

	return nil
}

func (f Field) checkType(v toon.Value) error {
	if len(f.Nested) > 0 {
		if v.Kind() != toon.KindObject {
			return fieldErr(f.Name, v, "expected nested object, got %s", v.Kind())
		}

		return validateFields(f.Name, f.Nested, v.Object(), false)
	}

	ok := false

	switch f.Type {
	case TypeAny:
		ok = true
	case TypeString:
		ok = v.Kind() == toon.KindString
	case TypeInteger:
		ok = v.Kind() == toon.KindInt
	case TypeFloat:
		ok = v.Kind() == toon.KindFloat
	case TypeNumber:
		ok = v.Kind() == toon.KindInt || v.Kind() == toon.KindFloat
	case TypeBoolean:
		ok = v.Kind() == toon.KindBool
	}

	if !ok {
		return fieldErr(f.Name, v, "expected %s, got %s", f.Type, v.Kind())
	}

	return nil
}

func (f Field) checkBounds(v toon.Value) error {
	var n float64

	switch v.Kind() {
	case toon.KindInt:
		n = float64(v.Int())
	case toon.KindFloat:
		n = v.Float()
	default:
		return nil
	}

	if f.Min != nil && n < *f.Min {
		return fieldErr(f.Name, v, "%v below minimum %v", n, *f.Min)
	}

	if f.Max != nil && n > *f.Max {
		return fieldErr(f.Name, v, "%v above maximum %v", n, *f.Max)
	}

	return nil
}

func fullMatch(re *regexp.Regexp, s string) bool {
	anchored, err := regexp.Compile(`\A(?:` + re.String() + `)\z`)
	if err != nil {
		return false
	}

	return anchored.MatchString(s)
}

func enumContains(enum []toon.Value, v toon.Value) bool {
	for _, e := range enum {
		if e.Equal(v) {
			return true
		}
	}

	return false
}
