package schema

import (
	"errors"
	"fmt"

	"go.toonkit.dev/toonkit/toon"
)

// Schema validates the records of one named array.
//
// Create instances with [New].
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
	strict bool
}

// Option configures a [Schema].
type Option func(*Schema)

// WithStrict rejects fields not declared by the schema.
func WithStrict(strict bool) Option {
	return func(s *Schema) {
		s.strict = strict
	}
}

// New creates a schema for the named array with the given fields, in
// order.
func New(name string, fields []Field, opts ...Option) *Schema {
	s := &Schema{
		name:   name,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		s.index[f.Name] = i
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the array name the schema validates.
func (s *Schema) Name() string { return s.name }

// Strict reports whether unknown fields are rejected.
func (s *Schema) Strict() bool { return s.strict }

// Fields returns the declared fields in order. The slice is a copy.
func (s *Schema) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)

	return fields
}

// Field returns the declared field with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// ValidateItem checks a single record: every required field must be
// present, every present field must satisfy its contract, and in strict
// mode no undeclared field may appear.
func (s *Schema) ValidateItem(item toon.Value) error {
	if item.Kind() != toon.KindObject {
		return &ValidationError{
			Array:  s.name,
			Value:  item,
			Reason: fmt.Sprintf("expected record object, got %s", item.Kind()),
		}
	}

	return validateFields(s.name, s.fields, item.Object(), s.strict)
}

// validateFields applies a field list to a record object. The scope
// prefixes error messages with the array or parent field name.
func validateFields(scope string, fields []Field, record *toon.Object, strict bool) error {
	declared := make(map[string]bool, len(fields))

	for _, f := range fields {
		declared[f.Name] = true

		v, ok := record.Get(f.Name)
		if !ok {
			if f.Required {
				return &ValidationError{
					Array:  scope,
					Field:  f.Name,
					Reason: "required field missing",
				}
			}

			continue
		}

		if err := f.Validate(v); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) && verr.Array == "" {
				verr.Array = scope
			}

			return err
		}
	}

	if strict {
		for key := range record.Entries() {
			if !declared[key] {
				return &ValidationError{
					Array:  scope,
					Field:  key,
					Reason: "unknown field",
				}
			}
		}
	}

	return nil
}

// ValidateArray applies per-item validation to every record.
func (s *Schema) ValidateArray(items []toon.Value) error {
	for i, item := range items {
		if err := s.ValidateItem(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}

// Validate checks that the document contains the schema's array and
// validates every record in it.
func (s *Schema) Validate(doc toon.Value) error {
	if doc.Kind() != toon.KindObject {
		return &ValidationError{
			Array:  s.name,
			Value:  doc,
			Reason: fmt.Sprintf("expected document object, got %s", doc.Kind()),
		}
	}

	arr, ok := doc.Object().Get(s.name)
	if !ok {
		return &ValidationError{Array: s.name, Reason: "array not found in document"}
	}

	if arr.Kind() != toon.KindArray {
		return &ValidationError{
			Array:  s.name,
			Value:  arr,
			Reason: fmt.Sprintf("expected array, got %s", arr.Kind()),
		}
	}

	return s.ValidateArray(arr.Array())
}

// MultiSchema validates several arrays of one document.
//
// Create instances with [NewMulti].
type MultiSchema struct {
	schemas    []*Schema
	allowExtra bool
}

// MultiOption configures a [MultiSchema].
type MultiOption func(*MultiSchema)

// WithAllowExtraArrays permits document arrays not covered by any schema.
func WithAllowExtraArrays(allow bool) MultiOption {
	return func(m *MultiSchema) {
		m.allowExtra = allow
	}
}

// NewMulti creates a MultiSchema validating each schema in order.
// Extra arrays are rejected unless [WithAllowExtraArrays] is set.
func NewMulti(schemas []*Schema, opts ...MultiOption) *MultiSchema {
	m := &MultiSchema{schemas: schemas}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Validate runs every schema against the document and, unless extra
// arrays are allowed, rejects arrays no schema covers.
func (m *MultiSchema) Validate(doc toon.Value) error {
	for _, s := range m.schemas {
		if err := s.Validate(doc); err != nil {
			return err
		}
	}

	if m.allowExtra {
		return nil
	}

	covered := make(map[string]bool, len(m.schemas))
	for _, s := range m.schemas {
		covered[s.name] = true
	}

	if doc.Kind() != toon.KindObject {
		return nil
	}

	for key := range doc.Object().Entries() {
		if !covered[key] {
			return &ValidationError{Array: key, Reason: "array not covered by any schema"}
		}
	}

	return nil
}
