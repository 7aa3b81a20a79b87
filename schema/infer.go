package schema

import (
	"fmt"

	"go.toonkit.dev/toonkit/toon"
)

// Infer constructs a schema from the observed records of the named array.
// The field set is the union of keys across all records in first-seen
// order. A field absent from any record is optional; a field observed as
// null is nullable. The observed type set maps to the declared type by
// widening: a single type infers itself, {int, float} infers number, and
// any other mixture infers any.
//
// The inferred schema always validates the data it was inferred from.
func Infer(doc toon.Value, arrayName string) (*Schema, error) {
	if doc.Kind() != toon.KindObject {
		return nil, &ValidationError{
			Array:  arrayName,
			Value:  doc,
			Reason: fmt.Sprintf("expected document object, got %s", doc.Kind()),
		}
	}

	arr, ok := doc.Object().Get(arrayName)
	if !ok {
		return nil, &ValidationError{Array: arrayName, Reason: "array not found in document"}
	}

	if arr.Kind() != toon.KindArray {
		return nil, &ValidationError{
			Array:  arrayName,
			Value:  arr,
			Reason: fmt.Sprintf("expected array, got %s", arr.Kind()),
		}
	}

	records := arr.Array()

	type observation struct {
		typ      FieldType
		count    int
		typed    bool
		nullable bool
	}

	var order []string

	seen := make(map[string]*observation)

	for i, rec := range records {
		if rec.Kind() != toon.KindObject {
			return nil, &ValidationError{
				Array:  arrayName,
				Value:  rec,
				Reason: fmt.Sprintf("record %d is %s, not an object", i, rec.Kind()),
			}
		}

		for key, v := range rec.Object().Entries() {
			obs, ok := seen[key]
			if !ok {
				obs = &observation{}
				seen[key] = obs
				order = append(order, key)
			}

			obs.count++

			if v.IsNull() {
				obs.nullable = true

				continue
			}

			t := typeOf(v)

			switch {
			case !obs.typed:
				obs.typ = t
				obs.typed = true
			case obs.typ != t:
				obs.typ = widen(obs.typ, t)
			}
		}
	}

	fields := make([]Field, 0, len(order))

	for _, key := range order {
		obs := seen[key]

		f := Field{
			Name:     key,
			Type:     obs.typ,
			Required: obs.count == len(records),
			Nullable: obs.nullable,
		}
		if !obs.typed {
			// Only nulls observed.
			f.Type = TypeAny
			f.Nullable = true
		}

		fields = append(fields, f)
	}

	return New(arrayName, fields), nil
}

// typeOf maps a non-null value to its narrowest field type.
func typeOf(v toon.Value) FieldType {
	switch v.Kind() {
	case toon.KindBool:
		return TypeBoolean
	case toon.KindInt:
		return TypeInteger
	case toon.KindFloat:
		return TypeFloat
	case toon.KindString:
		return TypeString
	}

	return TypeAny
}

// widen merges two observed types. Integer and float widen to number; any
// other disagreement widens to any.
func widen(a, b FieldType) FieldType {
	if a == b {
		return a
	}

	numeric := func(t FieldType) bool {
		return t == TypeInteger || t == TypeFloat || t == TypeNumber
	}

	if numeric(a) && numeric(b) {
		return TypeNumber
	}

	return TypeAny
}
