package schema

import (
	"github.com/google/jsonschema-go/jsonschema"

	"go.toonkit.dev/toonkit/toon"
)

// JSONSchema renders the schema as JSON Schema Draft 7: an object with one
// required array property whose items describe the record fields. Strict
// schemas set additionalProperties to false on items. Custom predicates
// and nested field lists have no JSON Schema counterpart and are omitted.
func (s *Schema) JSONSchema() *jsonschema.Schema {
	items := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(s.fields)),
	}

	for _, f := range s.fields {
		items.Properties[f.Name] = fieldSchema(f)

		if f.Required {
			items.Required = append(items.Required, f.Name)
		}
	}

	if s.strict {
		items.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
	}

	return &jsonschema.Schema{
		Schema: "http://json-schema.org/draft-07/schema#",
		Type:   "object",
		Properties: map[string]*jsonschema.Schema{
			s.name: {Type: "array", Items: items},
		},
		Required: []string{s.name},
	}
}

func fieldSchema(f Field) *jsonschema.Schema {
	out := &jsonschema.Schema{}

	if t := jsonType(f.Type); t != "" {
		if f.Nullable {
			out.Types = []string{t, "null"}
		} else {
			out.Type = t
		}
	}

	out.Minimum = f.Min
	out.Maximum = f.Max

	if f.Pattern != nil {
		out.Pattern = f.Pattern.String()
	}

	if len(f.Enum) > 0 {
		enum := make([]any, len(f.Enum))
		for i, v := range f.Enum {
			enum[i] = valueToAny(v)
		}

		out.Enum = enum
	}

	return out
}

// jsonType maps a field type to its JSON Schema name. TypeAny maps to ""
// (no type constraint).
func jsonType(t FieldType) string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat, TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	}

	return ""
}

func valueToAny(v toon.Value) any {
	switch v.Kind() {
	case toon.KindBool:
		return v.Bool()
	case toon.KindInt:
		return v.Int()
	case toon.KindFloat:
		return v.Float()
	case toon.KindString:
		return v.Text()
	}

	return nil
}
