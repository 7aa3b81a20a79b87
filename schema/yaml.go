package schema

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/goccy/go-yaml"

	"go.toonkit.dev/toonkit/toon"
)

// ErrSchemaFile indicates a schema document that could not be parsed.
var ErrSchemaFile = errors.New("invalid schema document")

type yamlField struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Required *bool    `yaml:"required"`
	Nullable bool     `yaml:"nullable"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
	Pattern  string   `yaml:"pattern"`
	Enum     []any    `yaml:"enum"`
}

type yamlSchema struct {
	Array  string      `yaml:"array"`
	Strict bool        `yaml:"strict"`
	Fields []yamlField `yaml:"fields"`
}

type yamlMultiSchema struct {
	Schemas          []yamlSchema `yaml:"schemas"`
	AllowExtraArrays bool         `yaml:"allowExtraArrays"`
}

// ParseYAML parses a schema document. A document declares either a single
// schema:
//
//	array: users
//	strict: true
//	fields:
//	  - name: id
//	    type: integer
//	    min: 1
//	  - name: nickname
//	    type: string
//	    required: false
//
// or several under a top-level schemas key, with an optional
// allowExtraArrays flag. Field types are the [FieldType] names; required
// defaults to true.
func ParseYAML(data []byte) (*MultiSchema, error) {
	var multi yamlMultiSchema

	if err := yaml.Unmarshal(data, &multi); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaFile, err)
	}

	raw := multi.Schemas

	if len(raw) == 0 {
		var single yamlSchema

		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaFile, err)
		}

		if single.Array == "" {
			return nil, fmt.Errorf("%w: missing array name", ErrSchemaFile)
		}

		raw = []yamlSchema{single}
	}

	schemas := make([]*Schema, 0, len(raw))

	for _, ys := range raw {
		s, err := buildSchema(ys)
		if err != nil {
			return nil, err
		}

		schemas = append(schemas, s)
	}

	return NewMulti(schemas, WithAllowExtraArrays(multi.AllowExtraArrays)), nil
}

func buildSchema(ys yamlSchema) (*Schema, error) {
	if ys.Array == "" {
		return nil, fmt.Errorf("%w: missing array name", ErrSchemaFile)
	}

	fields := make([]Field, 0, len(ys.Fields))

	for _, yf := range ys.Fields {
		f, err := buildField(ys.Array, yf)
		if err != nil {
			return nil, err
		}

		fields = append(fields, f)
	}

	return New(ys.Array, fields, WithStrict(ys.Strict)), nil
}

func buildField(array string, yf yamlField) (Field, error) {
	if yf.Name == "" {
		return Field{}, fmt.Errorf("%w: %s: field with no name", ErrSchemaFile, array)
	}

	typ, err := ParseFieldType(yf.Type)
	if err != nil {
		return Field{}, fmt.Errorf("%w: %s.%s: %w", ErrSchemaFile, array, yf.Name, err)
	}

	f := Field{
		Name:     yf.Name,
		Type:     typ,
		Required: yf.Required == nil || *yf.Required,
		Nullable: yf.Nullable,
		Min:      yf.Min,
		Max:      yf.Max,
	}

	if yf.Pattern != "" {
		re, err := regexp.Compile(yf.Pattern)
		if err != nil {
			return Field{}, fmt.Errorf("%w: %s.%s: pattern: %w", ErrSchemaFile, array, yf.Name, err)
		}

		f.Pattern = re
	}

	for _, e := range yf.Enum {
		v, err := enumValue(e)
		if err != nil {
			return Field{}, fmt.Errorf("%w: %s.%s: %w", ErrSchemaFile, array, yf.Name, err)
		}

		f.Enum = append(f.Enum, v)
	}

	return f, nil
}

// ParseFieldType parses a field type name. An empty string parses as
// [TypeAny].
func ParseFieldType(s string) (FieldType, error) {
	switch s {
	case "", "any":
		return TypeAny, nil
	case "string":
		return TypeString, nil
	case "integer", "int":
		return TypeInteger, nil
	case "float":
		return TypeFloat, nil
	case "number":
		return TypeNumber, nil
	case "boolean", "bool":
		return TypeBoolean, nil
	}

	return TypeAny, fmt.Errorf("unknown field type %q", s)
}

func enumValue(raw any) (toon.Value, error) {
	switch t := raw.(type) {
	case string:
		return toon.String(t), nil
	case bool:
		return toon.Bool(t), nil
	case int:
		return toon.Int(int64(t)), nil
	case int64:
		return toon.Int(t), nil
	case uint64:
		return toon.Int(int64(t)), nil
	case float64:
		return toon.Float(t), nil
	}

	return toon.Value{}, fmt.Errorf("unsupported enum value %v (%T)", raw, raw)
}
