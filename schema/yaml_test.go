package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.toonkit.dev/toonkit/schema"
	"go.toonkit.dev/toonkit/toon"
)

func TestParseYAMLSingleSchema(t *testing.T) {
	t.Parallel()

	doc := []byte(`
array: users
strict: true
fields:
  - name: id
    type: integer
    min: 1
  - name: name
    type: string
    pattern: "[A-Za-z ]+"
  - name: nickname
    type: string
    required: false
    nullable: true
  - name: status
    type: string
    enum: [active, inactive]
`)

	multi, err := schema.ParseYAML(doc)
	require.NoError(t, err)

	valid := toon.ObjectOf(toon.ObjectFromPairs(
		"users", toon.ArrayOf(record(
			"id", toon.Int(1),
			"name", toon.String("Alice"),
			"nickname", toon.Null(),
			"status", toon.String("active"),
		)),
	))
	assert.NoError(t, multi.Validate(valid))

	badID := toon.ObjectOf(toon.ObjectFromPairs(
		"users", toon.ArrayOf(record(
			"id", toon.Int(0),
			"name", toon.String("Alice"),
			"status", toon.String("active"),
		)),
	))
	require.ErrorIs(t, multi.Validate(badID), schema.ErrValidation)

	unknownField := toon.ObjectOf(toon.ObjectFromPairs(
		"users", toon.ArrayOf(record(
			"id", toon.Int(1),
			"name", toon.String("Alice"),
			"status", toon.String("active"),
			"extra", toon.Int(1),
		)),
	))
	require.ErrorIs(t, multi.Validate(unknownField), schema.ErrValidation)
}

func TestParseYAMLMultiSchema(t *testing.T) {
	t.Parallel()

	doc := []byte(`
schemas:
  - array: users
    fields:
      - name: id
        type: integer
  - array: products
    fields:
      - name: sku
        type: string
allowExtraArrays: true
`)

	multi, err := schema.ParseYAML(doc)
	require.NoError(t, err)

	data := toon.ObjectOf(toon.ObjectFromPairs(
		"users", toon.ArrayOf(record("id", toon.Int(1))),
		"products", toon.ArrayOf(record("sku", toon.String("A001"))),
		"extra", toon.ArrayOf(),
	))
	assert.NoError(t, multi.Validate(data))
}

func TestParseYAMLErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"missing array name": "fields:\n  - name: id\n    type: integer",
		"unknown type":       "array: users\nfields:\n  - name: id\n    type: whatever",
		"unnamed field":      "array: users\nfields:\n  - type: integer",
		"bad pattern":        "array: users\nfields:\n  - name: id\n    type: string\n    pattern: '['",
	}

	for name, doc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := schema.ParseYAML([]byte(doc))
			require.ErrorIs(t, err, schema.ErrSchemaFile)
		})
	}
}

func TestParseFieldType(t *testing.T) {
	t.Parallel()

	tcs := map[string]schema.FieldType{
		"":        schema.TypeAny,
		"any":     schema.TypeAny,
		"string":  schema.TypeString,
		"integer": schema.TypeInteger,
		"int":     schema.TypeInteger,
		"float":   schema.TypeFloat,
		"number":  schema.TypeNumber,
		"boolean": schema.TypeBoolean,
		"bool":    schema.TypeBoolean,
	}

	for input, want := range tcs {
		got, err := schema.ParseFieldType(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := schema.ParseFieldType("decimal")
	require.Error(t, err)
}
