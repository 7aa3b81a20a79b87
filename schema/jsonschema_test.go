package schema_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.toonkit.dev/toonkit/schema"
	"go.toonkit.dev/toonkit/toon"
)

func TestJSONSchemaShape(t *testing.T) {
	t.Parallel()

	s := schema.New("users", []schema.Field{
		schema.NewField("id", schema.TypeInteger, schema.WithMin(1)),
		schema.NewField("name", schema.TypeString,
			schema.WithPattern(regexp.MustCompile(`\w+`))),
		schema.NewField("score", schema.TypeNumber, schema.Optional(), schema.Nullable()),
		schema.NewField("status", schema.TypeString,
			schema.WithEnum(toon.String("active"), toon.String("inactive"))),
	})

	js := s.JSONSchema()

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", js.Schema)
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, []string{"users"}, js.Required)

	users, ok := js.Properties["users"]
	require.True(t, ok)
	assert.Equal(t, "array", users.Type)

	items := users.Items
	require.NotNil(t, items)
	assert.Equal(t, "object", items.Type)
	assert.Equal(t, []string{"id", "name", "status"}, items.Required)

	id := items.Properties["id"]
	require.NotNil(t, id)
	assert.Equal(t, "integer", id.Type)
	require.NotNil(t, id.Minimum)
	assert.InDelta(t, 1.0, *id.Minimum, 0)

	name := items.Properties["name"]
	require.NotNil(t, name)
	assert.Equal(t, `\w+`, name.Pattern)

	score := items.Properties["score"]
	require.NotNil(t, score)
	assert.Equal(t, []string{"number", "null"}, score.Types)

	status := items.Properties["status"]
	require.NotNil(t, status)
	assert.Equal(t, []any{"active", "inactive"}, status.Enum)
}

func TestJSONSchemaStrict(t *testing.T) {
	t.Parallel()

	s := schema.New("users",
		[]schema.Field{schema.NewField("id", schema.TypeInteger)},
		schema.WithStrict(true))

	items := s.JSONSchema().Properties["users"].Items
	require.NotNil(t, items)
	require.NotNil(t, items.AdditionalProperties)
	assert.NotNil(t, items.AdditionalProperties.Not)
}

func TestJSONSchemaFromInferred(t *testing.T) {
	t.Parallel()

	doc := toon.ObjectOf(toon.ObjectFromPairs(
		"rows", toon.ArrayOf(
			record("n", toon.Int(1), "s", toon.String("x")),
			record("n", toon.Float(2.5), "s", toon.String("y")),
		),
	))

	s, err := schema.Infer(doc, "rows")
	require.NoError(t, err)

	items := s.JSONSchema().Properties["rows"].Items
	require.NotNil(t, items)
	assert.Equal(t, "number", items.Properties["n"].Type)
	assert.Equal(t, "string", items.Properties["s"].Type)
}
