package schema_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.toonkit.dev/toonkit/schema"
	"go.toonkit.dev/toonkit/toon"
)

func TestFieldTypeGate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		field  schema.Field
		accept []toon.Value
		reject []toon.Value
	}{
		"string": {
			field:  schema.NewField("name", schema.TypeString),
			accept: []toon.Value{toon.String("Alice")},
			reject: []toon.Value{toon.Int(123), toon.Bool(true)},
		},
		"integer rejects float and numeric string": {
			field:  schema.NewField("id", schema.TypeInteger),
			accept: []toon.Value{toon.Int(42)},
			reject: []toon.Value{toon.Float(3.14), toon.String("42")},
		},
		"float rejects integer": {
			field:  schema.NewField("price", schema.TypeFloat),
			accept: []toon.Value{toon.Float(19.99)},
			reject: []toon.Value{toon.Int(19)},
		},
		"boolean rejects zero and one": {
			field:  schema.NewField("active", schema.TypeBoolean),
			accept: []toon.Value{toon.Bool(true), toon.Bool(false)},
			reject: []toon.Value{toon.Int(1), toon.Int(0), toon.String("true")},
		},
		"number accepts both numerics": {
			field:  schema.NewField("value", schema.TypeNumber),
			accept: []toon.Value{toon.Int(42), toon.Float(3.14)},
			reject: []toon.Value{toon.String("42"), toon.Bool(false)},
		},
		"any accepts non-null": {
			field:  schema.NewField("blob", schema.TypeAny),
			accept: []toon.Value{toon.Int(1), toon.String("x"), toon.Bool(true)},
			reject: nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, v := range tc.accept {
				assert.NoError(t, tc.field.Validate(v), "should accept %s", v.Kind())
			}

			for _, v := range tc.reject {
				err := tc.field.Validate(v)
				require.ErrorIs(t, err, schema.ErrValidation, "should reject %s", v.Kind())
			}
		})
	}
}

func TestFieldNullability(t *testing.T) {
	t.Parallel()

	nullable := schema.NewField("optional", schema.TypeString, schema.Nullable())
	assert.NoError(t, nullable.Validate(toon.Null()))
	assert.NoError(t, nullable.Validate(toon.String("value")))

	strict := schema.NewField("required", schema.TypeString)
	require.ErrorIs(t, strict.Validate(toon.Null()), schema.ErrValidation)
}

func TestFieldBounds(t *testing.T) {
	t.Parallel()

	score := schema.NewField("score", schema.TypeInteger,
		schema.WithMin(0), schema.WithMax(100))

	assert.NoError(t, score.Validate(toon.Int(50)))
	assert.NoError(t, score.Validate(toon.Int(0)))
	assert.NoError(t, score.Validate(toon.Int(100)))

	require.ErrorIs(t, score.Validate(toon.Int(-1)), schema.ErrValidation)
	require.ErrorIs(t, score.Validate(toon.Int(101)), schema.ErrValidation)
}

func TestFieldPattern(t *testing.T) {
	t.Parallel()

	email := schema.NewField("email", schema.TypeString,
		schema.WithPattern(regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)))

	assert.NoError(t, email.Validate(toon.String("alice@example.com")))
	require.ErrorIs(t, email.Validate(toon.String("invalid-email")), schema.ErrValidation)

	// The pattern must cover the whole string.
	require.ErrorIs(t, email.Validate(toon.String("x alice@example.com y")), schema.ErrValidation)
}

func TestFieldEnum(t *testing.T) {
	t.Parallel()

	status := schema.NewField("status", schema.TypeString,
		schema.WithEnum(toon.String("pending"), toon.String("completed"), toon.String("failed")))

	assert.NoError(t, status.Validate(toon.String("pending")))
	assert.NoError(t, status.Validate(toon.String("completed")))
	require.ErrorIs(t, status.Validate(toon.String("unknown")), schema.ErrValidation)
}

func TestFieldCustomCheck(t *testing.T) {
	t.Parallel()

	username := schema.NewField("username", schema.TypeString,
		schema.WithCheck(func(v toon.Value) bool { return len(v.Text()) >= 3 }))

	assert.NoError(t, username.Validate(toon.String("alice")))
	require.ErrorIs(t, username.Validate(toon.String("ab")), schema.ErrValidation)
}

func TestFieldNested(t *testing.T) {
	t.Parallel()

	address := schema.NewField("address", schema.TypeAny, schema.WithNested(
		schema.NewField("city", schema.TypeString),
		schema.NewField("zip", schema.TypeString, schema.Optional()),
	))

	ok := toon.ObjectOf(toon.ObjectFromPairs("city", toon.String("NYC")))
	assert.NoError(t, address.Validate(ok))

	missing := toon.ObjectOf(toon.ObjectFromPairs("zip", toon.String("10001")))
	require.ErrorIs(t, address.Validate(missing), schema.ErrValidation)

	require.ErrorIs(t, address.Validate(toon.String("NYC")), schema.ErrValidation)
}

func TestValidationErrorDetails(t *testing.T) {
	t.Parallel()

	id := schema.NewField("id", schema.TypeInteger)

	err := id.Validate(toon.String("invalid"))
	require.Error(t, err)

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
	assert.Equal(t, toon.String("invalid"), verr.Value)
	assert.Contains(t, verr.Reason, "integer")
}
