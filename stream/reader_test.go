package stream_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.toonkit.dev/toonkit/stream"
	"go.toonkit.dev/toonkit/stringtest"
	"go.toonkit.dev/toonkit/toon"
)

func collect(t *testing.T, input string, opts ...toon.Option) []stream.Block {
	t.Helper()

	var blocks []stream.Block

	for block, err := range stream.Blocks(strings.NewReader(input), opts...) {
		require.NoError(t, err)
		blocks = append(blocks, block)
	}

	return blocks
}

func TestBlocksSingleArray(t *testing.T) {
	t.Parallel()

	input := stringtest.JoinLF(
		"users[3]{id,name}:",
		"  1,Alice",
		"  2,Bob",
		"  3,Charlie",
	)

	blocks := collect(t, input)
	require.Len(t, blocks, 1)

	assert.Equal(t, "users", blocks[0].Name)
	require.Len(t, blocks[0].Records, 3)

	first := blocks[0].Records[0].Object()
	id, _ := first.Get("id")
	assert.Equal(t, toon.Int(1), id)
}

func TestBlocksMultipleArrays(t *testing.T) {
	t.Parallel()

	input := stringtest.JoinLF(
		"users[2]{id,name}:",
		"  1,Alice",
		"  2,Bob",
		"products[2]{sku,price}:",
		"  A001,19.99",
		"  B002,29.99",
	)

	blocks := collect(t, input)
	require.Len(t, blocks, 2)

	assert.Equal(t, "users", blocks[0].Name)
	assert.Len(t, blocks[0].Records, 2)
	assert.Equal(t, "products", blocks[1].Name)
	assert.Len(t, blocks[1].Records, 2)
}

func TestBlocksUnknownArity(t *testing.T) {
	t.Parallel()

	input := stringtest.JoinLF(
		"users[?]{id}:",
		"  1",
		"  2",
		"products[1]{sku}:",
		"  A001",
	)

	blocks := collect(t, input)
	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0].Records, 2)
	assert.Len(t, blocks[1].Records, 1)
}

func TestBlocksAdvanced(t *testing.T) {
	t.Parallel()

	input := stringtest.JoinLF(
		"users[2]{id,address.city,address.zip}:",
		`  1,NYC,"10001"`,
		`  2,LA,"90001"`,
	)

	blocks := collect(t, input, toon.WithAdvanced(true))
	require.Len(t, blocks, 1)

	addr, ok := blocks[0].Records[0].Object().Get("address")
	require.True(t, ok)
	require.Equal(t, toon.KindObject, addr.Kind())

	city, _ := addr.Object().Get("city")
	assert.Equal(t, "NYC", city.Text())
}

func TestBlocksLargeInput(t *testing.T) {
	t.Parallel()

	var sb strings.Builder

	sb.WriteString("users[1000]{id,name}:\n")

	for i := range 1000 {
		sb.WriteString("  ")
		sb.WriteString(toon.EncodeRow([]toon.Value{
			toon.Int(int64(i)),
			toon.String("User" + strings.Repeat("x", i%7)),
		}))
		sb.WriteByte('\n')
	}

	blocks := collect(t, sb.String())
	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].Records, 1000)
}

func TestBlocksEarlyStop(t *testing.T) {
	t.Parallel()

	input := stringtest.JoinLF(
		"a[1]{v}:",
		"  1",
		"b[1]{v}:",
		"  2",
	)

	count := 0

	for _, err := range stream.Blocks(strings.NewReader(input)) {
		require.NoError(t, err)

		count++

		break
	}

	assert.Equal(t, 1, count)
}

func TestBlocksErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		wantErr error
	}{
		"invalid header": {
			input:   "users{id}:\n  1",
			wantErr: toon.ErrInvalidHeader,
		},
		"row count mismatch": {
			input:   "users[2]{id}:\n  1",
			wantErr: toon.ErrRowCountMismatch,
		},
		"extra rows": {
			input:   "users[1]{id}:\n  1\n  2",
			wantErr: toon.ErrRowCountMismatch,
		},
		"field count mismatch": {
			input:   "users[1]{id,name}:\n  1",
			wantErr: toon.ErrFieldCountMismatch,
		},
		"bad indent": {
			input:   "users[1]{id}:\n   1",
			wantErr: toon.ErrIndent,
		},
		"duplicate array": {
			input:   "users[1]{id}:\n  1\nusers[1]{id}:\n  2",
			wantErr: toon.ErrDuplicateArrayName,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var last error

			for _, err := range stream.Blocks(strings.NewReader(tc.input)) {
				if err != nil {
					last = err

					break
				}
			}

			require.ErrorIs(t, last, tc.wantErr)
		})
	}
}

func TestBlocksMatchesParse(t *testing.T) {
	t.Parallel()

	input := stringtest.JoinLF(
		"users[2]{id,name}:",
		"  1,Alice",
		`  2,"Bob, Jr."`,
		"",
		"metrics[?]{name,value}:",
		"  latency,12.5",
		"  errors,0",
	)

	parsed, err := toon.Parse(input)
	require.NoError(t, err)

	rebuilt := toon.NewObject()
	for block, berr := range stream.Blocks(strings.NewReader(input)) {
		require.NoError(t, berr)
		rebuilt.Set(block.Name, toon.ArrayOf(block.Records...))
	}

	assert.True(t, parsed.Equal(toon.ObjectOf(rebuilt)))
}
