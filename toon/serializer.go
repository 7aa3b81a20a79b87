package toon

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Stringify encodes a value as a TOON document. A scalar encodes to its
// single token; an object encodes one array block per entry, blocks
// separated by a single newline and emitted in insertion order. With
// [WithAdvanced], nested record objects are flattened onto dotted field
// names first.
//
// Every entry of a top-level object must be an array of uniform records:
// objects whose flattened key sequence equals, in order, the first
// record's. Violations return [ErrNonUniformArray]; values the grammar
// cannot express (non-finite floats, arrays inside records, top-level
// entries that are not arrays) return [ErrUnsupportedValue].
func Stringify(v Value, opts ...Option) (string, error) {
	cfg := applyOptions(opts)

	switch v.Kind() {
	case KindNull, KindBool, KindInt, KindString:
		return EncodeScalar(v), nil
	case KindFloat:
		if err := checkFinite(v); err != nil {
			return "", err
		}

		return EncodeScalar(v), nil
	case KindArray:
		return "", fmt.Errorf("%w: top-level array has no name", ErrUnsupportedValue)
	}

	var lines []string

	for name, entry := range v.Object().Entries() {
		if entry.Kind() != KindArray {
			return "", fmt.Errorf("%w: entry %q is not an array", ErrUnsupportedValue, name)
		}

		block, err := encodeBlock(name, entry.Array(), cfg)
		if err != nil {
			return "", err
		}

		lines = append(lines, block...)
	}

	return strings.Join(lines, "\n"), nil
}

// encodeBlock emits one array block as its header plus row lines.
func encodeBlock(name string, records []Value, cfg Config) ([]string, error) {
	header := Header{Name: name, Count: len(records)}

	if len(records) == 0 {
		return []string{header.String()}, nil
	}

	flat, err := projectRecords(name, records, cfg)
	if err != nil {
		return nil, err
	}

	header.Fields = flat[0].Keys()

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, header.String())

	indent := strings.Repeat(" ", cfg.IndentSize)

	for i, record := range flat {
		if !slices.Equal(record.Keys(), header.Fields) {
			return nil, fmt.Errorf("%w: %s[%d] fields %v, want %v",
				ErrNonUniformArray, name, i, record.Keys(), header.Fields)
		}

		values := make([]Value, 0, record.Len())

		for field, value := range record.Entries() {
			if err := checkCell(name, field, value); err != nil {
				return nil, err
			}

			values = append(values, value)
		}

		lines = append(lines, indent+EncodeRow(values))
	}

	return lines, nil
}

// projectRecords checks that every element is a record and applies the
// flatten pass when advanced mode is on.
func projectRecords(name string, records []Value, cfg Config) ([]*Object, error) {
	flat := make([]*Object, len(records))

	for i, rec := range records {
		if rec.Kind() != KindObject {
			return nil, fmt.Errorf("%w: %s[%d] is %s, not a record", ErrNonUniformArray, name, i, rec.Kind())
		}

		if cfg.Advanced {
			flat[i] = Flatten(rec.Object(),
				WithSeparator(cfg.Separator), WithMaxDepth(cfg.MaxDepth))
		} else {
			flat[i] = rec.Object()
		}
	}

	return flat, nil
}

// checkCell rejects values a row cell cannot carry.
func checkCell(array, field string, v Value) error {
	switch v.Kind() {
	case KindArray:
		return fmt.Errorf("%w: %s.%s holds an array", ErrUnsupportedValue, array, field)
	case KindObject:
		return fmt.Errorf("%w: %s.%s holds an object", ErrUnsupportedValue, array, field)
	case KindFloat:
		if err := checkFinite(v); err != nil {
			return fmt.Errorf("%s.%s: %w", array, field, err)
		}
	}

	return nil
}

func checkFinite(v Value) error {
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: non-finite float %v", ErrUnsupportedValue, f)
	}

	return nil
}
