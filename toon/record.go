package toon

import "fmt"

// DecodeRecord decodes one body row (already stripped of indent and
// terminator) into a record object keyed by the header's field list. With
// [WithAdvanced], dotted field names are rebuilt into nested objects.
func DecodeRecord(row string, header Header, opts ...Option) (Value, error) {
	cfg := applyOptions(opts)

	return decodeRecord(row, header, cfg)
}

func decodeRecord(row string, header Header, cfg Config) (Value, error) {
	values, err := DecodeRow(row)
	if err != nil {
		return Value{}, err
	}

	if len(values) != len(header.Fields) {
		return Value{}, fmt.Errorf("%w: %d values for %d fields",
			ErrFieldCountMismatch, len(values), len(header.Fields))
	}

	record := NewObject()
	for i, field := range header.Fields {
		record.Set(field, values[i])
	}

	if cfg.Advanced {
		nested, err := Unflatten(record, WithSeparator(cfg.Separator))
		if err != nil {
			return Value{}, err
		}

		record = nested
	}

	return ObjectOf(record), nil
}
