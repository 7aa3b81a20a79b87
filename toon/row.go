package toon

import "strings"

// EncodeRow emits one body row (without indent or terminator) from a
// sequence of scalar values.
func EncodeRow(values []Value) string {
	tokens := make([]string, len(values))

	for i, v := range values {
		tokens[i] = EncodeScalar(v)
	}

	return strings.Join(tokens, ",")
}

// DecodeRow tokenizes and classifies one body row (already stripped of its
// indent and terminator).
func DecodeRow(row string) ([]Value, error) {
	tokens, err := SplitRow(row)
	if err != nil {
		return nil, err
	}

	values := make([]Value, len(tokens))

	for i, tok := range tokens {
		values[i], err = DecodeScalar(tok)
		if err != nil {
			return nil, err
		}
	}

	return values, nil
}

// SplitRow splits a row into raw scalar tokens on unquoted commas. Quoted
// tokens keep their surrounding quotes; barewords keep their raw bytes,
// trimmed of surrounding whitespace.
// A quoted token must be followed only by whitespace before the next comma
// or the end of the row.
func SplitRow(row string) ([]string, error) {
	var tokens []string

	i := 0

	for {
		// Skip leading whitespace before the token.
		for i < len(row) && (row[i] == ' ' || row[i] == '\t') {
			i++
		}

		if i < len(row) && row[i] == '"' {
			start := i
			end, err := skipQuoted(row, i)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, row[start:end])
			i = end

			// Only whitespace may follow the closing quote.
			for i < len(row) && (row[i] == ' ' || row[i] == '\t') {
				i++
			}

			if i < len(row) && row[i] != ',' {
				return nil, ErrUnterminatedString
			}
		} else {
			start := i
			for i < len(row) && row[i] != ',' {
				i++
			}

			tokens = append(tokens, strings.TrimSpace(row[start:i]))
		}

		if i >= len(row) {
			return tokens, nil
		}

		i++ // consume the comma

		if i >= len(row) {
			// Trailing comma: the final token is empty.
			tokens = append(tokens, "")

			return tokens, nil
		}
	}
}

// skipQuoted returns the index just past the closing quote of the quoted
// token starting at row[start].
func skipQuoted(row string, start int) (int, error) {
	i := start + 1

	for i < len(row) {
		switch row[i] {
		case '"':
			return i + 1, nil
		case '\\':
			i += 2
		default:
			i++
		}
	}

	return 0, ErrUnterminatedString
}
