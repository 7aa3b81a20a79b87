package toon

import (
	"fmt"
	"strings"
)

// Parse decodes a TOON document. Empty or whitespace-only input parses to
// null; a single headerless line parses as a bare scalar; otherwise the
// input is a sequence of array blocks assembled into an object in
// first-seen order. With [WithAdvanced], dotted field names are rebuilt
// into nested record objects.
//
// Errors are [*ParseError] values wrapping the sentinel taxonomy in this
// package; match them with errors.Is.
func Parse(input string, opts ...Option) (Value, error) {
	cfg := applyOptions(opts)
	lines := splitLines(input)

	first, ok := firstContentLine(lines)
	if !ok {
		return Null(), nil
	}

	// A single content line that is not a header is a bare scalar.
	if _, err := ParseHeader(lines[first]); err != nil {
		if last, _ := lastContentLine(lines); last == first {
			v, decErr := DecodeScalar(strings.TrimSpace(lines[first]))
			if decErr != nil {
				return Value{}, parseErrAt(first+1, 0, decErr)
			}

			return v, nil
		}
	}

	doc := NewObject()

	i := first
	for i < len(lines) {
		line := lines[i]

		if isBlank(line) {
			i++

			continue
		}

		// An indented first content line has no block to belong to; it falls
		// through to ParseHeader and fails as an invalid header.
		if i != first && startsWithSpace(line) {
			indent := strings.Repeat(" ", cfg.IndentSize)
			if isRowLine(line, indent) {
				return Value{}, parseErrAt(i+1, 0, fmt.Errorf("%w: more rows than declared", ErrRowCountMismatch))
			}

			return Value{}, parseErrAt(i+1, 0, ErrIndent)
		}

		header, err := ParseHeader(line)
		if err != nil {
			return Value{}, parseErrAt(i+1, 0, err)
		}

		if doc.Has(header.Name) {
			return Value{}, parseErrAt(i+1, 0, fmt.Errorf("%w: %q", ErrDuplicateArrayName, header.Name))
		}

		records, next, err := parseBody(lines, i+1, header, cfg)
		if err != nil {
			return Value{}, err
		}

		doc.Set(header.Name, ArrayOf(records...))
		i = next
	}

	return ObjectOf(doc), nil
}

// parseBody consumes the indented rows following a block header and
// returns the decoded records plus the index of the first line after the
// body.
func parseBody(lines []string, start int, header Header, cfg Config) ([]Value, int, error) {
	indent := strings.Repeat(" ", cfg.IndentSize)
	records := make([]Value, 0, max(header.Count, 0))

	i := start

	for {
		if header.Count >= 0 && len(records) == header.Count {
			break
		}

		if i >= len(lines) || isBlank(lines[i]) || !startsWithSpace(lines[i]) {
			if header.Count >= 0 {
				loc := min(i+1, len(lines))

				return nil, 0, parseErrAt(loc, 0, fmt.Errorf("%w: %s declares %d rows, found %d",
					ErrRowCountMismatch, header.Name, header.Count, len(records)))
			}

			break
		}

		if !isRowLine(lines[i], indent) {
			return nil, 0, parseErrAt(i+1, 0, fmt.Errorf("%w: expected %d spaces", ErrIndent, cfg.IndentSize))
		}

		record, err := decodeRecord(lines[i][len(indent):], header, cfg)
		if err != nil {
			return nil, 0, parseErrAt(i+1, 0, err)
		}

		records = append(records, record)
		i++
	}

	return records, i, nil
}

// isRowLine reports whether line carries exactly the expected indent.
func isRowLine(line, indent string) bool {
	if !strings.HasPrefix(line, indent) {
		return false
	}

	rest := line[len(indent):]

	return rest == "" || (rest[0] != ' ' && rest[0] != '\t')
}

func startsWithSpace(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// splitLines splits on "\n", accepting "\r\n" by stripping the trailing
// carriage return.
func splitLines(input string) []string {
	lines := strings.Split(input, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func firstContentLine(lines []string) (int, bool) {
	for i, line := range lines {
		if !isBlank(line) {
			return i, true
		}
	}

	return 0, false
}

func lastContentLine(lines []string) (int, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		if !isBlank(lines[i]) {
			return i, true
		}
	}

	return 0, false
}
