package toon

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ArityUnknown is the [Header.Count] value for headers declaring the "?"
// placeholder, emitted by the streaming writer when the row count is not
// known up front. Readers accept it and count rows instead.
const ArityUnknown = -1

// headerRe matches name[N]{fields}: with no leading whitespace.
var headerRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\[([0-9]+|\?)\]\{(.*)\}:$`)

// Header is the parsed form of an array block's opening line.
type Header struct {
	// Name is the array name, a non-empty identifier.
	Name string

	// Count is the declared arity, or [ArityUnknown] for "?".
	Count int

	// Fields is the declared field list in order. Empty for {}.
	Fields []string
}

// String renders the header line, without a trailing newline.
func (h Header) String() string {
	arity := "?"
	if h.Count >= 0 {
		arity = strconv.Itoa(h.Count)
	}

	return fmt.Sprintf("%s[%s]{%s}:", h.Name, arity, strings.Join(h.Fields, ","))
}

// ParseHeader parses an array block header line. Field names are taken
// verbatim; they may contain the flatten separator but not commas, braces,
// or control characters.
func ParseHeader(line string) (Header, error) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return Header{}, fmt.Errorf("%w: %q", ErrInvalidHeader, line)
	}

	h := Header{Name: m[1], Count: ArityUnknown}

	if m[2] != "?" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Header{}, fmt.Errorf("%w: arity %q: %w", ErrInvalidHeader, m[2], err)
		}

		h.Count = n
	}

	if m[3] != "" {
		h.Fields = strings.Split(m[3], ",")

		for _, f := range h.Fields {
			if err := checkFieldName(f); err != nil {
				return Header{}, err
			}
		}
	}

	return h, nil
}

func checkFieldName(f string) error {
	if f == "" {
		return fmt.Errorf("%w: empty field name", ErrInvalidHeader)
	}

	for _, r := range f {
		if r == '{' || r == '}' || r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: field name %q", ErrInvalidHeader, f)
		}
	}

	return nil
}
