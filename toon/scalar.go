package toon

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Literal forms recognized on parse and reserved on emission. Floats
// require a decimal point or exponent so that integers and floats stay
// distinguishable across a round-trip.
var (
	intLiteralRe   = regexp.MustCompile(`^-?[0-9]+$`)
	floatLiteralRe = regexp.MustCompile(`^-?(?:(?:[0-9]+\.[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?|[0-9]+[eE][+-]?[0-9]+)$`)
)

// EncodeScalar emits a single scalar value as a row token. Strings are
// quoted only when required: when empty, when carrying structural or
// control characters or surrounding whitespace, or when lexically
// ambiguous with a non-string literal. Non-scalar values emit as "null";
// callers guard against them.
func EncodeScalar(v Value) string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool() {
			return "true"
		}

		return "false"
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindFloat:
		return formatFloat(v.Float())
	case KindString:
		s := v.Text()
		if needsQuoting(s) {
			return quoteString(s)
		}

		return s
	}

	return "null"
}

// DecodeScalar classifies a single row token. Tokens starting with a
// double quote decode as quoted strings; otherwise the literal forms null,
// true/false (case-insensitive), integer, and float are attempted in
// order, and anything else is a string carrying the token verbatim.
// Surrounding whitespace is trimmed before classification.
func DecodeScalar(token string) (Value, error) {
	token = strings.TrimSpace(token)

	if strings.HasPrefix(token, `"`) {
		s, rest, err := readQuoted(token)
		if err != nil {
			return Value{}, err
		}

		if strings.TrimSpace(rest) != "" {
			return Value{}, ErrUnterminatedString
		}

		return String(s), nil
	}

	return decodeBareword(token), nil
}

func decodeBareword(token string) Value {
	switch {
	case strings.EqualFold(token, "null"):
		return Null()
	case strings.EqualFold(token, "true"):
		return Bool(true)
	case strings.EqualFold(token, "false"):
		return Bool(false)
	}

	if intLiteralRe.MatchString(token) {
		if i, err := strconv.ParseInt(token, 10, 64); err == nil {
			return Int(i)
		}
		// Out of int64 range: fall through to float.
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return Float(f)
		}
	}

	if floatLiteralRe.MatchString(token) {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return Float(f)
		}
	}

	return String(token)
}

// needsQuoting reports whether s cannot be emitted as a bareword.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}

	if strings.TrimSpace(s) != s {
		return true
	}

	for _, r := range s {
		switch r {
		case ',', ':', '[', ']', '{', '}', '"':
			return true
		}

		if r < 0x20 || r == 0x7f {
			return true
		}
	}

	// Barewords matching a non-string literal must be quoted to survive
	// the round-trip as strings.
	if strings.EqualFold(s, "null") || strings.EqualFold(s, "true") || strings.EqualFold(s, "false") {
		return true
	}

	return intLiteralRe.MatchString(s) || floatLiteralRe.MatchString(s)
}

func quoteString(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// readQuoted consumes a leading quoted token from s, which must start with
// a double quote. It returns the decoded string and the remainder after
// the closing quote.
func readQuoted(s string) (string, string, error) {
	var sb strings.Builder

	i := 1 // opening quote

	for i < len(s) {
		c := s[i]

		switch c {
		case '"':
			return sb.String(), s[i+1:], nil
		case '\\':
			if i+1 >= len(s) {
				return "", "", ErrUnterminatedString
			}

			switch s[i+1] {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				// Unknown escape: keep the escaped character.
				sb.WriteByte(s[i+1])
			}

			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return "", "", ErrUnterminatedString
}

// formatFloat renders the shortest decimal form that reparses to the same
// float64, forcing a decimal point when neither a point nor an exponent is
// present. Non-finite floats have no literal form; the serializer rejects
// them before emission.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
