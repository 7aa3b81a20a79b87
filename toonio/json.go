package toonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.toonkit.dev/toonkit/toon"
)

// ErrJSON indicates malformed JSON input or a value JSON cannot carry.
var ErrJSON = errors.New("invalid json")

// DecodeJSON converts JSON bytes into a [toon.Value], preserving object
// key order. Numbers split into integers and floats by the presence of a
// fractional part or exponent.
func DecodeJSON(data []byte) (toon.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return toon.Value{}, fmt.Errorf("%w: %w", ErrJSON, err)
	}

	// Reject trailing content after the first value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return toon.Value{}, fmt.Errorf("%w: trailing content", ErrJSON)
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (toon.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return toon.Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}

		return toon.Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return toon.String(t), nil
	case json.Number:
		return numberValue(t)
	case bool:
		return toon.Bool(t), nil
	case nil:
		return toon.Null(), nil
	}

	return toon.Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeJSONObject(dec *json.Decoder) (toon.Value, error) {
	obj := toon.NewObject()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return toon.Value{}, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return toon.Value{}, fmt.Errorf("unexpected object key %v", keyTok)
		}

		v, err := decodeJSONValue(dec)
		if err != nil {
			return toon.Value{}, err
		}

		obj.Set(key, v)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return toon.Value{}, err
	}

	return toon.ObjectOf(obj), nil
}

func decodeJSONArray(dec *json.Decoder) (toon.Value, error) {
	var elems []toon.Value

	for dec.More() {
		v, err := decodeJSONValue(dec)
		if err != nil {
			return toon.Value{}, err
		}

		elems = append(elems, v)
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return toon.Value{}, err
	}

	return toon.ArrayOf(elems...), nil
}

func numberValue(n json.Number) (toon.Value, error) {
	s := n.String()

	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return toon.Int(i), nil
		}
	}

	f, err := n.Float64()
	if err != nil {
		return toon.Value{}, err
	}

	return toon.Float(f), nil
}

// EncodeJSON renders a [toon.Value] as JSON, emitting object keys in
// insertion order. A non-empty indent pretty-prints with that unit.
func EncodeJSON(v toon.Value, indent string) ([]byte, error) {
	var sb strings.Builder

	if err := writeJSON(&sb, v, indent, 0); err != nil {
		return nil, err
	}

	return []byte(sb.String()), nil
}

func writeJSON(sb *strings.Builder, v toon.Value, indent string, depth int) error {
	switch v.Kind() {
	case toon.KindNull:
		sb.WriteString("null")
	case toon.KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case toon.KindInt:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case toon.KindFloat:
		out, err := json.Marshal(v.Float())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJSON, err)
		}

		sb.Write(out)
	case toon.KindString:
		out, err := json.Marshal(v.Text())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJSON, err)
		}

		sb.Write(out)
	case toon.KindArray:
		return writeJSONArray(sb, v.Array(), indent, depth)
	case toon.KindObject:
		return writeJSONObject(sb, v.Object(), indent, depth)
	}

	return nil
}

func writeJSONArray(sb *strings.Builder, elems []toon.Value, indent string, depth int) error {
	if len(elems) == 0 {
		sb.WriteString("[]")

		return nil
	}

	sb.WriteByte('[')

	for i, elem := range elems {
		if i > 0 {
			sb.WriteByte(',')
		}

		writeNewlineIndent(sb, indent, depth+1)

		if err := writeJSON(sb, elem, indent, depth+1); err != nil {
			return err
		}
	}

	writeNewlineIndent(sb, indent, depth)
	sb.WriteByte(']')

	return nil
}

func writeJSONObject(sb *strings.Builder, obj *toon.Object, indent string, depth int) error {
	if obj.Len() == 0 {
		sb.WriteString("{}")

		return nil
	}

	sb.WriteByte('{')

	i := 0

	for key, val := range obj.Entries() {
		if i > 0 {
			sb.WriteByte(',')
		}

		i++

		writeNewlineIndent(sb, indent, depth+1)

		keyOut, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJSON, err)
		}

		sb.Write(keyOut)
		sb.WriteByte(':')

		if indent != "" {
			sb.WriteByte(' ')
		}

		if err := writeJSON(sb, val, indent, depth+1); err != nil {
			return err
		}
	}

	writeNewlineIndent(sb, indent, depth)
	sb.WriteByte('}')

	return nil
}

func writeNewlineIndent(sb *strings.Builder, indent string, depth int) {
	if indent == "" {
		return
	}

	sb.WriteByte('\n')

	for range depth {
		sb.WriteString(indent)
	}
}
