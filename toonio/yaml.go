package toonio

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"go.toonkit.dev/toonkit/toon"
)

// ErrYAML indicates malformed YAML input or a value YAML cannot carry.
var ErrYAML = errors.New("invalid yaml")

// DecodeYAML converts YAML bytes into a [toon.Value], preserving mapping
// key order.
func DecodeYAML(data []byte) (toon.Value, error) {
	var raw any

	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return toon.Value{}, fmt.Errorf("%w: %w", ErrYAML, err)
	}

	v, err := yamlToValue(raw)
	if err != nil {
		return toon.Value{}, fmt.Errorf("%w: %w", ErrYAML, err)
	}

	return v, nil
}

func yamlToValue(raw any) (toon.Value, error) {
	switch t := raw.(type) {
	case nil:
		return toon.Null(), nil
	case bool:
		return toon.Bool(t), nil
	case int:
		return toon.Int(int64(t)), nil
	case int64:
		return toon.Int(t), nil
	case uint64:
		if t > 1<<63-1 {
			return toon.Float(float64(t)), nil
		}

		return toon.Int(int64(t)), nil
	case float64:
		return toon.Float(t), nil
	case string:
		return toon.String(t), nil
	case []any:
		elems := make([]toon.Value, len(t))

		for i, e := range t {
			v, err := yamlToValue(e)
			if err != nil {
				return toon.Value{}, err
			}

			elems[i] = v
		}

		return toon.ArrayOf(elems...), nil
	case yaml.MapSlice:
		obj := toon.NewObject()

		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return toon.Value{}, fmt.Errorf("mapping key %v is not a string", item.Key)
			}

			v, err := yamlToValue(item.Value)
			if err != nil {
				return toon.Value{}, err
			}

			obj.Set(key, v)
		}

		return toon.ObjectOf(obj), nil
	}

	return toon.Value{}, fmt.Errorf("unsupported value type %T", raw)
}

// EncodeYAML renders a [toon.Value] as YAML, emitting mapping keys in
// insertion order.
func EncodeYAML(v toon.Value) ([]byte, error) {
	raw, err := valueToYAML(v)
	if err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}

	return out, nil
}

func valueToYAML(v toon.Value) (any, error) {
	switch v.Kind() {
	case toon.KindNull:
		return nil, nil
	case toon.KindBool:
		return v.Bool(), nil
	case toon.KindInt:
		return v.Int(), nil
	case toon.KindFloat:
		return v.Float(), nil
	case toon.KindString:
		return v.Text(), nil
	case toon.KindArray:
		elems := make([]any, len(v.Array()))

		for i, e := range v.Array() {
			raw, err := valueToYAML(e)
			if err != nil {
				return nil, err
			}

			elems[i] = raw
		}

		return elems, nil
	case toon.KindObject:
		ms := make(yaml.MapSlice, 0, v.Object().Len())

		for key, val := range v.Object().Entries() {
			raw, err := valueToYAML(val)
			if err != nil {
				return nil, err
			}

			ms = append(ms, yaml.MapItem{Key: key, Value: raw})
		}

		return ms, nil
	}

	return nil, fmt.Errorf("%w: unsupported kind %s", ErrYAML, v.Kind())
}
