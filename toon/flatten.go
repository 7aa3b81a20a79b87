package toon

import (
	"fmt"
	"strings"
)

// Flatten projects a nested object onto a single-level object whose keys
// are separator-joined paths to every leaf. Arrays and empty objects are
// opaque leaves. When [WithMaxDepth] is set, subtrees at the depth cap are
// kept opaque rather than descended. Key order follows a depth-first walk
// in insertion order.
func Flatten(o *Object, opts ...Option) *Object {
	cfg := applyOptions(opts)
	flat := NewObject()

	flattenInto(flat, "", o, 0, cfg)

	return flat
}

func flattenInto(flat *Object, prefix string, o *Object, depth int, cfg Config) {
	for key, v := range o.Entries() {
		path := key
		if prefix != "" {
			path = prefix + cfg.Separator + key
		}

		child := v.Object()
		if v.Kind() == KindObject && child.Len() > 0 && (cfg.MaxDepth == 0 || depth+1 < cfg.MaxDepth) {
			flattenInto(flat, path, child, depth+1, cfg)

			continue
		}

		flat.Set(path, v)
	}
}

// Unflatten rebuilds the nested object a [Flatten] call produced. Two keys
// whose paths require an intermediate node to be simultaneously a leaf and
// an object yield [ErrFlattenConflict].
func Unflatten(flat *Object, opts ...Option) (*Object, error) {
	cfg := applyOptions(opts)
	root := NewObject()

	for key, v := range flat.Entries() {
		segments := strings.Split(key, cfg.Separator)

		node := root

		for _, seg := range segments[:len(segments)-1] {
			existing, ok := node.Get(seg)
			if !ok {
				child := NewObject()
				node.Set(seg, ObjectOf(child))
				node = child

				continue
			}

			if existing.Kind() != KindObject {
				return nil, fmt.Errorf("%w: %q crosses a non-object value", ErrFlattenConflict, key)
			}

			node = existing.Object()
		}

		leaf := segments[len(segments)-1]
		if node.Has(leaf) {
			return nil, fmt.Errorf("%w: %q is both a value and an object", ErrFlattenConflict, key)
		}

		node.Set(leaf, v)
	}

	return root, nil
}
