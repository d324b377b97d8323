package lingo

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Catalog is a flat translation mapping for a single locale. Keys use dot
// notation for nesting ("buttons.save"); an empty value marks a key that is
// known but not yet translated.
type Catalog map[string]string

// flatten collapses a nested document into dot-joined keys.
func flatten(data map[string]any, prefix string) Catalog {
	result := make(Catalog)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// nested expands dot-joined keys back into a nested document for
// persistence, so files on disk stay hierarchical and human-editable.
// Keys are processed in sorted order; if a key is both a leaf and a
// prefix of deeper keys, the deeper keys win.
func (c Catalog) nested() map[string]any {
	root := make(map[string]any)

	for _, key := range slices.Sorted(maps.Keys(c)) {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = c[key]
	}

	return root
}
