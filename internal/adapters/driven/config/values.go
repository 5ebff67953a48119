// Package config holds the value handling shared by the config store adapters.
package config

import (
	"maps"
	"math"
	"slices"
)

// AsString returns v if it is a string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsInt converts a decoded number to int. TOML integers decode as int64;
// floats are accepted only when they hold a whole number.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Flatten converts nested tables to dot-separated keys:
// {"data": {"dir": "x"}} becomes {"data.dir": "x"}.
func Flatten(tree map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", tree)
	return out
}

func flattenInto(out map[string]any, prefix string, tree map[string]any) {
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flattenInto(out, k, sub)
			continue
		}
		out[k] = v
	}
}

// SortedKeys returns the keys of values in lexical order.
func SortedKeys(values map[string]any) []string {
	return slices.Sorted(maps.Keys(values))
}
