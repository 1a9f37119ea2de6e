// Package nested reads optional values out of decoded JSON trees.
//
// Vendor documents are deeply nested and almost every field is optional.
// Instead of checking every level by hand, callers describe a path of map
// keys (string) and slice indices (int) and receive either the value found
// at the end of that path or a default. Missing keys, JSON nulls, values of
// an unexpected shape and out-of-range indices all resolve to the default.
package nested

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value walks the path and returns the value found at its end.
// The boolean is false if any step could not be taken or if the final
// value is JSON null.
func Value(root any, path ...any) (any, bool) {
	cur := root
	for _, step := range path {
		if cur == nil {
			return nil, false
		}
		switch k := step.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			cur, ok = m[k]
			if !ok {
				return nil, false
			}
		case int:
			s, ok := cur.([]any)
			if !ok || k < 0 || k >= len(s) {
				return nil, false
			}
			cur = s[k]
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// Get returns the value at the end of the path converted to T, or def
// if the path does not resolve or the value is not a T.
func Get[T any](root any, def T, path ...any) T {
	v, ok := Value(root, path...)
	if !ok {
		return def
	}
	res, ok := v.(T)
	if !ok {
		return def
	}
	return res
}

// Has returns true if the path resolves to a non-null value.
func Has(root any, path ...any) bool {
	_, ok := Value(root, path...)
	return ok
}

// String returns a trimmed, non-empty string found at the path.
// Numbers are rendered in plain decimal notation, because vendor codes
// arrive as strings in some documents and as numbers in others.
func String(root any, path ...any) *string {
	v, ok := Value(root, path...)
	if !ok {
		return nil
	}
	var res string
	switch t := v.(type) {
	case string:
		res = strings.TrimSpace(t)
	case json.Number:
		res = t.String()
	case float64:
		res = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		res = strconv.Itoa(t)
	case bool:
		res = strconv.FormatBool(t)
	default:
		return nil
	}
	if res == "" {
		return nil
	}
	return &res
}

// Int returns an integer found at the path. Floats with a fractional
// part are truncated, numeric strings are parsed.
func Int(root any, path ...any) *int {
	f := Float(root, path...)
	if f == nil {
		return nil
	}
	if math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	res := int(*f)
	return &res
}

// Float returns a number found at the path.
func Float(root any, path ...any) *float64 {
	v, ok := Value(root, path...)
	if !ok {
		return nil
	}
	var res float64
	var err error
	switch t := v.(type) {
	case float64:
		res = t
	case int:
		res = float64(t)
	case json.Number:
		res, err = t.Float64()
	case string:
		res, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return &res
}

// Bool returns a boolean found at the path.
func Bool(root any, path ...any) *bool {
	v, ok := Value(root, path...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case bool:
		return &t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return nil
		}
		return &b
	}
	return nil
}

// Map returns the object found at the path, or nil.
func Map(root any, path ...any) map[string]any {
	return Get[map[string]any](root, nil, path...)
}

// Slice returns the array found at the path. A single non-array value is
// returned as a one-element slice, so fields that are sometimes a scalar
// and sometimes a list read the same way.
func Slice(root any, path ...any) []any {
	v, ok := Value(root, path...)
	if !ok {
		return nil
	}
	if s, ok := v.([]any); ok {
		return s
	}
	return []any{v}
}
