package schema

import "github.com/driftcode/llmparse/internal/value"

// kw reads a keyword from a schema Value, which must be Object-shaped.
// Unknown or absent keywords simply return ok=false, matching "unknown
// keywords are ignored."
func kw(schema value.Value, key string) (value.Value, bool) {
	if schema.Kind() != value.KindObject {
		return value.Value{}, false
	}
	return schema.Object().Get(key)
}

func kwString(schema value.Value, key string) (string, bool) {
	v, ok := kw(schema, key)
	if !ok || v.Kind() != value.KindString {
		return "", false
	}
	return v.String_(), true
}

func kwNumber(schema value.Value, key string) (float64, bool) {
	v, ok := kw(schema, key)
	if !ok || v.Kind() != value.KindNumber {
		return 0, false
	}
	return v.Number(), true
}

func kwBool(schema value.Value, key string) (bool, bool) {
	v, ok := kw(schema, key)
	if !ok || v.Kind() != value.KindBool {
		return false, false
	}
	return v.Bool(), true
}

func kwArray(schema value.Value, key string) ([]value.Value, bool) {
	v, ok := kw(schema, key)
	if !ok || v.Kind() != value.KindArray {
		return nil, false
	}
	return v.Array(), true
}

func kwStringSlice(schema value.Value, key string) ([]string, bool) {
	arr, ok := kwArray(schema, key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if e.Kind() == value.KindString {
			out = append(out, e.String_())
		}
	}
	return out, true
}

// schemaTypes normalizes "type" into a set of accepted type names; type may
// be a single string or an array of strings.
func schemaTypes(schema value.Value) ([]string, bool) {
	v, ok := kw(schema, "type")
	if !ok {
		return nil, false
	}
	switch v.Kind() {
	case value.KindString:
		return []string{v.String_()}, true
	case value.KindArray:
		var out []string
		for _, e := range v.Array() {
			if e.Kind() == value.KindString {
				out = append(out, e.String_())
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// matchesType reports whether v satisfies the named JSON-Schema type,
// including the "integer" special case (a number with no fractional part).
func matchesType(v value.Value, typeName string) bool {
	switch typeName {
	case "null":
		return v.Kind() == value.KindNull
	case "boolean":
		return v.Kind() == value.KindBool
	case "object":
		return v.Kind() == value.KindObject
	case "array":
		return v.Kind() == value.KindArray
	case "string":
		return v.Kind() == value.KindString
	case "number":
		return v.Kind() == value.KindNumber
	case "integer":
		return v.IsInteger()
	default:
		return false
	}
}
