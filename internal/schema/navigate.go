package schema

import (
	"strconv"

	"github.com/driftcode/llmparse/internal/value"
)

// getAtPath resolves segs (as produced by splitPathSegments) against v,
// descending through objects by key and arrays by index.
func getAtPath(v value.Value, segs []string) (value.Value, bool) {
	if len(segs) == 0 {
		return v, true
	}
	seg := segs[0]
	switch v.Kind() {
	case value.KindObject:
		child, ok := v.Object().Get(seg)
		if !ok {
			return value.Value{}, false
		}
		return getAtPath(child, segs[1:])
	case value.KindArray:
		idx, err := strconv.Atoi(seg)
		arr := v.Array()
		if err != nil || idx < 0 || idx >= len(arr) {
			return value.Value{}, false
		}
		return getAtPath(arr[idx], segs[1:])
	default:
		return value.Value{}, false
	}
}

// setAtPath mutates the container at segs[:-1] in place to replace the
// final segment's slot with newVal. Objects and arrays are reference types
// in the value model (a pointer-backed map and a shared slice header,
// respectively), so mutating the resolved container is visible through the
// original root.
func setAtPath(root value.Value, segs []string, newVal value.Value) bool {
	if len(segs) == 0 {
		return false
	}
	if len(segs) == 1 {
		return setChild(root, segs[0], newVal)
	}
	parent, ok := getAtPath(root, segs[:len(segs)-1])
	if !ok {
		return false
	}
	return setChild(parent, segs[len(segs)-1], newVal)
}

func setChild(container value.Value, seg string, newVal value.Value) bool {
	switch container.Kind() {
	case value.KindObject:
		container.Object().Set(seg, newVal)
		return true
	case value.KindArray:
		idx, err := strconv.Atoi(seg)
		arr := container.Array()
		if err != nil || idx < 0 || idx >= len(arr) {
			return false
		}
		arr[idx] = newVal
		return true
	default:
		return false
	}
}

// deleteAtPath removes the key named by the final segment from its parent
// object. It is a no-op (returns false) when the parent is not an object,
// since arrays have no notion of "extra" elements to delete by key.
func deleteAtPath(root value.Value, segs []string) bool {
	if len(segs) == 0 {
		return false
	}
	parent, ok := getAtPath(root, segs[:len(segs)-1])
	if !ok || parent.Kind() != value.KindObject {
		return false
	}
	parent.Object().Delete(segs[len(segs)-1])
	return true
}

// getSubSchema walks the schema tree in parallel with a value path,
// following properties for object keys, items for array indices, and
// additionalProperties as a fallback for keys with no declared schema.
func getSubSchema(sc value.Value, segs []string) (value.Value, bool) {
	if len(segs) == 0 {
		return sc, true
	}
	seg := segs[0]

	if props, ok := kw(sc, "properties"); ok {
		if sub, ok2 := kw(props, seg); ok2 {
			return getSubSchema(sub, segs[1:])
		}
	}
	if _, err := strconv.Atoi(seg); err == nil {
		if items, ok := kw(sc, "items"); ok {
			return getSubSchema(items, segs[1:])
		}
	}
	if addl, ok := kw(sc, "additionalProperties"); ok && addl.Kind() == value.KindObject {
		return getSubSchema(addl, segs[1:])
	}
	return value.Value{}, false
}
