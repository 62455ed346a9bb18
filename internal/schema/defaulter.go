package schema

import "github.com/driftcode/llmparse/internal/value"

// ApplyDefaults walks schema and v together, injecting a deep copy of each
// properties[k].default for a k absent from v. It never overwrites a key
// already present, and recurses bottom-up so nested defaults are visible to
// their parent before the parent itself is checked.
func ApplyDefaults(v, sc value.Value) value.Value {
	if sc.Kind() != value.KindObject {
		return v
	}

	if v.Kind() == value.KindArray {
		if itemSchema, ok := kw(sc, "items"); ok {
			items := v.Array()
			out := make([]value.Value, len(items))
			for i, item := range items {
				out[i] = ApplyDefaults(item, itemSchema)
			}
			return value.Array(out...)
		}
		return v
	}

	if v.Kind() != value.KindObject {
		return v
	}

	result := value.NewObject()
	for _, k := range v.Object().Keys() {
		ev, _ := v.Object().Get(k)
		result.Set(k, ev)
	}

	propsSchema, hasProps := kw(sc, "properties")
	if hasProps && propsSchema.Kind() == value.KindObject {
		for _, propName := range propsSchema.Object().Keys() {
			propSchema, _ := propsSchema.Object().Get(propName)

			if result.Has(propName) {
				existing, _ := result.Get(propName)
				result.Set(propName, ApplyDefaults(existing, propSchema))
				continue
			}

			if defVal, ok := kw(propSchema, "default"); ok {
				result.Set(propName, value.DeepCopy(defVal))
			}
		}
	}

	return value.ObjectOf(result)
}
