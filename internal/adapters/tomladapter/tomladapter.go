// Package tomladapter is the external TOML collaborator described by the
// core's generic parser contract: it turns TOML text into the shared
// Value tree.
package tomladapter

import (
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/driftcode/llmparse/internal/schema"
	"github.com/driftcode/llmparse/internal/value"
)

// ParseToValue decodes text into a Value. go-toml/v2 decodes tables into
// map[string]interface{}, which does not preserve key order; TOML itself
// has no canonical key ordering to preserve, so this loss is inherent to
// the format rather than a decoding shortcut.
func ParseToValue(text string) (value.Value, *schema.ValidationError) {
	var doc map[string]interface{}
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return value.Value{}, schema.New(schema.KindParse, "$", "invalid TOML: %v", err)
	}
	return anyToValue(doc, "$"), nil
}

func anyToValue(v interface{}, path string) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null
	case bool:
		return value.Bool(t)
	case string:
		return value.String(t)
	case int64:
		return value.Number(float64(t))
	case float64:
		return value.Number(t)
	case time.Time:
		return value.String(t.Format(time.RFC3339))
	case []interface{}:
		items := make([]value.Value, len(t))
		for i, e := range t {
			items[i] = anyToValue(e, path+"["+strconv.Itoa(i)+"]")
		}
		return value.Array(items...)
	case map[string]interface{}:
		obj := value.NewObject()
		for k, e := range t {
			obj.Set(k, anyToValue(e, path+"."+k))
		}
		return value.ObjectOf(obj)
	default:
		return value.Null
	}
}
