// Package yamladapter is the external YAML collaborator described by the
// core's generic parser contract: it turns YAML text into the shared
// Value tree so the validator, defaulter, and repair synthesizer can work
// over it exactly as they do over JSON.
package yamladapter

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/driftcode/llmparse/internal/schema"
	"github.com/driftcode/llmparse/internal/value"
)

// ParseToValue decodes the first YAML document in text into a Value. It
// walks the yaml.Node tree directly rather than Unmarshal-ing into
// interface{}, since the latter loses mapping key order and this
// collaborator preserves it, as value.FromJSON does for JSON.
func ParseToValue(text string) (value.Value, *schema.ValidationError) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return value.Value{}, schema.New(schema.KindParse, "$", "invalid YAML: %v", err)
	}
	if len(doc.Content) == 0 {
		return value.Null, nil
	}
	return nodeToValue(doc.Content[0], "$")
}

func nodeToValue(n *yaml.Node, path string) (value.Value, *schema.ValidationError) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null, nil
		}
		return nodeToValue(n.Content[0], path)
	case yaml.ScalarNode:
		return scalarToValue(n), nil
	case yaml.SequenceNode:
		items := make([]value.Value, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeToValue(c, pathIndex(path, i))
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.Array(items...), nil
	case yaml.MappingNode:
		obj := value.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			key := keyNode.Value
			v, err := nodeToValue(valNode, pathKey(path, key))
			if err != nil {
				return value.Value{}, err
			}
			obj.Set(key, v)
		}
		return value.ObjectOf(obj), nil
	case yaml.AliasNode:
		return nodeToValue(n.Alias, path)
	default:
		return value.Value{}, schema.New(schema.KindParse, path, "unsupported YAML node kind")
	}
}

func scalarToValue(n *yaml.Node) value.Value {
	var v interface{}
	if err := n.Decode(&v); err != nil {
		return value.String(n.Value)
	}
	switch t := v.(type) {
	case nil:
		return value.Null
	case bool:
		return value.Bool(t)
	case int:
		return value.Number(float64(t))
	case int64:
		return value.Number(float64(t))
	case float64:
		return value.Number(t)
	case string:
		return value.String(t)
	default:
		return value.String(n.Value)
	}
}

func pathKey(base, key string) string {
	for i, c := range key {
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		if i > 0 && c >= '0' && c <= '9' {
			continue
		}
		return base + "[\"" + key + "\"]"
	}
	if key == "" {
		return base + "[\"\"]"
	}
	return base + "." + key
}

func pathIndex(base string, idx int) string {
	return base + "[" + strconv.Itoa(idx) + "]"
}
