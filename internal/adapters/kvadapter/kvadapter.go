// Package kvadapter is the external key=value collaborator described by
// the core's generic interface: flat "ident = scalar" lines, one property
// per line, turned into the shared Value tree.
package kvadapter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/driftcode/llmparse/internal/schema"
	"github.com/driftcode/llmparse/internal/value"
)

var lineRe = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.*?)\s*$`)

// ParseToValue decodes one "key = value" pair per non-blank line into a
// flat object. A line that doesn't match the grammar is a parse error at
// path "$" quoting the offending line.
func ParseToValue(text string) (value.Value, *schema.ValidationError) {
	obj := value.NewObject()
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			return value.Value{}, schema.New(schema.KindParse, "$", "line does not match 'key = value': %q", line)
		}
		obj.Set(m[1], scalarFromText(m[2]))
	}
	return value.ObjectOf(obj), nil
}

func scalarFromText(s string) value.Value {
	switch s {
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	case "null", "":
		return value.Null
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err == nil {
			return value.String(unquoted)
		}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Number(n)
	}
	return value.String(s)
}
