package schema

import (
	"strconv"
	"strings"
)

// isPlainKey matches the subset of identifiers that can appear as a bare
// ".key" path segment; anything else is rendered as ["key"].
func isPlainKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			continue
		case i > 0 && r >= '0' && r <= '9':
			continue
		default:
			return false
		}
	}
	return true
}

// AppendKey extends a path with an object key, quoting it with bracket
// notation when it isn't a plain identifier.
func AppendKey(path, key string) string {
	if isPlainKey(key) {
		return path + "." + key
	}
	return path + "[\"" + strings.ReplaceAll(key, "\"", "\\\"") + "\"]"
}

// AppendIndex extends a path with an array index.
func AppendIndex(path string, idx int) string {
	return path + "[" + strconv.Itoa(idx) + "]"
}

// PathToPointer derives an RFC 6901 JSON Pointer from a "$"-rooted path,
// per the invariant in the Value Model section: "$" becomes "", "." and
// "[...]" segments become "/"-separated, escaped tokens.
func PathToPointer(path string) string {
	segs := splitPathSegments(path)
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(escapePointerToken(s))
	}
	return b.String()
}

// splitPathSegments tokenizes a "$"-rooted path into its raw (unescaped)
// segment strings, in order.
func splitPathSegments(path string) []string {
	if !strings.HasPrefix(path, "$") {
		return nil
	}
	rest := path[1:]
	var segs []string
	i := 0
	for i < len(rest) {
		switch rest[i] {
		case '.':
			i++
			start := i
			for i < len(rest) && rest[i] != '.' && rest[i] != '[' {
				i++
			}
			segs = append(segs, rest[start:i])
		case '[':
			i++
			if i < len(rest) && rest[i] == '"' {
				i++
				start := i
				for i < len(rest) {
					if rest[i] == '\\' && i+1 < len(rest) {
						i += 2
						continue
					}
					if rest[i] == '"' {
						break
					}
					i++
				}
				raw := rest[start:i]
				segs = append(segs, strings.ReplaceAll(raw, "\\\"", "\""))
				// consume closing quote and bracket
				if i < len(rest) && rest[i] == '"' {
					i++
				}
				if i < len(rest) && rest[i] == ']' {
					i++
				}
			} else {
				start := i
				for i < len(rest) && rest[i] != ']' {
					i++
				}
				segs = append(segs, rest[start:i])
				if i < len(rest) {
					i++
				}
			}
		default:
			i++
		}
	}
	return segs
}

// escapePointerToken applies RFC 6901 escaping: '~' -> '~0', '/' -> '~1'.
func escapePointerToken(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
