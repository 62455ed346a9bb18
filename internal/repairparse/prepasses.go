package repairparse

import (
	"regexp"
	"strings"
)

// Pre-passes never fail: if a pass cannot apply cleanly it returns the input
// unchanged and applied=false, leaving the corresponding metadata flag
// false rather than panicking or erroring; repair pre-passes never throw.

var smartQuoteReplacer = strings.NewReplacer(
	"“", "\"", "”", "\"",
	"‘", "'", "’", "'",
)

func fixSmartQuotes(s string) (string, bool) {
	out := smartQuoteReplacer.Replace(s)
	return out, out != s
}

// stripJSONComments removes // line comments and /* */ block comments,
// leaving string literals untouched.
func stripJSONComments(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	changed := false
	inString := false
	escaped := false
	i := 0
	for i < len(s) {
		c := s[i]
		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			i++
			continue
		}
		if c == '"' {
			inString = true
			b.WriteByte(c)
			i++
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			changed = true
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				// Unterminated block comment: skip pre-pass cleanly.
				return s, false
			}
			changed = true
			i = i + 2 + end + 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), changed
}

var pythonLiteralRegex = regexp.MustCompile(`\b(True|False|None)\b`)

// replacePythonLiterals swaps Python's True/False/None for JSON's
// true/false/null outside of string literals.
func replacePythonLiterals(s string) (string, bool) {
	changed := false
	result := mapOutsideStrings(s, func(segment string) string {
		replaced := pythonLiteralRegex.ReplaceAllStringFunc(segment, func(m string) string {
			changed = true
			switch m {
			case "True":
				return "true"
			case "False":
				return "false"
			default:
				return "null"
			}
		})
		return replaced
	})
	return result, changed
}

var kvLineRegex = regexp.MustCompile(`(?m)^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.+?)\s*,?\s*$`)

// convertKVObjectToJSON converts a top-level "ident = scalar, ..." block into
// a JSON object. It only applies when every non-blank line matches the
// pattern; otherwise the input is returned unchanged.
func convertKVObjectToJSON(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s, false
	}
	lines := strings.Split(trimmed, "\n")
	var pairs []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := kvLineRegex.FindStringSubmatch(line)
		if m == nil {
			return s, false
		}
		key, val := m[1], strings.TrimSpace(m[2])
		pairs = append(pairs, "\""+key+"\": "+jsonifyScalar(val))
	}
	if len(pairs) == 0 {
		return s, false
	}
	return "{" + strings.Join(pairs, ", ") + "}", true
}

func jsonifyScalar(val string) string {
	if strings.HasPrefix(val, "\"") && strings.HasSuffix(val, "\"") {
		return val
	}
	if strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'") {
		return "\"" + strings.ReplaceAll(val[1:len(val)-1], "\"", "\\\"") + "\""
	}
	switch val {
	case "true", "false", "null":
		return val
	}
	if numberLikeRegex.MatchString(val) {
		return val
	}
	return "\"" + strings.ReplaceAll(val, "\"", "\\\"") + "\""
}

var numberLikeRegex = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)

var unquotedKeyRegex = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*:)`)

// quoteUnquotedKeys wraps bare identifier keys in double quotes.
func quoteUnquotedKeys(s string) (string, bool) {
	changed := false
	result := mapOutsideStrings(s, func(segment string) string {
		return unquotedKeyRegex.ReplaceAllStringFunc(segment, func(m string) string {
			sub := unquotedKeyRegex.FindStringSubmatch(m)
			changed = true
			return sub[1] + "\"" + sub[2] + "\"" + sub[3]
		})
	})
	return result, changed
}

var trailingCommaRegex = regexp.MustCompile(`,(\s*[}\]])`)

// dropTrailingCommas removes a comma immediately before a closing brace or
// bracket.
func dropTrailingCommas(s string) (string, bool) {
	changed := false
	result := mapOutsideStrings(s, func(segment string) string {
		out := trailingCommaRegex.ReplaceAllString(segment, "$1")
		if out != segment {
			changed = true
		}
		return out
	})
	return result, changed
}

// allowSingleQuotes converts '...' string literals to "..." with escapes
// translated, leaving already-double-quoted strings untouched.
func allowSingleQuotes(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	changed := false
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '"' {
			// Skip a well-formed double-quoted string verbatim.
			j := i + 1
			for j < len(s) {
				if s[j] == '\\' && j+1 < len(s) {
					j += 2
					continue
				}
				if s[j] == '"' {
					j++
					break
				}
				j++
			}
			b.WriteString(s[i:j])
			i = j
			continue
		}
		if c == '\'' {
			j := i + 1
			var inner strings.Builder
			closed := false
			for j < len(s) {
				if s[j] == '\\' && j+1 < len(s) {
					inner.WriteByte(s[j])
					inner.WriteByte(s[j+1])
					j += 2
					continue
				}
				if s[j] == '\'' {
					closed = true
					j++
					break
				}
				inner.WriteByte(s[j])
				j++
			}
			if !closed {
				b.WriteString(s[i:])
				i = len(s)
				continue
			}
			changed = true
			escaped := strings.ReplaceAll(inner.String(), "\"", "\\\"")
			b.WriteByte('"')
			b.WriteString(escaped)
			b.WriteByte('"')
			i = j
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), changed
}

// mapOutsideStrings applies fn to the text outside of double-quoted string
// literals, leaving the contents of strings (and the quotes themselves)
// untouched. It is the shared primitive that keeps every regex-based
// pre-pass from corrupting string payloads.
func mapOutsideStrings(s string, fn func(string) string) string {
	var b strings.Builder
	i := 0
	segStart := 0
	for i < len(s) {
		if s[i] == '"' {
			b.WriteString(fn(s[segStart:i]))
			j := i + 1
			for j < len(s) {
				if s[j] == '\\' && j+1 < len(s) {
					j += 2
					continue
				}
				if s[j] == '"' {
					j++
					break
				}
				j++
			}
			b.WriteString(s[i:j])
			i = j
			segStart = j
			continue
		}
		i++
	}
	b.WriteString(fn(s[segStart:]))
	return b.String()
}
