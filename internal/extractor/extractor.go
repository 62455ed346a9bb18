// Package extractor locates candidate payload substrings inside the prose
// and code fences that surround an LLM's structured output. It implements
// fenced code blocks first, then a balanced brace/bracket
// scan as a JSON-only fallback.
package extractor

import (
	"regexp"
	"strings"
)

// Candidate is one located payload span.
type Candidate struct {
	Text           string
	Start, End     int // byte offsets into the original input
	FromFence      bool
}

// fenceRegex matches a (possibly indented up to 4 spaces) triple-backtick
// fence, optionally tagged, capturing the tag and the body. It tolerates
// CRLF line endings by matching \r? before each \n.
var fenceRegex = regexp.MustCompile("(?s)(?:^|\n)[ \\t]{0,4}```([A-Za-z0-9_+-]*)[ \\t]*\r?\n(.*?)\r?\n[ \\t]{0,4}```")

// FencedBlocks returns every fenced code block in text whose tag matches one
// of the given tags, case-insensitively. An empty string among tags selects
// untagged fences; calling it with no tags at all matches every fence.
func FencedBlocks(text string, tags ...string) []Candidate {
	wanted := make(map[string]bool)
	for _, t := range tags {
		wanted[strings.ToLower(t)] = true
	}

	var out []Candidate
	for _, m := range fenceRegex.FindAllStringSubmatchIndex(text, -1) {
		tagStart, tagEnd := m[2], m[3]
		bodyStart, bodyEnd := m[4], m[5]
		tag := strings.ToLower(text[tagStart:tagEnd])

		if len(wanted) > 0 {
			if !wanted[tag] {
				continue
			}
		}
		out = append(out, Candidate{
			Text:      text[bodyStart:bodyEnd],
			Start:     bodyStart,
			End:       bodyEnd,
			FromFence: true,
		})
	}
	return out
}

// BalancedScan finds maximal, non-overlapping balanced {...} / [...] spans in
// source order, respecting string literals and escapes so that braces inside
// strings are never mistaken for structure.
func BalancedScan(text string) []Candidate {
	var out []Candidate
	n := len(text)
	i := 0
	for i < n {
		c := text[i]
		if c == '{' || c == '[' {
			end, ok := findMatchingClose(text, i)
			if ok {
				out = append(out, Candidate{Text: text[i : end+1], Start: i, End: end + 1})
				i = end + 1
				continue
			}
		}
		i++
	}
	return out
}

// findMatchingClose returns the index of the byte that closes the
// bracket/brace opened at start, honoring string literals and escapes.
func findMatchingClose(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// jsonFenceTags are recognized as JSON when no tag filter is supplied.
var jsonFenceTags = []string{"json", ""}

// ExtractJSON returns every JSON candidate in text: fenced blocks first, and
// only if none are found, the balanced-scan fallback.
func ExtractJSON(text string) []Candidate {
	if fenced := FencedBlocks(text, jsonFenceTags...); len(fenced) > 0 {
		return fenced
	}
	return BalancedScan(text)
}

// ExtractJSONCandidate returns the first JSON candidate, or the whole input
// trimmed of surrounding whitespace if none was found.
func ExtractJSONCandidate(text string) string {
	cands := ExtractJSON(text)
	if len(cands) == 0 {
		return strings.TrimSpace(text)
	}
	return cands[0].Text
}

// ExtractFenced returns fenced candidates for an arbitrary format tag (yaml,
// toml, xml, sql, or a caller-supplied tag). It returns no candidates when
// no such fence is present — non-JSON formats have no brace/bracket
// structural fallback; ExtractFencedCandidate falls back to the whole input.
func ExtractFenced(text, tag string) []Candidate {
	cands := FencedBlocks(text, tag)
	return cands
}

// ExtractFencedCandidate returns the first fenced candidate for tag, or the
// whole input if none was found.
func ExtractFencedCandidate(text, tag string) string {
	cands := ExtractFenced(text, tag)
	if len(cands) == 0 {
		return strings.TrimSpace(text)
	}
	return cands[0].Text
}
