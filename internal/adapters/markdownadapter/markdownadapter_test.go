package markdownadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeHeadingsAndFences(t *testing.T) {
	text := "# Title\n\nSome text with a [link](http://example.com).\n\n```go\nfmt.Println(1)\n```\n\n## Subheading\n"
	s, err := Summarize(text)
	require.Nil(t, err)
	assert.Equal(t, 2, s.HeadingCount)
	assert.Equal(t, []string{"Title", "Subheading"}, s.Headings)
	assert.Equal(t, []string{"go"}, s.CodeBlockLangs)
	assert.Equal(t, 1, s.LinkCount)
	assert.False(t, s.HasTable)
}

func TestSummarizeDetectsGFMTable(t *testing.T) {
	text := "| a | b |\n| --- | --- |\n| 1 | 2 |\n"
	s, err := Summarize(text)
	require.Nil(t, err)
	assert.True(t, s.HasTable)
}

func TestExtractFirstFenceMatchesLanguageCaseInsensitive(t *testing.T) {
	text := "```JSON\n{\"a\": 1}\n```"
	content, ok := ExtractFirstFence(text, "json")
	require.True(t, ok)
	assert.Contains(t, content, `{"a": 1}`)
}

func TestExtractFirstFenceNoMatch(t *testing.T) {
	text := "```yaml\na: 1\n```"
	_, ok := ExtractFirstFence(text, "json")
	assert.False(t, ok)
}
