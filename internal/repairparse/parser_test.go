package repairparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcode/llmparse/internal/value"
)

func TestParseCleanJSON(t *testing.T) {
	res, err := Parse(`{"a": 1, "b": [true, null]}`, Config{})
	require.NoError(t, err)
	obj := res.Value.Object()
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), v.Number())
}

func TestParseExtractsFromFence(t *testing.T) {
	text := "Sure, here it is:\n```json\n{\"x\": 1}\n```\n"
	res, err := Parse(text, Config{})
	require.NoError(t, err)
	assert.True(t, res.Metadata.ExtractedFromFence)
	v, _ := res.Value.Object().Get("x")
	assert.Equal(t, float64(1), v.Number())
}

func TestParseFixesSmartQuotes(t *testing.T) {
	text := "{“a”: 1}"
	res, err := Parse(text, Config{FixSmartQuotes: true, QuoteUnquotedKeys: true})
	require.NoError(t, err)
	assert.True(t, res.Metadata.FixedSmartQuotes)
	v, _ := res.Value.Object().Get("a")
	assert.Equal(t, float64(1), v.Number())
}

func TestParseStripsComments(t *testing.T) {
	text := "{\n  // a comment\n  \"a\": 1 /* inline */\n}"
	res, err := Parse(text, Config{StripJSONComments: true})
	require.NoError(t, err)
	assert.True(t, res.Metadata.StrippedComments)
}

func TestParseReplacesPythonLiterals(t *testing.T) {
	res, err := Parse(`{"a": True, "b": None}`, Config{ReplacePythonLiterals: true})
	require.NoError(t, err)
	assert.True(t, res.Metadata.ReplacedPythonLiterals)
	a, _ := res.Value.Object().Get("a")
	assert.Equal(t, value.Bool(true), a)
}

func TestParseQuotesUnquotedKeys(t *testing.T) {
	res, err := Parse(`{foo: 1}`, Config{QuoteUnquotedKeys: true})
	require.NoError(t, err)
	assert.True(t, res.Metadata.QuotedUnquotedKeys)
}

func TestParseDropsTrailingCommas(t *testing.T) {
	res, err := Parse(`{"a": [1, 2,],}`, Config{DropTrailingCommas: true})
	require.NoError(t, err)
	assert.True(t, res.Metadata.DroppedTrailingCommas)
}

func TestParseAllowsSingleQuotes(t *testing.T) {
	res, err := Parse(`{'a': 'b'}`, Config{AllowSingleQuotes: true, QuoteUnquotedKeys: false})
	require.NoError(t, err)
	assert.True(t, res.Metadata.AllowedSingleQuotes)
	v, _ := res.Value.Object().Get("a")
	assert.Equal(t, "b", v.String_())
}

func TestParseDuplicateKeyFirstWins(t *testing.T) {
	res, err := Parse(`{"a": 1, "a": 2}`, Config{DuplicateKeyPolicy: FirstWins})
	require.NoError(t, err)
	v, _ := res.Value.Object().Get("a")
	assert.Equal(t, float64(1), v.Number())
	assert.Equal(t, 1, res.Metadata.DuplicateKeyCount)
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	res, err := Parse(`{"a": 1, "a": 2}`, Config{DuplicateKeyPolicy: LastWins})
	require.NoError(t, err)
	v, _ := res.Value.Object().Get("a")
	assert.Equal(t, float64(2), v.Number())
}

func TestParseDuplicateKeyErrors(t *testing.T) {
	_, err := Parse(`{"a": 1, "a": 2}`, Config{DuplicateKeyPolicy: ErrorOnDuplicate})
	assert.Error(t, err)
}

func TestParseTrailingCommaErrorsWithoutRepair(t *testing.T) {
	_, err := Parse(`{"a": 1,}`, Config{})
	assert.Error(t, err)
}

func TestParseAllSkipsBadCandidatesWhenOthersSucceed(t *testing.T) {
	text := "```json\n{not valid}\n```\n```json\n{\"ok\": true}\n```"
	results, err := ParseAll(text, Config{})
	require.NoError(t, err)
	if assert.Len(t, results, 1) {
		v, _ := results[0].Value.Object().Get("ok")
		assert.Equal(t, value.Bool(true), v)
	}
}

func TestParseNoCandidateReturnsError(t *testing.T) {
	_, err := Parse("not json at all }", Config{})
	assert.Error(t, err)
}

func TestDuplicateKeyPolicyString(t *testing.T) {
	assert.Equal(t, "firstWins", FirstWins.String())
	assert.Equal(t, "lastWins", LastWins.String())
	assert.Equal(t, "error", ErrorOnDuplicate.String())
}
