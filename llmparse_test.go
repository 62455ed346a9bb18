package llmparse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchema(t *testing.T, jsonText string) Value {
	t.Helper()
	v, err := ParseValue(jsonText)
	require.NoError(t, err)
	return v
}

func TestParseJSONRepairsLooseObjectFromProse(t *testing.T) {
	text := "Here's the result:\n```json\n{name: 'Ada', age: 36,}\n```\n"
	cfg := RepairConfig{
		QuoteUnquotedKeys:  true,
		AllowSingleQuotes:  true,
		DropTrailingCommas: true,
	}
	res, err := ParseJSON(text, cfg)
	require.NoError(t, err)
	assert.True(t, res.Metadata.ExtractedFromFence)
	v, ok := res.Value.Object().Get("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", v.String_())
}

func TestParseJSONWithSchemaRejectsInvalidResult(t *testing.T) {
	sc := mustSchema(t, `{"type": "object", "required": ["name"]}`)
	_, err := ParseJSONWithSchema(`{"other": 1}`, sc, RepairConfig{})
	assert.Error(t, err)
}

func TestParseJSONWithDefaultsFillsMissingField(t *testing.T) {
	sc := mustSchema(t, `{
		"type": "object",
		"properties": {"role": {"type": "string", "default": "user"}}
	}`)
	res, err := ParseJSONWithDefaults(`{}`, sc, RepairConfig{})
	require.NoError(t, err)
	v, ok := res.Value.Object().Get("role")
	require.True(t, ok)
	assert.Equal(t, "user", v.String_())
}

func TestValidateAndValidateAll(t *testing.T) {
	sc := mustSchema(t, `{
		"type": "object",
		"properties": {"a": {"type": "string"}, "b": {"type": "number"}},
		"required": ["a", "b"]
	}`)
	doc := mustSchema(t, `{"a": 1, "b": "nope"}`)
	assert.Error(t, Validate(doc, sc))
	assert.Len(t, ValidateAll(doc, sc), 2)
}

func TestLintSchemaCatchesMalformedSchema(t *testing.T) {
	sc := mustSchema(t, `{"type": "object", "required": "name"}`)
	assert.NotNil(t, LintSchema(sc))
}

func TestRepairSuggestionsEndToEnd(t *testing.T) {
	sc := mustSchema(t, `{"type": "object", "properties": {"age": {"type": "number", "minimum": 0, "maximum": 120}}}`)
	doc := mustSchema(t, `{"age": 999}`)
	result := RepairSuggestions(doc, sc, RepairSuggestionConfig{ClampNumbers: true})
	assert.True(t, result.Valid)
	age, _ := result.RepairedValue.Object().Get("age")
	assert.Equal(t, float64(120), age.Number())
}

func TestParseAndRepairCombinesParseAndRepair(t *testing.T) {
	sc := mustSchema(t, `{"type": "object", "properties": {"count": {"type": "number"}}}`)
	result, err := ParseAndRepair(`{"count": "5"}`, sc, RepairConfig{}, RepairSuggestionConfig{CoerceTypes: true})
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestJSONStreamParserEmitsFirstValidValue(t *testing.T) {
	p := NewJSONStreamParser(Bool(true), RepairConfig{}, StreamLimits{})
	p.Append([]byte(`{"a": 1}`))
	out := p.Poll()
	require.True(t, out.Done)
	assert.True(t, out.OK)
}

func TestJSONStreamBatchCollectorAccumulatesAcrossPolls(t *testing.T) {
	c := NewJSONStreamBatchCollector(Bool(true), RepairConfig{}, StreamLimits{})
	c.Append([]byte(`{"a":1}`))
	out := c.Poll()
	require.True(t, out.OK)
	assert.Len(t, *out.Value, 1)

	c.Append([]byte(`{"b":2}`))
	out2 := c.Poll()
	require.True(t, out2.OK)
	assert.Len(t, *out2.Value, 1)
}

func TestSQLStreamParserTopLevel(t *testing.T) {
	p := NewSQLStreamParser(SQLValidationSchema{AllowedStatements: []string{"select"}}, StreamLimits{})
	p.Append([]byte(`SELECT * FROM t;`))
	out := p.Poll()
	require.True(t, out.Done)
	assert.True(t, out.OK)
	assert.Equal(t, "select", out.Value.StatementType)
}

func TestTelemetryEmitterTraceJSONWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewTelemetryEmitter(&buf)
	_, err := emitter.TraceJSON(`{"a": 1}`, RepairConfig{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "parse.completed")
}

func TestEqualEmptyValueDefaultsToNull(t *testing.T) {
	assert.True(t, Equal(Value{}, Null))
}
