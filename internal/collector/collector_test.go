package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/stream"
	"github.com/driftcode/llmparse/internal/value"
)

func mustSchema(t *testing.T, jsonText string) value.Value {
	t.Helper()
	v, err := value.FromJSON(jsonText)
	require.NoError(t, err)
	return v
}

var anySchema = value.Bool(true)

func TestEmitFirstParserSettlesOnFirstCompleteValue(t *testing.T) {
	p := NewEmitFirstParser(anySchema, repairparse.Config{}, stream.Limits{})
	p.Append([]byte(`{"a": 1`))
	out := p.Poll()
	assert.False(t, out.Done)

	p.Append([]byte(`}`))
	out = p.Poll()
	require.True(t, out.Done)
	require.True(t, out.OK)
	v, _ := out.Value.Object().Get("a")
	assert.Equal(t, float64(1), v.Number())

	again := p.Poll()
	assert.Equal(t, out, again)
}

func TestEmitFirstParserIncompleteOnFinish(t *testing.T) {
	p := NewEmitFirstParser(anySchema, repairparse.Config{}, stream.Limits{})
	p.Append([]byte(`{"a": 1`))
	p.Finish()
	out := p.Poll()
	require.True(t, out.Done)
	assert.False(t, out.OK)
	assert.NotNil(t, out.Error)
}

func TestEmitFirstParserRejectsInvalidAgainstSchema(t *testing.T) {
	sc := mustSchema(t, `{"type": "string"}`)
	p := NewEmitFirstParser(sc, repairparse.Config{}, stream.Limits{})
	p.Append([]byte(`{"a": 1}`))
	out := p.Poll()
	require.True(t, out.Done)
	assert.False(t, out.OK)
}

func TestEmitAllCollectorEmitsArrayOnlyAtClose(t *testing.T) {
	c := NewEmitAllCollector(anySchema, repairparse.Config{}, stream.Limits{})
	c.Append([]byte(`{"a":1}{"b":2}`))

	out := c.Close()
	require.True(t, out.Done)
	require.True(t, out.OK)
	assert.Len(t, *out.Value, 2)
}

func TestEmitAllCollectorIncompleteTailFailsClose(t *testing.T) {
	c := NewEmitAllCollector(anySchema, repairparse.Config{}, stream.Limits{})
	c.Append([]byte(`{"a":1}{"b":`))
	out := c.Close()
	require.True(t, out.Done)
	assert.False(t, out.OK)
}

func TestBatchCollectorPollReturnsNewlyCompletedItems(t *testing.T) {
	c := NewBatchCollector(anySchema, repairparse.Config{}, stream.Limits{})
	c.Append([]byte(`{"a":1}`))
	out := c.Poll()
	assert.False(t, out.Done)
	require.True(t, out.OK)
	assert.Len(t, *out.Value, 1)

	out2 := c.Poll()
	assert.True(t, out2.OK)
	assert.Empty(t, *out2.Value)
}

func TestBatchCollectorCloseSettlesTerminalOutcome(t *testing.T) {
	c := NewBatchCollector(anySchema, repairparse.Config{}, stream.Limits{})
	c.Append([]byte(`{"a":1}`))
	out := c.Close()
	require.True(t, out.Done)
	assert.True(t, out.OK)
}

func TestValidatedBatchCollectorAppliesDefaults(t *testing.T) {
	sc := mustSchema(t, `{
		"type": "object",
		"properties": {"role": {"type": "string", "default": "user"}}
	}`)
	c := NewValidatedBatchCollector(sc, repairparse.Config{}, stream.Limits{})
	c.Append([]byte(`{}`))
	out := c.Poll()
	require.True(t, out.OK)
	require.Len(t, *out.Value, 1)
	v, ok := (*out.Value)[0].Object().Get("role")
	require.True(t, ok)
	assert.Equal(t, "user", v.String_())
}

func TestCollectorsRespectMaxItemsLimit(t *testing.T) {
	c := NewBatchCollector(anySchema, repairparse.Config{}, stream.Limits{MaxItems: 1})
	c.Append([]byte(`{"a":1}{"b":2}`))
	out := c.Poll()
	require.True(t, out.Done)
	assert.False(t, out.OK)
	assert.NotNil(t, out.Error)
}
