package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcode/llmparse/internal/schema"
)

func TestCoreNextValueSpanWaitsForCompletion(t *testing.T) {
	c := NewCore(Limits{})
	c.Append([]byte(`{"a": 1`))
	_, ok := c.NextValueSpan()
	assert.False(t, ok)

	c.Append([]byte(`}`))
	span, ok := c.NextValueSpan()
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, string(span))
}

func TestCoreSkipsLeadingProse(t *testing.T) {
	c := NewCore(Limits{})
	c.Append([]byte(`here you go: {"a": 1} thanks`))
	span, ok := c.NextValueSpan()
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, string(span))
}

func TestCoreMultipleValuesAcrossAppends(t *testing.T) {
	c := NewCore(Limits{})
	c.Append([]byte(`{"a":1}{"b":2}`))

	span1, ok := c.NextValueSpan()
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(span1))

	span2, ok := c.NextValueSpan()
	require.True(t, ok)
	assert.Equal(t, `{"b":2}`, string(span2))

	_, ok = c.NextValueSpan()
	assert.False(t, ok)
}

func TestCoreMaxBufferBytesTripsTerminal(t *testing.T) {
	c := NewCore(Limits{MaxBufferBytes: 4})
	c.Append([]byte(`{"abcdef"}`))

	terminal, err := c.Terminal()
	require.True(t, terminal)
	require.NotNil(t, err)
	assert.Equal(t, schema.LimitMaxBufferBytes, err.Limit.Kind)
}

func TestCoreAppendNoOpAfterTerminal(t *testing.T) {
	c := NewCore(Limits{MaxBufferBytes: 2})
	c.Append([]byte(`xxx`))
	lenBefore := len(c.buf)
	c.Append([]byte(`more data`))
	assert.Equal(t, lenBefore, len(c.buf))
}

func TestCoreMaxItemsLimit(t *testing.T) {
	c := NewCore(Limits{MaxItems: 1})
	assert.Nil(t, c.CheckItemLimit())
	c.CommitItem()
	err := c.CheckItemLimit()
	require.NotNil(t, err)
	assert.Equal(t, int64(1), c.ItemCount())
}

func TestCoreHasUnfinishedStructure(t *testing.T) {
	c := NewCore(Limits{})
	c.Append([]byte(`{"a": [1, 2`))
	assert.True(t, c.HasUnfinishedStructure())
}

func TestCoreResetClearsState(t *testing.T) {
	c := NewCore(Limits{MaxItems: 5})
	c.Append([]byte(`{"a":1}`))
	c.CommitItem()
	c.Finish()
	c.Reset()

	assert.False(t, c.Finished())
	assert.Equal(t, int64(0), c.ItemCount())
	_, ok := c.NextValueSpan()
	assert.False(t, ok)
}
