package telemetry

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/schema"
)

func TestScrubRedactsCredentialShapedSubstrings(t *testing.T) {
	out := Scrub("api_key=sk-abc123 and then some text")
	assert.NotContains(t, out, "sk-abc123")
	assert.Contains(t, out, "REDACTED")
}

func TestScrubLeavesOrdinaryTextAlone(t *testing.T) {
	text := "just a normal sentence with no secrets"
	assert.Equal(t, text, Scrub(text))
}

func TestScrubRedactsBareAPIToken(t *testing.T) {
	out := Scrub("here is my key sk-ant-abc123 for the request")
	assert.NotContains(t, out, "sk-ant-abc123")
	assert.Contains(t, out, "REDACTED")
}

func TestScrubRedactsBearerToken(t *testing.T) {
	out := Scrub("Authorization: Bearer sk-ant-abc123")
	assert.NotContains(t, out, "sk-ant-abc123")
	assert.Contains(t, out, "REDACTED")
}

func TestEmitterParseCompletedWritesNDJSON(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.ParseCompleted("{\"a\":1}", repairparse.Metadata{FixedSmartQuotes: true}, 5*time.Millisecond)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "parse.completed", record["event"])
	assert.Equal(t, true, record["fixedSmartQuotes"])
	assert.NotEmpty(t, record["eventID"])
}

func TestEmitterParseFailedWritesError(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.ParseFailed("bad input", assertError{"boom"})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "parse.failed", record["event"])
	assert.Equal(t, "boom", record["error"])
}

func TestEmitterValidationCompletedReportsPaths(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.ValidationCompleted([]*schema.ValidationError{
		schema.New(schema.KindType, "$.name", "missing"),
	})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, float64(1), record["errorCount"])
	assert.Equal(t, false, record["valid"])
}

func TestEmitterDefaultsToDiscard(t *testing.T) {
	e := NewEmitter(nil)
	assert.NotPanics(t, func() {
		e.StreamOutcome("poll", false, true, 0, nil)
	})
}

type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }
