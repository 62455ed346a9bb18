package llmparse

import (
	"io"
	"time"

	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/telemetry"
)

// TelemetryEmitter writes NDJSON events describing parse, validation, and
// stream activity, with credential-shaped substrings scrubbed from any
// source text attached to an event.
type TelemetryEmitter struct{ e *telemetry.Emitter }

// NewTelemetryEmitter builds a TelemetryEmitter writing to w.
func NewTelemetryEmitter(w io.Writer) *TelemetryEmitter {
	return &TelemetryEmitter{e: telemetry.NewEmitter(w)}
}

// TraceJSON runs ParseJSON and emits a parse.completed or parse.failed
// telemetry event alongside the result.
func (t *TelemetryEmitter) TraceJSON(text string, cfg RepairConfig) (ParseResult, error) {
	start := time.Now()
	r, err := repairparse.Parse(text, cfg)
	if err != nil {
		t.e.ParseFailed(text, err)
		return ParseResult{}, err
	}
	t.e.ParseCompleted(text, r.Metadata, time.Since(start))
	return fromInternalResult(r), nil
}

// TraceValidation runs ValidateAll and emits a validate.completed event.
func (t *TelemetryEmitter) TraceValidation(v, schemaValue Value) []*ValidationError {
	errs := ValidateAll(v, schemaValue)
	t.e.ValidationCompleted(errs)
	return errs
}

// TraceStreamOutcome records one poll/close result from any streaming
// collector under a caller-chosen operation name ("poll", "close", ...).
func (t *TelemetryEmitter) TraceStreamOutcome(op string, done, ok bool, itemCount int64, err *ValidationError) {
	t.e.StreamOutcome(op, done, ok, itemCount, err)
}
