// Package telemetry emits structured, line-delimited events describing
// parse, validation, and stream activity. It is adapted from a pipeline
// trace/event pair in the codebase this module grew out of: one half
// wrote NDJSON lifecycle events, the other scrubbed credential-shaped
// substrings out of anything destined for a trace file. Both concerns
// still apply here — a caller may want a machine-readable record of what
// repairs fired, and the values being repaired are LLM output that can
// easily contain an API key the caller never intended to persist.
package telemetry

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/schema"
)

var credentialPatterns = []string{
	`API[_-]?KEY`,
	`TOKEN`,
	`SECRET`,
	`PASSWORD`,
	`CREDENTIAL`,
	`PRIVATE[_-]?KEY`,
	`ACCESS[_-]?KEY`,
}

var (
	credentialRegex  = regexp.MustCompile(`(?i)(` + strings.Join(credentialPatterns, `|`) + `)\s*[=:]\s*[\w\-]+`)
	bearerTokenRegex = regexp.MustCompile(`(?i)Bearer\s+[\w.\-]+`)
	skTokenRegex     = regexp.MustCompile(`\bsk-[\w-]+`)
)

// Scrub replaces credential-shaped substrings with a redaction marker.
// Applied to any raw source text before it is attached to a log event.
// Covers labeled keywords (api_key=..., TOKEN:...), bearer-scheme auth
// headers, and bare sk-... style tokens, since a model's echoed prompt
// context can surface any of the three.
func Scrub(text string) string {
	text = credentialRegex.ReplaceAllString(text, "$1=[REDACTED]")
	text = bearerTokenRegex.ReplaceAllString(text, "Bearer [REDACTED]")
	text = skTokenRegex.ReplaceAllString(text, "[REDACTED]")
	return text
}

// Emitter writes NDJSON telemetry events to w.
type Emitter struct {
	logger *logrus.Logger
}

// NewEmitter builds an Emitter writing to w. A nil w defaults to
// io.Discard, making telemetry opt-in.
func NewEmitter(w io.Writer) *Emitter {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	if w == nil {
		w = io.Discard
	}
	logger.SetOutput(w)
	return &Emitter{logger: logger}
}

// ParseCompleted records a successful repair+parse cycle: which repairs
// fired and how long it took.
func (e *Emitter) ParseCompleted(sourcePreview string, meta repairparse.Metadata, duration time.Duration) {
	e.logger.WithField("eventID", uuid.New().String()).WithFields(logrus.Fields{
		"event":                  "parse.completed",
		"sourcePreview":          Scrub(sourcePreview),
		"extractedFromFence":     meta.ExtractedFromFence,
		"fixedSmartQuotes":       meta.FixedSmartQuotes,
		"strippedComments":       meta.StrippedComments,
		"replacedPythonLiterals": meta.ReplacedPythonLiterals,
		"convertedKVObject":      meta.ConvertedKVObject,
		"quotedUnquotedKeys":     meta.QuotedUnquotedKeys,
		"droppedTrailingCommas":  meta.DroppedTrailingCommas,
		"duplicateKeyCount":      meta.DuplicateKeyCount,
		"durationMs":             duration.Milliseconds(),
	}).Info("parse completed")
}

// ParseFailed records a repair+parse failure.
func (e *Emitter) ParseFailed(sourcePreview string, err error) {
	e.logger.WithField("eventID", uuid.New().String()).WithFields(logrus.Fields{
		"event":         "parse.failed",
		"sourcePreview": Scrub(sourcePreview),
		"error":         err.Error(),
	}).Warn("parse failed")
}

// ValidationCompleted records the outcome of a validation pass.
func (e *Emitter) ValidationCompleted(errs []*schema.ValidationError) {
	fields := logrus.Fields{
		"event":      "validate.completed",
		"errorCount": len(errs),
		"valid":      len(errs) == 0,
	}
	if len(errs) > 0 {
		paths := make([]string, len(errs))
		for i, e := range errs {
			paths[i] = e.Path
		}
		fields["paths"] = paths
	}
	e.logger.WithField("eventID", uuid.New().String()).WithFields(fields).Info("validation completed")
}

// StreamOutcome records one poll/close result from a streaming collector.
func (e *Emitter) StreamOutcome(op string, done, ok bool, itemCount int64, err *schema.ValidationError) {
	fields := logrus.Fields{
		"event":     "stream." + op,
		"done":      done,
		"ok":        ok,
		"itemCount": itemCount,
	}
	if err != nil {
		fields["errorKind"] = string(err.Kind)
		fields["errorPath"] = err.Path
	}
	e.logger.WithField("eventID", uuid.New().String()).WithFields(fields).Info("stream outcome")
}
