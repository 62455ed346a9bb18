package llmparse

import (
	"github.com/driftcode/llmparse/internal/adapters/sqladapter"
	"github.com/driftcode/llmparse/internal/collector"
	"github.com/driftcode/llmparse/internal/stream"
)

// StreamLimits bounds a stream's resource consumption. Zero fields mean
// unlimited.
type StreamLimits = stream.Limits

// StreamLocation reports the scanner cursor's position relative to the
// current (unabsorbed) buffer contents.
type StreamLocation = stream.Location

// StreamOutcome is the uniform result of a poll: exactly one of (value
// present), (error present), or neither (not done yet).
type StreamOutcome[T any] = stream.Outcome[T]

// JSONStreamParser absorbs chunked text until the first complete top-level
// JSON value parses and validates against an item schema, then stays
// settled on that result.
type JSONStreamParser struct{ p *collector.EmitFirstParser }

func NewJSONStreamParser(itemSchema Value, repairCfg RepairConfig, limits StreamLimits) *JSONStreamParser {
	return &JSONStreamParser{p: collector.NewEmitFirstParser(itemSchema, repairCfg, limits)}
}

func (s *JSONStreamParser) Append(chunk []byte) { s.p.Append(chunk) }
func (s *JSONStreamParser) Poll() StreamOutcome[Value] { return s.p.Poll() }
func (s *JSONStreamParser) Finish()                    { s.p.Finish() }
func (s *JSONStreamParser) Reset()                     { s.p.Reset() }

// JSONStreamCollector absorbs every complete JSON value and emits the full
// array only once Close is called.
type JSONStreamCollector struct{ c *collector.EmitAllCollector }

func NewJSONStreamCollector(itemSchema Value, repairCfg RepairConfig, limits StreamLimits) *JSONStreamCollector {
	return &JSONStreamCollector{c: collector.NewEmitAllCollector(itemSchema, repairCfg, limits)}
}

func (s *JSONStreamCollector) Append(chunk []byte)            { s.c.Append(chunk) }
func (s *JSONStreamCollector) Close() StreamOutcome[[]Value]  { return s.c.Close() }
func (s *JSONStreamCollector) Reset()                         { s.c.Reset() }

// JSONStreamBatchCollector emits each newly completed JSON value as soon as
// it is ready, as a batch per Poll call.
type JSONStreamBatchCollector struct{ c *collector.BatchCollector }

func NewJSONStreamBatchCollector(itemSchema Value, repairCfg RepairConfig, limits StreamLimits) *JSONStreamBatchCollector {
	return &JSONStreamBatchCollector{c: collector.NewBatchCollector(itemSchema, repairCfg, limits)}
}

func (s *JSONStreamBatchCollector) Append(chunk []byte)           { s.c.Append(chunk) }
func (s *JSONStreamBatchCollector) Poll() StreamOutcome[[]Value]  { return s.c.Poll() }
func (s *JSONStreamBatchCollector) Close() StreamOutcome[[]Value] { return s.c.Close() }
func (s *JSONStreamBatchCollector) Reset()                        { s.c.Reset() }

// ValidatedJSONStreamBatchCollector behaves like JSONStreamBatchCollector,
// except each emitted value has schema defaults applied first.
type ValidatedJSONStreamBatchCollector struct{ c *collector.ValidatedBatchCollector }

func NewValidatedJSONStreamBatchCollector(itemSchema Value, repairCfg RepairConfig, limits StreamLimits) *ValidatedJSONStreamBatchCollector {
	return &ValidatedJSONStreamBatchCollector{c: collector.NewValidatedBatchCollector(itemSchema, repairCfg, limits)}
}

func (s *ValidatedJSONStreamBatchCollector) Append(chunk []byte)           { s.c.Append(chunk) }
func (s *ValidatedJSONStreamBatchCollector) Poll() StreamOutcome[[]Value]  { return s.c.Poll() }
func (s *ValidatedJSONStreamBatchCollector) Close() StreamOutcome[[]Value] { return s.c.Close() }
func (s *ValidatedJSONStreamBatchCollector) Reset()                       { s.c.Reset() }

// SQLValidationSchema constrains which SQL statements a SQLStreamParser
// accepts.
type SQLValidationSchema = sqladapter.ValidationSchema

// SQLStatementSummary is the structural record produced for one
// syntactically and structurally acceptable SQL statement.
type SQLStatementSummary = sqladapter.Summary

// SQLStreamParser segments chunked SQL text into `;`-terminated statements
// and validates the first one against a SQLValidationSchema.
type SQLStreamParser struct{ p *collector.SQLStreamParser }

func NewSQLStreamParser(cfg SQLValidationSchema, limits StreamLimits) *SQLStreamParser {
	return &SQLStreamParser{p: collector.NewSQLStreamParser(cfg, limits)}
}

func (s *SQLStreamParser) Append(chunk []byte)                     { s.p.Append(chunk) }
func (s *SQLStreamParser) Poll() StreamOutcome[SQLStatementSummary] { return s.p.Poll() }
func (s *SQLStreamParser) Finish()                                  { s.p.Finish() }
func (s *SQLStreamParser) Reset()                                   { s.p.Reset() }
