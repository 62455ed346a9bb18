package llmparse

import "github.com/driftcode/llmparse/internal/schema"

// ErrorKind identifies the root cause of a ValidationError.
type ErrorKind = schema.Kind

const (
	KindSchemaError = schema.KindSchema
	KindTypeError   = schema.KindType
	KindLimitError  = schema.KindLimit
	KindParseError  = schema.KindParse
)

// LimitKind distinguishes which resource limit a limit error reports.
type LimitKind = schema.LimitKind

const (
	LimitMaxBufferBytes = schema.LimitMaxBufferBytes
	LimitMaxItems       = schema.LimitMaxItems
)

// Limit describes a tripped resource bound.
type Limit = schema.Limit

// ValidationError is the uniform error shape for every fail-fast and
// collect-all entrypoint: a root-cause kind, a message, a dotted path
// rooted at "$", and the equivalent RFC 6901 JSON Pointer.
type ValidationError = schema.ValidationError

// Validator walks values against schemas. Its regex cache (for the
// `pattern` keyword) is scoped to the instance; reuse one Validator across
// many calls against the same schema to amortize that compilation cost.
type Validator = schema.Validator

// NewValidator builds a Validator with an empty regex cache.
func NewValidator() *Validator { return schema.NewValidator() }

// Validate runs fail-fast validation with a fresh Validator: it returns the
// first ValidationError encountered in document order, or nil if v
// satisfies schemaValue. Callers validating the same schema repeatedly
// should use NewValidator directly instead, to reuse its regex cache.
func Validate(v, schemaValue Value) error {
	return NewValidator().Validate(v, schemaValue)
}

// ValidateAll runs collect-all validation with a fresh Validator: it
// returns every ValidationError in document order. A non-nil, empty slice
// means v is valid.
func ValidateAll(v, schemaValue Value) []*ValidationError {
	return NewValidator().ValidateAll(v, schemaValue)
}

// LintSchema compiles schemaValue against the JSON-Schema 2020-12
// meta-schema, catching malformed schema documents before they are ever
// used to validate real data.
func LintSchema(schemaValue Value) *ValidationError {
	return schema.Lint(schemaValue)
}
