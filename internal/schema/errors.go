// Package schema implements the Draft-2020-ish schema validator, defaulter,
// and repair synthesizer shared by every format surface. A
// schema is itself an Object-shaped value.Value; the validator interprets
// it by keyword rather than compiling it into a parallel type, matching
// tagged variants over an inheritance hierarchy.
package schema

import "fmt"

// Kind identifies the root cause of a ValidationError.
type Kind string

const (
	KindSchema Kind = "schema"
	KindType   Kind = "type"
	KindLimit  Kind = "limit"
	KindParse  Kind = "parse"
)

// LimitKind distinguishes which streaming limit was exceeded.
type LimitKind string

const (
	LimitMaxBufferBytes LimitKind = "maxBufferBytes"
	LimitMaxItems       LimitKind = "maxItems"
)

// Limit carries the current/max pair for a limit violation.
type Limit struct {
	Kind    LimitKind
	Current int64
	Max     int64
}

// ValidationError is the uniform error surface: every thrown or collected
// error carries kind, message, path, and jsonPointer; limit errors also
// carry a Limit.
type ValidationError struct {
	Kind        Kind
	Message     string
	Path        string
	JSONPointer string
	Limit       *Limit
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (path=%s, pointer=%s)", e.Kind, e.Message, e.Path, e.JSONPointer)
}

// New builds a ValidationError, deriving JSONPointer from path automatically
// so callers never have to keep the two in sync by hand.
func New(kind Kind, path, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:        kind,
		Message:     fmt.Sprintf(format, args...),
		Path:        path,
		JSONPointer: PathToPointer(path),
	}
}

// NewLimit builds a kind=limit ValidationError.
func NewLimit(path string, limit Limit, format string, args ...interface{}) *ValidationError {
	e := New(KindLimit, path, format, args...)
	e.Limit = &limit
	return e
}
