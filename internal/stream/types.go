// Package stream implements the chunked, byte-level streaming core shared
// by every collector variant: a state machine that recognizes
// complete top-level JSON values (or ;-terminated SQL statements) inside
// text fed to it in arbitrary-sized chunks.
package stream

import "github.com/driftcode/llmparse/internal/schema"

// Limits bounds a stream's resource consumption. Zero or absent fields mean
// unlimited.
type Limits struct {
	MaxBufferBytes int64
	MaxItems       int64
}

// Location reports the scanner cursor's position relative to the current
// (unabsorbed) buffer contents.
type Location struct {
	Offset uint
	Line   uint
	Col    uint
}

// Outcome is the uniform result of a poll: exactly one of (value present),
// (error present), or neither (not done yet).
type Outcome[T any] struct {
	Done  bool
	OK    bool
	Value *T
	Error *schema.ValidationError
}

func done[T any](ok bool, value *T, err *schema.ValidationError) Outcome[T] {
	return Outcome[T]{Done: true, OK: ok, Value: value, Error: err}
}

func pending[T any]() Outcome[T] {
	return Outcome[T]{Done: false}
}
