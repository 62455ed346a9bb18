// Package llmparse is a lenient, schema-driven parsing and validation
// toolkit for the semi-structured text large language models emit:
// extracting JSON payloads from surrounding prose and code fences,
// repairing common formatting mistakes, validating the result against a
// JSON-Schema-like dialect, synthesizing repair suggestions, and streaming
// all of the above over chunked input.
package llmparse

import "github.com/driftcode/llmparse/internal/value"

// Value is the tagged-variant document type shared by every parser,
// validator, and collector: null, bool, number, string, array, or object.
type Value = value.Value

// Object is an insertion-ordered string-keyed map, the backing type of
// Value's object variant.
type Object = value.Object

// Kind identifies which variant a Value holds.
type Kind = value.Kind

const (
	KindNull   = value.KindNull
	KindBool   = value.KindBool
	KindNumber = value.KindNumber
	KindString = value.KindString
	KindArray  = value.KindArray
	KindObject = value.KindObject
)

// Null is the singleton null value.
var Null = value.Null

func Bool(b bool) Value    { return value.Bool(b) }
func Number(n float64) Value { return value.Number(n) }
func String(s string) Value  { return value.String(s) }
func Array(items ...Value) Value { return value.Array(items...) }
func NewObject() *Object     { return value.NewObject() }
func ObjectOf(o *Object) Value { return value.ObjectOf(o) }

// Equal reports structural equality: objects compare order-independently.
func Equal(a, b Value) bool { return value.Equal(a, b) }

// DeepCopy returns an independent recursive copy of v.
func DeepCopy(v Value) Value { return value.DeepCopy(v) }

// Serialize renders v as compact JSON text, preserving object key order.
func Serialize(v Value) string { return value.Serialize(v) }

// ParseValue decodes standard JSON text (such as a schema literal) into a
// Value.
func ParseValue(jsonText string) (Value, error) { return value.FromJSON(jsonText) }
