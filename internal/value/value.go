// Package value implements the tagged-variant document model shared by every
// parser, validator, and streaming collector in llmparse. A Value is one of
// null, bool, number, string, array, or object; objects preserve insertion
// order for reproducible serialization while comparing equal regardless of
// key order.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the sum type at the root of the document model. Exactly one of
// the typed fields is meaningful, selected by Kind.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null is the singleton null value.
var Null = Value{kind: KindNull}

func Bool(b bool) Value   { return Value{kind: KindBool, b: b} }
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }
func String(s string) Value  { return Value{kind: KindString, s: s} }

func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

func ObjectOf(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() bool { return v.b }

func (v Value) Number() float64 { return v.n }

// IsInteger reports whether a Number value is finite and equal to its own
// truncation, matching the schema dialect's "integer" type test.
func (v Value) IsInteger() bool {
	if v.kind != KindNumber {
		return false
	}
	return !math.IsInf(v.n, 0) && !math.IsNaN(v.n) && math.Trunc(v.n) == v.n
}

func (v Value) String_() string { return v.s }

func (v Value) Array() []Value {
	return v.arr
}

func (v Value) Object() *Object { return v.obj }

// Equal implements structural equality: objects compare order-independently,
// arrays compare element-wise and order-sensitively, numbers compare by
// value.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ak, bk := a.obj.Keys(), b.obj.Keys()
		if len(ak) != len(bk) {
			return false
		}
		for _, k := range ak {
			av, _ := a.obj.Get(k)
			bv, ok := b.obj.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// DeepCopy returns an independent copy of v; arrays and objects are cloned
// recursively so mutation of the copy never affects v.
func DeepCopy(v Value) Value {
	switch v.kind {
	case KindArray:
		out := make([]Value, len(v.arr))
		for i, e := range v.arr {
			out[i] = DeepCopy(e)
		}
		return Value{kind: KindArray, arr: out}
	case KindObject:
		o := NewObject()
		for _, k := range v.obj.Keys() {
			ev, _ := v.obj.Get(k)
			o.Set(k, DeepCopy(ev))
		}
		return Value{kind: KindObject, obj: o}
	default:
		return v
	}
}

// Object is an insertion-ordered string-keyed map. Lookup is O(1) via the
// backing map; Keys() preserves insertion order via the parallel key slice.
type Object struct {
	keys []string
	m    map[string]Value
}

func NewObject() *Object {
	return &Object{m: make(map[string]Value)}
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.m[key]
	return v, ok
}

func (o *Object) Has(key string) bool {
	_, ok := o.m[key]
	return ok
}

// Set inserts or overwrites key. The first Set call for a key fixes its
// position in Keys(); subsequent calls update the value in place without
// moving it.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.m[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.m[key] = v
}

func (o *Object) Delete(key string) {
	if _, exists := o.m[key]; !exists {
		return
	}
	delete(o.m, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

func (o *Object) Keys() []string { return o.keys }

func (o *Object) Len() int { return len(o.keys) }

// Serialize renders v as compact JSON text, preserving object key order.
func Serialize(v Value) string {
	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

func writeJSON(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(formatNumber(v.n))
	case KindString:
		b.WriteString(strconv.Quote(v.s))
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, e)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, k := range v.obj.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			ev, _ := v.obj.Get(k)
			writeJSON(b, ev)
		}
		b.WriteByte('}')
	}
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// CanonicalString renders a scalar for the coercion matrix's number→string
// and boolean→string conversions.
func CanonicalString(v Value) (string, error) {
	switch v.kind {
	case KindString:
		return v.s, nil
	case KindNumber:
		return formatNumber(v.n), nil
	case KindBool:
		return strconv.FormatBool(v.b), nil
	case KindNull:
		return "null", nil
	default:
		return "", fmt.Errorf("value: cannot render %s as string", v.kind)
	}
}
