package schema

import (
	"sync"

	"github.com/dlclark/regexp2"

	"github.com/driftcode/llmparse/internal/value"
)

// Validator walks a value against a schema. To avoid any global state,
// its regex cache is an instance field, never a package-level map.
type Validator struct {
	mu         sync.Mutex
	regexCache map[string]*regexp2.Regexp
}

func NewValidator() *Validator {
	return &Validator{regexCache: make(map[string]*regexp2.Regexp)}
}

func (val *Validator) compilePattern(pattern string) (*regexp2.Regexp, error) {
	val.mu.Lock()
	defer val.mu.Unlock()
	if re, ok := val.regexCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	val.regexCache[pattern] = re
	return re, nil
}

// sink accumulates ValidationErrors for collect-all mode, or stops at the
// first one for fail-fast mode. It is the single mechanism behind both
// Validator.Validate and Validator.ValidateAll implement a single
// recursive walker, two entry modes."
type sink struct {
	collectAll bool
	errs       []*ValidationError
}

// report records err and returns true if the walk should stop recursing.
func (s *sink) report(err *ValidationError) bool {
	s.errs = append(s.errs, err)
	return !s.collectAll
}

func (s *sink) stopped() bool {
	return !s.collectAll && len(s.errs) > 0
}

// Validate runs fail-fast validation: it returns the first ValidationError
// encountered in document order, or nil if v satisfies schema.
func (val *Validator) Validate(v, sc value.Value) error {
	s := &sink{collectAll: false}
	val.walk(v, sc, "$", s)
	if len(s.errs) > 0 {
		return s.errs[0]
	}
	return nil
}

// ValidateAll runs collect-all validation: it returns every ValidationError
// in depth-first, pre-order-per-node document order. An empty, non-nil
// slice means v is valid.
func (val *Validator) ValidateAll(v, sc value.Value) []*ValidationError {
	s := &sink{collectAll: true, errs: []*ValidationError{}}
	val.walk(v, sc, "$", s)
	return s.errs
}

// walk is the single recursive entry point shared by both validation modes.
func (val *Validator) walk(v, sc value.Value, path string, s *sink) {
	if sc.Kind() == value.KindBool {
		if !sc.Bool() {
			s.report(New(KindType, path, "value rejected by boolean schema 'false'"))
		}
		return
	}
	if sc.Kind() != value.KindObject {
		return
	}

	if val.checkType(v, sc, path, s) {
		return
	}
	if val.checkEnumConst(v, sc, path, s) {
		return
	}
	if v.Kind() == value.KindString {
		if val.checkStringConstraints(v, sc, path, s) {
			return
		}
	}
	if v.Kind() == value.KindNumber {
		if val.checkNumericConstraints(v, sc, path, s) {
			return
		}
	}
	if v.Kind() == value.KindObject {
		if val.checkObjectConstraints(v, sc, path, s) {
			return
		}
	}
	if v.Kind() == value.KindArray {
		if val.checkArrayConstraints(v, sc, path, s) {
			return
		}
	}
	if val.checkComposition(v, sc, path, s) {
		return
	}
	if val.checkDependentRequired(v, sc, path, s) {
		return
	}
}

func (val *Validator) checkType(v, sc value.Value, path string, s *sink) bool {
	types, ok := schemaTypes(sc)
	if !ok {
		return false
	}
	for _, t := range types {
		if matchesType(v, t) {
			return false
		}
	}
	return s.report(New(KindType, path, "expected type %v, got %s", types, v.Kind()))
}

func (val *Validator) checkEnumConst(v, sc value.Value, path string, s *sink) bool {
	if constV, ok := kw(sc, "const"); ok {
		if !value.Equal(v, constV) {
			return s.report(New(KindType, path, "value does not match const"))
		}
	}
	if enumArr, ok := kwArray(sc, "enum"); ok {
		for _, e := range enumArr {
			if value.Equal(v, e) {
				return false
			}
		}
		return s.report(New(KindType, path, "value is not one of the enumerated values"))
	}
	return false
}
