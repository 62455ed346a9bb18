package schema

import (
	"math"
	"unicode/utf8"

	"github.com/driftcode/llmparse/internal/value"
)

func (val *Validator) checkStringConstraints(v, sc value.Value, path string, s *sink) bool {
	str := v.String_()
	length := utf8.RuneCountInString(str)

	if min, ok := kwNumber(sc, "minLength"); ok && length < int(min) {
		if s.report(New(KindType, path, "length %d is less than minLength %d", length, int(min))) {
			return true
		}
	}
	if max, ok := kwNumber(sc, "maxLength"); ok && length > int(max) {
		if s.report(New(KindType, path, "length %d exceeds maxLength %d", length, int(max))) {
			return true
		}
	}
	if pattern, ok := kwString(sc, "pattern"); ok {
		re, err := val.compilePattern(pattern)
		if err != nil {
			if s.report(New(KindSchema, path, "invalid regex in 'pattern': %v", err)) {
				return true
			}
		} else {
			matched, err := re.MatchString(str)
			if err != nil {
				if s.report(New(KindSchema, path, "pattern evaluation failed: %v", err)) {
					return true
				}
			} else if !matched {
				if s.report(New(KindType, path, "value does not match pattern %q", pattern)) {
					return true
				}
			}
		}
	}
	if format, ok := kwString(sc, "format"); ok {
		if err := checkFormat(format, str); err != "" {
			if s.report(New(KindType, path, "%s", err)) {
				return true
			}
		}
	}
	return s.stopped()
}

func (val *Validator) checkNumericConstraints(v, sc value.Value, path string, s *sink) bool {
	n := v.Number()
	if min, ok := kwNumber(sc, "minimum"); ok && n < min {
		if s.report(New(KindType, path, "%v is less than minimum %v", n, min)) {
			return true
		}
	}
	if max, ok := kwNumber(sc, "maximum"); ok && n > max {
		if s.report(New(KindType, path, "%v exceeds maximum %v", n, max)) {
			return true
		}
	}
	if mult, ok := kwNumber(sc, "multipleOf"); ok && mult != 0 {
		q := n / mult
		if math.Abs(q-math.Round(q)) > 1e-9 {
			if s.report(New(KindType, path, "%v is not a multiple of %v", n, mult)) {
				return true
			}
		}
	}
	return s.stopped()
}

func (val *Validator) checkObjectConstraints(v, sc value.Value, path string, s *sink) bool {
	obj := v.Object()

	if minP, ok := kwNumber(sc, "minProperties"); ok && obj.Len() < int(minP) {
		if s.report(New(KindType, path, "object has %d properties, fewer than minProperties %d", obj.Len(), int(minP))) {
			return true
		}
	}
	if maxP, ok := kwNumber(sc, "maxProperties"); ok && obj.Len() > int(maxP) {
		if s.report(New(KindType, path, "object has %d properties, more than maxProperties %d", obj.Len(), int(maxP))) {
			return true
		}
	}
	if required, ok := kwStringSlice(sc, "required"); ok {
		for _, key := range required {
			if !obj.Has(key) {
				if s.report(New(KindType, path, "missing required property %q", key)) {
					return true
				}
			}
		}
	}

	propsSchema, hasProps := kw(sc, "properties")
	for _, key := range obj.Keys() {
		if hasProps {
			if propSchema, ok := kw(propsSchema, key); ok {
				childPath := AppendKey(path, key)
				childVal, _ := obj.Get(key)
				val.walk(childVal, propSchema, childPath, s)
				if s.stopped() {
					return true
				}
			}
		}
	}

	if addlRaw, ok := kw(sc, "additionalProperties"); ok {
		known := make(map[string]bool)
		if hasProps && propsSchema.Kind() == value.KindObject {
			for _, k := range propsSchema.Object().Keys() {
				known[k] = true
			}
		}
		for _, key := range obj.Keys() {
			if known[key] {
				continue
			}
			childVal, _ := obj.Get(key)
			childPath := AppendKey(path, key)
			if addlRaw.Kind() == value.KindBool {
				if !addlRaw.Bool() {
					if s.report(New(KindType, childPath, "additional property %q is not allowed", key)) {
						return true
					}
				}
			} else {
				val.walk(childVal, addlRaw, childPath, s)
				if s.stopped() {
					return true
				}
			}
		}
	}

	if pnSchema, ok := kw(sc, "propertyNames"); ok {
		for _, key := range obj.Keys() {
			val.walk(value.String(key), pnSchema, AppendKey(path, key), s)
			if s.stopped() {
				return true
			}
		}
	}

	return s.stopped()
}

func (val *Validator) checkArrayConstraints(v, sc value.Value, path string, s *sink) bool {
	items := v.Array()

	if minI, ok := kwNumber(sc, "minItems"); ok && len(items) < int(minI) {
		if s.report(New(KindType, path, "array has %d items, fewer than minItems %d", len(items), int(minI))) {
			return true
		}
	}
	if maxI, ok := kwNumber(sc, "maxItems"); ok && len(items) > int(maxI) {
		if s.report(New(KindType, path, "array has %d items, more than maxItems %d", len(items), int(maxI))) {
			return true
		}
	}

	if itemSchema, ok := kw(sc, "items"); ok {
		for i, item := range items {
			childPath := AppendIndex(path, i)
			val.walk(item, itemSchema, childPath, s)
			if s.stopped() {
				return true
			}
		}
	}

	if containsSchema, ok := kw(sc, "contains"); ok {
		minContains := 1
		if mc, ok := kwNumber(sc, "minContains"); ok {
			minContains = int(mc)
		}
		maxContains := -1
		if mc, ok := kwNumber(sc, "maxContains"); ok {
			maxContains = int(mc)
		}
		if minContains == 0 {
			return s.stopped()
		}
		matchCount := 0
		for _, item := range items {
			probe := &sink{collectAll: true}
			val.walk(item, containsSchema, path, probe)
			if len(probe.errs) == 0 {
				matchCount++
			}
		}
		if matchCount < minContains {
			if s.report(New(KindType, path, "array contains %d matching items, fewer than minContains %d", matchCount, minContains)) {
				return true
			}
		}
		if maxContains >= 0 && matchCount > maxContains {
			if s.report(New(KindType, path, "array contains %d matching items, more than maxContains %d", matchCount, maxContains)) {
				return true
			}
		}
	}

	return s.stopped()
}

func (val *Validator) checkComposition(v, sc value.Value, path string, s *sink) bool {
	if allOf, ok := kwArray(sc, "allOf"); ok {
		for _, sub := range allOf {
			val.walk(v, sub, path, s)
			if s.stopped() {
				return true
			}
		}
	}

	if anyOf, ok := kwArray(sc, "anyOf"); ok {
		matched := false
		for _, sub := range anyOf {
			probe := &sink{collectAll: true}
			val.walk(v, sub, path, probe)
			if len(probe.errs) == 0 {
				matched = true
				break
			}
		}
		if !matched {
			if s.report(New(KindType, path, "value does not match any schema in anyOf")) {
				return true
			}
		}
	}

	if oneOf, ok := kwArray(sc, "oneOf"); ok {
		matches := 0
		for _, sub := range oneOf {
			probe := &sink{collectAll: true}
			val.walk(v, sub, path, probe)
			if len(probe.errs) == 0 {
				matches++
			}
		}
		if matches != 1 {
			if s.report(New(KindType, path, "value matches %d schemas in oneOf, expected exactly 1", matches)) {
				return true
			}
		}
	}

	if ifSchema, ok := kw(sc, "if"); ok {
		probe := &sink{collectAll: true}
		val.walk(v, ifSchema, path, probe)
		if len(probe.errs) == 0 {
			if thenSchema, ok := kw(sc, "then"); ok {
				val.walk(v, thenSchema, path, s)
				if s.stopped() {
					return true
				}
			}
		} else if elseSchema, ok := kw(sc, "else"); ok {
			val.walk(v, elseSchema, path, s)
			if s.stopped() {
				return true
			}
		}
	}

	return s.stopped()
}

func (val *Validator) checkDependentRequired(v, sc value.Value, path string, s *sink) bool {
	if v.Kind() != value.KindObject {
		return false
	}
	depReq, ok := kw(sc, "dependentRequired")
	if !ok || depReq.Kind() != value.KindObject {
		return false
	}
	obj := v.Object()
	for _, trigger := range depReq.Object().Keys() {
		if !obj.Has(trigger) {
			continue
		}
		reqList, _ := depReq.Object().Get(trigger)
		for _, req := range reqList.Array() {
			if req.Kind() != value.KindString {
				continue
			}
			if !obj.Has(req.String_()) {
				if s.report(New(KindType, path, "property %q requires %q to also be present", trigger, req.String_())) {
					return true
				}
			}
		}
	}
	return s.stopped()
}
