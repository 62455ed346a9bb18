package schema

import (
	"strconv"
	"strings"

	"github.com/driftcode/llmparse/internal/value"
)

// RepairConfig gates the repair synthesizer's local-fix strategies, per the
// ValidationRepairConfig surface.
type RepairConfig struct {
	CoerceTypes           bool
	UseDefaults           bool
	ClampNumbers          bool
	TruncateStrings       bool
	TruncateArrays        bool
	RemoveExtraProperties bool
	FixEnums              bool
	FixFormats            bool
	MaxSuggestions        int // 0 = unlimited
}

// Suggestion describes one local repair, applied or not.
type Suggestion struct {
	Path           string
	ErrorKind      Kind
	Message        string
	Suggestion     string
	OriginalValue  value.Value
	SuggestedValue value.Value
	AutoFixable    bool
}

// RepairResult is the outcome of RepairSuggestions: the best-effort repaired
// value, every suggestion considered, and the errors no strategy could fix.
type RepairResult struct {
	Valid           bool
	FullyRepaired   bool
	RepairedValue   value.Value
	Suggestions     []Suggestion
	UnfixableErrors []*ValidationError
}

// RepairSuggestions runs the validator in collect-all mode and attempts a
// local fix per error using the enabled strategies in cfg. It deep-copies
// v first so the caller's original value is never mutated.
func (val *Validator) RepairSuggestions(v, sc value.Value, cfg RepairConfig) RepairResult {
	working := value.DeepCopy(v)

	if cfg.UseDefaults {
		working = ApplyDefaults(working, sc)
	}

	var suggestions []Suggestion
	var unfixable []*ValidationError

	// A single pass over the initial error list can leave a value needing
	// two sequential fixes (coerce a string to a number, then clamp that
	// number to range) unrepaired, since the second fix only becomes
	// applicable after the first has landed. Re-validate and re-attempt
	// until a round makes no further progress.
	const maxRounds = 10
	for round := 0; round < maxRounds; round++ {
		errs := val.ValidateAll(working, sc)
		if len(errs) == 0 {
			unfixable = nil
			break
		}

		unfixable = unfixable[:0]
		progressed := false
		for _, e := range errs {
			segs := splitPathSegments(e.Path)
			sug, fixedVal, ok := val.attemptFix(working, sc, e, segs, cfg)
			if ok {
				setAtPath(working, segs, fixedVal)
				sug.AutoFixable = true
				progressed = true
			} else {
				unfixable = append(unfixable, e)
			}
			suggestions = append(suggestions, sug)
		}
		if !progressed {
			break
		}
	}

	if cfg.MaxSuggestions > 0 && len(suggestions) > cfg.MaxSuggestions {
		suggestions = suggestions[:cfg.MaxSuggestions]
	}

	finalErrs := val.ValidateAll(working, sc)

	return RepairResult{
		Valid:           len(finalErrs) == 0,
		FullyRepaired:   len(finalErrs) == 0,
		RepairedValue:   working,
		Suggestions:     suggestions,
		UnfixableErrors: unfixable,
	}
}

func (val *Validator) attemptFix(root, sc value.Value, e *ValidationError, segs []string, cfg RepairConfig) (Suggestion, value.Value, bool) {
	curVal, curOk := getAtPath(root, segs)
	subSchema, _ := getSubSchema(sc, segs)

	sug := Suggestion{
		Path:          e.Path,
		ErrorKind:     e.Kind,
		Message:       e.Message,
		OriginalValue: curVal,
	}

	if !curOk {
		sug.Suggestion = "no value present at this path to repair"
		return sug, value.Value{}, false
	}

	if cfg.RemoveExtraProperties && strings.Contains(e.Message, "is not allowed") {
		sug.Suggestion = "remove disallowed additional property"
		if deleteAtPath(root, segs) {
			sug.SuggestedValue = value.Value{}
			return sug, value.Value{}, true
		}
	}

	if cfg.ClampNumbers && curVal.Kind() == value.KindNumber {
		if min, ok := kwNumber(subSchema, "minimum"); ok && curVal.Number() < min {
			sug.Suggestion = "clamp to minimum"
			sug.SuggestedValue = value.Number(min)
			return sug, value.Number(min), true
		}
		if max, ok := kwNumber(subSchema, "maximum"); ok && curVal.Number() > max {
			sug.Suggestion = "clamp to maximum"
			sug.SuggestedValue = value.Number(max)
			return sug, value.Number(max), true
		}
	}

	if cfg.TruncateStrings && curVal.Kind() == value.KindString {
		if max, ok := kwNumber(subSchema, "maxLength"); ok {
			runes := []rune(curVal.String_())
			if len(runes) > int(max) {
				truncated := string(runes[:int(max)])
				sug.Suggestion = "truncate to maxLength"
				sug.SuggestedValue = value.String(truncated)
				return sug, value.String(truncated), true
			}
		}
	}

	if cfg.TruncateArrays && curVal.Kind() == value.KindArray {
		if max, ok := kwNumber(subSchema, "maxItems"); ok {
			items := curVal.Array()
			if len(items) > int(max) {
				truncated := value.Array(items[:int(max)]...)
				sug.Suggestion = "truncate to maxItems"
				sug.SuggestedValue = truncated
				return sug, truncated, true
			}
		}
	}

	if cfg.FixEnums && curVal.Kind() == value.KindString {
		if enumArr, ok := kwArray(subSchema, "enum"); ok {
			for _, member := range enumArr {
				if member.Kind() == value.KindString && strings.EqualFold(member.String_(), curVal.String_()) {
					sug.Suggestion = "snap to matching enum member"
					sug.SuggestedValue = member
					return sug, member, true
				}
			}
		}
	}

	if cfg.FixFormats && curVal.Kind() == value.KindString {
		if format, ok := kwString(subSchema, "format"); ok {
			if fixed, ok := fixFormatValue(format, curVal.String_()); ok {
				sug.Suggestion = "normalize to " + format + " format"
				sug.SuggestedValue = value.String(fixed)
				return sug, value.String(fixed), true
			}
		}
	}

	if cfg.CoerceTypes {
		if fixed, ok := coerceType(curVal, subSchema); ok {
			sug.Suggestion = "coerce value to expected type"
			sug.SuggestedValue = fixed
			return sug, fixed, true
		}
	}

	sug.Suggestion = "no applicable repair strategy"
	return sug, value.Value{}, false
}

// coerceType implements the coercion matrix: string<->number,
// string->boolean, number->string, string->integer. Array-of-one<->scalar
// conversions are explicitly NOT performed, per the matrix.
func coerceType(v, sc value.Value) (value.Value, bool) {
	types, ok := schemaTypes(sc)
	if !ok {
		return value.Value{}, false
	}
	wants := func(t string) bool {
		for _, x := range types {
			if x == t {
				return true
			}
		}
		return false
	}

	switch v.Kind() {
	case value.KindString:
		s := v.String_()
		if wants("integer") {
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				return value.Number(n), true
			}
		}
		if wants("number") {
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				return value.Number(n), true
			}
		}
		if wants("boolean") {
			if b, ok := parseBoolLoose(s); ok {
				return value.Bool(b), true
			}
		}
	case value.KindNumber:
		if wants("string") {
			str, _ := value.CanonicalString(v)
			return value.String(str), true
		}
	case value.KindBool:
		if wants("string") {
			str, _ := value.CanonicalString(v)
			return value.String(str), true
		}
	}
	return value.Value{}, false
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	default:
		return false, false
	}
}

func fixFormatValue(format, s string) (string, bool) {
	switch format {
	case "email":
		fixed := strings.ToLower(strings.TrimSpace(s))
		if fixed != s {
			return fixed, true
		}
	case "uuid":
		fixed := normalizeUUID(s)
		if fixed != "" && fixed != s {
			return fixed, true
		}
	}
	return "", false
}

func normalizeUUID(s string) string {
	hex := strings.ReplaceAll(strings.ToLower(s), "-", "")
	if len(hex) != 32 {
		return ""
	}
	for _, c := range hex {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return ""
		}
	}
	return hex[0:8] + "-" + hex[8:12] + "-" + hex[12:16] + "-" + hex[16:20] + "-" + hex[20:32]
}
