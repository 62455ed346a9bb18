package llmparse

import (
	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/schema"
)

// ParseResult is the outcome of one repair-and-parse cycle: the decoded
// value, the textual image after pre-pass rewrites, and which repairs
// fired.
type ParseResult struct {
	Value    Value
	Fixed    string
	Metadata RepairMetadata
}

func fromInternalResult(r repairparse.Result) ParseResult {
	return ParseResult{Value: r.Value, Fixed: r.Fixed, Metadata: r.Metadata}
}

// ParseJSON extracts the first JSON candidate from text, applies cfg's
// configured repairs, and parses it. It does not validate against a
// schema; pair it with Validate or ValidateAll.
func ParseJSON(text string, cfg RepairConfig) (ParseResult, error) {
	r, err := repairparse.Parse(text, cfg)
	if err != nil {
		return ParseResult{}, err
	}
	return fromInternalResult(r), nil
}

// ParseAllJSON repeats ParseJSON's pipeline for every extracted candidate
// in text and returns one ParseResult per candidate that parsed
// successfully.
func ParseAllJSON(text string, cfg RepairConfig) ([]ParseResult, error) {
	results, err := repairparse.ParseAll(text, cfg)
	if err != nil {
		return nil, err
	}
	out := make([]ParseResult, len(results))
	for i, r := range results {
		out[i] = fromInternalResult(r)
	}
	return out, nil
}

// ParseJSONWithSchema parses text like ParseJSON, then validates the
// result against schemaValue in fail-fast mode.
func ParseJSONWithSchema(text string, schemaValue Value, cfg RepairConfig) (ParseResult, error) {
	r, err := ParseJSON(text, cfg)
	if err != nil {
		return ParseResult{}, err
	}
	if verr := Validate(r.Value, schemaValue); verr != nil {
		return ParseResult{}, verr
	}
	return r, nil
}

// ParseJSONWithDefaults parses text, applies the schema's default values
// to any missing properties, and validates the resulting value.
func ParseJSONWithDefaults(text string, schemaValue Value, cfg RepairConfig) (ParseResult, error) {
	r, err := ParseJSON(text, cfg)
	if err != nil {
		return ParseResult{}, err
	}
	r.Value = schema.ApplyDefaults(r.Value, schemaValue)
	if verr := Validate(r.Value, schemaValue); verr != nil {
		return ParseResult{}, verr
	}
	return r, nil
}

// ApplyDefaults fills v's missing object properties from schemaValue's
// `default` keywords, bottom-up, without overwriting any key already
// present.
func ApplyDefaults(v, schemaValue Value) Value {
	return schema.ApplyDefaults(v, schemaValue)
}
