package collector

import (
	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/schema"
	"github.com/driftcode/llmparse/internal/value"
)

// asValidationError unwraps the error interface returned by
// Validator.Validate back to the concrete type every caller in this
// package needs for its path/pointer/limit fields.
func asValidationError(err error) *schema.ValidationError {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*schema.ValidationError); ok {
		return ve
	}
	return schema.New(schema.KindType, "$", "%s", err.Error())
}

// parseAndValidate runs one repair-parse-validate cycle over a completed
// span, used identically by every collector variant.
func parseAndValidate(span []byte, repairCfg repairparse.Config, itemSchema value.Value, validator *schema.Validator) (value.Value, *schema.ValidationError) {
	result, err := repairparse.Parse(string(span), repairCfg)
	if err != nil {
		return value.Value{}, schema.New(schema.KindParse, "$", "%s", err.Error())
	}
	if verr := validator.Validate(result.Value, itemSchema); verr != nil {
		return value.Value{}, asValidationError(verr)
	}
	return result.Value, nil
}
