package schema

import (
	"encoding/json"

	jsonschemav6 "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/driftcode/llmparse/internal/value"
)

// Lint compiles sc against the JSON-Schema 2020-12 meta-schema using
// santhosh-tekuri/jsonschema, catching malformed schema documents (bad
// $ref targets, keywords given the wrong JSON type, etc.) before the
// custom walker in this package ever runs against real data. It does not
// replace the walker; the dialects disagree on unknown-keyword handling
// and on the bespoke path/pointer error shape this package contracts for,
// so routine instance validation still goes through Validator.
func Lint(sc value.Value) *ValidationError {
	raw := value.Serialize(sc)

	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return New(KindSchema, "$", "schema is not representable as JSON: %v", err)
	}

	compiler := jsonschemav6.NewCompiler()
	const resourceURL = "llmparse://schema"
	if err := compiler.AddResource(resourceURL, doc); err != nil {
		return New(KindSchema, "$", "schema failed meta-schema validation: %v", err)
	}
	if _, err := compiler.Compile(resourceURL); err != nil {
		return New(KindSchema, "$", "schema failed to compile: %v", err)
	}
	return nil
}
