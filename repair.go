package llmparse

import "github.com/driftcode/llmparse/internal/schema"

// RepairSuggestionConfig selects which auto-fix strategies ParseAndRepair
// and RepairSuggestions are allowed to apply.
type RepairSuggestionConfig = schema.RepairConfig

// RepairSuggestion describes one attempted fix for a single validation
// error.
type RepairSuggestion = schema.Suggestion

// RepairResult is the outcome of a repair-synthesis pass.
type RepairResult = schema.RepairResult

// RepairSuggestions validates v against schemaValue in collect-all mode
// and attempts a local fix for each error using cfg's enabled strategies,
// returning the best-effort repaired value alongside the suggestions that
// produced it.
func RepairSuggestions(v, schemaValue Value, cfg RepairSuggestionConfig) RepairResult {
	return NewValidator().RepairSuggestions(v, schemaValue, cfg)
}

// ParseAndRepair parses text per parseCfg, then runs RepairSuggestions
// against schemaValue using repairCfg.
func ParseAndRepair(text string, schemaValue Value, parseCfg RepairConfig, repairCfg RepairSuggestionConfig) (RepairResult, error) {
	parsed, err := ParseJSON(text, parseCfg)
	if err != nil {
		return RepairResult{}, err
	}
	return RepairSuggestions(parsed.Value, schemaValue, repairCfg), nil
}
