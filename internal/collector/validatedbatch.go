package collector

import (
	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/stream"
	"github.com/driftcode/llmparse/internal/value"
)

// ValidatedBatchCollector behaves exactly like BatchCollector, except each
// emitted value has schema defaults applied before being handed back.
type ValidatedBatchCollector struct {
	*BatchCollector
}

func NewValidatedBatchCollector(itemSchema value.Value, repairCfg repairparse.Config, limits stream.Limits) *ValidatedBatchCollector {
	return &ValidatedBatchCollector{BatchCollector: newBatchCollector(itemSchema, repairCfg, limits, true)}
}
