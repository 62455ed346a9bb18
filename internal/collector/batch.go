package collector

import (
	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/schema"
	"github.com/driftcode/llmparse/internal/stream"
	"github.com/driftcode/llmparse/internal/value"
)

// BatchCollector emits each newly completed value as soon as it is ready:
// every Poll call returns the batch of values that finished since the
// previous Poll, which may be empty when nothing new has arrived yet.
type BatchCollector struct {
	core      *stream.Core
	schema    value.Value
	repairCfg repairparse.Config
	validator *schema.Validator
	applyDefaults bool

	settled bool
	outcome stream.Outcome[[]value.Value]
}

func newBatchCollector(itemSchema value.Value, repairCfg repairparse.Config, limits stream.Limits, applyDefaults bool) *BatchCollector {
	return &BatchCollector{
		core:          stream.NewCore(limits),
		schema:        itemSchema,
		repairCfg:     repairCfg,
		validator:     schema.NewValidator(),
		applyDefaults: applyDefaults,
	}
}

// NewBatchCollector builds the plain batch collector variant (no defaults).
func NewBatchCollector(itemSchema value.Value, repairCfg repairparse.Config, limits stream.Limits) *BatchCollector {
	return newBatchCollector(itemSchema, repairCfg, limits, false)
}

func (c *BatchCollector) Append(chunk []byte) {
	if c.settled {
		return
	}
	c.core.Append(chunk)
}

// Poll drains every value that has become complete since the previous
// call and returns it as a batch. It never blocks; an empty, non-nil batch
// with ok:true signals "nothing new yet, keep polling."
func (c *BatchCollector) Poll() stream.Outcome[[]value.Value] {
	if c.settled {
		return c.outcome
	}
	if terminal, err := c.core.Terminal(); terminal {
		return c.settle(false, nil, err)
	}

	batch := []value.Value{}
	for {
		span, ok := c.core.NextValueSpan()
		if !ok {
			break
		}
		if lerr := c.core.CheckItemLimit(); lerr != nil {
			return c.settle(false, nil, lerr)
		}
		v, verr := parseAndValidate(span, c.repairCfg, c.schema, c.validator)
		if verr != nil {
			return c.settle(false, nil, verr)
		}
		if c.applyDefaults {
			v = schema.ApplyDefaults(v, c.schema)
		}
		c.core.CommitItem()
		batch = append(batch, v)
	}
	return stream.Outcome[[]value.Value]{Done: false, OK: true, Value: &batch}
}

// Close marks the stream finished; a final Poll-equivalent drain runs, and
// the terminal Outcome reports completion (or incompleteness, if the tail
// held an unfinished structure).
func (c *BatchCollector) Close() stream.Outcome[[]value.Value] {
	if c.settled {
		return c.outcome
	}
	c.core.Finish()
	last := c.Poll()
	if c.settled {
		return c.outcome
	}
	if c.core.HasUnfinishedStructure() {
		return c.settle(false, nil, schema.New(schema.KindParse, "$.stream.incomplete", "stream closed with an incomplete value"))
	}
	return c.settle(true, last.Value, nil)
}

func (c *BatchCollector) Reset() {
	c.core.Reset()
	c.settled = false
	c.outcome = stream.Outcome[[]value.Value]{}
}

func (c *BatchCollector) settle(ok bool, items *[]value.Value, err *schema.ValidationError) stream.Outcome[[]value.Value] {
	c.settled = true
	c.outcome = stream.Outcome[[]value.Value]{Done: true, OK: ok, Value: items, Error: err}
	return c.outcome
}
