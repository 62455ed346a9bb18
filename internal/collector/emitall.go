package collector

import (
	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/schema"
	"github.com/driftcode/llmparse/internal/stream"
	"github.com/driftcode/llmparse/internal/value"
)

// EmitAllCollector absorbs every complete value and only emits the full
// array once Close is called.
type EmitAllCollector struct {
	core      *stream.Core
	schema    value.Value
	repairCfg repairparse.Config
	validator *schema.Validator

	items   []value.Value
	settled bool
	outcome stream.Outcome[[]value.Value]
}

func NewEmitAllCollector(itemSchema value.Value, repairCfg repairparse.Config, limits stream.Limits) *EmitAllCollector {
	return &EmitAllCollector{
		core:      stream.NewCore(limits),
		schema:    itemSchema,
		repairCfg: repairCfg,
		validator: schema.NewValidator(),
	}
}

func (c *EmitAllCollector) Append(chunk []byte) {
	if c.settled {
		return
	}
	c.core.Append(chunk)
	c.drain()
}

func (c *EmitAllCollector) drain() {
	if c.settled {
		return
	}
	if terminal, err := c.core.Terminal(); terminal {
		c.settle(false, nil, err)
		return
	}
	for {
		span, ok := c.core.NextValueSpan()
		if !ok {
			return
		}
		if lerr := c.core.CheckItemLimit(); lerr != nil {
			c.settle(false, nil, lerr)
			return
		}
		v, verr := parseAndValidate(span, c.repairCfg, c.schema, c.validator)
		if verr != nil {
			c.settle(false, nil, verr)
			return
		}
		c.core.CommitItem()
		c.items = append(c.items, v)
	}
}

// Close requires that every buffered complete value has already validated
// successfully; it emits the accumulated array as the terminal Outcome.
func (c *EmitAllCollector) Close() stream.Outcome[[]value.Value] {
	if c.settled {
		return c.outcome
	}
	c.core.Finish()
	c.drain()
	if c.settled {
		return c.outcome
	}
	if c.core.HasUnfinishedStructure() {
		return c.settle(false, nil, schema.New(schema.KindParse, "$.stream.incomplete", "stream closed with an incomplete value"))
	}
	items := c.items
	return c.settle(true, &items, nil)
}

func (c *EmitAllCollector) Reset() {
	c.core.Reset()
	c.items = nil
	c.settled = false
	c.outcome = stream.Outcome[[]value.Value]{}
}

func (c *EmitAllCollector) settle(ok bool, items *[]value.Value, err *schema.ValidationError) stream.Outcome[[]value.Value] {
	c.settled = true
	c.outcome = stream.Outcome[[]value.Value]{Done: true, OK: ok, Value: items, Error: err}
	return c.outcome
}
