// Package collector implements the four streaming collector variants
// layered over stream.Core: a parser that yields exactly one value, a
// collector that yields an array only after close, a batch collector that
// yields each newly completed value as it arrives, and a validated batch
// collector that additionally applies schema defaults.
package collector

import (
	"github.com/driftcode/llmparse/internal/repairparse"
	"github.com/driftcode/llmparse/internal/schema"
	"github.com/driftcode/llmparse/internal/stream"
	"github.com/driftcode/llmparse/internal/value"
)

// EmitFirstParser absorbs chunks until the first complete top-level value
// parses and validates, then stays in that terminal state.
type EmitFirstParser struct {
	core      *stream.Core
	schema    value.Value
	repairCfg repairparse.Config
	validator *schema.Validator
	settled   bool
	outcome   stream.Outcome[value.Value]
}

func NewEmitFirstParser(itemSchema value.Value, repairCfg repairparse.Config, limits stream.Limits) *EmitFirstParser {
	return &EmitFirstParser{
		core:      stream.NewCore(limits),
		schema:    itemSchema,
		repairCfg: repairCfg,
		validator: schema.NewValidator(),
	}
}

func (p *EmitFirstParser) Append(chunk []byte) {
	if p.settled {
		return
	}
	p.core.Append(chunk)
}

// Poll attempts to complete one value. Once settled (value emitted, parse
// failure, or limit violation), every subsequent call returns the same
// Outcome.
func (p *EmitFirstParser) Poll() stream.Outcome[value.Value] {
	if p.settled {
		return p.outcome
	}
	if terminal, err := p.core.Terminal(); terminal {
		return p.settle(false, nil, err)
	}

	span, ok := p.core.NextValueSpan()
	if !ok {
		if p.core.Finished() && p.core.HasUnfinishedStructure() {
			return p.settle(false, nil, schema.New(schema.KindParse, "$.stream.incomplete", "stream finished with an incomplete value"))
		}
		return stream.Outcome[value.Value]{}
	}

	v, verr := parseAndValidate(span, p.repairCfg, p.schema, p.validator)
	if verr != nil {
		return p.settle(false, nil, verr)
	}
	return p.settle(true, &v, nil)
}

func (p *EmitFirstParser) Finish() { p.core.Finish() }

func (p *EmitFirstParser) Reset() {
	p.core.Reset()
	p.settled = false
	p.outcome = stream.Outcome[value.Value]{}
}

func (p *EmitFirstParser) settle(ok bool, v *value.Value, err *schema.ValidationError) stream.Outcome[value.Value] {
	p.settled = true
	p.outcome = stream.Outcome[value.Value]{Done: true, OK: ok, Value: v, Error: err}
	return p.outcome
}
