package collector

import (
	"github.com/driftcode/llmparse/internal/adapters/sqladapter"
	"github.com/driftcode/llmparse/internal/schema"
	"github.com/driftcode/llmparse/internal/stream"
)

// SQLStreamParser segments chunked SQL text into `;`-terminated statements
// and validates the first one against a SqlValidationSchema, then stays
// settled — the degenerate, single-statement instance of the streaming
// core described for SQL.
type SQLStreamParser struct {
	core    *stream.SQLCore
	cfg     sqladapter.ValidationSchema
	settled bool
	outcome stream.Outcome[sqladapter.Summary]
}

func NewSQLStreamParser(cfg sqladapter.ValidationSchema, limits stream.Limits) *SQLStreamParser {
	return &SQLStreamParser{core: stream.NewSQLCore(limits), cfg: cfg}
}

func (p *SQLStreamParser) Append(chunk []byte) {
	if p.settled {
		return
	}
	p.core.Append(chunk)
}

func (p *SQLStreamParser) Finish() { p.core.Finish() }

func (p *SQLStreamParser) Poll() stream.Outcome[sqladapter.Summary] {
	if p.settled {
		return p.outcome
	}
	stmt, ok := p.core.NextStatement()
	if !ok {
		return stream.Outcome[sqladapter.Summary]{}
	}
	summary, verr := sqladapter.Validate(string(stmt), p.cfg)
	if verr != nil {
		return p.settle(false, nil, verr)
	}
	p.core.CommitItem()
	return p.settle(true, &summary, nil)
}

func (p *SQLStreamParser) Reset() {
	p.core.Reset()
	p.settled = false
	p.outcome = stream.Outcome[sqladapter.Summary]{}
}

func (p *SQLStreamParser) settle(ok bool, summary *sqladapter.Summary, err *schema.ValidationError) stream.Outcome[sqladapter.Summary] {
	p.settled = true
	p.outcome = stream.Outcome[sqladapter.Summary]{Done: true, OK: ok, Value: summary, Error: err}
	return p.outcome
}
