package repairparse

import (
	"math"
	"strconv"

	"github.com/driftcode/llmparse/internal/extractor"
	"github.com/driftcode/llmparse/internal/lexer"
	"github.com/driftcode/llmparse/internal/value"
)

// Result is the outcome of one Parse call: the decoded value, the fixed
// text image after pre-pass rewrites (not a reserialization of the value),
// and the metadata trace of which repairs fired.
type Result struct {
	Value    value.Value
	Fixed    string
	Metadata Metadata
}

// Parse runs the full pipeline over text: extract the first
// JSON candidate, apply the configured pre-passes in order, then parse.
func Parse(text string, cfg Config) (Result, error) {
	c := extractor.Candidate{Text: text}
	if cands := extractor.ExtractJSON(text); len(cands) > 0 {
		c = cands[0]
	}
	fixed, meta := applyPrePasses(c.Text, cfg)
	meta.ExtractedFromFence = c.FromFence
	v, err := parseOne(fixed, cfg, &meta)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Fixed: fixed, Metadata: meta}, nil
}

// ParseAll repeats extraction+repair+parse for every extracted candidate.
// A candidate that fails to parse is skipped rather than aborting the
// whole batch; only when no candidate parses is the first error returned.
func ParseAll(text string, cfg Config) ([]Result, error) {
	cands := extractor.ExtractJSON(text)
	fromFence := true
	if len(cands) == 0 {
		cands = []extractor.Candidate{{Text: text, FromFence: false}}
		fromFence = false
	}

	var results []Result
	var firstErr error
	for _, c := range cands {
		fixed, meta := applyPrePasses(c.Text, cfg)
		meta.ExtractedFromFence = c.FromFence && fromFence
		v, err := parseOne(fixed, cfg, &meta)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results = append(results, Result{Value: v, Fixed: fixed, Metadata: meta})
	}
	if len(results) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func applyPrePasses(text string, cfg Config) (string, Metadata) {
	var meta Metadata
	meta.DuplicateKeyPolicy = cfg.DuplicateKeyPolicy

	if cfg.FixSmartQuotes {
		if out, applied := fixSmartQuotes(text); applied {
			text, meta.FixedSmartQuotes = out, true
		}
	}
	if cfg.StripJSONComments {
		if out, applied := stripJSONComments(text); applied {
			text, meta.StrippedComments = out, true
		}
	}
	if cfg.ReplacePythonLiterals {
		if out, applied := replacePythonLiterals(text); applied {
			text, meta.ReplacedPythonLiterals = out, true
		}
	}
	if cfg.ConvertKVObjectToJSON {
		if out, applied := convertKVObjectToJSON(text); applied {
			text, meta.ConvertedKVObject = out, true
		}
	}
	if cfg.QuoteUnquotedKeys {
		if out, applied := quoteUnquotedKeys(text); applied {
			text, meta.QuotedUnquotedKeys = out, true
		}
	}
	if cfg.DropTrailingCommas {
		if out, applied := dropTrailingCommas(text); applied {
			text, meta.DroppedTrailingCommas = out, true
		}
	}
	if cfg.AllowSingleQuotes {
		if out, applied := allowSingleQuotes(text); applied {
			text, meta.AllowedSingleQuotes = out, true
		}
	}
	return text, meta
}

// parser is a one-shot recursive-descent consumer over a token stream.
type parser struct {
	toks []lexer.Token
	pos  int
	cfg  Config
	meta *Metadata
}

func parseOne(text string, cfg Config, meta *Metadata) (value.Value, error) {
	opts := lexer.Options{
		AllowIdentifiers:     false,
		AllowComments:        false,
		AllowExtendedNumbers: cfg.ReplacePythonLiterals,
	}
	lx := lexer.New([]byte(text), opts)

	var toks []lexer.Token
	for {
		t, err := lx.Next()
		if err != nil {
			return value.Value{}, errAt("$", "%s", err.Error())
		}
		if t.Kind == lexer.Whitespace || t.Kind == lexer.LineComment || t.Kind == lexer.BlockComment {
			continue
		}
		toks = append(toks, t)
		if t.Kind == lexer.EOF {
			break
		}
	}

	p := &parser{toks: toks, cfg: cfg, meta: meta}
	v, err := p.parseValue("$")
	if err != nil {
		return value.Value{}, err
	}
	if p.cur().Kind != lexer.EOF {
		return value.Value{}, errAt("$", "unexpected trailing content")
	}
	return v, nil
}

func (p *parser) cur() lexer.Token { return p.toks[p.pos] }

func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseValue(path string) (value.Value, error) {
	t := p.cur()
	switch t.Kind {
	case lexer.BraceOpen:
		return p.parseObject(path)
	case lexer.BracketOpen:
		return p.parseArray(path)
	case lexer.String:
		p.advance()
		return value.String(t.Value), nil
	case lexer.Number:
		p.advance()
		n, err := parseNumber(t.Text)
		if err != nil {
			return value.Value{}, errAt(path, "invalid number literal %q", t.Text)
		}
		return value.Number(n), nil
	case lexer.True:
		p.advance()
		return value.Bool(true), nil
	case lexer.False:
		p.advance()
		return value.Bool(false), nil
	case lexer.Null:
		p.advance()
		return value.Null, nil
	default:
		return value.Value{}, errAt(path, "expected a value, found %s", t.Kind)
	}
}

func parseNumber(text string) (float64, error) {
	switch text {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(text, 64)
}

func (p *parser) parseArray(path string) (value.Value, error) {
	p.advance() // consume '['
	var items []value.Value
	if p.cur().Kind == lexer.BracketClose {
		p.advance()
		return value.Array(items...), nil
	}
	idx := 0
	for {
		elemPath := path + "[" + strconv.Itoa(idx) + "]"
		v, err := p.parseValue(elemPath)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
		idx++

		switch p.cur().Kind {
		case lexer.Comma:
			p.advance()
			if p.cur().Kind == lexer.BracketClose {
				return value.Value{}, errAt(path, "trailing comma before ']'")
			}
			continue
		case lexer.BracketClose:
			p.advance()
			return value.Array(items...), nil
		default:
			return value.Value{}, errAt(path, "expected ',' or ']', found %s", p.cur().Kind)
		}
	}
}

func (p *parser) parseObject(path string) (value.Value, error) {
	p.advance() // consume '{'
	obj := value.NewObject()
	if p.cur().Kind == lexer.BraceClose {
		p.advance()
		return value.ObjectOf(obj), nil
	}
	for {
		keyTok := p.cur()
		if keyTok.Kind != lexer.String {
			return value.Value{}, errAt(path, "expected string key, found %s", keyTok.Kind)
		}
		p.advance()
		key := keyTok.Value

		if p.cur().Kind != lexer.Colon {
			return value.Value{}, errAt(path, "expected ':' after key %q", key)
		}
		p.advance()

		childPath := appendKeyPath(path, key)
		v, err := p.parseValue(childPath)
		if err != nil {
			return value.Value{}, err
		}

		if obj.Has(key) {
			switch p.cfg.DuplicateKeyPolicy {
			case ErrorOnDuplicate:
				return value.Value{}, errAt("$."+key, "duplicate key %q", key)
			case LastWins:
				obj.Set(key, v)
				p.meta.DuplicateKeyCount++
			default: // FirstWins
				p.meta.DuplicateKeyCount++
			}
		} else {
			obj.Set(key, v)
		}

		switch p.cur().Kind {
		case lexer.Comma:
			p.advance()
			if p.cur().Kind == lexer.BraceClose {
				return value.Value{}, errAt(path, "trailing comma before '}'")
			}
			continue
		case lexer.BraceClose:
			p.advance()
			return value.ObjectOf(obj), nil
		default:
			return value.Value{}, errAt(path, "expected ',' or '}', found %s", p.cur().Kind)
		}
	}
}

func appendKeyPath(base, key string) string {
	if isPlainIdent(key) {
		return base + "." + key
	}
	return base + "[\"" + key + "\"]"
}

func isPlainIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			continue
		}
		if i > 0 && c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}
