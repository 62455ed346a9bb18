// Package markdownadapter is the external Markdown collaborator described
// by the core's generic interface: not a value-tree parser like the other
// formats, but a structural summary record. The KV, TOML, and YAML
// collaborators convert into the JSON-like value tree; Markdown returns
// its own summary record instead.
package markdownadapter

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/driftcode/llmparse/internal/schema"
)

// Summary is the structural record produced for one Markdown document.
type Summary struct {
	HeadingCount   int
	Headings       []string
	CodeBlockLangs []string
	HasTable       bool
	LinkCount      int
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Summarize walks text's Markdown AST and reports its structure. Parse
// failures are not expected from goldmark's permissive parser; malformed
// input simply yields a sparser Summary, never an error, which is why this
// collaborator's contract (unlike the value-tree ones) has no error
// return for the common case.
func Summarize(text_ string) (Summary, *schema.ValidationError) {
	reader := text.NewReader([]byte(text_))
	doc := md.Parser().Parse(reader)

	var s Summary
	source := []byte(text_)
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			s.HeadingCount++
			s.Headings = append(s.Headings, string(node.Text(source)))
		case *ast.FencedCodeBlock:
			lang := string(node.Language(source))
			s.CodeBlockLangs = append(s.CodeBlockLangs, lang)
		case *ast.Link:
			s.LinkCount++
		case *extast.Table:
			s.HasTable = true
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Summary{}, schema.New(schema.KindParse, "$", "markdown walk failed: %v", err)
	}
	return s, nil
}

// ExtractFirstFence returns the content of the first fenced code block
// whose language tag matches lang (case-insensitive), or ok=false.
func ExtractFirstFence(text_, lang string) (content string, ok bool) {
	reader := text.NewReader([]byte(text_))
	doc := md.Parser().Parse(reader)
	source := []byte(text_)

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || ok {
			return ast.WalkContinue, nil
		}
		block, isFence := n.(*ast.FencedCodeBlock)
		if !isFence {
			return ast.WalkContinue, nil
		}
		if !strings.EqualFold(string(block.Language(source)), lang) {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < block.Lines().Len(); i++ {
			line := block.Lines().At(i)
			b.Write(line.Value(source))
		}
		content, ok = b.String(), true
		return ast.WalkStop, nil
	})
	return content, ok
}
