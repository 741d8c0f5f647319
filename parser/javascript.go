package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

type JavaScriptParser struct {
	BaseParser
}

func NewJavaScriptParser() (*JavaScriptParser, error) {
	parser := sitter.NewParser()
	language := javascript.GetLanguage()
	parser.SetLanguage(language)

	return &JavaScriptParser{
		BaseParser: BaseParser{
			parser:   parser,
			language: language,
			langName: "javascript",
		},
	}, nil
}

func (p *JavaScriptParser) Close() {
}

func (p *JavaScriptParser) ParseFile(filePath string) (*ParseResult, error) {
	return p.ParseFileGeneric(filePath)
}

func (p *JavaScriptParser) ParseSource(source []byte, filePath string) (*ParseResult, error) {
	return p.ParseSourceGeneric(source, filePath)
}

// ExtractCalls returns every call expression in the tree, in document order.
// Document order means an outer call is seen before calls nested in its arguments.
func (p *JavaScriptParser) ExtractCalls(node *sitter.Node, source []byte) []*sitter.Node {
	var calls []*sitter.Node

	WalkAST(node, source, func(n *sitter.Node) {
		if n.Type() == "call_expression" {
			calls = append(calls, n)
		}
	})

	return calls
}
