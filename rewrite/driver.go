package rewrite

import (
	"bytes"
	"fmt"

	"github.com/hannajonsd/trimdefaults/parser"
	"github.com/hannajonsd/trimdefaults/rule"
	"github.com/hannajonsd/trimdefaults/signature"
)

// Result is the outcome of one rewrite pass over a single file.
type Result struct {
	Source       []byte
	Changed      bool
	CallsTrimmed int
	ArgsRemoved  int
}

// Rewriter drives one pass of trailing default argument elimination per file:
// every call expression is fed through gate, resolver and planner exactly
// once, and the planned deletions are applied as byte splices at the end.
type Rewriter struct {
	// ExtraBuiltins are additional names treated as engine-provided and
	// therefore never analyzed.
	ExtraBuiltins []string
}

// RewriteFile parses and rewrites the file at path, returning the new source
// without writing anything back.
func (r *Rewriter) RewriteFile(filePath string) (*Result, error) {
	fileParser, err := parser.CreateParser(filePath)
	if err != nil {
		return nil, err
	}
	defer fileParser.Close()

	parseResult, err := fileParser.ParseFile(filePath)
	if err != nil {
		return nil, err
	}
	defer parseResult.Tree.Close()

	return r.rewrite(fileParser, parseResult)
}

// RewriteSource rewrites in-memory source. The file path only selects the
// grammar and labels errors.
func (r *Rewriter) RewriteSource(source []byte, filePath string) (*Result, error) {
	fileParser, err := parser.CreateParser(filePath)
	if err != nil {
		return nil, err
	}
	defer fileParser.Close()

	parseResult, err := fileParser.ParseSource(source, filePath)
	if err != nil {
		return nil, err
	}
	defer parseResult.Tree.Close()

	return r.rewrite(fileParser, parseResult)
}

func (r *Rewriter) rewrite(fileParser parser.Parser, parseResult *parser.ParseResult) (*Result, error) {
	source := parseResult.Source
	root := parseResult.Tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("no syntax tree for %s", parseResult.FilePath)
	}

	table := signature.Collect(root, source)
	table.AddBuiltins(r.ExtraBuiltins)
	resolver := signature.NewResolver(table)
	mutator := &Mutator{}

	result := &Result{}
	for _, node := range fileParser.ExtractCalls(root, source) {
		call := rule.ClassifyCall(node, source, table)
		if !rule.Eligible(call, table) {
			continue
		}

		plan := rule.Plan(call, resolver.ResolveDefaults(call))
		if len(plan) == 0 {
			continue
		}

		// Descending order keeps each span's neighbor argument intact
		// while later positions are peeled off.
		for i := len(plan) - 1; i >= 0; i-- {
			mutator.RemoveArgumentAt(call, plan[i])
		}
		result.CallsTrimmed++
		result.ArgsRemoved += len(plan)
	}

	result.Source = mutator.Apply(source)
	result.Changed = !bytes.Equal(result.Source, source)
	return result, nil
}
