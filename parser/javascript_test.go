package parser

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
)

func TestJavaScriptParser_ParseSource_Empty(t *testing.T) {
	p, err := NewJavaScriptParser()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := p.ParseSource([]byte(""), "empty.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Language != "javascript" {
		t.Errorf("expected language 'javascript', got %q", result.Language)
	}
	if result.FilePath != "empty.js" {
		t.Errorf("expected filePath 'empty.js', got %q", result.FilePath)
	}
	if result.Tree.RootNode() == nil {
		t.Error("expected a root node")
	}
}

func TestJavaScriptParser_ExtractCalls_DocumentOrder(t *testing.T) {
	p, err := NewJavaScriptParser()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source := []byte(`
function wrap(x) { return x; }
wrap(inner(1));
other();
`)
	result, err := p.ParseSource(source, "calls.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := p.ExtractCalls(result.Tree.RootNode(), source)
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}

	// An outer call must come before calls nested in its arguments.
	texts := make([]string, len(calls))
	for i, call := range calls {
		texts[i] = NodeText(call, source)
	}
	if texts[0] != "wrap(inner(1))" || texts[1] != "inner(1)" || texts[2] != "other()" {
		t.Errorf("unexpected call order: %v", texts)
	}
}

func TestCreateParser(t *testing.T) {
	for _, path := range []string{"a.js", "b.jsx", "c.mjs", "d.cjs", "UPPER.JS"} {
		p, err := CreateParser(path)
		if err != nil {
			t.Errorf("expected parser for %s, got error: %v", path, err)
			continue
		}
		p.Close()
	}

	if _, err := CreateParser("script.py"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestSupportedExtension(t *testing.T) {
	for ext, want := range map[string]bool{
		".js":  true,
		".JSX": true,
		".mjs": true,
		".py":  false,
		".go":  false,
		"":     false,
	} {
		if got := SupportedExtension(ext); got != want {
			t.Errorf("SupportedExtension(%q) = %v, want %v", ext, got, want)
		}
	}
}

func TestExtractStringValue(t *testing.T) {
	p, err := NewJavaScriptParser()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source := []byte(`const s = 'hello';`)
	result, err := p.ParseSource(source, "str.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var value string
	WalkAST(result.Tree.RootNode(), source, func(n *sitter.Node) {
		if n.Type() == "string" {
			value = ExtractStringValue(n, source)
		}
	})
	if value != "hello" {
		t.Errorf("expected 'hello', got %q", value)
	}
}
