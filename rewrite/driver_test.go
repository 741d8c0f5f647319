package rewrite

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/go-internal/txtar"
)

// Each fixture holds an input.js and the expected want.js after one rewrite
// pass. The pass must also be idempotent: rewriting its own output changes
// nothing.
func TestRewriteFixtures(t *testing.T) {
	fixtures, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, fixture := range fixtures {
		name := strings.TrimSuffix(filepath.Base(fixture), ".txtar")
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(fixture)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var input, want []byte
			for _, file := range archive.Files {
				switch file.Name {
				case "input.js":
					input = file.Data
				case "want.js":
					want = file.Data
				}
			}
			if input == nil || want == nil {
				t.Fatalf("fixture %s must contain input.js and want.js", fixture)
			}

			rewriter := &Rewriter{}
			result, err := rewriter.RewriteSource(input, "input.js")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(string(want), string(result.Source)); diff != "" {
				t.Errorf("rewrite mismatch (-want +got):\n%s", diff)
			}

			again, err := rewriter.RewriteSource(result.Source, "input.js")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if again.Changed {
				t.Errorf("rewrite is not idempotent, second pass produced:\n%s", again.Source)
			}
		})
	}
}

func TestRewriteSource_NoChange(t *testing.T) {
	src := []byte(`
function f(a = 1) {}
f(2);
`)
	result, err := (&Rewriter{}).RewriteSource(src, "test.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Changed {
		t.Errorf("expected no change, got:\n%s", result.Source)
	}
	if result.CallsTrimmed != 0 || result.ArgsRemoved != 0 {
		t.Errorf("expected zero counts, got %d calls / %d args",
			result.CallsTrimmed, result.ArgsRemoved)
	}
}

func TestRewriteSource_Counts(t *testing.T) {
	src := []byte(`
function f(a = 1, b = 2) {}
f(1, 2);
f(5, 2);
`)
	result, err := (&Rewriter{}).RewriteSource(src, "test.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected a change")
	}
	if result.CallsTrimmed != 2 {
		t.Errorf("expected 2 calls trimmed, got %d", result.CallsTrimmed)
	}
	if result.ArgsRemoved != 3 {
		t.Errorf("expected 3 arguments removed, got %d", result.ArgsRemoved)
	}
}

func TestRewriteSource_ExtraBuiltins(t *testing.T) {
	src := []byte(`
function debug(level = 0) {}
debug(0);
`)
	rewriter := &Rewriter{ExtraBuiltins: []string{"debug"}}
	result, err := rewriter.RewriteSource(src, "test.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Changed {
		t.Errorf("expected configured builtin to be left alone, got:\n%s", result.Source)
	}

	result, err = (&Rewriter{}).RewriteSource(src, "test.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Changed {
		t.Error("expected call to be trimmed without the builtin override")
	}
}

func TestRewriteSource_TrailingComma(t *testing.T) {
	src := []byte(`
function f(a, b = 2) {}
f(1, 2,);
`)
	result, err := (&Rewriter{}).RewriteSource(src, "test.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(result.Source), "f(1);") {
		t.Errorf("expected dangling comma to be removed, got:\n%s", result.Source)
	}
}

func TestRewriteSource_UnsupportedFile(t *testing.T) {
	if _, err := (&Rewriter{}).RewriteSource([]byte("x = 1"), "test.py"); err == nil {
		t.Error("expected error for unsupported file type")
	}
}
