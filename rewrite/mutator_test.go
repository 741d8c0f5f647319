package rewrite

import (
	"testing"
)

func TestApply_NoEdits(t *testing.T) {
	source := []byte("f(1, 2);")
	out := (&Mutator{}).Apply(source)
	if string(out) != string(source) {
		t.Errorf("expected source unchanged, got %q", out)
	}
}

func TestApply_SplicesDescending(t *testing.T) {
	//             0123456789
	source := []byte("f(1, 2, 3)")
	m := &Mutator{edits: []Edit{
		{Start: 3, End: 6}, // ", 2"
		{Start: 6, End: 9}, // ", 3"
	}}
	if got := string(m.Apply(source)); got != "f(1)" {
		t.Errorf("expected %q, got %q", "f(1)", got)
	}
}

func TestApply_DropsNestedEdits(t *testing.T) {
	source := []byte("g(2, f(1))")
	m := &Mutator{edits: []Edit{
		{Start: 3, End: 9}, // ", f(1)" minus the closing paren
		{Start: 7, End: 8}, // the "1" inside, nested in the span above
	}}
	if got := string(m.Apply(source)); got != "g(2)" {
		t.Errorf("expected %q, got %q", "g(2)", got)
	}
}

func TestExtendOverDanglingComma(t *testing.T) {
	tests := []struct {
		source string
		end    uint32
		want   uint32
	}{
		{"f(1, 2,)", 6, 7},   // skim the trailing comma up to ")"
		{"f(1, 2, )", 6, 8},  // comma and space
		{"f(1, 2)", 6, 6},    // nothing to skim
		{"f(1, 2, 3)", 6, 6}, // next argument follows, do not extend
	}
	for _, tt := range tests {
		if got := extendOverDanglingComma([]byte(tt.source), tt.end); got != tt.want {
			t.Errorf("extendOverDanglingComma(%q, %d) = %d, want %d",
				tt.source, tt.end, got, tt.want)
		}
	}
}

func TestMergeAdjacent(t *testing.T) {
	edits := mergeAdjacent([]Edit{
		{Start: 6, End: 9},
		{Start: 3, End: 6},
		{Start: 12, End: 14},
	})
	if len(edits) != 2 {
		t.Fatalf("expected 2 merged edits, got %d: %v", len(edits), edits)
	}
	if edits[0].Start != 3 || edits[0].End != 9 {
		t.Errorf("expected merged span {3 9}, got %v", edits[0])
	}
	if edits[1].Start != 12 || edits[1].End != 14 {
		t.Errorf("expected span {12 14}, got %v", edits[1])
	}
}
