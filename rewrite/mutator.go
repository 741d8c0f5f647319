package rewrite

import (
	"sort"

	"github.com/hannajonsd/trimdefaults/rule"
)

// Edit is a byte-range deletion against the original source.
type Edit struct {
	Start uint32
	End   uint32
}

// Mutator accumulates argument deletions for one file and applies them in a
// single splice pass.
type Mutator struct {
	edits []Edit
}

// RemoveArgumentAt deletes the argument at pos from the call. The span runs
// from the end of the previous argument (eating the separating comma) or,
// for position 0, from the argument's own start. Callers remove positions in
// descending order so spans never invalidate each other.
func (m *Mutator) RemoveArgumentAt(call *rule.Call, pos int) {
	if pos < 0 || pos >= len(call.Args) {
		return
	}

	arg := call.Args[pos].Expr.Node
	start := arg.StartByte()
	if pos > 0 {
		start = call.Args[pos-1].Expr.Node.EndByte()
	}
	m.edits = append(m.edits, Edit{Start: start, End: arg.EndByte()})
}

// Apply splices all recorded deletions out of source and returns the result.
// Source is not modified. Edits nested inside another edit are dropped: they
// belong to calls that live inside an argument already being deleted.
func (m *Mutator) Apply(source []byte) []byte {
	if len(m.edits) == 0 {
		return source
	}

	edits := dropNested(m.edits)
	for i := range edits {
		edits[i].End = extendOverDanglingComma(source, edits[i].End)
	}
	edits = mergeAdjacent(edits)

	sort.Slice(edits, func(i, j int) bool { return edits[i].Start > edits[j].Start })

	out := make([]byte, len(source))
	copy(out, source)
	for _, e := range edits {
		out = append(out[:e.Start], out[e.End:]...)
	}
	return out
}

// Len returns the number of recorded deletions.
func (m *Mutator) Len() int {
	return len(m.edits)
}

func dropNested(edits []Edit) []Edit {
	var result []Edit
	for i, e := range edits {
		nested := false
		for j, outer := range edits {
			if i == j {
				continue
			}
			if outer.Start <= e.Start && e.End <= outer.End && (outer.Start < e.Start || outer.End > e.End) {
				nested = true
				break
			}
		}
		if !nested {
			result = append(result, e)
		}
	}
	return result
}

// extendOverDanglingComma skims trailing whitespace and commas left between a
// deleted suffix and the closing parenthesis, so f(1, 2,) trimmed at position
// 1 becomes f(1) rather than f(1,).
func extendOverDanglingComma(source []byte, end uint32) uint32 {
	p := end
	for int(p) < len(source) {
		switch source[p] {
		case ' ', '\t', '\r', '\n', ',':
			p++
		case ')':
			return p
		default:
			return end
		}
	}
	return end
}

func mergeAdjacent(edits []Edit) []Edit {
	if len(edits) < 2 {
		return edits
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].Start < edits[j].Start })

	merged := []Edit{edits[0]}
	for _, e := range edits[1:] {
		last := &merged[len(merged)-1]
		if e.Start <= last.End {
			if e.End > last.End {
				last.End = e.End
			}
			continue
		}
		merged = append(merged, e)
	}
	return merged
}
