package rule

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
	sitter "github.com/smacker/go-tree-sitter"
)

// Equal reports whether two expressions denote the same value. Literals
// compare by content regardless of formatting: numbers by numeric value,
// strings by unquoted text, arrays and objects element-wise. Anything Equal
// cannot prove equal is unequal.
func Equal(a, b Expr) bool {
	if a.Node == nil || b.Node == nil {
		return false
	}
	return equalNodes(a.Node, a.Source, b.Node, b.Source)
}

func equalNodes(a *sitter.Node, asrc []byte, b *sitter.Node, bsrc []byte) bool {
	a = unwrapParens(a)
	b = unwrapParens(b)
	if a == nil || b == nil {
		return false
	}

	at, bt := a.Type(), b.Type()

	if at == "number" && bt == "number" {
		return numbersEqual(nodeText(a, asrc), nodeText(b, bsrc))
	}
	if at == "string" && bt == "string" {
		return stringsEqual(nodeText(a, asrc), nodeText(b, bsrc))
	}

	if at != bt {
		return false
	}

	switch at {
	case "true", "false", "null", "undefined", "this":
		return true

	case "identifier", "property_identifier", "shorthand_property_identifier":
		return nodeText(a, asrc) == nodeText(b, bsrc)

	case "unary_expression":
		aop, bop := a.ChildByFieldName("operator"), b.ChildByFieldName("operator")
		aarg, barg := a.ChildByFieldName("argument"), b.ChildByFieldName("argument")
		if aop == nil || bop == nil || aarg == nil || barg == nil {
			return nodeText(a, asrc) == nodeText(b, bsrc)
		}
		if nodeText(aop, asrc) != nodeText(bop, bsrc) {
			return false
		}
		return equalNodes(aarg, asrc, barg, bsrc)

	case "array":
		return namedChildrenEqual(a, asrc, b, bsrc)

	case "object":
		return namedChildrenEqual(a, asrc, b, bsrc)

	case "pair":
		ak, bk := a.ChildByFieldName("key"), b.ChildByFieldName("key")
		av, bv := a.ChildByFieldName("value"), b.ChildByFieldName("value")
		if ak == nil || bk == nil || av == nil || bv == nil {
			return false
		}
		return equalNodes(ak, asrc, bk, bsrc) && equalNodes(av, asrc, bv, bsrc)

	case "member_expression":
		ao, bo := a.ChildByFieldName("object"), b.ChildByFieldName("object")
		ap, bp := a.ChildByFieldName("property"), b.ChildByFieldName("property")
		if ao == nil || bo == nil || ap == nil || bp == nil {
			return false
		}
		return equalNodes(ao, asrc, bo, bsrc) && equalNodes(ap, asrc, bp, bsrc)

	default:
		// No structural knowledge about this node kind: only byte-identical
		// text proves equality.
		return nodeText(a, asrc) == nodeText(b, bsrc)
	}
}

func namedChildrenEqual(a *sitter.Node, asrc []byte, b *sitter.Node, bsrc []byte) bool {
	ac, bc := namedChildren(a), namedChildren(b)
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !equalNodes(ac[i], asrc, bc[i], bsrc) {
			return false
		}
	}
	return true
}

func namedChildren(n *sitter.Node) []*sitter.Node {
	var children []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func unwrapParens(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" {
		n = n.NamedChild(0)
	}
	return n
}

// numbersEqual compares numeric literals by value, so 1, 1.0 and 1e0 all
// match. Literals apd cannot parse (hex, binary, separators, bigints) fall
// back to exact text comparison.
func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}
	da, _, errA := apd.NewFromString(a)
	db, _, errB := apd.NewFromString(b)
	if errA != nil || errB != nil {
		return false
	}
	return da.Cmp(db) == 0
}

// stringsEqual compares string literals by content, ignoring the quote style.
// Literals containing escape sequences compare by raw text only: proving that
// two differently-escaped strings denote the same value is not worth the risk.
func stringsEqual(a, b string) bool {
	if a == b {
		return true
	}
	ua, okA := unquote(a)
	ub, okB := unquote(b)
	if !okA || !okB {
		return false
	}
	if strings.ContainsRune(ua, '\\') || strings.ContainsRune(ub, '\\') {
		return false
	}
	return ua == ub
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return "", false
	}
	return s[1 : len(s)-1], true
}
