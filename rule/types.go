package rule

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// CalleeKind classifies how a call expression names its target.
type CalleeKind int

const (
	// KindFunction is a bare call through a statically known name: f(...)
	KindFunction CalleeKind = iota
	// KindMethod is a call through a receiver expression: obj.m(...)
	KindMethod
	// KindStatic is a call on a known class: Class.m(...)
	KindStatic
	// KindDynamic is anything whose target cannot be named statically,
	// e.g. computed members or calls on call results.
	KindDynamic
)

// Expr is an expression subtree together with the source it was parsed from.
type Expr struct {
	Node   *sitter.Node
	Source []byte
}

// Text returns the raw source text of the expression.
func (e Expr) Text() string {
	if e.Node == nil {
		return ""
	}
	return string(e.Source[e.Node.StartByte():e.Node.EndByte()])
}

// Argument is a positional argument of a call. Spread marks ...xs arguments,
// which make every later position non-positional.
type Argument struct {
	Pos    int
	Expr   Expr
	Spread bool
}

// Call is the analyzer's view of a single call expression node.
type Call struct {
	Node  *sitter.Node
	Kind  CalleeKind
	Name  string // function or method name
	Class string // receiver class for static calls, empty otherwise
	Args  []Argument
}

// Defaults maps 0-based parameter positions to their declared default value
// expressions. A missing position means no default is known there, which the
// planner treats the same as no default existing at all.
type Defaults map[int]Expr

// RemovalPlan lists argument positions to delete, in ascending order. A
// non-empty plan is always a contiguous suffix of the argument list.
type RemovalPlan []int

// SymbolInfo is what the gate and call classification need to know about the
// symbols visible at a call site.
type SymbolInfo interface {
	IsClass(name string) bool
	IsBuiltin(name string) bool
	HasKnownSignature(name string) bool
}

// ClassifyCall builds a Call from a call_expression node. Returns nil for
// nodes that are not call expressions.
func ClassifyCall(node *sitter.Node, source []byte, syms SymbolInfo) *Call {
	if node == nil || node.Type() != "call_expression" {
		return nil
	}

	call := &Call{Node: node, Kind: KindDynamic}

	fn := node.ChildByFieldName("function")
	if fn != nil {
		switch fn.Type() {
		case "identifier":
			call.Kind = KindFunction
			call.Name = nodeText(fn, source)
		case "member_expression":
			obj := fn.ChildByFieldName("object")
			prop := fn.ChildByFieldName("property")
			if prop != nil && prop.Type() == "property_identifier" {
				call.Kind = KindMethod
				call.Name = nodeText(prop, source)
				if obj != nil && obj.Type() == "identifier" {
					objName := nodeText(obj, source)
					if syms != nil && syms.IsClass(objName) {
						call.Kind = KindStatic
						call.Class = objName
					}
				}
			}
		}
	}

	args := node.ChildByFieldName("arguments")
	if args != nil {
		for i := 0; i < int(args.NamedChildCount()); i++ {
			child := args.NamedChild(i)
			if child.Type() == "comment" {
				continue
			}
			call.Args = append(call.Args, Argument{
				Pos:    len(call.Args),
				Expr:   Expr{Node: child, Source: source},
				Spread: child.Type() == "spread_element",
			})
		}
	}

	return call
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
