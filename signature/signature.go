// Package signature collects function, method and static method declarations
// from a parsed JavaScript file and answers which default value, if any, each
// parameter position declares.
package signature

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hannajonsd/trimdefaults/rule"
)

// Param is one declared parameter. Destructuring and rest parameters keep
// their position but never contribute a usable default.
type Param struct {
	Name       string
	HasDefault bool
	Default    rule.Expr
	Pattern    bool
	Rest       bool
}

// Signature is a collected callable declaration.
type Signature struct {
	Name   string
	Class  string // declaring class, empty for plain functions
	Static bool
	Params []Param
}

// Defaults returns the partial position -> default-expression mapping for
// this signature. Positions without a reliable default are simply absent.
func (s *Signature) Defaults() rule.Defaults {
	defaults := make(rule.Defaults)
	for i, p := range s.Params {
		if p.HasDefault && !p.Pattern && !p.Rest {
			defaults[i] = p.Default
		}
	}
	return defaults
}

type classInfo struct {
	methods map[string]*Signature
	statics map[string]*Signature
}

// Table holds everything collected from one file. A name declared more than
// once maps to no signature at all: guessing between declarations could
// remove an argument that the actually-bound declaration needs.
type Table struct {
	functions     map[string]*Signature
	ambiguousFns  map[string]bool
	classes       map[string]*classInfo
	methodsByName map[string][]*Signature
	extraBuiltins map[string]bool
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{
		functions:     make(map[string]*Signature),
		ambiguousFns:  make(map[string]bool),
		classes:       make(map[string]*classInfo),
		methodsByName: make(map[string][]*Signature),
		extraBuiltins: make(map[string]bool),
	}
}

// AddBuiltins marks extra names as builtin/engine-provided, on top of the
// fixed ECMAScript table.
func (t *Table) AddBuiltins(names []string) {
	for _, name := range names {
		t.extraBuiltins[name] = true
	}
}

// IsClass reports whether name was declared as a class in this file.
func (t *Table) IsClass(name string) bool {
	return t.classes[name] != nil
}

// IsBuiltin reports whether name is an engine global whose signature cannot
// be introspected.
func (t *Table) IsBuiltin(name string) bool {
	return builtinGlobals[name] || t.extraBuiltins[name]
}

// HasKnownSignature reports whether exactly one plain-function declaration
// for name was collected.
func (t *Table) HasKnownSignature(name string) bool {
	return t.functions[name] != nil
}

func (t *Table) addFunction(sig *Signature) {
	if t.ambiguousFns[sig.Name] {
		return
	}
	if _, exists := t.functions[sig.Name]; exists {
		delete(t.functions, sig.Name)
		t.ambiguousFns[sig.Name] = true
		return
	}
	t.functions[sig.Name] = sig
}

func (t *Table) addMethod(sig *Signature) {
	ci := t.classes[sig.Class]
	if ci == nil {
		ci = &classInfo{
			methods: make(map[string]*Signature),
			statics: make(map[string]*Signature),
		}
		t.classes[sig.Class] = ci
	}
	if sig.Static {
		ci.statics[sig.Name] = sig
		return
	}
	ci.methods[sig.Name] = sig
	t.methodsByName[sig.Name] = append(t.methodsByName[sig.Name], sig)
}

// Collect walks a parsed tree once and records every callable declaration:
// function declarations, variables initialized with function or arrow
// expressions, and class methods (instance and static).
func Collect(root *sitter.Node, source []byte) *Table {
	table := NewTable()
	collectNode(table, root, source)
	return table
}

func collectNode(t *Table, node *sitter.Node, source []byte) {
	switch node.Type() {
	case "function_declaration", "generator_function_declaration":
		if name := fieldText(node, "name", source); name != "" {
			t.addFunction(&Signature{
				Name:   name,
				Params: parseParams(node.ChildByFieldName("parameters"), source),
			})
		}

	case "variable_declarator":
		nameNode := node.ChildByFieldName("name")
		value := node.ChildByFieldName("value")
		if nameNode != nil && nameNode.Type() == "identifier" && value != nil {
			name := nodeText(nameNode, source)
			switch value.Type() {
			case "arrow_function", "function", "function_expression", "generator_function":
				t.addFunction(&Signature{
					Name:   name,
					Params: functionParams(value, source),
				})
			case "class", "class_declaration":
				collectClass(t, name, value, source)
			}
		}

	case "assignment_expression":
		left := node.ChildByFieldName("left")
		right := node.ChildByFieldName("right")
		if left != nil && left.Type() == "identifier" && right != nil {
			switch right.Type() {
			case "arrow_function", "function", "function_expression", "generator_function":
				t.addFunction(&Signature{
					Name:   nodeText(left, source),
					Params: functionParams(right, source),
				})
			}
		}

	case "class_declaration":
		if name := fieldText(node, "name", source); name != "" {
			collectClass(t, name, node, source)
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collectNode(t, node.Child(i), source)
	}
}

func collectClass(t *Table, className string, classNode *sitter.Node, source []byte) {
	body := classNode.ChildByFieldName("body")
	if body == nil {
		return
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() != "method_definition" {
			continue
		}
		name := fieldText(member, "name", source)
		if name == "" {
			continue
		}
		t.addMethod(&Signature{
			Name:   name,
			Class:  className,
			Static: hasStaticModifier(member),
			Params: parseParams(member.ChildByFieldName("parameters"), source),
		})
	}
}

func hasStaticModifier(method *sitter.Node) bool {
	for i := 0; i < int(method.ChildCount()); i++ {
		if method.Child(i).Type() == "static" {
			return true
		}
	}
	return false
}

// functionParams handles both parenthesized parameter lists and the bare
// single-identifier form of arrow functions (x => ...), which can never
// carry a default.
func functionParams(fn *sitter.Node, source []byte) []Param {
	if params := fn.ChildByFieldName("parameters"); params != nil {
		return parseParams(params, source)
	}
	if p := fn.ChildByFieldName("parameter"); p != nil && p.Type() == "identifier" {
		return []Param{{Name: nodeText(p, source)}}
	}
	return nil
}

func parseParams(params *sitter.Node, source []byte) []Param {
	if params == nil {
		return nil
	}

	var result []Param
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		switch child.Type() {
		case "comment":
			continue
		case "identifier":
			result = append(result, Param{Name: nodeText(child, source)})
		case "assignment_pattern":
			left := child.ChildByFieldName("left")
			right := child.ChildByFieldName("right")
			p := Param{}
			if left != nil && left.Type() == "identifier" && right != nil {
				p.Name = nodeText(left, source)
				p.HasDefault = true
				p.Default = rule.Expr{Node: right, Source: source}
			} else {
				// Destructured parameter with a default: the position
				// exists but no per-position default can be trusted.
				p.Pattern = true
			}
			result = append(result, p)
		case "rest_pattern", "rest_parameter":
			result = append(result, Param{Rest: true})
		default:
			// object_pattern, array_pattern and anything else positional
			// but not introspectable.
			result = append(result, Param{Pattern: true})
		}
	}
	return result
}

func fieldText(node *sitter.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return nodeText(child, source)
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
