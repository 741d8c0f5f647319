package signature

import (
	"fmt"

	"github.com/hannajonsd/trimdefaults/rule"
)

// Resolver maps a call's target symbol to its per-position default values.
// Lookups are cached per callee identity, so a fixed callee always sees the
// same mapping for the duration of one file's pass.
type Resolver struct {
	table *Table
	cache map[string]rule.Defaults
}

// NewResolver returns a resolver over a collected symbol table.
func NewResolver(table *Table) *Resolver {
	return &Resolver{
		table: table,
		cache: make(map[string]rule.Defaults),
	}
}

// ResolveDefaults returns the known defaults for the call's target, or an
// empty mapping when the target cannot be resolved to exactly one
// declaration. An empty mapping makes the planner keep every argument.
func (r *Resolver) ResolveDefaults(call *rule.Call) rule.Defaults {
	key := fmt.Sprintf("%d|%s|%s", call.Kind, call.Class, call.Name)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	var defaults rule.Defaults
	if sig := r.lookup(call); sig != nil {
		defaults = sig.Defaults()
	} else {
		defaults = rule.Defaults{}
	}

	r.cache[key] = defaults
	return defaults
}

func (r *Resolver) lookup(call *rule.Call) *Signature {
	switch call.Kind {
	case rule.KindFunction:
		return r.table.functions[call.Name]

	case rule.KindStatic:
		if ci := r.table.classes[call.Class]; ci != nil {
			return ci.statics[call.Name]
		}
		return nil

	case rule.KindMethod:
		// Receivers are untyped, so an instance method resolves only when
		// the name is unambiguous across every collected class.
		sigs := r.table.methodsByName[call.Name]
		if len(sigs) == 1 {
			return sigs[0]
		}
		return nil

	default:
		return nil
	}
}
