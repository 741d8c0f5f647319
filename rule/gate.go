package rule

// Eligible reports whether a call is worth analyzing at all. It is purely
// advisory and has no side effects.
//
// A call with no arguments has nothing to remove. Bare function calls are
// only analyzable when the name resolves to a declaration we collected:
// builtins and engine globals have no introspectable signature, and a wrong
// removal would silently change behavior, so they are rejected outright.
// Method and static calls are always let through; when the resolver cannot
// supply defaults for them the planner produces an empty plan on its own.
func Eligible(call *Call, syms SymbolInfo) bool {
	if call == nil || len(call.Args) == 0 {
		return false
	}

	switch call.Kind {
	case KindFunction:
		if syms.IsBuiltin(call.Name) {
			return false
		}
		return syms.HasKnownSignature(call.Name)
	case KindMethod, KindStatic:
		return true
	default:
		// Dynamic callee: cannot verify the target is even a function symbol.
		return false
	}
}
