package rule

// Plan computes the maximal trailing run of argument positions that are safe
// to delete because each one exactly duplicates its parameter's declared
// default.
//
// Positional calling means omitting argument k only preserves behavior when
// every argument after k is also omitted; deleting an interior argument would
// shift the binding of everything after it. So a single scan marks each
// position must-keep when no default is known there or the argument does not
// equal it, and the plan is the open suffix after the highest must-keep
// position. Every planned position has a known, matching default by
// construction.
func Plan(call *Call, defaults Defaults) RemovalPlan {
	if call == nil || len(call.Args) == 0 {
		return nil
	}

	// A spread makes every later position non-positional; nothing past it
	// can be reasoned about, so the whole call is left alone.
	for _, arg := range call.Args {
		if arg.Spread {
			return nil
		}
	}

	lastKeep := -1
	for k, arg := range call.Args {
		def, ok := defaults[k]
		if !ok || !Equal(arg.Expr, def) {
			lastKeep = k
		}
	}

	if lastKeep == len(call.Args)-1 {
		return nil
	}

	plan := make(RemovalPlan, 0, len(call.Args)-lastKeep-1)
	for k := lastKeep + 1; k < len(call.Args); k++ {
		plan = append(plan, k)
	}
	return plan
}
