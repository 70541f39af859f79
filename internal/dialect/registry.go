package dialect

import "sort"

type entry struct {
	order   int
	grammar Grammar
}

var registry []entry

// Register adds a grammar to the trial list at the given position.
// Called from init() in each grammar file; lower positions are tried first.
func Register(order int, g Grammar) {
	registry = append(registry, entry{order: order, grammar: g})
}

// ResetRegistry clears the global registry. Used only in tests.
func ResetRegistry() {
	registry = nil
}

// All returns the registered grammars in trial order.
func All() []Grammar {
	sorted := make([]entry, len(registry))
	copy(sorted, registry)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].order < sorted[j].order })

	out := make([]Grammar, len(sorted))
	for i, e := range sorted {
		out[i] = e.grammar
	}
	return out
}
