// SPDX-License-Identifier: MIT
// Package automaton - epsilon-closure removal.
//
// RemoveEpsilons returns a new, epsilon-free NFA with the same language:
// every state of the input survives (so callers that reference state IDs
// by position keep working), but each surviving state gains a direct
// transition wherever a chain of epsilons plus one real symbol would have
// led, and gains IsFinal if any state in its epsilon-closure is final.

package automaton

// RemoveEpsilons returns an epsilon-free NFA equivalent to a.
// Complexity: O(n^2 * |alphabet|) worst case (epsilon closure per state,
// then one pass per symbol); n is small for the hand-built combinators
// that produce epsilons (Concat/Star/Union in package rsm, Thompson
// construction in package adapters), so this is not a hot path.
func RemoveEpsilons(a *NFA) *NFA {
	n := len(a.states)
	closure := make([]map[int]bool, n)
	for i := 0; i < n; i++ {
		closure[i] = epsilonClosure(a, i)
	}

	out := New()
	for _, s := range a.states {
		isFinal := s.IsFinal
		for c := range closure[s.ID] {
			if a.states[c].IsFinal {
				isFinal = true
			}
		}
		id := out.AddState(s.Data, s.IsStart, isFinal)
		_ = id // IDs are assigned in the same order as a.states, so id == s.ID
	}

	for from := 0; from < n; from++ {
		destsBySym := make(map[string]map[int]bool)
		for c := range closure[from] {
			for _, sym := range a.OutSymbols(c) {
				if sym == Epsilon {
					continue
				}
				for _, to := range a.Transitions(c, sym) {
					for reach := range closure[to] {
						if destsBySym[sym] == nil {
							destsBySym[sym] = make(map[int]bool)
						}
						destsBySym[sym][reach] = true
					}
				}
			}
		}
		for sym, dests := range destsBySym {
			for to := range dests {
				_ = out.AddTransition(from, sym, to)
			}
		}
	}

	return out
}

// epsilonClosure returns {start} ∪ every state reachable from start via
// zero or more epsilon transitions.
func epsilonClosure(a *NFA, start int) map[int]bool {
	closure := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		for _, to := range a.Transitions(cur, Epsilon) {
			if !closure[to] {
				closure[to] = true
				stack = append(stack, to)
			}
		}
	}

	return closure
}
