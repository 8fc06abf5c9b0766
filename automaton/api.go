// SPDX-License-Identifier: MIT
// Package automaton - public construction and query API for NFA.

package automaton

import (
	"fmt"
	"sort"
)

// AddState appends a new state carrying data, isStart, isFinal and returns
// its assigned ID (dense, zero-based, in insertion order).
// Complexity: O(1) amortized.
func (a *NFA) AddState(data interface{}, isStart, isFinal bool) int {
	id := a.nextID
	a.nextID++
	a.states = append(a.states, State{ID: id, Data: data, IsStart: isStart, IsFinal: isFinal})

	return id
}

// SetStart toggles the IsStart flag of state id.
func (a *NFA) SetStart(id int, isStart bool) error {
	if id < 0 || id >= len(a.states) {
		return fmt.Errorf("SetStart(%d): %w", id, ErrStateNotFound)
	}
	a.states[id].IsStart = isStart

	return nil
}

// SetFinal toggles the IsFinal flag of state id.
func (a *NFA) SetFinal(id int, isFinal bool) error {
	if id < 0 || id >= len(a.states) {
		return fmt.Errorf("SetFinal(%d): %w", id, ErrStateNotFound)
	}
	a.states[id].IsFinal = isFinal

	return nil
}

// AddTransition records from --symbol--> to. symbol may be Epsilon.
// Idempotent: adding the same (from, symbol, to) twice has no extra effect.
// Complexity: O(d) where d is the current out-degree of from under symbol
// (kept sorted and deduplicated for deterministic iteration).
func (a *NFA) AddTransition(from int, symbol string, to int) error {
	if from < 0 || from >= len(a.states) {
		return fmt.Errorf("AddTransition: from=%d: %w", from, ErrStateNotFound)
	}
	if to < 0 || to >= len(a.states) {
		return fmt.Errorf("AddTransition: to=%d: %w", to, ErrStateNotFound)
	}

	if a.trans[from] == nil {
		a.trans[from] = make(map[string][]int)
	}
	dests := a.trans[from][symbol]
	idx := sort.SearchInts(dests, to)
	if idx < len(dests) && dests[idx] == to {
		return nil // already present
	}
	dests = append(dests, 0)
	copy(dests[idx+1:], dests[idx:])
	dests[idx] = to
	a.trans[from][symbol] = dests

	return nil
}

// States returns every state, in ID-ascending (insertion) order. The
// returned slice is a copy.
func (a *NFA) States() []State {
	out := make([]State, len(a.states))
	copy(out, a.states)

	return out
}

// StateCount returns the number of states.
func (a *NFA) StateCount() int { return len(a.states) }

// Transitions returns the sorted destination IDs reachable from `from`
// under `symbol`. Returns nil if there are none.
func (a *NFA) Transitions(from int, symbol string) []int {
	if m, ok := a.trans[from]; ok {
		return m[symbol]
	}

	return nil
}

// OutSymbols returns the distinct symbols (sorted) with at least one
// outgoing transition from `from`.
func (a *NFA) OutSymbols(from int) []string {
	m, ok := a.trans[from]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// Alphabet returns the distinct non-epsilon symbols used by any transition,
// sorted lexicographically.
func (a *NFA) Alphabet() []string {
	seen := make(map[string]struct{})
	for _, bySym := range a.trans {
		for sym := range bySym {
			if sym == Epsilon {
				continue
			}
			seen[sym] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// StartStates returns the IDs of every state with IsStart set, ascending.
func (a *NFA) StartStates() []int {
	var out []int
	for _, s := range a.states {
		if s.IsStart {
			out = append(out, s.ID)
		}
	}

	return out
}

// FinalStates returns the IDs of every state with IsFinal set, ascending.
func (a *NFA) FinalStates() []int {
	var out []int
	for _, s := range a.states {
		if s.IsFinal {
			out = append(out, s.ID)
		}
	}

	return out
}

// IsEmptyLanguage reports whether no final state is reachable from any
// start state under any (possibly epsilon) symbol — a cheap structural
// check used by tests for spec §8 scenario 3 ("empty-language regex").
func (a *NFA) IsEmptyLanguage() bool {
	visited := make(map[int]bool)
	var stack []int
	for _, s := range a.StartStates() {
		if !visited[s] {
			visited[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if a.states[cur].IsFinal {
			return false
		}
		for _, dests := range a.trans[cur] {
			for _, to := range dests {
				if !visited[to] {
					visited[to] = true
					stack = append(stack, to)
				}
			}
		}
	}

	return true
}
