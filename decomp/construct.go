// SPDX-License-Identifier: MIT
// Package decomp - construction from automaton.NFA and from an RSM view.

package decomp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
)

// RSMView is the minimal read-only shape decomp.FromRSM needs from an RSM
// (package rsm's *RSM implements it): the start nonterminal's name and a
// lookup from nonterminal name to its box NFA. Defining this as an
// interface here (rather than importing package rsm) avoids the import
// cycle rsm would otherwise create (rsm.RSM.GetReachables/Intersect need
// decomp; decomp.FromRSM needs rsm's box map).
type RSMView interface {
	StartSymbol() string
	BoxNames() []string
	Box(name string) *automaton.NFA
}

// RSMStateData is the Data every state of a Decomp built via FromRSM
// carries: which box (nonterminal) it belongs to, plus that box's own
// opaque per-state data. Exported so callers (package rsm's GetReachables,
// Intersect) can recover box membership from a Decomp built by FromRSM.
type RSMStateData struct {
	Box   string
	Inner interface{}
}

// FromNFA builds a Decomp from a, deduplicating states by Data. Two NFA
// states with equal Data must agree on IsStart/IsFinal, or
// ErrDuplicateState is returned.
// Complexity: O(n + m) where n = |a.States()|, m = transition count.
func FromNFA(a *automaton.NFA, opts ...Option) (*Decomp, error) {
	cfg := resolveConfig(opts...)

	states := a.States()
	order := make([]int, len(states))
	for i := range order {
		order[i] = i
	}
	if cfg.sortStates {
		sort.Slice(order, func(i, j int) bool {
			return fmt.Sprint(states[order[i]].Data) < fmt.Sprint(states[order[j]].Data)
		})
	}

	// dedup: map original NFA state ID -> new Decomp index.
	newIndexOf := make(map[int]int, len(states))
	dataIndex := make(map[interface{}]int)
	var out []StateInfo
	for _, origIdx := range order {
		s := states[origIdx]
		if existing, ok := dataIndex[s.Data]; ok {
			if out[existing].IsStart != s.IsStart || out[existing].IsFinal != s.IsFinal {
				return nil, fmt.Errorf("FromNFA: state data %v: %w", s.Data, ErrDuplicateState)
			}
			newIndexOf[s.ID] = existing
			continue
		}
		idx := len(out)
		out = append(out, StateInfo{Data: s.Data, IsStart: s.IsStart, IsFinal: s.IsFinal})
		dataIndex[s.Data] = idx
		newIndexOf[s.ID] = idx
	}

	n := len(out)
	builders := make(map[string]*boolmatrix.Builder)
	for _, s := range states {
		for _, sym := range a.OutSymbols(s.ID) {
			if sym == automaton.Epsilon {
				continue
			}
			b, ok := builders[sym]
			if !ok {
				b, _ = boolmatrix.NewBuilder(n, n)
				builders[sym] = b
			}
			for _, to := range a.Transitions(s.ID, sym) {
				_ = b.Set(newIndexOf[s.ID], newIndexOf[to])
			}
		}
	}

	adjs := make(map[string]*boolmatrix.Matrix, len(builders))
	for sym, b := range builders {
		adjs[sym] = b.Build()
	}

	return &Decomp{States: out, Adjs: adjs}, nil
}

// FromRSM builds one Decomp spanning every box of r: each state's Data is
// an RSMStateData{Box, Inner}, so no collision is possible across boxes
// even if two boxes reuse the same inner state data. Per spec §4.2, no
// adjacency exists between states of different boxes; this falls out
// naturally because each box's transitions are only ever recorded between
// that box's own (already distinctly-tagged) states.
func FromRSM(r RSMView, opts ...Option) (*Decomp, error) {
	cfg := resolveConfig(opts...)

	names := append([]string(nil), r.BoxNames()...)
	sort.Strings(names) // always sort boxes for stable iteration; cfg.sortStates further sorts within

	type tagged struct {
		box   string
		state automaton.State
	}
	var all []tagged
	for _, name := range names {
		box := r.Box(name)
		if box == nil {
			continue
		}
		for _, s := range box.States() {
			all = append(all, tagged{box: name, state: s})
		}
	}

	if cfg.sortStates {
		sort.Slice(all, func(i, j int) bool {
			if all[i].box != all[j].box {
				return all[i].box < all[j].box
			}
			return fmt.Sprint(all[i].state.Data) < fmt.Sprint(all[j].state.Data)
		})
	}

	out := make([]StateInfo, len(all))
	// origIndex[box][localID] -> Decomp index
	origIndex := make(map[string]map[int]int, len(names))
	for i, t := range all {
		out[i] = StateInfo{
			Data:    RSMStateData{Box: t.box, Inner: t.state.Data},
			IsStart: t.state.IsStart,
			IsFinal: t.state.IsFinal,
		}
		if origIndex[t.box] == nil {
			origIndex[t.box] = make(map[int]int)
		}
		origIndex[t.box][t.state.ID] = i
	}

	n := len(out)
	builders := make(map[string]*boolmatrix.Builder)
	for _, name := range names {
		box := r.Box(name)
		if box == nil {
			continue
		}
		for _, s := range box.States() {
			for _, sym := range box.OutSymbols(s.ID) {
				if sym == automaton.Epsilon {
					continue
				}
				b, ok := builders[sym]
				if !ok {
					b, _ = boolmatrix.NewBuilder(n, n)
					builders[sym] = b
				}
				from := origIndex[name][s.ID]
				for _, to := range box.Transitions(s.ID, sym) {
					_ = b.Set(from, origIndex[name][to])
				}
			}
		}
	}

	adjs := make(map[string]*boolmatrix.Matrix, len(builders))
	for sym, b := range builders {
		adjs[sym] = b.Build()
	}

	return &Decomp{States: out, Adjs: adjs}, nil
}
