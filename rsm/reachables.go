// SPDX-License-Identifier: MIT
// Package rsm - GetReachables: the nullable/terminable-nonterminal fixed
// point over the RSM's boxes that finds every (start,final) pair reachable
// within the start box (spec §4.3).
//
// A nonterminal is admitted into the working decomposition's alphabet only
// once it is proven terminable (some start state of its box reaches some
// final state of its box using only terminals and already-admitted
// nonterminal edges); terminal symbols are always admitted. Each round
// recomputes the any-symbol transitive closure over the admitted alphabet
// and checks every still-unadmitted box for a new start->final pair.

package rsm

import (
	"fmt"

	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/decomp"
)

// Pair is one (start-box-state, start-box-state) pair discovered reachable,
// carrying each endpoint's original (pre-RSM-wrapping) state data.
type Pair struct {
	Start, Final interface{}
}

type pairIdx struct{ i, j int }

// GetReachables returns every (start,final) pair of the start box's own
// states connected by some derivable word, using the productive-nonterminal
// fixed point of spec §4.3.
// Complexity: O(rounds * closure cost), rounds bounded by |boxes|.
func (r *RSM) GetReachables() ([]Pair, error) {
	full, err := decomp.FromRSM(r)
	if err != nil {
		return nil, fmt.Errorf("GetReachables: %w", err)
	}

	boxOf := make([]string, full.N())
	for i, st := range full.States {
		boxOf[i] = st.Data.(decomp.RSMStateData).Box
	}

	// A symbol is "terminal" (always admitted) iff it does not name one of
	// this RSM's own boxes.
	isNonterminalSymbol := make(map[string]bool, len(r.boxes))
	for name := range r.boxes {
		isNonterminalSymbol[name] = true
	}

	admitted := make(map[string]bool, len(r.boxes))
	for i, st := range full.States {
		if st.IsStart && st.IsFinal {
			admitted[boxOf[i]] = true
		}
	}

	var closurePairs []pairIdx
	for {
		filtered := &decomp.Decomp{States: full.States, Adjs: make(map[string]*boolmatrix.Matrix)}
		for sym, m := range full.Adjs {
			if isNonterminalSymbol[sym] && !admitted[sym] {
				continue
			}
			filtered.Adjs[sym] = m
		}

		raw, err := filtered.TransitiveClosureAnySymbol()
		if err != nil {
			return nil, fmt.Errorf("GetReachables: %w", err)
		}
		closurePairs = closurePairs[:0]
		for _, p := range raw {
			closurePairs = append(closurePairs, pairIdx{p.Row, p.Col})
		}

		grew := false
		for name := range r.boxes {
			if admitted[name] {
				continue
			}
			if hasStartFinalPair(full, boxOf, name, closurePairs) {
				admitted[name] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	var out []Pair
	seen := make(map[Pair]bool)
	addPair := func(i, j int) {
		p := Pair{
			Start: full.States[i].Data.(decomp.RSMStateData).Inner,
			Final: full.States[j].Data.(decomp.RSMStateData).Inner,
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for i, st := range full.States {
		if boxOf[i] == r.start && st.IsStart && st.IsFinal {
			addPair(i, i)
		}
	}
	for _, p := range closurePairs {
		if boxOf[p.i] != r.start || boxOf[p.j] != r.start {
			continue
		}
		if full.States[p.i].IsStart && full.States[p.j].IsFinal {
			addPair(p.i, p.j)
		}
	}

	return out, nil
}

func hasStartFinalPair(full *decomp.Decomp, boxOf []string, name string, pairs []pairIdx) bool {
	for _, p := range pairs {
		if boxOf[p.i] != name || boxOf[p.j] != name {
			continue
		}
		if full.States[p.i].IsStart && full.States[p.j].IsFinal {
			return true
		}
	}

	return false
}
