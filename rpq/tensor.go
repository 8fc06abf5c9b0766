// SPDX-License-Identifier: MIT
// Package rpq - TensorRPQ (spec §4.4): product decomposition + any-symbol
// transitive closure.

package rpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/decomp"
	"github.com/katalvlaran/pathql/graph"
)

// TensorRPQ returns every (u,v) vertex pair of g connected by some word in
// query's language, restricted to u ∈ starts and v ∈ finals (nil means
// "every vertex", per spec §4.4).
//
// query should be epsilon-free (call automaton.RemoveEpsilons first if
// built by hand rather than via adapters.ParseRegex, which already does
// this).
// Complexity: O(|query.states| * |g.vertices|) product states, plus
// transitive-closure saturation over that product.
func TensorRPQ(g *graph.Graph, query *automaton.NFA, starts, finals []string) (map[Pair]bool, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if query == nil {
		return nil, ErrNilQuery
	}

	graphDecomp, err := decomp.FromGraph(g)
	if err != nil {
		return nil, fmt.Errorf("TensorRPQ: %w", err)
	}
	graphDecomp = graphDecomp.Restrict(membership(toSet(starts)), membership(toSet(finals)))

	queryDecomp, err := decomp.FromNFA(query, decomp.WithSortStates())
	if err != nil {
		return nil, fmt.Errorf("TensorRPQ: %w", err)
	}

	prod, err := queryDecomp.Intersect(graphDecomp)
	if err != nil {
		return nil, fmt.Errorf("TensorRPQ: %w", err)
	}

	closure, err := prod.TransitiveClosureAnySymbol()
	if err != nil {
		return nil, fmt.Errorf("TensorRPQ: %w", err)
	}

	out := make(map[Pair]bool)
	emit := func(i, j int) {
		si, sj := prod.States[i], prod.States[j]
		if !si.IsStart || !sj.IsFinal {
			return
		}
		u := si.Data.(decomp.PairData).B.(string)
		v := sj.Data.(decomp.PairData).B.(string)
		out[Pair{From: u, To: v}] = true
	}
	// Zero-length paths: a product state that is simultaneously start and
	// final is reachable via the empty word even though
	// TransitiveClosureAnySymbol (literally, per spec §4.2) never invents a
	// reflexive pair absent an actual cycle.
	for i := range prod.States {
		emit(i, i)
	}
	for _, p := range closure {
		emit(p.Row, p.Col)
	}

	return out, nil
}
