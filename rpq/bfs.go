// SPDX-License-Identifier: MIT
// Package rpq - BFSRPQ (spec §4.4): constrained breadth-first search over
// the direct sum of the query automaton and the graph.

package rpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/decomp"
	"github.com/katalvlaran/pathql/graph"
)

// BFSResult is BFSRPQ's result: Pairs is populated in PerStart mode,
// Vertices in Common mode (the other is nil), matching spec §4.4's
// "set of vertex or set of (vertex,vertex)" return shape.
type BFSResult struct {
	Pairs    map[Pair]bool
	Vertices map[string]bool
}

// BFSRPQ returns the vertices of g reachable from some start vertex by a
// word in query's language (mode Common), or the (start,reached) pairs
// keeping each start distinct (mode PerStart). starts/finals restrict
// which graph vertices may begin/end a path; nil means every vertex.
// Complexity: see decomp.ConstrainedBFS.
func BFSRPQ(g *graph.Graph, query *automaton.NFA, starts, finals []string, mode Mode) (BFSResult, error) {
	if g == nil {
		return BFSResult{}, ErrNilGraph
	}
	if query == nil {
		return BFSResult{}, ErrNilQuery
	}

	graphDecomp, err := decomp.FromGraph(g)
	if err != nil {
		return BFSResult{}, fmt.Errorf("BFSRPQ: %w", err)
	}
	graphDecomp = graphDecomp.Restrict(membership(toSet(starts)), membership(toSet(finals)))

	queryDecomp, err := decomp.FromNFA(query)
	if err != nil {
		return BFSResult{}, fmt.Errorf("BFSRPQ: %w", err)
	}

	separated := mode == PerStart
	results, err := graphDecomp.ConstrainedBFS(queryDecomp, separated)
	if err != nil {
		return BFSResult{}, fmt.Errorf("BFSRPQ: %w", err)
	}

	if separated {
		pairs := make(map[Pair]bool, len(results))
		for _, r := range results {
			from := graphDecomp.States[r.Start].Data.(string)
			to := graphDecomp.States[r.V].Data.(string)
			pairs[Pair{From: from, To: to}] = true
		}

		return BFSResult{Pairs: pairs}, nil
	}

	vertices := make(map[string]bool, len(results))
	for _, r := range results {
		vertices[graphDecomp.States[r.V].Data.(string)] = true
	}

	return BFSResult{Vertices: vertices}, nil
}
