// SPDX-License-Identifier: MIT
// Package decomp - FromGraph: boolean decomposition of a graph.Graph.
//
// Every vertex is both a start and a final state (spec §3: "a transition is
// (from-state, symbol, to-state)"; a graph has no distinguished start/final
// vertices of its own — the RPQ/CFPQ engines apply the caller's
// starts/finals filter themselves, rpq through Decomp.Restrict and cfpq when
// projecting its results, not here). A state's Data is the vertex ID
// string, letting callers map a Decomp index straight back to a vertex.

package decomp

import (
	"sort"

	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/graph"
)

// FromGraph builds a Decomp from g: one state per vertex (Data = vertex ID,
// IsStart = IsFinal = true), one adjacency entry per edge under its Label.
// Vertices are always visited in sorted order, so the result is
// deterministic regardless of cfg.sortStates (there is no secondary key to
// sort by once vertex ID order is fixed).
// Complexity: O(V log V + E).
func FromGraph(g *graph.Graph, opts ...Option) (*Decomp, error) {
	_ = resolveConfig(opts...) // accepted for API symmetry with FromNFA/FromRSM; vertex order is already canonical

	vertices := append([]string(nil), g.Vertices()...)
	sort.Strings(vertices)

	states := make([]StateInfo, len(vertices))
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		states[i] = StateInfo{Data: v, IsStart: true, IsFinal: true}
		index[v] = i
	}

	n := len(states)
	builders := make(map[string]*boolmatrix.Builder)
	for _, e := range g.Edges() {
		b, ok := builders[e.Label]
		if !ok {
			b, _ = boolmatrix.NewBuilder(n, n)
			builders[e.Label] = b
		}
		_ = b.Set(index[e.From], index[e.To])
	}

	adjs := make(map[string]*boolmatrix.Matrix, len(builders))
	for sym, b := range builders {
		adjs[sym] = b.Build()
	}

	return &Decomp{States: states, Adjs: adjs}, nil
}
