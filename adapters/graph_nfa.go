// SPDX-License-Identifier: MIT
// Package adapters - graph.Graph <-> automaton.NFA conversion.
//
// A graph is converted to an NFA by treating every vertex as both a start
// and a final state (any vertex may begin or end a path) and copying every
// edge as a transition labeled by its Label; the NFA's State.Data is the
// graph vertex ID, which lets callers map decomposition indices back to
// vertex IDs after a closure/BFS pass.

package adapters

import (
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graph"
)

// GraphToNFA builds an automaton.NFA mirroring g: one state per vertex
// (Data = vertex ID string, IsStart = IsFinal = true), one transition per
// edge. Vertices are visited in sorted order so the resulting NFA's state
// IDs are deterministic across calls on the same graph.
// Complexity: O(V log V + E).
func GraphToNFA(g *graph.Graph) *automaton.NFA {
	out := automaton.New()
	vertices := append([]string(nil), g.Vertices()...)
	sort.Strings(vertices)

	ids := make(map[string]int, len(vertices))
	for _, v := range vertices {
		ids[v] = out.AddState(v, true, true)
	}
	for _, e := range g.Edges() {
		_ = out.AddTransition(ids[e.From], e.Label, ids[e.To])
	}

	return out
}

// VertexOf returns the graph vertex ID a decomposition StateInfo's Data
// carries, for states built via GraphToNFA + decomp.FromNFA. Panics if
// data is not a string, which would indicate a decomposition built from
// something other than GraphToNFA's output.
func VertexOf(data interface{}) string {
	return data.(string)
}
