// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// impl_glue.go — implementation of GlueAt(joinID, a, b) constructor.
//
// Contract:
//   - joinID must be produced by both a and b under the same cfg.idFn (else
//     ErrConstructFailed, since there is nothing to glue).
//   - a is applied to g directly; b is built in a scratch graph sharing cfg,
//     then merged into g with every vertex ID other than joinID prefixed by
//     "b:" to avoid collisions with a's vertex IDs.
//   - Deterministic: vertices/edges from b are copied in b.Vertices()/b.Edges()
//     sorted order.
//
// This is the combinator behind the canonical "two cycles sharing a vertex"
// fixtures used by the path-query engines' tests: GlueAt("0", Cycle(3,"a"), Cycle(3,"b")).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

const methodGlueAt = "GlueAt"

// GlueAt returns a Constructor that runs `a` against g, runs `b` against a
// scratch graph, and merges b's vertices/edges into g — identifying b's
// joinID vertex with a's joinID vertex and renaming every other b vertex by
// prefixing it with "b:".
func GlueAt(joinID string, a, b Constructor) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if a == nil || b == nil {
			return fmt.Errorf("%s: nil sub-constructor: %w", methodGlueAt, ErrConstructFailed)
		}

		if err := a(g, cfg); err != nil {
			return fmt.Errorf("%s: a: %w", methodGlueAt, err)
		}
		if !g.HasVertex(joinID) {
			return fmt.Errorf("%s: join vertex %q missing after a: %w", methodGlueAt, joinID, ErrConstructFailed)
		}

		var opts []graph.GraphOption
		if g.Multigraph() {
			opts = append(opts, graph.WithMultiEdges())
		}
		if g.Looped() {
			opts = append(opts, graph.WithLoops())
		}
		scratch := graph.NewGraph(opts...)
		if err := b(scratch, cfg); err != nil {
			return fmt.Errorf("%s: b: %w", methodGlueAt, err)
		}
		if !scratch.HasVertex(joinID) {
			return fmt.Errorf("%s: join vertex %q missing after b: %w", methodGlueAt, joinID, ErrConstructFailed)
		}

		rename := func(id string) string {
			if id == joinID {
				return joinID
			}
			return "b:" + id
		}

		for _, id := range scratch.Vertices() {
			rid := rename(id)
			if rid == joinID {
				continue
			}
			if err := g.AddVertex(rid); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodGlueAt, rid, err)
			}
		}

		for _, e := range scratch.Edges() {
			from, to := rename(e.From), rename(e.To)
			if _, err := g.AddEdge(from, to, e.Label); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, %q): %w", methodGlueAt, from, to, e.Label, err)
			}
		}

		return nil
	}
}
