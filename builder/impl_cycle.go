// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// impl_cycle.go — implementation of Cycle(n, label) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); label must be non-empty (else ErrConstructFailed).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1, all labeled `label`.
//   • Honors graph mode flags (Loops/Multigraph) without silent degrade.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra (iter vars only).
//
// Determinism:
//   • Deterministic IDs via cfg.idFn; deterministic edge emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple directed cycle
// C_n whose edges all carry `label`.
func Cycle(n int, label string) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if label == "" {
			return fmt.Errorf("%s: empty label: %w", methodCycle, ErrConstructFailed)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		for i := 0; i < n; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)
			if _, err := g.AddEdge(uID, vID, label); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, %q): %w", methodCycle, uID, vID, label, err)
			}
		}

		return nil
	}
}
