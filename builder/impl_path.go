// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// impl_path.go — implementation of Path(labels...) constructor.
//
// Contract:
//   - len(labels) ≥ 1 (else ErrTooFewVertices).
//   - Adds len(labels)+1 vertices via cfg.idFn in ascending index order.
//   - Emits edge i-1 -> i carrying labels[i-1], for i=1..len(labels), in stable order.
//   - Honors graph mode flags (Loops/Multigraph) without silent degrade.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(len(labels)) vertices + edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath  = "Path"
	minPathEdge = 1
)

// Path returns a Constructor that builds a simple directed path whose i-th
// edge carries labels[i]. len(labels)+1 vertices are created.
func Path(labels ...string) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if len(labels) < minPathEdge {
			return fmt.Errorf("%s: len(labels)=%d < min=%d: %w", methodPath, len(labels), minPathEdge, ErrTooFewVertices)
		}

		n := len(labels) + 1
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		var (
			i        int
			uID, vID string
		)
		for i = 1; i < n; i++ {
			uID = cfg.idFn(i - 1)
			vID = cfg.idFn(i)
			label := labels[i-1]
			if label == "" {
				return fmt.Errorf("%s: empty label at index %d: %w", methodPath, i-1, ErrConstructFailed)
			}
			if _, err := g.AddEdge(uID, vID, label); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, %q): %w", methodPath, uID, vID, label, err)
			}
		}

		return nil
	}
}
