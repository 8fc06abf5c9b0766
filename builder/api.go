// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble query-graph fixtures deterministically.
//   - WithIDScheme(...) for human-readable vertex IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the graph's mode flags (loops/multigraph).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a new graph.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted by design.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(gopts []graph.GraphOption, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g := graph.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, *cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Fixture factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn.
//   - Emit edges in a stable, documented order.
//   - Honor graph flags (Loops/Multigraph) without silent degrade.
//   - Return only sentinel errors; NEVER panic at runtime.

// Cycle builds an n-vertex simple directed cycle C_n (n ≥ 3) whose edges all
// carry the given label. This is the canonical building block for regular
// path query fixtures over a single-symbol loop (e.g. Kleene-star tests).
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.
//func Cycle(n int, label string) Constructor

// Path builds a simple directed path whose i-th edge carries labels[i].
// len(labels)+1 vertices are created (labels must be non-empty).
// Complexity: O(len(labels)) vertices + edges; O(1) extra space.
//func Path(labels ...string) Constructor

// GlueAt runs the first constructor against g and the second against a
// scratch graph, then merges the scratch graph's vertices/edges into g, identifying vertex `joinID` from the second
// constructor's fixture with the first's. This builds the two-cycle-sharing-
// a-vertex fixtures used throughout the RPQ/CFPQ examples.
// Complexity: O(V1+E1+V2+E2).
//func GlueAt(joinID string, a, b Constructor) Constructor
