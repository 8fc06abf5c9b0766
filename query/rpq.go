// SPDX-License-Identifier: MIT

package query

import (
	"fmt"

	"github.com/katalvlaran/pathql/adapters"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/rpq"
)

// Pair is a (from, to) vertex pair in an RPQ/CFPQ result.
type Pair = rpq.Pair

// Mode selects RPQByBFS's result shape; see rpq.Mode.
type Mode = rpq.Mode

const (
	// Common reports the set of reached vertices, merged across starts.
	Common = rpq.Common
	// PerStart reports (start, reached) pairs, keeping starts distinct.
	PerStart = rpq.PerStart
)

// RPQByTensor parses regexText per the adapters regex dialect (spec §6)
// and runs rpq.TensorRPQ over g.
func RPQByTensor(g *graph.Graph, regexText string, starts, finals []string) (map[Pair]bool, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nfa, err := adapters.ParseRegex(regexText)
	if err != nil {
		return nil, fmt.Errorf("RPQByTensor: %w", err)
	}

	return rpq.TensorRPQ(g, nfa, starts, finals)
}

// RPQByBFS parses regexText and runs rpq.BFSRPQ over g in the given mode.
func RPQByBFS(g *graph.Graph, regexText string, starts, finals []string, mode Mode) (rpq.BFSResult, error) {
	if g == nil {
		return rpq.BFSResult{}, ErrNilGraph
	}
	nfa, err := adapters.ParseRegex(regexText)
	if err != nil {
		return rpq.BFSResult{}, fmt.Errorf("RPQByBFS: %w", err)
	}

	return rpq.BFSRPQ(g, nfa, starts, finals, mode)
}
