// SPDX-License-Identifier: MIT

package query

import (
	"fmt"

	"github.com/katalvlaran/pathql/adapters"
	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/graph"
)

// CFPQByHellings parses cfgText per the adapters CFG dialect (spec §6) and
// runs cfpq.ByHellings over g. startSymbol defaults to the grammar's own
// start when empty.
func CFPQByHellings(g *graph.Graph, cfgText string, starts, finals []string, startSymbol string) (map[cfpq.Pair]bool, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	grammar, err := adapters.ParseCFG(cfgText)
	if err != nil {
		return nil, fmt.Errorf("CFPQByHellings: %w", err)
	}

	return cfpq.ByHellings(g, grammar, starts, finals, startSymbol)
}

// CFPQByMatrix parses cfgText and runs cfpq.ByMatrix over g.
func CFPQByMatrix(g *graph.Graph, cfgText string, starts, finals []string, startSymbol string) (map[cfpq.Pair]bool, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	grammar, err := adapters.ParseCFG(cfgText)
	if err != nil {
		return nil, fmt.Errorf("CFPQByMatrix: %w", err)
	}

	return cfpq.ByMatrix(g, grammar, starts, finals, startSymbol)
}

// CFPQByTensor parses cfgText and runs cfpq.ByTensor over g.
func CFPQByTensor(g *graph.Graph, cfgText string, starts, finals []string, startSymbol string) (map[cfpq.Pair]bool, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	grammar, err := adapters.ParseCFG(cfgText)
	if err != nil {
		return nil, fmt.Errorf("CFPQByTensor: %w", err)
	}

	return cfpq.ByTensor(g, grammar, starts, finals, startSymbol)
}
