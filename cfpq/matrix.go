// SPDX-License-Identifier: MIT
// Matrix CFPQ (spec §4.5): one sparse boolean matrix per grammar variable,
// saturated by repeated M_A |= M_B * M_C. Grounded on the original
// `cfpq/matrix.py`.

package cfpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/graph"
)

// ByMatrix runs the Matrix CFPQ engine (spec §4.5) and returns the (u, v)
// pairs reachable under startSymbol, restricted to u ∈ starts and
// v ∈ finals (nil means "every vertex").
// Complexity: O(n^3 * |grammar|) worst case in the number of saturation
// rounds times the boolean matrix multiply cost.
func ByMatrix(g *graph.Graph, grammar *Grammar, starts, finals []string, startSymbol string) (map[Pair]bool, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if grammar == nil {
		return nil, ErrNilGrammar
	}
	if startSymbol == "" {
		startSymbol = grammar.Start
	}

	wcnf := DefaultNormalizer.Normalize(&Grammar{Start: startSymbol, Prods: grammar.Prods})

	vertices := g.Vertices()
	n := len(vertices)
	indexOf := make(map[string]int, n)
	for i, v := range vertices {
		indexOf[v] = i
	}

	if n == 0 {
		return map[Pair]bool{}, nil
	}

	m := make(map[string]*boolmatrix.Matrix)
	matrixFor := func(v string) (*boolmatrix.Matrix, error) {
		if mm, ok := m[v]; ok {
			return mm, nil
		}
		mm, err := boolmatrix.Empty(n, n)
		if err != nil {
			return nil, err
		}
		m[v] = mm

		return mm, nil
	}

	or := func(v string, add *boolmatrix.Matrix) error {
		cur, err := matrixFor(v)
		if err != nil {
			return err
		}
		next, _, err := boolmatrix.Or(cur, add)
		if err != nil {
			return err
		}
		m[v] = next

		return nil
	}

	for _, p := range wcnf.Prods {
		if len(p.Body) == 0 {
			id, err := boolmatrix.Identity(n)
			if err != nil {
				return nil, fmt.Errorf("ByMatrix: %w", err)
			}
			if err := or(p.Head, id); err != nil {
				return nil, fmt.Errorf("ByMatrix: %w", err)
			}
		}
	}
	for _, e := range g.Edges() {
		for _, p := range wcnf.Prods {
			if len(p.Body) == 1 && p.Body[0] == e.Label {
				b, err := boolmatrix.NewBuilder(n, n)
				if err != nil {
					return nil, fmt.Errorf("ByMatrix: %w", err)
				}
				_ = b.Set(indexOf[e.From], indexOf[e.To])
				if err := or(p.Head, b.Build()); err != nil {
					return nil, fmt.Errorf("ByMatrix: %w", err)
				}
			}
		}
	}

	for {
		grewAny := false
		for _, p := range wcnf.Prods {
			if len(p.Body) != 2 {
				continue
			}
			mb, err := matrixFor(p.Body[0])
			if err != nil {
				return nil, fmt.Errorf("ByMatrix: %w", err)
			}
			mc, err := matrixFor(p.Body[1])
			if err != nil {
				return nil, fmt.Errorf("ByMatrix: %w", err)
			}
			prod, err := boolmatrix.Mxm(mb, mc)
			if err != nil {
				return nil, fmt.Errorf("ByMatrix: %w", err)
			}
			ma, err := matrixFor(p.Head)
			if err != nil {
				return nil, fmt.Errorf("ByMatrix: %w", err)
			}
			next, grew, err := boolmatrix.Or(ma, prod)
			if err != nil {
				return nil, fmt.Errorf("ByMatrix: %w", err)
			}
			m[p.Head] = next
			grewAny = grewAny || grew
		}
		if !grewAny {
			break
		}
	}

	var triples []triple
	for varName, mm := range m {
		for _, pr := range mm.NonzeroPairs() {
			triples = append(triples, triple{u: vertices[pr.Row], variable: varName, v: vertices[pr.Col]})
		}
	}

	return project(triples, startSymbol, membershipFn(starts), membershipFn(finals)), nil
}
