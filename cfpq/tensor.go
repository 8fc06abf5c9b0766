// SPDX-License-Identifier: MIT
// Tensor CFPQ (spec §4.5): RSM∩graph fixed point. Grounded on the original
// `cfpq/tensor.py`, reusing the same product-decomposition machinery as
// rsm.Intersect/rpq.TensorRPQ (index arithmetic i*n_graph+j is identical).

package cfpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/decomp"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/rsm"
)

// grammarToRSM builds one box per WCNF nonterminal: A -> ε yields a single
// start+final state; A -> a yields start --a--> final; A -> B C yields
// start --B--> mid --C--> final. Multiple productions for the same head
// share that head's single start state (a standard NFA union of paths).
func grammarToRSM(wcnf *Grammar) *rsm.RSM {
	boxes := make(map[string]*automaton.NFA)
	heads := make(map[string]bool)
	for _, p := range wcnf.Prods {
		heads[p.Head] = true
	}
	for head := range heads {
		boxes[head] = automaton.New()
	}

	starts := make(map[string]int)
	for head, box := range boxes {
		starts[head] = box.AddState(head+"#start", true, false)
	}

	counter := 0
	fresh := func() int { counter++; return counter }

	for _, p := range wcnf.Prods {
		box := boxes[p.Head]
		start := starts[p.Head]
		switch len(p.Body) {
		case 0:
			_ = box.SetFinal(start, true)
		case 1:
			final := box.AddState(fmt.Sprintf("%s#f%d", p.Head, fresh()), false, true)
			_ = box.AddTransition(start, p.Body[0], final)
		case 2:
			mid := box.AddState(fmt.Sprintf("%s#m%d", p.Head, fresh()), false, false)
			final := box.AddState(fmt.Sprintf("%s#f%d", p.Head, fresh()), false, true)
			_ = box.AddTransition(start, p.Body[0], mid)
			_ = box.AddTransition(mid, p.Body[1], final)
		}
	}

	return rsm.New(wcnf.Start, boxes)
}

// ByTensor runs the Tensor CFPQ engine (spec §4.5) and returns the (u, v)
// pairs reachable under startSymbol, restricted to u ∈ starts and
// v ∈ finals (nil means "every vertex").
func ByTensor(g *graph.Graph, grammar *Grammar, starts, finals []string, startSymbol string) (map[Pair]bool, error) {
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
	box := grammarToRSM(wcnf)

	rsmDecomp, err := decomp.FromRSM(box, decomp.WithSortStates())
	if err != nil {
		return nil, fmt.Errorf("ByTensor: %w", err)
	}
	graphDecomp, err := decomp.FromGraph(g, decomp.WithSortStates())
	if err != nil {
		return nil, fmt.Errorf("ByTensor: %w", err)
	}
	nGraph := graphDecomp.N()

	adjs := make(map[string]*boolmatrix.Matrix, len(graphDecomp.Adjs))
	for sym, m := range graphDecomp.Adjs {
		adjs[sym] = m
	}

	// Seed every nullable box's variable with the identity, so a
	// zero-length path through that box's call is already present before
	// the first fixed-point round (spec §4.5 step 3).
	for _, p := range wcnf.Prods {
		if len(p.Body) != 0 {
			continue
		}
		if err := orIdentityInto(adjs, p.Head, nGraph); err != nil {
			return nil, fmt.Errorf("ByTensor: %w", err)
		}
	}
	graphDecomp = &decomp.Decomp{States: graphDecomp.States, Adjs: adjs}

	for {
		prod, err := rsmDecomp.Intersect(graphDecomp)
		if err != nil {
			return nil, fmt.Errorf("ByTensor: %w", err)
		}
		closure, err := prod.TransitiveClosureAnySymbol()
		if err != nil {
			return nil, fmt.Errorf("ByTensor: %w", err)
		}

		grew := false
		for _, p := range closure {
			ri, rj := p.Row/nGraph, p.Col/nGraph
			gi, gj := p.Row%nGraph, p.Col%nGraph
			si, sj := rsmDecomp.States[ri], rsmDecomp.States[rj]
			if !si.IsStart || !sj.IsFinal {
				continue
			}
			boxI, ok1 := si.Data.(decomp.RSMStateData)
			boxJ, ok2 := sj.Data.(decomp.RSMStateData)
			if !ok1 || !ok2 || boxI.Box != boxJ.Box {
				continue
			}
			v := boxI.Box

			has := false
			if m, ok := adjs[v]; ok {
				has, err = m.Get(gi, gj)
				if err != nil {
					return nil, fmt.Errorf("ByTensor: %w", err)
				}
			}
			if has {
				continue
			}

			bld := emptyBuilderOrExisting(adjs, v, nGraph)
			if err := bld.Set(gi, gj); err != nil {
				return nil, fmt.Errorf("ByTensor: %w", err)
			}
			adjs[v] = bld.Build()
			grew = true
		}
		graphDecomp = &decomp.Decomp{States: graphDecomp.States, Adjs: adjs}

		if !grew {
			break
		}
	}

	vertices := make([]string, nGraph)
	for i, si := range graphDecomp.States {
		vertices[i] = si.Data.(string)
	}

	var triples []triple
	seenHead := make(map[string]bool)
	for _, p := range wcnf.Prods {
		if seenHead[p.Head] {
			continue
		}
		seenHead[p.Head] = true
		mm, ok := adjs[p.Head]
		if !ok {
			continue
		}
		for _, pr := range mm.NonzeroPairs() {
			triples = append(triples, triple{u: vertices[pr.Row], variable: p.Head, v: vertices[pr.Col]})
		}
	}

	return project(triples, startSymbol, membershipFn(starts), membershipFn(finals)), nil
}

// orIdentityInto ORs the n x n identity matrix into adjs[v], materializing
// an empty matrix first if v has no entry yet.
func orIdentityInto(adjs map[string]*boolmatrix.Matrix, v string, n int) error {
	cur, ok := adjs[v]
	if !ok {
		var err error
		cur, err = boolmatrix.Empty(n, n)
		if err != nil {
			return err
		}
	}
	id, err := boolmatrix.Identity(n)
	if err != nil {
		return err
	}
	next, _, err := boolmatrix.Or(cur, id)
	if err != nil {
		return err
	}
	adjs[v] = next

	return nil
}

// emptyBuilderOrExisting returns a Builder seeded from adjs[v] (or empty if
// absent), ready for further Set calls.
func emptyBuilderOrExisting(adjs map[string]*boolmatrix.Matrix, v string, n int) *boolmatrix.Builder {
	if m, ok := adjs[v]; ok {
		return m.ToBuilder()
	}
	b, _ := boolmatrix.NewBuilder(n, n)

	return b
}
