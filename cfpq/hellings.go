// SPDX-License-Identifier: MIT
// Hellings' algorithm (spec §4.5): worklist-driven triple saturation.
// Grounded on the original `cfpq/hellings.py`'s `(v1, var, v2)` worklist.

package cfpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

// varPair is one A -> B C production's right-hand side, grouped by head so
// the worklist loop can look up "which heads does (B,C) complete" in O(1).
type varPair struct{ b, c string }

type hellingsTriple struct{ u, variable, v string }

// ByHellings runs Hellings' algorithm (spec §4.5) and returns the
// (u, v) pairs reachable under startSymbol, restricted to u ∈ starts and
// v ∈ finals (nil means "every vertex").
// Complexity: O(n^3 * |grammar|) worst case, where n = |g.Vertices()|.
func ByHellings(g *graph.Graph, grammar *Grammar, starts, finals []string, startSymbol string) (map[Pair]bool, error) {
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

	varProds := make(map[string][]varPair) // head -> its A -> B C bodies
	termHeads := make(map[string][]string) // terminal -> heads with A -> a
	nullableHeads := make(map[string]bool)
	for _, p := range wcnf.Prods {
		switch len(p.Body) {
		case 0:
			nullableHeads[p.Head] = true
		case 1:
			termHeads[p.Body[0]] = append(termHeads[p.Body[0]], p.Head)
		case 2:
			varProds[p.Head] = append(varProds[p.Head], varPair{b: p.Body[0], c: p.Body[1]})
		default:
			return nil, fmt.Errorf("ByHellings: production %s has non-WCNF body length %d", p.Head, len(p.Body))
		}
	}
	// heads[(b,c)] -> list of heads A such that A -> B C; built once so the
	// worklist step doesn't re-scan every head's varProds per triple.
	headsFor := make(map[varPair][]string)
	for head, pairs := range varProds {
		for _, pr := range pairs {
			headsFor[pr] = append(headsFor[pr], head)
		}
	}

	res := make(map[hellingsTriple]bool)
	byLeft := make(map[string][]hellingsTriple)  // u -> triples starting at u
	byRight := make(map[string][]hellingsTriple) // v -> triples ending at v
	var worklist []hellingsTriple
	add := func(t hellingsTriple) {
		if res[t] {
			return
		}
		res[t] = true
		worklist = append(worklist, t)
		byLeft[t.u] = append(byLeft[t.u], t)
		byRight[t.v] = append(byRight[t.v], t)
	}

	for _, v := range g.Vertices() {
		for head := range nullableHeads {
			add(hellingsTriple{u: v, variable: head, v: v})
		}
	}
	for _, e := range g.Edges() {
		for _, head := range termHeads[e.Label] {
			add(hellingsTriple{u: e.From, variable: head, v: e.To})
		}
	}

	for len(worklist) > 0 {
		t1 := worklist[0]
		worklist = worklist[1:]

		// existing (u2, Vj, v2=u1): completes heads where (Vj,Vi) in headsFor
		for _, t2 := range byRight[t1.u] {
			for _, head := range headsFor[varPair{b: t2.variable, c: t1.variable}] {
				add(hellingsTriple{u: t2.u, variable: head, v: t1.v})
			}
		}
		// existing (u2=v1, Vj, v2): completes heads where (Vi,Vj) in headsFor
		for _, t2 := range byLeft[t1.v] {
			for _, head := range headsFor[varPair{b: t1.variable, c: t2.variable}] {
				add(hellingsTriple{u: t1.u, variable: head, v: t2.v})
			}
		}
	}

	triples := make([]triple, 0, len(res))
	for t := range res {
		triples = append(triples, triple{u: t.u, variable: t.variable, v: t.v})
	}

	return project(triples, startSymbol, membershipFn(starts), membershipFn(finals)), nil
}

func membershipFn(vs []string) func(string) bool {
	if vs == nil {
		return nil
	}
	set := make(map[string]bool, len(vs))
	for _, v := range vs {
		set[v] = true
	}

	return func(s string) bool { return set[s] }
}
