// SPDX-License-Identifier: MIT
// Package rsm - Intersect(nfa): RSM∩NFA intersection (spec §4.3).
//
// The algorithm runs the same tensor-CFPQ fixed point as package cfpq's
// Tensor engine (spec §4.5), but with the roles swapped: the NFA plays the
// "graph" whose per-nonterminal adjacency gets fixed-point-populated, and
// the receiver RSM plays the query grammar. Once the fixed point settles,
// working[V] is a boolean matrix over NFA states marking every (p,q) pair
// V's box can connect — exactly the information needed to remap every
// nonterminal-labeled transition "U -V-> U'" into a fresh nonterminal
// "V[p,q]" parameterized by the NFA states the synchronized walk passes
// through, producing a new, well-formed RSM (spec's "Remap
// variable-labeled transitions into fresh nonterminals per (box_var,
// nfa_start_state, nfa_final_state)").

package rsm

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/decomp"
)

type freshKey struct {
	v    string
	p, q int
}

type intersectCtx struct {
	r        *RSM
	nfa      *automaton.NFA
	nN       int
	working  map[string]*boolmatrix.Matrix
	built    map[string]bool
	worklist []freshKey
}

func (c *intersectCtx) freshName(v string, p, q int) string {
	return fmt.Sprintf("%s[%d,%d]", v, p, q)
}

func (c *intersectCtx) enqueue(v string, p, q int) {
	name := c.freshName(v, p, q)
	if c.built[name] {
		return
	}
	c.built[name] = true
	c.worklist = append(c.worklist, freshKey{v: v, p: p, q: q})
}

// Intersect returns a new RSM for L(r) ∩ L(nfa). nfa must be epsilon-free
// (spec §3: "public engines assume epsilon-free input"); call
// automaton.RemoveEpsilons first if it is not.
func (r *RSM) Intersect(nfa *automaton.NFA) (*RSM, error) {
	rsmDecomp, err := decomp.FromRSM(r, decomp.WithSortStates())
	if err != nil {
		return nil, fmt.Errorf("Intersect: %w", err)
	}
	nfaDecomp, err := decomp.FromNFA(nfa)
	if err != nil {
		return nil, fmt.Errorf("Intersect: %w", err)
	}
	nN := nfaDecomp.N()

	boxOf := make([]string, rsmDecomp.N())
	for i, st := range rsmDecomp.States {
		boxOf[i] = st.Data.(decomp.RSMStateData).Box
	}

	working := make(map[string]*boolmatrix.Matrix, len(r.boxes))
	for name := range r.boxes {
		if m, ok := nfaDecomp.Adjs[name]; ok {
			working[name] = m
		} else {
			working[name], err = boolmatrix.Empty(nN, nN)
			if err != nil {
				return nil, fmt.Errorf("Intersect: %w", err)
			}
		}
	}
	// Seed nullable boxes (a start state that is also final) with the
	// identity matrix: an epsilon-derivable nonterminal connects every NFA
	// state to itself.
	for i, st := range rsmDecomp.States {
		if st.IsStart && st.IsFinal {
			id, err := boolmatrix.Identity(nN)
			if err != nil {
				return nil, fmt.Errorf("Intersect: %w", err)
			}
			grown, _, err := boolmatrix.Or(working[boxOf[i]], id)
			if err != nil {
				return nil, fmt.Errorf("Intersect: %w", err)
			}
			working[boxOf[i]] = grown
		}
	}

	for {
		wDecomp := &decomp.Decomp{States: nfaDecomp.States, Adjs: mergeAdjs(nfaDecomp.Adjs, working)}
		prod, err := rsmDecomp.Intersect(wDecomp)
		if err != nil {
			return nil, fmt.Errorf("Intersect: %w", err)
		}
		pairs, err := prod.TransitiveClosureAnySymbol()
		if err != nil {
			return nil, fmt.Errorf("Intersect: %w", err)
		}

		grew := false
		for _, p := range pairs {
			rsmI, nfaP := p.Row/nN, p.Row%nN
			rsmJ, nfaQ := p.Col/nN, p.Col%nN
			name := boxOf[rsmI]
			if name != boxOf[rsmJ] {
				continue
			}
			if !rsmDecomp.States[rsmI].IsStart || !rsmDecomp.States[rsmJ].IsFinal {
				continue
			}
			if ok, _ := working[name].Get(nfaP, nfaQ); ok {
				continue
			}
			b := working[name].ToBuilder()
			_ = b.Set(nfaP, nfaQ)
			working[name] = b.Build()
			grew = true
		}
		if !grew {
			break
		}
	}

	ctx := &intersectCtx{r: r, nfa: nfa, nN: nN, working: working, built: make(map[string]bool)}
	newBoxes := make(map[string]*automaton.NFA)
	startName := r.start + "∩"
	newBoxes[startName] = ctx.buildBox(r.start,
		func(p int) bool { return nfa.States()[p].IsStart },
		func(q int) bool { return nfa.States()[q].IsFinal })

	for len(ctx.worklist) > 0 {
		k := ctx.worklist[0]
		ctx.worklist = ctx.worklist[1:]
		newBoxes[ctx.freshName(k.v, k.p, k.q)] = ctx.buildBox(k.v,
			func(p int) bool { return p == k.p },
			func(q int) bool { return q == k.q })
	}

	return New(startName, newBoxes), nil
}

// buildBox returns the product automaton for boxName's box against ctx.nfa:
// states are (box-state, nfa-state) pairs; terminal transitions require a
// matching nfa edge under the same symbol; nonterminal-labeled transitions
// are rewritten to the fresh "V[p,q]" nonterminal for every (p,q) pair
// ctx.working[V] marks reachable, enqueuing that fresh box if not already
// built.
func (c *intersectCtx) buildBox(boxName string, startPred, finalPred func(int) bool) *automaton.NFA {
	box := c.r.boxes[boxName]
	out := automaton.New()
	ids := make(map[int]int, box.StateCount()*c.nN)
	for _, s := range box.States() {
		for p := 0; p < c.nN; p++ {
			id := out.AddState([2]interface{}{s.Data, p}, s.IsStart && startPred(p), s.IsFinal && finalPred(p))
			ids[s.ID*c.nN+p] = id
		}
	}
	for _, s := range box.States() {
		for _, sym := range box.OutSymbols(s.ID) {
			_, isNonterm := c.r.boxes[sym]
			for _, to := range box.Transitions(s.ID, sym) {
				if !isNonterm {
					for p := 0; p < c.nN; p++ {
						for _, q := range c.nfa.Transitions(p, sym) {
							_ = out.AddTransition(ids[s.ID*c.nN+p], sym, ids[to*c.nN+q])
						}
					}
					continue
				}
				m := c.working[sym]
				for p := 0; p < c.nN; p++ {
					qs, _ := m.Row(p)
					for _, q := range qs {
						c.enqueue(sym, p, q)
						_ = out.AddTransition(ids[s.ID*c.nN+p], c.freshName(sym, p, q), ids[to*c.nN+q])
					}
				}
			}
		}
	}

	return out
}

func mergeAdjs(base, overrides map[string]*boolmatrix.Matrix) map[string]*boolmatrix.Matrix {
	out := make(map[string]*boolmatrix.Matrix, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}

	return out
}
