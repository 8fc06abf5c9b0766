// SPDX-License-Identifier: MIT
// Package rsm - Concat, Union, StarOf: build a fresh start box from the
// corresponding NFA combinator (package automaton) over the operands'
// start boxes, then fold in every box from the operands with its
// nonterminal suffixed (var,1)/(var,2) to keep the namespaces disjoint
// (spec §4.3). Any nonterminal-labeled transition inside a folded box is
// rewritten to the suffixed name so cross-box references stay valid.

package rsm

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
)

const (
	suffix1 = ",1)"
	suffix2 = ",2)"
)

// suffixName returns "(name,1)" / "(name,2)" per spec §4.3's literal
// (var,1)/(var,2) tagging convention.
func suffixName(name string, which int) string {
	if which == 1 {
		return "(" + name + suffix1
	}

	return "(" + name + suffix2
}

// renameBox copies a, renaming it does not rename the box's own identity
// (the caller keys the returned NFA under the suffixed name in the new
// RSM's box map) but DOES rewrite any transition symbol that names one of
// oldNames to its suffixed form, so references between sibling boxes of
// the same operand stay internally consistent.
func renameBox(a *automaton.NFA, oldNames map[string]bool, which int) *automaton.NFA {
	out := automaton.New()
	remap := make(map[int]int, a.StateCount())
	for _, s := range a.States() {
		remap[s.ID] = out.AddState(s.Data, s.IsStart, s.IsFinal)
	}
	for _, s := range a.States() {
		for _, sym := range a.OutSymbols(s.ID) {
			newSym := sym
			if oldNames[sym] {
				newSym = suffixName(sym, which)
			}
			for _, to := range a.Transitions(s.ID, sym) {
				_ = out.AddTransition(remap[s.ID], newSym, remap[to])
			}
		}
	}

	return out
}

func foldBoxes(dst map[string]*automaton.NFA, r *RSM, which int) {
	names := make(map[string]bool, len(r.boxes))
	for n := range r.boxes {
		names[n] = true
	}
	for name, box := range r.boxes {
		dst[suffixName(name, which)] = renameBox(box, names, which)
	}
}

// Concat returns the RSM for L(a)·L(b): a fresh start box built by
// automaton.Concat over a's and b's start boxes, plus every box from both
// operands (start boxes included), suffixed.
func Concat(a, b *RSM) (*RSM, error) {
	return combine(a, b, automaton.Concat, "·")
}

// Union returns the RSM for L(a)|L(b).
func Union(a, b *RSM) (*RSM, error) {
	return combine(a, b, automaton.Union, "|")
}

// StarOf returns the RSM for L(a)*: a fresh start box built by
// automaton.Star over a's start box, plus every box of a, suffixed.
func StarOf(a *RSM) (*RSM, error) {
	startA, err := a.StartBox()
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}

	freshStart := fmt.Sprintf("(%s)*", a.start)
	boxes := map[string]*automaton.NFA{
		freshStart: automaton.RemoveEpsilons(automaton.Star(startA)),
	}
	foldBoxes(boxes, a, 1)

	return New(freshStart, boxes), nil
}

func combine(a, b *RSM, op func(x, y *automaton.NFA) *automaton.NFA, glyph string) (*RSM, error) {
	startA, err := a.StartBox()
	if err != nil {
		return nil, fmt.Errorf("combine: %w", err)
	}
	startB, err := b.StartBox()
	if err != nil {
		return nil, fmt.Errorf("combine: %w", err)
	}

	freshStart := fmt.Sprintf("(%s%s%s)", a.start, glyph, b.start)
	boxes := map[string]*automaton.NFA{
		freshStart: automaton.RemoveEpsilons(op(startA, startB)),
	}
	foldBoxes(boxes, a, 1)
	foldBoxes(boxes, b, 2)

	return New(freshStart, boxes), nil
}
