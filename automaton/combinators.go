// SPDX-License-Identifier: MIT
// Package automaton - classic NFA combinators (Concat, Union, Star) used to
// build the fresh "start box" for RSM Concat/Union/Star (package rsm) and
// by the regex Thompson construction in package adapters.
//
// Each combinator copies both operands' states into a single fresh NFA
// (threading a running index counter so the two operands never collide —
// spec §9's "fresh start index" design note), wires them together with
// epsilon transitions, and leaves the result epsilon-full; callers call
// RemoveEpsilons immediately afterward, per spec §9's epsilon-handling rule.

package automaton

// copyInto copies every state and transition of src into dst, returning a
// map from src's state IDs to the corresponding dst IDs. stripFlags, if
// true, clears IsStart/IsFinal on the copies (the caller will set its own
// flags on the fresh start/final states instead).
func copyInto(dst *NFA, src *NFA, stripFlags bool) map[int]int {
	remap := make(map[int]int, src.StateCount())
	for _, s := range src.States() {
		isStart, isFinal := s.IsStart, s.IsFinal
		if stripFlags {
			isStart, isFinal = false, false
		}
		remap[s.ID] = dst.AddState(s.Data, isStart, isFinal)
	}
	for _, s := range src.States() {
		for _, sym := range src.OutSymbols(s.ID) {
			for _, to := range src.Transitions(s.ID, sym) {
				_ = dst.AddTransition(remap[s.ID], sym, remap[to])
			}
		}
	}

	return remap
}

// Concat returns an NFA for L(a)·L(b): a's starts stay start states, a's
// finals are epsilon-linked to b's starts (finality cleared), and b's
// finals are kept final. No fresh state is added.
func Concat(a, b *NFA) *NFA {
	out := New()
	ra := copyInto(out, a, true)
	rb := copyInto(out, b, true)

	for _, s := range a.States() {
		if s.IsFinal {
			for _, s2 := range b.States() {
				if s2.IsStart {
					_ = out.AddTransition(ra[s.ID], Epsilon, rb[s2.ID])
				}
			}
		}
	}
	for _, s := range a.States() {
		if s.IsStart {
			_ = out.SetStart(ra[s.ID], true)
		}
	}
	for _, s := range b.States() {
		if s.IsFinal {
			_ = out.SetFinal(rb[s.ID], true)
		}
	}

	return out
}

// Union returns an NFA for L(a)|L(b): a fresh start state epsilon-linked to
// both operands' starts; both operands' finals remain final.
func Union(a, b *NFA) *NFA {
	out := New()
	start := out.AddState(new(struct{}), true, false) // fresh synthetic state; a unique pointer avoids Data collisions when this result is itself copied into an enclosing combinator
	ra := copyInto(out, a, false)
	rb := copyInto(out, b, false)

	for _, s := range a.States() {
		if s.IsStart {
			_ = out.AddTransition(start, Epsilon, ra[s.ID])
		}
	}
	for _, s := range b.States() {
		if s.IsStart {
			_ = out.AddTransition(start, Epsilon, rb[s.ID])
		}
	}

	return out
}

// Star returns an NFA for L(a)*: a fresh start state that is also final
// (accepts epsilon), epsilon-linked to a's starts, with a's finals
// epsilon-linked back to a's starts (looping) and to the fresh start.
func Star(a *NFA) *NFA {
	out := New()
	start := out.AddState(new(struct{}), true, true) // fresh synthetic state; see Union's comment on why not nil
	ra := copyInto(out, a, false)

	for _, s := range a.States() {
		if s.IsStart {
			_ = out.AddTransition(start, Epsilon, ra[s.ID])
		}
	}
	for _, s := range a.States() {
		if s.IsFinal {
			for _, s2 := range a.States() {
				if s2.IsStart {
					_ = out.AddTransition(ra[s.ID], Epsilon, ra[s2.ID])
				}
			}
			_ = out.AddTransition(ra[s.ID], Epsilon, start)
		}
	}

	return out
}
