// SPDX-License-Identifier: MIT
// Package decomp - Restrict: narrow a Decomp's IsStart/IsFinal flags to a
// caller-supplied subset, used by package rpq to apply the optional
// starts?/finals? vertex filters (spec §4.4/§4.5) before running an engine,
// rather than post-filtering its output (which would compute, and for
// common-mode BFS conflate, reachability from vertices the caller never
// asked to start from).

package decomp

// Restrict returns a copy of d whose States have IsStart set only where
// keep(d.States[i].Data) holds for the "starts" predicate (and similarly
// IsFinal via the "finals" predicate); a nil predicate keeps the original
// flag unchanged. Adjs is shared with d (flags do not affect adjacency).
func (d *Decomp) Restrict(starts, finals func(data interface{}) bool) *Decomp {
	states := make([]StateInfo, len(d.States))
	copy(states, d.States)
	for i, s := range states {
		if starts != nil {
			s.IsStart = s.IsStart && starts(s.Data)
		}
		if finals != nil {
			s.IsFinal = s.IsFinal && finals(s.Data)
		}
		states[i] = s
	}

	return &Decomp{States: states, Adjs: d.Adjs}
}
