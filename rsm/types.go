package rsm

import "github.com/katalvlaran/pathql/automaton"

// RSM is a Recursive State Machine: a start nonterminal name plus a map
// from nonterminal name to its box NFA. It implements decomp.RSMView so
// decomp.FromRSM can build a boolean decomposition spanning every box
// without this package importing decomp (which would create an import
// cycle, since GetReachables and Intersect need decomp themselves).
type RSM struct {
	start string
	boxes map[string]*automaton.NFA
}

// New returns an RSM with the given start nonterminal and box map. The map
// is retained by reference; callers should not mutate it afterward.
func New(start string, boxes map[string]*automaton.NFA) *RSM {
	return &RSM{start: start, boxes: boxes}
}

// StartSymbol returns the start nonterminal's name.
func (r *RSM) StartSymbol() string { return r.start }

// BoxNames returns every registered nonterminal name, unordered.
func (r *RSM) BoxNames() []string {
	out := make([]string, 0, len(r.boxes))
	for name := range r.boxes {
		out = append(out, name)
	}

	return out
}

// Box returns the NFA box for name, or nil if none is registered.
func (r *RSM) Box(name string) *automaton.NFA { return r.boxes[name] }

// StartBox returns the box for the start nonterminal, or ErrNoStartBox.
func (r *RSM) StartBox() (*automaton.NFA, error) {
	b, ok := r.boxes[r.start]
	if !ok {
		return nil, ErrNoStartBox
	}

	return b, nil
}
