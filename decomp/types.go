package decomp

import (
	"sort"

	"github.com/katalvlaran/pathql/boolmatrix"
)

// StateInfo mirrors spec §3's (data, is_start, is_final) triple for one
// row/column index of every matrix in a Decomp.
type StateInfo struct {
	Data    interface{}
	IsStart bool
	IsFinal bool
}

// Decomp is the boolean-matrix decomposition of a graph, NFA, or RSM: an
// ordered state list plus one sparse boolean matrix per symbol. A missing
// key in Adjs is equivalent to the all-zero matrix and is never
// materialized (spec §3).
//
// Decomp is not internally synchronized; it is single-owner and short-lived
// per spec §5.
type Decomp struct {
	States []StateInfo
	Adjs   map[string]*boolmatrix.Matrix
}

// Option configures Decomp construction (FromNFA, FromRSM).
type Option func(*config)

type config struct {
	sortStates bool
}

// WithSortStates requests deterministic ordering of States by Data's
// formatted representation. Required by Rsm.Intersect's tensor CFPQ step
// (spec §4.3), which needs a stable index encoding across two separately
// built decompositions.
func WithSortStates() Option {
	return func(c *config) { c.sortStates = true }
}

func resolveConfig(opts ...Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}

	return c
}

// N returns the number of states (the shared matrix dimension).
func (d *Decomp) N() int { return len(d.States) }

// Matrix returns the adjacency matrix for symbol, materializing an empty
// N()xN() matrix if symbol has no entries yet (callers that only read
// should prefer this over touching Adjs directly, since a missing key must
// never be confused with an error).
func (d *Decomp) Matrix(symbol string) (*boolmatrix.Matrix, error) {
	if m, ok := d.Adjs[symbol]; ok {
		return m, nil
	}

	return boolmatrix.Empty(d.N(), d.N())
}

// Alphabet returns the distinct symbols with a materialized (non-empty-by-
// construction) matrix, sorted.
func (d *Decomp) Alphabet() []string {
	out := make([]string, 0, len(d.Adjs))
	for s := range d.Adjs {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}
