// Package decomp implements the boolean decomposition (Decomp): the shared
// representation every RPQ/CFPQ engine in this module operates on. A
// Decomp pairs an ordered list of StateInfo (opaque data, start/final
// flags) with one sparse boolean adjacency matrix per symbol (package
// boolmatrix), so that "is there a word of the query language connecting
// u and v" reduces to boolean linear algebra: Kronecker products for
// automaton intersection, repeated squaring for transitive closure, and a
// direct-sum lift for constrained BFS.
//
// Chosen semantics (spec §9 open question — "pick one coherent generation"):
//   - FromNFA deduplicates states by Data and returns ErrDuplicateState if
//     two distinct NFA states carry equal Data (nil included) and dedup would
//     collapse them incompatibly (differing start/final flags).
//   - Intersection matrices are boolean, not counting: Or/Mxm/Kronecker
//     never produce an entry greater than 1.
//   - TransitiveClosureAnySymbol first sums all symbol matrices into one
//     boolean matrix (Or across the alphabet), then saturates that single
//     matrix by repeated squaring — not a per-symbol closure.
//
// A Decomp is single-owner and short-lived (spec §5): it is never shared
// between concurrent callers, and its matrices are rebuilt fresh per query.
package decomp
