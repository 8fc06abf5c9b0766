// Package boolmatrix implements sparse boolean matrices over a fixed
// (rows, cols) shape: every entry is present or absent, there is no weight
// or magnitude. This is the linear-algebra substrate the rest of the module
// is built on — boolean decompositions (package decomp), NFA/RSM product
// constructions, and every RPQ/CFPQ engine express their core step as one of
// Or, Mxm, Kronecker, or BlockDiag over these matrices.
//
// Construction uses a DOK (dictionary-of-keys) Builder: O(1) amortized Set,
// cheap to mutate one entry at a time. Build() compiles a Builder into an
// immutable CSR (compressed sparse row) Matrix: sorted column indices per
// row, O(1) Rows/Cols/NNZ, O(log d) Get where d is row degree. Matrix
// operations that need to grow (Or) round-trip through a fresh
// Builder and rebuild; this keeps the hot path (Mxm, Kronecker, row/col
// slicing, nonzero iteration) over the compact CSR representation, which is
// where the module spends the overwhelming majority of its time.
//
// Empty-matrix arithmetic is always well defined: a 0-row or 0-col matrix
// participates in Or/Mxm/Kronecker/BlockDiag and produces the algebraically
// correct (empty) result rather than panicking, since the module runs these
// operations over zero-vertex graphs and zero-state automata as a matter of
// course (an empty query graph, an NFA with no transitions for a symbol).
package boolmatrix
