// SPDX-License-Identifier: MIT
// Package boolmatrix - the four algebraic kernels every engine composes:
// Or (element-wise union), Mxm (boolean product, OR-of-ANDs), Kronecker
// (product-automaton adjacency), BlockDiag (direct-sum adjacency).
//
// Complexity is documented per op; all four are O(1) on a pair of empty
// matrices and never panic on mismatched-but-valid shapes — they return a
// sentinel error instead.

package boolmatrix

const (
	opOr        = "Or"
	opMxm       = "Mxm"
	opKronecker = "Kronecker"
	opBlockDiag = "BlockDiag"
)

// Or returns the element-wise boolean union a|b and reports whether the
// result has more nonzeros than a (i.e. whether OR-ing b into a would grow
// it) — the signal constrained_bfs and transitive_closure_any_symbol use to
// detect a fixed point.
// Requires a and b to have identical shape (ErrDimensionMismatch otherwise).
// Complexity: O(nnz(a)+nnz(b)) time, O(nnz(a)+nnz(b)) space.
func Or(a, b *Matrix) (result *Matrix, grew bool, err error) {
	if err = ValidateSameShape(a, b); err != nil {
		return nil, false, validatorErrorf(opOr, err)
	}

	bld := a.ToBuilder()
	before := len(a.colIdx)
	for _, p := range b.NonzeroPairs() {
		_ = bld.Set(p.Row, p.Col)
	}
	result = bld.Build()

	return result, len(result.colIdx) > before, nil
}

// Mxm computes the boolean matrix product a*b (OR-of-ANDs): entry (i,k) is
// set iff there exists j with a[i,j] and b[j,k] both set.
// Requires a.Cols() == b.Rows() (ErrDimensionMismatch otherwise).
// Complexity: O(Σ_i a.degree(i) * b.degree(j)) in the worst case; bounded by
// O(nnz(a) * maxRowDegree(b)).
func Mxm(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMxmShape(a, b); err != nil {
		return nil, validatorErrorf(opMxm, err)
	}

	bld, _ := NewBuilder(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		lo, hi := a.rowStart[i], a.rowStart[i+1]
		for k := lo; k < hi; k++ {
			j := a.colIdx[k]
			jlo, jhi := b.rowStart[j], b.rowStart[j+1]
			for m := jlo; m < jhi; m++ {
				_ = bld.Set(i, b.colIdx[m])
			}
		}
	}

	return bld.Build(), nil
}

// Kronecker returns the Kronecker product a⊗b, shape (a.Rows*b.Rows) x
// (a.Cols*b.Cols). Entry ((i1*rb+i2), (j1*cb+j2)) is set iff a[i1,j1] and
// b[i2,j2] are both set. This realizes product-automaton adjacency: the
// state index encoding (i1*|B|+i2) is exactly the one decomp.Decomp's
// Intersect uses for its Cartesian-product states.
// Complexity: O(nnz(a)*nnz(b)) time and space — the Kronecker product's
// output size is inherently multiplicative.
func Kronecker(a, b *Matrix) *Matrix {
	rows, cols := a.rows*b.rows, a.cols*b.cols
	bld, _ := NewBuilder(rows, cols)

	for _, pa := range a.NonzeroPairs() {
		for _, pb := range b.NonzeroPairs() {
			i := pa.Row*b.rows + pb.Row
			j := pa.Col*b.cols + pb.Col
			_ = bld.Set(i, j)
		}
	}

	return bld.Build()
}

// BlockDiag places a in the top-left block and b in the bottom-right block
// of a (a.Rows+b.Rows) x (a.Cols+b.Cols) result; the off-diagonal blocks
// are all zero. This is the direct-sum adjacency constrained_bfs uses so a
// single Mxm step advances both the constraint automaton's front and the
// graph's front under one shared symbol.
// Complexity: O(nnz(a)+nnz(b)) time and space.
func BlockDiag(a, b *Matrix) *Matrix {
	rows, cols := a.rows+b.rows, a.cols+b.cols
	bld, _ := NewBuilder(rows, cols)

	for _, p := range a.NonzeroPairs() {
		_ = bld.Set(p.Row, p.Col)
	}
	for _, p := range b.NonzeroPairs() {
		_ = bld.Set(a.rows+p.Row, a.cols+p.Col)
	}

	return bld.Build()
}
