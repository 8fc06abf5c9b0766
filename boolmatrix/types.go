package boolmatrix

// Matrix is an immutable sparse boolean matrix in compressed-sparse-row
// form: rowStart[i]..rowStart[i+1] indexes into colIdx for the sorted,
// deduplicated column indices present in row i.
//
// Matrix is safe for concurrent reads; there are no exported mutators — Or,
// Mxm, Kronecker, and BlockDiag all return a new Matrix.
type Matrix struct {
	rows, cols int
	rowStart   []int // len rows+1
	colIdx     []int // len rowStart[rows]; sorted ascending within each row
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of set entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.colIdx) }

// Builder accumulates (row, col) entries in dictionary-of-keys form before
// compiling them into a CSR Matrix via Build. A Builder is cheap to mutate
// one entry at a time; it is the construction-time counterpart to the
// compute-time Matrix.
type Builder struct {
	rows, cols int
	entries    []map[int]struct{} // entries[i] is the set of columns present in row i
}
