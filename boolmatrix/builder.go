// SPDX-License-Identifier: MIT
// Package boolmatrix: DOK builder.
//
// Contract:
//   - NewBuilder(rows, cols) never fails on rows==0 or cols==0 (empty matrices
//     are first-class); it fails only on negative dimensions.
//   - Set(i,j) is idempotent and O(1) amortized.
//   - Build() compiles the builder into an immutable CSR Matrix in
//     O(nnz log d) time (per-row sort), O(rows+nnz) space.
//
// AI-Hints:
//   - Reuse one Builder across many Set calls when constructing a Decomp's
//     per-symbol matrices; call Build once per symbol at the end.
//   - To grow an existing Matrix, use Matrix.ToBuilder(), mutate, then Build.

package boolmatrix

import "sort"

const opNewBuilder = "NewBuilder"

// NewBuilder allocates a Builder for a rows x cols boolean matrix under
// construction. Returns ErrBadShape if rows<0 or cols<0.
// Complexity: O(rows) time and space (one map slot per row, allocated lazily).
func NewBuilder(rows, cols int) (*Builder, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, validatorErrorf(opNewBuilder, err)
	}

	return &Builder{
		rows:    rows,
		cols:    cols,
		entries: make([]map[int]struct{}, rows),
	}, nil
}

// Set marks (i,j) present. Returns ErrOutOfRange if (i,j) is outside bounds.
// Complexity: O(1) amortized.
func (b *Builder) Set(i, j int) error {
	if err := ValidateIndex(b.rows, b.cols, i, j); err != nil {
		return validatorErrorf("Builder.Set", err)
	}

	if b.entries[i] == nil {
		b.entries[i] = make(map[int]struct{})
	}
	b.entries[i][j] = struct{}{}

	return nil
}

// Unset removes (i,j) if present; a no-op otherwise.
// Complexity: O(1).
func (b *Builder) Unset(i, j int) error {
	if err := ValidateIndex(b.rows, b.cols, i, j); err != nil {
		return validatorErrorf("Builder.Unset", err)
	}

	if b.entries[i] != nil {
		delete(b.entries[i], j)
	}

	return nil
}

// Get reports whether (i,j) is currently set.
// Complexity: O(1).
func (b *Builder) Get(i, j int) bool {
	if i < 0 || i >= b.rows || b.entries[i] == nil {
		return false
	}
	_, ok := b.entries[i][j]

	return ok
}

// Build compiles the accumulated entries into an immutable CSR Matrix.
// The Builder remains usable afterward; Build does not consume it.
// Complexity: O(nnz log d) time (row-local sort), O(rows+nnz) space.
func (b *Builder) Build() *Matrix {
	rowStart := make([]int, b.rows+1)
	total := 0
	for i := 0; i < b.rows; i++ {
		total += len(b.entries[i])
		rowStart[i+1] = total
	}

	colIdx := make([]int, 0, total)
	for i := 0; i < b.rows; i++ {
		row := b.entries[i]
		if len(row) == 0 {
			continue
		}
		cols := make([]int, 0, len(row))
		for c := range row {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		colIdx = append(colIdx, cols...)
	}

	return &Matrix{rows: b.rows, cols: b.cols, rowStart: rowStart, colIdx: colIdx}
}
