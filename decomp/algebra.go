// SPDX-License-Identifier: MIT
// Package decomp - Intersect, DirectSum, TransitiveClosureAnySymbol.

package decomp

import (
	"fmt"

	"github.com/katalvlaran/pathql/boolmatrix"
)

// PairData is the Data every state of an Intersect result carries: the two
// component states' own Data, paired. Exported so callers (package rpq's
// TensorRPQ, package cfpq's Tensor) can recover each side's original state
// data from a product Decomp.
type PairData struct {
	A, B interface{}
}

// Intersect returns the product decomposition of d and other: states are
// the Cartesian product in (i*|other.States|+j) order (spec §4.2); a
// product state is start (resp. final) iff both components are. Only
// symbols present in BOTH operands contribute a matrix — a symbol present
// in only one side would Kronecker against an implicit zero matrix on the
// other, which is the all-zero matrix, so it is correctly omitted rather
// than materialized (spec §3's "missing key ~ zero, never materialized").
// Complexity: O(n1*n2) states; O(nnz1*nnz2) per shared symbol.
func (d *Decomp) Intersect(other *Decomp) (*Decomp, error) {
	if d == nil || other == nil {
		return nil, fmt.Errorf("Intersect: %w", ErrNilDecomp)
	}

	n1, n2 := d.N(), other.N()
	states := make([]StateInfo, 0, n1*n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			states = append(states, StateInfo{
				Data:    PairData{A: d.States[i].Data, B: other.States[j].Data},
				IsStart: d.States[i].IsStart && other.States[j].IsStart,
				IsFinal: d.States[i].IsFinal && other.States[j].IsFinal,
			})
		}
	}

	adjs := make(map[string]*boolmatrix.Matrix)
	for sym, m1 := range d.Adjs {
		m2, ok := other.Adjs[sym]
		if !ok {
			continue
		}
		adjs[sym] = boolmatrix.Kronecker(m1, m2)
	}

	return &Decomp{States: states, Adjs: adjs}, nil
}

// DirectSum returns the block-diagonal direct sum of d and other: states
// are concatenated (d's states first), and every symbol present in either
// operand gets BlockDiag(d.Adjs[sym] or zero, other.Adjs[sym] or zero).
// Used by ConstrainedBFS so a single Mxm step advances both halves under a
// shared symbol.
func (d *Decomp) DirectSum(other *Decomp) (*Decomp, error) {
	if d == nil || other == nil {
		return nil, fmt.Errorf("DirectSum: %w", ErrNilDecomp)
	}

	states := make([]StateInfo, 0, d.N()+other.N())
	states = append(states, d.States...)
	states = append(states, other.States...)

	symbols := make(map[string]struct{})
	for s := range d.Adjs {
		symbols[s] = struct{}{}
	}
	for s := range other.Adjs {
		symbols[s] = struct{}{}
	}

	adjs := make(map[string]*boolmatrix.Matrix, len(symbols))
	for sym := range symbols {
		a, err := d.Matrix(sym)
		if err != nil {
			return nil, fmt.Errorf("DirectSum: %w", err)
		}
		b, err := other.Matrix(sym)
		if err != nil {
			return nil, fmt.Errorf("DirectSum: %w", err)
		}
		adjs[sym] = boolmatrix.BlockDiag(a, b)
	}

	return &Decomp{States: states, Adjs: adjs}, nil
}

// TransitiveClosureAnySymbol computes M = OR over every symbol's matrix,
// then saturates M <- M | (M*M) until NNZ stops growing, and returns every
// set (i,j) pair of the saturated matrix. Idempotent: applying it again to
// an already-closed set of pairs reproduces the same pairs (spec §8).
// Complexity: O(log n) saturation rounds expected, each O(nnz * maxDegree).
func (d *Decomp) TransitiveClosureAnySymbol() ([]boolmatrix.Pair, error) {
	n := d.N()
	m, err := boolmatrix.Empty(n, n)
	if err != nil {
		return nil, fmt.Errorf("TransitiveClosureAnySymbol: %w", err)
	}
	for _, sym := range d.Alphabet() {
		grew := false
		m, grew, err = boolmatrix.Or(m, d.Adjs[sym])
		if err != nil {
			return nil, fmt.Errorf("TransitiveClosureAnySymbol: %w", err)
		}
		_ = grew
	}

	for {
		sq, err := boolmatrix.Mxm(m, m)
		if err != nil {
			return nil, fmt.Errorf("TransitiveClosureAnySymbol: %w", err)
		}
		next, grew, err := boolmatrix.Or(m, sq)
		if err != nil {
			return nil, fmt.Errorf("TransitiveClosureAnySymbol: %w", err)
		}
		m = next
		if !grew {
			break
		}
	}

	return m.NonzeroPairs(), nil
}
