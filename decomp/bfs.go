// SPDX-License-Identifier: MIT
// Package decomp - ConstrainedBFS: regular-reachability-by-BFS over the
// direct sum of a constraint automaton and the receiver (graph) decomp.
//
// The front is a sparse boolean matrix of shape (rows, k+n): k =
// constraint.N(), n = self.N(). Its left k-column block tracks "currently
// at constraint state i"; its right n-column block tracks the candidate
// graph states reached so far along that constraint state. One Mxm per
// symbol against the direct-sum adjacency advances both halves at once;
// Normalize re-keys the result back onto the (constraint-state, band)
// diagonal so the next round's front stays in the same shape. See spec
// §4.2 for the full derivation.

package decomp

import (
	"fmt"

	"github.com/katalvlaran/pathql/boolmatrix"
)

// BFSResult is one reachable pair discovered by ConstrainedBFS.
// Start is an index into self.States identifying the graph-start the
// result is rooted at; it is only meaningful when separated=true (it is
// -1 otherwise). V is always an index into self.States: the reached final
// state.
type BFSResult struct {
	Start int
	V     int
}

// ConstrainedBFS computes, for the receiver (self, typically a graph
// Decomp) constrained by constraint (typically a query automaton Decomp),
// every (optionally start-separated) reachable final pair.
// Complexity: O(rounds * |alphabet| * nnz) where rounds is bounded by the
// finite product state space (monotone growth of visited, spec §9).
func (self *Decomp) ConstrainedBFS(constraint *Decomp, separated bool) ([]BFSResult, error) {
	if self == nil || constraint == nil {
		return nil, fmt.Errorf("ConstrainedBFS: %w", ErrNilDecomp)
	}

	k, n := constraint.N(), self.N()
	ds, err := constraint.DirectSum(self)
	if err != nil {
		return nil, fmt.Errorf("ConstrainedBFS: %w", err)
	}

	constraintStarts := indicesWhere(constraint.States, func(s StateInfo) bool { return s.IsStart })
	graphStarts := indicesWhere(self.States, func(s StateInfo) bool { return s.IsStart })

	var rows int
	var startIndices []int // only used when separated
	var bld *boolmatrix.Builder
	if !separated {
		rows = k
		bld, err = boolmatrix.NewBuilder(rows, k+n)
		if err != nil {
			return nil, fmt.Errorf("ConstrainedBFS: %w", err)
		}
		for _, i := range constraintStarts {
			_ = bld.Set(i, i)
			for _, v := range graphStarts {
				_ = bld.Set(i, k+v)
			}
		}
	} else {
		startIndices = graphStarts
		rows = len(startIndices) * k
		bld, err = boolmatrix.NewBuilder(rows, k+n)
		if err != nil {
			return nil, fmt.Errorf("ConstrainedBFS: %w", err)
		}
		for band, v := range startIndices {
			for _, i := range constraintStarts {
				row := band*k + i
				_ = bld.Set(row, i)
				_ = bld.Set(row, k+v)
			}
		}
	}
	visited := bld.Build()

	alphabet := ds.Alphabet()
	for {
		base := visited
		roundAcc := visited
		grew := false
		for _, sym := range alphabet {
			adjSym := ds.Adjs[sym]
			newM, err := boolmatrix.Mxm(base, adjSym)
			if err != nil {
				return nil, fmt.Errorf("ConstrainedBFS: %w", err)
			}
			normalized := normalizeFront(newM, k)
			var g bool
			roundAcc, g, err = boolmatrix.Or(roundAcc, normalized)
			if err != nil {
				return nil, fmt.Errorf("ConstrainedBFS: %w", err)
			}
			if g {
				grew = true
			}
		}
		visited = roundAcc
		if !grew {
			break
		}
	}

	var out []BFSResult
	for _, p := range visited.NonzeroPairs() {
		if p.Col < k {
			continue
		}
		q := p.Row % k
		v := p.Col - k
		if !constraint.States[q].IsFinal || !self.States[v].IsFinal {
			continue
		}
		start := -1
		if separated {
			start = startIndices[p.Row/k]
		}
		out = append(out, BFSResult{Start: start, V: v})
	}

	return out, nil
}

// normalizeFront re-keys newM's rows: for every (i,j) with j<k (a newly
// reached constraint state), it gathers row i's right-block (graph-state)
// nonzeros and places them, together with the diagonal bit at column j,
// into row (i/k)*k+j of the result.
func normalizeFront(newM *boolmatrix.Matrix, k int) *boolmatrix.Matrix {
	bld, _ := boolmatrix.NewBuilder(newM.Rows(), newM.Cols())
	for i := 0; i < newM.Rows(); i++ {
		cols, _ := newM.Row(i)
		var leftCols, rightCols []int
		for _, c := range cols {
			if c < k {
				leftCols = append(leftCols, c)
			} else {
				rightCols = append(rightCols, c)
			}
		}
		if len(leftCols) == 0 {
			continue
		}
		rowBand := (i / k) * k
		for _, j := range leftCols {
			outRow := rowBand + j
			_ = bld.Set(outRow, j)
			for _, c := range rightCols {
				_ = bld.Set(outRow, c)
			}
		}
	}

	return bld.Build()
}

// indicesWhere returns the indices i where pred(states[i]) holds.
func indicesWhere(states []StateInfo, pred func(StateInfo) bool) []int {
	var out []int
	for i, s := range states {
		if pred(s) {
			out = append(out, i)
		}
	}

	return out
}
