// SPDX-License-Identifier: MIT
// Package adapters - DOT I/O contract (spec §1 Non-goals: "DOT file
// loading/saving for graphs and RSMs is out of scope"). The functions
// below exist only so callers have a single, discoverable symbol to call
// and a stable error to check for, per spec §7's UnsupportedOperation
// error kind; none of them parses or emits DOT.

package adapters

import (
	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/rsm"
)

// GraphFromDOT always returns ErrUnsupportedOperation.
func GraphFromDOT(_ string) (*graph.Graph, error) {
	return nil, ErrUnsupportedOperation
}

// RSMFromDOT always returns ErrUnsupportedOperation.
func RSMFromDOT(_ string) (*rsm.RSM, error) {
	return nil, ErrUnsupportedOperation
}

// NFAFromDOT always returns ErrUnsupportedOperation.
func NFAFromDOT(_ string) (*automaton.NFA, error) {
	return nil, ErrUnsupportedOperation
}
