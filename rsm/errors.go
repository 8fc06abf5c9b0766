// SPDX-License-Identifier: MIT
// Package rsm: sentinel error set.

package rsm

import "errors"

var (
	// ErrNoStartBox indicates the RSM's StartSymbol has no registered box.
	ErrNoStartBox = errors.New("rsm: start nonterminal has no box")

	// ErrBoxNotFound indicates a requested nonterminal has no box.
	ErrBoxNotFound = errors.New("rsm: box not found")

	// ErrUnsupportedOperation mirrors spec §7's UnsupportedOperation kind,
	// reserved for RSM.Intersect combinations the algorithm does not cover
	// (intersecting against an RSM whose boxes still contain raw epsilon
	// transitions, which must be removed first).
	ErrUnsupportedOperation = errors.New("rsm: unsupported operation")
)
