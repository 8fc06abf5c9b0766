// SPDX-License-Identifier: MIT
// Package decomp: sentinel error set.

package decomp

import "errors"

var (
	// ErrDuplicateState indicates FromNFA/FromRSM found two states with
	// equal Data but incompatible start/final flags — spec §3's "equal
	// data across StateInfos is forbidden" invariant, surfaced as an error
	// rather than silently picking one.
	ErrDuplicateState = errors.New("decomp: duplicate state data")

	// ErrNoStates names a decomposition without start states. No function
	// of this package returns it, ConstrainedBFS included.
	ErrNoStates = errors.New("decomp: no states")

	// ErrNilDecomp indicates a nil *Decomp was used as an operand.
	ErrNilDecomp = errors.New("decomp: nil decomposition")
)
