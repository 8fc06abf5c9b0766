// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Constructors MUST NOT panic; validation panics are confined to option
//     constructor functions (WithX...), per lvlath 99-rules.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
// Typical origins: Cycle/Path size constraints.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the builder could not construct a
// fixture without breaking invariants (e.g. a nil constructor in the chain,
// or an underlying graph.AddEdge rejecting a label/endpoint).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s", method, inner)
}
