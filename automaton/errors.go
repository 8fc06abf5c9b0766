// SPDX-License-Identifier: MIT
// Package automaton: sentinel error set.

package automaton

import "errors"

var (
	// ErrStateNotFound indicates a transition or flag operation referenced
	// a state ID outside [0, len(states)).
	ErrStateNotFound = errors.New("automaton: state not found")

	// ErrEmptySymbol names an empty transition symbol. No function of this
	// package returns it: AddTransition accepts the empty string as the
	// Epsilon symbol.
	ErrEmptySymbol = errors.New("automaton: empty symbol")

	// ErrNoStartState names an automaton without a start state. No function
	// of this module returns it.
	ErrNoStartState = errors.New("automaton: no start state")
)
