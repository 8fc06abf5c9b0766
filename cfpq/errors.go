// SPDX-License-Identifier: MIT

package cfpq

import "errors"

var (
	// ErrNilGraph is returned when a nil *graph.Graph is passed to an engine.
	ErrNilGraph = errors.New("cfpq: nil graph")
	// ErrNilGrammar is returned when a nil *Grammar is passed to an engine.
	ErrNilGrammar = errors.New("cfpq: nil grammar")
	// ErrUnknownStartSymbol is returned when the requested start_symbol is
	// not a nonterminal of the grammar.
	ErrUnknownStartSymbol = errors.New("cfpq: unknown start symbol")
)
