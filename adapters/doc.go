// SPDX-License-Identifier: MIT
// Package adapters is the boundary between the core reachability engine
// (automaton, rsm, decomp, rpq, cfpq) and the outside world: turning a
// graph.Graph into an automaton.NFA, a regex string into an NFA, CFG text
// into a cfpq.Grammar, and (contract only) DOT text into either. None of
// the core engines import this package; callers wire them together.
package adapters
