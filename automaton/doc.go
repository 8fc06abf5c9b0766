// Package automaton implements the NFA model used as the query-side input
// to the boolean decomposition in package decomp: states carrying opaque
// data plus start/final flags, and symbol-keyed transitions.
//
// States are identified by a dense, zero-based int ID assigned at
// construction time (AddState). Transitions are stored per source state,
// keyed by symbol, so a state's outgoing symbols can be listed without
// walking destination lists. Epsilon transitions use the reserved Epsilon symbol
// and are expected to be removed (RemoveEpsilons) before an NFA reaches
// decomp.FromNFA or any RPQ/CFPQ engine — per spec §3, "public engines
// assume epsilon-free input".
//
// NFA is also the per-nonterminal "box" type the rsm package composes into
// a Recursive State Machine: an RSM box's alphabet mixes terminal symbols
// with nonterminal references, both represented as plain strings; the rsm
// package is the one that knows which names are nonterminals.
package automaton
