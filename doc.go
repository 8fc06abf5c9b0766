// Package pathql answers regular and context-free path queries over labeled
// directed graphs.
//
// Given a graph G = (V, E, Σ) whose edges carry symbols from an alphabet Σ,
// and a query — either a regular expression over Σ or a context-free
// grammar over Σ — pathql finds the pairs (or, for per-start queries, the
// individual endpoints) of vertices connected by a path whose label word
// belongs to the query's language.
//
// Everything is built on boolean sparse-matrix decompositions of automata
// and graphs (package boolmatrix, package decomp): regular path queries
// (RPQ) run a tensor (Kronecker-product + transitive closure) or a
// constrained-BFS engine (package rpq); context-free path queries (CFPQ)
// run Hellings', a matrix-equation, or a tensor (RSM-based) engine (package
// cfpq). The query package is the facade that ties parsing, engine
// dispatch, and result projection together; the adapters package is where
// external text formats (a minimal regex dialect, a minimal CFG-text
// dialect) are turned into the automaton/RSM types the engines consume.
//
// Package map:
//
//	graph      — labeled directed multigraph: Vertex, Edge, Graph
//	builder    — deterministic constructors for canonical query-graph fixtures
//	algorithms — BFS/DFS oracle over graph.Graph
//	boolmatrix — sparse boolean matrix: DOK builder + CSR matrix
//	automaton  — NFA: states, symbol-keyed transitions, graph↔NFA conversion
//	rsm        — Recursive State Machine: box map, combinators, reachability
//	decomp     — the boolean-matrix Decomp container shared by every engine
//	rpq        — TensorRPQ, BFSRPQ
//	cfpq       — Hellings, Matrix, Tensor CFPQ engines; CFG/WCNF/ECFG
//	query      — facade: parse, dispatch, project
//	adapters   — regex→NFA, CFG text→CFG, graph↔NFA, DOT I/O contract
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// component-by-component design rationale.
package pathql
