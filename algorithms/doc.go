// Package algorithms implements traversal oracles on graph.Graph:
//
//   - BFS (Breadth-First Search)
//   - DFS (Depth-First Search)
//
// Both follow outgoing edges under any label (the graph has no weight or
// direction concept beyond "edge goes from A to B"), so they compute
// any-symbol reachability. No other package of this module calls them; they
// are exercised by this package's own tests and examples. Hookable options (BFSOptions, DFSOptions) let
// callers inject custom logic during traversal.
package algorithms
