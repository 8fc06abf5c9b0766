// Package graph provides a thread-safe in-memory labeled directed
// multigraph G = (V, E, Σ) with a minimal, composable API surface.
//
// Every edge carries a label drawn from an alphabet Σ — this is the input
// structure the rest of the module's path-query engines (decomp, rpq, cfpq)
// operate over, via their conversion to boolean sparse matrices.
//
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints, including
//	    edges with distinct labels. Most interesting query graphs need this.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v,...) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v)+M)
//
//	// Edge lifecycle
//	AddEdge(from, to, label string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error   // O(1)
//	HasEdge(from, to string) bool     // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)              // O(d·log d), outgoing only
//	LabeledNeighbors(id, symbol string) ([]*Edge, error) // O(d·log d)
//	NeighborIDs(id string) ([]string, error)           // O(d·log d), unique, sorted
//	AdjacencyList() map[string][]string                // O(V+E)
//	Vertices() []string                                // O(V·log V)
//	Edges() []*Edge                                    // O(E·log E)
//	Labels() []string                                  // O(E·log E), the alphabet Σ
//
//	// Counts & degrees
//	Degree(id string) (in, out int, err error)
//	VertexCount() int
//	EdgeCount() int
//
//	// Maintenance
//	Clear()                              // O(1): reset maps, counter; preserve flags
//	FilterEdges(pred func(*Edge) bool)   // O(E): remove edges failing predicate
//
//	// Cloning
//	CloneEmpty() *Graph                  // O(V): copy vertices+flags only
//	Clone() *Graph                       // O(V+E): deep-copy vertices+edges+adjacency
//
// Edge struct fields:
//
//	ID    string   // "e1", "e2", …
//	From  string   // source vertex ID
//	To    string   // destination vertex ID
//	Label string   // alphabet symbol; never empty
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrEmptyLabel          – empty edge label
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package graph
