// Package graph defines the central Graph, Vertex, and Edge types, and
// provides thread-safe primitives for building, querying, and cloning
// labeled directed multigraphs.
//
// All APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be mutated across
// goroutines with minimal contention, though a single Graph is meant to be
// built once and then shared read-only across the query engines in this
// module (see the decomp package's concurrency notes).
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrEmptyLabel          - edge label is the empty string.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add a parallel edge when multi-edges are disabled.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEmptyLabel indicates an edge was added with an empty label. Every
	// edge in this domain carries a symbol from the query alphabet; the
	// empty string is reserved for epsilon transitions inside automata,
	// never for a graph edge.
	ErrEmptyLabel = errors.New("graph: edge label is empty")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces (typed-nil-safe).
func (v *Vertex) IsNil() bool { return v == nil }

// Edge represents a labeled, directed connection between two vertices.
//
// Every Edge has a unique ID, endpoints From→To, and a Label drawn from the
// query alphabet. Parallel edges between the same pair of vertices, with the
// same or different labels, are the normal case for path-query graphs once
// multi-edges are enabled — e.g. a vertex with two outgoing arcs labeled "a"
// and "b" toward different neighbors.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Label is the alphabet symbol carried by this edge. Never empty.
	Label string
}

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces (typed-nil-safe).
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same ordered pair of
// vertices, including edges carrying distinct labels.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself). Grammars
// with epsilon-productions commonly require self-loops once translated to
// automata, so loops are opt-in here rather than a silent default.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of an individual edge when added. No
// per-edge options exist yet in this domain; the type is retained so future
// per-edge knobs can be threaded through AddEdge without an API break.
type EdgeOption func(*Edge)

// Graph is the core in-memory labeled directed multigraph.
//
// Every edge is directed; the query engines in this module never need
// undirected edges (RPQ/CFPQ path queries are inherently directional).
// muVert protects vertices map; muEdgeAdj protects edges map and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, a Graph disallows both self-loops and multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
