package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/pathql/algorithms"
	"github.com/katalvlaran/pathql/graph"
)

// buildSimpleChain constructs a directed labeled path graph:
//
//	A --a--> B --a--> C
func buildSimpleChain() *graph.Graph {
	g := graph.NewGraph()
	_, _ = g.AddEdge("A", "B", "a")
	_, _ = g.AddEdge("B", "C", "a")
	return g
}

// buildMediumDiamond constructs a "diamond"-shaped labeled graph:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func buildMediumDiamond() *graph.Graph {
	g := graph.NewGraph()
	for _, e := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		_, _ = g.AddEdge(e.U, e.V, "a")
	}
	return g
}

// ExampleBFS_simpleChain shows a breadth-first search on a simple path graph.
// Scenario:
//
//	Graph: A --a--> B --a--> C
//	Start vertex: "A"
//
// Expected output: visitation order A, then B, then C.
func ExampleBFS_simpleChain() {
	g := buildSimpleChain()
	result, _ := algorithms.BFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABC
}

// ExampleBFS_mediumDiamond shows BFS on a 6-node "diamond" graph.
// Scenario:
//
//	 Graph:
//				   A
//	              / \
//	             B   C
//	              \ /
//	               D
//	              / \
//	             E   F
//	 Start vertex: "A"
//
// Expected output: layer by layer: A, then B,C, then D, then E,F.
func ExampleBFS_mediumDiamond() {
	g := buildMediumDiamond()
	result, _ := algorithms.BFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABCDEF
}

// ExampleDFS_simpleChain shows depth-first search on a simple path graph.
// Scenario:
//
//	Graph: A --a--> B --a--> C
//	Start vertex: "A"
//
// Expected output: visits A, then B, then C (single path).
func ExampleDFS_simpleChain() {
	g := buildSimpleChain()
	result, _ := algorithms.DFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABC
}

// ExampleDFS_mediumDiamond shows DFS on the "diamond" graph.
// Scenario same as BFS example. DFS visits A→B→D→E→F then backtracks to C,
// since Neighbors returns outgoing edges sorted by edge ID (e1 before e2).
func ExampleDFS_mediumDiamond() {
	g := buildMediumDiamond()
	result, _ := algorithms.DFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABDEFC
}
