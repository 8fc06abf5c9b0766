package rpq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/adapters"
	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graph"
)

// twoCycleGraph builds spec §8 scenario 1: cycle 0-a->1-a->2-a->0 and
// 0-b->3-b->4-b->0.
func twoCycleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, v := range []string{"0", "1", "2", "3", "4"} {
		require.NoError(t, g.AddVertex(v))
	}
	edges := []struct{ from, to, label string }{
		{"0", "1", "a"}, {"1", "2", "a"}, {"2", "0", "a"},
		{"0", "3", "b"}, {"3", "4", "b"}, {"4", "0", "b"},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.label)
		require.NoError(t, err)
	}

	return g
}

func TestTensorRPQTwoCycleAStarBStar(t *testing.T) {
	g := twoCycleGraph(t)
	query, err := adapters.ParseRegex("a* b*")
	require.NoError(t, err)

	result, err := TensorRPQ(g, query, nil, nil)
	require.NoError(t, err)

	require.True(t, result[Pair{From: "0", To: "0"}])
	require.True(t, result[Pair{From: "1", To: "3"}])
	require.True(t, result[Pair{From: "2", To: "4"}])
}

func TestTensorRPQEmptyLanguage(t *testing.T) {
	g := twoCycleGraph(t)
	// An NFA with a start state and a final state but no connecting
	// transition has an empty language.
	empty := automaton.New()
	empty.AddState("s", true, false)
	empty.AddState("f", false, true)

	result, err := TensorRPQ(g, empty, nil, nil)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestBFSRPQCommonAndPerStartAgree(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddVertex("u"))
	require.NoError(t, g.AddVertex("v"))
	_, err := g.AddEdge("u", "v", "a")
	require.NoError(t, err)

	query, err := adapters.ParseRegex("a")
	require.NoError(t, err)

	per, err := BFSRPQ(g, query, nil, nil, PerStart)
	require.NoError(t, err)
	require.True(t, per.Pairs[Pair{From: "u", To: "v"}])

	common, err := BFSRPQ(g, query, nil, nil, Common)
	require.NoError(t, err)
	require.True(t, common.Vertices["v"])

	projected := make(map[string]bool)
	for p := range per.Pairs {
		projected[p.To] = true
	}
	require.Equal(t, common.Vertices, projected)
}

func TestTensorAndBFSAgreeOnTwoCycle(t *testing.T) {
	g := twoCycleGraph(t)
	query, err := adapters.ParseRegex("a* b*")
	require.NoError(t, err)

	tensor, err := TensorRPQ(g, query, nil, nil)
	require.NoError(t, err)

	bfs, err := BFSRPQ(g, query, nil, nil, PerStart)
	require.NoError(t, err)

	require.Equal(t, tensor, bfs.Pairs)
}
