package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/graph"
)

func TestRPQByTensorAndBFSTwoCycle(t *testing.T) {
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

	tensor, err := RPQByTensor(g, "a* b*", nil, nil)
	require.NoError(t, err)
	require.True(t, tensor[Pair{From: "1", To: "3"}])

	bfs, err := RPQByBFS(g, "a* b*", nil, nil, PerStart)
	require.NoError(t, err)
	require.Equal(t, tensor, bfs.Pairs)
}

func TestCFPQEnginesAgreeViaFacade(t *testing.T) {
	g := graph.NewGraph()
	for _, v := range []string{"v0", "v1", "v2", "v3", "v4"} {
		require.NoError(t, g.AddVertex(v))
	}
	edges := []struct{ from, to, label string }{
		{"v0", "v1", "a"}, {"v1", "v2", "a"}, {"v2", "v3", "b"}, {"v3", "v4", "b"},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.label)
		require.NoError(t, err)
	}

	const cfg = "S -> a S b | epsilon"

	hellings, err := CFPQByHellings(g, cfg, nil, nil, "S")
	require.NoError(t, err)
	matrix, err := CFPQByMatrix(g, cfg, nil, nil, "S")
	require.NoError(t, err)
	tensor, err := CFPQByTensor(g, cfg, nil, nil, "S")
	require.NoError(t, err)

	require.Equal(t, hellings, matrix)
	require.Equal(t, hellings, tensor)
	require.True(t, hellings[cfpq.Pair{From: "v1", To: "v3"}])
	require.True(t, hellings[cfpq.Pair{From: "v0", To: "v4"}])
}
