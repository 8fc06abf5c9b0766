package cfpq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/graph"
)

// balancedParensGraph builds spec §8 scenario 2's path v0-a->v1-a->v2-b->v3-b->v4.
func balancedParensGraph(t *testing.T) *graph.Graph {
	t.Helper()
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

	return g
}

func balancedParensGrammar() *Grammar {
	return &Grammar{
		Start: "S",
		Prods: []Production{
			{Head: "S", Body: []string{"a", "S", "b"}},
			{Head: "S", Body: nil},
		},
	}
}

func TestByHellingsBalancedParens(t *testing.T) {
	g := balancedParensGraph(t)
	grammar := balancedParensGrammar()

	result, err := ByHellings(g, grammar, nil, nil, "S")
	require.NoError(t, err)

	for _, v := range g.Vertices() {
		require.True(t, result[Pair{From: v, To: v}], "expected (%s,%s) via epsilon", v, v)
	}
	require.True(t, result[Pair{From: "v1", To: "v3"}])
	require.True(t, result[Pair{From: "v0", To: "v4"}])
}

func TestByMatrixBalancedParens(t *testing.T) {
	g := balancedParensGraph(t)
	grammar := balancedParensGrammar()

	result, err := ByMatrix(g, grammar, nil, nil, "S")
	require.NoError(t, err)

	require.True(t, result[Pair{From: "v1", To: "v3"}])
	require.True(t, result[Pair{From: "v0", To: "v4"}])
}

func TestByTensorBalancedParens(t *testing.T) {
	g := balancedParensGraph(t)
	grammar := balancedParensGrammar()

	result, err := ByTensor(g, grammar, nil, nil, "S")
	require.NoError(t, err)

	require.True(t, result[Pair{From: "v1", To: "v3"}])
	require.True(t, result[Pair{From: "v0", To: "v4"}])
}

// scenario 5: CFG S -> A B, A -> a | a A, B -> b | b B; graph p-a->q-a->r-b->s-b->t.
func abGrammar() *Grammar {
	return &Grammar{
		Start: "S",
		Prods: []Production{
			{Head: "S", Body: []string{"A", "B"}},
			{Head: "A", Body: []string{"a"}},
			{Head: "A", Body: []string{"a", "A"}},
			{Head: "B", Body: []string{"b"}},
			{Head: "B", Body: []string{"b", "B"}},
		},
	}
}

func abGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, v := range []string{"p", "q", "r", "s", "t"} {
		require.NoError(t, g.AddVertex(v))
	}
	edges := []struct{ from, to, label string }{
		{"p", "q", "a"}, {"q", "r", "a"}, {"r", "s", "b"}, {"s", "t", "b"},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.label)
		require.NoError(t, err)
	}

	return g
}

func TestTensorAndMatrixAgreeOnABGrammar(t *testing.T) {
	g := abGraph(t)
	grammar := abGrammar()

	matrix, err := ByMatrix(g, grammar, nil, nil, "S")
	require.NoError(t, err)
	tensor, err := ByTensor(g, grammar, nil, nil, "S")
	require.NoError(t, err)
	hellings, err := ByHellings(g, grammar, nil, nil, "S")
	require.NoError(t, err)

	expected := map[Pair]bool{
		{From: "p", To: "s"}: true,
		{From: "p", To: "t"}: true,
		{From: "q", To: "s"}: true,
		{From: "q", To: "t"}: true,
	}
	require.Equal(t, expected, matrix)
	require.Equal(t, expected, tensor)
	require.Equal(t, expected, hellings)
}

func TestOnlyEpsilonGrammarYieldsDiagonal(t *testing.T) {
	g := balancedParensGraph(t)
	grammar := &Grammar{Start: "S", Prods: []Production{{Head: "S", Body: nil}}}

	result, err := ByHellings(g, grammar, nil, nil, "S")
	require.NoError(t, err)

	expected := make(map[Pair]bool)
	for _, v := range g.Vertices() {
		expected[Pair{From: v, To: v}] = true
	}
	require.Equal(t, expected, result)
}
