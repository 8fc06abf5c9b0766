package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/graph"
)

func TestGraphToNFA(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddVertex("x"))
	require.NoError(t, g.AddVertex("y"))
	_, err := g.AddEdge("x", "y", "a")
	require.NoError(t, err)

	nfa := GraphToNFA(g)
	require.Equal(t, 2, nfa.StateCount())
	require.Len(t, nfa.StartStates(), 2)
	require.Len(t, nfa.FinalStates(), 2)
}

func TestParseRegexConcatUnionStar(t *testing.T) {
	nfa, err := ParseRegex("a* b*")
	require.NoError(t, err)
	require.False(t, nfa.IsEmptyLanguage())

	nfa, err = ParseRegex("(a|b)*")
	require.NoError(t, err)
	require.False(t, nfa.IsEmptyLanguage())
}

func TestParseRegexRejectsMalformed(t *testing.T) {
	_, err := ParseRegex("(a")
	require.ErrorIs(t, err, ErrParse)
}

func TestParseCFGBalancedParens(t *testing.T) {
	g, err := ParseCFG("S -> a S b | epsilon")
	require.NoError(t, err)
	require.Equal(t, "S", g.Start)
	require.Len(t, g.Prods, 2)
}

func TestParseCFGMissingArrow(t *testing.T) {
	_, err := ParseCFG("S a b")
	require.ErrorIs(t, err, ErrParse)
}
