package decomp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
)

func twoCycleNFA(t *testing.T) *automaton.NFA {
	t.Helper()
	a := automaton.New()
	// 0 -a-> 1 -a-> 2 -a-> 0 ; 0 -b-> 3 -b-> 4 -b-> 0
	ids := make([]int, 5)
	for i := 0; i < 5; i++ {
		ids[i] = a.AddState(i, true, true)
	}
	require.NoError(t, a.AddTransition(ids[0], "a", ids[1]))
	require.NoError(t, a.AddTransition(ids[1], "a", ids[2]))
	require.NoError(t, a.AddTransition(ids[2], "a", ids[0]))
	require.NoError(t, a.AddTransition(ids[0], "b", ids[3]))
	require.NoError(t, a.AddTransition(ids[3], "b", ids[4]))
	require.NoError(t, a.AddTransition(ids[4], "b", ids[0]))

	return a
}

func TestFromNFABasic(t *testing.T) {
	a := twoCycleNFA(t)
	d, err := FromNFA(a)
	require.NoError(t, err)
	require.Equal(t, 5, d.N())
	require.Contains(t, d.Adjs, "a")
	require.Contains(t, d.Adjs, "b")
	require.Equal(t, 3, d.Adjs["a"].NNZ())
}

func TestFromNFADuplicateStateConflict(t *testing.T) {
	a := automaton.New()
	a.AddState("x", true, false)
	a.AddState("x", false, true) // same Data, conflicting flags
	_, err := FromNFA(a)
	require.ErrorIs(t, err, ErrDuplicateState)
}

func TestTransitiveClosureAnySymbolIdempotent(t *testing.T) {
	a := twoCycleNFA(t)
	d, err := FromNFA(a)
	require.NoError(t, err)

	pairs1, err := d.TransitiveClosureAnySymbol()
	require.NoError(t, err)
	require.NotEmpty(t, pairs1)

	// A decomposition whose only symbol matrix already equals a closed set
	// reproduces the same pairs when closed again (idempotence).
	bld, err := boolmatrix.NewBuilder(d.N(), d.N())
	require.NoError(t, err)
	for _, p := range pairs1 {
		require.NoError(t, bld.Set(p.Row, p.Col))
	}
	d2 := &Decomp{States: d.States, Adjs: map[string]*boolmatrix.Matrix{"any": bld.Build()}}
	pairs2, err := d2.TransitiveClosureAnySymbol()
	require.NoError(t, err)
	require.ElementsMatch(t, pairs1, pairs2)
}

func TestIntersectStateCountIsProduct(t *testing.T) {
	a := twoCycleNFA(t)
	d1, err := FromNFA(a)
	require.NoError(t, err)

	b := automaton.New()
	s0 := b.AddState("q0", true, true)
	require.NoError(t, b.AddTransition(s0, "a", s0))

	d2, err := FromNFA(b)
	require.NoError(t, err)

	prod, err := d1.Intersect(d2)
	require.NoError(t, err)
	require.Equal(t, d1.N()*d2.N(), prod.N())
}

func TestDirectSumShape(t *testing.T) {
	a := twoCycleNFA(t)
	d1, err := FromNFA(a)
	require.NoError(t, err)

	ds, err := d1.DirectSum(d1)
	require.NoError(t, err)
	require.Equal(t, d1.N()*2, ds.N())
}

func TestConstrainedBFSSingleEdge(t *testing.T) {
	g := automaton.New()
	u := g.AddState("u", true, true)
	v := g.AddState("v", true, true)
	require.NoError(t, g.AddTransition(u, "a", v))
	graphDecomp, err := FromNFA(g)
	require.NoError(t, err)

	q := automaton.New()
	qs := q.AddState("q0", true, false)
	qf := q.AddState("q1", false, true)
	require.NoError(t, q.AddTransition(qs, "a", qf))
	queryDecomp, err := FromNFA(q)
	require.NoError(t, err)

	results, err := graphDecomp.ConstrainedBFS(queryDecomp, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, graphDecomp.States[results[0].V].Data, "v")

	sep, err := graphDecomp.ConstrainedBFS(queryDecomp, true)
	require.NoError(t, err)
	require.Len(t, sep, 1)
	require.Equal(t, "u", graphDecomp.States[sep[0].Start].Data)
	require.Equal(t, "v", graphDecomp.States[sep[0].V].Data)
}
