package rsm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
)

// balancedParens builds the classic S -> a S b | epsilon RSM (spec §8
// scenario 2): a single box "S" with a self-loop structure over
// nonterminal "S" sandwiched between terminals "a" and "b".
func balancedParens() *RSM {
	s := automaton.New()
	q0 := s.AddState("q0", true, false)
	q1 := s.AddState("q1", false, false)
	q2 := s.AddState("q2", false, false)
	q3 := s.AddState("q3", false, true)
	_ = s.AddTransition(q0, "a", q1)
	_ = s.AddTransition(q1, "S", q2)
	_ = s.AddTransition(q2, "b", q3)
	_ = s.SetFinal(q0, true) // epsilon alternative: q0 is also final

	return New("S", map[string]*automaton.NFA{"S": s})
}

func TestRSMMinimizeTrimsDeadStates(t *testing.T) {
	s := automaton.New()
	q0 := s.AddState("q0", true, true)
	dead := s.AddState("dead", false, false)
	_ = s.AddTransition(q0, "x", dead) // dead cannot reach a final state

	r := New("S", map[string]*automaton.NFA{"S": s})
	trimmed := r.Minimize()
	box := trimmed.Box("S")
	require.Equal(t, 1, box.StateCount())
}

func TestRSMGetReachablesBalancedParens(t *testing.T) {
	r := balancedParens()
	pairs, err := r.GetReachables()
	require.NoError(t, err)
	require.NotEmpty(t, pairs)

	found := false
	for _, p := range pairs {
		if p.Start == "q0" && p.Final == "q0" {
			found = true
		}
	}
	require.True(t, found, "epsilon alternative (q0,q0) must be reachable")
}

func TestRSMConcatUnionStar(t *testing.T) {
	aBox := automaton.New()
	a0 := aBox.AddState("a0", true, false)
	a1 := aBox.AddState("a1", false, true)
	_ = aBox.AddTransition(a0, "a", a1)
	ra := New("A", map[string]*automaton.NFA{"A": aBox})

	bBox := automaton.New()
	b0 := bBox.AddState("b0", true, false)
	b1 := bBox.AddState("b1", false, true)
	_ = bBox.AddTransition(b0, "b", b1)
	rb := New("B", map[string]*automaton.NFA{"B": bBox})

	cat, err := Concat(ra, rb)
	require.NoError(t, err)
	startBox, err := cat.StartBox()
	require.NoError(t, err)
	require.NotZero(t, startBox.StateCount())
	// two original boxes must survive, suffixed.
	require.Contains(t, cat.BoxNames(), "(A,1)")
	require.Contains(t, cat.BoxNames(), "(B,2)")

	un, err := Union(ra, rb)
	require.NoError(t, err)
	require.Contains(t, un.BoxNames(), "(A,1)")
	require.Contains(t, un.BoxNames(), "(B,2)")

	star, err := StarOf(ra)
	require.NoError(t, err)
	require.Contains(t, star.BoxNames(), "(A,1)")
}

func TestRSMIntersectWithNFA(t *testing.T) {
	// Box S: q0 -a-> q1 (start q0, final q1): language {"a"}.
	sBox := automaton.New()
	q0 := sBox.AddState("q0", true, false)
	q1 := sBox.AddState("q1", false, true)
	_ = sBox.AddTransition(q0, "a", q1)
	r := New("S", map[string]*automaton.NFA{"S": sBox})

	// NFA accepting exactly "a".
	n := automaton.New()
	p0 := n.AddState("p0", true, false)
	p1 := n.AddState("p1", false, true)
	_ = n.AddTransition(p0, "a", p1)

	out, err := r.Intersect(n)
	require.NoError(t, err)
	require.NotNil(t, out)
	startBox, err := out.StartBox()
	require.NoError(t, err)
	require.NotZero(t, startBox.StateCount())

	foundStart, foundFinal := false, false
	for _, s := range startBox.States() {
		if s.IsStart {
			foundStart = true
		}
		if s.IsFinal {
			foundFinal = true
		}
	}
	require.True(t, foundStart)
	require.True(t, foundFinal)
}
