package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddStateAndTransition(t *testing.T) {
	a := New()
	s0 := a.AddState("q0", true, false)
	s1 := a.AddState("q1", false, true)
	require.NoError(t, a.AddTransition(s0, "a", s1))
	require.Equal(t, []int{s1}, a.Transitions(s0, "a"))
	require.Equal(t, []string{"a"}, a.Alphabet())
	require.Equal(t, []int{s0}, a.StartStates())
	require.Equal(t, []int{s1}, a.FinalStates())
}

func TestAddTransitionOutOfRange(t *testing.T) {
	a := New()
	require.ErrorIs(t, a.AddTransition(0, "a", 0), ErrStateNotFound)
}

func TestAddTransitionIdempotent(t *testing.T) {
	a := New()
	s0 := a.AddState(nil, true, false)
	s1 := a.AddState(nil, false, true)
	require.NoError(t, a.AddTransition(s0, "a", s1))
	require.NoError(t, a.AddTransition(s0, "a", s1))
	require.Equal(t, []int{s1}, a.Transitions(s0, "a"))
}

func TestIsEmptyLanguage(t *testing.T) {
	a := New()
	s0 := a.AddState(nil, true, false)
	a.AddState(nil, false, true) // unreachable final
	require.True(t, a.IsEmptyLanguage())

	s1 := a.AddState(nil, false, true)
	require.NoError(t, a.AddTransition(s0, "a", s1))
	require.False(t, a.IsEmptyLanguage())
}

func TestRemoveEpsilons(t *testing.T) {
	a := New()
	s0 := a.AddState(nil, true, false)
	s1 := a.AddState(nil, false, false)
	s2 := a.AddState(nil, false, true)
	require.NoError(t, a.AddTransition(s0, Epsilon, s1))
	require.NoError(t, a.AddTransition(s1, "a", s2))

	free := RemoveEpsilons(a)
	require.Equal(t, []int{s2}, free.Transitions(s0, "a"))
	require.Empty(t, free.Transitions(s0, Epsilon))
}

func TestConcatUnionStar(t *testing.T) {
	a := New()
	as0 := a.AddState(nil, true, false)
	as1 := a.AddState(nil, false, true)
	require.NoError(t, a.AddTransition(as0, "a", as1))

	b := New()
	bs0 := b.AddState(nil, true, false)
	bs1 := b.AddState(nil, false, true)
	require.NoError(t, b.AddTransition(bs0, "b", bs1))

	cat := RemoveEpsilons(Concat(a, b))
	require.False(t, cat.IsEmptyLanguage())

	un := RemoveEpsilons(Union(a, b))
	require.False(t, un.IsEmptyLanguage())

	star := RemoveEpsilons(Star(a))
	require.False(t, star.IsEmptyLanguage())
	// Star's fresh start is itself final (accepts the empty word).
	found := false
	for _, s := range star.StartStates() {
		for _, f := range star.FinalStates() {
			if s == f {
				found = true
			}
		}
	}
	require.True(t, found)
}
