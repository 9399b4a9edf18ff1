package cubezdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func singleton(t *testing.T, s *Store, vars ...Variable) NodeID {
	t.Helper()
	id := Top
	for i := len(vars) - 1; i >= 0; i-- {
		id = s.mk(vars[i], Bot, id)
	}
	return id
}

func TestUnionIdentityAndCommutativity(t *testing.T) {
	s := NewStore()
	a := singleton(t, s, 10, 20)
	b := singleton(t, s, 10, 30)

	require.Equal(t, a, s.Union(a, Bot))
	require.Equal(t, a, s.Union(Bot, a))
	require.Equal(t, a, s.Union(a, a))
	require.Equal(t, s.Union(a, b), s.Union(b, a))
}

func TestIntersectionAndDifference(t *testing.T) {
	s := NewStore()
	a := singleton(t, s, 10, 20)
	b := singleton(t, s, 10, 30)

	// {{10,20}} and {{10,30}} share no sets.
	require.Equal(t, Bot, s.Intersection(a, b))
	require.Equal(t, a, s.Difference(a, b))
	require.Equal(t, Bot, s.Difference(a, a))

	u := s.Union(a, b)
	require.Equal(t, a, s.Intersection(u, a))
	require.Equal(t, u, s.Union(s.Difference(u, a), a))
}

func TestSymDiffIsUnionMinusIntersection(t *testing.T) {
	s := NewStore()
	a := singleton(t, s, 10)
	b := singleton(t, s, 10, 20)
	u := s.Union(a, b)
	i := s.Intersection(a, b)

	require.Equal(t, s.Difference(u, i), symDiff(s, a, b))
}

func TestSubset(t *testing.T) {
	s := NewStore()
	a := singleton(t, s, 10, 20)
	ab := s.Union(a, singleton(t, s, 10, 30))

	require.True(t, s.Subset(Bot, a))
	require.True(t, s.Subset(a, a))
	require.True(t, s.Subset(a, ab))
	require.False(t, s.Subset(ab, a))
}

func TestCrossUnion(t *testing.T) {
	s := NewStore()
	// {A} x {C,D} = {A∪C, A∪D}
	a := singleton(t, s, 10)
	cd := s.Union(singleton(t, s, 20), singleton(t, s, 30))

	got := s.CrossUnion(a, cd)
	want := s.Union(singleton(t, s, 10, 20), singleton(t, s, 10, 30))
	require.Equal(t, want, got)

	require.Equal(t, cd, s.CrossUnion(Top, cd))
	require.Equal(t, Bot, s.CrossUnion(Bot, cd))
}

func TestCrossIntersection(t *testing.T) {
	s := NewStore()
	// {{10,20}} x {{10,30}} -> {{10}} since intersection of {10,20} and {10,30} is {10}.
	a := singleton(t, s, 10, 20)
	b := singleton(t, s, 10, 30)

	got := s.CrossIntersection(a, b)
	want := singleton(t, s, 10)
	require.Equal(t, want, got)

	require.Equal(t, Top, s.CrossIntersection(Top, Top))
	require.Equal(t, Bot, s.CrossIntersection(Bot, a))
}

func TestCrossDifference(t *testing.T) {
	s := NewStore()
	// {{10,20}} \ {{10}} -> {{20}}
	a := singleton(t, s, 10, 20)
	b := singleton(t, s, 10)

	got := s.CrossDifference(a, b)
	want := singleton(t, s, 20)
	require.Equal(t, want, got)

	require.Equal(t, a, s.CrossDifference(a, Top))
	require.Equal(t, Top, s.CrossDifference(Top, Top))
}

func TestHashConsingGivesIdenticalHandles(t *testing.T) {
	s := NewStore()
	a := s.mk(10, Bot, Top)
	b := s.mk(10, Bot, Top)
	require.Equal(t, a, b, "building the same node twice must hash-cons to the same handle")
}

func TestMkZeroSuppression(t *testing.T) {
	s := NewStore()
	require.Equal(t, Top, s.mk(10, Top, Bot), "a node whose hi-arc is Bot collapses to its lo-arc")
}

func TestMkOrderingInvariantPanics(t *testing.T) {
	s := NewStore()
	child := s.mk(20, Bot, Top)
	require.Panics(t, func() {
		s.mk(30, child, Top) // 30 >= child's variable 20: violates ordering
	})
}
