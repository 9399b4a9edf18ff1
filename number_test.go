package cubezdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryPromotionAndCoefficient(t *testing.T) {
	s := NewStore()
	q := singleton(t, s, 10, 20)

	n := Binary(13, q) // 13 = 0b1101
	require.Equal(t, int64(13), Coefficient(s, n, q, false))

	other := singleton(t, s, 10, 30)
	require.Equal(t, int64(0), Coefficient(s, n, other, false))
}

func TestBinaryAddMatchesIntegerAddition(t *testing.T) {
	s := NewStore()
	q := singleton(t, s, 10)

	for _, pair := range [][2]uint64{{0, 0}, {1, 1}, {5, 7}, {255, 1}, {1023, 1023}} {
		x := Binary(pair[0], q)
		y := Binary(pair[1], q)
		sum := BinaryAdd(s, x, y)
		require.Equal(t, int64(pair[0]+pair[1]), Coefficient(s, sum, q, false))
	}
}

func TestNegabinaryPromotionAndCoefficient(t *testing.T) {
	s := NewStore()
	q := singleton(t, s, 10)

	for _, w := range []int64{0, 1, -1, 2, -2, 13, -13, 100, -100} {
		n := Negabinary(w, q)
		require.Equal(t, w, Coefficient(s, n, q, true), "round-trip of %d through negabinary digits", w)
	}
}

func TestNegabinaryAddMatchesIntegerAddition(t *testing.T) {
	s := NewStore()
	q := singleton(t, s, 10)

	cases := []struct{ x, y int64 }{
		{0, 0}, {1, 1}, {1, -1}, {-1, -1}, {5, -3}, {-5, 3}, {100, -37}, {-100, -100},
	}
	for _, c := range cases {
		x := Negabinary(c.x, q)
		y := Negabinary(c.y, q)
		sum := NegabinaryAdd(s, x, y)
		require.Equal(t, c.x+c.y, Coefficient(s, sum, q, true), "%d + %d", c.x, c.y)
	}
}

func TestNegabinarySubMatchesIntegerSubtraction(t *testing.T) {
	s := NewStore()
	q := singleton(t, s, 10)

	cases := []struct{ x, y int64 }{
		{0, 0}, {1, 1}, {1, -1}, {-1, -1}, {5, -3}, {-5, 3}, {100, -37}, {-100, -100}, {0, 5},
	}
	for _, c := range cases {
		x := Negabinary(c.x, q)
		y := Negabinary(c.y, q)
		diff := NegabinarySub(s, x, y)
		require.Equal(t, c.x-c.y, Coefficient(s, diff, q, true), "%d - %d", c.x, c.y)
	}
}

func TestNegabinarySubUndoesAccumulate(t *testing.T) {
	// S4: acc = subtrees(5, path(a,b)); sub(acc, subtrees(5, path(a,b))) == Nil.
	s := NewStore()
	c := NewCompiler(s)
	t1 := PathOf("a", "b")

	acc := Accumulate(s, c, Nil, 5, t1)
	undone := Sub(s, acc, Accumulate(s, c, Nil, 5, t1))
	require.Empty(t, trim(undone))
}

func TestCoefficientOfNonMemberIsZero(t *testing.T) {
	s := NewStore()
	q := singleton(t, s, 10)
	other := singleton(t, s, 20)

	n := Negabinary(7, q)
	require.Equal(t, int64(0), Coefficient(s, n, other, true))
}

func TestIsSingleton(t *testing.T) {
	s := NewStore()
	require.True(t, IsSingleton(s, Top))
	require.False(t, IsSingleton(s, Bot))

	single := singleton(t, s, 10, 20)
	require.True(t, IsSingleton(s, single))

	family := s.Union(single, singleton(t, s, 10, 30))
	require.False(t, IsSingleton(s, family))
}

func TestTrimDropsTrailingBot(t *testing.T) {
	n := Number{Top, Bot, Bot}
	require.Equal(t, Number{Top}, trim(n))

	require.Empty(t, trim(Number{Bot, Bot}))
}
