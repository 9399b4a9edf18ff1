package cubezdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternIsPureAndDeterministic(t *testing.T) {
	a := Intern(rootVariable, []byte("page1"))
	b := Intern(rootVariable, []byte("page1"))
	require.Equal(t, a, b)

	c := InternString(rootVariable, "page1")
	require.Equal(t, a, c, "InternString must agree with Intern on the same bytes")
}

func TestInternDistinguishesParentAndLabel(t *testing.T) {
	root := Intern(rootVariable, []byte("a"))
	childA := Intern(root, []byte("b"))
	childB := Intern(rootVariable, []byte("b"))

	require.NotEqual(t, childA, childB, "the same label under different parents must intern differently")
}

func TestInternNeverProducesReservedVariable(t *testing.T) {
	for _, label := range []string{"", "a", "company.com", "2014"} {
		require.NotEqual(t, rootVariable, Intern(rootVariable, []byte(label)))
	}
}

func TestInternOrdersChildrenAfterParents(t *testing.T) {
	// The store's mk invariant needs every interned child to compare
	// greater than its parent, regardless of what the label hashes to.
	parent := Intern(rootVariable, []byte("a"))
	for _, label := range []string{"b", "c", "a-very-different-label", ""} {
		child := Intern(parent, []byte(label))
		require.Greater(t, child, parent, "label %q", label)

		grandchild := Intern(child, []byte("x"))
		require.Greater(t, grandchild, child)
	}
}
