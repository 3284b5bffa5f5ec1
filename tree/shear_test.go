package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phylokit/ilrtree/tree"
)

// lengths builds ((a:1,b:2)e:3,c:4)r for branch-length assertions.
func lengths(t *testing.T) *tree.Tree {
	t.Helper()
	a, b, c := tree.NewLeaf("a"), tree.NewLeaf("b"), tree.NewLeaf("c")
	a.Length, b.Length, c.Length = 1, 2, 4
	e := tree.NewInternal("e", a, b)
	e.Length = 3
	tr, err := tree.New(tree.NewInternal("r", e, c))
	require.NoError(t, err)

	return tr
}

// TestShear_Subset verifies tip restriction and preserved order.
func TestShear_Subset(t *testing.T) {
	tr := fourTips(t)

	got, err := tr.Shear([]string{"a", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d"}, got.Tips(), "surviving tips keep their relative order")

	// (a,b)e lost b, so e is pruned and a hangs off the root directly.
	assert.Len(t, got.Root().Children, 2)
	assert.Equal(t, "a", got.Root().Children[0].Name, "degenerate internal node must be pruned")
}

// TestShear_PruneSumsLengths verifies the pruned node's branch length
// chains onto its surviving child.
func TestShear_PruneSumsLengths(t *testing.T) {
	tr := lengths(t)

	got, err := tr.Shear([]string{"a", "c"})
	require.NoError(t, err)

	// e (length 3) collapses into a (length 1) → 4.
	a := got.Root().Children[0]
	assert.Equal(t, "a", a.Name)
	assert.InDelta(t, 4.0, a.Length, 1e-12, "pruned branch lengths must sum")
}

// TestShear_Unknown verifies unknown tips are rejected.
func TestShear_Unknown(t *testing.T) {
	tr := fourTips(t)
	_, err := tr.Shear([]string{"a", "zz"})
	assert.ErrorIs(t, err, tree.ErrUnknownTip, "unknown tip must error ErrUnknownTip")
}

// TestShear_Empty verifies an empty keep set is rejected.
func TestShear_Empty(t *testing.T) {
	tr := fourTips(t)
	_, err := tr.Shear(nil)
	assert.ErrorIs(t, err, tree.ErrNoTips, "empty keep set must error ErrNoTips")
}

// TestShear_Immutable verifies the receiver is untouched.
func TestShear_Immutable(t *testing.T) {
	tr := fourTips(t)
	_, err := tr.Shear([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, tr.Tips(), "shear must not mutate the input tree")
}
