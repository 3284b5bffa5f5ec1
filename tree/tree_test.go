package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phylokit/ilrtree/tree"
)

// fourTips builds ((a,b)e,(c,d)f)r.
func fourTips(t *testing.T) *tree.Tree {
	t.Helper()
	root := tree.NewInternal("r",
		tree.NewInternal("e", tree.NewLeaf("a"), tree.NewLeaf("b")),
		tree.NewInternal("f", tree.NewLeaf("c"), tree.NewLeaf("d")),
	)
	tr, err := tree.New(root)
	require.NoError(t, err, "valid bifurcating tree must construct")

	return tr
}

// TestNew_NilRoot verifies that a nil root is rejected with ErrNilNode.
func TestNew_NilRoot(t *testing.T) {
	_, err := tree.New(nil)
	assert.ErrorIs(t, err, tree.ErrNilNode, "nil root must error ErrNilNode")
}

// TestNew_NilChild verifies that a nil child anywhere is rejected.
func TestNew_NilChild(t *testing.T) {
	root := tree.NewInternal("", tree.NewLeaf("a"), nil)
	_, err := tree.New(root)
	assert.ErrorIs(t, err, tree.ErrNilNode, "nil child must error ErrNilNode")
}

// TestNew_EmptyTipName verifies that unnamed leaves are rejected.
func TestNew_EmptyTipName(t *testing.T) {
	root := tree.NewInternal("", tree.NewLeaf("a"), tree.NewLeaf(""))
	_, err := tree.New(root)
	assert.ErrorIs(t, err, tree.ErrEmptyTipName, "unnamed leaf must error ErrEmptyTipName")
}

// TestNew_DuplicateTip verifies duplicate tip names are rejected.
func TestNew_DuplicateTip(t *testing.T) {
	root := tree.NewInternal("", tree.NewLeaf("a"), tree.NewLeaf("a"))
	_, err := tree.New(root)
	assert.ErrorIs(t, err, tree.ErrDuplicateTip, "duplicate tips must error ErrDuplicateTip")
}

// TestTips_PostOrder verifies the canonical tip order is post-order,
// left to right.
func TestTips_PostOrder(t *testing.T) {
	tr := fourTips(t)
	assert.Equal(t, []string{"a", "b", "c", "d"}, tr.Tips(), "tips must come back in post-order")
	assert.Equal(t, 4, tr.NumTips())
}

// TestPostOrder_VisitsChildrenFirst verifies post-order semantics and
// that internal nodes come after their subtrees.
func TestPostOrder_VisitsChildrenFirst(t *testing.T) {
	tr := fourTips(t)

	var order []string
	err := tr.PostOrder(func(n *tree.Node) error {
		order = append(order, n.Name)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "e", "c", "d", "f", "r"}, order,
		"post-order must visit children before parents")
}

// TestLevelOrder_TopDown verifies breadth-first visiting order.
func TestLevelOrder_TopDown(t *testing.T) {
	tr := fourTips(t)

	var order []string
	err := tr.LevelOrder(func(n *tree.Node) error {
		order = append(order, n.Name)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "e", "f", "a", "b", "c", "d"}, order,
		"level-order must visit top-down, left-to-right")
}

// TestTraversal_ErrorAborts verifies that a hook error stops the walk
// and propagates unchanged.
func TestTraversal_ErrorAborts(t *testing.T) {
	tr := fourTips(t)
	boom := errors.New("boom")

	visited := 0
	err := tr.PostOrder(func(n *tree.Node) error {
		visited++
		if n.Name == "e" {
			return boom
		}

		return nil
	})
	assert.ErrorIs(t, err, boom, "hook error must propagate unchanged")
	assert.Equal(t, 3, visited, "traversal must stop at the failing node")
}

// TestInternal_PostOrder verifies internal node enumeration.
func TestInternal_PostOrder(t *testing.T) {
	tr := fourTips(t)

	var names []string
	for _, n := range tr.Internal() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"e", "f", "r"}, names, "internal nodes must come back post-order")
}

// TestBifurcating verifies the strictness check on child counts.
func TestBifurcating(t *testing.T) {
	tr := fourTips(t)
	assert.NoError(t, tr.Bifurcating(), "strictly binary tree must pass")

	trident, err := tree.New(tree.NewInternal("r",
		tree.NewLeaf("a"), tree.NewLeaf("b"), tree.NewLeaf("c")))
	require.NoError(t, err, "multifurcating trees are constructible")
	assert.ErrorIs(t, trident.Bifurcating(), tree.ErrNotBifurcating,
		"node with 3 children must fail Bifurcating")
}

// TestClone_Disjoint verifies Clone shares nothing with the original.
func TestClone_Disjoint(t *testing.T) {
	tr := fourTips(t)
	cp := tr.Clone()

	// Mutating the clone's nodes must not show through the original.
	cp.Root().Name = "mutated"
	assert.Equal(t, "r", tr.Root().Name, "clone must be deep")
	assert.Equal(t, tr.Tips(), cp.Tips(), "clone must preserve tips")
}

// TestTipsUnder verifies subtree tip enumeration.
func TestTipsUnder(t *testing.T) {
	tr := fourTips(t)
	left := tr.Root().Children[0]
	assert.Equal(t, []string{"a", "b"}, tree.TipsUnder(left))
	assert.Equal(t, []string{"a"}, tree.TipsUnder(left.Children[0]))
}
