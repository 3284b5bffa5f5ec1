// Package tree declares the Node and Tree types, sentinel errors,
// and the validating New constructor.
package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree construction and manipulation.
var (
	// ErrNilNode indicates a nil root or a nil child pointer.
	ErrNilNode = errors.New("tree: nil node")

	// ErrEmptyTipName indicates a leaf without a name; tips are identified
	// by name and must all be named.
	ErrEmptyTipName = errors.New("tree: leaf has empty name")

	// ErrDuplicateTip indicates two leaves sharing the same name.
	ErrDuplicateTip = errors.New("tree: duplicate tip name")

	// ErrNotBifurcating indicates an internal node with a child count ≠ 2.
	ErrNotBifurcating = errors.New("tree: node is not bifurcating")

	// ErrUnknownTip indicates a referenced tip name absent from the tree.
	ErrUnknownTip = errors.New("tree: unknown tip name")

	// ErrNoTips indicates an operation that would leave the tree empty.
	ErrNoTips = errors.New("tree: no tips selected")

	// ErrNameCount indicates a rename with an incompatible number of names.
	ErrNameCount = errors.New("tree: name count does not match internal node count")
)

// Node is a single position in a rooted tree.
//
// A Node with no children is a leaf (tip) and must carry a non-empty Name.
// A Node with children is internal; its Name is optional and conventionally
// assigned by RenameInternal. Length is the branch length to the parent
// (zero when absent from the source).
//
// Nodes are plain data. All invariants are enforced by New; after a Tree
// wraps a Node structure, the structure must not be mutated.
type Node struct {
	// Name identifies the node. Required for leaves, optional for
	// internal nodes.
	Name string

	// Length is the branch length from this node to its parent.
	Length float64

	// Children are the node's direct descendants, in construction order.
	// Empty for leaves.
	Children []*Node
}

// IsLeaf reports whether n is a tip (has no children).
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// NewLeaf returns a leaf node with the given name.
func NewLeaf(name string) *Node { return &Node{Name: name} }

// NewInternal returns an internal node over the given children.
// The name may be empty; children keep their order.
func NewInternal(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// Tree is a validated, read-only rooted tree over named tips.
//
// Construct with New; the zero value is not usable.
type Tree struct {
	root *Node
	tips []string // post-order tip names, cached at construction
}

// New validates the node structure rooted at root and wraps it in a Tree.
//
// Validation walks the whole structure once and rejects:
//   - nil root or nil child (ErrNilNode),
//   - a leaf with an empty name (ErrEmptyTipName),
//   - two leaves sharing a name (ErrDuplicateTip).
//
// New does NOT require the tree to be bifurcating; consumers that need
// strict bifurcation (the balance basis builder) call Bifurcating.
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, ErrNilNode
	}

	seen := make(map[string]struct{})
	tips := make([]string, 0)

	var walk func(n *Node) error
	walk = func(n *Node) error {
		if n == nil {
			return ErrNilNode
		}
		if n.IsLeaf() {
			if n.Name == "" {
				return ErrEmptyTipName
			}
			if _, dup := seen[n.Name]; dup {
				return fmt.Errorf("%w: %q", ErrDuplicateTip, n.Name)
			}
			seen[n.Name] = struct{}{}
			tips = append(tips, n.Name)

			return nil
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}

		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	return &Tree{root: root, tips: tips}, nil
}

// Root returns the root node. The returned structure is shared with the
// Tree and must be treated as read-only.
func (t *Tree) Root() *Node { return t.root }

// Tips returns the tip names in post-order (left-to-right, depth-first).
// The returned slice is a copy and safe to modify.
func (t *Tree) Tips() []string {
	out := make([]string, len(t.tips))
	copy(out, t.tips)

	return out
}

// NumTips returns the number of tips.
func (t *Tree) NumTips() int { return len(t.tips) }
