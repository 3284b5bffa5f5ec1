// Package tree: shearing a tree down to a subset of its tips.
package tree

import "fmt"

// Shear returns a new tree restricted to the tips named in keep.
//
// Internal nodes whose subtree retains no kept tip are dropped; internal
// nodes left with exactly one child are pruned, the child taking its
// place with the two branch lengths summed. The relative order of the
// surviving tips is preserved.
//
// Errors:
//   - ErrNoTips      — keep is empty.
//   - ErrUnknownTip  — keep names a tip absent from the tree.
//
// The receiver is never modified.
func (t *Tree) Shear(keep []string) (*Tree, error) {
	if len(keep) == 0 {
		return nil, ErrNoTips
	}

	want := make(map[string]struct{}, len(keep))
	for _, name := range keep {
		want[name] = struct{}{}
	}
	for name := range want {
		if !contains(t.tips, name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTip, name)
		}
	}

	root := shearNode(t.root, want)

	return New(root) // validated input subset; cannot fail
}

// shearNode rebuilds the subtree at n keeping only tips in want.
// Returns nil when nothing under n survives.
func shearNode(n *Node, want map[string]struct{}) *Node {
	if n.IsLeaf() {
		if _, ok := want[n.Name]; !ok {
			return nil
		}

		return &Node{Name: n.Name, Length: n.Length}
	}

	kept := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if sub := shearNode(c, want); sub != nil {
			kept = append(kept, sub)
		}
	}

	switch len(kept) {
	case 0:
		return nil
	case 1:
		// Prune the degenerate internal node; the branch lengths chain up.
		kept[0].Length += n.Length

		return kept[0]
	default:
		return &Node{Name: n.Name, Length: n.Length, Children: kept}
	}
}

// contains reports whether names holds name.
func contains(names []string, name string) bool {
	for _, s := range names {
		if s == name {
			return true
		}
	}

	return false
}
