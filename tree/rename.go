// Package tree: level-order naming of internal nodes.
package tree

import "fmt"

// RenameInternal returns a copy of t whose internal nodes are named in
// level order (top-down, left-to-right). With nil names the default
// labels y0, y1, … are used, so the root becomes y0 and labels grow
// toward the bottom right of the tree. With explicit names, their count
// must equal the number of internal nodes (ErrNameCount otherwise).
//
// Tip names are never touched. The receiver is never modified.
func RenameInternal(t *Tree, names []string) (*Tree, error) {
	out := t.Clone()

	internal := 0
	_ = out.LevelOrder(func(n *Node) error {
		if !n.IsLeaf() {
			internal++
		}

		return nil
	})
	if names != nil && len(names) != internal {
		return nil, fmt.Errorf("%w: tree has %d internal nodes, got %d names",
			ErrNameCount, internal, len(names))
	}

	i := 0
	_ = out.LevelOrder(func(n *Node) error {
		if n.IsLeaf() {
			return nil
		}
		if names == nil {
			n.Name = fmt.Sprintf("y%d", i)
		} else {
			n.Name = names[i]
		}
		i++

		return nil
	})

	return out, nil
}
