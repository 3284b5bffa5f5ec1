// Package tree: deterministic traversals, internal-node enumeration,
// bifurcation checking, and cloning.
package tree

import "fmt"

// PostOrder visits every node depth-first, children before parent,
// children in construction order. If fn returns an error the traversal
// aborts immediately and that error is propagated unchanged.
func (t *Tree) PostOrder(fn func(*Node) error) error {
	var walk func(n *Node) error
	walk = func(n *Node) error {
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}

		return fn(n)
	}

	return walk(t.root)
}

// LevelOrder visits every node top-down, left-to-right (breadth-first).
// If fn returns an error the traversal aborts immediately and that error
// is propagated unchanged.
func (t *Tree) LevelOrder(fn func(*Node) error) error {
	queue := []*Node{t.root}
	var n *Node
	for len(queue) > 0 {
		n, queue = queue[0], queue[1:]
		if err := fn(n); err != nil {
			return err
		}
		queue = append(queue, n.Children...)
	}

	return nil
}

// Internal returns the internal nodes in post-order. The returned nodes
// are shared with the Tree and must be treated as read-only.
func (t *Tree) Internal() []*Node {
	var nodes []*Node
	_ = t.PostOrder(func(n *Node) error {
		if !n.IsLeaf() {
			nodes = append(nodes, n)
		}

		return nil
	})

	return nodes
}

// Bifurcating returns nil iff every internal node has exactly two
// children; otherwise ErrNotBifurcating wrapped with the offending
// node's name (or its first tip when unnamed) and child count.
func (t *Tree) Bifurcating() error {
	return t.PostOrder(func(n *Node) error {
		if n.IsLeaf() || len(n.Children) == 2 {
			return nil
		}

		return fmt.Errorf("%w: node %q has %d children", ErrNotBifurcating, describe(n), len(n.Children))
	})
}

// TipsUnder returns the tip names in the subtree rooted at n, post-order.
func TipsUnder(n *Node) []string {
	if n.IsLeaf() {
		return []string{n.Name}
	}
	var out []string
	for _, c := range n.Children {
		out = append(out, TipsUnder(c)...)
	}

	return out
}

// Clone returns a deep copy of the tree. The copy shares nothing with
// the original.
func (t *Tree) Clone() *Tree {
	cloned, _ := New(cloneNode(t.root)) // t was validated; revalidation cannot fail

	return cloned
}

// cloneNode deep-copies a node structure.
func cloneNode(n *Node) *Node {
	out := &Node{Name: n.Name, Length: n.Length}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = cloneNode(c)
		}
	}

	return out
}

// describe returns a stable human-readable handle for a node: its own
// name when set, otherwise the name of its first tip.
func describe(n *Node) string {
	if n.Name != "" {
		return n.Name
	}
	cur := n
	for !cur.IsLeaf() {
		cur = cur.Children[0]
	}

	return cur.Name
}
