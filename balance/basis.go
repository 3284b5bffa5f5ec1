// Package balance: construction of the sequential binary partition basis.
package balance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/phylokit/ilrtree/tree"
)

// Build constructs the ilr basis for t.
//
// The tree must be strictly bifurcating and have at least two tips.
// One post-order pass over the internal nodes fills the contrast matrix:
// for internal node i with L tips on the left (first child) and R on the
// right (second child), the row carries
//
//	+ sqrt(L·R/(L+R)) / L   for every left tip,
//	- sqrt(L·R/(L+R)) / R   for every right tip,
//	  0                     elsewhere,
//
// so that row · log(x) equals the scaled log-ratio of the two groups'
// geometric means. Build reads the tree only; same tree, same basis.
func Build(t *tree.Tree) (*Basis, error) {
	// 1. Validate input.
	if t == nil {
		return nil, ErrNilTree
	}
	tips := t.Tips()
	if len(tips) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyTree, len(tips))
	}
	if err := t.Bifurcating(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotBifurcating, err)
	}

	// 2. Column index per tip name.
	col := make(map[string]int, len(tips))
	for j, name := range tips {
		col[name] = j
	}

	// 3. Row labels: level-order y-numbering for unnamed internal nodes.
	labels := nodeLabels(t)

	// 4. Fill one contrast row per internal node, post-order.
	internal := t.Internal()
	m := mat.NewDense(len(internal), len(tips), nil)
	nodes := make([]string, len(internal))
	for i, n := range internal {
		left := tree.TipsUnder(n.Children[0])
		right := tree.TipsUnder(n.Children[1])
		l, r := float64(len(left)), float64(len(right))
		scale := math.Sqrt(l * r / (l + r))
		for _, name := range left {
			m.Set(i, col[name], scale/l)
		}
		for _, name := range right {
			m.Set(i, col[name], -scale/r)
		}
		nodes[i] = labels[n]
	}

	return &Basis{Matrix: m, Nodes: nodes, Tips: tips}, nil
}

// nodeLabels maps each internal node to its display label: the node's
// own name when set, otherwise "y<k>" with k counting internal nodes in
// level order (the convention used when naming internal nodes).
func nodeLabels(t *tree.Tree) map[*tree.Node]string {
	labels := make(map[*tree.Node]string)
	k := 0
	_ = t.LevelOrder(func(n *tree.Node) error {
		if n.IsLeaf() {
			return nil
		}
		if n.Name != "" {
			labels[n] = n.Name
		} else {
			labels[n] = fmt.Sprintf("y%d", k)
		}
		k++

		return nil
	})

	return labels
}
