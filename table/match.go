// Package table: sample matching between tables and feature matching
// against a tree.
package table

import (
	"fmt"
	"sort"

	"github.com/phylokit/ilrtree/tree"
)

// Match aligns t and meta on the intersection of their sample IDs.
//
// Both returned tables carry the same samples in the same (sorted)
// order; samples present on only one side are dropped. Duplicate IDs
// are impossible here — New rejects them at construction.
//
// ErrNoCommonSamples when the intersection is empty.
func (t *Table) Match(meta *Table) (*Table, *Table, error) {
	common := intersect(t.samples, meta.si)
	if len(common) == 0 {
		return nil, nil, ErrNoCommonSamples
	}

	return t.selectRows(common), meta.selectRows(common), nil
}

// MatchTips aligns the table's features with the tree's tips.
//
// The tree is sheared to the features both sides share; the table's
// columns are then reordered to the sheared tree's post-order tip
// order, so column j of the result corresponds to tip j of the result
// tree. Features or tips present on only one side are dropped.
//
// ErrNoCommonFeatures when the intersection is empty.
func MatchTips(t *Table, tr *tree.Tree) (*Table, *tree.Tree, error) {
	tipSet := make(map[string]int)
	for i, name := range tr.Tips() {
		tipSet[name] = i
	}
	common := intersect(t.features, tipSet)
	if len(common) == 0 {
		return nil, nil, ErrNoCommonFeatures
	}

	sheared, err := tr.Shear(common)
	if err != nil {
		return nil, nil, fmt.Errorf("table: shear: %w", err)
	}

	return t.selectCols(sheared.Tips()), sheared, nil
}

// intersect returns the IDs present in both sides, sorted for a
// deterministic result order.
func intersect(ids []string, other map[string]int) []string {
	var common []string
	for _, id := range ids {
		if _, ok := other[id]; ok {
			common = append(common, id)
		}
	}
	sort.Strings(common)

	return common
}
