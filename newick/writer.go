// Package newick: serialization internals.
package newick

import (
	"strconv"
	"strings"

	"github.com/phylokit/ilrtree/tree"
)

// writeNode emits n recursively. Branch lengths are written only when
// non-zero; zero is the package's "absent" convention on parse.
func writeNode(b *strings.Builder, n *tree.Node) {
	if !n.IsLeaf() {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, c)
		}
		b.WriteByte(')')
	}
	b.WriteString(n.Name)
	if n.Length != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
	}
}
