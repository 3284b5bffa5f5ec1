// Package newick: sentinel errors and the reader entry points.
package newick

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phylokit/ilrtree/tree"
)

// Sentinel errors for Newick parsing.
var (
	// ErrSyntax indicates malformed Newick input. Returned errors wrap
	// this sentinel and carry the byte offset of the failure.
	ErrSyntax = errors.New("newick: syntax error")

	// ErrTrailingData indicates non-whitespace content after the
	// terminating semicolon.
	ErrTrailingData = errors.New("newick: trailing data after tree")
)

// Parse reads a single Newick tree from r and returns it validated.
func Parse(r io.Reader) (*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("newick: read: %w", err)
	}

	return ParseString(string(data))
}

// ParseString parses a single Newick tree from s.
//
// The tree is handed to tree.New, so structural validation errors
// (duplicate tips, empty tip names) surface with the tree package's
// sentinels.
func ParseString(s string) (*tree.Tree, error) {
	p := &parser{src: s}
	p.skipSpace()
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eat(';') {
		return nil, p.errf("expected ';'")
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w at offset %d", ErrTrailingData, p.pos)
	}

	return tree.New(root)
}

// String serializes t into Newick form, semicolon-terminated.
func String(t *tree.Tree) string {
	var b strings.Builder
	writeNode(&b, t.Root())
	b.WriteByte(';')

	return b.String()
}

// Write serializes t into w in Newick form.
func Write(w io.Writer, t *tree.Tree) error {
	if _, err := io.WriteString(w, String(t)); err != nil {
		return fmt.Errorf("newick: write: %w", err)
	}

	return nil
}
