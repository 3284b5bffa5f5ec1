// Package newick: recursive-descent parser internals.
package newick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phylokit/ilrtree/tree"
)

// parser is a minimal cursor over the source string. No lookahead beyond
// one byte is needed by the grammar.
type parser struct {
	src string
	pos int
}

// node parses either a leaf ("label[:len]") or an internal node
// ("(child,child,…)[label][:len]").
func (p *parser) node() (*tree.Node, error) {
	if p.peek() == '(' {
		return p.internal()
	}

	return p.leaf()
}

// internal parses "(node,node,…)" followed by an optional label and length.
func (p *parser) internal() (*tree.Node, error) {
	p.pos++ // consume '('

	var children []*tree.Node
	for {
		p.skipSpace()
		child, err := p.node()
		if err != nil {
			return nil, err
		}
		children = append(children, child)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			n := &tree.Node{Children: children}
			n.Name = p.label()
			if err = p.length(n); err != nil {
				return nil, err
			}

			return n, nil
		default:
			return nil, p.errf("expected ',' or ')'")
		}
	}
}

// leaf parses "label[:len]". An empty label is a syntax error here;
// unnamed leaves are rejected structurally by tree.New anyway, but
// catching them in the grammar yields a positioned error.
func (p *parser) leaf() (*tree.Node, error) {
	name := p.label()
	if name == "" {
		return nil, p.errf("expected leaf label")
	}
	n := &tree.Node{Name: name}
	if err := p.length(n); err != nil {
		return nil, err
	}

	return n, nil
}

// label consumes a bare (unquoted) label; may be empty.
func (p *parser) label() string {
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("(),:; \t\r\n", rune(p.src[p.pos])) {
		p.pos++
	}

	return p.src[start:p.pos]
}

// length consumes an optional ":<float>" suffix into n.Length.
func (p *parser) length(n *tree.Node) error {
	if !p.eat(':') {
		return nil
	}
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("(),:; \t\r\n", rune(p.src[p.pos])) {
		p.pos++
	}
	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.pos = start

		return p.errf("bad branch length %q", text)
	}
	n.Length = v

	return nil
}

// peek returns the byte at the cursor, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

// eat consumes c if it is next, reporting whether it did.
func (p *parser) eat(c byte) bool {
	if p.peek() == c {
		p.pos++

		return true
	}

	return false
}

// skipSpace advances past ASCII whitespace.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// errf builds a positioned syntax error wrapping ErrSyntax.
func (p *parser) errf(format string, args ...interface{}) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}
