// Package balance declares the Basis type and sentinel errors.
package balance

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for basis construction and application.
var (
	// ErrNilTree indicates Build received a nil tree.
	ErrNilTree = errors.New("balance: tree is nil")

	// ErrEmptyTree indicates the tree has fewer than two tips; no
	// partition, and therefore no balance, exists.
	ErrEmptyTree = errors.New("balance: tree has fewer than 2 tips")

	// ErrNotBifurcating indicates an internal node with a child count ≠ 2.
	ErrNotBifurcating = errors.New("balance: tree is not bifurcating")

	// ErrNonPositive indicates a zero, negative, or NaN abundance value;
	// log-ratios are undefined there and never silently produced.
	ErrNonPositive = errors.New("balance: non-positive abundance value")

	// ErrMissingTip indicates an abundance map lacking one of the
	// basis tips.
	ErrMissingTip = errors.New("balance: abundance missing for tip")

	// ErrUnknownTip indicates an abundance map naming a tip the basis
	// does not know.
	ErrUnknownTip = errors.New("balance: unknown tip in abundances")

	// ErrLengthMismatch indicates a vector whose length differs from the
	// basis tip count.
	ErrLengthMismatch = errors.New("balance: abundance length does not match tip count")
)

// Basis is the ilr change-of-basis matrix for one tree, plus the
// orderings a caller needs to interpret it.
//
// Matrix has one row per internal node and one column per tip; every row
// sums to zero (log-contrast property). Nodes[i] labels row i; Tips[j]
// labels column j. A Basis is immutable after Build and safe for
// concurrent read-only use.
type Basis struct {
	// Matrix is the (internal × tips) ilr contrast matrix.
	Matrix *mat.Dense

	// Nodes labels each row: the internal node's own name when set,
	// otherwise its level-order default label (y0, y1, …).
	Nodes []string

	// Tips labels each column, in the tree's post-order tip order.
	Tips []string
}

// NumCoordinates returns the number of balance coordinates (rows).
func (b *Basis) NumCoordinates() int { return len(b.Nodes) }
