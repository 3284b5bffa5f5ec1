// Package balance: ilr application to positive abundance vectors.
package balance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform computes the balance coordinates of one sample given its
// abundances keyed by tip name.
//
// The map must cover exactly the basis tips: a missing tip yields
// ErrMissingTip, a foreign key ErrUnknownTip. Every value must be
// strictly positive (ErrNonPositive otherwise; NaN counts as
// non-positive) — the transform never emits -Inf or NaN.
//
// The result has one entry per basis row, ordered as Basis.Nodes.
func (b *Basis) Transform(abund map[string]float64) ([]float64, error) {
	if len(abund) > len(b.Tips) {
		for name := range abund {
			if _, ok := b.columnOf(name); !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownTip, name)
			}
		}
	}

	x := make([]float64, len(b.Tips))
	for j, name := range b.Tips {
		v, ok := abund[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingTip, name)
		}
		x[j] = v
	}

	return b.TransformVec(x)
}

// TransformVec computes the balance coordinates of one sample given its
// abundances pre-ordered as Basis.Tips.
//
// Errors: ErrLengthMismatch when len(x) ≠ len(Tips); ErrNonPositive when
// any entry is ≤ 0 or NaN.
func (b *Basis) TransformVec(x []float64) ([]float64, error) {
	if len(x) != len(b.Tips) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(x), len(b.Tips))
	}

	logs := make([]float64, len(x))
	for j, v := range x {
		if !(v > 0) || math.IsInf(v, 1) {
			return nil, fmt.Errorf("%w: %q = %v", ErrNonPositive, b.Tips[j], v)
		}
		logs[j] = math.Log(v)
	}

	rows, _ := b.Matrix.Dims()
	y := mat.NewVecDense(rows, nil)
	y.MulVec(b.Matrix, mat.NewVecDense(len(logs), logs))

	out := make([]float64, rows)
	copy(out, y.RawVector().Data)

	return out, nil
}

// columnOf returns the column index of a tip name.
func (b *Basis) columnOf(name string) (int, bool) {
	for j, tip := range b.Tips {
		if tip == name {
			return j, true
		}
	}

	return 0, false
}
