// Package table: compositional closure and per-sample balance computation.
package table

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/phylokit/ilrtree/balance"
)

// Closure rescales every row to sum to one, turning counts into
// compositional proportions. Rows summing to zero are copied unchanged
// rather than divided into NaN.
func (t *Table) Closure() *Table {
	d := mat.NewDense(len(t.samples), len(t.features), nil)
	row := make([]float64, len(t.features))
	for i := range t.samples {
		mat.Row(row, i, t.data)
		if sum := floats.Sum(row); sum != 0 {
			floats.Scale(1/sum, row)
		}
		d.SetRow(i, row)
	}

	return newUnchecked(t.Samples(), t.Features(), d)
}

// Balances applies b to every sample, returning a samples × coordinates
// table whose columns are b.Nodes.
//
// The table's features must cover the basis tips; columns are reordered
// internally to the basis' tip order, so callers typically build both
// from the same tree (MatchTips then balance.Build). Missing tips yield
// balance.ErrMissingTip; zero or negative abundances surface
// balance.ErrNonPositive unchanged, naming the offending sample.
func (t *Table) Balances(b *balance.Basis) (*Table, error) {
	for _, tip := range b.Tips {
		if _, ok := t.fi[tip]; !ok {
			return nil, fmt.Errorf("%w: %q", balance.ErrMissingTip, tip)
		}
	}
	aligned := t.selectCols(b.Tips)

	d := mat.NewDense(len(t.samples), b.NumCoordinates(), nil)
	row := make([]float64, len(b.Tips))
	for i, sample := range aligned.samples {
		mat.Row(row, i, aligned.data)
		coords, err := b.TransformVec(row)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", sample, err)
		}
		d.SetRow(i, coords)
	}

	return newUnchecked(t.Samples(), append([]string(nil), b.Nodes...), d), nil
}
