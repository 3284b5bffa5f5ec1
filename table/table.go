// Package table declares the Table type, sentinel errors, and the
// validating constructor plus basic accessors.
package table

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for table construction and lookup.
var (
	// ErrDuplicateSample indicates a repeated sample ID.
	ErrDuplicateSample = errors.New("table: duplicate sample id")

	// ErrDuplicateFeature indicates a repeated feature ID.
	ErrDuplicateFeature = errors.New("table: duplicate feature id")

	// ErrShapeMismatch indicates data whose length is not samples × features.
	ErrShapeMismatch = errors.New("table: data length does not match shape")

	// ErrEmptyTable indicates a table with no samples or no features.
	ErrEmptyTable = errors.New("table: empty table")

	// ErrNoCommonSamples indicates two tables sharing no sample IDs.
	ErrNoCommonSamples = errors.New("table: no common samples")

	// ErrNoCommonFeatures indicates a table and tree sharing no feature/tip IDs.
	ErrNoCommonFeatures = errors.New("table: no features in common with tree")

	// ErrUnknownID indicates a lookup of an absent sample or feature ID.
	ErrUnknownID = errors.New("table: unknown id")

	// ErrBadCSV indicates malformed CSV input.
	ErrBadCSV = errors.New("table: malformed csv")
)

// Table is a dense samples × features matrix with unique string IDs on
// both axes. Rows are samples, columns are features.
//
// Construct with New or ReadCSV. A Table is treated as read-only by
// every operation in this package; operations return new tables.
type Table struct {
	samples  []string
	features []string
	si       map[string]int // sample → row
	fi       map[string]int // feature → column
	data     *mat.Dense     // len(samples) × len(features)
}

// New builds a table over row-major data.
//
// Errors: ErrEmptyTable for a zero axis, ErrDuplicateSample /
// ErrDuplicateFeature for repeated IDs, ErrShapeMismatch when
// len(data) ≠ len(samples) × len(features).
func New(samples, features []string, data []float64) (*Table, error) {
	if len(samples) == 0 || len(features) == 0 {
		return nil, ErrEmptyTable
	}
	si, err := indexOf(samples, ErrDuplicateSample)
	if err != nil {
		return nil, err
	}
	fi, err := indexOf(features, ErrDuplicateFeature)
	if err != nil {
		return nil, err
	}
	if len(data) != len(samples)*len(features) {
		return nil, fmt.Errorf("%w: got %d values for %d×%d",
			ErrShapeMismatch, len(data), len(samples), len(features))
	}

	d := make([]float64, len(data))
	copy(d, data)

	return &Table{
		samples:  append([]string(nil), samples...),
		features: append([]string(nil), features...),
		si:       si,
		fi:       fi,
		data:     mat.NewDense(len(samples), len(features), d),
	}, nil
}

// indexOf builds an ID → position map, rejecting duplicates with dup.
func indexOf(ids []string, dup error) (map[string]int, error) {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, seen := idx[id]; seen {
			return nil, fmt.Errorf("%w: %q", dup, id)
		}
		idx[id] = i
	}

	return idx, nil
}

// Samples returns the sample IDs in row order. The slice is a copy.
func (t *Table) Samples() []string { return append([]string(nil), t.samples...) }

// Features returns the feature IDs in column order. The slice is a copy.
func (t *Table) Features() []string { return append([]string(nil), t.features...) }

// NumSamples returns the row count.
func (t *Table) NumSamples() int { return len(t.samples) }

// NumFeatures returns the column count.
func (t *Table) NumFeatures() int { return len(t.features) }

// At returns the value at row i, column j. Panics on out-of-range
// indices, as mat.Dense does.
func (t *Table) At(i, j int) float64 { return t.data.At(i, j) }

// Value returns the value for a sample/feature ID pair.
func (t *Table) Value(sample, feature string) (float64, error) {
	i, ok := t.si[sample]
	if !ok {
		return 0, fmt.Errorf("%w: sample %q", ErrUnknownID, sample)
	}
	j, ok := t.fi[feature]
	if !ok {
		return 0, fmt.Errorf("%w: feature %q", ErrUnknownID, feature)
	}

	return t.data.At(i, j), nil
}

// Row returns a copy of the sample's row, in Features order.
func (t *Table) Row(sample string) ([]float64, error) {
	i, ok := t.si[sample]
	if !ok {
		return nil, fmt.Errorf("%w: sample %q", ErrUnknownID, sample)
	}
	out := make([]float64, len(t.features))
	mat.Row(out, i, t.data)

	return out, nil
}

// Dense returns the underlying matrix as a read-only mat.Matrix view.
func (t *Table) Dense() mat.Matrix { return t.data }

// newUnchecked wraps pre-validated IDs and data without re-checking.
// Internal derivations (row/column selection) only reorder already
// validated IDs.
func newUnchecked(samples, features []string, d *mat.Dense) *Table {
	si, _ := indexOf(samples, ErrDuplicateSample)
	fi, _ := indexOf(features, ErrDuplicateFeature)

	return &Table{samples: samples, features: features, si: si, fi: fi, data: d}
}

// selectRows returns a new table keeping only the named samples, in the
// given order. Callers guarantee the IDs exist.
func (t *Table) selectRows(ids []string) *Table {
	d := mat.NewDense(len(ids), len(t.features), nil)
	row := make([]float64, len(t.features))
	for i, id := range ids {
		mat.Row(row, t.si[id], t.data)
		d.SetRow(i, row)
	}

	return newUnchecked(append([]string(nil), ids...), t.Features(), d)
}

// selectCols returns a new table keeping only the named features, in the
// given order. Callers guarantee the IDs exist.
func (t *Table) selectCols(ids []string) *Table {
	d := mat.NewDense(len(t.samples), len(ids), nil)
	col := make([]float64, len(t.samples))
	for j, id := range ids {
		mat.Col(col, t.fi[id], t.data)
		d.SetCol(j, col)
	}

	return newUnchecked(t.Samples(), append([]string(nil), ids...), d)
}
