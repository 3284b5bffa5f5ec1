// Package niche: gradient-based niche estimation and table sorting.
package niche

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/phylokit/ilrtree/table"
)

// Sentinel errors for niche estimation and sorting.
var (
	// ErrNilTable indicates Sort received a nil table.
	ErrNilTable = errors.New("niche: table is nil")

	// ErrNilEstimator indicates WithEstimator received nil.
	ErrNilEstimator = errors.New("niche: estimator is nil")

	// ErrNoCommonSamples indicates no table sample has a gradient value.
	ErrNoCommonSamples = errors.New("niche: no samples in common with gradient")

	// ErrLengthMismatch indicates estimator inputs of different lengths.
	ErrLengthMismatch = errors.New("niche: abundance and gradient lengths differ")

	// ErrNaNGradient indicates a NaN gradient value.
	ErrNaNGradient = errors.New("niche: gradient contains NaN")

	// ErrZeroSum indicates a feature with zero total abundance; its
	// niche is undefined.
	ErrZeroSum = errors.New("niche: zero total abundance")
)

// Estimator maps a feature's abundance profile across samples and the
// parallel gradient values to an orderable niche scalar.
type Estimator func(abund, gradient []float64) (float64, error)

// MeanEstimator estimates a feature's niche as the expected gradient
// value of the samples it occurs in: dot(gradient, abund/sum(abund)).
//
// Errors: ErrLengthMismatch, ErrNaNGradient, ErrZeroSum.
func MeanEstimator(abund, gradient []float64) (float64, error) {
	if len(abund) != len(gradient) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(abund), len(gradient))
	}
	for _, g := range gradient {
		if math.IsNaN(g) {
			return 0, ErrNaNGradient
		}
	}
	sum := floats.Sum(abund)
	if sum == 0 {
		return 0, ErrZeroSum
	}

	v := make([]float64, len(abund))
	for i, a := range abund {
		v[i] = a / sum
	}

	return floats.Dot(gradient, v), nil
}

// Option configures Sort via functional arguments.
type Option func(*options)

type options struct {
	estimator Estimator
	err       error
}

// WithEstimator replaces the default MeanEstimator. A nil estimator is
// recorded and surfaced as ErrNilEstimator when Sort runs.
func WithEstimator(fn Estimator) Option {
	return func(o *options) {
		if fn == nil {
			o.err = ErrNilEstimator

			return
		}
		o.estimator = fn
	}
}

// Sort orders tbl by a per-sample gradient.
//
// Samples without a gradient value (and gradient entries without a
// sample) are dropped; the survivors are ordered by ascending gradient.
// Each feature's niche is estimated on the closure of the surviving
// rows and features are ordered by ascending niche. Ties on either
// axis break by ID. The returned table carries the original values,
// reindexed.
func Sort(tbl *table.Table, gradient map[string]float64, opts ...Option) (*table.Table, error) {
	// 1. Options.
	o := options{estimator: MeanEstimator}
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Validate inputs.
	if tbl == nil {
		return nil, ErrNilTable
	}
	for id, g := range gradient {
		if math.IsNaN(g) {
			return nil, fmt.Errorf("%w: sample %q", ErrNaNGradient, id)
		}
	}

	// 3. Match samples against the gradient, ascending gradient order.
	var common []string
	for _, id := range tbl.Samples() {
		if _, ok := gradient[id]; ok {
			common = append(common, id)
		}
	}
	if len(common) == 0 {
		return nil, ErrNoCommonSamples
	}
	sort.Slice(common, func(i, j int) bool {
		gi, gj := gradient[common[i]], gradient[common[j]]
		if gi != gj {
			return gi < gj
		}

		return common[i] < common[j]
	})

	// 4. Estimate each feature's niche on closed (proportion) rows.
	matched, _, err := tbl.Match(gradientTable(common, gradient))
	if err != nil {
		return nil, err
	}
	closed := matched.Closure()

	g := make([]float64, len(common))
	sampleOrder := closed.Samples()
	for i, id := range sampleOrder {
		g[i] = gradient[id]
	}

	features := closed.Features()
	niches := make(map[string]float64, len(features))
	abund := make([]float64, len(sampleOrder))
	for j, feat := range features {
		for i := range sampleOrder {
			abund[i] = closed.At(i, j)
		}
		est, eerr := o.estimator(abund, g)
		if eerr != nil {
			return nil, fmt.Errorf("feature %q: %w", feat, eerr)
		}
		niches[feat] = est
	}
	sort.Slice(features, func(i, j int) bool {
		ni, nj := niches[features[i]], niches[features[j]]
		if ni != nj {
			return ni < nj
		}

		return features[i] < features[j]
	})

	// 5. Reindex the original values: gradient-ordered samples,
	//    niche-ordered features.
	return reindex(tbl, common, features)
}

// gradientTable lifts the gradient into a one-column metadata table so
// Match can drive the sample intersection.
func gradientTable(samples []string, gradient map[string]float64) *table.Table {
	data := make([]float64, len(samples))
	for i, id := range samples {
		data[i] = gradient[id]
	}
	t, _ := table.New(samples, []string{"gradient"}, data) // samples already deduplicated

	return t
}

// reindex extracts the given samples and features from tbl, in order.
func reindex(tbl *table.Table, samples, features []string) (*table.Table, error) {
	data := make([]float64, 0, len(samples)*len(features))
	for _, s := range samples {
		for _, f := range features {
			v, err := tbl.Value(s, f)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}

	return table.New(samples, features, data)
}
