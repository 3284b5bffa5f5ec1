// Package niche orders a contingency table along a numeric sample
// gradient: samples by their gradient value, features by their
// estimated niche along that gradient.
//
// What
//
//	The niche of a feature is the expected gradient value of the
//	samples it occurs in,
//
//	    E[g | x] = Σ_i g_i · x_i / Σ_j x_j
//
//	computed over the feature's abundance profile across samples.
//	Sort computes one such estimate per feature (after per-sample
//	closure, so sequencing depth does not bias the estimate), then
//	reindexes the original table with samples in ascending gradient
//	order and features in ascending niche order.
//
// Options
//
//	The estimator is pluggable via WithEstimator; MeanEstimator is the
//	default. Any function mapping (abundance profile, gradient) to an
//	orderable scalar works.
//
// Determinism
//
//	Samples are matched to the gradient by sorted-ID intersection;
//	equal gradient or niche values are tie-broken by ID.
//
// Errors
//
//   - ErrNilTable        — Sort received a nil table.
//   - ErrNilEstimator    — WithEstimator received nil.
//   - ErrNoCommonSamples — no table sample has a gradient value.
//   - ErrLengthMismatch  — estimator inputs of different lengths.
//   - ErrNaNGradient     — a gradient value is NaN.
//   - ErrZeroSum         — a feature absent from every sample has no
//     defined niche.
package niche
