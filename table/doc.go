// Package table provides the samples × features contingency table used
// around balance analysis: construction with ID validation, sample and
// feature matching, compositional closure, per-sample balance
// computation, and CSV exchange.
//
// What
//
//   - Table: dense samples × features matrix with unique string IDs on
//     both axes, backed by gonum's mat.Dense.
//   - Match: align two tables (a contingency table and a metadata
//     table) on the intersection of their sample IDs, in one shared
//     deterministic order.
//   - MatchTips: align a table's features with a tree's tips — the
//     tree is sheared to the common features and the table's columns
//     are reordered to the sheared tree's post-order tip order.
//   - Closure: rescale every row to sum to one (compositional
//     proportions). Zero-sum rows are left unchanged.
//   - Balances: apply a balance.Basis to every row, yielding a
//     samples × coordinates table whose columns are the basis' node
//     labels.
//   - ReadCSV / WriteCSV: plain CSV with a feature header row and
//     sample IDs in the first column.
//
// Determinism
//
//	Matching uses sorted ID intersections; every derived table has a
//	fully reproducible row and column order.
//
// Errors
//
//   - ErrDuplicateSample / ErrDuplicateFeature — repeated IDs.
//   - ErrShapeMismatch     — data length ≠ samples × features.
//   - ErrEmptyTable        — no samples or no features.
//   - ErrNoCommonSamples   — Match found an empty intersection.
//   - ErrNoCommonFeatures  — MatchTips found an empty intersection.
//   - ErrUnknownID         — lookup of an absent sample or feature.
//   - ErrBadCSV            — malformed CSV input, wrapped with detail.
package table
