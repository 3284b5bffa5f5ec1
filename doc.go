// Package ilrtree is an in-memory toolkit for balance-tree analysis of
// compositional data: isometric log-ratio (ilr) balances over a rooted
// bifurcating tree of features, plus the table plumbing around them.
//
// 🚀 What is ilrtree?
//
//	A deterministic, dependency-light library that brings together:
//		• tree/    — rooted bifurcating trees: traversal, shear, naming
//		• newick/  — Newick reader & writer producing tree.Tree values
//		• balance/ — the ilr basis builder and log-ratio transform
//		• table/   — samples × features tables: matching, closure, CSV
//		• niche/   — gradient sorting of samples and features
//
// ✨ Why choose ilrtree?
//
//   - Deterministic everywhere – same tree, same basis; sorted, stable
//     orderings on every derived axis
//   - Explicit failure – sentinel errors, errors.Is-friendly; a zero
//     abundance can never silently become -Inf
//   - Immutable cores – trees, bases and tables are read-only after
//     construction and safe to share across goroutines
//   - Pure Go – gonum for the numerics, nothing else
//
// Quick sketch:
//
//	t, _ := newick.ParseString("((a,b)e,(c,d)f)r;")
//	basis, _ := balance.Build(t)
//	coords, _ := basis.Transform(map[string]float64{
//	    "a": 10, "b": 20, "c": 10, "d": 10,
//	})
//	// one coordinate per internal node: e, f, r
//
// Each subpackage carries its own doc.go with the full contract.
package ilrtree
