// Package tree provides the rooted, read-only feature tree that underpins
// balance analysis: construction with validation, deterministic traversals,
// tip enumeration, shearing to a feature subset, and internal-node naming.
//
// What
//
//   - Node: a leaf (named, no children) or an internal node (children,
//     optional name, optional branch length).
//   - Tree: a validated wrapper around a root Node. After New returns, the
//     node structure is treated as frozen; callers must not mutate it.
//   - Traversals: PostOrder and LevelOrder with error-abort hooks.
//   - Tips: leaf names in post-order — the canonical feature order used by
//     every downstream consumer (basis columns, table columns).
//   - Shear: restrict a tree to a subset of its tips, pruning internal
//     nodes left with a single child (their branch lengths are summed).
//   - RenameInternal: label internal nodes in level order (y0, y1, …) so
//     balance coordinates can be mapped back to tree positions by name.
//
// Determinism
//
//	Children keep their construction order; every traversal and every
//	derived ordering (tips, internal nodes) is fully reproducible.
//
// Concurrency
//
//	A Tree is immutable after New and safe for concurrent readers.
//	Shear and RenameInternal return new trees and never touch the input.
//
// Errors
//
//   - ErrNilNode          — nil root or nil child encountered.
//   - ErrEmptyTipName     — a leaf has no name.
//   - ErrDuplicateTip     — two leaves share a name.
//   - ErrNotBifurcating   — an internal node does not have exactly two
//     children (reported by Bifurcating).
//   - ErrUnknownTip       — Shear was asked to keep a name absent from
//     the tree.
//   - ErrNoTips           — Shear was asked to keep nothing.
//   - ErrNameCount        — RenameInternal received the wrong number of
//     names.
package tree
