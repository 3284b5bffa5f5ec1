// Package balance builds the isometric log-ratio (ilr) basis defined by a
// rooted bifurcating tree and applies it to positive abundance vectors.
//
// What
//
//	Each internal node of the tree splits its tips into a left group
//	(first child's subtree) and a right group (second child's subtree).
//	That split defines one balance coordinate: the scaled log-ratio of
//	the geometric means of the two groups,
//
//	    b_i · log(x) = sqrt(L·R/(L+R)) · log( gmean(left) / gmean(right) )
//
//	where L and R are the group sizes. Build assembles these contrasts
//	into a dense (internal × tips) matrix whose rows are orthonormal
//	log-contrasts — the sequential binary partition basis. Transform
//	applies the matrix to the natural logs of an abundance vector,
//	yielding one coordinate per internal node.
//
// Determinism
//
//	Rows follow post-order over internal nodes; columns follow the
//	tree's post-order tip order. Rebuilding from the same tree always
//	yields an identical matrix. Basis.Nodes carries one label per row
//	(the node's own name, or a level-order y0, y1, … default) so each
//	coordinate maps back to a tree position.
//
// Concurrency
//
//	A Basis is immutable after Build and safe to share across any
//	number of concurrent Transform calls.
//
// Errors
//
//   - ErrNilTree         — Build received nil.
//   - ErrEmptyTree       — the tree has fewer than two tips.
//   - ErrNotBifurcating  — some internal node does not have exactly two
//     children.
//   - ErrNonPositive     — Transform saw an abundance ≤ 0 (or NaN); the
//     log-ratio is undefined there and is never silently computed.
//   - ErrMissingTip      — Transform's map lacks a tip of the basis.
//   - ErrUnknownTip      — Transform's map names a foreign tip.
//   - ErrLengthMismatch  — TransformVec input length ≠ tip count.
//
// Complexity (n tips, so n−1 internal nodes)
//
//   - Build:     O(n²) time for the dense matrix, O(n²) memory.
//   - Transform: O(n²) time (matrix–vector product), O(n) memory.
package balance
