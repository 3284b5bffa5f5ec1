// Package newick reads and writes trees in the Newick format, producing
// and consuming tree.Tree values.
//
// The dialect follows the conventions established at
// http://evolution.genetics.washington.edu/phylip/newick_doc.html:
// nested parentheses for internal nodes, comma-separated children,
// optional node labels, optional ":length" branch lengths, and a
// terminating semicolon. Quoted labels and bracket comments are not
// implemented.
//
//	((a:0.1,b:0.2)e:0.3,(c,d)f)r;
//
// What
//
//   - Parse / ParseString — read one tree; the result is validated by
//     tree.New, so duplicate or empty tip names are rejected here too.
//   - Write / String      — serialize a tree back out; branch lengths
//     are emitted only when non-zero, with minimal formatting.
//
// Errors
//
//   - ErrSyntax       — malformed input, wrapped with a byte offset.
//   - ErrTrailingData — non-whitespace input after the semicolon.
//   - tree sentinel errors from validation (tree.ErrDuplicateTip, …).
package newick
