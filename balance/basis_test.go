package balance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/phylokit/ilrtree/balance"
	"github.com/phylokit/ilrtree/newick"
	"github.com/phylokit/ilrtree/tree"
)

const eps = 1e-12

// parse is a test shorthand over the newick reader.
func parse(t *testing.T, src string) *tree.Tree {
	t.Helper()
	tr, err := newick.ParseString(src)
	require.NoError(t, err, "fixture %q must parse", src)

	return tr
}

// TestBuild_NilTree verifies the nil guard.
func TestBuild_NilTree(t *testing.T) {
	_, err := balance.Build(nil)
	assert.ErrorIs(t, err, balance.ErrNilTree)
}

// TestBuild_SingleTip verifies that a one-tip tree has no balance.
func TestBuild_SingleTip(t *testing.T) {
	_, err := balance.Build(parse(t, "a;"))
	assert.ErrorIs(t, err, balance.ErrEmptyTree, "fewer than 2 tips must error ErrEmptyTree")
}

// TestBuild_NotBifurcating verifies a 3-child node fails at build time.
func TestBuild_NotBifurcating(t *testing.T) {
	_, err := balance.Build(parse(t, "(a,b,c);"))
	assert.ErrorIs(t, err, balance.ErrNotBifurcating, "3 children must error ErrNotBifurcating")
}

// TestBuild_Shape verifies row count = internal nodes, column count = tips.
func TestBuild_Shape(t *testing.T) {
	b, err := balance.Build(parse(t, "((a,b)e,(c,d)f)r;"))
	require.NoError(t, err)

	r, c := b.Matrix.Dims()
	assert.Equal(t, 3, r, "one row per internal node")
	assert.Equal(t, 4, c, "one column per tip")
	assert.Equal(t, []string{"e", "f", "r"}, b.Nodes, "rows follow post-order internal nodes")
	assert.Equal(t, []string{"a", "b", "c", "d"}, b.Tips, "columns follow post-order tips")
}

// TestBuild_RowsSumToZero verifies the log-contrast property on every row.
func TestBuild_RowsSumToZero(t *testing.T) {
	b, err := balance.Build(parse(t, "(((a,b)x,(c,d)y)z,(e,(f,g)w)v)r;"))
	require.NoError(t, err)

	rows, cols := b.Matrix.Dims()
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += b.Matrix.At(i, j)
		}
		assert.InDelta(t, 0, sum, eps, "row %d (%s) must sum to zero", i, b.Nodes[i])
	}
}

// TestBuild_Orthonormal verifies the rows form an orthonormal set:
// B·Bᵀ = identity.
func TestBuild_Orthonormal(t *testing.T) {
	b, err := balance.Build(parse(t, "(((a,b)x,(c,d)y)z,(e,(f,g)w)v)r;"))
	require.NoError(t, err)

	rows, _ := b.Matrix.Dims()
	var gram mat.Dense
	gram.Mul(b.Matrix, b.Matrix.T())
	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, gram.At(i, j), eps,
				"gram[%d,%d] (%s·%s)", i, j, b.Nodes[i], b.Nodes[j])
		}
	}
}

// TestBuild_Deterministic verifies rebuilding yields an identical matrix.
func TestBuild_Deterministic(t *testing.T) {
	tr := parse(t, "((a,b)e,(c,d)f)r;")

	b1, err := balance.Build(tr)
	require.NoError(t, err)
	b2, err := balance.Build(tr)
	require.NoError(t, err)

	assert.Equal(t, b1.Nodes, b2.Nodes)
	assert.Equal(t, b1.Tips, b2.Tips)
	assert.True(t, mat.Equal(b1.Matrix, b2.Matrix), "same tree must rebuild to the identical basis")
}

// TestBuild_UnnamedInternals verifies level-order y-labels on unnamed
// internal nodes, mirroring RenameInternal's convention.
func TestBuild_UnnamedInternals(t *testing.T) {
	b, err := balance.Build(parse(t, "((a,b),(c,d));"))
	require.NoError(t, err)

	// Post-order rows, level-order numbering: root=y0, left=y1, right=y2.
	assert.Equal(t, []string{"y1", "y2", "y0"}, b.Nodes)
}

// TestBuild_TwoTipCoefficients pins the normalization on the smallest
// case: one balance row (+sqrt(1/2), -sqrt(1/2)).
func TestBuild_TwoTipCoefficients(t *testing.T) {
	b, err := balance.Build(parse(t, "(a,b);"))
	require.NoError(t, err)

	s := math.Sqrt(0.5)
	assert.InDelta(t, s, b.Matrix.At(0, 0), eps)
	assert.InDelta(t, -s, b.Matrix.At(0, 1), eps)
}
