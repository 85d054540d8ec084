package segtree

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimals(t *testing.T, values ...string) []decimal.Decimal {
	t.Helper()
	out := make([]decimal.Decimal, len(values))
	for i, s := range values {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		out[i] = d
	}
	return out
}

func TestAdditiveDecimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	prices := decimals(t, "1.10", "2.25", "3.5", "0.15")
	tree := New(prices, Additive[decimal.Decimal]{})
	require.NoError(t, tree.CheckWith(decimal.Decimal.Equal))

	total, ok := tree.Total()
	require.True(t, ok)
	assert.True(t, total.Equal(decimal.RequireFromString("7.0")), "total = %s", total)

	mid, ok := tree.Query(Span(1, 3))
	require.True(t, ok)
	assert.True(t, mid.Equal(decimal.RequireFromString("5.75")), "mid = %s", mid)

	tree.Update(All(), decimal.RequireFromString("0.01"))
	total, _ = tree.Total()
	assert.True(t, total.Equal(decimal.RequireFromString("7.04")), "total = %s", total)
	require.NoError(t, tree.CheckWith(decimal.Decimal.Equal))
}

func TestMultiplicativeDecimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	factors := decimals(t, "1.5", "2", "0.5", "4")
	tree := New(factors, Multiplicative[decimal.Decimal]{One: decimal.NewFromInt(1)})

	product, ok := tree.Query(All())
	require.True(t, ok)
	assert.True(t, product.Equal(decimal.NewFromInt(6)), "product = %s", product)

	product, ok = tree.Query(Closed(1, 2))
	require.True(t, ok)
	assert.True(t, product.Equal(decimal.NewFromInt(1)), "product = %s", product)
}

func TestProduct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree := New([]int64{1, 2, 3, 4, 5}, Product[int64]{})
	v, ok := tree.Query(Span(1, 4))
	require.True(t, ok)
	assert.Equal(t, int64(24), v)
	tree.Update(Index(0), 10)
	v, _ = tree.Total()
	assert.Equal(t, int64(1200), v)
}

func TestMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	values := []int{5, -2, 8, 3, 7, 1}
	minTree := New(values, Min[int]{Top: math.MaxInt})
	maxTree := New(values, Max[int]{Bottom: math.MinInt})

	for _, c := range []struct {
		r        Range
		min, max int
	}{
		{All(), -2, 8},
		{From(2), 1, 8},
		{Span(3, 5), 3, 7},
		{Index(5), 1, 1},
	} {
		lo, ok := minTree.Query(c.r)
		require.True(t, ok, "%s", c.r)
		hi, ok := maxTree.Query(c.r)
		require.True(t, ok, "%s", c.r)
		assert.Equal(t, c.min, lo, "min of %s", c.r)
		assert.Equal(t, c.max, hi, "max of %s", c.r)
	}
	// folding into a max keeps the greater value
	maxTree.Update(All(), 6)
	assert.Equal(t, []int{6, 6, 8, 6, 7, 6}, maxTree.Values())
	require.NoError(t, maxTree.Check())
}

func TestFloatMinWithInfinity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree := New([]float64{2.5, 0.5, 1.5}, Min[float64]{Top: math.Inf(1)})
	v, ok := tree.Query(To(1))
	require.True(t, ok)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, math.Inf(1), tree.Monoid().Identity())
}

func TestPairAnswersTwoQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	m := PairOf[int, int](Sum[int]{}, Max[int]{Bottom: math.MinInt})
	values := make([]Tuple[int, int], 0, 5)
	for _, v := range []int{3, 9, 1, 4, 2} {
		values = append(values, Tuple[int, int]{First: v, Second: v})
	}
	tree := New(values, Monoid[Tuple[int, int]](m))
	v, ok := tree.Query(Span(2, 5))
	require.True(t, ok)
	assert.Equal(t, Tuple[int, int]{First: 7, Second: 4}, v)
	require.NoError(t, tree.Check())
}

// matrix is a 2x2 integer matrix; matrix products do not commute.
type matrix [4]int64

func mul(a, b matrix) matrix {
	return matrix{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

var matrixMonoid = MonoidOf(matrix{1, 0, 0, 1}, mul)

func TestMatrixProduct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	ms := []matrix{{1, 1, 0, 1}, {2, 0, 1, 1}, {0, 1, 1, 0}, {1, 2, 3, 4}, {1, 0, 5, 1}}
	tree := New(ms, matrixMonoid)
	for start := 0; start < len(ms); start++ {
		for end := start + 1; end <= len(ms); end++ {
			want := matrixMonoid.Identity()
			for _, m := range ms[start:end] {
				want = mul(want, m)
			}
			got, ok := tree.Query(Span(start, end))
			require.True(t, ok)
			assert.Equal(t, want, got, "product of [%d, %d)", start, end)
		}
	}
}
