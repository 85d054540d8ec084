package memo

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCached(t *testing.T, size int) *Cached[int] {
	t.Helper()
	tree := segtree.New([]int{10, 11, 12, 13, 14}, segtree.Sum[int]{})
	c, err := New(tree, size)
	require.NoError(t, err)
	return c
}

func TestNewRejectsInvalidArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	_, err := New[int](nil, 8)
	assert.ErrorIs(t, err, ErrNilTree)

	tree := segtree.New([]int{1}, segtree.Sum[int]{})
	_, err = New(tree, 0)
	assert.Error(t, err)
}

func TestQueryIsMemoized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	c := newCached(t, 8)
	v, ok := c.Query(segtree.Span(1, 4))
	require.True(t, ok)
	assert.Equal(t, 36, v)
	// same normalized range, different notation
	v, ok = c.Query(segtree.Closed(1, 3))
	require.True(t, ok)
	assert.Equal(t, 36, v)
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())
	assert.Equal(t, 1, c.Size())
}

func TestInvalidRangesAreNotCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	c := newCached(t, 8)
	_, ok := c.Query(segtree.Span(2, 9))
	assert.False(t, ok)
	_, ok = c.Query(segtree.Span(2, 9))
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, uint64(2), c.Stats().Misses)
}

func TestModificationsInvalidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	c := newCached(t, 8)
	c.Query(segtree.All())
	c.Query(segtree.To(2))
	require.Equal(t, 2, c.Size())

	c.Update(segtree.All(), 3)
	assert.Equal(t, 0, c.Size())
	v, _ := c.Query(segtree.All())
	assert.Equal(t, 75, v)

	c.Set(segtree.Index(0), 0)
	v, _ = c.Query(segtree.All())
	assert.Equal(t, 62, v)
	require.NoError(t, c.Tree().Check())
}

func TestInvalidModificationsKeepCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	c := newCached(t, 8)
	c.Query(segtree.All())
	c.Update(segtree.Span(4, 7), 1)
	c.Set(segtree.Span(3, 3), 1)
	assert.Equal(t, 1, c.Size())
	v, _ := c.Query(segtree.All())
	assert.Equal(t, 60, v)
	assert.Equal(t, 5, c.Len())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	c := newCached(t, 2)
	c.Query(segtree.Index(0))
	c.Query(segtree.Index(1))
	c.Query(segtree.Index(2))
	assert.Equal(t, 2, c.Size())
	c.Query(segtree.Index(0))
	assert.Equal(t, uint64(0), c.Stats().Hits)
}

func TestCachedNilInterfaceResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	firstError := segtree.MonoidOf[error](nil, func(a, b error) error {
		if a != nil {
			return a
		}
		return b
	})
	c, err := New(segtree.New([]error{nil, nil}, firstError), 4)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		v, ok := c.Query(segtree.All())
		require.True(t, ok)
		assert.NoError(t, v)
	}
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())

	failure := errors.New("failure")
	c.Set(segtree.Index(1), failure)
	v, ok := c.Query(segtree.All())
	require.True(t, ok)
	assert.ErrorIs(t, v, failure)
}
