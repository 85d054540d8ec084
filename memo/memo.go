/*
Package memo memoizes range queries of a segment tree.

Read-heavy clients asking the same ranges over and over may wrap a tree in a
Cached. Query results are cached per normalized range in an LRU cache of
bounded size. Every modification of the tree through the wrapper purges the
cache. Modifying the wrapped tree directly, bypassing the wrapper, leaves
stale entries behind.

Like the tree itself, a Cached is not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package memo

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtree"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

// ErrNilTree is returned when wrapping a nil tree.
var ErrNilTree = errors.New("memo: tree is nil")

// span is the cache key: a normalized, half-open range.
type span struct {
	start, end int
}

// Stats counts cache lookups.
type Stats struct {
	Hits, Misses uint64
}

// Cached is a segment tree with memoized range queries.
type Cached[T any] struct {
	tree  *segtree.Tree[T]
	cache *lru.Cache
	stats Stats
}

// New wraps tree, caching up to size query results.
func New[T any](tree *segtree.Tree[T], size int) (*Cached[T], error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("memo: cannot create cache: %w", err)
	}
	return &Cached[T]{tree: tree, cache: cache}, nil
}

// Tree returns the wrapped tree.
func (c *Cached[T]) Tree() *segtree.Tree[T] {
	return c.tree
}

// Len returns the length of the wrapped sequence.
func (c *Cached[T]) Len() int {
	return c.tree.Len()
}

// Query returns the aggregate of r, see segtree.Tree.Query. Results for
// invalid ranges are not cached.
func (c *Cached[T]) Query(r segtree.Range) (T, bool) {
	start, end := r.Normalize(c.tree.Len())
	key := span{start: start, end: end}
	if v, ok := c.cache.Get(key); ok {
		c.stats.Hits++
		val, _ := v.(T) // a cached nil interface value yields the zero T
		return val, true
	}
	c.stats.Misses++
	v, ok := c.tree.Query(r)
	if ok {
		c.cache.Add(key, v)
	}
	return v, ok
}

// Update folds val into every value in r, see segtree.Tree.Update.
func (c *Cached[T]) Update(r segtree.Range, val T) {
	if !r.Valid(c.tree.Len()) {
		return
	}
	c.invalidate()
	c.tree.Update(r, val)
}

// Set overwrites every value in r with val, see segtree.Tree.Set.
func (c *Cached[T]) Set(r segtree.Range, val T) {
	if !r.Valid(c.tree.Len()) {
		return
	}
	c.invalidate()
	c.tree.Set(r, val)
}

// Stats returns the number of cache hits and misses so far.
func (c *Cached[T]) Stats() Stats {
	return c.stats
}

// Size returns the number of results currently cached.
func (c *Cached[T]) Size() int {
	return c.cache.Len()
}

func (c *Cached[T]) invalidate() {
	if n := c.cache.Len(); n > 0 {
		tracer().Debugf("memo: purging %d cached results", n)
		c.cache.Purge()
	}
}
