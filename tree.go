package segtree

import (
	"fmt"
	"math"
)

// Tree is a segment tree over a fixed-length sequence of values of type T,
// aggregated by a monoid.
//
// Nodes are held in a flat store using 1-based heap addressing: node p covers
// its children 2p and 2p+1 and lives at store[p-1]. Inner nodes hold the
// combination of their children, leaves hold the sequence values.
type Tree[T any] struct {
	store  []T
	len    int
	monoid Monoid[T]
}

// New creates a tree over a copy of values, aggregated by monoid.
// New accepts any slice, including nil or empty ones. It panics if monoid is nil.
func New[T any](values []T, monoid Monoid[T]) *Tree[T] {
	if monoid == nil {
		panic(ErrInvalidMonoid)
	}
	t := &Tree[T]{monoid: monoid}
	if len(values) == 0 {
		tracer().Debugf("segtree: new empty tree")
		return t
	}
	size, ok := storeSize(len(values))
	if !ok {
		panic(fmt.Errorf("%w: %d values", ErrCapacityOverflow, len(values)))
	}
	t.store = make([]T, size)
	id := monoid.Identity()
	for i := range t.store {
		t.store[i] = id
	}
	t.len = len(values)
	t.build(values, 0, t.len-1, 1)
	tracer().Debugf("segtree: new tree with %d values, store size %d", t.len, size)
	return t
}

// storeSize returns the size of a complete binary tree with at least n leaves,
// i.e. 2^(ceil(log2 n)+1) - 1. It reports false if this overflows an int.
func storeSize(n int) (int, bool) {
	if n <= 0 {
		return 0, true
	}
	leaves := 1
	for leaves < n {
		if leaves > math.MaxInt/2 {
			return 0, false
		}
		leaves *= 2
	}
	if leaves > math.MaxInt/2 {
		return 0, false
	}
	return 2*leaves - 1, true
}

// midpoint splits [s, t], giving the extra element of an odd span to the left.
func midpoint(s, t int) int {
	return s + (t-s)/2
}

func (t *Tree[T]) build(values []T, s, e, p int) {
	if s == e {
		t.store[p-1] = values[s]
		return
	}
	m := midpoint(s, e)
	t.build(values, s, m, 2*p)
	t.build(values, m+1, e, 2*p+1)
	t.pull(p)
}

// pull recomputes node p from its children.
func (t *Tree[T]) pull(p int) {
	t.store[p-1] = t.monoid.Combine(t.store[2*p-1], t.store[2*p])
}

// Monoid returns the monoid the tree aggregates with.
func (t *Tree[T]) Monoid() Monoid[T] {
	return t.monoid
}

// Len returns the number of values in the sequence.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.len
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Clone returns a copy of the tree. The store is copied, the monoid is shared.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	cloned := *t
	if t.store != nil {
		cloned.store = make([]T, len(t.store))
		copy(cloned.store, t.store)
	}
	return &cloned
}

// Total returns the aggregate of all values, or false for an empty tree.
func (t *Tree[T]) Total() (T, bool) {
	if t.IsEmpty() {
		var zero T
		return zero, false
	}
	return t.store[0], true
}
