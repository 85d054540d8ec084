package segtree

import "errors"

var (
	// ErrInvalidMonoid signals a missing monoid.
	ErrInvalidMonoid = errors.New("segtree: monoid is required")
	// ErrCapacityOverflow signals a sequence too long to be covered by a tree.
	ErrCapacityOverflow = errors.New("segtree: store capacity overflows int")
	// ErrInvariant signals a violated tree invariant.
	ErrInvariant = errors.New("segtree: invariant violated")
)
