package segtree

import (
	"fmt"
	"reflect"
)

// Check validates the tree invariants, comparing values with
// reflect.DeepEqual. It is intended for tests.
func (t *Tree[T]) Check() error {
	return t.CheckWith(func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	})
}

// CheckWith validates the tree invariants, comparing values with eq:
//
//   - the store size matches the sequence length,
//   - every inner node holds the combination of its children,
//   - store slots not addressed by any node hold the identity.
func (t *Tree[T]) CheckWith(eq func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.monoid == nil {
		return ErrInvalidMonoid
	}
	size, ok := storeSize(t.len)
	if !ok || size != len(t.store) {
		return fmt.Errorf("%w: store size %d for length %d", ErrInvariant, len(t.store), t.len)
	}
	if t.len == 0 {
		return nil
	}
	addressed := make([]bool, len(t.store))
	if err := t.checkNode(0, t.len-1, 1, addressed, eq); err != nil {
		return err
	}
	id := t.monoid.Identity()
	for i, used := range addressed {
		if !used && !eq(t.store[i], id) {
			return fmt.Errorf("%w: unused node %d is not the identity", ErrInvariant, i+1)
		}
	}
	return nil
}

func (t *Tree[T]) checkNode(s, e, p int, addressed []bool, eq func(a, b T) bool) error {
	if p-1 >= len(t.store) {
		return fmt.Errorf("%w: node %d for [%d, %d] outside store", ErrInvariant, p, s, e)
	}
	addressed[p-1] = true
	if s == e {
		return nil
	}
	m := midpoint(s, e)
	if err := t.checkNode(s, m, 2*p, addressed, eq); err != nil {
		return err
	}
	if err := t.checkNode(m+1, e, 2*p+1, addressed, eq); err != nil {
		return err
	}
	if !eq(t.store[p-1], t.monoid.Combine(t.store[2*p-1], t.store[2*p])) {
		return fmt.Errorf("%w: node %d for [%d, %d] does not combine its children",
			ErrInvariant, p, s, e)
	}
	return nil
}
