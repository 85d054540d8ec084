package segtree

// Query returns the aggregate of the values in r, combined from left to right.
// If r is empty or exceeds the sequence, Query returns false. This is true
// for every range of an empty tree.
func (t *Tree[T]) Query(r Range) (T, bool) {
	var zero T
	if t == nil {
		return zero, false
	}
	start, end := r.Normalize(t.len)
	if !validSpan(start, end, t.len) {
		tracer().Debugf("segtree: query range %s invalid for length %d", r, t.len)
		return zero, false
	}
	return t.query(0, t.len-1, 1, start, end), true
}

// query folds the values of [start, end) within node p, which covers [s, e].
func (t *Tree[T]) query(s, e, p, start, end int) T {
	if start <= s && e < end {
		return t.store[p-1]
	}
	m := midpoint(s, e)
	acc := t.monoid.Identity()
	if start <= m {
		acc = t.monoid.Combine(acc, t.query(s, m, 2*p, start, end))
	}
	if end > m+1 {
		acc = t.monoid.Combine(acc, t.query(m+1, e, 2*p+1, start, end))
	}
	return acc
}

// At returns the value at index i, or false if i is out of range.
func (t *Tree[T]) At(i int) (T, bool) {
	return t.Query(Index(i))
}

// ForEach calls fn for the values of the sequence in order, together with
// their index. Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(i int, v T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachLeaf(0, t.len-1, 1, fn)
}

func (t *Tree[T]) forEachLeaf(s, e, p int, fn func(int, T) bool) bool {
	if s == e {
		return fn(s, t.store[p-1])
	}
	m := midpoint(s, e)
	if !t.forEachLeaf(s, m, 2*p, fn) {
		return false
	}
	return t.forEachLeaf(m+1, e, 2*p+1, fn)
}

// Values returns a copy of the current sequence.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Len())
	t.ForEach(func(_ int, v T) bool {
		values = append(values, v)
		return true
	})
	return values
}
