package segtree

// Update folds val into every value in r: each value v becomes
// Combine(v, val). It does not overwrite values; with a Sum monoid, Update
// adds val to every value in the range, and repeated updates accumulate.
//
// If r is empty or exceeds the sequence, Update does nothing.
func (t *Tree[T]) Update(r Range, val T) {
	t.modify(r, "update", func(old T) T {
		return t.monoid.Combine(old, val)
	})
}

// Set overwrites every value in r with val. Like Update, it does nothing for
// an empty or out-of-bounds range.
func (t *Tree[T]) Set(r Range, val T) {
	t.modify(r, "set", func(T) T {
		return val
	})
}

func (t *Tree[T]) modify(r Range, op string, leaf func(T) T) {
	if t == nil {
		return
	}
	start, end := r.Normalize(t.len)
	if !validSpan(start, end, t.len) {
		tracer().Debugf("segtree: %s range %s invalid for length %d", op, r, t.len)
		return
	}
	t.modifyNode(0, t.len-1, 1, start, end, leaf)
}

// modifyNode applies leaf to every leaf of node p (covering [s, e]) within
// [start, end), then recomputes p. Each visited inner node is recomputed,
// whichever children were descended into.
func (t *Tree[T]) modifyNode(s, e, p, start, end int, leaf func(T) T) {
	if s == e {
		t.store[p-1] = leaf(t.store[p-1])
		return
	}
	m := midpoint(s, e)
	if m >= start {
		t.modifyNode(s, m, 2*p, start, end, leaf)
	}
	if m+1 < end {
		t.modifyNode(m+1, e, 2*p+1, start, end, leaf)
	}
	t.pull(p)
}
