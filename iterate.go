package segtree

// Node describes a node of the implicit tree, for inspection and debugging.
type Node[T any] struct {
	ID         int // 1-based heap address; the root is 1
	Depth      int // the root has depth 0
	Start, End int // covered indices, both inclusive
	Value      T
}

// IsLeaf reports whether n covers exactly one index.
func (n Node[T]) IsLeaf() bool {
	return n.Start == n.End
}

// EachNode walks the nodes of the tree in pre-order, left before right.
// Walking stops early if fn returns false.
func (t *Tree[T]) EachNode(fn func(n Node[T]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.eachNode(0, t.len-1, 1, 0, fn)
}

func (t *Tree[T]) eachNode(s, e, p, depth int, fn func(Node[T]) bool) bool {
	node := Node[T]{ID: p, Depth: depth, Start: s, End: e, Value: t.store[p-1]}
	if !fn(node) {
		return false
	}
	if s == e {
		return true
	}
	m := midpoint(s, e)
	if !t.eachNode(s, m, 2*p, depth+1, fn) {
		return false
	}
	return t.eachNode(m+1, e, 2*p+1, depth+1, fn)
}

// Height returns the number of levels of the tree, 0 for an empty tree.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	h, leaves := 1, 1
	for leaves < t.len {
		leaves *= 2
		h++
	}
	return h
}
