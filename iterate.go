package avl

import (
	"cmp"
	"iter"
)

// ForEach walks the keys in ascending order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	forEachNode(t.root, fn)
}

func forEachNode[K cmp.Ordered](n *node[K], fn func(key K) bool) bool {
	if n == nil {
		return true
	}
	if !forEachNode(n.left, fn) {
		return false
	}
	if !fn(n.key) {
		return false
	}
	return forEachNode(n.right, fn)
}

// All returns an iterator over the keys in ascending order.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(yield)
	}
}

// Keys returns the keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
