package avl

import "cmp"

// node is a single key of a tree. Nodes are created as leaves on first
// insertion of their key and are never removed; rotations only re-link them.
type node[K cmp.Ordered] struct {
	key    K
	left   *node[K]
	right  *node[K]
	height int // 1 for a leaf
}

func newLeaf[K cmp.Ordered](key K) *node[K] {
	return &node[K]{key: key, height: 1}
}

// height returns the cached height of n, where an absent node has height 0.
func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// balanceFactor is the height of the left subtree minus the height of the
// right subtree, 0 for an absent node.
func balanceFactor[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// recomputeHeight has to be called for every node whose set of children
// changed, bottom-up, before its balance factor is read.
func recomputeHeight[K cmp.Ordered](n *node[K]) {
	n.height = 1 + max(height(n.left), height(n.right))
}
