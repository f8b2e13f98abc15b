package avl

import "cmp"

// NodeView is a read-only handle to a node of a tree. The zero value refers
// to no node.
//
// A NodeView stays valid across insertions, but the shape around it may
// change: after a rotation its children may be different ones.
type NodeView[K cmp.Ordered] struct {
	n *node[K]
}

// Root returns a view of the root node. It is invalid for an empty tree.
func (t *Tree[K]) Root() NodeView[K] {
	if t == nil {
		return NodeView[K]{}
	}
	return NodeView[K]{n: t.root}
}

// Valid reports whether v refers to a node.
func (v NodeView[K]) Valid() bool {
	return v.n != nil
}

// Key returns the key of the node, or the zero key for an invalid view.
func (v NodeView[K]) Key() K {
	if v.n == nil {
		var zero K
		return zero
	}
	return v.n.key
}

// Height returns the height of the subtree rooted at the node, 0 if invalid.
func (v NodeView[K]) Height() int {
	return height(v.n)
}

// Balance returns the balance factor of the node, 0 if invalid.
func (v NodeView[K]) Balance() int {
	return balanceFactor(v.n)
}

// Left returns a view of the left child.
func (v NodeView[K]) Left() NodeView[K] {
	if v.n == nil {
		return v
	}
	return NodeView[K]{n: v.n.left}
}

// Right returns a view of the right child.
func (v NodeView[K]) Right() NodeView[K] {
	if v.n == nil {
		return v
	}
	return NodeView[K]{n: v.n.right}
}

// IsLeaf reports whether the node has no children.
func (v NodeView[K]) IsLeaf() bool {
	return v.n != nil && v.n.left == nil && v.n.right == nil
}
