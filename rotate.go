package avl

import "cmp"

// rotateRight lifts the left child x of y into y's position:
//
//	      y            x
//	     / \          / \
//	    x   c   →    a   y
//	   / \              / \
//	  a   b            b   c
//
// Heights of y and then x are recomputed. x is returned as the new subtree root.
func rotateRight[K cmp.Ordered](y *node[K]) *node[K] {
	assert(y != nil && y.left != nil, "rotateRight called without left pivot")
	x := y.left
	y.left = x.right
	x.right = y
	recomputeHeight(y)
	recomputeHeight(x)
	return x
}

// rotateLeft is the mirror image of rotateRight, lifting the right child y of x.
func rotateLeft[K cmp.Ordered](x *node[K]) *node[K] {
	assert(x != nil && x.right != nil, "rotateLeft called without right pivot")
	y := x.right
	x.right = y.left
	y.left = x
	recomputeHeight(x)
	recomputeHeight(y)
	return y
}
