package avl

import (
	"cmp"
	"fmt"
)

// IsBalanced reports whether the balance factor of every node lies within
// [-1, 1]. An empty tree is balanced.
//
// Insertion keeps the tree balanced by construction; IsBalanced exists to
// verify that and costs O(n).
func (t *Tree[K]) IsBalanced() bool {
	if t == nil {
		return true
	}
	return isBalanced(t.root)
}

func isBalanced[K cmp.Ordered](n *node[K]) bool {
	if n == nil {
		return true
	}
	if b := balanceFactor(n); b < -1 || b > 1 {
		return false
	}
	return isBalanced(n.left) && isBalanced(n.right)
}

// Check validates all structural tree invariants: search order without
// duplicates, cached heights, balance factors and the node count.
//
// Check is intended for tests and debugging.
func (t *Tree[K]) Check() error {
	if t == nil || t.root == nil {
		if t != nil && t.size != 0 {
			return fmt.Errorf("%w: empty tree with count %d", ErrCountMismatch, t.size)
		}
		return nil
	}
	count, _, err := checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, tree says %d", ErrCountMismatch, count, t.size)
	}
	return nil
}

// checkNode checks the subtree at n, whose keys must lie strictly between
// the bounds lo and hi (nil means unbounded).
func checkNode[K cmp.Ordered](n *node[K], lo, hi *K) (count int, h int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not above %v", ErrUnordered, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not below %v", ErrUnordered, n.key, *hi)
	}
	lcount, lh, err := checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rcount, rh, err := checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	h = 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: node %v caches height %d, actual %d", ErrHeightMismatch, n.key, n.height, h)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d at %v", ErrUnbalanced, b, n.key)
	}
	return lcount + rcount + 1, h, nil
}
