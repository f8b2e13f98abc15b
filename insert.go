package avl

import "cmp"

// insertion carries the state of a single insert down and up the tree.
type insertion[K cmp.Ordered] struct {
	key     K
	obs     Observer[K]
	created bool // a new leaf has been linked in
}

func (ins *insertion[K]) emit(e Event[K]) {
	if ins.obs != nil {
		ins.obs(e)
	}
}

// insert adds ins.key to the subtree rooted at n and returns the new root of
// that subtree. The caller must store the result in place of n.
func (ins *insertion[K]) insert(n *node[K]) *node[K] {
	if n == nil {
		ins.created = true
		ins.emit(Event[K]{Kind: KindInserted, Key: ins.key, At: ins.key})
		return newLeaf(ins.key)
	}
	switch c := cmp.Compare(ins.key, n.key); {
	case c < 0:
		n.left = ins.insert(n.left)
	case c > 0:
		n.right = ins.insert(n.right)
	default:
		ins.emit(Event[K]{Kind: KindDuplicate, Key: ins.key, At: n.key})
		return n
	}
	recomputeHeight(n)
	return ins.resolveImbalance(n)
}

// resolveImbalance rotates n if its balance factor left [-1, 1] and returns
// the root of the (possibly rotated) subtree. n's height must be current.
func (ins *insertion[K]) resolveImbalance(n *node[K]) *node[K] {
	balance := balanceFactor(n)
	ins.emit(Event[K]{Kind: KindBalance, Key: ins.key, At: n.key, Balance: balance})
	c := ins.imbalanceCase(n, balance)
	var root *node[K]
	switch c {
	case LeftLeft:
		root = rotateRight(n)
	case LeftRight:
		n.left = rotateLeft(n.left)
		root = rotateRight(n)
	case RightRight:
		root = rotateLeft(n)
	case RightLeft:
		n.right = rotateRight(n.right)
		root = rotateLeft(n)
	default:
		return n
	}
	tracer().P("case", c.String()).Debugf("balance %d at %v, new subtree root %v", balance, n.key, root.key)
	ins.emit(Event[K]{Kind: KindRotation, Key: ins.key, At: n.key, Balance: balance, Case: c})
	return root
}

// imbalanceCase selects the rotation case for n by comparing the inserted key
// with the key of n's heavy child. This reproduces the direction of the
// heavier grandchild only directly after inserting a single key into a
// balanced tree, where at most one ancestor is out of balance. Any other
// mutation (e.g. deletion) has to select cases from the balance factor of the
// heavy child instead.
func (ins *insertion[K]) imbalanceCase(n *node[K], balance int) Case {
	switch {
	case balance > 1:
		if c := cmp.Compare(ins.key, n.left.key); c < 0 {
			return LeftLeft
		} else if c > 0 {
			return LeftRight
		}
	case balance < -1:
		if c := cmp.Compare(ins.key, n.right.key); c > 0 {
			return RightRight
		} else if c < 0 {
			return RightLeft
		}
	}
	return NoCase
}
