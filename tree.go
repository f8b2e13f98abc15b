package avl

import "cmp"

// Tree is a height-balanced binary search tree holding a set of unique keys.
//
// The zero value is not usable, create trees with New or NewTree.
type Tree[K cmp.Ordered] struct {
	cfg  Config[K]
	root *node[K]
	size int // number of nodes
}

// New creates an empty tree with configuration cfg.
func New[K cmp.Ordered](cfg Config[K]) *Tree[K] {
	return &Tree[K]{cfg: cfg}
}

// NewTree creates an empty tree with a default configuration.
func NewTree[K cmp.Ordered]() *Tree[K] {
	return New(Config[K]{})
}

// Config returns a copy of the tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// Insert adds key to the tree, keeping it balanced. Inserting a key which is
// already present leaves the tree unchanged.
//
// Events are reported to the observer of the tree configuration, if any.
func (t *Tree[K]) Insert(key K) {
	t.InsertObserved(key, t.cfg.Observer)
}

// InsertObserved is like Insert, but reports the events of this insertion to
// obs instead of the configured observer. obs may be nil.
func (t *Tree[K]) InsertObserved(key K, obs Observer[K]) {
	ins := insertion[K]{key: key, obs: obs}
	t.root = ins.insert(t.root)
	if ins.created {
		t.size++
	}
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	if t == nil {
		return false
	}
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the tree height, where 0 means empty and 1 means a single key.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}
