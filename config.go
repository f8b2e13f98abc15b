package avl

import "cmp"

// Config configures an AVL tree.
//
// The zero value is a valid configuration.
type Config[K cmp.Ordered] struct {
	// Observer, if set, receives the events of every insertion into the tree.
	Observer Observer[K]
}
