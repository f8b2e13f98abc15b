package avl

import "errors"

var (
	// ErrUnordered signals a violation of the search tree order or a duplicate key.
	ErrUnordered = errors.New("avl: keys out of order")
	// ErrHeightMismatch signals a cached node height which does not match its subtrees.
	ErrHeightMismatch = errors.New("avl: height mismatch")
	// ErrUnbalanced signals a node with a balance factor outside of [-1, 1].
	ErrUnbalanced = errors.New("avl: tree not balanced")
	// ErrCountMismatch signals that the node count of a tree has drifted.
	ErrCountMismatch = errors.New("avl: node count mismatch")
)
