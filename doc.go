/*
Package avl implements a height-balanced binary search tree (AVL tree) over
an ordered set of unique keys.

The tree keeps its height within the AVL bound of about 1.44·log2(n+2) at all
times, which makes insertion and lookup O(log n). Keys are any type satisfying
cmp.Ordered; the key type is fixed with the type parameter of the tree.

Insertion is the only mutating operation. Inserting a key which is already
present is a no-op and not an error.

	tree := avl.NewTree[int]()
	for _, k := range []int{1, 2, 3} {
	    tree.Insert(k)
	}
	fmt.Println(tree.LevelOrderString()) // 2 -> 1 -> 3

Clients interested in the rebalancing decisions may attach an Observer, either
for the lifetime of a tree (Config.Observer) or for a single call
(InsertObserved). Observers are called synchronously while the insertion walks
back up the tree.

A tree is not safe for concurrent use. Rotations re-link several nodes one
after the other, so readers must not observe a tree while an insertion is in
progress. Confine a tree to one goroutine or guard every call with a mutex.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
