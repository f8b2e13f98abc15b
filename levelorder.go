package avl

import (
	"fmt"
	"strings"
)

// EmptyMarker is the level-order rendering of an empty tree.
const EmptyMarker = "Empty"

// LevelOrder returns the keys in breadth-first order, starting at the root.
// It returns nil for an empty tree.
func (t *Tree[K]) LevelOrder() []K {
	if t.IsEmpty() {
		return nil
	}
	keys := make([]K, 0, t.size)
	queue := []*node[K]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		keys = append(keys, n.key)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return keys
}

// LevelOrderString renders LevelOrder as keys joined by " -> ", or EmptyMarker
// for an empty tree. It is meant for human inspection only.
func (t *Tree[K]) LevelOrderString() string {
	keys := t.LevelOrder()
	if keys == nil {
		return EmptyMarker
	}
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprint(&b, k)
	}
	return b.String()
}

// Levels returns the keys grouped by depth: Levels()[0] holds the root key,
// Levels()[1] its children from left to right, and so on.
func (t *Tree[K]) Levels() [][]K {
	if t.IsEmpty() {
		return nil
	}
	var levels [][]K
	level := []*node[K]{t.root}
	for len(level) > 0 {
		keys := make([]K, len(level))
		var next []*node[K]
		for i, n := range level {
			keys[i] = n.key
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		levels = append(levels, keys)
		level = next
	}
	return levels
}
