package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/avl"
)

// Options tunes Run. The zero value prints the step trace only.
type Options struct {
	// Observer additionally receives every insertion event.
	Observer avl.Observer[int]
	// Final, if set, renders the tree after the last insertion.
	Final func(w io.Writer, tree *avl.Tree[int]) error
}

// Run inserts the keys of s one by one into a new tree and writes a trace to
// w: for every key the balance factors examined on the way up, the rotations
// applied, the tree in level order and whether it is balanced.
//
// Run returns the final tree. It fails if writing to w fails or if any
// insertion leaves the tree in violation of its invariants.
func Run(w io.Writer, s Scenario, opts *Options) (*avl.Tree[int], error) {
	if opts == nil {
		opts = &Options{}
	}
	var rec avl.Recorder[int]
	observe := rec.Observe
	if opts.Observer != nil {
		observe = func(e avl.Event[int]) {
			rec.Observe(e)
			opts.Observer(e)
		}
	}
	tree := avl.NewTree[int]()
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== %s ===\n", s.Name)
	for _, key := range s.Keys {
		rec.Reset()
		tree.InsertObserved(key, observe)
		fmt.Fprintf(&b, "\nInserting %d:\n", key)
		for _, step := range rec.Steps() {
			b.WriteString(step)
			b.WriteByte('\n')
		}
		balanced := tree.IsBalanced()
		fmt.Fprintf(&b, "Tree: %s\n", tree.LevelOrderString())
		fmt.Fprintf(&b, "Is balanced: %t\n", balanced)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return tree, err
		}
		b.Reset()
		if err := tree.Check(); err != nil {
			tracer().Errorf("scenario %q, key %d: %v", s.Name, key, err)
			return tree, err
		}
	}
	if opts.Final != nil {
		if err := opts.Final(w, tree); err != nil {
			return tree, err
		}
	}
	return tree, nil
}

// Stats counts the rotations of one or more scenarios by imbalance case.
type Stats struct {
	Inserted   int
	Duplicates int
	Rotations  map[avl.Case]int
}

// Tally consumes events until events is closed.
func Tally(events <-chan avl.Event[int]) Stats {
	stats := Stats{Rotations: make(map[avl.Case]int)}
	for e := range events {
		switch e.Kind {
		case avl.KindInserted:
			stats.Inserted++
		case avl.KindDuplicate:
			stats.Duplicates++
		case avl.KindRotation:
			stats.Rotations[e.Case]++
		}
	}
	return stats
}

func (s Stats) String() string {
	return fmt.Sprintf("inserted: %d, duplicates: %d, rotations: LL=%d LR=%d RR=%d RL=%d",
		s.Inserted, s.Duplicates,
		s.Rotations[avl.LeftLeft], s.Rotations[avl.LeftRight],
		s.Rotations[avl.RightRight], s.Rotations[avl.RightLeft])
}
