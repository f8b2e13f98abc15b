package avl

import (
	"cmp"
	"fmt"
)

// EventKind classifies the decision points of an insertion.
type EventKind uint8

const (
	// KindInserted signals that a new leaf for the key has been created.
	KindInserted EventKind = iota
	// KindDuplicate signals that the key is already present; the tree is unchanged.
	KindDuplicate
	// KindBalance reports the balance factor of a node on the way back up.
	KindBalance
	// KindRotation reports that an imbalance has been resolved by rotation.
	KindRotation
)

func (k EventKind) String() string {
	switch k {
	case KindInserted:
		return "inserted"
	case KindDuplicate:
		return "duplicate"
	case KindBalance:
		return "balance"
	case KindRotation:
		return "rotation"
	}
	return "<unknown>"
}

// Case names the shape of an imbalance by the directions of the two edges from
// the unbalanced node down towards the inserted key.
type Case uint8

// Imbalance cases.
const (
	NoCase Case = iota
	LeftLeft
	LeftRight
	RightRight
	RightLeft
)

func (c Case) String() string {
	switch c {
	case LeftLeft:
		return "LL"
	case LeftRight:
		return "LR"
	case RightRight:
		return "RR"
	case RightLeft:
		return "RL"
	}
	return "-"
}

// Rotation describes the rotation(s) resolving an imbalance case.
func (c Case) Rotation() string {
	switch c {
	case LeftLeft:
		return "right rotation"
	case LeftRight:
		return "left-right rotation"
	case RightRight:
		return "left rotation"
	case RightLeft:
		return "right-left rotation"
	}
	return "no rotation"
}

// Event is reported to an Observer during insertion.
type Event[K cmp.Ordered] struct {
	Kind    EventKind
	Key     K    // the key being inserted
	At      K    // key of the node the event refers to
	Balance int  // balance factor at At, after recomputing its height
	Case    Case // imbalance case, for KindRotation only
}

func (e Event[K]) String() string {
	switch e.Kind {
	case KindInserted:
		return fmt.Sprintf("Created leaf %v", e.Key)
	case KindDuplicate:
		return fmt.Sprintf("Ignored duplicate %v", e.Key)
	case KindBalance:
		return fmt.Sprintf("Inserted %v, Balance factor at %v: %d", e.Key, e.At, e.Balance)
	case KindRotation:
		return fmt.Sprintf("%s imbalance at %v, %s", e.Case, e.At, e.Case.Rotation())
	}
	return fmt.Sprintf("<unknown event for %v>", e.Key)
}

// Observer receives insertion events. Observers are called synchronously and
// must not access the tree which reports the event.
type Observer[K cmp.Ordered] func(Event[K])

// Recorder collects events. Its zero value is ready to use.
type Recorder[K cmp.Ordered] struct {
	events []Event[K]
}

// Observe appends e. Pass r.Observe wherever an Observer is expected.
func (r *Recorder[K]) Observe(e Event[K]) {
	r.events = append(r.events, e)
}

// Events returns the recorded events in order of occurrence.
func (r *Recorder[K]) Events() []Event[K] {
	return r.events
}

// Steps returns the balance and rotation events in their textual form.
func (r *Recorder[K]) Steps() []string {
	var steps []string
	for _, e := range r.events {
		if e.Kind == KindBalance || e.Kind == KindRotation {
			steps = append(steps, e.String())
		}
	}
	return steps
}

// Rotations returns the imbalance cases in order of occurrence.
func (r *Recorder[K]) Rotations() []Case {
	var cases []Case
	for _, e := range r.events {
		if e.Kind == KindRotation {
			cases = append(cases, e.Case)
		}
	}
	return cases
}

// Reset drops all recorded events.
func (r *Recorder[K]) Reset() {
	r.events = r.events[:0]
}
