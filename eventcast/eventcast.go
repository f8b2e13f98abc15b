/*
Package eventcast broadcasts the insertion events of AVL trees to any number
of subscribers.

A Broadcaster hands out an avl.Observer which publishes every event it is
called with. Subscribers receive the events on channels, in the order they
have been published:

	b := eventcast.New[int](nil)
	events, _ := b.Subscribe(ctx, 64)
	tree := avl.New(avl.Config[int]{Observer: b.Observer()})

Publishing blocks while the channel of any subscriber is full, which in turn
blocks the insertion reporting the event. Subscribers which cannot keep up
should either use a generous capacity or the trees should report to
LossyObserver instead.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package eventcast

import (
	"cmp"
	"context"
	"errors"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

// ErrClosed is returned when subscribing to a closed broadcaster.
var ErrClosed = errors.New("eventcast: broadcaster closed")

// Broadcaster publishes insertion events of key type K. It is safe for
// concurrent use by publishers and subscribers.
type Broadcaster[K cmp.Ordered] struct {
	cast *caster.Caster
}

// New creates a broadcaster. It will be closed when ctx is done; ctx may be nil.
func New[K cmp.Ordered](ctx context.Context) *Broadcaster[K] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Broadcaster[K]{cast: caster.New(ctx)}
}

// Observer returns an observer publishing every event to all subscribers.
// It blocks until every subscriber channel has taken the event.
func (b *Broadcaster[K]) Observer() avl.Observer[K] {
	return func(e avl.Event[K]) {
		if !b.cast.Pub(e) {
			tracer().P("event", e.Kind).Debugf("broadcaster closed, dropped event for %v", e.Key)
		}
	}
}

// LossyObserver returns an observer which never blocks. Events are dropped
// for subscribers whose channels are full.
func (b *Broadcaster[K]) LossyObserver() avl.Observer[K] {
	return func(e avl.Event[K]) {
		b.cast.TryPub(e)
	}
}

// Subscribe registers a new subscriber with a channel buffer of the given
// capacity. The returned channel is closed when ctx is done or the
// broadcaster is closed. ctx may be nil.
func (b *Broadcaster[K]) Subscribe(ctx context.Context, capacity uint) (<-chan avl.Event[K], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	// caster.Sub reports ok even when closed, handing out a closed channel
	select {
	case <-b.cast.Done():
		return nil, ErrClosed
	default:
	}
	sub, _ := b.cast.Sub(ctx, capacity)
	out := make(chan avl.Event[K], capacity)
	go func() {
		// caster unsubscribes and closes sub by itself when ctx is done
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-sub:
				if !ok {
					return
				}
				e, isEvent := m.(avl.Event[K])
				if !isEvent {
					tracer().Errorf("eventcast: unexpected message of type %T", m)
					continue
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Close closes the broadcaster and all subscriber channels. Events published
// afterwards are dropped.
func (b *Broadcaster[K]) Close() {
	b.cast.Close()
}

// Done returns a channel which is closed when the broadcaster is closed.
func (b *Broadcaster[K]) Done() <-chan struct{} {
	return b.cast.Done()
}
