package list

import (
	"context"

	"github.com/joshuapare/listkit/pkg/collection"
)

// Snapshot is one published collection. Version increases by one on every
// publish. Ctx is cancelled as soon as a newer snapshot is published, so work
// started against a stale collection can stop early.
type Snapshot[T any] struct {
	Collection *collection.Collection[T]
	Version    uint64
	Ctx        context.Context
}

// Bus fans published snapshots out to subscribers such as virtualizers or
// detail panes that need to re-render when the collection changes.
type Bus[T any] struct {
	subscribers []chan Snapshot[T]
	cancel      context.CancelFunc // cancels the current snapshot's context
	closed      bool
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{
		subscribers: make([]chan Snapshot[T], 0),
	}
}

// Subscribe returns a channel that receives every snapshot published after
// the call. The channel holds one pending snapshot; a subscriber that has not
// drained it misses later ones until it does.
func (b *Bus[T]) Subscribe() <-chan Snapshot[T] {
	ch := make(chan Snapshot[T], 1)
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Publish cancels the previous snapshot's context and broadcasts c with a
// fresh one. It never blocks.
func (b *Bus[T]) Publish(c *collection.Collection[T], version uint64) Snapshot[T] {
	if b.cancel != nil {
		b.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	snap := Snapshot[T]{Collection: c, Version: version, Ctx: ctx}
	if b.closed {
		cancel()
		return snap
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- snap:
		default:
			// full: slow subscriber
		}
	}
	return snap
}

// Close cancels the current snapshot and closes every subscriber channel.
// Further publishes reach nobody.
func (b *Bus[T]) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if b.cancel != nil {
		b.cancel()
	}
	for _, ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil
}
