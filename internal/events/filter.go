package events

import (
	"sync"

	"github.com/google/uuid"
)

// FilterFunc decides whether a subscriber observes an event.
type FilterFunc func(TaskCreated) bool

// AcceptAll passes every event through unchanged.
func AcceptAll(TaskCreated) bool { return true }

// FilterByOwner returns a FilterFunc narrowing a stream to tasks owned
// by userID. A nil userID accepts every event. Owner ids are compared
// as uuid values, so differing textual representations of the same id
// match. Payloads with no resolvable owner never match a concrete
// filter and never fail it.
func FilterByOwner(userID *uuid.UUID) FilterFunc {
	if userID == nil {
		return AcceptAll
	}
	want := *userID
	return func(evt TaskCreated) bool {
		owner := evt.OwnerID()
		return owner != uuid.Nil && owner == want
	}
}

// FilteredStream derives a stream from a base subscription, yielding
// only the events its filter accepts, in the original order. Rejected
// events are skipped immediately, never buffered. Closing the filtered
// stream closes the underlying subscription.
type FilteredStream struct {
	base   Stream
	accept FilterFunc
	out    chan TaskCreated
	done   chan struct{}
	closer sync.Once
}

var _ Stream = (*FilteredStream)(nil)

// NewFilteredStream wraps base with accept. A nil accept passes every
// event through.
func NewFilteredStream(base Stream, accept FilterFunc) *FilteredStream {
	if accept == nil {
		accept = AcceptAll
	}
	f := &FilteredStream{
		base:   base,
		accept: accept,
		out:    make(chan TaskCreated),
		done:   make(chan struct{}),
	}
	go f.pump()
	return f
}

// C returns the channel of accepted events. It is closed when the
// stream ends.
func (f *FilteredStream) C() <-chan TaskCreated {
	return f.out
}

// Close permanently ends the stream and the underlying subscription.
// Safe to call multiple times; every call returns only after the base
// subscription has been released.
func (f *FilteredStream) Close() {
	f.closer.Do(func() {
		f.base.Close()
		close(f.done)
	})
}

func (f *FilteredStream) pump() {
	defer close(f.out)

	for evt := range f.base.C() {
		if !f.accept(evt) {
			continue
		}
		select {
		case f.out <- evt:
		case <-f.done:
			return
		}
	}
}
