package events

import (
	"log/slog"
	"sync"
)

// Stream is a live, single-consumer sequence of task-created events.
// C yields events in publication order until the stream is closed;
// Close releases the stream and deregisters it from its source.
type Stream interface {
	C() <-chan TaskCreated
	Close()
}

// Bus is an in-process, topic-keyed publish/subscribe primitive.
// Each subscriber owns an independent unbounded FIFO queue, so Publish
// never blocks on a slow consumer and a payload published once fans out
// to every subscriber registered at that moment.
//
// Bus is safe for concurrent use by multiple goroutines.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]*Subscription
	closed bool
	logger *slog.Logger
}

// NewBus creates a new Bus. If logger is nil, slog.Default is used.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[string][]*Subscription),
		logger: logger.With(slog.String("component", "event_bus")),
	}
}

// Publish hands evt to every subscriber currently registered on topic.
// It returns once the event has been enqueued for each subscriber; it
// does not wait for consumption. Publishing with zero subscribers drops
// the event silently.
func (b *Bus) Publish(topic string, evt TaskCreated) {
	b.mu.RLock()
	subs := make([]*Subscription, len(b.subs[topic]))
	copy(subs, b.subs[topic])
	b.mu.RUnlock()

	if len(subs) == 0 {
		b.logger.Debug("event dropped, no subscribers",
			"topic", topic,
			"event_id", evt.ID)
		return
	}

	for _, sub := range subs {
		sub.enqueue(evt)
	}
}

// Subscribe registers a new subscriber on topic and returns its stream.
// The stream only observes events published after Subscribe returns and
// ends permanently once closed. Subscribing on a closed bus yields an
// already-ended stream.
func (b *Bus) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		bus:   b,
		topic: topic,
		wake:  make(chan struct{}, 1),
		out:   make(chan TaskCreated),
		done:  make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		// End the stream through the closer so a later Close is a no-op.
		// The pump never starts here, so out is closed directly.
		sub.closer.Do(func() {
			sub.ended = true
			close(sub.done)
		})
		close(sub.out)
		return sub
	}
	b.subs[topic] = append(b.subs[topic], sub)
	count := len(b.subs[topic])
	b.mu.Unlock()

	go sub.pump()

	b.logger.Debug("subscriber registered",
		"topic", topic,
		"subscriber_count", count)
	return sub
}

// Close shuts the bus down, draining and ending every live stream.
// Publish and Subscribe calls after Close are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	var all []*Subscription
	for _, subs := range b.subs {
		all = append(all, subs...)
	}
	b.subs = make(map[string][]*Subscription)
	b.mu.Unlock()

	for _, sub := range all {
		sub.close(false)
	}

	b.logger.Debug("event bus closed", "subscriber_count", len(all))
}

// remove deregisters sub so published events no longer reach it.
func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.topic]
	for i, s := range subs {
		if s == sub {
			b.subs[sub.topic] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Subscription is one subscriber's live stream of events. It is
// logically single-consumer: exactly one goroutine should receive from
// C. Events are buffered in an unbounded queue between the publisher
// and the consumer, so a slow consumer delays only itself.
type Subscription struct {
	bus   *Bus
	topic string

	mu     sync.Mutex
	queue  []TaskCreated
	ended  bool
	wake   chan struct{}
	out    chan TaskCreated
	done   chan struct{}
	closer sync.Once
}

var _ Stream = (*Subscription)(nil)

// C returns the channel of future events. It is closed when the
// subscription ends; buffered events that were not consumed by then are
// discarded.
func (s *Subscription) C() <-chan TaskCreated {
	return s.out
}

// Close permanently ends the stream and deregisters the subscriber from
// the bus. It is safe to call multiple times and safe to call
// concurrently with Publish.
func (s *Subscription) Close() {
	s.close(true)
}

func (s *Subscription) close(deregister bool) {
	s.closer.Do(func() {
		if deregister {
			s.bus.remove(s)
		}

		s.mu.Lock()
		s.ended = true
		s.queue = nil
		s.mu.Unlock()

		close(s.done)
	})
}

// enqueue appends evt to the subscriber's queue and wakes the pump.
func (s *Subscription) enqueue(evt TaskCreated) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, evt)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// pump drains the queue into the out channel in FIFO order, blocking on
// the wake channel while the queue is empty. It owns the out channel
// and closes it on exit.
func (s *Subscription) pump() {
	defer close(s.out)

	for {
		s.mu.Lock()
		batch := s.queue
		s.queue = nil
		s.mu.Unlock()

		for _, evt := range batch {
			select {
			case s.out <- evt:
			case <-s.done:
				return
			}
		}

		if len(batch) == 0 {
			select {
			case <-s.wake:
			case <-s.done:
				return
			}
		}
	}
}
