// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broadcast

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/vibepoll/vibepoll/models"
)

// eventBuffer is how many undelivered events a subscriber may accumulate
// before it is considered dead and evicted. Transports drain their channel
// continuously, so a full buffer means the connection stopped consuming.
const eventBuffer = 16

// Subscription is one live listener's handle. Events arrive on C in the
// order they were committed. After Close (or eviction) the channel is
// closed and no further events are delivered.
type Subscription struct {
	id       string
	events   chan models.Event
	registry *Registry

	closeOnce sync.Once
}

// C returns the receive side of the subscription.
func (s *Subscription) C() <-chan models.Event {
	return s.events
}

// Close unregisters the subscription. Idempotent and synchronous: once it
// returns, no further events will be queued.
func (s *Subscription) Close() {
	s.registry.remove(s.id)
}

// Registry tracks every live subscriber and fans events out to them.
type Registry struct {
	mu   sync.Mutex
	subs map[string]*Subscription
}

func NewRegistry() *Registry {
	return &Registry{subs: make(map[string]*Subscription)}
}

// Add registers a new subscriber and queues first as its initial event, so
// a fresh subscriber never starts from a stale or empty view.
func (r *Registry) Add(first models.Event) *Subscription {
	sub := &Subscription{
		id:       uuid.NewString(),
		events:   make(chan models.Event, eventBuffer),
		registry: r,
	}
	sub.events <- first

	r.mu.Lock()
	r.subs[sub.id] = sub
	r.mu.Unlock()

	slog.Debug("subscriber added", "subscriber_id", sub.id)
	return sub
}

// Broadcast delivers event to every registered subscriber without blocking.
// A subscriber whose buffer is full gets exactly one failed delivery
// attempt and is evicted; delivery to the others is unaffected. There is
// no retry and no replay.
func (r *Registry) Broadcast(event models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, sub := range r.subs {
		select {
		case sub.events <- event:
		default:
			delete(r.subs, id)
			sub.closeOnce.Do(func() { close(sub.events) })
			slog.Warn("subscriber evicted, buffer full", "subscriber_id", id)
		}
	}
}

// Count returns the number of live subscribers.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// CloseAll unregisters every subscriber. Used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, sub := range r.subs {
		delete(r.subs, id)
		sub.closeOnce.Do(func() { close(sub.events) })
	}
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subs[id]
	if !ok {
		return
	}
	delete(r.subs, id)
	sub.closeOnce.Do(func() { close(sub.events) })
	slog.Debug("subscriber removed", "subscriber_id", id)
}
