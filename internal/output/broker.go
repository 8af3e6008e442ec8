// Package output provides the two publish points consumed by console
// front ends: the Result channel for per-command output fragments and the
// Text channel for free-form diagnostic lines. Both support zero or more
// subscribers.
package output

import (
	"sync"

	"github.com/google/uuid"
)

// Subscriber receives one complete line or fragment per call.
type Subscriber func(line string)

// SubscriptionID identifies a subscriber for later removal.
type SubscriptionID string

type subscription struct {
	id SubscriptionID
	fn Subscriber
}

// Broker fans emitted lines out to subscribers. Delivery order follows
// subscription order.
type Broker struct {
	mu      sync.RWMutex
	text    []subscription
	results []subscription
}

// NewBroker creates a broker with no subscribers.
func NewBroker() *Broker {
	return &Broker{}
}

// SubscribeText registers a subscriber on the Text channel and returns its
// subscription ID.
func (b *Broker) SubscribeText(fn Subscriber) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := SubscriptionID(uuid.NewString())
	b.text = append(b.text, subscription{id: id, fn: fn})
	return id
}

// SubscribeResult registers a subscriber on the Result channel and returns
// its subscription ID.
func (b *Broker) SubscribeResult(fn Subscriber) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := SubscriptionID(uuid.NewString())
	b.results = append(b.results, subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes a subscriber from whichever channel it is registered
// on. Unknown IDs are ignored.
func (b *Broker) Unsubscribe(id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = remove(b.text, id)
	b.results = remove(b.results, id)
}

func remove(subs []subscription, id SubscriptionID) []subscription {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}

// Text publishes a free-form diagnostic or log line. Empty lines are
// suppressed.
func (b *Broker) Text(line string) {
	if line == "" {
		return
	}
	b.mu.RLock()
	subs := make([]subscription, len(b.text))
	copy(subs, b.text)
	b.mu.RUnlock()
	for _, s := range subs {
		s.fn(line)
	}
}

// Result publishes one per-command output fragment. A single command may
// produce zero, one, or several fragments; delimiting command boundaries is
// the subscriber's concern.
func (b *Broker) Result(fragment string) {
	b.mu.RLock()
	subs := make([]subscription, len(b.results))
	copy(subs, b.results)
	b.mu.RUnlock()
	for _, s := range subs {
		s.fn(fragment)
	}
}
