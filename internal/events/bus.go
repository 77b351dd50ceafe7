// Package events provides the in-process broadcast bus used for
// cross-component notification. Events carry no payload; listeners
// re-fetch canonical state from the backend.
package events

import "sync"

// Topics published by the storefront services.
const (
	CartUpdated     = "cart.updated"
	WishlistUpdated = "wishlist.updated"
)

// Handler is invoked once per published event on its topic.
type Handler func()

// Bus is a minimal synchronous publish/subscribe bus. Publishing is
// fire-and-forget: handler errors or panics are the handler's problem,
// and handlers must be idempotent.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish invokes every handler subscribed to the topic.
func (b *Bus) Publish(topic string) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[topic]))
	copy(hs, b.handlers[topic])
	b.mu.RUnlock()

	for _, h := range hs {
		h()
	}
}
