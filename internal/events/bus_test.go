package events

import (
	"sync"
	"testing"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	var a, b int
	bus.Subscribe(CartUpdated, func() { a++ })
	bus.Subscribe(CartUpdated, func() { b++ })

	bus.Publish(CartUpdated)
	bus.Publish(CartUpdated)

	if a != 2 || b != 2 {
		t.Errorf("handler calls = %d/%d, want 2/2", a, b)
	}
}

func TestBus_TopicsAreIndependent(t *testing.T) {
	bus := NewBus()
	var cart, wishlist int
	bus.Subscribe(CartUpdated, func() { cart++ })
	bus.Subscribe(WishlistUpdated, func() { wishlist++ })

	bus.Publish(CartUpdated)

	if cart != 1 {
		t.Errorf("cart handler calls = %d, want 1", cart)
	}
	if wishlist != 0 {
		t.Errorf("wishlist handler calls = %d, want 0", wishlist)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	// Must not panic.
	bus.Publish(CartUpdated)
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()
	var mu sync.Mutex
	count := 0
	bus.Subscribe(CartUpdated, func() {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(CartUpdated)
		}()
	}
	wg.Wait()

	if count != 20 {
		t.Errorf("handler calls = %d, want 20", count)
	}
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	done := make(chan struct{})
	bus.Subscribe(CartUpdated, func() {
		// Subscribing from inside a handler must not deadlock.
		bus.Subscribe(WishlistUpdated, func() {})
		close(done)
	})

	bus.Publish(CartUpdated)
	<-done
}
