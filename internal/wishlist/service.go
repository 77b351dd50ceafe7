// Package wishlist keeps the user's saved-product ID set in sync with the
// backend.
package wishlist

import (
	"context"
	"fmt"
	"sync"

	"github.com/lofr-in/storefront/internal/events"
	"github.com/lofr-in/storefront/internal/models"
)

type backend interface {
	GetWishlist(ctx context.Context) ([]models.Product, error)
	AddToWishlist(ctx context.Context, productID string) error
	RemoveFromWishlist(ctx context.Context, productID string) error
	ClearWishlist(ctx context.Context) error
}

// Service mirrors the remote wishlist and exposes membership checks.
// Mutations publish events.WishlistUpdated.
type Service struct {
	backend backend
	bus     *events.Bus

	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewService creates a wishlist service.
func NewService(backend backend, bus *events.Bus) *Service {
	return &Service{
		backend: backend,
		bus:     bus,
		ids:     make(map[string]struct{}),
	}
}

// Load fetches the wishlist and rebuilds the local ID set.
func (s *Service) Load(ctx context.Context) ([]models.Product, error) {
	products, err := s.backend.GetWishlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching wishlist: %w", err)
	}

	ids := make(map[string]struct{}, len(products))
	for _, p := range products {
		ids[p.ID] = struct{}{}
	}

	s.mu.Lock()
	s.ids = ids
	s.mu.Unlock()

	return products, nil
}

// Contains reports whether the product is in the wishlist as of the last
// sync.
func (s *Service) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[productID]
	return ok
}

// Count returns the number of saved products as of the last sync.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Add saves a product.
func (s *Service) Add(ctx context.Context, productID string) error {
	if err := s.backend.AddToWishlist(ctx, productID); err != nil {
		return fmt.Errorf("adding to wishlist: %w", err)
	}
	s.mu.Lock()
	s.ids[productID] = struct{}{}
	s.mu.Unlock()
	s.bus.Publish(events.WishlistUpdated)
	return nil
}

// Remove unsaves a product.
func (s *Service) Remove(ctx context.Context, productID string) error {
	if err := s.backend.RemoveFromWishlist(ctx, productID); err != nil {
		return fmt.Errorf("removing from wishlist: %w", err)
	}
	s.mu.Lock()
	delete(s.ids, productID)
	s.mu.Unlock()
	s.bus.Publish(events.WishlistUpdated)
	return nil
}

// Clear unsaves everything.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.backend.ClearWishlist(ctx); err != nil {
		return fmt.Errorf("clearing wishlist: %w", err)
	}
	s.mu.Lock()
	s.ids = make(map[string]struct{})
	s.mu.Unlock()
	s.bus.Publish(events.WishlistUpdated)
	return nil
}
