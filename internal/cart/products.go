package cart

import (
	"context"
	"sync"

	"github.com/lofr-in/storefront/internal/models"
)

// ProductLookup resolves a product ID to full product detail.
type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// CachedProducts wraps a ProductLookup with an in-memory cache so that
// enriching a cart does not re-fetch the same product per line.
type CachedProducts struct {
	backend ProductLookup

	mu    sync.RWMutex
	cache map[string]models.Product
}

// NewCachedProducts creates an empty product cache over the backend.
func NewCachedProducts(backend ProductLookup) *CachedProducts {
	return &CachedProducts{
		backend: backend,
		cache:   make(map[string]models.Product),
	}
}

// GetProduct returns the cached product or fetches and caches it.
func (c *CachedProducts) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	c.mu.RLock()
	if p, ok := c.cache[id]; ok {
		c.mu.RUnlock()
		return &p, nil
	}
	c.mu.RUnlock()

	p, err := c.backend.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[id] = *p
	c.mu.Unlock()
	return p, nil
}

// Invalidate drops one product from the cache, e.g. after an admin edit.
func (c *CachedProducts) Invalidate(id string) {
	c.mu.Lock()
	delete(c.cache, id)
	c.mu.Unlock()
}
