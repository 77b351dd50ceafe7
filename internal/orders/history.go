// Package orders exposes the user's order history.
package orders

import (
	"context"
	"fmt"

	"github.com/lofr-in/storefront/internal/models"
	"github.com/lofr-in/storefront/internal/session"
)

type backend interface {
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// History lists and inspects the signed-in user's orders.
type History struct {
	backend  backend
	sessions *session.Store
}

// NewHistory creates an order history service.
func NewHistory(backend backend, sessions *session.Store) *History {
	return &History{backend: backend, sessions: sessions}
}

// List returns the current user's orders.
func (h *History) List(ctx context.Context) ([]models.Order, error) {
	userID := h.sessions.UserID()
	if userID == "" {
		return nil, session.ErrNotLoggedIn
	}
	orders, err := h.backend.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}
	return orders, nil
}

// Get fetches one order by ID.
func (h *History) Get(ctx context.Context, id string) (*models.Order, error) {
	order, err := h.backend.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching order %s: %w", id, err)
	}
	return order, nil
}

// Cancel deletes an order, the storefront's order cancellation.
func (h *History) Cancel(ctx context.Context, id string) error {
	if err := h.backend.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("cancelling order %s: %w", id, err)
	}
	return nil
}
