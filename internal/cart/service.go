// Package cart reads and mutates the user's remote cart, enriching cart
// lines with product detail for pricing and checkout.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lofr-in/storefront/internal/api"
	"github.com/lofr-in/storefront/internal/events"
	"github.com/lofr-in/storefront/internal/models"
	"github.com/lofr-in/storefront/internal/session"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// backend is the slice of the API client the cart service uses.
type backend interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	AddToCart(ctx context.Context, req api.AddToCartRequest) error
	UpdateCartQuantity(ctx context.Context, cartID, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, cartID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}

// Service is the cart state reader and mutator. Every successful mutation
// publishes events.CartUpdated so listeners re-fetch.
type Service struct {
	backend  backend
	products ProductLookup
	sessions *session.Store
	bus      *events.Bus
	logger   *slog.Logger

	mu     sync.Mutex
	cartID string
}

// NewService creates a cart service.
func NewService(backend backend, products ProductLookup, sessions *session.Store, bus *events.Bus, logger *slog.Logger) *Service {
	return &Service{
		backend:  backend,
		products: products,
		sessions: sessions,
		bus:      bus,
		logger:   logger,
	}
}

// Load fetches the cart and enriches each line with product detail.
// A line whose product cannot be fetched keeps its reference with zero
// pricing rather than failing the whole cart.
func (s *Service) Load(ctx context.Context) ([]models.LineItem, error) {
	userID := s.sessions.UserID()
	if userID == "" {
		return nil, session.ErrNotLoggedIn
	}

	cart, err := s.backend.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching cart: %w", err)
	}

	s.mu.Lock()
	s.cartID = cart.ID
	s.mu.Unlock()

	lines := make([]models.LineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		line := models.LineItem{
			Quantity: item.Quantity,
			Size:     item.Size,
		}
		switch {
		case item.Product.Product != nil:
			line.Product = *item.Product.Product
		case item.Product.ID != "":
			p, err := s.products.GetProduct(ctx, item.Product.ID)
			if err != nil {
				s.logger.Warn("cart line enrichment failed",
					"product_id", item.Product.ID,
					"error", err,
				)
				line.Product = models.Product{ID: item.Product.ID}
			} else {
				line.Product = *p
			}
		default:
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// CartID returns the remote cart document ID from the last Load.
func (s *Service) CartID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartID
}

// Add puts a product into the cart.
func (s *Service) Add(ctx context.Context, productID string, quantity int, size string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	userID := s.sessions.UserID()
	if userID == "" {
		return session.ErrNotLoggedIn
	}
	err := s.backend.AddToCart(ctx, api.AddToCartRequest{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
	})
	if err != nil {
		return fmt.Errorf("adding to cart: %w", err)
	}
	s.bus.Publish(events.CartUpdated)
	return nil
}

// UpdateQuantity sets the quantity of one cart line.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := s.backend.UpdateCartQuantity(ctx, s.CartID(), productID, quantity); err != nil {
		return fmt.Errorf("updating quantity: %w", err)
	}
	s.bus.Publish(events.CartUpdated)
	return nil
}

// Remove deletes one product from the cart.
func (s *Service) Remove(ctx context.Context, productID string) error {
	if err := s.backend.RemoveCartItem(ctx, s.CartID(), productID); err != nil {
		return fmt.Errorf("removing item: %w", err)
	}
	s.bus.Publish(events.CartUpdated)
	return nil
}

// Clear empties the remote cart.
func (s *Service) Clear(ctx context.Context) error {
	userID := s.sessions.UserID()
	if userID == "" {
		return session.ErrNotLoggedIn
	}
	if err := s.backend.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	s.bus.Publish(events.CartUpdated)
	return nil
}

// RefreshCount re-fetches the cart and stores the line count in the
// session, the cart badge equivalent. Intended as an events.CartUpdated
// listener; failures only log since listeners are fire-and-forget.
func (s *Service) RefreshCount(ctx context.Context) {
	userID := s.sessions.UserID()
	if userID == "" {
		return
	}
	cart, err := s.backend.GetCart(ctx, userID)
	if err != nil {
		s.logger.Warn("cart count refresh failed", "error", err)
		return
	}
	if err := s.sessions.SetCartCount(len(cart.Items)); err != nil {
		s.logger.Warn("persisting cart count failed", "error", err)
	}
}
