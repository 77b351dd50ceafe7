// Package admin is the back-office service: catalog, coupon, order, user
// and homepage content management. Every operation requires the admin
// role.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/lofr-in/storefront/internal/api"
	"github.com/lofr-in/storefront/internal/models"
	"github.com/lofr-in/storefront/internal/session"
)

// ErrForbidden is returned when the session user is not an admin.
var ErrForbidden = errors.New("admin role required")

// Service wraps the admin endpoints of the API client behind a role
// check.
type Service struct {
	client   *api.Client
	sessions *session.Store
}

// NewService creates an admin service.
func NewService(client *api.Client, sessions *session.Store) *Service {
	return &Service{client: client, sessions: sessions}
}

func (s *Service) guard() error {
	if !s.sessions.LoggedIn() {
		return session.ErrNotLoggedIn
	}
	if !s.sessions.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// --- Products ---

func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.client.ListProducts(ctx)
}

func (s *Service) AddProduct(ctx context.Context, p models.Product) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.AddProduct(ctx, p)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, p models.Product) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.UpdateProduct(ctx, id, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.DeleteProduct(ctx, id)
}

// --- Categories ---

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.client.ListCategories(ctx)
}

func (s *Service) AddCategory(ctx context.Context, c models.Category) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.AddCategory(ctx, c)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, c models.Category) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.UpdateCategory(ctx, id, c)
}

// --- Coupons ---

func (s *Service) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.client.ListCoupons(ctx)
}

func (s *Service) AddCoupon(ctx context.Context, c models.Coupon) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := validateCoupon(c); err != nil {
		return err
	}
	return s.client.AddCoupon(ctx, c)
}

func (s *Service) UpdateCoupon(ctx context.Context, id string, c models.Coupon) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := validateCoupon(c); err != nil {
		return err
	}
	return s.client.UpdateCoupon(ctx, id, c)
}

func (s *Service) DeleteCoupon(ctx context.Context, id string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.DeleteCoupon(ctx, id)
}

// validateCoupon rejects drafts the backend would store but never honor.
func validateCoupon(c models.Coupon) error {
	if c.Code == "" {
		return errors.New("coupon code is required")
	}
	if c.DiscountType != models.DiscountPercentage && c.DiscountType != models.DiscountFixed {
		return fmt.Errorf("unknown discount type %q", c.DiscountType)
	}
	if c.DiscountValue <= 0 {
		return errors.New("discount value must be positive")
	}
	if c.DiscountType == models.DiscountPercentage && c.DiscountValue > 100 {
		return errors.New("percentage discount cannot exceed 100")
	}
	if c.MinimumPurchase < 0 {
		return errors.New("minimum purchase cannot be negative")
	}
	return nil
}

// --- Orders ---

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.client.ListOrders(ctx)
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.UpdateOrder(ctx, id, map[string]any{"status": status})
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.DeleteOrder(ctx, id)
}

// --- Users ---

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.client.ListUsers(ctx)
}

// --- Homepage content ---

func (s *Service) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.client.ListAnnouncements(ctx)
}

func (s *Service) AddAnnouncement(ctx context.Context, a models.Announcement) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.AddAnnouncement(ctx, a)
}

func (s *Service) UpdateAnnouncement(ctx context.Context, id string, a models.Announcement) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.UpdateAnnouncement(ctx, id, a)
}

func (s *Service) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.DeleteAnnouncement(ctx, id)
}

func (s *Service) ListCarousel(ctx context.Context) ([]models.CarouselSlide, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.client.ListCarousel(ctx)
}

func (s *Service) AddCarouselSlide(ctx context.Context, slide models.CarouselSlide) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.AddCarouselSlide(ctx, slide)
}

func (s *Service) DeleteCarouselSlide(ctx context.Context, id string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.DeleteCarouselSlide(ctx, id)
}

// --- Sales ---

func (s *Service) SalesReport(ctx context.Context) (*api.SalesReport, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.client.GetSalesReport(ctx)
}
