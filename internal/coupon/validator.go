// Package coupon implements the checkout coupon apply flow: remote
// validation plus local discount computation and minimum-purchase gating.
package coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lofr-in/storefront/internal/api"
	"github.com/lofr-in/storefront/internal/models"
	"github.com/lofr-in/storefront/internal/pricing"
)

var (
	ErrEmptyCode     = errors.New("enter a coupon code")
	ErrInvalidCoupon = errors.New("invalid or expired coupon")
)

// backendValidator is the slice of the API client the validator needs.
type backendValidator interface {
	ValidateCoupon(ctx context.Context, code string, subtotal float64) (*api.ValidateCouponResponse, error)
}

// Applied is the outcome of a successful apply. A coupon whose minimum
// purchase exceeds the subtotal stays applied with a zero discount so the
// shortfall can be shown to the user.
type Applied struct {
	Coupon       models.Coupon
	Discount     float64
	BelowMinimum bool
}

// Validator tracks the single coupon applied to the current checkout
// session. Applying a new code replaces the previous one wholesale.
type Validator struct {
	backend backendValidator

	mu      sync.Mutex
	applied *Applied
}

// NewValidator creates a validator backed by the remote validation
// endpoint.
func NewValidator(backend backendValidator) *Validator {
	return &Validator{backend: backend}
}

// Apply validates a code against the current subtotal. On any failure the
// previously applied coupon and discount are cleared.
func (v *Validator) Apply(ctx context.Context, code string, subtotal float64) (*Applied, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	res, err := v.backend.ValidateCoupon(ctx, code, subtotal)
	if err != nil {
		v.Clear()
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return nil, fmt.Errorf("%s: %w", apiErr.Message, ErrInvalidCoupon)
		}
		return nil, fmt.Errorf("coupon validation failed: %w", err)
	}

	if !res.Success || res.Coupon == nil {
		v.Clear()
		return nil, ErrInvalidCoupon
	}

	applied := &Applied{Coupon: *res.Coupon}

	if subtotal < res.Coupon.MinimumPurchase {
		applied.BelowMinimum = true
	} else {
		applied.Discount = res.DiscountAmount
		if applied.Discount == 0 {
			applied.Discount = pricing.Discount(res.Coupon, subtotal)
		}
	}

	v.mu.Lock()
	v.applied = applied
	v.mu.Unlock()

	return applied, nil
}

// Applied returns the currently applied coupon, or nil.
func (v *Validator) Applied() *Applied {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.applied
}

// Clear drops any applied coupon and its discount.
func (v *Validator) Clear() {
	v.mu.Lock()
	v.applied = nil
	v.mu.Unlock()
}
