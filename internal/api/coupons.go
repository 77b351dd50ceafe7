package api

import (
	"context"
	"net/http"

	"github.com/lofr-in/storefront/internal/models"
)

// ValidateCouponResponse is the body of POST /coupons/validate. The
// backend may omit discountAmount, in which case the client computes it.
type ValidateCouponResponse struct {
	Success        bool           `json:"success"`
	Coupon         *models.Coupon `json:"coupon"`
	DiscountAmount float64        `json:"discountAmount"`
	Message        string         `json:"message"`
}

// ValidateCoupon checks a code against the current subtotal.
func (c *Client) ValidateCoupon(ctx context.Context, code string, subtotal float64) (*ValidateCouponResponse, error) {
	body := map[string]any{
		"code":     code,
		"subtotal": subtotal,
	}
	var res ValidateCouponResponse
	if err := c.do(ctx, http.MethodPost, "/coupons/validate", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type couponsResponse struct {
	Coupons []models.Coupon `json:"coupons"`
}

type couponResponse struct {
	Coupon *models.Coupon `json:"coupon"`
}

// ListCoupons returns all coupons (admin).
func (c *Client) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	var res couponsResponse
	if err := c.do(ctx, http.MethodGet, "/coupons", nil, &res); err != nil {
		return nil, err
	}
	return res.Coupons, nil
}

// GetCoupon fetches one coupon by ID (admin).
func (c *Client) GetCoupon(ctx context.Context, id string) (*models.Coupon, error) {
	var res couponResponse
	if err := c.do(ctx, http.MethodGet, "/coupons/"+id, nil, &res); err != nil {
		return nil, err
	}
	return res.Coupon, nil
}

// AddCoupon creates a coupon (admin).
func (c *Client) AddCoupon(ctx context.Context, coupon models.Coupon) error {
	return c.do(ctx, http.MethodPost, "/coupons/add", coupon, nil)
}

// UpdateCoupon replaces a coupon (admin).
func (c *Client) UpdateCoupon(ctx context.Context, id string, coupon models.Coupon) error {
	return c.do(ctx, http.MethodPut, "/coupons/"+id, coupon, nil)
}

// DeleteCoupon removes a coupon (admin).
func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/coupons/"+id, nil, nil)
}
