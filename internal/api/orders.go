package api

import (
	"context"
	"net/http"

	"github.com/lofr-in/storefront/internal/models"
)

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

type orderResponse struct {
	Order *models.Order `json:"order"`
}

// CreateOrder posts a fully assembled order draft.
func (c *Client) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	var res orderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/add", draft, &res); err != nil {
		return nil, err
	}
	return res.Order, nil
}

// ListOrders returns all orders (admin).
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var res ordersResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

// ListOrdersByUser returns one user's order history.
func (c *Client) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var res ordersResponse
	if err := c.do(ctx, http.MethodGet, "/orders?user_id="+userID, nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

// GetOrder fetches one order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var res orderResponse
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, &res); err != nil {
		return nil, err
	}
	return res.Order, nil
}

// UpdateOrder updates order fields such as status (admin).
func (c *Client) UpdateOrder(ctx context.Context, id string, fields map[string]any) error {
	return c.do(ctx, http.MethodPut, "/orders/update/"+id, fields, nil)
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/delete/"+id, nil, nil)
}

// GatewayOrder is the Razorpay order created server-side, with the amount
// in minor currency units.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateGatewayOrderResponse is the body of POST /orders/create-razorpay-order.
type CreateGatewayOrderResponse struct {
	Success       bool          `json:"success"`
	Key           string        `json:"key"`
	RazorpayOrder *GatewayOrder `json:"razorpayOrder"`
}

// CreateGatewayOrder asks the backend to open a payment intent for the
// given total.
func (c *Client) CreateGatewayOrder(ctx context.Context, total float64) (*CreateGatewayOrderResponse, error) {
	body := map[string]any{"total": total}
	var res CreateGatewayOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/create-razorpay-order", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// VerifyPaymentRequest is the signed confirmation posted back to the
// backend after the gateway reports success.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string            `json:"razorpay_order_id"`
	RazorpayPaymentID string            `json:"razorpay_payment_id"`
	RazorpaySignature string            `json:"razorpay_signature"`
	OrderData         models.OrderDraft `json:"orderData"`
}

type verifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerifyPayment submits the gateway signature for server-side
// verification. A response without success=true is an error: the order is
// not placed and the cart must stay intact.
func (c *Client) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) error {
	var res verifyPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/orders/verify", req, &res); err != nil {
		return err
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "payment verification failed"
		}
		return &Error{Status: http.StatusPaymentRequired, Message: msg}
	}
	return nil
}
