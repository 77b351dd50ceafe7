package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lofr-in/storefront/internal/models"
)

type cartResponse struct {
	Cart *models.Cart `json:"cart"`
}

// AddToCartRequest is the payload for POST /cart/add.
type AddToCartRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

// GetCart fetches a user's cart.
func (c *Client) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	var res cartResponse
	if err := c.do(ctx, http.MethodGet, "/cart/"+userID, nil, &res); err != nil {
		return nil, err
	}
	if res.Cart == nil {
		return &models.Cart{UserID: userID}, nil
	}
	return res.Cart, nil
}

// AddToCart adds a product to the user's cart.
func (c *Client) AddToCart(ctx context.Context, req AddToCartRequest) error {
	return c.do(ctx, http.MethodPost, "/cart/add", req, nil)
}

// UpdateCartQuantity sets the quantity of one cart line.
func (c *Client) UpdateCartQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	body := map[string]any{
		"cartId":    cartID,
		"productId": productID,
		"quantity":  quantity,
	}
	return c.do(ctx, http.MethodPut, "/cart/update", body, nil)
}

// RemoveCartItem removes one product from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, cartID, productID string) error {
	body := map[string]any{
		"cartId":    cartID,
		"productId": productID,
	}
	return c.do(ctx, http.MethodDelete, "/cart/remove", body, nil)
}

// ClearCart empties the user's remote cart.
func (c *Client) ClearCart(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/clear/%s", userID), nil, nil)
}
