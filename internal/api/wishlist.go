package api

import (
	"context"
	"net/http"

	"github.com/lofr-in/storefront/internal/models"
)

// wishlistResponse tolerates both shapes the backend uses: a wrapped
// wishlist document and a bare product list.
type wishlistResponse struct {
	Wishlist *struct {
		Products []models.Product `json:"products"`
	} `json:"wishlist"`
	Products []models.Product `json:"products"`
}

// GetWishlist returns the products saved by the current user.
func (c *Client) GetWishlist(ctx context.Context) ([]models.Product, error) {
	var res wishlistResponse
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, &res); err != nil {
		return nil, err
	}
	if res.Wishlist != nil {
		return res.Wishlist.Products, nil
	}
	return res.Products, nil
}

// AddToWishlist saves a product.
func (c *Client) AddToWishlist(ctx context.Context, productID string) error {
	body := map[string]any{"product_id": productID}
	return c.do(ctx, http.MethodPost, "/wishlist/add", body, nil)
}

// RemoveFromWishlist unsaves a product.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/remove/"+productID, nil, nil)
}

// ClearWishlist removes every saved product.
func (c *Client) ClearWishlist(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/clear", nil, nil)
}
