package api

import (
	"context"
	"net/http"

	"github.com/lofr-in/storefront/internal/models"
)

type productsResponse struct {
	Products []models.Product `json:"products"`
}

type productResponse struct {
	Product *models.Product `json:"product"`
}

// ListProducts returns the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var res productsResponse
	if err := c.do(ctx, http.MethodGet, "/products", nil, &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

// GetProduct fetches one product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var res productResponse
	if err := c.do(ctx, http.MethodGet, "/products/getproduct/"+id, nil, &res); err != nil {
		return nil, err
	}
	return res.Product, nil
}

// AddProduct creates a product (admin).
func (c *Client) AddProduct(ctx context.Context, product models.Product) error {
	return c.do(ctx, http.MethodPost, "/products/add", product, nil)
}

// UpdateProduct replaces a product (admin).
func (c *Client) UpdateProduct(ctx context.Context, id string, product models.Product) error {
	return c.do(ctx, http.MethodPut, "/products/update/"+id, product, nil)
}

// DeleteProduct removes a product (admin).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/delete/"+id, nil, nil)
}

type categoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

type categoryResponse struct {
	Category *models.Category `json:"category"`
}

// ListCategories returns all product categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var res categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/category/getAllCategories", nil, &res); err != nil {
		return nil, err
	}
	return res.Categories, nil
}

// GetCategory fetches one category by ID.
func (c *Client) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var res categoryResponse
	if err := c.do(ctx, http.MethodGet, "/category/getCategoryById/"+id, nil, &res); err != nil {
		return nil, err
	}
	return res.Category, nil
}

// AddCategory creates a category (admin).
func (c *Client) AddCategory(ctx context.Context, category models.Category) error {
	return c.do(ctx, http.MethodPost, "/category/add", category, nil)
}

// UpdateCategory replaces a category (admin).
func (c *Client) UpdateCategory(ctx context.Context, id string, category models.Category) error {
	return c.do(ctx, http.MethodPut, "/category/update/"+id, category, nil)
}
