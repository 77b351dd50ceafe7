package models

// Cart is a user's remote cart as returned by GET /api/cart/{userId}.
type Cart struct {
	ID     string     `json:"_id"`
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total,omitempty"`
}

// CartItem is one product+size+quantity entry in a cart. The product
// reference may or may not be populated by the backend.
type CartItem struct {
	Product  ProductRef `json:"product_id"`
	Quantity int        `json:"quantity"`
	Size     string     `json:"size,omitempty"`
}

// LineItem is a cart item enriched with full product detail, the unit the
// pricing calculator and checkout operate on.
type LineItem struct {
	Product  Product
	Quantity int
	Size     string
}

// UnitPrice is the effective per-unit price of the line.
func (l *LineItem) UnitPrice() float64 {
	return l.Product.UnitPrice()
}
