package models

import "encoding/json"

// Product represents an apparel product as returned by the backend.
// salePrice, gallery and size are optional in the payload.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	CategoryID  string   `json:"category_id,omitempty"`
	Material    string   `json:"material,omitempty"`
	Color       string   `json:"color,omitempty"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
	Quantity    int      `json:"quantity,omitempty"`
	Image       string   `json:"image,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
	Sizes       []string `json:"size,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UnitPrice is the effective per-unit price: the sale price when the
// backend set one, otherwise the base price.
func (p *Product) UnitPrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}
	return p.Price
}

// ProductRef is a cart/order reference to a product. The backend sends
// either a bare ID string or a populated product object; both decode into
// the same type.
type ProductRef struct {
	ID      string
	Product *Product
}

func (r *ProductRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Product = nil
		return nil
	}

	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	r.ID = p.ID
	r.Product = &p
	return nil
}

func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.Product != nil {
		return json.Marshal(r.Product)
	}
	return json.Marshal(r.ID)
}

// Category represents a product category.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
