package models

// User roles recognized by the client.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a backend user record.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

// WishlistItem is one saved product in a user's wishlist.
type WishlistItem struct {
	ID      string     `json:"_id"`
	Product ProductRef `json:"product_id"`
}
