package models

// Discount types accepted by the backend.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is a discount code record. Read-only from the client's
// perspective; fetched fresh on every apply attempt.
type Coupon struct {
	ID              string  `json:"_id"`
	Code            string  `json:"code"`
	Description     string  `json:"description,omitempty"`
	DiscountType    string  `json:"discount_type"`
	DiscountValue   float64 `json:"discount_value"`
	MinimumPurchase float64 `json:"minimum_purchase"`
	StartDate       string  `json:"start_date,omitempty"`
	ExpiryDate      string  `json:"expiry_date,omitempty"`
	UsageLimit      int     `json:"usage_limit,omitempty"`
	IsActive        bool    `json:"is_active"`
}
