package models

// Payment methods accepted at checkout.
const (
	PaymentCOD     = "cod"
	PaymentGateway = "razorpay"
)

// Order and payment statuses used when submitting orders.
const (
	OrderStatusConfirmed = "confirmed"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// OrderItem is one line of a submitted order, denormalized so the order
// record survives later product edits.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// OrderDraft is the payload posted to /api/orders/add. Constructed once by
// the checkout orchestrator and submitted once.
type OrderDraft struct {
	UserID          string          `json:"user_id"`
	OrderNumber     string          `json:"order_number"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Discount        float64         `json:"discount"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status,omitempty"`
	Status          string          `json:"status,omitempty"`
}

// Order is a created order record as returned by the backend.
type Order struct {
	ID              string          `json:"_id"`
	UserID          string          `json:"user_id"`
	OrderNumber     string          `json:"order_number"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Discount        float64         `json:"discount"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"createdAt,omitempty"`
}
