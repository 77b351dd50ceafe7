// Package gateway models the hosted payment flow: the backend opens a
// payment intent, the user authorizes it in the gateway's hosted UI, and
// the signed result comes back for server-side verification.
package gateway

import (
	"context"
	"errors"
)

var (
	// ErrPaymentCancelled covers the user abandoning or the gateway
	// rejecting the hosted checkout. The cart must stay intact.
	ErrPaymentCancelled = errors.New("payment cancelled or failed")
)

// Intent is the gateway order the user is asked to authorize. Amount is
// in minor currency units.
type Intent struct {
	Key      string
	OrderID  string
	Amount   int64
	Currency string
}

// Authorization is the signed confirmation produced by a completed
// gateway payment. It is only trusted after backend verification.
type Authorization struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// Authorizer obtains a signed authorization for an intent, typically by
// walking the user through the gateway's hosted checkout.
type Authorizer interface {
	Authorize(ctx context.Context, intent Intent) (*Authorization, error)
}
