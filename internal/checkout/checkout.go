// Package checkout implements the two-step checkout flow: collect a
// shipping address, then collect payment and place the order as cash on
// delivery or through the hosted payment gateway.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lofr-in/storefront/internal/api"
	"github.com/lofr-in/storefront/internal/coupon"
	"github.com/lofr-in/storefront/internal/gateway"
	"github.com/lofr-in/storefront/internal/models"
	"github.com/lofr-in/storefront/internal/pricing"
	"github.com/lofr-in/storefront/internal/session"
)

// Step is the checkout state. The flow only ever moves
// StepShipping -> StepPayment; a failed shipping submit stays put.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrWrongStep            = errors.New("operation not available in this step")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
)

// Notifier surfaces user-visible messages, the toast equivalent.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator moves the surrounding UI to another route.
type Navigator interface {
	Navigate(route string)
}

// orderBackend is the slice of the API client checkout submits through.
type orderBackend interface {
	CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error)
	CreateGatewayOrder(ctx context.Context, total float64) (*api.CreateGatewayOrderResponse, error)
	VerifyPayment(ctx context.Context, req api.VerifyPaymentRequest) error
}

// cartService is the slice of the cart service checkout depends on.
// Clear publishes the cart-updated event itself, so checkout never does.
type cartService interface {
	Load(ctx context.Context) ([]models.LineItem, error)
	Clear(ctx context.Context) error
}

// couponValidator tracks the applied coupon for this session.
type couponValidator interface {
	Apply(ctx context.Context, code string, subtotal float64) (*coupon.Applied, error)
	Applied() *coupon.Applied
	Clear()
}

// Checkout orchestrates one checkout session.
type Checkout struct {
	orders     orderBackend
	cart       cartService
	coupons    couponValidator
	authorizer gateway.Authorizer
	sessions   *session.Store
	notify     Notifier
	nav        Navigator
	logger     *slog.Logger

	mu        sync.Mutex
	step      Step
	lines     []models.LineItem
	address   models.ShippingAddress
	payMethod string
}

// New creates a checkout session in the shipping step with the gateway
// preselected as payment method.
func New(orders orderBackend, cart cartService, coupons couponValidator, authorizer gateway.Authorizer, sessions *session.Store, notify Notifier, nav Navigator, logger *slog.Logger) *Checkout {
	return &Checkout{
		orders:     orders,
		cart:       cart,
		coupons:    coupons,
		authorizer: authorizer,
		sessions:   sessions,
		notify:     notify,
		nav:        nav,
		logger:     logger,
		step:       StepShipping,
		payMethod:  models.PaymentGateway,
	}
}

// Load fetches the cart lines this checkout will order.
func (c *Checkout) Load(ctx context.Context) error {
	lines, err := c.cart.Load(ctx)
	if err != nil {
		c.notify.Error("Failed to load cart items")
		return err
	}
	c.mu.Lock()
	c.lines = lines
	c.mu.Unlock()
	return nil
}

// Step returns the current checkout step.
func (c *Checkout) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Lines returns the loaded cart lines.
func (c *Checkout) Lines() []models.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lines
}

// Totals computes the current price breakdown. A coupon applied below its
// minimum purchase contributes no discount.
func (c *Checkout) Totals() pricing.Totals {
	c.mu.Lock()
	lines := c.lines
	c.mu.Unlock()

	subtotal := pricing.Subtotal(lines)
	var discount float64
	if applied := c.coupons.Applied(); applied != nil && !applied.BelowMinimum {
		discount = applied.Discount
	}
	return pricing.Apply(subtotal, discount)
}

// SubmitShipping validates the address and advances to the payment step.
// The first missing required field blocks the transition and is named in
// the error.
func (c *Checkout) SubmitShipping(addr models.ShippingAddress) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepShipping {
		return ErrWrongStep
	}
	if err := addr.Validate(); err != nil {
		c.notify.Error(err.Error())
		return err
	}
	c.address = addr
	c.step = StepPayment
	return nil
}

// SelectPaymentMethod chooses cod or the gateway. Payment step only.
func (c *Checkout) SelectPaymentMethod(method string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepPayment {
		return ErrWrongStep
	}
	if method != models.PaymentCOD && method != models.PaymentGateway {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
	c.payMethod = method
	return nil
}

// ApplyCoupon validates a code against the current subtotal. Payment step
// only. A coupon below its minimum stays applied with a warning so the
// shortfall is visible.
func (c *Checkout) ApplyCoupon(ctx context.Context, code string) (*coupon.Applied, error) {
	if c.Step() != StepPayment {
		return nil, ErrWrongStep
	}

	subtotal := pricing.Subtotal(c.Lines())
	applied, err := c.coupons.Apply(ctx, code, subtotal)
	if err != nil {
		c.notify.Error(err.Error())
		return nil, err
	}

	if applied.BelowMinimum {
		c.notify.Error(fmt.Sprintf(
			"Minimum purchase of ₹%.2f required for this coupon",
			applied.Coupon.MinimumPurchase,
		))
	} else {
		c.notify.Success(fmt.Sprintf(
			"Coupon %q applied! You saved ₹%.2f",
			applied.Coupon.Code, applied.Discount,
		))
	}
	return applied, nil
}

// PlaceOrder submits the assembled order. The cart is cleared, and the
// cart-updated event published, only after the backend confirms order
// creation (COD) or payment verification succeeds (gateway). Any failure
// leaves the cart and checkout state intact for a user-initiated retry.
func (c *Checkout) PlaceOrder(ctx context.Context) error {
	c.mu.Lock()
	if c.step != StepPayment {
		c.mu.Unlock()
		return ErrWrongStep
	}
	if len(c.lines) == 0 {
		c.mu.Unlock()
		c.notify.Error("Your cart is empty")
		return ErrEmptyCart
	}
	draft := c.buildDraftLocked()
	method := c.payMethod
	c.mu.Unlock()

	if method == models.PaymentCOD {
		return c.placeCOD(ctx, draft)
	}
	return c.placeGateway(ctx, draft)
}

// buildDraftLocked assembles the order payload. Caller holds c.mu.
func (c *Checkout) buildDraftLocked() models.OrderDraft {
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Size:      l.Size,
			Quantity:  l.Quantity,
			Image:     l.Product.Image,
		})
	}

	subtotal := pricing.Subtotal(c.lines)
	var discount float64
	var couponID string
	if applied := c.coupons.Applied(); applied != nil {
		couponID = applied.Coupon.ID
		if !applied.BelowMinimum {
			discount = applied.Discount
		}
	}
	totals := pricing.Apply(subtotal, discount)

	return models.OrderDraft{
		UserID:          c.sessions.UserID(),
		OrderNumber:     fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		Items:           items,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		Total:           totals.Total,
		ShippingAddress: c.address,
		CouponCode:      couponID,
		PaymentMethod:   c.payMethod,
	}
}

func (c *Checkout) placeCOD(ctx context.Context, draft models.OrderDraft) error {
	draft.PaymentStatus = models.PaymentStatusPending
	draft.Status = models.OrderStatusConfirmed

	order, err := c.orders.CreateOrder(ctx, draft)
	if err != nil {
		c.notify.Error("Failed to place order")
		return err
	}

	c.notify.Success("Order placed successfully!")
	if order != nil {
		c.logger.Info("order placed", "order_number", draft.OrderNumber, "order_id", order.ID)
	}
	c.finishSuccessfulOrder(ctx)
	return nil
}

func (c *Checkout) placeGateway(ctx context.Context, draft models.OrderDraft) error {
	res, err := c.orders.CreateGatewayOrder(ctx, draft.Total)
	if err != nil {
		c.notify.Error("Payment initialization failed")
		return err
	}
	if !res.Success || res.RazorpayOrder == nil {
		c.notify.Error("Payment initialization failed")
		return errors.New("payment initialization failed")
	}

	intent := gateway.Intent{
		Key:      res.Key,
		OrderID:  res.RazorpayOrder.ID,
		Amount:   res.RazorpayOrder.Amount,
		Currency: res.RazorpayOrder.Currency,
	}

	auth, err := c.authorizer.Authorize(ctx, intent)
	if err != nil {
		c.notify.Error("Payment cancelled or failed. Please try again!")
		return err
	}

	err = c.orders.VerifyPayment(ctx, api.VerifyPaymentRequest{
		RazorpayOrderID:   auth.OrderID,
		RazorpayPaymentID: auth.PaymentID,
		RazorpaySignature: auth.Signature,
		OrderData:         draft,
	})
	if err != nil {
		c.notify.Error("Payment verification failed")
		return fmt.Errorf("verifying payment: %w", err)
	}

	c.notify.Success("Payment successful!")
	c.logger.Info("order paid", "order_number", draft.OrderNumber, "gateway_order_id", auth.OrderID)
	c.finishSuccessfulOrder(ctx)
	return nil
}

// finishSuccessfulOrder clears the remote cart and moves to order
// history. The order is already confirmed at this point, so a failed
// clear is logged but does not fail the checkout.
func (c *Checkout) finishSuccessfulOrder(ctx context.Context) {
	if err := c.cart.Clear(ctx); err != nil {
		c.logger.Warn("clearing cart after order failed", "error", err)
	}
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
	c.coupons.Clear()
	c.nav.Navigate("/order")
}
