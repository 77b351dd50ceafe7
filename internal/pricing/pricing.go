// Package pricing derives checkout totals from cart line items and an
// optionally applied coupon. Pure functions, no side effects.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/lofr-in/storefront/internal/models"
)

// Totals is the price breakdown shown at checkout. Shipping is always
// free on this storefront but is kept explicit in the breakdown.
type Totals struct {
	Subtotal float64
	Discount float64
	Shipping float64
	Total    float64
}

// Subtotal sums effective unit price times quantity over all lines.
// Lines with a non-positive quantity count as a single unit, matching the
// storefront's defensive rendering.
func Subtotal(lines []models.LineItem) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}
		price := decimal.NewFromFloat(l.UnitPrice())
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}
	f, _ := sum.Float64()
	return f
}

// Discount computes the coupon discount for the given subtotal. It is 0
// when no coupon is applied or the subtotal is below the coupon's minimum
// purchase.
func Discount(coupon *models.Coupon, subtotal float64) float64 {
	if coupon == nil {
		return 0
	}
	sub := decimal.NewFromFloat(subtotal)
	if sub.LessThan(decimal.NewFromFloat(coupon.MinimumPurchase)) {
		return 0
	}

	value := decimal.NewFromFloat(coupon.DiscountValue)
	var d decimal.Decimal
	switch coupon.DiscountType {
	case models.DiscountPercentage:
		d = sub.Mul(value).Div(decimal.NewFromInt(100))
	case models.DiscountFixed:
		d = value
	default:
		return 0
	}
	f, _ := d.Float64()
	return f
}

// Calculate produces the full breakdown. The total never goes below zero
// regardless of the discount; an invalid discount degrades to the
// subtotal rather than failing.
func Calculate(lines []models.LineItem, coupon *models.Coupon) Totals {
	subtotal := Subtotal(lines)
	discount := Discount(coupon, subtotal)
	return withDiscount(subtotal, discount)
}

// Apply builds totals from an already-known subtotal and discount amount,
// e.g. when the backend supplied the discount.
func Apply(subtotal, discount float64) Totals {
	if discount < 0 {
		discount = 0
	}
	return withDiscount(subtotal, discount)
}

func withDiscount(subtotal, discount float64) Totals {
	sub := decimal.NewFromFloat(subtotal)
	disc := decimal.NewFromFloat(discount)

	total := sub.Sub(disc)
	if total.IsNegative() {
		total = decimal.Zero
	}

	t, _ := total.Float64()
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: 0,
		Total:    t,
	}
}
