package coupon

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Quote is the priced outcome of applying a coupon.
type Quote struct {
	CartValue      decimal.Decimal
	OrderTotal     decimal.Decimal
	DiscountAmount decimal.Decimal
	ShippingCost   decimal.Decimal
	FinalTotal     decimal.Decimal
}

// Calculate prices a coupon against a cart. The discount is taken from the
// merchandise value only and never exceeds it; shipping is the difference
// between the order total and the cart value and is never discounted.
func Calculate(c *Coupon, cartValue, orderTotal decimal.Decimal) Quote {
	var amount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		amount = cartValue.Mul(c.DiscountValue).Div(hundred)
	default:
		amount = c.DiscountValue
	}
	amount = floorAtZero(decimal.Min(amount, cartValue)).Round(2)

	shipping := floorAtZero(orderTotal.Sub(cartValue))
	return Quote{
		CartValue:      cartValue,
		OrderTotal:     orderTotal,
		DiscountAmount: amount,
		ShippingCost:   shipping,
		FinalTotal:     cartValue.Sub(amount).Add(shipping).Round(2),
	}
}

func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
