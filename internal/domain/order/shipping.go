package order

import "github.com/shopspring/decimal"

// ShippingPolicy prices delivery from the merchandise value.
type ShippingPolicy struct {
	// FreeAbove is the cart value strictly above which shipping is free.
	FreeAbove decimal.Decimal
	Flat      decimal.Decimal
}

// DefaultShipping is free above 999 and 100 otherwise.
func DefaultShipping() ShippingPolicy {
	return ShippingPolicy{
		FreeAbove: decimal.NewFromInt(999),
		Flat:      decimal.NewFromInt(100),
	}
}

// Cost returns the shipping charge for cartValue.
func (p ShippingPolicy) Cost(cartValue decimal.Decimal) decimal.Decimal {
	if cartValue.GreaterThan(p.FreeAbove) {
		return decimal.Zero
	}
	return p.Flat
}
