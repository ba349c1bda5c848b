package coupon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		coupon       *Coupon
		cartValue    decimal.Decimal
		orderTotal   decimal.Decimal
		wantDiscount decimal.Decimal
		wantShipping decimal.Decimal
		wantFinal    decimal.Decimal
	}{
		{
			name:         "percentage 10% with shipping",
			coupon:       &Coupon{DiscountType: DiscountPercentage, DiscountValue: d("10")},
			cartValue:    d("500"),
			orderTotal:   d("600"),
			wantDiscount: d("50"),
			wantShipping: d("100"),
			wantFinal:    d("550"),
		},
		{
			name:         "percentage above 100 is capped at cart value",
			coupon:       &Coupon{DiscountType: DiscountPercentage, DiscountValue: d("150")},
			cartValue:    d("500"),
			orderTotal:   d("500"),
			wantDiscount: d("500"),
			wantShipping: d("0"),
			wantFinal:    d("0"),
		},
		{
			name:         "capped discount keeps shipping",
			coupon:       &Coupon{DiscountType: DiscountPercentage, DiscountValue: d("150")},
			cartValue:    d("500"),
			orderTotal:   d("600"),
			wantDiscount: d("500"),
			wantShipping: d("100"),
			wantFinal:    d("100"),
		},
		{
			name:         "fixed 300 on 1000 plus 100 shipping",
			coupon:       &Coupon{DiscountType: DiscountFixed, DiscountValue: d("300")},
			cartValue:    d("1000"),
			orderTotal:   d("1100"),
			wantDiscount: d("300"),
			wantShipping: d("100"),
			wantFinal:    d("800"),
		},
		{
			name:         "fixed larger than cart",
			coupon:       &Coupon{DiscountType: DiscountFixed, DiscountValue: d("300")},
			cartValue:    d("250"),
			orderTotal:   d("350"),
			wantDiscount: d("250"),
			wantShipping: d("100"),
			wantFinal:    d("100"),
		},
		{
			name:         "fractional percentage rounds to cents",
			coupon:       &Coupon{DiscountType: DiscountPercentage, DiscountValue: d("15")},
			cartValue:    d("33.33"),
			orderTotal:   d("133.33"),
			wantDiscount: d("5"),
			wantShipping: d("100"),
			wantFinal:    d("128.33"),
		},
		{
			name:         "zero value coupon",
			coupon:       &Coupon{DiscountType: DiscountFixed, DiscountValue: d("0")},
			cartValue:    d("10"),
			orderTotal:   d("110"),
			wantDiscount: d("0"),
			wantShipping: d("100"),
			wantFinal:    d("110"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(tt.coupon, tt.cartValue, tt.orderTotal)

			assert.True(t, tt.wantDiscount.Equal(q.DiscountAmount), "discount: want %s, got %s", tt.wantDiscount, q.DiscountAmount)
			assert.True(t, tt.wantShipping.Equal(q.ShippingCost), "shipping: want %s, got %s", tt.wantShipping, q.ShippingCost)
			assert.True(t, tt.wantFinal.Equal(q.FinalTotal), "final: want %s, got %s", tt.wantFinal, q.FinalTotal)
			assert.True(t, q.DiscountAmount.LessThanOrEqual(tt.cartValue))
		})
	}
}
