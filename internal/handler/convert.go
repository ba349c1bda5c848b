package handler

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-checkout/gen/oas"
	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
	"github.com/xenking/kart-checkout/internal/domain/product"
)

// money renders a decimal amount rounded to cents.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func nilInt(v *int) oas.NilInt {
	if v == nil {
		return oas.NilInt{Null: true}
	}
	return oas.NewNilInt(*v)
}

func toProduct(p product.Product) oas.Product {
	return oas.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    money(p.Price),
		Category: p.Category,
		Stock:    p.Stock,
	}
}

// toCart prices the cart with a shipping preview. An empty cart ships free.
func toCart(c *cart.Cart, shipping order.ShippingPolicy) *oas.Cart {
	resp := &oas.Cart{
		Items:      make([]oas.CartItem, len(c.Items)),
		CartValue:  money(c.Value),
		OrderTotal: money(c.Value),
	}
	for i, it := range c.Items {
		resp.Items[i] = oas.CartItem{
			ProductId: it.ProductID,
			Name:      it.Name,
			UnitPrice: money(it.UnitPrice),
			Quantity:  it.Quantity,
			LineTotal: money(it.Total()),
		}
	}
	if !c.Empty() {
		cost := shipping.Cost(c.Value)
		resp.ShippingCost = money(cost)
		resp.OrderTotal = money(c.Value.Add(cost))
	}
	return resp
}

func toQuote(c *coupon.Coupon, q coupon.Quote) *oas.CouponQuote {
	return &oas.CouponQuote{
		Code:              c.Code,
		Description:       c.Description,
		DiscountType:      oas.DiscountType(c.DiscountType),
		DiscountValue:     c.DiscountValue.InexactFloat64(),
		DiscountAmount:    money(q.DiscountAmount),
		OriginalCartValue: money(q.CartValue),
		ShippingCost:      money(q.ShippingCost),
		OriginalTotal:     money(q.OrderTotal),
		FinalTotal:        money(q.FinalTotal),
		MinOrderValue:     money(c.MinOrderValue),
		IsFirstOrderOnly:  c.FirstOrderOnly,
		IsActive:          c.Active,
		UsageCount:        c.UsageCount,
		UsageLimit:        nilInt(c.UsageLimit),
		PerUserLimit:      c.PerUserLimit,
	}
}

func toCoupon(c *coupon.Coupon) oas.Coupon {
	resp := oas.Coupon{
		ID:               c.ID,
		Code:             c.Code,
		Description:      c.Description,
		DiscountType:     oas.DiscountType(c.DiscountType),
		DiscountValue:    c.DiscountValue.InexactFloat64(),
		MinOrderValue:    money(c.MinOrderValue),
		ExpiresAt:        oas.NilDateTime{Null: true},
		UsageLimit:       nilInt(c.UsageLimit),
		UsageCount:       c.UsageCount,
		PerUserLimit:     c.PerUserLimit,
		IsActive:         c.Active,
		IsFirstOrderOnly: c.FirstOrderOnly,
		AllowedUsers:     c.AllowedUsers,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.ExpiresAt != nil {
		resp.ExpiresAt = oas.NewNilDateTime(*c.ExpiresAt)
	}
	if resp.AllowedUsers == nil {
		resp.AllowedUsers = []string{}
	}
	return resp
}

func createCouponInput(req *oas.CreateCouponRequest) coupon.CreateInput {
	value := decimal.NewFromFloat(req.DiscountValue)
	in := coupon.CreateInput{
		Code:              req.Code,
		DiscountType:      coupon.DiscountType(req.DiscountType),
		DiscountValue:     &value,
		MinOrderValue:     decimal.Zero,
		FirstOrderOnly:    req.IsFirstOrderOnly.Or(false),
		AllowedUsers:      req.AllowedUsers,
		RestrictedToEmail: req.RestrictedToUserEmail.Or(""),
		Description:       req.Description.Or(""),
	}
	if v, ok := req.MinOrderValue.Get(); ok {
		in.MinOrderValue = decimal.NewFromFloat(v)
	}
	if v, ok := req.ExpiresAt.Get(); ok {
		in.ExpiresAt = &v
	}
	if v, ok := req.UsageLimit.Get(); ok {
		in.UsageLimit = &v
	}
	if v, ok := req.PerUserLimit.Get(); ok {
		in.PerUserLimit = &v
	}
	if v, ok := req.IsActive.Get(); ok {
		in.Active = &v
	}
	return in
}

// updateCouponInput maps a partial update. Null expiresAt removes the expiry
// and null usageLimit lifts the ceiling.
func updateCouponInput(req *oas.UpdateCouponRequest) coupon.UpdateInput {
	var in coupon.UpdateInput
	if v, ok := req.Code.Get(); ok {
		in.Code = &v
	}
	if v, ok := req.Description.Get(); ok {
		in.Description = &v
	}
	if v, ok := req.DiscountType.Get(); ok {
		t := coupon.DiscountType(v)
		in.DiscountType = &t
	}
	if v, ok := req.DiscountValue.Get(); ok {
		d := decimal.NewFromFloat(v)
		in.DiscountValue = &d
	}
	if v, ok := req.MinOrderValue.Get(); ok {
		d := decimal.NewFromFloat(v)
		in.MinOrderValue = &d
	}
	if req.ExpiresAt.IsSet() {
		if req.ExpiresAt.IsNull() {
			in.ClearExpiry = true
		} else {
			at := req.ExpiresAt.Value
			in.ExpiresAt = &at
		}
	}
	if req.UsageLimit.IsSet() {
		limit := req.UsageLimit.Value
		if req.UsageLimit.IsNull() {
			limit = 0
		}
		in.UsageLimit = &limit
	}
	if v, ok := req.PerUserLimit.Get(); ok {
		in.PerUserLimit = &v
	}
	if v, ok := req.IsActive.Get(); ok {
		in.Active = &v
	}
	if v, ok := req.IsFirstOrderOnly.Get(); ok {
		in.FirstOrderOnly = &v
	}
	if req.AllowedUsers != nil {
		users := req.AllowedUsers
		in.AllowedUsers = &users
	}
	if v, ok := req.RestrictedToUserEmail.Get(); ok {
		in.RestrictedToEmail = &v
	}
	in.ResetUsageCount = req.ResetUsageCount.Or(false)
	return in
}

func toAddress(a order.Address) oas.Address {
	resp := oas.Address{
		FullName:   a.FullName,
		Address:    a.Address,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
	if a.Phone != "" {
		resp.Phone = oas.NewOptString(a.Phone)
	}
	return resp
}

// placeOrderRequest maps the request body. Omitted orderItems order the
// stored cart; product falls back to productId.
func placeOrderRequest(userID string, req *oas.PlaceOrderRequest) order.PlaceOrderRequest {
	a := req.ShippingAddress
	out := order.PlaceOrderRequest{
		UserID: userID,
		ShippingAddress: order.Address{
			FullName:   a.FullName,
			Address:    a.Address,
			City:       a.City,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Phone:      a.Phone.Or(""),
		},
		CouponCode: req.CouponCode.Or(""),
	}
	if v, ok := req.TotalPrice.Get(); ok {
		total := decimal.NewFromFloat(v)
		out.ClientTotal = &total
	}
	if req.OrderItems != nil {
		out.Items = make([]order.ItemRequest, len(req.OrderItems))
		for i, it := range req.OrderItems {
			id := it.Product.Or("")
			if id == "" {
				id = it.ProductId.Or("")
			}
			out.Items[i] = order.ItemRequest{ProductID: id, Quantity: it.Quantity}
		}
	}
	return out
}

func toOrder(o *order.Order) *oas.Order {
	resp := &oas.Order{
		ID:              o.ID,
		UserId:          o.UserID,
		OrderItems:      make([]oas.OrderItem, len(o.Items)),
		ShippingAddress: toAddress(o.ShippingAddress),
		CartValue:       money(o.CartValue),
		ShippingPrice:   money(o.ShippingCost),
		DiscountAmount:  money(o.DiscountAmount),
		TotalPrice:      money(o.TotalPrice),
		CouponCode:      oas.NilString{Null: true},
		Status:          oas.OrderStatus(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for i, it := range o.Items {
		resp.OrderItems[i] = oas.OrderItem{
			Product:  it.ProductID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    money(it.UnitPrice),
		}
	}
	if o.CouponCode != "" {
		resp.CouponCode = oas.NewNilString(o.CouponCode)
	}
	return resp
}

func toOrders(list []order.Order) []oas.Order {
	out := make([]oas.Order, len(list))
	for i := range list {
		out[i] = *toOrder(&list[i])
	}
	return out
}
