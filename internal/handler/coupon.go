package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-checkout/gen/oas"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
)

// ValidateCoupon previews a coupon against the caller's cart figures. It
// never consumes a redemption.
func (h *Handler) ValidateCoupon(ctx context.Context, req *oas.ValidateCouponRequest) (*oas.CouponQuote, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.throttle(u); err != nil {
		return nil, err
	}

	cartValue := decimal.NewFromFloat(req.CartValue)
	orderTotal := decimal.NewFromFloat(req.OrderTotal)
	c, err := h.Evaluator.Evaluate(ctx, coupon.Request{
		Code:       req.Code,
		UserID:     u.ID,
		CartValue:  cartValue,
		OrderTotal: orderTotal,
	})
	if err != nil {
		return nil, err
	}
	return toQuote(c, coupon.Calculate(c, cartValue, orderTotal)), nil
}

// ListCoupons returns every coupon, newest first.
func (h *Handler) ListCoupons(ctx context.Context) ([]oas.Coupon, error) {
	list, err := h.Coupons.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]oas.Coupon, len(list))
	for i := range list {
		out[i] = toCoupon(&list[i])
	}
	return out, nil
}

// CreateCoupon defines a new coupon.
func (h *Handler) CreateCoupon(ctx context.Context, req *oas.CreateCouponRequest) (*oas.Coupon, error) {
	c, err := h.Coupons.Create(ctx, createCouponInput(req))
	if err != nil {
		return nil, err
	}
	resp := toCoupon(c)
	return &resp, nil
}

// UpdateCoupon applies a partial update.
func (h *Handler) UpdateCoupon(ctx context.Context, req *oas.UpdateCouponRequest, params oas.UpdateCouponParams) (*oas.Coupon, error) {
	c, err := h.Coupons.Update(ctx, params.ID, updateCouponInput(req))
	if err != nil {
		return nil, couponAdminError(err)
	}
	resp := toCoupon(c)
	return &resp, nil
}

// DeleteCoupon removes a coupon.
func (h *Handler) DeleteCoupon(ctx context.Context, params oas.DeleteCouponParams) (*oas.MessageResponse, error) {
	if err := h.Coupons.Delete(ctx, params.ID); err != nil {
		return nil, couponAdminError(err)
	}
	return &oas.MessageResponse{Message: "Coupon removed"}, nil
}

// couponAdminError reports a missing coupon id as 404. Everywhere else an
// unknown code is an eligibility failure.
func couponAdminError(err error) error {
	if errors.Is(err, coupon.ErrNotFound) {
		return apiError(http.StatusNotFound, "NOT_FOUND", "coupon not found")
	}
	return err
}
