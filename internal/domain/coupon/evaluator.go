package coupon

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Request is the input to Evaluate.
type Request struct {
	Code       string
	UserID     string
	CartValue  decimal.Decimal
	OrderTotal decimal.Decimal
}

// Evaluator checks whether a coupon may be applied to a cart. It only reads:
// calling it any number of times never changes a usage counter.
type Evaluator struct {
	coupons Repository
	history OrderHistory
	now     func() time.Time
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(coupons Repository, history OrderHistory) *Evaluator {
	return &Evaluator{coupons: coupons, history: history, now: time.Now}
}

// Evaluate returns the coupon snapshot when every rule passes. Rules run in
// a fixed order and the first failure is returned, so the same state always
// yields the same error.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) (*Coupon, error) {
	code := NormalizeCode(req.Code)
	if code == "" {
		return nil, ErrMissingFields
	}
	if !req.CartValue.IsPositive() || !req.OrderTotal.IsPositive() {
		return nil, ErrNonPositive
	}
	if req.OrderTotal.LessThan(req.CartValue) {
		return nil, ErrTotalBelowCart
	}

	c, err := e.coupons.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "lookup coupon")
	}

	if err := checkState(c, e.now()); err != nil {
		return nil, err
	}
	if err := CheckCart(c, req.CartValue, req.UserID); err != nil {
		return nil, err
	}
	if err := checkHistory(ctx, e.history, c, req.UserID); err != nil {
		return nil, err
	}
	return c, nil
}

// checkState covers the rules that depend only on the coupon record.
func checkState(c *Coupon, now time.Time) error {
	switch {
	case !c.Active:
		return ErrInactive
	case c.ExpiredAt(now):
		return ErrExpired
	case c.Exhausted():
		return ErrUsageLimitReached
	}
	return nil
}

// CheckCart covers the minimum order value and the user restriction. The
// minimum is compared with the merchandise value only, never with shipping.
func CheckCart(c *Coupon, cartValue decimal.Decimal, userID string) error {
	if c.MinOrderValue.IsPositive() && cartValue.LessThan(c.MinOrderValue) {
		return &MinOrderError{Min: c.MinOrderValue}
	}
	if !c.Allows(userID) {
		return ErrUserRestricted
	}
	return nil
}

// checkHistory covers the rules derived from the user's orders.
func checkHistory(ctx context.Context, history OrderHistory, c *Coupon, userID string) error {
	if c.FirstOrderOnly {
		n, err := history.CountOrders(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "count orders")
		}
		if n > 0 {
			return ErrNotFirstOrder
		}
	}

	used, err := history.CountCouponOrders(ctx, userID, c.Code)
	if err != nil {
		return errors.Wrap(err, "count coupon orders")
	}
	if used >= max(c.PerUserLimit, 1) {
		return ErrPerUserLimitReached
	}
	return nil
}
