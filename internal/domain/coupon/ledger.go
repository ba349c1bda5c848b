package coupon

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// UsageLedger is the only code path that consumes coupon redemptions. It is
// built from transaction-scoped ports, so everything it checks and writes
// commits or rolls back together with the order it pays for.
type UsageLedger struct {
	coupons  Repository
	counters Counters
	history  OrderHistory
	now      func() time.Time
}

// NewUsageLedger creates a ledger over transaction-scoped ports.
func NewUsageLedger(coupons Repository, counters Counters, history OrderHistory, now func() time.Time) *UsageLedger {
	if now == nil {
		now = time.Now
	}
	return &UsageLedger{coupons: coupons, counters: counters, history: history, now: now}
}

// Redeem consumes one use of code for userID and returns the coupon as it was
// before the increment.
//
// The per-user rules are checked under a (code, user) lock so two checkouts by
// the same user cannot both observe a count below the limit. The global limit
// is enforced by the conditional increment itself. Eligibility failures are
// returned as *RedemptionError.
func (l *UsageLedger) Redeem(ctx context.Context, code, userID string) (*Coupon, error) {
	code = NormalizeCode(code)
	if err := l.counters.LockRedeemer(ctx, code, userID); err != nil {
		return nil, errors.Wrap(err, "lock redeemer")
	}

	c, err := l.coupons.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &RedemptionError{Code: code, Err: ErrNotFound}
		}
		return nil, errors.Wrap(err, "reload coupon")
	}
	if !c.Active {
		return nil, &RedemptionError{Code: code, Err: ErrInactive}
	}
	if c.ExpiredAt(l.now()) {
		return nil, &RedemptionError{Code: code, Err: ErrExpired}
	}
	if err := checkHistory(ctx, l.history, c, userID); err != nil {
		if Reason(err) != "" {
			return nil, &RedemptionError{Code: code, Err: err}
		}
		return nil, err
	}

	if err := l.counters.Increment(ctx, code); err != nil {
		switch {
		case errors.Is(err, ErrUsageLimitReached):
			return nil, &RedemptionError{Code: code, Err: ErrUsageLimitReached}
		case errors.Is(err, ErrNotFound):
			return nil, &RedemptionError{Code: code, Err: ErrNotFound}
		default:
			return nil, errors.Wrap(err, "increment usage")
		}
	}
	return c, nil
}
