package order

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics counts checkout outcomes. A nil *Metrics records nothing.
type Metrics struct {
	placed   metric.Int64Counter
	redeemed metric.Int64Counter
	rejected metric.Int64Counter
}

// NewMetrics registers the checkout instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("github.com/xenking/kart-checkout/internal/domain/order")

	placed, err := meter.Int64Counter("checkout.orders.placed",
		metric.WithDescription("Orders committed"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "orders placed counter")
	}
	redeemed, err := meter.Int64Counter("checkout.coupons.redeemed",
		metric.WithDescription("Coupon redemptions committed together with an order"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "coupons redeemed counter")
	}
	rejected, err := meter.Int64Counter("checkout.coupons.rejected",
		metric.WithDescription("Coupon rejections during checkout, by reason and stage"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "coupons rejected counter")
	}

	return &Metrics{placed: placed, redeemed: redeemed, rejected: rejected}, nil
}

func (m *Metrics) orderPlaced(ctx context.Context, code string) {
	if m == nil {
		return
	}
	m.placed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("coupon", code != "")))
	if code != "" {
		m.redeemed.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
	}
}

// couponRejected records a rejection. stage is "validate" for the pre-check
// and "redeem" for a lost race.
func (m *Metrics) couponRejected(ctx context.Context, reason, stage string) {
	if m == nil {
		return
	}
	m.rejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
		attribute.String("stage", stage),
	))
}
