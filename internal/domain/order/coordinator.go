package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/product"
)

// ItemRequest is a requested product and quantity. Client-supplied prices
// are never used.
type ItemRequest struct {
	ProductID string
	Quantity  int
}

// PlaceOrderRequest holds the input for placing an order.
type PlaceOrderRequest struct {
	UserID string
	// Items lists what to buy. When nil, the user's stored cart is used and
	// cleared once the order commits.
	Items           []ItemRequest
	ShippingAddress Address
	CouponCode      string
	// ClientTotal is the total the client displayed, for diagnostics only.
	ClientTotal *decimal.Decimal
}

// PlaceOrderResult holds the output of a successfully placed order.
type PlaceOrderResult struct {
	Order *Order
	// Quote is nil when no coupon was applied.
	Quote *coupon.Quote
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithTracerProvider traces order placement with tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Coordinator) {
		c.tracer = tp.Tracer("github.com/xenking/kart-checkout/internal/domain/order")
	}
}

// WithMetrics records checkout outcomes on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// Coordinator places orders: it prices the items, re-validates the coupon,
// and redeems it in the same transaction that inserts the order.
type Coordinator struct {
	catalog   product.Catalog
	carts     *cart.Aggregator
	evaluator *coupon.Evaluator
	uow       UnitOfWork
	shipping  ShippingPolicy
	now       func() time.Time
	tracer    trace.Tracer
	metrics   *Metrics
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(
	catalog product.Catalog,
	carts *cart.Aggregator,
	evaluator *coupon.Evaluator,
	uow UnitOfWork,
	shipping ShippingPolicy,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		catalog:   catalog,
		carts:     carts,
		evaluator: evaluator,
		uow:       uow,
		shipping:  shipping,
		now:       time.Now,
		tracer:    noop.NewTracerProvider().Tracer(""),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// PlaceOrder creates a pending order. Either the order is stored and the
// coupon redemption counted, or neither happens.
func (c *Coordinator) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (_ *PlaceOrderResult, rerr error) {
	ctx, span := c.tracer.Start(ctx, "order.PlaceOrder",
		trace.WithAttributes(attribute.Bool("coupon", req.CouponCode != "")),
	)
	defer func() {
		if rerr != nil {
			span.RecordError(rerr)
			span.SetStatus(codes.Error, rerr.Error())
		}
		span.End()
	}()

	if err := req.ShippingAddress.Validate(); err != nil {
		return nil, err
	}

	priced, fromCart, err := c.snapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	cartValue := priced.Value
	shipping := c.shipping.Cost(cartValue)
	orderTotal := cartValue.Add(shipping)

	now := c.now()
	o := &Order{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		Items:           lineItems(priced),
		ShippingAddress: req.ShippingAddress,
		CartValue:       cartValue,
		ShippingCost:    shipping,
		DiscountAmount:  decimal.Zero,
		TotalPrice:      orderTotal.Round(2),
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	code := coupon.NormalizeCode(req.CouponCode)
	if code != "" {
		if _, err := c.evaluator.Evaluate(ctx, coupon.Request{
			Code:       code,
			UserID:     req.UserID,
			CartValue:  cartValue,
			OrderTotal: orderTotal,
		}); err != nil {
			if reason := coupon.Reason(err); reason != "" {
				c.metrics.couponRejected(ctx, reason, "validate")
			}
			return nil, errors.Wrap(err, "validate coupon")
		}
		o.CouponCode = code
	}

	var quote *coupon.Quote
	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		quote = nil
		o.DiscountAmount = decimal.Zero
		o.TotalPrice = orderTotal.Round(2)

		if code != "" {
			ledger := coupon.NewUsageLedger(tx.Coupons(), tx.Counters(), tx.History(), c.now)
			cp, err := ledger.Redeem(ctx, code, req.UserID)
			if err != nil {
				return err
			}
			// The snapshot read under the lock is the one we charge against.
			if err := coupon.CheckCart(cp, cartValue, req.UserID); err != nil {
				return &coupon.RedemptionError{Code: code, Err: err}
			}
			q := coupon.Calculate(cp, cartValue, orderTotal)
			quote = &q
			o.DiscountAmount = q.DiscountAmount
			o.TotalPrice = q.FinalTotal
		}

		if err := tx.Orders().Create(ctx, o); err != nil {
			return errors.Wrap(err, "create order")
		}
		if fromCart {
			if err := tx.Carts().Clear(ctx, req.UserID); err != nil {
				return errors.Wrap(err, "clear cart")
			}
		}
		return nil
	})
	if err != nil {
		if coupon.IsLostRace(err) {
			c.metrics.couponRejected(ctx, coupon.Reason(err), "redeem")
			zctx.From(ctx).Info("Coupon became unavailable at checkout",
				zap.String("code", code),
				zap.String("user_id", req.UserID),
				zap.String("reason", coupon.Reason(err)),
			)
			return nil, err
		}
		return nil, errors.Wrap(err, "place order")
	}

	if req.ClientTotal != nil && !req.ClientTotal.Equal(o.TotalPrice) {
		zctx.From(ctx).Debug("Client total differs from charged total",
			zap.String("order_id", o.ID),
			zap.Stringer("client_total", req.ClientTotal),
			zap.Stringer("total", o.TotalPrice),
		)
	}
	c.metrics.orderPlaced(ctx, o.CouponCode)
	span.SetAttributes(attribute.String("order.id", o.ID))

	return &PlaceOrderResult{Order: o, Quote: quote}, nil
}

// snapshot prices the requested items, or the stored cart when none were
// given, at current catalog prices.
func (c *Coordinator) snapshot(ctx context.Context, req PlaceOrderRequest) (*cart.Cart, bool, error) {
	if req.Items == nil {
		lines, err := c.carts.Lines(ctx, req.UserID)
		if err != nil {
			return nil, false, err
		}
		priced, _, err := cart.Price(ctx, c.catalog, req.UserID, lines)
		if err != nil {
			return nil, false, err
		}
		if priced.Empty() {
			return nil, false, ErrEmptyItems
		}
		return priced, true, nil
	}

	if len(req.Items) == 0 {
		return nil, false, ErrEmptyItems
	}
	lines := make([]cart.Line, 0, len(req.Items))
	seen := make(map[string]int, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 || it.Quantity > cart.MaxQuantity {
			return nil, false, ErrInvalidQuantity
		}
		if i, ok := seen[it.ProductID]; ok {
			if lines[i].Quantity+it.Quantity > cart.MaxQuantity {
				return nil, false, ErrInvalidQuantity
			}
			lines[i].Quantity += it.Quantity
			continue
		}
		seen[it.ProductID] = len(lines)
		lines = append(lines, cart.Line{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	priced, missing, err := cart.Price(ctx, c.catalog, req.UserID, lines)
	if err != nil {
		return nil, false, err
	}
	if len(missing) > 0 {
		return nil, false, &ProductNotFoundError{ProductID: missing[0]}
	}
	return priced, false, nil
}

func lineItems(c *cart.Cart) []LineItem {
	items := make([]LineItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return items
}
