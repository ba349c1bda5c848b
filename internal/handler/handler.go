// Package handler implements the generated checkout API on top of the domain
// services.
package handler

import (
	"context"
	"math"
	"net/http"

	"github.com/xenking/kart-checkout/gen/oas"
	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
	"github.com/xenking/kart-checkout/internal/domain/product"
	"github.com/xenking/kart-checkout/internal/domain/user"
	"github.com/xenking/kart-checkout/pkg/httpmiddleware"
)

// Prefix is the path every API operation is served under.
const Prefix = "/api"

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// Deps are the services behind the API.
type Deps struct {
	Catalog     product.Catalog
	Carts       *cart.Aggregator
	Evaluator   *coupon.Evaluator
	Coupons     *coupon.Service
	Coordinator *order.Coordinator
	Orders      *order.Service
	Shipping    order.ShippingPolicy
	// CheckoutLimit throttles coupon validation and order placement per
	// user. Nil disables it.
	CheckoutLimit *httpmiddleware.Limiter
}

// Handler implements the ogen-generated Handler interface. Every operation
// except the catalog runs with the user set by SecurityHandler.
type Handler struct {
	oas.UnimplementedHandler

	Deps
}

// New creates a Handler.
func New(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

// NewServer creates the generated API server for h under Prefix, reporting
// routing and decoding failures in the API error shape.
func NewServer(h *Handler, sec *SecurityHandler, opts ...oas.ServerOption) (*oas.Server, error) {
	opts = append([]oas.ServerOption{
		oas.WithPathPrefix(Prefix),
		oas.WithErrorHandler(ErrorHandler),
		oas.WithNotFound(NotFound),
		oas.WithMethodNotAllowed(MethodNotAllowed),
	}, opts...)
	return oas.NewServer(h, sec, opts...)
}

// requester returns the user set by SecurityHandler.
func requester(ctx context.Context) (*user.User, error) {
	u, ok := user.FromContext(ctx)
	if !ok {
		return nil, unauthorized("not authorized")
	}
	return u, nil
}

// throttle spends one checkout attempt from u's budget.
func (h *Handler) throttle(u *user.User) error {
	if h.CheckoutLimit == nil {
		return nil
	}
	retryAfter, ok := h.CheckoutLimit.Allow(u.ID)
	if ok {
		return nil
	}
	e := apiError(http.StatusTooManyRequests, "RATE_LIMITED", "too many checkout attempts, try again later")
	e.Response.RetryAfter = oas.NewOptInt(int(math.Ceil(retryAfter.Seconds())))
	return e
}
