// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// AddCartItem implements addCartItem operation.
	//
	// Add a product, accumulating onto an existing line.
	//
	// POST /cart
	AddCartItem(ctx context.Context, req *CartItemRequest) (*Cart, error)
	// ClearCart implements clearCart operation.
	//
	// Empty the cart.
	//
	// DELETE /cart
	ClearCart(ctx context.Context) (*Cart, error)
	// CreateCoupon implements createCoupon operation.
	//
	// Define a coupon.
	//
	// POST /coupons
	CreateCoupon(ctx context.Context, req *CreateCouponRequest) (*Coupon, error)
	// DeleteCoupon implements deleteCoupon operation.
	//
	// Remove a coupon.
	//
	// DELETE /coupons/{id}
	DeleteCoupon(ctx context.Context, params DeleteCouponParams) (*MessageResponse, error)
	// GetCart implements getCart operation.
	//
	// View the caller's cart priced at current catalog prices.
	//
	// GET /cart
	GetCart(ctx context.Context) (*Cart, error)
	// GetOrder implements getOrder operation.
	//
	// Get one order as its owner or an admin.
	//
	// GET /orders/{id}
	GetOrder(ctx context.Context, params GetOrderParams) (*Order, error)
	// ListAllOrders implements listAllOrders operation.
	//
	// List every order.
	//
	// GET /orders/all/admin
	ListAllOrders(ctx context.Context) ([]Order, error)
	// ListCoupons implements listCoupons operation.
	//
	// List every coupon, newest first.
	//
	// GET /coupons
	ListCoupons(ctx context.Context) ([]Coupon, error)
	// ListMyOrders implements listMyOrders operation.
	//
	// List the caller's orders, newest first.
	//
	// GET /orders
	ListMyOrders(ctx context.Context) ([]Order, error)
	// ListProducts implements listProducts operation.
	//
	// List the catalog.
	//
	// GET /products
	ListProducts(ctx context.Context) ([]Product, error)
	// PlaceOrder implements placeOrder operation.
	//
	// Place an order from the given items or the stored cart.
	//
	// POST /orders
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*Order, error)
	// RemoveCartItem implements removeCartItem operation.
	//
	// Drop a line from the cart.
	//
	// DELETE /cart/{productId}
	RemoveCartItem(ctx context.Context, params RemoveCartItemParams) (*Cart, error)
	// RequestExchange implements requestExchange operation.
	//
	// Request an exchange while the window is open.
	//
	// POST /orders/{id}/exchange
	RequestExchange(ctx context.Context, params RequestExchangeParams) (*Order, error)
	// UpdateCartItem implements updateCartItem operation.
	//
	// Replace the quantity of a line already in the cart.
	//
	// PUT /cart/{productId}
	UpdateCartItem(ctx context.Context, req *CartQuantityRequest, params UpdateCartItemParams) (*Cart, error)
	// UpdateCoupon implements updateCoupon operation.
	//
	// Partially update a coupon.
	//
	// PUT /coupons/{id}
	UpdateCoupon(ctx context.Context, req *UpdateCouponRequest, params UpdateCouponParams) (*Coupon, error)
	// UpdateOrderStatus implements updateOrderStatus operation.
	//
	// Apply an admin status change.
	//
	// PUT /orders/{id}/status
	UpdateOrderStatus(ctx context.Context, req *StatusRequest, params UpdateOrderStatusParams) (*Order, error)
	// ValidateCoupon implements validateCoupon operation.
	//
	// Preview a coupon against cart figures without consuming it.
	//
	// POST /coupons/validate
	ValidateCoupon(ctx context.Context, req *ValidateCouponRequest) (*CouponQuote, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
