// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// AddCartItem implements addCartItem operation.
//
// Add a product, accumulating onto an existing line.
//
// POST /cart
func (UnimplementedHandler) AddCartItem(ctx context.Context, req *CartItemRequest) (r *Cart, _ error) {
	return r, ht.ErrNotImplemented
}

// ClearCart implements clearCart operation.
//
// Empty the cart.
//
// DELETE /cart
func (UnimplementedHandler) ClearCart(ctx context.Context) (r *Cart, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateCoupon implements createCoupon operation.
//
// Define a coupon.
//
// POST /coupons
func (UnimplementedHandler) CreateCoupon(ctx context.Context, req *CreateCouponRequest) (r *Coupon, _ error) {
	return r, ht.ErrNotImplemented
}

// DeleteCoupon implements deleteCoupon operation.
//
// Remove a coupon.
//
// DELETE /coupons/{id}
func (UnimplementedHandler) DeleteCoupon(ctx context.Context, params DeleteCouponParams) (r *MessageResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetCart implements getCart operation.
//
// View the caller's cart priced at current catalog prices.
//
// GET /cart
func (UnimplementedHandler) GetCart(ctx context.Context) (r *Cart, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// Get one order as its owner or an admin.
//
// GET /orders/{id}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// ListAllOrders implements listAllOrders operation.
//
// List every order.
//
// GET /orders/all/admin
func (UnimplementedHandler) ListAllOrders(ctx context.Context) (r []Order, _ error) {
	return r, ht.ErrNotImplemented
}

// ListCoupons implements listCoupons operation.
//
// List every coupon, newest first.
//
// GET /coupons
func (UnimplementedHandler) ListCoupons(ctx context.Context) (r []Coupon, _ error) {
	return r, ht.ErrNotImplemented
}

// ListMyOrders implements listMyOrders operation.
//
// List the caller's orders, newest first.
//
// GET /orders
func (UnimplementedHandler) ListMyOrders(ctx context.Context) (r []Order, _ error) {
	return r, ht.ErrNotImplemented
}

// ListProducts implements listProducts operation.
//
// List the catalog.
//
// GET /products
func (UnimplementedHandler) ListProducts(ctx context.Context) (r []Product, _ error) {
	return r, ht.ErrNotImplemented
}

// PlaceOrder implements placeOrder operation.
//
// Place an order from the given items or the stored cart.
//
// POST /orders
func (UnimplementedHandler) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// RemoveCartItem implements removeCartItem operation.
//
// Drop a line from the cart.
//
// DELETE /cart/{productId}
func (UnimplementedHandler) RemoveCartItem(ctx context.Context, params RemoveCartItemParams) (r *Cart, _ error) {
	return r, ht.ErrNotImplemented
}

// RequestExchange implements requestExchange operation.
//
// Request an exchange while the window is open.
//
// POST /orders/{id}/exchange
func (UnimplementedHandler) RequestExchange(ctx context.Context, params RequestExchangeParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateCartItem implements updateCartItem operation.
//
// Replace the quantity of a line already in the cart.
//
// PUT /cart/{productId}
func (UnimplementedHandler) UpdateCartItem(ctx context.Context, req *CartQuantityRequest, params UpdateCartItemParams) (r *Cart, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateCoupon implements updateCoupon operation.
//
// Partially update a coupon.
//
// PUT /coupons/{id}
func (UnimplementedHandler) UpdateCoupon(ctx context.Context, req *UpdateCouponRequest, params UpdateCouponParams) (r *Coupon, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrderStatus implements updateOrderStatus operation.
//
// Apply an admin status change.
//
// PUT /orders/{id}/status
func (UnimplementedHandler) UpdateOrderStatus(ctx context.Context, req *StatusRequest, params UpdateOrderStatusParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// ValidateCoupon implements validateCoupon operation.
//
// Preview a coupon against cart figures without consuming it.
//
// POST /coupons/validate
func (UnimplementedHandler) ValidateCoupon(ctx context.Context, req *ValidateCouponRequest) (r *CouponQuote, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
