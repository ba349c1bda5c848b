package handler

import (
	"context"

	"github.com/xenking/kart-checkout/gen/oas"
	"github.com/xenking/kart-checkout/internal/domain/order"
)

// PlaceOrder creates an order from the given items, or from the stored cart
// when orderItems is omitted, redeeming the coupon if one is given.
func (h *Handler) PlaceOrder(ctx context.Context, req *oas.PlaceOrderRequest) (*oas.Order, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.throttle(u); err != nil {
		return nil, err
	}

	res, err := h.Coordinator.PlaceOrder(ctx, placeOrderRequest(u.ID, req))
	if err != nil {
		return nil, err
	}
	return toOrder(res.Order), nil
}

// ListMyOrders returns the caller's orders, newest first.
func (h *Handler) ListMyOrders(ctx context.Context) ([]oas.Order, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	list, err := h.Orders.ListMine(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return toOrders(list), nil
}

// ListAllOrders returns every order.
func (h *Handler) ListAllOrders(ctx context.Context) ([]oas.Order, error) {
	list, err := h.Orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOrders(list), nil
}

// GetOrder returns one order to its owner or an admin.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.Order, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.Orders.Get(ctx, u, params.ID)
	if err != nil {
		return nil, err
	}
	return toOrder(o), nil
}

// UpdateOrderStatus applies an admin status change.
func (h *Handler) UpdateOrderStatus(ctx context.Context, req *oas.StatusRequest, params oas.UpdateOrderStatusParams) (*oas.Order, error) {
	o, err := h.Orders.UpdateStatus(ctx, params.ID, order.Status(req.Status))
	if err != nil {
		return nil, err
	}
	return toOrder(o), nil
}

// RequestExchange lets the owner ask for an exchange while the window is open.
func (h *Handler) RequestExchange(ctx context.Context, params oas.RequestExchangeParams) (*oas.Order, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.Orders.RequestExchange(ctx, u, params.ID)
	if err != nil {
		return nil, err
	}
	return toOrder(o), nil
}
