package handler

import (
	"context"
	"strings"

	"github.com/xenking/kart-checkout/gen/oas"
)

// GetCart returns the caller's cart priced at current catalog prices, with
// a shipping preview.
func (h *Handler) GetCart(ctx context.Context) (*oas.Cart, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	return h.viewCart(ctx, u.ID)
}

// AddCartItem adds a product, accumulating onto an existing line. Quantity
// defaults to 1.
func (h *Handler) AddCartItem(ctx context.Context, req *oas.CartItemRequest) (*oas.Cart, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	productID := strings.TrimSpace(req.ProductId)
	if productID == "" {
		return nil, badRequest("INVALID_INPUT", "productId is required")
	}

	if err := h.Carts.AddItem(ctx, u.ID, productID, req.Quantity.Or(1)); err != nil {
		return nil, err
	}
	return h.viewCart(ctx, u.ID)
}

// UpdateCartItem replaces the quantity of a line already in the cart.
func (h *Handler) UpdateCartItem(ctx context.Context, req *oas.CartQuantityRequest, params oas.UpdateCartItemParams) (*oas.Cart, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.Carts.UpdateQuantity(ctx, u.ID, params.ProductId, req.Quantity); err != nil {
		return nil, err
	}
	return h.viewCart(ctx, u.ID)
}

// RemoveCartItem drops a line from the cart.
func (h *Handler) RemoveCartItem(ctx context.Context, params oas.RemoveCartItemParams) (*oas.Cart, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.Carts.RemoveItem(ctx, u.ID, params.ProductId); err != nil {
		return nil, err
	}
	return h.viewCart(ctx, u.ID)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(ctx context.Context) (*oas.Cart, error) {
	u, err := requester(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.Carts.Clear(ctx, u.ID); err != nil {
		return nil, err
	}
	return h.viewCart(ctx, u.ID)
}

func (h *Handler) viewCart(ctx context.Context, userID string) (*oas.Cart, error) {
	c, err := h.Carts.View(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCart(c, h.Shipping), nil
}
