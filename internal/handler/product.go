package handler

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/kart-checkout/gen/oas"
)

// ListProducts returns the catalog.
func (h *Handler) ListProducts(ctx context.Context) ([]oas.Product, error) {
	list, err := h.Catalog.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	out := make([]oas.Product, len(list))
	for i, p := range list {
		out[i] = toProduct(p)
	}
	return out, nil
}
