package cart

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/internal/domain/product"
)

// Aggregator owns cart mutations and live cart valuation.
type Aggregator struct {
	store   Store
	catalog product.Catalog
}

// NewAggregator creates an Aggregator.
func NewAggregator(store Store, catalog product.Catalog) *Aggregator {
	return &Aggregator{store: store, catalog: catalog}
}

// AddItem adds quantity units of productID, accumulating onto an existing line.
// A line never holds more than MaxQuantity units.
func (a *Aggregator) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	if _, err := a.catalog.GetByID(ctx, productID); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return ErrUnknownProduct
		}
		return errors.Wrap(err, "get product")
	}
	if err := a.store.AddItem(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, ErrInvalidQuantity) {
			return ErrInvalidQuantity
		}
		return errors.Wrap(err, "add item")
	}
	return nil
}

// UpdateQuantity replaces the quantity of an existing line. Use RemoveItem
// to drop a line.
func (a *Aggregator) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	if err := a.store.SetQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return ErrItemNotFound
		}
		return errors.Wrap(err, "set quantity")
	}
	return nil
}

// RemoveItem drops productID from the cart. Removing an absent item is a no-op.
func (a *Aggregator) RemoveItem(ctx context.Context, userID, productID string) error {
	if err := a.store.RemoveItem(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "remove item")
	}
	return nil
}

// Clear empties the cart.
func (a *Aggregator) Clear(ctx context.Context, userID string) error {
	if err := a.store.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "clear cart")
	}
	return nil
}

// View returns the cart priced at current catalog prices. Lines whose product
// has left the catalog are excluded.
func (a *Aggregator) View(ctx context.Context, userID string) (*Cart, error) {
	lines, err := a.store.Lines(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	c, missing, err := Price(ctx, a.catalog, userID, lines)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		zctx.From(ctx).Debug("Skipping stale cart lines",
			zap.String("user_id", userID),
			zap.Strings("product_ids", missing),
		)
	}
	return c, nil
}

// Value returns the cart value: the sum of quantity × current price.
func (a *Aggregator) Value(ctx context.Context, userID string) (decimal.Decimal, error) {
	c, err := a.View(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Value, nil
}

// Lines returns the raw stored lines.
func (a *Aggregator) Lines(ctx context.Context, userID string) ([]Line, error) {
	lines, err := a.store.Lines(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	return lines, nil
}
