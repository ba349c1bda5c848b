// Package cart keeps each user's pending line items and prices them against
// the live catalog.
package cart

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-checkout/internal/domain/product"
)

// MaxQuantity caps the quantity of a single cart line.
const MaxQuantity = 10000

var (
	// ErrInvalidQuantity is returned for quantities outside [1, MaxQuantity],
	// including additions that would push a line past MaxQuantity.
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10000")
	// ErrUnknownProduct is returned when adding a product the catalog does not have.
	ErrUnknownProduct = errors.New("product not found")
	// ErrItemNotFound is returned when updating a product that is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
)

// Line is a stored cart entry. A cart holds at most one line per product.
type Line struct {
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

// Store persists cart lines. AddItem must accumulate quantity atomically
// when the product is already present.
type Store interface {
	// AddItem returns ErrInvalidQuantity and leaves the line unchanged when
	// the accumulated quantity would exceed MaxQuantity.
	AddItem(ctx context.Context, userID, productID string, quantity int) error
	// SetQuantity returns ErrItemNotFound when the product is not in the cart.
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Lines(ctx context.Context, userID string) ([]Line, error)
	Clear(ctx context.Context, userID string) error
}

// Item is a cart line priced at the current catalog price.
type Item struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total is UnitPrice × Quantity.
func (i Item) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is a priced view of a user's lines.
type Cart struct {
	UserID string
	Items  []Item
	Value  decimal.Decimal
}

// Empty reports whether the cart has no priced items.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// Price looks up current prices for lines. Products missing from the catalog
// are left out of the result and their ids returned in missing.
func Price(ctx context.Context, catalog product.Catalog, userID string, lines []Line) (c *Cart, missing []string, err error) {
	c = &Cart{UserID: userID, Value: decimal.Zero}
	if len(lines) == 0 {
		return c, nil, nil
	}

	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.ProductID
	}
	found, err := catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, errors.Wrap(err, "get products")
	}
	byID := product.Index(found)

	c.Items = make([]Item, 0, len(lines))
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			missing = append(missing, l.ProductID)
			continue
		}
		it := Item{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  l.Quantity,
		}
		c.Items = append(c.Items, it)
		c.Value = c.Value.Add(it.Total())
	}
	c.Value = c.Value.Round(2)
	return c, missing, nil
}
