package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/xenking/kart-checkout/internal/domain/cart"
)

const (
	addCartItemSQL = `INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		WHERE cart_items.quantity::bigint + EXCLUDED.quantity <= $4`

	setCartQuantitySQL = `UPDATE cart_items SET quantity = $3 WHERE user_id = $1 AND product_id = $2`
	removeCartItemSQL  = `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
	clearCartSQL       = `DELETE FROM cart_items WHERE user_id = $1`
	listCartItemsSQL   = `SELECT product_id, quantity, added_at FROM cart_items
		WHERE user_id = $1 ORDER BY added_at, product_id`
)

var _ cart.Store = (*CartRepository)(nil)

// CartRepository implements cart.Store backed by PostgreSQL.
type CartRepository struct {
	db DBTX
}

// NewCartRepository returns a CartRepository that uses db.
func NewCartRepository(db DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// AddItem inserts a line or adds quantity to the existing one in a single
// statement. The conflict update is skipped when the sum would exceed
// cart.MaxQuantity, which leaves no row affected.
func (r *CartRepository) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity > cart.MaxQuantity {
		return cart.ErrInvalidQuantity
	}
	tag, err := r.db.Exec(ctx, addCartItemSQL, userID, productID, quantity, cart.MaxQuantity)
	if err != nil {
		if code, _ := pgCode(err); code == pgNumericOutOfRange {
			return cart.ErrInvalidQuantity
		}
		return fmt.Errorf("adding %q to cart: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrInvalidQuantity
	}
	return nil
}

// SetQuantity returns cart.ErrItemNotFound when the line does not exist.
func (r *CartRepository) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	tag, err := r.db.Exec(ctx, setCartQuantitySQL, userID, productID, quantity)
	if err != nil {
		if code, _ := pgCode(err); code == pgNumericOutOfRange {
			return cart.ErrInvalidQuantity
		}
		return fmt.Errorf("setting quantity of %q: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	if _, err := r.db.Exec(ctx, removeCartItemSQL, userID, productID); err != nil {
		return fmt.Errorf("removing %q from cart: %w", productID, err)
	}
	return nil
}

// Lines returns the user's lines in the order they were added.
func (r *CartRepository) Lines(ctx context.Context, userID string) ([]cart.Line, error) {
	rows, err := r.db.Query(ctx, listCartItemsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("listing cart: %w", err)
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (cart.Line, error) {
		var l cart.Line
		err := row.Scan(&l.ProductID, &l.Quantity, &l.AddedAt)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing cart: %w", err)
	}
	return lines, nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, clearCartSQL, userID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
