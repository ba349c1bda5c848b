package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
)

const (
	orderColumns = `id::text, user_id::text, items, shipping_address, cart_value,
		shipping_cost, discount_amount, total_price, COALESCE(coupon_code, ''),
		status, created_at, updated_at`

	createOrderSQL = `INSERT INTO orders (id, user_id, items, shipping_address, cart_value,
		shipping_cost, discount_amount, total_price, coupon_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)`

	getOrderSQL          = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	listOrdersByUserSQL  = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	listOrdersSQL        = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	countOrdersSQL       = `SELECT count(*) FROM orders WHERE user_id = $1`
	countCouponOrdersSQL = `SELECT count(*) FROM orders WHERE user_id = $1 AND coupon_code = $2`

	updateOrderStatusSQL = `UPDATE orders SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`
	orderExistsSQL       = `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`
)

var (
	_ order.Repository    = (*OrderRepository)(nil)
	_ order.Writer        = (*OrderRepository)(nil)
	_ coupon.OrderHistory = (*OrderRepository)(nil)
)

// OrderRepository implements the order ports and coupon.OrderHistory backed
// by PostgreSQL.
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository returns an OrderRepository that uses db.
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order. Items and the shipping address are stored as
// JSONB snapshots.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshaling order items: %w", err)
	}
	addressJSON, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("marshaling shipping address: %w", err)
	}

	_, err = r.db.Exec(ctx, createOrderSQL,
		o.ID, o.UserID, itemsJSON, addressJSON, o.CartValue,
		o.ShippingCost, o.DiscountAmount, o.TotalPrice, o.CouponCode,
		string(o.Status), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating order %q: %w", o.ID, err)
	}
	return nil
}

// Get returns order.ErrNotFound for unknown or malformed ids.
func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	rows, err := r.db.Query(ctx, getOrderSQL, id)
	if err != nil {
		if isBadID(err) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %q: %w", id, err)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isBadID(err) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %q: %w", id, err)
	}
	return &o, nil
}

// ListByUser returns the user's orders, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return r.list(ctx, listOrdersByUserSQL, userID)
}

// ListAll returns every order, newest first.
func (r *OrderRepository) ListAll(ctx context.Context) ([]order.Order, error) {
	return r.list(ctx, listOrdersSQL)
}

// UpdateStatus moves the order from one status to another with a
// compare-and-set on the current status.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from, to order.Status, at time.Time) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL, id, string(from), string(to), at)
	if err != nil {
		if isBadID(err) {
			return order.ErrNotFound
		}
		return fmt.Errorf("updating status of order %q: %w", id, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, orderExistsSQL, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking order %q: %w", id, err)
	}
	if !exists {
		return order.ErrNotFound
	}
	return order.ErrStatusConflict
}

// CountOrders counts the user's orders of any status.
func (r *OrderRepository) CountOrders(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, countOrdersSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting orders of %q: %w", userID, err)
	}
	return n, nil
}

// CountCouponOrders counts the user's orders that redeemed code.
func (r *OrderRepository) CountCouponOrders(ctx context.Context, userID, code string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, countCouponOrdersSQL, userID, code).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %q orders of %q: %w", code, userID, err)
	}
	return n, nil
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]order.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return list, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o           order.Order
		itemsJSON   []byte
		addressJSON []byte
		status      string
	)
	err := row.Scan(
		&o.ID, &o.UserID, &itemsJSON, &addressJSON, &o.CartValue,
		&o.ShippingCost, &o.DiscountAmount, &o.TotalPrice, &o.CouponCode,
		&status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}
	o.Status = order.Status(status)
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return o, fmt.Errorf("unmarshaling order items: %w", err)
	}
	if err := json.Unmarshal(addressJSON, &o.ShippingAddress); err != nil {
		return o, fmt.Errorf("unmarshaling shipping address: %w", err)
	}
	return o, nil
}
