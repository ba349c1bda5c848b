package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/xenking/kart-checkout/internal/domain/coupon"
)

const (
	couponColumns = `id::text, code, discount_type, discount_value, min_order_value,
		expires_at, usage_limit, usage_count, per_user_limit, active,
		first_order_only, allowed_users, description, created_at, updated_at`

	getCouponByCodeSQL = `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`
	getCouponSQL       = `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`
	listCouponsSQL     = `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`

	createCouponSQL = `INSERT INTO coupons (id, code, discount_type, discount_value,
		min_order_value, expires_at, usage_limit, usage_count, per_user_limit, active,
		first_order_only, allowed_users, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	// The usage counter is only ever written by the ledger, or zeroed here
	// on an explicit reset.
	updateCouponSQL = `UPDATE coupons
		SET code = $2, discount_type = $3, discount_value = $4, min_order_value = $5,
			expires_at = $6, usage_limit = $7, per_user_limit = $8, active = $9,
			first_order_only = $10, allowed_users = $11, description = $12, updated_at = $13,
			usage_count = CASE WHEN $14::boolean THEN 0 ELSE usage_count END
		WHERE id = $1
		RETURNING usage_count`

	deleteCouponSQL = `DELETE FROM coupons WHERE id = $1`

	upsertCouponSQL = `INSERT INTO coupons (id, code, discount_type, discount_value,
		min_order_value, expires_at, usage_limit, per_user_limit, active,
		first_order_only, allowed_users, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		ON CONFLICT (code) DO UPDATE
		SET discount_type = EXCLUDED.discount_type, discount_value = EXCLUDED.discount_value,
			min_order_value = EXCLUDED.min_order_value, expires_at = EXCLUDED.expires_at,
			usage_limit = EXCLUDED.usage_limit, per_user_limit = EXCLUDED.per_user_limit,
			active = EXCLUDED.active, first_order_only = EXCLUDED.first_order_only,
			allowed_users = EXCLUDED.allowed_users, description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0)`

	lockRedeemerSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`

	incrementUsageSQL = `UPDATE coupons SET usage_count = usage_count + 1
		WHERE code = $1 AND (usage_limit IS NULL OR usage_count < usage_limit)`

	couponExistsSQL = `SELECT EXISTS (SELECT 1 FROM coupons WHERE code = $1)`
)

const usageWithinLimitConstraint = "coupons_usage_within_limit"

var (
	_ coupon.Store    = (*CouponRepository)(nil)
	_ coupon.Counters = (*CouponRepository)(nil)
)

// CouponRepository implements coupon.Store and coupon.Counters backed by
// PostgreSQL. Counters methods must be called on a repository bound to a
// transaction.
type CouponRepository struct {
	db DBTX
}

// NewCouponRepository returns a CouponRepository that uses db.
func NewCouponRepository(db DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

// FindByCode looks up a coupon by its normalized code regardless of state.
// Returns coupon.ErrNotFound when no coupon has the code.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return r.one(ctx, getCouponByCodeSQL, code)
}

// Get looks up a coupon by id.
func (r *CouponRepository) Get(ctx context.Context, id string) (*coupon.Coupon, error) {
	return r.one(ctx, getCouponSQL, id)
}

// List returns every coupon, newest first.
func (r *CouponRepository) List(ctx context.Context) ([]coupon.Coupon, error) {
	rows, err := r.db.Query(ctx, listCouponsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing coupons: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanCoupon)
	if err != nil {
		return nil, fmt.Errorf("listing coupons: %w", err)
	}
	return list, nil
}

// Create inserts c. Returns coupon.ErrCodeTaken on a duplicate code.
func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.db.Exec(ctx, createCouponSQL,
		c.ID, c.Code, string(c.DiscountType), c.DiscountValue, c.MinOrderValue,
		c.ExpiresAt, c.UsageLimit, c.UsageCount, c.PerUserLimit, c.Active,
		c.FirstOrderOnly, allowedUsers(c), c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return couponWriteError(err, "creating coupon %q", c.Code)
	}
	return nil
}

// Update writes the admin-editable fields of c and refreshes c.UsageCount
// from the stored row.
func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon, resetUsage bool) error {
	var usage int
	err := r.db.QueryRow(ctx, updateCouponSQL,
		c.ID, c.Code, string(c.DiscountType), c.DiscountValue, c.MinOrderValue,
		c.ExpiresAt, c.UsageLimit, c.PerUserLimit, c.Active,
		c.FirstOrderOnly, allowedUsers(c), c.Description, c.UpdatedAt, resetUsage,
	).Scan(&usage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isBadID(err) {
			return coupon.ErrNotFound
		}
		return couponWriteError(err, "updating coupon %q", c.ID)
	}
	c.UsageCount = usage
	return nil
}

// Delete removes the coupon with id.
func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deleteCouponSQL, id)
	if err != nil {
		if isBadID(err) {
			return coupon.ErrNotFound
		}
		return fmt.Errorf("deleting coupon %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return coupon.ErrNotFound
	}
	return nil
}

// Upsert inserts c or overwrites the definition of the coupon with the same
// code, keeping its id and usage count. It reports whether a row was inserted.
func (r *CouponRepository) Upsert(ctx context.Context, c *coupon.Coupon) (inserted bool, err error) {
	err = r.db.QueryRow(ctx, upsertCouponSQL,
		c.ID, c.Code, string(c.DiscountType), c.DiscountValue, c.MinOrderValue,
		c.ExpiresAt, c.UsageLimit, c.PerUserLimit, c.Active,
		c.FirstOrderOnly, allowedUsers(c), c.Description, c.UpdatedAt,
	).Scan(&inserted)
	if err != nil {
		return false, couponWriteError(err, "upserting coupon %q", c.Code)
	}
	return inserted, nil
}

// LockRedeemer takes a transaction-scoped advisory lock on (code, userID).
// Two checkouts by the same user with the same coupon serialize here, so
// the per-user count they read includes each other's orders.
func (r *CouponRepository) LockRedeemer(ctx context.Context, code, userID string) error {
	if _, err := r.db.Exec(ctx, lockRedeemerSQL, code, userID); err != nil {
		return fmt.Errorf("locking redemption of %q: %w", code, err)
	}
	return nil
}

// Increment counts one redemption. The limit check and the increment are a
// single statement, so the row lock serializes concurrent redeemers and the
// count never passes the limit.
func (r *CouponRepository) Increment(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, incrementUsageSQL, code)
	if err != nil {
		return fmt.Errorf("incrementing usage of %q: %w", code, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, couponExistsSQL, code).Scan(&exists); err != nil {
		return fmt.Errorf("checking coupon %q: %w", code, err)
	}
	if !exists {
		return coupon.ErrNotFound
	}
	return coupon.ErrUsageLimitReached
}

func (r *CouponRepository) one(ctx context.Context, query, arg string) (*coupon.Coupon, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		if isBadID(err) {
			return nil, coupon.ErrNotFound
		}
		return nil, fmt.Errorf("getting coupon %q: %w", arg, err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isBadID(err) {
			return nil, coupon.ErrNotFound
		}
		return nil, fmt.Errorf("getting coupon %q: %w", arg, err)
	}
	return &c, nil
}

func scanCoupon(row pgx.CollectableRow) (coupon.Coupon, error) {
	var (
		c            coupon.Coupon
		discountType string
	)
	err := row.Scan(
		&c.ID, &c.Code, &discountType, &c.DiscountValue, &c.MinOrderValue,
		&c.ExpiresAt, &c.UsageLimit, &c.UsageCount, &c.PerUserLimit, &c.Active,
		&c.FirstOrderOnly, &c.AllowedUsers, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	c.DiscountType = coupon.DiscountType(discountType)
	return c, err
}

func allowedUsers(c *coupon.Coupon) []string {
	if c.AllowedUsers == nil {
		return []string{}
	}
	return c.AllowedUsers
}

func couponWriteError(err error, format string, arg string) error {
	switch code, constraint := pgCode(err); {
	case code == pgUniqueViolation:
		return coupon.ErrCodeTaken
	case code == pgCheckViolation && constraint == usageWithinLimitConstraint:
		return coupon.ErrLimitBelowUsage
	}
	return fmt.Errorf(format+": %w", arg, err)
}
