package coupon

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported coupon discount strategies.
type DiscountType string

const (
	// DiscountPercentage takes a percentage of the cart value.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed takes a fixed amount, capped at the cart value.
	DiscountFixed DiscountType = "fixed"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Coupon is a named discount rule with eligibility constraints and
// consumption ceilings.
type Coupon struct {
	ID            string
	Code          string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinOrderValue decimal.Decimal
	ExpiresAt     *time.Time
	// UsageLimit is nil when redemptions are unlimited.
	UsageLimit     *int
	UsageCount     int
	PerUserLimit   int
	Active         bool
	FirstOrderOnly bool
	// AllowedUsers restricts the coupon to these user ids. Empty means anyone.
	AllowedUsers []string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeCode uppercases and trims a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Unlimited reports whether the coupon has no global redemption ceiling.
func (c *Coupon) Unlimited() bool {
	return c.UsageLimit == nil || *c.UsageLimit <= 0
}

// Exhausted reports whether every allowed redemption has been used.
func (c *Coupon) Exhausted() bool {
	return !c.Unlimited() && c.UsageCount >= *c.UsageLimit
}

// ExpiredAt reports whether the expiry date is strictly before now.
func (c *Coupon) ExpiredAt(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// Allows reports whether userID passes the user restriction.
func (c *Coupon) Allows(userID string) bool {
	return len(c.AllowedUsers) == 0 || slices.Contains(c.AllowedUsers, userID)
}

// Repository looks up coupons by normalized code.
type Repository interface {
	// FindByCode returns ErrNotFound when no coupon has the code.
	FindByCode(ctx context.Context, code string) (*Coupon, error)
}

// Store is the administrative persistence port.
type Store interface {
	Repository
	List(ctx context.Context) ([]Coupon, error)
	Get(ctx context.Context, id string) (*Coupon, error)
	// Create returns ErrCodeTaken on a duplicate code.
	Create(ctx context.Context, c *Coupon) error
	// Update writes every admin-editable field. The usage counter is left
	// untouched unless resetUsage is set, in which case it becomes zero.
	Update(ctx context.Context, c *Coupon, resetUsage bool) error
	Delete(ctx context.Context, id string) error
}

// OrderHistory answers per-user questions from committed orders.
type OrderHistory interface {
	// CountOrders counts the user's orders of any status.
	CountOrders(ctx context.Context, userID string) (int, error)
	// CountCouponOrders counts the user's orders carrying code.
	CountCouponOrders(ctx context.Context, userID, code string) (int, error)
}

// Counters is the storage side of the usage ledger. Both methods must run
// inside the transaction that creates the order.
type Counters interface {
	// LockRedeemer blocks other redemptions of code by userID until the
	// enclosing transaction ends.
	LockRedeemer(ctx context.Context, code, userID string) error
	// Increment adds one redemption if the coupon is below its limit, as a
	// single conditional update. It returns ErrUsageLimitReached when the
	// predicate fails and ErrNotFound when the coupon is gone.
	Increment(ctx context.Context, code string) error
}
