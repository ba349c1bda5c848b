package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockCouponRepo struct {
	coupon *Coupon
	err    error
	calls  int
}

func (m *mockCouponRepo) FindByCode(_ context.Context, code string) (*Coupon, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.coupon == nil || m.coupon.Code != code {
		return nil, ErrNotFound
	}
	c := *m.coupon
	return &c, nil
}

type mockHistory struct {
	orders       int
	couponOrders map[string]int
	err          error
}

func (m *mockHistory) CountOrders(_ context.Context, _ string) (int, error) {
	return m.orders, m.err
}

func (m *mockHistory) CountCouponOrders(_ context.Context, _, code string) (int, error) {
	return m.couponOrders[code], m.err
}

// --- Helpers ---

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func intPtr(v int) *int { return &v }

func baseCoupon() *Coupon {
	return &Coupon{
		ID:            "c1",
		Code:          "SAVE10",
		DiscountType:  DiscountPercentage,
		DiscountValue: d("10"),
		PerUserLimit:  1,
		Active:        true,
	}
}

// --- Tests ---

func TestEvaluator_Evaluate(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := fixedNow.Add(-time.Hour)
	future := fixedNow.Add(time.Hour)

	tests := []struct {
		name    string
		mutate  func(c *Coupon)
		history *mockHistory
		req     Request
		wantErr error
	}{
		{
			name: "eligible",
			req:  Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
		},
		{
			name: "code is normalized",
			req:  Request{Code: "  save10 ", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
		},
		{
			name:    "missing code",
			req:     Request{UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrMissingFields,
		},
		{
			name:    "zero cart value",
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: decimal.Zero, OrderTotal: d("600")},
			wantErr: ErrNonPositive,
		},
		{
			name:    "negative order total",
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("10"), OrderTotal: d("-1")},
			wantErr: ErrNonPositive,
		},
		{
			name:    "order total below cart value",
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("400")},
			wantErr: ErrTotalBelowCart,
		},
		{
			name:    "unknown code",
			req:     Request{Code: "NOPE", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrNotFound,
		},
		{
			name:    "inactive",
			mutate:  func(c *Coupon) { c.Active = false },
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrInactive,
		},
		{
			name:    "expired",
			mutate:  func(c *Coupon) { c.ExpiresAt = &past },
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrExpired,
		},
		{
			name:   "expires in the future",
			mutate: func(c *Coupon) { c.ExpiresAt = &future },
			req:    Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
		},
		{
			name: "usage limit reached",
			mutate: func(c *Coupon) {
				c.UsageLimit = intPtr(5)
				c.UsageCount = 5
			},
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrUsageLimitReached,
		},
		{
			name: "zero usage limit means unlimited",
			mutate: func(c *Coupon) {
				c.UsageLimit = intPtr(0)
				c.UsageCount = 100
			},
			req: Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
		},
		{
			name:    "below minimum order value",
			mutate:  func(c *Coupon) { c.MinOrderValue = d("500") },
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("499"), OrderTotal: d("599")},
			wantErr: ErrMinOrderNotMet,
		},
		{
			name:   "minimum order value is inclusive",
			mutate: func(c *Coupon) { c.MinOrderValue = d("500") },
			req:    Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
		},
		{
			name:    "minimum ignores shipping",
			mutate:  func(c *Coupon) { c.MinOrderValue = d("500") },
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("450"), OrderTotal: d("550")},
			wantErr: ErrMinOrderNotMet,
		},
		{
			name:    "restricted to other users",
			mutate:  func(c *Coupon) { c.AllowedUsers = []string{"u2"} },
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrUserRestricted,
		},
		{
			name:   "restricted to this user",
			mutate: func(c *Coupon) { c.AllowedUsers = []string{"u2", "u1"} },
			req:    Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
		},
		{
			name:    "first order only with prior order",
			mutate:  func(c *Coupon) { c.FirstOrderOnly = true },
			history: &mockHistory{orders: 1},
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrNotFirstOrder,
		},
		{
			name:   "first order only without prior order",
			mutate: func(c *Coupon) { c.FirstOrderOnly = true },
			req:    Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
		},
		{
			name:    "per-user limit reached with unlimited global usage",
			history: &mockHistory{orders: 1, couponOrders: map[string]int{"SAVE10": 1}},
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrPerUserLimitReached,
		},
		{
			name:    "per-user limit above usage",
			mutate:  func(c *Coupon) { c.PerUserLimit = 3 },
			history: &mockHistory{orders: 2, couponOrders: map[string]int{"SAVE10": 2}},
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
		},
		{
			name: "inactive is reported before expiry",
			mutate: func(c *Coupon) {
				c.Active = false
				c.ExpiresAt = &past
			},
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrInactive,
		},
		{
			name: "usage limit is reported before minimum order",
			mutate: func(c *Coupon) {
				c.UsageLimit = intPtr(1)
				c.UsageCount = 1
				c.MinOrderValue = d("1000")
			},
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrUsageLimitReached,
		},
		{
			name: "user restriction is reported before first order",
			mutate: func(c *Coupon) {
				c.AllowedUsers = []string{"u9"}
				c.FirstOrderOnly = true
			},
			history: &mockHistory{orders: 3},
			req:     Request{Code: "SAVE10", UserID: "u1", CartValue: d("500"), OrderTotal: d("600")},
			wantErr: ErrUserRestricted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := baseCoupon()
			if tt.mutate != nil {
				tt.mutate(c)
			}
			history := tt.history
			if history == nil {
				history = &mockHistory{}
			}
			e := NewEvaluator(&mockCouponRepo{coupon: c}, history)
			e.now = func() time.Time { return fixedNow }

			got, err := e.Evaluate(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.False(t, IsLostRace(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SAVE10", got.Code)
		})
	}
}

func TestEvaluator_MinOrderMessage(t *testing.T) {
	c := baseCoupon()
	c.MinOrderValue = d("500")
	e := NewEvaluator(&mockCouponRepo{coupon: c}, &mockHistory{})

	_, err := e.Evaluate(context.Background(), Request{
		Code: "SAVE10", UserID: "u1", CartValue: d("100"), OrderTotal: d("200"),
	})

	require.Error(t, err)
	assert.Equal(t, "minimum cart value for this coupon is INR 500", Message(err))
	assert.Equal(t, "MIN_ORDER_NOT_MET", Reason(err))
}

func TestEvaluator_StoreError(t *testing.T) {
	e := NewEvaluator(&mockCouponRepo{err: errors.New("connection reset")}, &mockHistory{})

	_, err := e.Evaluate(context.Background(), Request{
		Code: "SAVE10", UserID: "u1", CartValue: d("100"), OrderTotal: d("200"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup coupon")
	assert.Empty(t, Reason(err))
}

func TestEvaluator_NeverWrites(t *testing.T) {
	c := baseCoupon()
	c.UsageLimit = intPtr(3)
	c.UsageCount = 2
	repo := &mockCouponRepo{coupon: c}
	e := NewEvaluator(repo, &mockHistory{})

	for range 50 {
		_, err := e.Evaluate(context.Background(), Request{
			Code: "SAVE10", UserID: "u1", CartValue: d("100"), OrderTotal: d("200"),
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, repo.coupon.UsageCount)
	assert.Equal(t, 50, repo.calls)
}
