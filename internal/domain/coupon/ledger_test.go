package coupon

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// fakeCounters applies the conditional increment under a mutex, the way the
// database applies it under a row lock.
type fakeCounters struct {
	mu       sync.Mutex
	coupon   *Coupon
	locks    []string
	incErr   error
	lockErr  error
	attempts int
}

func (f *fakeCounters) LockRedeemer(_ context.Context, code, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locks = append(f.locks, code+"/"+userID)
	return f.lockErr
}

func (f *fakeCounters) Increment(_ context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.incErr != nil {
		return f.incErr
	}
	if f.coupon == nil || f.coupon.Code != code {
		return ErrNotFound
	}
	if !f.coupon.Unlimited() && f.coupon.UsageCount >= *f.coupon.UsageLimit {
		return ErrUsageLimitReached
	}
	f.coupon.UsageCount++
	return nil
}

func (f *fakeCounters) FindByCode(_ context.Context, code string) (*Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.coupon == nil || f.coupon.Code != code {
		return nil, ErrNotFound
	}
	c := *f.coupon
	return &c, nil
}

func TestUsageLedger_Redeem(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := fixedNow.Add(-time.Minute)

	tests := []struct {
		name      string
		mutate    func(c *Coupon)
		history   *mockHistory
		incErr    error
		wantErr   error
		wantCount int
	}{
		{
			name:      "increments usage",
			wantCount: 1,
		},
		{
			name: "global limit reached",
			mutate: func(c *Coupon) {
				c.UsageLimit = intPtr(2)
				c.UsageCount = 2
			},
			wantErr:   ErrUsageLimitReached,
			wantCount: 2,
		},
		{
			name:      "per-user limit reached",
			history:   &mockHistory{orders: 1, couponOrders: map[string]int{"SAVE10": 1}},
			wantErr:   ErrPerUserLimitReached,
			wantCount: 0,
		},
		{
			name:      "deactivated after preview",
			mutate:    func(c *Coupon) { c.Active = false },
			wantErr:   ErrInactive,
			wantCount: 0,
		},
		{
			name:      "expired after preview",
			mutate:    func(c *Coupon) { c.ExpiresAt = &past },
			wantErr:   ErrExpired,
			wantCount: 0,
		},
		{
			name:      "first order placed meanwhile",
			mutate:    func(c *Coupon) { c.FirstOrderOnly = true },
			history:   &mockHistory{orders: 1},
			wantErr:   ErrNotFirstOrder,
			wantCount: 0,
		},
		{
			name:      "coupon deleted between read and increment",
			incErr:    fmt.Errorf("incrementing: %w", ErrNotFound),
			wantErr:   ErrNotFound,
			wantCount: 0,
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
			counters := &fakeCounters{coupon: c, incErr: tt.incErr}
			l := NewUsageLedger(counters, counters, history, func() time.Time { return fixedNow })

			got, err := l.Redeem(context.Background(), " save10", "u1")
			assert.Equal(t, []string{"SAVE10/u1"}, counters.locks)
			assert.Equal(t, tt.wantCount, counters.coupon.UsageCount)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsLostRace(err))
				assert.Equal(t, tt.wantErr.Error(), Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SAVE10", got.Code)
		})
	}
}

func TestUsageLedger_StoreErrorsAreNotLostRaces(t *testing.T) {
	counters := &fakeCounters{coupon: baseCoupon(), lockErr: errors.New("lock timeout")}
	l := NewUsageLedger(counters, counters, &mockHistory{}, nil)

	_, err := l.Redeem(context.Background(), "SAVE10", "u1")

	require.Error(t, err)
	assert.False(t, IsLostRace(err))
	assert.Equal(t, 0, counters.attempts)
}

func TestUsageLedger_ConcurrentRedeemNeverExceedsLimit(t *testing.T) {
	const limit = 10
	c := baseCoupon()
	c.UsageLimit = intPtr(limit)
	counters := &fakeCounters{coupon: c}
	l := NewUsageLedger(counters, counters, &mockHistory{}, nil)

	var (
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	var g errgroup.Group
	for i := range limit + 5 {
		g.Go(func() error {
			_, err := l.Redeem(context.Background(), "SAVE10", fmt.Sprintf("user-%d", i))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrUsageLimitReached):
				rejected++
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, limit, succeeded)
	assert.Equal(t, 5, rejected)
	assert.Equal(t, limit, counters.coupon.UsageCount)
}
