//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
	"github.com/xenking/kart-checkout/internal/domain/product"
	"github.com/xenking/kart-checkout/internal/storage/postgres"
)

var pool *pgxpool.Pool

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("kart"),
		tcpostgres.WithUsername("kart"),
		tcpostgres.WithPassword("kart"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("starting postgres: %v", err)
		return 1
	}
	defer func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			log.Printf("terminating postgres: %v", err)
		}
	}()

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Printf("connection string: %v", err)
		return 1
	}
	pool, err = postgres.NewPool(ctx, dsn)
	if err != nil {
		log.Printf("pool: %v", err)
		return 1
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		log.Printf("migrations: %v", err)
		return 1
	}
	return m.Run()
}

// --- Helpers ---

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(v int) *int { return &v }

func reset(t *testing.T) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE users, products, coupons, cart_items, orders`)
	require.NoError(t, err)
}

func seedCoupon(t *testing.T, c coupon.Coupon) *coupon.Coupon {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c.ID = uuid.NewString()
	if c.DiscountType == "" {
		c.DiscountType = coupon.DiscountPercentage
	}
	if c.DiscountValue.IsZero() {
		c.DiscountValue = d("10")
	}
	if c.PerUserLimit == 0 {
		c.PerUserLimit = 1
	}
	c.Active = true
	c.CreatedAt, c.UpdatedAt = now, now
	require.NoError(t, postgres.NewCouponRepository(pool).Create(context.Background(), &c))
	return &c
}

func newCoordinator(t *testing.T) *order.Coordinator {
	t.Helper()
	catalog := postgres.NewProductRepository(pool)
	require.NoError(t, catalog.Upsert(context.Background(),
		product.Product{ID: "kbd", Name: "Keyboard", Price: d("500.00"), Category: "input", Stock: 10}))

	carts := cart.NewAggregator(postgres.NewCartRepository(pool), catalog)
	eval := coupon.NewEvaluator(postgres.NewCouponRepository(pool), postgres.NewOrderRepository(pool))
	return order.NewCoordinator(catalog, carts, eval, postgres.NewUnitOfWork(pool), order.DefaultShipping())
}

var address = order.Address{Address: "1 Main St", City: "Pune", PostalCode: "411001", Country: "IN"}

// --- Tests ---

func TestCouponRepository_Lifecycle(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := postgres.NewCouponRepository(pool)

	c := seedCoupon(t, coupon.Coupon{Code: "SPRING", UsageLimit: intPtr(5)})

	dup := *c
	dup.ID = uuid.NewString()
	require.ErrorIs(t, repo.Create(ctx, &dup), coupon.ErrCodeTaken)

	got, err := repo.FindByCode(ctx, "SPRING")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	require.NotNil(t, got.UsageLimit)
	assert.Equal(t, 5, *got.UsageLimit)
	assert.Empty(t, got.AllowedUsers)

	_, err = repo.FindByCode(ctx, "spring")
	require.ErrorIs(t, err, coupon.ErrNotFound, "codes are stored normalized")
	_, err = repo.Get(ctx, "not-a-uuid")
	require.ErrorIs(t, err, coupon.ErrNotFound)

	for range 3 {
		require.NoError(t, repo.Increment(ctx, "SPRING"))
	}

	got.UsageLimit = intPtr(2)
	require.ErrorIs(t, repo.Update(ctx, got, false), coupon.ErrLimitBelowUsage)

	got.UsageLimit = intPtr(4)
	got.Description = "spring sale"
	require.NoError(t, repo.Update(ctx, got, false))
	assert.Equal(t, 3, got.UsageCount, "update keeps the live counter")

	require.NoError(t, repo.Update(ctx, got, true))
	assert.Zero(t, got.UsageCount)

	require.NoError(t, repo.Delete(ctx, c.ID))
	require.ErrorIs(t, repo.Delete(ctx, c.ID), coupon.ErrNotFound)
}

func TestCouponRepository_IncrementStopsAtLimit(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := postgres.NewCouponRepository(pool)
	seedCoupon(t, coupon.Coupon{Code: "TWO", UsageLimit: intPtr(2)})

	require.NoError(t, repo.Increment(ctx, "TWO"))
	require.NoError(t, repo.Increment(ctx, "TWO"))
	require.ErrorIs(t, repo.Increment(ctx, "TWO"), coupon.ErrUsageLimitReached)
	require.ErrorIs(t, repo.Increment(ctx, "GONE"), coupon.ErrNotFound)

	got, err := repo.FindByCode(ctx, "TWO")
	require.NoError(t, err)
	assert.Equal(t, 2, got.UsageCount)
}

func TestCouponRepository_Upsert(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := postgres.NewCouponRepository(pool)
	now := time.Now()

	c := &coupon.Coupon{
		ID: uuid.NewString(), Code: "FEED", DiscountType: coupon.DiscountFixed,
		DiscountValue: d("50"), PerUserLimit: 1, Active: true, UpdatedAt: now,
	}
	inserted, err := repo.Upsert(ctx, c)
	require.NoError(t, err)
	assert.True(t, inserted)
	require.NoError(t, repo.Increment(ctx, "FEED"))

	c.ID = uuid.NewString()
	c.DiscountValue = d("75")
	c.AllowedUsers = []string{"u-vip"}
	inserted, err = repo.Upsert(ctx, c)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := repo.FindByCode(ctx, "FEED")
	require.NoError(t, err)
	assert.True(t, d("75").Equal(got.DiscountValue))
	assert.Equal(t, 1, got.UsageCount)
	assert.Equal(t, []string{"u-vip"}, got.AllowedUsers)
	assert.NotEqual(t, c.ID, got.ID)
}

func TestCartRepository_Accumulates(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := postgres.NewCartRepository(pool)
	uid := uuid.NewString()

	require.NoError(t, repo.AddItem(ctx, uid, "kbd", 1))
	require.NoError(t, repo.AddItem(ctx, uid, "kbd", 2))
	require.ErrorIs(t, repo.SetQuantity(ctx, uid, "mouse", 1), cart.ErrItemNotFound)

	lines, err := repo.Lines(ctx, uid)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	require.ErrorIs(t, repo.AddItem(ctx, uid, "kbd", cart.MaxQuantity-2), cart.ErrInvalidQuantity)
	require.ErrorIs(t, repo.AddItem(ctx, uid, "kbd", 1<<31-1), cart.ErrInvalidQuantity)
	lines, err = repo.Lines(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 3, lines[0].Quantity)

	require.NoError(t, repo.Clear(ctx, uid))
	lines, err = repo.Lines(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestPlaceOrder_ConcurrentBuyersNeverExceedLimit(t *testing.T) {
	reset(t)
	const (
		limit  = 10
		buyers = 30
	)
	coord := newCoordinator(t)
	seedCoupon(t, coupon.Coupon{Code: "DROP", UsageLimit: intPtr(limit)})

	var ok, rejected atomic.Int64
	g, ctx := errgroup.WithContext(context.Background())
	for range buyers {
		g.Go(func() error {
			_, err := coord.PlaceOrder(ctx, order.PlaceOrderRequest{
				UserID:          uuid.NewString(),
				Items:           []order.ItemRequest{{ProductID: "kbd", Quantity: 1}},
				ShippingAddress: address,
				CouponCode:      "DROP",
			})
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, coupon.ErrUsageLimitReached):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(limit), ok.Load())
	assert.Equal(t, int64(buyers-limit), rejected.Load())

	var usage, orders int
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT usage_count FROM coupons WHERE code = 'DROP'`).Scan(&usage))
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE coupon_code = 'DROP'`).Scan(&orders))
	assert.Equal(t, limit, usage)
	assert.Equal(t, limit, orders, "every redemption has exactly one order")
}

func TestPlaceOrder_SameUserConcurrentCheckouts(t *testing.T) {
	reset(t)
	const attempts = 8
	coord := newCoordinator(t)
	seedCoupon(t, coupon.Coupon{Code: "ONCE", PerUserLimit: 1})
	uid := uuid.NewString()

	var ok, rejected atomic.Int64
	var g errgroup.Group
	for range attempts {
		g.Go(func() error {
			_, err := coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
				UserID:          uid,
				Items:           []order.ItemRequest{{ProductID: "kbd", Quantity: 1}},
				ShippingAddress: address,
				CouponCode:      "ONCE",
			})
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, coupon.ErrPerUserLimitReached):
				rejected.Add(1)
			default:
				return fmt.Errorf("unexpected: %w", err)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(1), ok.Load())
	assert.Equal(t, int64(attempts-1), rejected.Load())
}

func TestOrderRepository_StatusCompareAndSet(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := postgres.NewOrderRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	o := &order.Order{
		ID:              uuid.NewString(),
		UserID:          uuid.NewString(),
		Items:           []order.LineItem{{ProductID: "kbd", Name: "Keyboard", Quantity: 2, UnitPrice: d("500")}},
		ShippingAddress: address,
		CartValue:       d("1000"),
		ShippingCost:    decimal.Zero,
		DiscountAmount:  decimal.Zero,
		TotalPrice:      d("1000"),
		Status:          order.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CouponCode)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, d("500").Equal(got.Items[0].UnitPrice))
	assert.Equal(t, address, got.ShippingAddress)

	require.NoError(t, repo.UpdateStatus(ctx, o.ID, order.StatusPending, order.StatusProcessing, now))
	require.ErrorIs(t, repo.UpdateStatus(ctx, o.ID, order.StatusPending, order.StatusCancelled, now), order.ErrStatusConflict)
	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.NewString(), order.StatusPending, order.StatusCancelled, now), order.ErrNotFound)

	_, err = repo.Get(ctx, "nope")
	require.ErrorIs(t, err, order.ErrNotFound)

	n, err := repo.CountOrders(ctx, o.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
