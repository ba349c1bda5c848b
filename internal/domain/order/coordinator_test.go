package order_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
	"github.com/xenking/kart-checkout/internal/domain/product"
	"github.com/xenking/kart-checkout/internal/storage/memory"
)

// --- Helpers ---

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(v int) *int { return &v }

var address = order.Address{
	FullName:   "Asha Rao",
	Address:    "12 MG Road",
	City:       "Bengaluru",
	PostalCode: "560001",
	Country:    "IN",
}

// beforeTx runs hook right before each transaction starts, so tests can
// change state between coupon preview and redemption.
type beforeTx struct {
	*memory.Store
	hook func()
}

func (b beforeTx) Within(ctx context.Context, fn func(ctx context.Context, tx order.Tx) error) error {
	if b.hook != nil {
		b.hook()
	}
	return b.Store.Within(ctx, fn)
}

type checkout struct {
	store *memory.Store
	carts *cart.Aggregator
	coord *order.Coordinator
}

func newCheckout(t *testing.T, hook func()) *checkout {
	t.Helper()

	st := memory.New()
	st.PutProduct(product.Product{ID: "kbd", Name: "Keyboard", Price: d("500.00"), Category: "input"})
	st.PutProduct(product.Product{ID: "mouse", Name: "Mouse", Price: d("249.50"), Category: "input"})
	st.PutProduct(product.Product{ID: "mon", Name: "Monitor", Price: d("1200.00"), Category: "display"})

	carts := cart.NewAggregator(st.Carts(), st.Catalog())
	eval := coupon.NewEvaluator(st.Coupons(), st.History())
	coord := order.NewCoordinator(st.Catalog(), carts, eval, beforeTx{Store: st, hook: hook}, order.DefaultShipping())
	return &checkout{store: st, carts: carts, coord: coord}
}

func (c *checkout) addCoupon(cp coupon.Coupon) {
	if cp.ID == "" {
		cp.ID = "c-" + cp.Code
	}
	if cp.DiscountType == "" {
		cp.DiscountType = coupon.DiscountPercentage
	}
	if cp.PerUserLimit == 0 {
		cp.PerUserLimit = 1
	}
	cp.Active = true
	c.store.PutCoupon(cp)
}

func (c *checkout) usage(t *testing.T, code string) int {
	t.Helper()
	cp, ok := c.store.CouponByCode(code)
	require.True(t, ok)
	return cp.UsageCount
}

func items(pairs ...any) []order.ItemRequest {
	var out []order.ItemRequest
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, order.ItemRequest{ProductID: pairs[i].(string), Quantity: pairs[i+1].(int)})
	}
	return out
}

// --- Tests ---

func TestPlaceOrder_NoCoupon(t *testing.T) {
	c := newCheckout(t, nil)

	res, err := c.coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
		UserID:          "u1",
		Items:           items("kbd", 1, "mouse", 2),
		ShippingAddress: address,
	})
	require.NoError(t, err)
	assert.Nil(t, res.Quote)

	o := res.Order
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Empty(t, o.CouponCode)
	assert.True(t, d("999.00").Equal(o.CartValue), o.CartValue)
	assert.True(t, d("100").Equal(o.ShippingCost), "999 is not above the free shipping threshold")
	assert.True(t, decimal.Zero.Equal(o.DiscountAmount))
	assert.True(t, d("1099.00").Equal(o.TotalPrice), o.TotalPrice)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Keyboard", o.Items[0].Name)
	assert.True(t, d("249.50").Equal(o.Items[1].UnitPrice))

	stored, err := c.store.Orders().Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, o.TotalPrice.Equal(stored.TotalPrice))
}

func TestPlaceOrder_WithCoupon(t *testing.T) {
	tests := []struct {
		name         string
		coupon       coupon.Coupon
		items        []order.ItemRequest
		wantDiscount string
		wantShipping string
		wantTotal    string
	}{
		{
			name:         "percentage with free shipping",
			coupon:       coupon.Coupon{Code: "SAVE10", DiscountValue: d("10")},
			items:        items("kbd", 2),
			wantDiscount: "100",
			wantShipping: "0",
			wantTotal:    "900",
		},
		{
			name:         "fixed below threshold",
			coupon:       coupon.Coupon{Code: "FLAT50", DiscountType: coupon.DiscountFixed, DiscountValue: d("50")},
			items:        items("kbd", 1),
			wantDiscount: "50",
			wantShipping: "100",
			wantTotal:    "550",
		},
		{
			name:         "fixed capped at cart value",
			coupon:       coupon.Coupon{Code: "BIG", DiscountType: coupon.DiscountFixed, DiscountValue: d("5000")},
			items:        items("kbd", 1),
			wantDiscount: "500",
			wantShipping: "100",
			wantTotal:    "100",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCheckout(t, nil)
			c.addCoupon(tt.coupon)

			res, err := c.coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
				UserID:          "u1",
				Items:           tt.items,
				ShippingAddress: address,
				CouponCode:      "  " + tt.coupon.Code + " ",
			})
			require.NoError(t, err)
			require.NotNil(t, res.Quote)

			o := res.Order
			assert.Equal(t, tt.coupon.Code, o.CouponCode)
			assert.True(t, d(tt.wantDiscount).Equal(o.DiscountAmount), o.DiscountAmount)
			assert.True(t, d(tt.wantShipping).Equal(o.ShippingCost), o.ShippingCost)
			assert.True(t, d(tt.wantTotal).Equal(o.TotalPrice), o.TotalPrice)
			assert.Equal(t, 1, c.usage(t, tt.coupon.Code))
		})
	}
}

func TestPlaceOrder_FromCart(t *testing.T) {
	c := newCheckout(t, nil)
	ctx := context.Background()
	require.NoError(t, c.carts.AddItem(ctx, "u1", "mon", 1))
	require.NoError(t, c.carts.AddItem(ctx, "u1", "mouse", 1))
	require.NoError(t, c.carts.AddItem(ctx, "u2", "mouse", 1))

	res, err := c.coord.PlaceOrder(ctx, order.PlaceOrderRequest{
		UserID:          "u1",
		ShippingAddress: address,
	})
	require.NoError(t, err)
	assert.True(t, d("1449.50").Equal(res.Order.CartValue))
	assert.True(t, decimal.Zero.Equal(res.Order.ShippingCost))

	lines, err := c.carts.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines, "cart is cleared with the order")

	other, err := c.carts.Lines(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestPlaceOrder_ExplicitItemsKeepCart(t *testing.T) {
	c := newCheckout(t, nil)
	ctx := context.Background()
	require.NoError(t, c.carts.AddItem(ctx, "u1", "mon", 1))

	_, err := c.coord.PlaceOrder(ctx, order.PlaceOrderRequest{
		UserID:          "u1",
		Items:           items("kbd", 1),
		ShippingAddress: address,
	})
	require.NoError(t, err)

	lines, err := c.carts.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestPlaceOrder_MergesDuplicateItems(t *testing.T) {
	c := newCheckout(t, nil)

	res, err := c.coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
		UserID:          "u1",
		Items:           items("kbd", 1, "kbd", 2),
		ShippingAddress: address,
	})
	require.NoError(t, err)
	require.Len(t, res.Order.Items, 1)
	assert.Equal(t, 3, res.Order.Items[0].Quantity)
	assert.True(t, d("1500").Equal(res.Order.CartValue))
}

func TestPlaceOrder_InvalidRequest(t *testing.T) {
	noCity := address
	noCity.City = " "

	tests := []struct {
		name   string
		req    order.PlaceOrderRequest
		target error
		check  func(t *testing.T, err error)
	}{
		{
			name:   "empty cart",
			req:    order.PlaceOrderRequest{UserID: "u1", ShippingAddress: address},
			target: order.ErrEmptyItems,
		},
		{
			name:   "explicitly empty items",
			req:    order.PlaceOrderRequest{UserID: "u1", Items: []order.ItemRequest{}, ShippingAddress: address},
			target: order.ErrEmptyItems,
		},
		{
			name:   "zero quantity",
			req:    order.PlaceOrderRequest{UserID: "u1", Items: items("kbd", 0), ShippingAddress: address},
			target: order.ErrInvalidQuantity,
		},
		{
			name:   "quantity over line cap",
			req:    order.PlaceOrderRequest{UserID: "u1", Items: items("kbd", cart.MaxQuantity+1), ShippingAddress: address},
			target: order.ErrInvalidQuantity,
		},
		{
			name:   "merged quantity over line cap",
			req:    order.PlaceOrderRequest{UserID: "u1", Items: items("kbd", cart.MaxQuantity, "kbd", 1), ShippingAddress: address},
			target: order.ErrInvalidQuantity,
		},
		{
			name: "unknown product",
			req:  order.PlaceOrderRequest{UserID: "u1", Items: items("kbd", 1, "ghost", 1), ShippingAddress: address},
			check: func(t *testing.T, err error) {
				var pnf *order.ProductNotFoundError
				require.ErrorAs(t, err, &pnf)
				assert.Equal(t, "ghost", pnf.ProductID)
			},
		},
		{
			name: "missing city",
			req:  order.PlaceOrderRequest{UserID: "u1", Items: items("kbd", 1), ShippingAddress: noCity},
			check: func(t *testing.T, err error) {
				var ae *order.AddressError
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, "city", ae.Field)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCheckout(t, nil)

			_, err := c.coord.PlaceOrder(context.Background(), tt.req)
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
			all, err := c.store.Orders().ListAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestPlaceOrder_IneligibleCouponLeavesStateUntouched(t *testing.T) {
	c := newCheckout(t, nil)
	ctx := context.Background()
	c.addCoupon(coupon.Coupon{Code: "BIGSPEND", DiscountValue: d("20"), MinOrderValue: d("2000"), UsageLimit: intPtr(10)})
	require.NoError(t, c.carts.AddItem(ctx, "u1", "kbd", 1))

	_, err := c.coord.PlaceOrder(ctx, order.PlaceOrderRequest{
		UserID:          "u1",
		ShippingAddress: address,
		CouponCode:      "bigspend",
	})
	require.ErrorIs(t, err, coupon.ErrMinOrderNotMet)
	assert.False(t, coupon.IsLostRace(err))
	assert.Equal(t, 0, c.usage(t, "BIGSPEND"))

	lines, err := c.carts.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestPlaceOrder_UnknownCoupon(t *testing.T) {
	c := newCheckout(t, nil)

	_, err := c.coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
		UserID:          "u1",
		Items:           items("kbd", 1),
		ShippingAddress: address,
		CouponCode:      "NOPE",
	})
	require.ErrorIs(t, err, coupon.ErrNotFound)
}

func TestPlaceOrder_PerUserLimit(t *testing.T) {
	c := newCheckout(t, nil)
	c.addCoupon(coupon.Coupon{Code: "ONCE", DiscountValue: d("5")})
	req := order.PlaceOrderRequest{
		UserID:          "u1",
		Items:           items("kbd", 1),
		ShippingAddress: address,
		CouponCode:      "ONCE",
	}

	_, err := c.coord.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	_, err = c.coord.PlaceOrder(context.Background(), req)
	require.ErrorIs(t, err, coupon.ErrPerUserLimitReached)
	assert.Equal(t, 1, c.usage(t, "ONCE"))

	req.UserID = "u2"
	_, err = c.coord.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, c.usage(t, "ONCE"))
}

func TestPlaceOrder_FirstOrderOnly(t *testing.T) {
	c := newCheckout(t, nil)
	c.addCoupon(coupon.Coupon{Code: "WELCOME", DiscountValue: d("15"), FirstOrderOnly: true})
	ctx := context.Background()

	_, err := c.coord.PlaceOrder(ctx, order.PlaceOrderRequest{
		UserID: "u1", Items: items("mouse", 1), ShippingAddress: address,
	})
	require.NoError(t, err)

	_, err = c.coord.PlaceOrder(ctx, order.PlaceOrderRequest{
		UserID: "u1", Items: items("mouse", 1), ShippingAddress: address, CouponCode: "WELCOME",
	})
	require.ErrorIs(t, err, coupon.ErrNotFirstOrder)
	assert.Equal(t, 0, c.usage(t, "WELCOME"))
}

func TestPlaceOrder_RollsBackRedemptionWhenInsertFails(t *testing.T) {
	c := newCheckout(t, nil)
	ctx := context.Background()
	c.addCoupon(coupon.Coupon{Code: "SAVE10", DiscountValue: d("10"), UsageLimit: intPtr(1)})
	require.NoError(t, c.carts.AddItem(ctx, "u1", "kbd", 1))
	c.store.FailCreate = errors.New("disk full")

	_, err := c.coord.PlaceOrder(ctx, order.PlaceOrderRequest{
		UserID:          "u1",
		ShippingAddress: address,
		CouponCode:      "SAVE10",
	})
	require.Error(t, err)
	assert.False(t, coupon.IsLostRace(err))
	assert.Equal(t, 0, c.usage(t, "SAVE10"))

	lines, err := c.carts.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 1, "cart survives a failed checkout")

	c.store.FailCreate = nil
	_, err = c.coord.PlaceOrder(ctx, order.PlaceOrderRequest{
		UserID:          "u1",
		ShippingAddress: address,
		CouponCode:      "SAVE10",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.usage(t, "SAVE10"))
}

func TestPlaceOrder_CouponChangedAfterPreview(t *testing.T) {
	tests := []struct {
		name   string
		change func(cp *coupon.Coupon)
		target error
	}{
		{
			name:   "deactivated",
			change: func(cp *coupon.Coupon) { cp.Active = false },
			target: coupon.ErrInactive,
		},
		{
			name:   "exhausted",
			change: func(cp *coupon.Coupon) { cp.UsageLimit = intPtr(3); cp.UsageCount = 3 },
			target: coupon.ErrUsageLimitReached,
		},
		{
			name:   "minimum raised",
			change: func(cp *coupon.Coupon) { cp.MinOrderValue = d("5000") },
			target: coupon.ErrMinOrderNotMet,
		},
		{
			name:   "restricted to someone else",
			change: func(cp *coupon.Coupon) { cp.AllowedUsers = []string{"u9"} },
			target: coupon.ErrUserRestricted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c *checkout
			c = newCheckout(t, func() {
				cp, ok := c.store.CouponByCode("FLASH")
				require.True(t, ok)
				tt.change(&cp)
				c.store.PutCoupon(cp)
			})
			c.addCoupon(coupon.Coupon{Code: "FLASH", DiscountValue: d("10")})
			before, _ := c.store.CouponByCode("FLASH")

			_, err := c.coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
				UserID:          "u1",
				Items:           items("kbd", 1),
				ShippingAddress: address,
				CouponCode:      "FLASH",
			})
			require.ErrorIs(t, err, tt.target)
			assert.True(t, coupon.IsLostRace(err))

			after, _ := c.store.CouponByCode("FLASH")
			assert.GreaterOrEqual(t, after.UsageCount, before.UsageCount)
			all, err := c.store.Orders().ListAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestPlaceOrder_ConcurrentCheckoutsNeverExceedLimit(t *testing.T) {
	const (
		limit  = 5
		buyers = 20
	)
	c := newCheckout(t, nil)
	c.addCoupon(coupon.Coupon{Code: "DROP", DiscountValue: d("10"), UsageLimit: intPtr(limit)})

	var ok, rejected atomic.Int64
	var g errgroup.Group
	for i := range buyers {
		g.Go(func() error {
			_, err := c.coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
				UserID:          fmt.Sprintf("buyer-%d", i),
				Items:           items("kbd", 1),
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
	assert.Equal(t, limit, c.usage(t, "DROP"))

	all, err := c.store.Orders().ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, limit)
}

func TestPlaceOrder_LastSlotGoesToExactlyOneBuyer(t *testing.T) {
	const limit = 3
	buyers := limit + 1

	// Every checkout passes the preview before any of them redeems, so all
	// of them race for the conditional increment.
	var previewed sync.WaitGroup
	previewed.Add(buyers)
	c := newCheckout(t, func() {
		previewed.Done()
		previewed.Wait()
	})
	c.addCoupon(coupon.Coupon{Code: "LAST", DiscountValue: d("10"), UsageLimit: intPtr(limit)})

	var ok, lost atomic.Int64
	var g errgroup.Group
	for i := range buyers {
		g.Go(func() error {
			_, err := c.coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
				UserID:          fmt.Sprintf("buyer-%d", i),
				Items:           items("kbd", 1),
				ShippingAddress: address,
				CouponCode:      "LAST",
			})
			switch {
			case err == nil:
				ok.Add(1)
			case coupon.IsLostRace(err) && errors.Is(err, coupon.ErrUsageLimitReached):
				lost.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(limit), ok.Load())
	assert.Equal(t, int64(1), lost.Load())
	assert.Equal(t, limit, c.usage(t, "LAST"))

	all, err := c.store.Orders().ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, limit)
}

func TestPlaceOrder_Metrics(t *testing.T) {
	m, err := order.NewMetrics(metricnoop.NewMeterProvider())
	require.NoError(t, err)

	st := memory.New()
	st.PutProduct(product.Product{ID: "kbd", Name: "Keyboard", Price: d("500")})
	carts := cart.NewAggregator(st.Carts(), st.Catalog())
	coord := order.NewCoordinator(st.Catalog(), carts, coupon.NewEvaluator(st.Coupons(), st.History()), st,
		order.DefaultShipping(), order.WithMetrics(m))

	_, err = coord.PlaceOrder(context.Background(), order.PlaceOrderRequest{
		UserID: "u1", Items: items("kbd", 1), ShippingAddress: address,
	})
	require.NoError(t, err)
}
