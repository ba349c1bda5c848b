package handler_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xenking/kart-checkout/gen/oas"
	"github.com/xenking/kart-checkout/internal/domain/auth"
	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
	"github.com/xenking/kart-checkout/internal/domain/product"
	"github.com/xenking/kart-checkout/internal/domain/user"
	"github.com/xenking/kart-checkout/internal/handler"
	"github.com/xenking/kart-checkout/internal/storage/memory"
	"github.com/xenking/kart-checkout/pkg/httpmiddleware"
)

const (
	testSecret = "test-secret"
	testIssuer = "kart-identity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(v int) *int { return &v }

var (
	customer = user.User{ID: "u-cust", Email: "asha@example.com", Name: "Asha", Role: user.RoleCustomer}
	other    = user.User{ID: "u-other", Email: "ravi@example.com", Name: "Ravi", Role: user.RoleCustomer}
	admin    = user.User{ID: "u-admin", Email: "admin@example.com", Name: "Admin", Role: user.RoleAdmin}
)

var shipTo = oas.Address{
	FullName:   "Asha Rao",
	Address:    "12 MG Road",
	City:       "Bengaluru",
	PostalCode: "560001",
	Country:    "IN",
}

// hookedUoW runs hook right before each transaction.
type hookedUoW struct {
	*memory.Store
	hook *func()
}

func (u hookedUoW) Within(ctx context.Context, fn func(ctx context.Context, tx order.Tx) error) error {
	if *u.hook != nil {
		(*u.hook)()
	}
	return u.Store.Within(ctx, fn)
}

type fixture struct {
	t      *testing.T
	store  *memory.Store
	tokens *auth.Tokens
	h      *handler.Handler
	sec    *handler.SecurityHandler
	// beforeTx, when set, runs between coupon preview and redemption.
	beforeTx func()
}

func newFixture(t *testing.T, opts ...func(*handler.Deps)) *fixture {
	t.Helper()

	st := memory.New()
	st.PutProduct(product.Product{ID: "kbd", Name: "Keyboard", Price: d("500.00"), Category: "input", Stock: 10})
	st.PutProduct(product.Product{ID: "mouse", Name: "Mouse", Price: d("249.50"), Category: "input", Stock: 10})
	st.PutProduct(product.Product{ID: "mon", Name: "Monitor", Price: d("1200.00"), Category: "display", Stock: 3})
	for _, u := range []user.User{customer, other, admin} {
		st.PutUser(u)
	}

	f := &fixture{t: t, store: st, tokens: auth.NewTokens(testSecret, testIssuer, time.Hour)}

	shipping := order.DefaultShipping()
	carts := cart.NewAggregator(st.Carts(), st.Catalog())
	eval := coupon.NewEvaluator(st.Coupons(), st.History())
	deps := handler.Deps{
		Catalog:     st.Catalog(),
		Carts:       carts,
		Evaluator:   eval,
		Coupons:     coupon.NewService(st.Coupons(), st.Users()),
		Coordinator: order.NewCoordinator(st.Catalog(), carts, eval, hookedUoW{Store: st, hook: &f.beforeTx}, shipping),
		Orders:      order.NewService(st.Orders(), 0),
		Shipping:    shipping,
	}
	for _, o := range opts {
		o(&deps)
	}
	f.h = handler.New(deps)
	f.sec = handler.NewSecurityHandler(f.tokens, st.Users())
	return f
}

// as returns a context authenticated as u.
func as(u user.User) context.Context {
	return user.WithUser(context.Background(), &u)
}

func (f *fixture) token(u user.User) string {
	f.t.Helper()
	tok, err := f.tokens.Issue(u.ID)
	require.NoError(f.t, err)
	return tok
}

func (f *fixture) addCoupon(c coupon.Coupon) {
	if c.ID == "" {
		c.ID = "c-" + c.Code
	}
	if c.DiscountType == "" {
		c.DiscountType = coupon.DiscountPercentage
	}
	if c.PerUserLimit == 0 {
		c.PerUserLimit = 1
	}
	c.Active = true
	f.store.PutCoupon(c)
}

// apiError returns the error body the server would send for err.
func (f *fixture) apiError(err error) *oas.ErrorStatusCode {
	f.t.Helper()
	require.Error(f.t, err)
	e := f.h.NewError(context.Background(), err)
	require.NotNil(f.t, e)
	assert.Equal(f.t, e.StatusCode, e.Response.Code)
	return e
}

func expiredToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    testIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func TestHandleBearerAuth(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name      string
		operation oas.OperationName
		token     string
		status    int
		message   string
		userID    string
	}{
		{name: "blank", operation: oas.ListMyOrdersOperation, token: " ", status: 401, message: "not authorized, no token"},
		{name: "garbage", operation: oas.ListMyOrdersOperation, token: "not-a-jwt", status: 401, message: "not authorized, token failed"},
		{name: "expired", operation: oas.ListMyOrdersOperation, token: expiredToken(t, customer.ID), status: 401, message: "not authorized, token expired"},
		{name: "unknown user", operation: oas.ListMyOrdersOperation, token: f.token(user.User{ID: "u-ghost"}), status: 401, message: "not authorized, user not found"},
		{name: "customer on admin operation", operation: oas.CreateCouponOperation, token: f.token(customer), status: 403, message: "not authorized as an admin"},
		{name: "customer", operation: oas.PlaceOrderOperation, token: f.token(customer), userID: customer.ID},
		{name: "admin", operation: oas.UpdateOrderStatusOperation, token: f.token(admin), userID: admin.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := f.sec.HandleBearerAuth(context.Background(), tt.operation, oas.BearerAuth{Token: tt.token})
			if tt.status != 0 {
				e := f.apiError(err)
				assert.Equal(t, tt.status, e.StatusCode)
				assert.Equal(t, tt.message, e.Response.Message)
				return
			}
			require.NoError(t, err)
			u, ok := user.FromContext(ctx)
			require.True(t, ok)
			assert.Equal(t, tt.userID, u.ID)
		})
	}
}

func TestNewError(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{
			name:   "missing credentials",
			err:    &ogenerrors.SecurityError{Err: ogenerrors.ErrSecurityRequirementIsNotSatisfied},
			status: 401,
			reason: "UNAUTHORIZED",
		},
		{
			name:   "user lookup failed",
			err:    &ogenerrors.SecurityError{Err: errors.Wrap(errors.New("boom"), "wrapped")},
			status: 500,
			reason: "INTERNAL",
		},
		{
			name:   "malformed body",
			err:    &ogenerrors.DecodeRequestError{Err: errors.New("unexpected EOF")},
			status: 400,
			reason: "INVALID_BODY",
		},
		{
			name:   "coupon ineligible",
			err:    errors.Wrap(coupon.ErrMinOrderNotMet, "evaluate"),
			status: 400,
			reason: "MIN_ORDER_NOT_MET",
		},
		{
			name:   "order missing",
			err:    order.ErrNotFound,
			status: 404,
			reason: "NOT_FOUND",
		},
		{
			name:   "status conflict",
			err:    order.ErrStatusConflict,
			status: 409,
			reason: "STATUS_CONFLICT",
		},
		{
			name:   "cart line missing",
			err:    cart.ErrItemNotFound,
			status: 404,
			reason: "ITEM_NOT_FOUND",
		},
		{
			name:   "address",
			err:    &order.AddressError{Field: "city"},
			status: 400,
			reason: "INVALID_ADDRESS",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := f.apiError(tt.err)
			assert.Equal(t, tt.status, e.StatusCode)
			assert.Equal(t, tt.reason, e.Response.Reason)
			assert.False(t, e.Response.CouponUnavailable.IsSet())
		})
	}
}

func TestNewError_LogsUnexpected(t *testing.T) {
	f := newFixture(t)
	core, logs := observer.New(zap.ErrorLevel)
	ctx := zctx.Base(context.Background(), zap.New(core))

	e := f.h.NewError(ctx, errors.New("connection reset"))
	assert.Equal(t, 500, e.StatusCode)
	assert.Equal(t, "internal server error", e.Response.Message)
	assert.Equal(t, 1, logs.FilterMessage("Request failed").Len())
}

func TestListProducts(t *testing.T) {
	f := newFixture(t)

	list, err := f.h.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "kbd", list[0].ID)
	assert.Equal(t, 500.0, list[0].Price)
	assert.Equal(t, 249.5, list[1].Price)
}

func TestValidateCoupon(t *testing.T) {
	f := newFixture(t)
	f.addCoupon(coupon.Coupon{Code: "SAVE10", DiscountValue: d("10"), MinOrderValue: d("500"), Description: "10% off"})
	f.addCoupon(coupon.Coupon{Code: "FLAT300", DiscountType: coupon.DiscountFixed, DiscountValue: d("300"), UsageLimit: intPtr(5)})
	ctx := as(customer)

	t.Run("percentage", func(t *testing.T) {
		q, err := f.h.ValidateCoupon(ctx, &oas.ValidateCouponRequest{Code: "save10", CartValue: 1000, OrderTotal: 1100})
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", q.Code)
		assert.Equal(t, oas.DiscountTypePercentage, q.DiscountType)
		assert.Equal(t, 100.0, q.DiscountAmount)
		assert.Equal(t, 100.0, q.ShippingCost)
		assert.Equal(t, 1000.0, q.FinalTotal)
		assert.Equal(t, 1100.0, q.OriginalTotal)
		assert.True(t, q.UsageLimit.IsNull())
		assert.Equal(t, "10% off", q.Description)
	})

	t.Run("fixed", func(t *testing.T) {
		q, err := f.h.ValidateCoupon(ctx, &oas.ValidateCouponRequest{Code: "FLAT300", CartValue: 1000, OrderTotal: 1100})
		require.NoError(t, err)
		assert.Equal(t, 300.0, q.DiscountAmount)
		assert.Equal(t, 800.0, q.FinalTotal)
		assert.Equal(t, 5, q.UsageLimit.Value)
	})

	t.Run("does not consume", func(t *testing.T) {
		for range 3 {
			_, err := f.h.ValidateCoupon(ctx, &oas.ValidateCouponRequest{Code: "FLAT300", CartValue: 1000, OrderTotal: 1100})
			require.NoError(t, err)
		}
		c, ok := f.store.CouponByCode("FLAT300")
		require.True(t, ok)
		assert.Zero(t, c.UsageCount)
	})
}

func TestValidateCoupon_Rejections(t *testing.T) {
	f := newFixture(t)
	f.addCoupon(coupon.Coupon{Code: "SAVE10", DiscountValue: d("10"), MinOrderValue: d("500")})

	tests := []struct {
		name    string
		req     oas.ValidateCouponRequest
		reason  string
		message string
	}{
		{
			name:    "unknown code",
			req:     oas.ValidateCouponRequest{Code: "NOPE", CartValue: 1000, OrderTotal: 1100},
			reason:  "NOT_FOUND",
			message: "invalid coupon code",
		},
		{
			name:    "blank code",
			req:     oas.ValidateCouponRequest{Code: "  ", CartValue: 1000, OrderTotal: 1100},
			reason:  "INVALID_INPUT",
			message: "coupon code, cart value, and order total are required",
		},
		{
			name:    "non-positive",
			req:     oas.ValidateCouponRequest{Code: "SAVE10", CartValue: 0, OrderTotal: 100},
			reason:  "INVALID_INPUT",
			message: "cart value and order total must be greater than 0",
		},
		{
			name:    "below minimum",
			req:     oas.ValidateCouponRequest{Code: "SAVE10", CartValue: 499, OrderTotal: 599},
			reason:  "MIN_ORDER_NOT_MET",
			message: "minimum cart value for this coupon is INR 500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.h.ValidateCoupon(as(customer), &tt.req)
			e := f.apiError(err)
			assert.Equal(t, 400, e.StatusCode)
			assert.Equal(t, tt.reason, e.Response.Reason)
			assert.Equal(t, tt.message, e.Response.Message)
			assert.False(t, e.Response.CouponUnavailable.IsSet())
		})
	}
}

func TestPlaceOrder_WithCoupon(t *testing.T) {
	f := newFixture(t)
	f.addCoupon(coupon.Coupon{Code: "SAVE10", DiscountValue: d("10")})

	req := &oas.PlaceOrderRequest{
		OrderItems: []oas.OrderItemInput{
			{Product: oas.NewOptString("kbd"), Quantity: 2, Price: oas.NewOptFloat64(1)},
		},
		ShippingAddress: shipTo,
		TotalPrice:      oas.NewOptFloat64(1000),
		CouponCode:      oas.NewOptString("save10"),
	}
	o, err := f.h.PlaceOrder(as(customer), req)
	require.NoError(t, err)

	assert.Equal(t, oas.OrderStatusPending, o.Status)
	assert.Equal(t, "SAVE10", o.CouponCode.Value)
	assert.Equal(t, customer.ID, o.UserId)
	assert.Equal(t, 1000.0, o.CartValue)
	assert.Equal(t, 0.0, o.ShippingPrice, "free above 999")
	assert.Equal(t, 100.0, o.DiscountAmount)
	assert.Equal(t, 900.0, o.TotalPrice)
	require.Len(t, o.OrderItems, 1)
	assert.Equal(t, 500.0, o.OrderItems[0].Price, "client price is ignored")
	assert.Equal(t, "Bengaluru", o.ShippingAddress.City)
	assert.False(t, o.ShippingAddress.Phone.IsSet())

	c, _ := f.store.CouponByCode("SAVE10")
	assert.Equal(t, 1, c.UsageCount)

	// Per-user limit of one.
	_, err = f.h.PlaceOrder(as(customer), req)
	e := f.apiError(err)
	assert.Equal(t, "PER_USER_LIMIT_REACHED", e.Response.Reason)
	assert.False(t, e.Response.CouponUnavailable.IsSet())
}

func TestPlaceOrder_LostRace(t *testing.T) {
	f := newFixture(t)
	f.addCoupon(coupon.Coupon{Code: "FLASH", DiscountValue: d("10"), UsageLimit: intPtr(1)})
	f.beforeTx = func() {
		c, _ := f.store.CouponByCode("FLASH")
		c.UsageCount = 1
		f.store.PutCoupon(c)
	}

	_, err := f.h.PlaceOrder(as(customer), &oas.PlaceOrderRequest{
		OrderItems:      []oas.OrderItemInput{{Product: oas.NewOptString("mon"), Quantity: 1}},
		ShippingAddress: shipTo,
		CouponCode:      oas.NewOptString("FLASH"),
	})

	e := f.apiError(err)
	assert.Equal(t, 400, e.StatusCode)
	assert.Equal(t, "USAGE_LIMIT_REACHED", e.Response.Reason)
	assert.Equal(t, "coupon usage limit reached", e.Response.Message)
	assert.Equal(t, oas.NewOptBool(true), e.Response.CouponUnavailable)

	mine, err := f.h.ListMyOrders(as(customer))
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestPlaceOrder_FromCart(t *testing.T) {
	f := newFixture(t)
	ctx := as(customer)

	_, err := f.h.AddCartItem(ctx, &oas.CartItemRequest{ProductId: "mouse", Quantity: oas.NewOptInt(2)})
	require.NoError(t, err)
	c, err := f.h.AddCartItem(ctx, &oas.CartItemRequest{ProductId: "mon"})
	require.NoError(t, err)
	assert.Equal(t, 1699.0, c.CartValue)
	assert.Equal(t, 0.0, c.ShippingCost)

	o, err := f.h.PlaceOrder(ctx, &oas.PlaceOrderRequest{ShippingAddress: shipTo})
	require.NoError(t, err)
	assert.Equal(t, 1699.0, o.TotalPrice)
	assert.True(t, o.CouponCode.IsNull())

	c, err = f.h.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestPlaceOrder_Invalid(t *testing.T) {
	f := newFixture(t)
	noCity := shipTo
	noCity.City = "  "

	tests := []struct {
		name   string
		req    oas.PlaceOrderRequest
		reason string
	}{
		{
			name:   "explicit empty items",
			req:    oas.PlaceOrderRequest{OrderItems: []oas.OrderItemInput{}, ShippingAddress: shipTo},
			reason: "EMPTY_ITEMS",
		},
		{
			name:   "empty cart",
			req:    oas.PlaceOrderRequest{ShippingAddress: shipTo},
			reason: "EMPTY_ITEMS",
		},
		{
			name: "zero quantity",
			req: oas.PlaceOrderRequest{
				OrderItems:      []oas.OrderItemInput{{Product: oas.NewOptString("kbd"), Quantity: 0}},
				ShippingAddress: shipTo,
			},
			reason: "INVALID_QUANTITY",
		},
		{
			name: "quantity over line cap",
			req: oas.PlaceOrderRequest{
				OrderItems:      []oas.OrderItemInput{{Product: oas.NewOptString("kbd"), Quantity: cart.MaxQuantity + 1}},
				ShippingAddress: shipTo,
			},
			reason: "INVALID_QUANTITY",
		},
		{
			name: "unknown product by alias",
			req: oas.PlaceOrderRequest{
				OrderItems:      []oas.OrderItemInput{{ProductId: oas.NewOptString("ghost"), Quantity: 1}},
				ShippingAddress: shipTo,
			},
			reason: "PRODUCT_NOT_FOUND",
		},
		{
			name: "blank city",
			req: oas.PlaceOrderRequest{
				OrderItems:      []oas.OrderItemInput{{Product: oas.NewOptString("kbd"), Quantity: 1}},
				ShippingAddress: noCity,
			},
			reason: "INVALID_ADDRESS",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.h.PlaceOrder(as(customer), &tt.req)
			e := f.apiError(err)
			assert.Equal(t, 400, e.StatusCode)
			assert.Equal(t, tt.reason, e.Response.Reason)
		})
	}
}

func (f *fixture) placeOrder(u user.User) string {
	f.t.Helper()
	o, err := f.h.PlaceOrder(as(u), &oas.PlaceOrderRequest{
		OrderItems:      []oas.OrderItemInput{{Product: oas.NewOptString("kbd"), Quantity: 1}},
		ShippingAddress: shipTo,
	})
	require.NoError(f.t, err)
	return o.ID
}

func TestOrderReads(t *testing.T) {
	f := newFixture(t)
	id := f.placeOrder(customer)
	f.placeOrder(other)

	tests := []struct {
		name   string
		as     user.User
		id     string
		status int
	}{
		{name: "owner", as: customer, id: id},
		{name: "admin", as: admin, id: id},
		{name: "stranger", as: other, id: id, status: 403},
		{name: "unknown", as: customer, id: "missing", status: 404},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := f.h.GetOrder(as(tt.as), oas.GetOrderParams{ID: tt.id})
			if tt.status != 0 {
				assert.Equal(t, tt.status, f.apiError(err).StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, o.ID)
		})
	}

	mine, err := f.h.ListMyOrders(as(customer))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := f.h.ListAllOrders(as(admin))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderStatus(t *testing.T) {
	f := newFixture(t)
	id := f.placeOrder(customer)
	params := oas.UpdateOrderStatusParams{ID: id}
	ctx := as(admin)

	o, err := f.h.UpdateOrderStatus(ctx, &oas.StatusRequest{Status: oas.OrderStatusShipped}, params)
	require.NoError(t, err)
	assert.Equal(t, oas.OrderStatusShipped, o.Status)

	_, err = f.h.UpdateOrderStatus(ctx, &oas.StatusRequest{Status: oas.OrderStatusProcessing}, params)
	assert.Equal(t, "INVALID_TRANSITION", f.apiError(err).Response.Reason)

	_, err = f.h.UpdateOrderStatus(ctx, &oas.StatusRequest{Status: oas.OrderStatus("lost")}, params)
	assert.Equal(t, "INVALID_STATUS", f.apiError(err).Response.Reason)

	_, err = f.h.RequestExchange(as(other), oas.RequestExchangeParams{ID: id})
	assert.Equal(t, 403, f.apiError(err).StatusCode)

	o, err = f.h.RequestExchange(as(customer), oas.RequestExchangeParams{ID: id})
	require.NoError(t, err)
	assert.Equal(t, oas.OrderStatusExchangeRequested, o.Status)

	o, err = f.h.UpdateOrderStatus(ctx, &oas.StatusRequest{Status: oas.OrderStatusExchangeApproved}, params)
	require.NoError(t, err)
	assert.Equal(t, oas.OrderStatusExchangeApproved, o.Status)
}

func TestCouponAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := as(admin)

	c, err := f.h.CreateCoupon(ctx, &oas.CreateCouponRequest{
		Code:                  " vip20 ",
		DiscountType:          oas.DiscountTypePercentage,
		DiscountValue:         20,
		UsageLimit:            oas.NewOptNilInt(0),
		RestrictedToUserEmail: oas.NewOptString("ASHA@example.com"),
	})
	require.NoError(t, err)
	id := c.ID
	assert.Equal(t, "VIP20", c.Code)
	assert.True(t, c.UsageLimit.IsNull())
	assert.True(t, c.ExpiresAt.IsNull())
	assert.True(t, c.IsActive)
	assert.Equal(t, []string{customer.ID}, c.AllowedUsers)

	_, err = f.h.CreateCoupon(ctx, &oas.CreateCouponRequest{Code: "VIP20", DiscountType: oas.DiscountTypeFixed, DiscountValue: 5})
	assert.Equal(t, "CODE_TAKEN", f.apiError(err).Response.Reason)

	_, err = f.h.CreateCoupon(ctx, &oas.CreateCouponRequest{Code: "NEG", DiscountType: oas.DiscountTypeFixed, DiscountValue: -5})
	assert.Equal(t, "INVALID_INPUT", f.apiError(err).Response.Reason)

	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err = f.h.UpdateCoupon(ctx, &oas.UpdateCouponRequest{
		UsageLimit:            oas.NewOptNilInt(10),
		ExpiresAt:             oas.NewOptNilDateTime(expires),
		RestrictedToUserEmail: oas.NewOptString(""),
	}, oas.UpdateCouponParams{ID: id})
	require.NoError(t, err)
	assert.Equal(t, 10, c.UsageLimit.Value)
	assert.True(t, expires.Equal(c.ExpiresAt.Value))
	assert.Empty(t, c.AllowedUsers)
	assert.Equal(t, 20.0, c.DiscountValue, "absent fields are unchanged")

	c, err = f.h.UpdateCoupon(ctx, &oas.UpdateCouponRequest{
		UsageLimit: oas.OptNilInt{Set: true, Null: true},
		ExpiresAt:  oas.OptNilDateTime{Set: true, Null: true},
	}, oas.UpdateCouponParams{ID: id})
	require.NoError(t, err)
	assert.True(t, c.UsageLimit.IsNull())
	assert.True(t, c.ExpiresAt.IsNull())

	list, err := f.h.ListCoupons(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	msg, err := f.h.DeleteCoupon(ctx, oas.DeleteCouponParams{ID: id})
	require.NoError(t, err)
	assert.Equal(t, "Coupon removed", msg.Message)

	_, err = f.h.DeleteCoupon(ctx, oas.DeleteCouponParams{ID: id})
	assert.Equal(t, 404, f.apiError(err).StatusCode)
	_, err = f.h.UpdateCoupon(ctx, &oas.UpdateCouponRequest{IsActive: oas.NewOptBool(false)}, oas.UpdateCouponParams{ID: id})
	assert.Equal(t, 404, f.apiError(err).StatusCode)
}

func TestCouponAdmin_LimitBelowUsage(t *testing.T) {
	f := newFixture(t)
	f.addCoupon(coupon.Coupon{ID: "c-used", Code: "USED", DiscountValue: d("5"), UsageLimit: intPtr(10), UsageCount: 4})
	params := oas.UpdateCouponParams{ID: "c-used"}

	_, err := f.h.UpdateCoupon(as(admin), &oas.UpdateCouponRequest{UsageLimit: oas.NewOptNilInt(3)}, params)
	assert.Equal(t, "LIMIT_BELOW_USAGE", f.apiError(err).Response.Reason)

	c, err := f.h.UpdateCoupon(as(admin), &oas.UpdateCouponRequest{
		UsageLimit:      oas.NewOptNilInt(3),
		ResetUsageCount: oas.NewOptBool(true),
	}, params)
	require.NoError(t, err)
	assert.Zero(t, c.UsageCount)
}

func TestCart(t *testing.T) {
	f := newFixture(t)
	ctx := as(customer)

	_, err := f.h.AddCartItem(ctx, &oas.CartItemRequest{ProductId: "kbd", Quantity: oas.NewOptInt(1)})
	require.NoError(t, err)
	c, err := f.h.AddCartItem(ctx, &oas.CartItemRequest{ProductId: " kbd ", Quantity: oas.NewOptInt(2)})
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 1500.0, c.Items[0].LineTotal)
	assert.Equal(t, 1500.0, c.CartValue)

	c, err = f.h.UpdateCartItem(ctx, &oas.CartQuantityRequest{Quantity: 1}, oas.UpdateCartItemParams{ProductId: "kbd"})
	require.NoError(t, err)
	assert.Equal(t, 500.0, c.CartValue)
	assert.Equal(t, 100.0, c.ShippingCost)
	assert.Equal(t, 600.0, c.OrderTotal)

	tests := []struct {
		name   string
		call   func() error
		status int
		reason string
	}{
		{
			name: "update missing line",
			call: func() error {
				_, err := f.h.UpdateCartItem(ctx, &oas.CartQuantityRequest{Quantity: 1}, oas.UpdateCartItemParams{ProductId: "mouse"})
				return err
			},
			status: 404, reason: "ITEM_NOT_FOUND",
		},
		{
			name: "zero quantity",
			call: func() error {
				_, err := f.h.UpdateCartItem(ctx, &oas.CartQuantityRequest{Quantity: 0}, oas.UpdateCartItemParams{ProductId: "kbd"})
				return err
			},
			status: 400, reason: "INVALID_QUANTITY",
		},
		{
			name: "over line cap",
			call: func() error {
				_, err := f.h.AddCartItem(ctx, &oas.CartItemRequest{ProductId: "kbd", Quantity: oas.NewOptInt(cart.MaxQuantity)})
				return err
			},
			status: 400, reason: "INVALID_QUANTITY",
		},
		{
			name: "unknown product",
			call: func() error {
				_, err := f.h.AddCartItem(ctx, &oas.CartItemRequest{ProductId: "ghost"})
				return err
			},
			status: 404, reason: "PRODUCT_NOT_FOUND",
		},
		{
			name: "blank product id",
			call: func() error {
				_, err := f.h.AddCartItem(ctx, &oas.CartItemRequest{ProductId: "   "})
				return err
			},
			status: 400, reason: "INVALID_INPUT",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := f.apiError(tt.call())
			assert.Equal(t, tt.status, e.StatusCode)
			assert.Equal(t, tt.reason, e.Response.Reason)
		})
	}

	// Carts are per user.
	c, err = f.h.GetCart(as(other))
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	c, err = f.h.RemoveCartItem(ctx, oas.RemoveCartItemParams{ProductId: "kbd"})
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.ShippingCost)

	_, err = f.h.AddCartItem(ctx, &oas.CartItemRequest{ProductId: "mouse"})
	require.NoError(t, err)
	c, err = f.h.ClearCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestOperations_RequireUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.h.GetCart(context.Background())
	assert.Equal(t, 401, f.apiError(err).StatusCode)
}

func TestCheckoutLimit_PerUser(t *testing.T) {
	limiter := httpmiddleware.NewLimiter(httpmiddleware.RateLimitConfig{Max: 1, Window: time.Minute})
	f := newFixture(t, func(deps *handler.Deps) { deps.CheckoutLimit = limiter })
	req := &oas.ValidateCouponRequest{Code: "NOPE", CartValue: 100, OrderTotal: 200}

	_, err := f.h.ValidateCoupon(as(customer), req)
	assert.Equal(t, "NOT_FOUND", f.apiError(err).Response.Reason)

	_, err = f.h.ValidateCoupon(as(customer), req)
	e := f.apiError(err)
	assert.Equal(t, 429, e.StatusCode)
	assert.Equal(t, "RATE_LIMITED", e.Response.Reason)
	retryAfter, ok := e.Response.RetryAfter.Get()
	require.True(t, ok)
	assert.Positive(t, retryAfter)

	// Placing an order spends from the same budget.
	_, err = f.h.PlaceOrder(as(customer), &oas.PlaceOrderRequest{ShippingAddress: shipTo})
	assert.Equal(t, 429, f.apiError(err).StatusCode)

	// Another user has their own budget, and reads are not limited.
	_, err = f.h.ValidateCoupon(as(other), req)
	assert.Equal(t, 400, f.apiError(err).StatusCode)
	_, err = f.h.GetCart(as(customer))
	assert.NoError(t, err)
}
