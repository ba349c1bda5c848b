// Package memory is an in-process implementation of every storage port. It
// runs each transaction under one mutex against a copy of the state, so it
// is only suitable for tests and single-process demos.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
	"github.com/xenking/kart-checkout/internal/domain/product"
	"github.com/xenking/kart-checkout/internal/domain/user"
)

var (
	_ order.UnitOfWork = (*Store)(nil)
	_ order.Tx         = (*txView)(nil)
)

// Store holds all state in memory. Each port is exposed through an accessor
// such as Catalog or Coupons.
type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time

	// FailCreate, when set, makes order inserts fail. Tests use it to check
	// that redemptions roll back with the order.
	FailCreate error
}

// New returns an empty Store.
func New() *Store {
	return &Store{st: newState(), now: time.Now}
}

type state struct {
	products map[string]product.Product
	users    map[string]user.User
	coupons  map[string]coupon.Coupon
	carts    map[string][]cart.Line
	orders   []order.Order
}

func newState() *state {
	return &state{
		products: map[string]product.Product{},
		users:    map[string]user.User{},
		coupons:  map[string]coupon.Coupon{},
		carts:    map[string][]cart.Line{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.coupons {
		v.AllowedUsers = slices.Clone(v.AllowedUsers)
		c.coupons[k] = v
	}
	for k, v := range s.carts {
		c.carts[k] = slices.Clone(v)
	}
	c.orders = slices.Clone(s.orders)
	return c
}

// PutProduct adds or replaces a catalog product.
func (s *Store) PutProduct(p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[p.ID] = p
}

// DeleteProduct removes a catalog product.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.st.products, id)
}

// PutUser adds or replaces a user.
func (s *Store) PutUser(u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID] = u
}

// PutCoupon adds or replaces a coupon without uniqueness checks.
func (s *Store) PutCoupon(c coupon.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.coupons[c.ID] = c
}

// PutOrder stores an order without any checks.
func (s *Store) PutOrder(o order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.orders = append(s.st.orders, o)
}

// CouponByCode returns a copy of the coupon with code, for assertions.
func (s *Store) CouponByCode(code string) (coupon.Coupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.st.findCoupon(code)
	if err != nil {
		return coupon.Coupon{}, false
	}
	return *c, true
}

// Within runs fn against a private copy of the state and publishes the copy
// only if fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx order.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &txView{st: work, failCreate: s.FailCreate}); err != nil {
		return err
	}
	s.st = work
	return nil
}

type txView struct {
	st         *state
	failCreate error
}

func (t *txView) Orders() order.Writer         { return txOrders{t} }
func (t *txView) Coupons() coupon.Repository   { return txCoupons{t.st} }
func (t *txView) Counters() coupon.Counters    { return txCoupons{t.st} }
func (t *txView) History() coupon.OrderHistory { return txHistory{t.st} }
func (t *txView) Carts() cart.Store            { return txCarts{t.st} }

type txOrders struct{ t *txView }

func (o txOrders) Create(_ context.Context, ord *order.Order) error {
	if o.t.failCreate != nil {
		return o.t.failCreate
	}
	cp := *ord
	cp.Items = slices.Clone(ord.Items)
	o.t.st.orders = append(o.t.st.orders, cp)
	return nil
}

type txCoupons struct{ st *state }

func (c txCoupons) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	return c.st.findCoupon(code)
}

func (c txCoupons) LockRedeemer(context.Context, string, string) error { return nil }

func (c txCoupons) Increment(_ context.Context, code string) error {
	return c.st.increment(code)
}

type txHistory struct{ st *state }

func (h txHistory) CountOrders(_ context.Context, userID string) (int, error) {
	return h.st.countOrders(userID, ""), nil
}

func (h txHistory) CountCouponOrders(_ context.Context, userID, code string) (int, error) {
	return h.st.countOrders(userID, code), nil
}

type txCarts struct{ st *state }

func (c txCarts) AddItem(_ context.Context, userID, productID string, quantity int) error {
	return c.st.addItem(userID, productID, quantity, time.Now())
}

func (c txCarts) SetQuantity(_ context.Context, userID, productID string, quantity int) error {
	return c.st.setQuantity(userID, productID, quantity)
}

func (c txCarts) RemoveItem(_ context.Context, userID, productID string) error {
	c.st.removeItem(userID, productID)
	return nil
}

func (c txCarts) Lines(_ context.Context, userID string) ([]cart.Line, error) {
	return slices.Clone(c.st.carts[userID]), nil
}

func (c txCarts) Clear(_ context.Context, userID string) error {
	delete(c.st.carts, userID)
	return nil
}

func (s *state) findCoupon(code string) (*coupon.Coupon, error) {
	for _, c := range s.coupons {
		if c.Code == code {
			c.AllowedUsers = slices.Clone(c.AllowedUsers)
			return &c, nil
		}
	}
	return nil, coupon.ErrNotFound
}

func (s *state) increment(code string) error {
	for id, c := range s.coupons {
		if c.Code != code {
			continue
		}
		if !c.Unlimited() && c.UsageCount >= *c.UsageLimit {
			return coupon.ErrUsageLimitReached
		}
		c.UsageCount++
		s.coupons[id] = c
		return nil
	}
	return coupon.ErrNotFound
}

func (s *state) countOrders(userID, code string) int {
	n := 0
	for _, o := range s.orders {
		if o.UserID == userID && (code == "" || o.CouponCode == code) {
			n++
		}
	}
	return n
}

func (s *state) addItem(userID, productID string, quantity int, at time.Time) error {
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			if lines[i].Quantity+quantity > cart.MaxQuantity {
				return cart.ErrInvalidQuantity
			}
			lines[i].Quantity += quantity
			return nil
		}
	}
	if quantity > cart.MaxQuantity {
		return cart.ErrInvalidQuantity
	}
	s.carts[userID] = append(lines, cart.Line{ProductID: productID, Quantity: quantity, AddedAt: at})
	return nil
}

func (s *state) setQuantity(userID, productID string, quantity int) error {
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return nil
		}
	}
	return cart.ErrItemNotFound
}

func (s *state) removeItem(userID, productID string) {
	s.carts[userID] = slices.DeleteFunc(s.carts[userID], func(l cart.Line) bool {
		return l.ProductID == productID
	})
}

func newestFirst(orders []order.Order) []order.Order {
	out := slices.Clone(orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
