package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
	"github.com/xenking/kart-checkout/internal/domain/product"
	"github.com/xenking/kart-checkout/internal/domain/user"
)

// Catalog returns the product port.
func (s *Store) Catalog() product.Catalog { return catalog{s} }

type catalog struct{ s *Store }

func (c catalog) List(_ context.Context) ([]product.Product, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	out := make([]product.Product, 0, len(c.s.st.products))
	for _, p := range c.s.st.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c catalog) GetByID(_ context.Context, id string) (*product.Product, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	p, ok := c.s.st.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (c catalog) GetByIDs(_ context.Context, ids []string) ([]product.Product, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	out := make([]product.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.s.st.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Users returns the user directory port.
func (s *Store) Users() user.Directory { return directory{s} }

type directory struct{ s *Store }

func (d directory) Get(_ context.Context, id string) (*user.User, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	u, ok := d.s.st.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (d directory) FindByEmail(_ context.Context, email string) (*user.User, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	for _, u := range d.s.st.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

// Carts returns the cart port.
func (s *Store) Carts() cart.Store { return lockedCarts{s} }

type lockedCarts struct{ s *Store }

func (c lockedCarts) AddItem(_ context.Context, userID, productID string, quantity int) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.st.addItem(userID, productID, quantity, c.s.now())
}

func (c lockedCarts) SetQuantity(_ context.Context, userID, productID string, quantity int) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.st.setQuantity(userID, productID, quantity)
}

func (c lockedCarts) RemoveItem(_ context.Context, userID, productID string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.st.removeItem(userID, productID)
	return nil
}

func (c lockedCarts) Lines(_ context.Context, userID string) ([]cart.Line, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return slices.Clone(c.s.st.carts[userID]), nil
}

func (c lockedCarts) Clear(_ context.Context, userID string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	delete(c.s.st.carts, userID)
	return nil
}

// Coupons returns the coupon admin port.
func (s *Store) Coupons() coupon.Store { return lockedCoupons{s} }

type lockedCoupons struct{ s *Store }

func (c lockedCoupons) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.st.findCoupon(code)
}

func (c lockedCoupons) List(_ context.Context) ([]coupon.Coupon, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	out := make([]coupon.Coupon, 0, len(c.s.st.coupons))
	for _, cp := range c.s.st.coupons {
		cp.AllowedUsers = slices.Clone(cp.AllowedUsers)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (c lockedCoupons) Get(_ context.Context, id string) (*coupon.Coupon, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	cp, ok := c.s.st.coupons[id]
	if !ok {
		return nil, coupon.ErrNotFound
	}
	cp.AllowedUsers = slices.Clone(cp.AllowedUsers)
	return &cp, nil
}

func (c lockedCoupons) Create(_ context.Context, cp *coupon.Coupon) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, err := c.s.st.findCoupon(cp.Code); err == nil {
		return coupon.ErrCodeTaken
	}
	stored := *cp
	stored.AllowedUsers = slices.Clone(cp.AllowedUsers)
	c.s.st.coupons[cp.ID] = stored
	return nil
}

func (c lockedCoupons) Update(_ context.Context, cp *coupon.Coupon, resetUsage bool) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	cur, ok := c.s.st.coupons[cp.ID]
	if !ok {
		return coupon.ErrNotFound
	}
	if other, err := c.s.st.findCoupon(cp.Code); err == nil && other.ID != cp.ID {
		return coupon.ErrCodeTaken
	}
	usage := cur.UsageCount
	if resetUsage {
		usage = 0
	}
	if !cp.Unlimited() && *cp.UsageLimit < usage {
		return coupon.ErrLimitBelowUsage
	}
	stored := *cp
	stored.AllowedUsers = slices.Clone(cp.AllowedUsers)
	stored.UsageCount = usage
	stored.CreatedAt = cur.CreatedAt
	c.s.st.coupons[cp.ID] = stored
	cp.UsageCount = usage
	return nil
}

func (c lockedCoupons) Delete(_ context.Context, id string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.st.coupons[id]; !ok {
		return coupon.ErrNotFound
	}
	delete(c.s.st.coupons, id)
	return nil
}

// History returns the order history port.
func (s *Store) History() coupon.OrderHistory { return history{s} }

type history struct{ s *Store }

func (h history) CountOrders(_ context.Context, userID string) (int, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.s.st.countOrders(userID, ""), nil
}

func (h history) CountCouponOrders(_ context.Context, userID, code string) (int, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.s.st.countOrders(userID, code), nil
}

// Orders returns the order read port.
func (s *Store) Orders() order.Repository { return orders{s} }

type orders struct{ s *Store }

func (r orders) Get(_ context.Context, id string) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, o := range r.s.st.orders {
		if o.ID == id {
			o.Items = slices.Clone(o.Items)
			return &o, nil
		}
	}
	return nil, order.ErrNotFound
}

func (r orders) ListByUser(_ context.Context, userID string) ([]order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var mine []order.Order
	for _, o := range r.s.st.orders {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	return newestFirst(mine), nil
}

func (r orders) ListAll(_ context.Context) ([]order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.st.orders), nil
}

func (r orders) UpdateStatus(_ context.Context, id string, from, to order.Status, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.st.orders {
		o := &r.s.st.orders[i]
		if o.ID != id {
			continue
		}
		if o.Status != from {
			return order.ErrStatusConflict
		}
		o.Status = to
		o.UpdatedAt = at
		return nil
	}
	return order.ErrNotFound
}
