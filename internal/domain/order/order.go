package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
)

// Sentinel errors for order operations.
var (
	ErrNotFound             = errors.New("order not found")
	ErrEmptyItems           = errors.New("no order items")
	ErrInvalidQuantity      = errors.New("quantity must be between 1 and 10000")
	ErrForbidden            = errors.New("not authorized to view this order")
	ErrStatusConflict       = errors.New("order status was changed by another request")
	ErrExchangeWindowClosed = errors.New("exchange window has closed")
)

// ProductNotFoundError indicates a requested product does not exist.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// AddressError reports a missing shipping address field.
type AddressError struct {
	Field string
}

func (e *AddressError) Error() string {
	return "shipping address " + e.Field + " is required"
}

// LineItem is a purchased product with its price at the time of purchase.
// It is stored as JSON and never changes after the order is created.
type LineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Total is UnitPrice × Quantity.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Address is the delivery address of an order.
type Address struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// Validate checks that the mandatory fields are present.
func (a Address) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"address", a.Address},
		{"city", a.City},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &AddressError{Field: f.name}
		}
	}
	return nil
}

// Order is an immutable purchase snapshot. Only Status and UpdatedAt change
// after creation.
type Order struct {
	ID              string
	UserID          string
	Items           []LineItem
	ShippingAddress Address
	CartValue       decimal.Decimal
	ShippingCost    decimal.Decimal
	DiscountAmount  decimal.Decimal
	TotalPrice      decimal.Decimal
	// CouponCode is empty when no coupon was redeemed.
	CouponCode string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Repository reads orders and changes their status.
type Repository interface {
	Get(ctx context.Context, id string) (*Order, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]Order, error)
	// UpdateStatus moves the order from one status to another. It returns
	// ErrStatusConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id string, from, to Status, at time.Time) error
}

// Writer inserts orders inside a transaction.
type Writer interface {
	Create(ctx context.Context, o *Order) error
}

// Tx exposes the transaction-scoped ports used while placing an order.
type Tx interface {
	Orders() Writer
	Coupons() coupon.Repository
	Counters() coupon.Counters
	History() coupon.OrderHistory
	Carts() cart.Store
}

// UnitOfWork runs fn in a single transaction. A nil return commits; any
// error rolls back every write fn made.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
