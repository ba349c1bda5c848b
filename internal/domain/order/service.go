package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"

	"github.com/xenking/kart-checkout/internal/domain/user"
)

// DefaultExchangeWindow is how long after purchase a customer may ask for
// an exchange.
const DefaultExchangeWindow = 72 * time.Hour

// Service serves order reads and status changes.
type Service struct {
	orders         Repository
	exchangeWindow time.Duration
	now            func() time.Time
}

// NewService creates a Service. A non-positive window uses DefaultExchangeWindow.
func NewService(orders Repository, exchangeWindow time.Duration) *Service {
	if exchangeWindow <= 0 {
		exchangeWindow = DefaultExchangeWindow
	}
	return &Service{orders: orders, exchangeWindow: exchangeWindow, now: time.Now}
}

// Get returns an order visible to the requester: its owner or an admin.
func (s *Service) Get(ctx context.Context, requester *user.User, id string) (*Order, error) {
	o, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != requester.ID && !requester.IsAdmin() {
		return nil, ErrForbidden
	}
	return o, nil
}

// ListMine returns the requester's orders, newest first.
func (s *Service) ListMine(ctx context.Context, userID string) ([]Order, error) {
	list, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list user orders")
	}
	return list, nil
}

// ListAll returns every order, newest first. Callers must check the admin role.
func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	list, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return list, nil
}

// UpdateStatus applies an administrator status change.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status) (*Order, error) {
	if !to.Valid() {
		return nil, ErrInvalidStatus
	}
	o, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, o, to, ActorAdmin)
}

// RequestExchange moves the requester's order to exchange_requested while
// the exchange window is open.
func (s *Service) RequestExchange(ctx context.Context, requester *user.User, id string) (*Order, error) {
	o, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != requester.ID {
		return nil, ErrForbidden
	}
	if s.now().Sub(o.CreatedAt) > s.exchangeWindow {
		return nil, ErrExchangeWindowClosed
	}
	return s.transition(ctx, o, StatusExchangeRequested, ActorCustomer)
}

func (s *Service) transition(ctx context.Context, o *Order, to Status, actor Actor) (*Order, error) {
	if !CanTransition(o.Status, to, actor) {
		return nil, &TransitionError{From: o.Status, To: to}
	}
	now := s.now()
	if err := s.orders.UpdateStatus(ctx, o.ID, o.Status, to, now); err != nil {
		if errors.Is(err, ErrStatusConflict) {
			return nil, ErrStatusConflict
		}
		return nil, errors.Wrap(err, "update status")
	}
	o.Status = to
	o.UpdatedAt = now
	return o, nil
}

func (s *Service) get(ctx context.Context, id string) (*Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get order")
	}
	return o, nil
}
