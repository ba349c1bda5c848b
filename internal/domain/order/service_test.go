package order

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/kart-checkout/internal/domain/user"
)

// --- Mock implementations ---

type mockOrderRepo struct {
	byID      map[string]*Order
	getErr    error
	updateErr error
	updates   int
}

func (m *mockOrderRepo) Get(_ context.Context, id string) (*Order, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]Order, error) {
	var out []Order
	for _, o := range m.byID {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListAll(_ context.Context) ([]Order, error) {
	out := make([]Order, 0, len(m.byID))
	for _, o := range m.byID {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id string, from, to Status, at time.Time) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	o, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	if o.Status != from {
		return ErrStatusConflict
	}
	m.updates++
	o.Status = to
	o.UpdatedAt = at
	return nil
}

// --- Helpers ---

var (
	testNow  = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	customer = &user.User{ID: "u1", Role: user.RoleCustomer}
	stranger = &user.User{ID: "u2", Role: user.RoleCustomer}
	admin    = &user.User{ID: "a1", Role: user.RoleAdmin}
)

func newRepo(orders ...Order) *mockOrderRepo {
	m := &mockOrderRepo{byID: make(map[string]*Order, len(orders))}
	for i := range orders {
		m.byID[orders[i].ID] = &orders[i]
	}
	return m
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, 0)
	svc.now = func() time.Time { return testNow }
	return svc
}

func placed(id string, status Status, age time.Duration) Order {
	return Order{
		ID:        id,
		UserID:    customer.ID,
		Status:    status,
		CreatedAt: testNow.Add(-age),
		UpdatedAt: testNow.Add(-age),
	}
}

// --- Tests ---

func TestService_Get(t *testing.T) {
	svc := newTestService(newRepo(placed("o1", StatusPending, time.Hour)))
	ctx := context.Background()

	o, err := svc.Get(ctx, customer, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)

	_, err = svc.Get(ctx, admin, "o1")
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger, "o1")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(ctx, customer, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Get_StoreError(t *testing.T) {
	repo := newRepo()
	repo.getErr = errors.New("connection reset")
	svc := newTestService(repo)

	_, err := svc.Get(context.Background(), customer, "o1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr error
	}{
		{name: "pending to processing", from: StatusPending, to: StatusProcessing},
		{name: "processing to shipped", from: StatusProcessing, to: StatusShipped},
		{name: "shipped to delivered", from: StatusShipped, to: StatusDelivered},
		{name: "approve exchange", from: StatusExchangeRequested, to: StatusExchangeApproved},
		{name: "complete exchange", from: StatusExchangeApproved, to: StatusExchanged},
		{name: "unknown status", from: StatusPending, to: Status("lost"), wantErr: ErrInvalidStatus},
		{name: "cancel shipped", from: StatusShipped, to: StatusCancelled, wantErr: ErrInvalidTransition},
		{name: "reopen delivered", from: StatusDelivered, to: StatusPending, wantErr: ErrInvalidTransition},
		{name: "admin cannot request exchange", from: StatusShipped, to: StatusExchangeRequested, wantErr: ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(placed("o1", tt.from, time.Hour))
			svc := newTestService(repo)

			o, err := svc.UpdateStatus(context.Background(), "o1", tt.to)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.updates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, o.Status)
			assert.Equal(t, testNow, o.UpdatedAt)
			assert.Equal(t, tt.to, repo.byID["o1"].Status)
		})
	}
}

func TestService_UpdateStatus_Conflict(t *testing.T) {
	repo := newRepo(placed("o1", StatusPending, time.Hour))
	repo.updateErr = ErrStatusConflict
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), "o1", StatusProcessing)
	require.ErrorIs(t, err, ErrStatusConflict)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(newRepo())

	_, err := svc.UpdateStatus(context.Background(), "o1", StatusProcessing)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_RequestExchange(t *testing.T) {
	tests := []struct {
		name      string
		status    Status
		age       time.Duration
		requester *user.User
		wantErr   error
	}{
		{name: "pending", status: StatusPending, age: time.Hour, requester: customer},
		{name: "shipped", status: StatusShipped, age: 71 * time.Hour, requester: customer},
		{name: "window edge", status: StatusShipped, age: 72 * time.Hour, requester: customer},
		{name: "window closed", status: StatusShipped, age: 72*time.Hour + time.Second, requester: customer, wantErr: ErrExchangeWindowClosed},
		{name: "delivered", status: StatusDelivered, age: time.Hour, requester: customer, wantErr: ErrInvalidTransition},
		{name: "already requested", status: StatusExchangeRequested, age: time.Hour, requester: customer, wantErr: ErrInvalidTransition},
		{name: "not owner", status: StatusPending, age: time.Hour, requester: stranger, wantErr: ErrForbidden},
		{name: "admin is not owner", status: StatusPending, age: time.Hour, requester: admin, wantErr: ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(placed("o1", tt.status, tt.age))
			svc := newTestService(repo)

			o, err := svc.RequestExchange(context.Background(), tt.requester, "o1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.status, repo.byID["o1"].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusExchangeRequested, o.Status)
		})
	}
}

func TestService_ListMine(t *testing.T) {
	other := placed("o2", StatusPending, time.Hour)
	other.UserID = stranger.ID
	svc := newTestService(newRepo(placed("o1", StatusPending, time.Hour), other))

	list, err := svc.ListMine(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "o1", list[0].ID)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
