package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/kart-checkout/internal/domain/user"
)

// --- Mock implementations ---

type mockStore struct {
	byID      map[string]*Coupon
	lastReset bool
}

func newMockStore(coupons ...*Coupon) *mockStore {
	s := &mockStore{byID: map[string]*Coupon{}}
	for _, c := range coupons {
		s.byID[c.ID] = c
	}
	return s
}

func (m *mockStore) FindByCode(_ context.Context, code string) (*Coupon, error) {
	for _, c := range m.byID {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockStore) List(_ context.Context) ([]Coupon, error) {
	out := make([]Coupon, 0, len(m.byID))
	for _, c := range m.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockStore) Get(_ context.Context, id string) (*Coupon, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockStore) Create(_ context.Context, c *Coupon) error {
	for _, existing := range m.byID {
		if existing.Code == c.Code {
			return ErrCodeTaken
		}
	}
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *mockStore) Update(_ context.Context, c *Coupon, resetUsage bool) error {
	for id, existing := range m.byID {
		if existing.Code == c.Code && id != c.ID {
			return ErrCodeTaken
		}
	}
	if _, ok := m.byID[c.ID]; !ok {
		return ErrNotFound
	}
	m.lastReset = resetUsage
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *mockStore) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type mockDirectory struct {
	users []user.User
}

func (m *mockDirectory) Get(_ context.Context, id string) (*user.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i], nil
		}
	}
	return nil, user.ErrNotFound
}

func (m *mockDirectory) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, user.ErrNotFound
}

// --- Helpers ---

func decPtr(v string) *decimal.Decimal {
	x := d(v)
	return &x
}

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func newTestService(store *mockStore) *Service {
	s := NewService(store, &mockDirectory{users: []user.User{
		{ID: "u-alice", Email: "alice@example.com", Role: user.RoleCustomer},
	}})
	s.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

// --- Tests ---

func TestService_CreateDefaults(t *testing.T) {
	store := newMockStore()
	s := newTestService(store)

	c, err := s.Create(context.Background(), CreateInput{
		Code:          " welcome ",
		DiscountType:  DiscountFixed,
		DiscountValue: decPtr("100"),
		UsageLimit:    intPtr(0),
	})

	require.NoError(t, err)
	assert.Equal(t, "WELCOME", c.Code)
	assert.True(t, c.Active)
	assert.Equal(t, 1, c.PerUserLimit)
	assert.Nil(t, c.UsageLimit)
	assert.Empty(t, c.AllowedUsers)
	assert.NotEmpty(t, c.ID)
	assert.Len(t, store.byID, 1)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateInput
		wantErr error
	}{
		{
			name:    "missing code",
			in:      CreateInput{DiscountType: DiscountFixed, DiscountValue: decPtr("1")},
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "missing value",
			in:      CreateInput{Code: "X", DiscountType: DiscountFixed},
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "unknown type",
			in:      CreateInput{Code: "X", DiscountType: "bogo", DiscountValue: decPtr("1")},
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "negative value",
			in:      CreateInput{Code: "X", DiscountType: DiscountFixed, DiscountValue: decPtr("-1")},
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "per-user limit zero",
			in:      CreateInput{Code: "X", DiscountType: DiscountFixed, DiscountValue: decPtr("1"), PerUserLimit: intPtr(0)},
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "unknown restricted email",
			in:      CreateInput{Code: "X", DiscountType: DiscountFixed, DiscountValue: decPtr("1"), RestrictedToEmail: "bob@example.com"},
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "duplicate code",
			in:      CreateInput{Code: "save10", DiscountType: DiscountFixed, DiscountValue: decPtr("1")},
			wantErr: ErrCodeTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(newMockStore(baseCoupon()))
			_, err := s.Create(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CreateRestrictedToEmail(t *testing.T) {
	s := newTestService(newMockStore())

	c, err := s.Create(context.Background(), CreateInput{
		Code:              "VIP",
		DiscountType:      DiscountPercentage,
		DiscountValue:     decPtr("20"),
		RestrictedToEmail: "Alice@Example.com",
		Active:            boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"u-alice"}, c.AllowedUsers)
	assert.False(t, c.Active)
}

func TestService_Update(t *testing.T) {
	existing := baseCoupon()
	existing.UsageLimit = intPtr(10)
	existing.UsageCount = 7
	store := newMockStore(existing)
	s := newTestService(store)

	c, err := s.Update(context.Background(), "c1", UpdateInput{
		Description:     strPtr("ten percent"),
		ResetUsageCount: true,
		UsageLimit:      intPtr(5),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, c.UsageCount)
	assert.Equal(t, 5, *c.UsageLimit)
	assert.Equal(t, "ten percent", c.Description)
	assert.True(t, store.lastReset)
}

func TestService_UpdateErrors(t *testing.T) {
	other := baseCoupon()
	other.ID = "c2"
	other.Code = "OTHER"

	tests := []struct {
		name    string
		id      string
		in      UpdateInput
		wantErr error
	}{
		{
			name:    "unknown id",
			id:      "missing",
			in:      UpdateInput{Active: boolPtr(false)},
			wantErr: ErrNotFound,
		},
		{
			name:    "rename onto existing code",
			id:      "c1",
			in:      UpdateInput{Code: strPtr("other")},
			wantErr: ErrCodeTaken,
		},
		{
			name:    "limit below usage",
			id:      "c1",
			in:      UpdateInput{UsageLimit: intPtr(2)},
			wantErr: ErrLimitBelowUsage,
		},
		{
			name:    "invalid type",
			id:      "c1",
			in:      UpdateInput{DiscountType: func() *DiscountType { v := DiscountType("x"); return &v }()},
			wantErr: ErrInvalidDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := baseCoupon()
			c.UsageCount = 3
			o := *other
			s := newTestService(newMockStore(c, &o))

			_, err := s.Update(context.Background(), tt.id, tt.in)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpdateClearsRestrictionAndExpiry(t *testing.T) {
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	c := baseCoupon()
	c.AllowedUsers = []string{"u-alice"}
	c.ExpiresAt = &expiry
	s := newTestService(newMockStore(c))

	got, err := s.Update(context.Background(), "c1", UpdateInput{
		RestrictedToEmail: strPtr(""),
		ClearExpiry:       true,
	})

	require.NoError(t, err)
	assert.Empty(t, got.AllowedUsers)
	assert.Nil(t, got.ExpiresAt)
}

func TestService_Delete(t *testing.T) {
	store := newMockStore(baseCoupon())
	s := newTestService(store)

	require.NoError(t, s.Delete(context.Background(), "c1"))
	assert.Empty(t, store.byID)
	require.ErrorIs(t, s.Delete(context.Background(), "c1"), ErrNotFound)
}
