package coupon

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-checkout/internal/domain/user"
)

// CreateInput holds the fields of a new coupon. Nil pointers take defaults.
type CreateInput struct {
	Code           string
	DiscountType   DiscountType
	DiscountValue  *decimal.Decimal
	MinOrderValue  decimal.Decimal
	ExpiresAt      *time.Time
	UsageLimit     *int
	PerUserLimit   *int
	Active         *bool
	FirstOrderOnly bool
	AllowedUsers   []string
	// RestrictedToEmail adds the account with this email to AllowedUsers.
	RestrictedToEmail string
	Description       string
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Code           *string
	DiscountType   *DiscountType
	DiscountValue  *decimal.Decimal
	MinOrderValue  *decimal.Decimal
	ExpiresAt      *time.Time
	ClearExpiry    bool
	UsageLimit     *int
	PerUserLimit   *int
	Active         *bool
	FirstOrderOnly *bool
	AllowedUsers   *[]string
	// RestrictedToEmail replaces AllowedUsers with the account having this
	// email. An empty string lifts the restriction.
	RestrictedToEmail *string
	Description       *string
	ResetUsageCount   bool
}

// Service implements administrator coupon management.
type Service struct {
	store Store
	users user.Directory
	now   func() time.Time
}

// NewService creates a Service.
func NewService(store Store, users user.Directory) *Service {
	return &Service{store: store, users: users, now: time.Now}
}

// List returns every coupon, newest first.
func (s *Service) List(ctx context.Context) ([]Coupon, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list coupons")
	}
	return list, nil
}

// Create validates and stores a new coupon.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Coupon, error) {
	code := NormalizeCode(in.Code)
	if code == "" || in.DiscountType == "" || in.DiscountValue == nil {
		return nil, &DefinitionError{Msg: "code, discount type and discount value are required"}
	}

	now := s.now()
	c := &Coupon{
		ID:             uuid.New().String(),
		Code:           code,
		DiscountType:   in.DiscountType,
		DiscountValue:  *in.DiscountValue,
		MinOrderValue:  in.MinOrderValue,
		ExpiresAt:      in.ExpiresAt,
		UsageLimit:     normalizeLimit(in.UsageLimit),
		PerUserLimit:   1,
		Active:         true,
		FirstOrderOnly: in.FirstOrderOnly,
		AllowedUsers:   dedupe(in.AllowedUsers),
		Description:    strings.TrimSpace(in.Description),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.PerUserLimit != nil {
		c.PerUserLimit = *in.PerUserLimit
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if in.RestrictedToEmail != "" {
		id, err := s.resolveEmail(ctx, in.RestrictedToEmail)
		if err != nil {
			return nil, err
		}
		c.AllowedUsers = dedupe(append(c.AllowedUsers, id))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, c); err != nil {
		if errors.Is(err, ErrCodeTaken) {
			return nil, ErrCodeTaken
		}
		return nil, errors.Wrap(err, "create coupon")
	}
	return c, nil
}

// Update applies a partial update to the coupon with the given id.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Coupon, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get coupon")
	}

	if in.Code != nil {
		c.Code = NormalizeCode(*in.Code)
	}
	if in.DiscountType != nil {
		c.DiscountType = *in.DiscountType
	}
	if in.DiscountValue != nil {
		c.DiscountValue = *in.DiscountValue
	}
	if in.MinOrderValue != nil {
		c.MinOrderValue = *in.MinOrderValue
	}
	switch {
	case in.ClearExpiry:
		c.ExpiresAt = nil
	case in.ExpiresAt != nil:
		c.ExpiresAt = in.ExpiresAt
	}
	if in.UsageLimit != nil {
		c.UsageLimit = normalizeLimit(in.UsageLimit)
	}
	if in.PerUserLimit != nil {
		c.PerUserLimit = *in.PerUserLimit
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if in.FirstOrderOnly != nil {
		c.FirstOrderOnly = *in.FirstOrderOnly
	}
	if in.AllowedUsers != nil {
		c.AllowedUsers = dedupe(*in.AllowedUsers)
	}
	if in.RestrictedToEmail != nil {
		c.AllowedUsers = nil
		if email := strings.TrimSpace(*in.RestrictedToEmail); email != "" {
			uid, err := s.resolveEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			c.AllowedUsers = []string{uid}
		}
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if in.ResetUsageCount {
		c.UsageCount = 0
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !in.ResetUsageCount && !c.Unlimited() && *c.UsageLimit < c.UsageCount {
		return nil, ErrLimitBelowUsage
	}
	c.UpdatedAt = s.now()

	if err := s.store.Update(ctx, c, in.ResetUsageCount); err != nil {
		switch {
		case errors.Is(err, ErrCodeTaken):
			return nil, ErrCodeTaken
		case errors.Is(err, ErrLimitBelowUsage):
			return nil, ErrLimitBelowUsage
		case errors.Is(err, ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "update coupon")
	}
	return c, nil
}

// Delete removes a coupon permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(err, "delete coupon")
	}
	return nil
}

func (s *Service) resolveEmail(ctx context.Context, email string) (string, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", &DefinitionError{Msg: "no user with email " + email}
		}
		return "", errors.Wrap(err, "find user by email")
	}
	return u.ID, nil
}

// Validate checks the admin-editable fields of c.
func (c *Coupon) Validate() error {
	switch {
	case c.Code == "":
		return &DefinitionError{Msg: "code is required"}
	case !c.DiscountType.Valid():
		return &DefinitionError{Msg: "discount type must be percentage or fixed"}
	case c.DiscountValue.IsNegative():
		return &DefinitionError{Msg: "discount value must be non-negative"}
	case c.MinOrderValue.IsNegative():
		return &DefinitionError{Msg: "minimum order value must be non-negative"}
	case c.PerUserLimit < 1:
		return &DefinitionError{Msg: "per-user limit must be at least 1"}
	}
	return nil
}

// normalizeLimit maps zero and negative limits to unlimited.
func normalizeLimit(limit *int) *int {
	if limit == nil || *limit <= 0 {
		return nil
	}
	v := *limit
	return &v
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
