package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/gen/oas"
	"github.com/xenking/kart-checkout/internal/domain/auth"
	"github.com/xenking/kart-checkout/internal/domain/user"
)

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// adminOperations may only be called by admins.
var adminOperations = map[oas.OperationName]struct{}{
	oas.ListCouponsOperation:       {},
	oas.CreateCouponOperation:      {},
	oas.UpdateCouponOperation:      {},
	oas.DeleteCouponOperation:      {},
	oas.ListAllOrdersOperation:     {},
	oas.UpdateOrderStatusOperation: {},
}

// SecurityHandler authenticates API requests by their bearer JWT.
type SecurityHandler struct {
	tokens *auth.Tokens
	users  user.Directory
}

// NewSecurityHandler creates a SecurityHandler.
func NewSecurityHandler(tokens *auth.Tokens, users user.Directory) *SecurityHandler {
	return &SecurityHandler{tokens: tokens, users: users}
}

// HandleBearerAuth resolves the token to a user and stores it in the context.
// Non-admins calling an admin operation get 403.
func (s *SecurityHandler) HandleBearerAuth(ctx context.Context, operation oas.OperationName, t oas.BearerAuth) (context.Context, error) {
	token := strings.TrimSpace(t.Token)
	if token == "" {
		return ctx, unauthorized("not authorized, no token")
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return ctx, unauthorized("not authorized, token expired")
		}
		return ctx, unauthorized("not authorized, token failed")
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ctx, unauthorized("not authorized, user not found")
		}
		return ctx, errors.Wrap(err, "load user")
	}
	if _, ok := adminOperations[operation]; ok && !u.IsAdmin() {
		return ctx, apiError(http.StatusForbidden, "FORBIDDEN", "not authorized as an admin")
	}

	ctx = user.WithUser(ctx, u)
	return zctx.With(ctx, zap.String("user_id", u.ID)), nil
}
