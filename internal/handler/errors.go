package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/gen/oas"
	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
)

func apiError(status int, reason, message string) *oas.ErrorStatusCode {
	return &oas.ErrorStatusCode{
		StatusCode: status,
		Response: oas.Error{
			Code:    status,
			Message: message,
			Reason:  reason,
		},
	}
}

func badRequest(reason, message string) *oas.ErrorStatusCode {
	return apiError(http.StatusBadRequest, reason, message)
}

func unauthorized(message string) *oas.ErrorStatusCode {
	return apiError(http.StatusUnauthorized, "UNAUTHORIZED", message)
}

// NewError converts an error returned by an operation or by HandleBearerAuth
// into the API error body. Unexpected errors are logged and reported as 500.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	return errorResponse(ctx, err)
}

// ErrorHandler writes errors the server raises before an operation runs,
// such as bodies or parameters that fail to decode.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, errorResponse(ctx, err))
}

// NotFound answers paths that match no operation.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, apiError(http.StatusNotFound, "NOT_FOUND", "route not found"))
}

// MethodNotAllowed answers known paths called with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, apiError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed"))
}

func writeError(w http.ResponseWriter, e *oas.ErrorStatusCode) {
	enc := jx.GetEncoder()
	defer jx.PutEncoder(enc)

	e.Response.Encode(enc)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.StatusCode)
	_, _ = w.Write(enc.Bytes())
}

func errorResponse(ctx context.Context, err error) *oas.ErrorStatusCode {
	if e := mapError(err); e != nil {
		return e
	}
	zctx.From(ctx).Error("Request failed", zap.Error(err))
	return apiError(http.StatusInternalServerError, "INTERNAL", "internal server error")
}

// mapError translates server and domain failures into API errors. It
// returns nil for errors that should surface as 500.
func mapError(err error) *oas.ErrorStatusCode {
	var (
		status    *oas.ErrorStatusCode
		reqErr    *ogenerrors.DecodeRequestError
		paramsErr *ogenerrors.DecodeParamsError
	)
	switch {
	case errors.As(err, &status):
		return status
	case errors.Is(err, ogenerrors.ErrSecurityRequirementIsNotSatisfied):
		return unauthorized("not authorized, no token")
	case errors.As(err, &reqErr):
		return badRequest("INVALID_BODY", "invalid request body: "+reqErr.Err.Error())
	case errors.As(err, &paramsErr):
		return badRequest("INVALID_BODY", "invalid parameters: "+paramsErr.Err.Error())
	}
	if e := mapCouponError(err); e != nil {
		return e
	}
	if e := mapOrderError(err); e != nil {
		return e
	}
	return mapCartError(err)
}

func mapCouponError(err error) *oas.ErrorStatusCode {
	if reason := coupon.Reason(err); reason != "" {
		e := badRequest(reason, coupon.Message(err))
		if coupon.IsLostRace(err) {
			// The coupon passed validation but a concurrent checkout took
			// the last redemption.
			e.Response.CouponUnavailable = oas.NewOptBool(true)
		}
		return e
	}
	var de *coupon.DefinitionError
	switch {
	case errors.As(err, &de):
		return badRequest("INVALID_INPUT", de.Msg)
	case errors.Is(err, coupon.ErrCodeTaken):
		return badRequest("CODE_TAKEN", coupon.ErrCodeTaken.Error())
	case errors.Is(err, coupon.ErrLimitBelowUsage):
		return badRequest("LIMIT_BELOW_USAGE", coupon.ErrLimitBelowUsage.Error())
	}
	return nil
}

func mapOrderError(err error) *oas.ErrorStatusCode {
	var (
		pnf *order.ProductNotFoundError
		ae  *order.AddressError
		te  *order.TransitionError
	)
	switch {
	case errors.Is(err, order.ErrNotFound):
		return apiError(http.StatusNotFound, "NOT_FOUND", order.ErrNotFound.Error())
	case errors.Is(err, order.ErrForbidden):
		return apiError(http.StatusForbidden, "FORBIDDEN", order.ErrForbidden.Error())
	case errors.Is(err, order.ErrStatusConflict):
		return apiError(http.StatusConflict, "STATUS_CONFLICT", order.ErrStatusConflict.Error())
	case errors.Is(err, order.ErrEmptyItems):
		return badRequest("EMPTY_ITEMS", order.ErrEmptyItems.Error())
	case errors.Is(err, order.ErrInvalidQuantity):
		return badRequest("INVALID_QUANTITY", order.ErrInvalidQuantity.Error())
	case errors.Is(err, order.ErrInvalidStatus):
		return badRequest("INVALID_STATUS", order.ErrInvalidStatus.Error())
	case errors.Is(err, order.ErrExchangeWindowClosed):
		return badRequest("EXCHANGE_WINDOW_CLOSED", order.ErrExchangeWindowClosed.Error())
	case errors.As(err, &te):
		return badRequest("INVALID_TRANSITION", te.Error())
	case errors.As(err, &pnf):
		return badRequest("PRODUCT_NOT_FOUND", pnf.Error())
	case errors.As(err, &ae):
		return badRequest("INVALID_ADDRESS", ae.Error())
	}
	return nil
}

func mapCartError(err error) *oas.ErrorStatusCode {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		return badRequest("INVALID_QUANTITY", cart.ErrInvalidQuantity.Error())
	case errors.Is(err, cart.ErrUnknownProduct):
		return apiError(http.StatusNotFound, "PRODUCT_NOT_FOUND", cart.ErrUnknownProduct.Error())
	case errors.Is(err, cart.ErrItemNotFound):
		return apiError(http.StatusNotFound, "ITEM_NOT_FOUND", cart.ErrItemNotFound.Error())
	}
	return nil
}
