package coupon

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Eligibility failures, in evaluation order.
var (
	ErrInvalidInput        = errors.New("invalid coupon request")
	ErrNotFound            = errors.New("invalid coupon code")
	ErrInactive            = errors.New("coupon is not active")
	ErrExpired             = errors.New("coupon has expired")
	ErrUsageLimitReached   = errors.New("coupon usage limit reached")
	ErrMinOrderNotMet      = errors.New("minimum cart value not met")
	ErrUserRestricted      = errors.New("this coupon is not valid for your account")
	ErrNotFirstOrder       = errors.New("this coupon is only valid on your first order")
	ErrPerUserLimitReached = errors.New("you have already used this coupon the maximum number of times")
)

// Administrative failures.
var (
	ErrCodeTaken         = errors.New("coupon code already exists")
	ErrLimitBelowUsage   = errors.New("usage limit cannot be lower than the current usage count")
	ErrInvalidDefinition = errors.New("invalid coupon definition")
)

// InputError is an ErrInvalidInput with a specific message.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// Is matches ErrInvalidInput.
func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

var (
	// ErrMissingFields reports an absent code, cart value or order total.
	ErrMissingFields = &InputError{Msg: "coupon code, cart value, and order total are required"}
	// ErrNonPositive reports a cart value or order total of zero or less.
	ErrNonPositive = &InputError{Msg: "cart value and order total must be greater than 0"}
	// ErrTotalBelowCart reports an order total smaller than the cart value.
	ErrTotalBelowCart = &InputError{Msg: "order total cannot be less than cart value"}
)

// MinOrderError is an ErrMinOrderNotMet carrying the threshold.
type MinOrderError struct {
	Min decimal.Decimal
}

func (e *MinOrderError) Error() string {
	return "minimum cart value for this coupon is INR " + e.Min.String()
}

// Is matches ErrMinOrderNotMet.
func (e *MinOrderError) Is(target error) bool { return target == ErrMinOrderNotMet }

// DefinitionError is an ErrInvalidDefinition with a specific message.
type DefinitionError struct {
	Msg string
}

func (e *DefinitionError) Error() string { return e.Msg }

// Is matches ErrInvalidDefinition.
func (e *DefinitionError) Is(target error) bool { return target == ErrInvalidDefinition }

// RedemptionError marks an eligibility failure found while redeeming, after
// the coupon had already been previewed. It means the coupon became
// unavailable between preview and checkout.
type RedemptionError struct {
	Code string
	Err  error
}

func (e *RedemptionError) Error() string {
	return "coupon " + e.Code + " is no longer available: " + e.Err.Error()
}

func (e *RedemptionError) Unwrap() error { return e.Err }

// IsLostRace reports whether err came from the redemption step.
func IsLostRace(err error) bool {
	var re *RedemptionError
	return errors.As(err, &re)
}

// Reason returns a stable machine-readable kind for an eligibility error,
// or "" if err is not one.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInactive):
		return "INACTIVE"
	case errors.Is(err, ErrExpired):
		return "EXPIRED"
	case errors.Is(err, ErrUsageLimitReached):
		return "USAGE_LIMIT_REACHED"
	case errors.Is(err, ErrMinOrderNotMet):
		return "MIN_ORDER_NOT_MET"
	case errors.Is(err, ErrUserRestricted):
		return "USER_RESTRICTED"
	case errors.Is(err, ErrNotFirstOrder):
		return "NOT_FIRST_ORDER"
	case errors.Is(err, ErrPerUserLimitReached):
		return "PER_USER_LIMIT_REACHED"
	default:
		return ""
	}
}

// Message returns the user-facing text of an eligibility error without any
// wrapping context.
func Message(err error) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Msg
	}
	var me *MinOrderError
	if errors.As(err, &me) {
		return me.Error()
	}
	for _, sentinel := range eligibility {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

var eligibility = []error{
	ErrNotFound,
	ErrInactive,
	ErrExpired,
	ErrUsageLimitReached,
	ErrMinOrderNotMet,
	ErrUserRestricted,
	ErrNotFirstOrder,
	ErrPerUserLimitReached,
}
