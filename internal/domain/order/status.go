package order

import (
	"github.com/go-faster/errors"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending           Status = "pending"
	StatusProcessing        Status = "processing"
	StatusShipped           Status = "shipped"
	StatusDelivered         Status = "delivered"
	StatusCancelled         Status = "cancelled"
	StatusExchangeRequested Status = "exchange_requested"
	StatusExchangeApproved  Status = "exchange_approved"
	StatusExchanged         Status = "exchanged"
)

// Actor is who asks for a status change.
type Actor int

const (
	ActorAdmin Actor = iota + 1
	ActorCustomer
)

// ErrInvalidStatus is returned for an unknown status value.
var ErrInvalidStatus = errors.New("invalid order status")

// ErrInvalidTransition is matched by every *TransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError reports a status change the state machine forbids.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return "cannot change order status from " + string(e.From) + " to " + string(e.To)
}

// Is matches ErrInvalidTransition.
func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

var transitions = map[Status]map[Status]Actor{
	StatusPending: {
		StatusProcessing:        ActorAdmin,
		StatusShipped:           ActorAdmin,
		StatusDelivered:         ActorAdmin,
		StatusCancelled:         ActorAdmin,
		StatusExchangeRequested: ActorCustomer,
	},
	StatusProcessing: {
		StatusShipped:           ActorAdmin,
		StatusDelivered:         ActorAdmin,
		StatusCancelled:         ActorAdmin,
		StatusExchangeRequested: ActorCustomer,
	},
	StatusShipped: {
		StatusDelivered:         ActorAdmin,
		StatusExchangeRequested: ActorCustomer,
	},
	StatusExchangeRequested: {
		StatusExchangeApproved: ActorAdmin,
	},
	StatusExchangeApproved: {
		StatusExchanged: ActorAdmin,
	},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered,
		StatusCancelled, StatusExchangeRequested, StatusExchangeApproved, StatusExchanged:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransition reports whether actor may move an order from one status to
// another.
func CanTransition(from, to Status, actor Actor) bool {
	who, ok := transitions[from][to]
	return ok && who == actor
}
