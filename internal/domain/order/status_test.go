package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from  Status
		to    Status
		actor Actor
		want  bool
	}{
		{StatusPending, StatusProcessing, ActorAdmin, true},
		{StatusPending, StatusShipped, ActorAdmin, true},
		{StatusPending, StatusDelivered, ActorAdmin, true},
		{StatusPending, StatusCancelled, ActorAdmin, true},
		{StatusProcessing, StatusShipped, ActorAdmin, true},
		{StatusProcessing, StatusCancelled, ActorAdmin, true},
		{StatusShipped, StatusDelivered, ActorAdmin, true},
		{StatusExchangeRequested, StatusExchangeApproved, ActorAdmin, true},
		{StatusExchangeApproved, StatusExchanged, ActorAdmin, true},

		{StatusPending, StatusExchangeRequested, ActorCustomer, true},
		{StatusProcessing, StatusExchangeRequested, ActorCustomer, true},
		{StatusShipped, StatusExchangeRequested, ActorCustomer, true},

		// Customers cannot drive fulfilment.
		{StatusPending, StatusCancelled, ActorCustomer, false},
		{StatusExchangeRequested, StatusExchangeApproved, ActorCustomer, false},
		// Admins do not request exchanges on behalf of customers.
		{StatusPending, StatusExchangeRequested, ActorAdmin, false},

		{StatusShipped, StatusCancelled, ActorAdmin, false},
		{StatusShipped, StatusPending, ActorAdmin, false},
		{StatusDelivered, StatusExchangeRequested, ActorCustomer, false},
		{StatusDelivered, StatusPending, ActorAdmin, false},
		{StatusCancelled, StatusProcessing, ActorAdmin, false},
		{StatusExchanged, StatusExchangeRequested, ActorCustomer, false},
		{StatusPending, StatusPending, ActorAdmin, false},
		{StatusPending, StatusExchanged, ActorAdmin, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to, tt.actor))
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	for _, s := range []Status{StatusDelivered, StatusCancelled, StatusExchanged} {
		assert.True(t, s.Terminal(), s)
	}
	for _, s := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusExchangeRequested, StatusExchangeApproved} {
		assert.False(t, s.Terminal(), s)
	}
	assert.False(t, Status("refunded").Terminal())
	assert.False(t, Status("refunded").Valid())
}
