package helper

import (
	"testing"

	"hotel_roomservice/model"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{model.OrderPending, model.OrderPreparing, true},
		{model.OrderPreparing, model.OrderReady, true},
		{model.OrderReady, model.OrderDelivered, true},

		// cancel is allowed from every non-terminal state
		{model.OrderPending, model.OrderCancelled, true},
		{model.OrderPreparing, model.OrderCancelled, true},
		{model.OrderReady, model.OrderCancelled, true},

		// no skipping forward
		{model.OrderPending, model.OrderReady, false},
		{model.OrderPending, model.OrderDelivered, false},
		{model.OrderPreparing, model.OrderDelivered, false},

		// no moving backward
		{model.OrderPreparing, model.OrderPending, false},
		{model.OrderDelivered, model.OrderReady, false},

		// terminal states absorb
		{model.OrderDelivered, model.OrderCancelled, false},
		{model.OrderCancelled, model.OrderPending, false},
		{model.OrderCancelled, model.OrderCancelled, false},
		{model.OrderDelivered, model.OrderDelivered, false},

		// self transitions are not legal steps
		{model.OrderPending, model.OrderPending, false},

		// unknown statuses never transition
		{"SHIPPED", model.OrderPending, false},
		{model.OrderPending, "SHIPPED", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(model.OrderDelivered))
	assert.True(t, IsTerminalStatus(model.OrderCancelled))
	assert.False(t, IsTerminalStatus(model.OrderPending))
	assert.False(t, IsTerminalStatus(model.OrderPreparing))
	assert.False(t, IsTerminalStatus(model.OrderReady))
}
