package helper

import "hotel_roomservice/model"

// nextStatus maps each state to its single legal forward step. DELIVERED and
// CANCELLED are terminal and absent on purpose.
var nextStatus = map[string]string{
	model.OrderPending:   model.OrderPreparing,
	model.OrderPreparing: model.OrderReady,
	model.OrderReady:     model.OrderDelivered,
}

// CanTransition reports whether an order may move from one status to another:
// the single next step forward, or CANCELLED from any non-terminal state.
func CanTransition(from, to string) bool {
	if !model.IsKnownOrderStatus(from) || !model.IsKnownOrderStatus(to) {
		return false
	}
	if to == model.OrderCancelled {
		return !IsTerminalStatus(from)
	}
	return nextStatus[from] == to
}

func IsTerminalStatus(status string) bool {
	return status == model.OrderDelivered || status == model.OrderCancelled
}
