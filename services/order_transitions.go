package services

import "github.com/Niksiiii/BuConnect/entity"

// Legal status graph. Terminal states are delivered and cancelled.
//
//	pending → confirmed | cancelled
//	confirmed → preparing
//	preparing → ready
//	ready → delivered | outForDelivery
//	outForDelivery → delivered
var legalTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPending:        {entity.StatusConfirmed, entity.StatusCancelled},
	entity.StatusConfirmed:      {entity.StatusPreparing},
	entity.StatusPreparing:      {entity.StatusReady},
	entity.StatusReady:          {entity.StatusDelivered, entity.StatusOutForDelivery},
	entity.StatusOutForDelivery: {entity.StatusDelivered},
}

func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
