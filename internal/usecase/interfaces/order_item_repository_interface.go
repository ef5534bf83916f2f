package interfaces

import (
	"context"
	"fulfillment_engine/internal/domain/entities"
)

// ItemTransition is a single atomic write across items and routing events.
//
// Each item carries the Version it was read at; the adapter stores it with
// Version+1 and fails with entities.ErrConcurrentModification when the stored
// version differs. Either every row is written or none is.
type ItemTransition struct {
	Items        []entities.OrderItem
	CloseRouting []entities.RoutingEvent
	OpenRouting  *entities.RoutingEvent
}

// IOrderItemRepository abstracts persistence for order lines.
type IOrderItemRepository interface {
	GetByID(ctx context.Context, id string) (entities.OrderItem, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error)
	ApplyTransition(ctx context.Context, t ItemTransition) error
}
