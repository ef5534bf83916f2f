package interfaces

import (
	"context"
	"fulfillment_engine/internal/domain/entities"
)

// IRoutingEventRepository reads routing history. Writes go through
// IOrderItemRepository.ApplyTransition so the item and its events move together.
type IRoutingEventRepository interface {
	GetByID(ctx context.Context, id string) (entities.RoutingEvent, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.RoutingEvent, error)
}
