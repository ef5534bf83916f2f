package interfaces

import (
	"context"
	"fulfillment_engine/internal/domain/entities"
)

// IOrderRepository persists orders together with their lines.
//
// Lookups return the zero value and a nil error when nothing matches.
type IOrderRepository interface {
	Create(ctx context.Context, order entities.Order, items []entities.OrderItem) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
