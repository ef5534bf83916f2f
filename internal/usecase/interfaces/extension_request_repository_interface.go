package interfaces

import (
	"context"
	"fulfillment_engine/internal/domain/entities"
)

// IExtensionRequestRepository persists due-date extension requests.
//
//   - Create stores a pending request and marks the order, failing with a
//     *entities.ConflictError when the order already has a pending request.
//   - Resolve stores the decided request and the order (new due date, pending
//     marker cleared) in one write, conditioned on the request still being
//     pending and on order.Version.
type IExtensionRequestRepository interface {
	Create(ctx context.Context, req entities.ExtensionRequest, order entities.Order) (entities.ExtensionRequest, error)
	GetByID(ctx context.Context, id string) (entities.ExtensionRequest, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.ExtensionRequest, error)
	Resolve(ctx context.Context, req entities.ExtensionRequest, order entities.Order) error
}
