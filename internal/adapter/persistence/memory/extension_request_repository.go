package memory

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

type ExtensionRequestRepository struct{ s *Store }

var _ interfaces.IExtensionRequestRepository = (*ExtensionRequestRepository)(nil)

func (r *ExtensionRequestRepository) Create(_ context.Context, req entities.ExtensionRequest, order entities.Order) (entities.ExtensionRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.orders[order.ID]
	if !ok {
		return entities.ExtensionRequest{}, entities.ErrConcurrentModification
	}
	if stored.PendingExtensionID != "" {
		return entities.ExtensionRequest{}, entities.NewConflictError("extension_request", order.ID, "order already has a pending extension request")
	}
	if stored.Version != order.Version {
		return entities.ExtensionRequest{}, entities.ErrConcurrentModification
	}

	order.Version++
	r.s.orders[order.ID] = order
	r.s.extensions[req.ID] = req
	r.s.orderExts[order.ID] = append(r.s.orderExts[order.ID], req.ID)
	return req, nil
}

func (r *ExtensionRequestRepository) GetByID(_ context.Context, id string) (entities.ExtensionRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.extensions[id], nil
}

func (r *ExtensionRequestRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.ExtensionRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := r.s.orderExts[orderID]
	out := make([]entities.ExtensionRequest, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.extensions[id])
	}
	return out, nil
}

func (r *ExtensionRequestRepository) Resolve(_ context.Context, req entities.ExtensionRequest, order entities.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.extensions[req.ID]
	if !ok {
		return entities.ErrConcurrentModification
	}
	if stored.Status != entities.ExtensionStatusPending {
		return entities.NewInvalidTransitionError(req.ID, string(stored.Status), string(req.Status))
	}
	if o, ok := r.s.orders[order.ID]; !ok || o.Version != order.Version {
		return entities.ErrConcurrentModification
	}

	order.Version++
	r.s.orders[order.ID] = order
	r.s.extensions[req.ID] = req
	return nil
}
