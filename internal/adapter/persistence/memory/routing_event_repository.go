package memory

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

type RoutingEventRepository struct{ s *Store }

var _ interfaces.IRoutingEventRepository = (*RoutingEventRepository)(nil)

func (r *RoutingEventRepository) GetByID(_ context.Context, id string) (entities.RoutingEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.routing[id], nil
}

func (r *RoutingEventRepository) ListByItemID(_ context.Context, itemID string) ([]entities.RoutingEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := r.s.itemEvents[itemID]
	out := make([]entities.RoutingEvent, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.routing[id])
	}
	return out, nil
}
