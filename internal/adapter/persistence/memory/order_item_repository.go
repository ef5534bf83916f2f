package memory

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

type OrderItemRepository struct{ s *Store }

var _ interfaces.IOrderItemRepository = (*OrderItemRepository)(nil)

func (r *OrderItemRepository) GetByID(_ context.Context, id string) (entities.OrderItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return entities.OrderItem{}, nil
	}
	return cloneItem(it), nil
}

func (r *OrderItemRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.OrderItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := r.s.orderItems[orderID]
	out := make([]entities.OrderItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneItem(r.s.items[id]))
	}
	return out, nil
}

func (r *OrderItemRepository) ApplyTransition(_ context.Context, t interfaces.ItemTransition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, it := range t.Items {
		stored, ok := r.s.items[it.ID]
		if !ok || stored.Version != it.Version {
			return entities.ErrConcurrentModification
		}
	}
	closing := make(map[string]struct{}, len(t.CloseRouting))
	for _, ev := range t.CloseRouting {
		stored, ok := r.s.routing[ev.ID]
		if !ok || stored.Status != entities.RoutingStatusOpen {
			return entities.ErrConcurrentModification
		}
		closing[ev.ID] = struct{}{}
	}
	if t.OpenRouting != nil {
		for _, id := range r.s.itemEvents[t.OpenRouting.OrderItemID] {
			if _, ok := closing[id]; ok {
				continue
			}
			if r.s.routing[id].Status == entities.RoutingStatusOpen {
				return entities.ErrConcurrentModification
			}
		}
	}

	for _, it := range t.Items {
		it.Version++
		r.s.items[it.ID] = cloneItem(it)
	}
	for _, ev := range t.CloseRouting {
		r.s.routing[ev.ID] = ev
	}
	if ev := t.OpenRouting; ev != nil {
		r.s.routing[ev.ID] = *ev
		r.s.itemEvents[ev.OrderItemID] = append(r.s.itemEvents[ev.OrderItemID], ev.ID)
	}
	return nil
}
