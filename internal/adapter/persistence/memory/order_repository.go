package memory

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

type OrderRepository struct{ s *Store }

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(_ context.Context, order entities.Order, items []entities.OrderItem) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.orders[order.ID]; exists {
		return entities.Order{}, entities.NewConflictError("order", order.ID, "already exists")
	}
	for _, it := range items {
		if _, exists := r.s.items[it.ID]; exists {
			return entities.Order{}, entities.NewConflictError("order_item", it.ID, "already exists")
		}
	}
	r.s.orders[order.ID] = order
	for _, it := range items {
		r.s.items[it.ID] = cloneItem(it)
		r.s.orderItems[order.ID] = append(r.s.orderItems[order.ID], it.ID)
	}
	return order, nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.orders[id], nil
}
