package repository

import (
	"context"
	"sort"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

// RoutingEventDynamoRepository reads routing history. Events are written by
// OrderItemDynamoRepository.ApplyTransition.
type RoutingEventDynamoRepository struct {
	s *DynamoStore
}

var _ interfaces.IRoutingEventRepository = (*RoutingEventDynamoRepository)(nil)

func (r *RoutingEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.RoutingEvent, error) {
	var rec routingEventRecord
	found, err := r.s.getByID(ctx, r.s.tables.Routing, id, &rec)
	if err != nil || !found {
		return entities.RoutingEvent{}, err
	}
	return fromRoutingEventRecord(rec), nil
}

func (r *RoutingEventDynamoRepository) ListByItemID(ctx context.Context, itemID string) ([]entities.RoutingEvent, error) {
	rows, err := r.s.queryIndex(ctx, r.s.tables.Routing, orderItemIDIndex, "order_item_id", itemID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.RoutingEvent, 0, len(rows))
	for _, row := range rows {
		var rec routingEventRecord
		if err := unmarshalMap(row, &rec); err != nil {
			return nil, err
		}
		out = append(out, fromRoutingEventRecord(rec))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
