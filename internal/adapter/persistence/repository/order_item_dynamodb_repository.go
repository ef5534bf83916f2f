package repository

import (
	"context"
	"sort"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// OrderItemDynamoRepository persists order lines.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type OrderItemDynamoRepository struct {
	s *DynamoStore
}

var _ interfaces.IOrderItemRepository = (*OrderItemDynamoRepository)(nil)

func (r *OrderItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderItem, error) {
	var rec orderItemRecord
	found, err := r.s.getByID(ctx, r.s.tables.OrderItems, id, &rec)
	if err != nil || !found {
		return entities.OrderItem{}, err
	}
	return fromOrderItemRecord(rec), nil
}

func (r *OrderItemDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	rows, err := r.s.queryIndex(ctx, r.s.tables.OrderItems, orderIDIndex, "order_id", orderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderItem, 0, len(rows))
	for _, row := range rows {
		var rec orderItemRecord
		if err := unmarshalMap(row, &rec); err != nil {
			return nil, err
		}
		out = append(out, fromOrderItemRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNumber < out[j].LineNumber })
	return out, nil
}

// ApplyTransition writes items, closes and opens routing events in one
// TransactWriteItems call. Any failed condition means another writer got
// there first.
func (r *OrderItemDynamoRepository) ApplyTransition(ctx context.Context, t interfaces.ItemTransition) error {
	tx, err := r.transitionWrites(t)
	if err != nil {
		return err
	}
	if err := r.s.transact(ctx, tx); err != nil {
		if isConditionFailure(err) {
			return entities.ErrConcurrentModification
		}
		return errors.Wrap(err, "apply item transition")
	}
	return nil
}

func (r *OrderItemDynamoRepository) transitionWrites(t interfaces.ItemTransition) ([]types.TransactWriteItem, error) {
	tx := make([]types.TransactWriteItem, 0, len(t.Items)+len(t.CloseRouting)+1)
	for _, it := range t.Items {
		av, err := marshalMap(toOrderItemRecord(it))
		if err != nil {
			return nil, err
		}
		tx = append(tx, putVersioned(r.s.tables.OrderItems, av, it.Version, "", nil, nil))
	}
	for _, ev := range t.CloseRouting {
		av, err := marshalMap(toRoutingEventRecord(ev))
		if err != nil {
			return nil, err
		}
		tx = append(tx, types.TransactWriteItem{Put: &types.Put{
			TableName:           aws.String(r.s.tables.Routing),
			Item:                av,
			ConditionExpression: aws.String("#status = :open"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":open": &types.AttributeValueMemberS{Value: string(entities.RoutingStatusOpen)},
			},
		}})
	}
	if t.OpenRouting != nil {
		put, err := putNew(r.s.tables.Routing, toRoutingEventRecord(*t.OpenRouting))
		if err != nil {
			return nil, err
		}
		tx = append(tx, put)
	}
	return tx, nil
}
