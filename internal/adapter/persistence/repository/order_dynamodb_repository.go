package repository

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// OrderDynamoRepository writes an order and all of its lines in one
// transaction.
type OrderDynamoRepository struct {
	s *DynamoStore
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func (r *OrderDynamoRepository) Create(ctx context.Context, order entities.Order, items []entities.OrderItem) (entities.Order, error) {
	tx := make([]types.TransactWriteItem, 0, len(items)+1)

	put, err := putNew(r.s.tables.Orders, toOrderRecord(order))
	if err != nil {
		return entities.Order{}, err
	}
	tx = append(tx, put)
	for _, it := range items {
		put, err := putNew(r.s.tables.OrderItems, toOrderItemRecord(it))
		if err != nil {
			return entities.Order{}, err
		}
		tx = append(tx, put)
	}

	if err := r.s.transact(ctx, tx); err != nil {
		if isConditionFailure(err) {
			return entities.Order{}, entities.NewConflictError("order", order.ID, "already exists")
		}
		return entities.Order{}, errors.Wrap(err, "create order")
	}
	return order, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var rec orderRecord
	found, err := r.s.getByID(ctx, r.s.tables.Orders, id, &rec)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

// putNew builds a transactional insert that fails if the id is taken.
func putNew(table string, record any) (types.TransactWriteItem, error) {
	av, err := marshalMap(record)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}}, nil
}

// putVersioned builds a transactional replace of a row read at version,
// storing it with version+1. extraCond is ANDed onto the version check.
func putVersioned(table string, av map[string]types.AttributeValue, version int, extraCond string, names map[string]string, values map[string]types.AttributeValue) types.TransactWriteItem {
	av["version"] = versionValue(version + 1)
	cond := "#version = :expected_version"
	if extraCond != "" {
		cond += " AND " + extraCond
	}
	vals := map[string]types.AttributeValue{
		":expected_version": versionValue(version),
	}
	for k, v := range values {
		vals[k] = v
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#version": "version"}),
		ExpressionAttributeValues: vals,
	}}
}

func mergeNames(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
