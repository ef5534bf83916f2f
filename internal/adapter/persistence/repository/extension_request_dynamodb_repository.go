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

// ExtensionRequestDynamoRepository persists extension requests. The order
// row carries pending_extension_id, which is what keeps at most one request
// pending per order.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type ExtensionRequestDynamoRepository struct {
	s *DynamoStore
}

var _ interfaces.IExtensionRequestRepository = (*ExtensionRequestDynamoRepository)(nil)

func (r *ExtensionRequestDynamoRepository) Create(ctx context.Context, req entities.ExtensionRequest, order entities.Order) (entities.ExtensionRequest, error) {
	tx, err := r.createWrites(req, order)
	if err != nil {
		return entities.ExtensionRequest{}, err
	}
	if err := r.s.transact(ctx, tx); err != nil {
		if !isConditionFailure(err) {
			return entities.ExtensionRequest{}, errors.Wrap(err, "create extension request")
		}
		current, getErr := r.s.Orders().GetByID(ctx, order.ID)
		if getErr != nil {
			return entities.ExtensionRequest{}, getErr
		}
		if current.PendingExtensionID != "" {
			return entities.ExtensionRequest{}, entities.NewConflictError("extension_request", order.ID, "order already has a pending extension request")
		}
		return entities.ExtensionRequest{}, entities.ErrConcurrentModification
	}
	return req, nil
}

func (r *ExtensionRequestDynamoRepository) createWrites(req entities.ExtensionRequest, order entities.Order) ([]types.TransactWriteItem, error) {
	putReq, err := putNew(r.s.tables.Extensions, toExtensionRequestRecord(req))
	if err != nil {
		return nil, err
	}
	av, err := marshalMap(toOrderRecord(order))
	if err != nil {
		return nil, err
	}
	putOrder := putVersioned(r.s.tables.Orders, av, order.Version,
		"attribute_not_exists(#pending)", map[string]string{"#pending": "pending_extension_id"}, nil)
	return []types.TransactWriteItem{putReq, putOrder}, nil
}

func (r *ExtensionRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ExtensionRequest, error) {
	var rec extensionRequestRecord
	found, err := r.s.getByID(ctx, r.s.tables.Extensions, id, &rec)
	if err != nil || !found {
		return entities.ExtensionRequest{}, err
	}
	return fromExtensionRequestRecord(rec), nil
}

func (r *ExtensionRequestDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ExtensionRequest, error) {
	rows, err := r.s.queryIndex(ctx, r.s.tables.Extensions, orderIDIndex, "order_id", orderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ExtensionRequest, 0, len(rows))
	for _, row := range rows {
		var rec extensionRequestRecord
		if err := unmarshalMap(row, &rec); err != nil {
			return nil, err
		}
		out = append(out, fromExtensionRequestRecord(rec))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ExtensionRequestDynamoRepository) Resolve(ctx context.Context, req entities.ExtensionRequest, order entities.Order) error {
	reqAV, err := marshalMap(toExtensionRequestRecord(req))
	if err != nil {
		return err
	}
	orderAV, err := marshalMap(toOrderRecord(order))
	if err != nil {
		return err
	}
	tx := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:           aws.String(r.s.tables.Extensions),
			Item:                reqAV,
			ConditionExpression: aws.String("#status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.ExtensionStatusPending)},
			},
		}},
		putVersioned(r.s.tables.Orders, orderAV, order.Version, "", nil, nil),
	}

	if err := r.s.transact(ctx, tx); err != nil {
		if !isConditionFailure(err) {
			return errors.Wrap(err, "resolve extension request")
		}
		current, getErr := r.GetByID(ctx, req.ID)
		if getErr != nil {
			return getErr
		}
		if current.ID != "" && current.Status != entities.ExtensionStatusPending {
			return entities.NewInvalidTransitionError(req.ID, string(current.Status), string(req.Status))
		}
		return entities.ErrConcurrentModification
	}
	return nil
}
