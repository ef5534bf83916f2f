package repository

import (
	"context"
	"sort"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
)

type WorkflowDynamoRepository struct {
	s *DynamoStore
}

var _ interfaces.IWorkflowRepository = (*WorkflowDynamoRepository)(nil)

func (r *WorkflowDynamoRepository) Create(ctx context.Context, wf entities.WorkflowDefinition) (entities.WorkflowDefinition, error) {
	put, err := putNew(r.s.tables.Workflows, toWorkflowRecord(wf))
	if err != nil {
		return entities.WorkflowDefinition{}, err
	}
	_, err = r.s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                put.Put.TableName,
		Item:                     put.Put.Item,
		ConditionExpression:      put.Put.ConditionExpression,
		ExpressionAttributeNames: put.Put.ExpressionAttributeNames,
	})
	if err != nil {
		if isConditionFailure(err) {
			return entities.WorkflowDefinition{}, entities.NewConflictError("workflow", wf.ID, "already exists")
		}
		return entities.WorkflowDefinition{}, errors.Wrap(err, "create workflow")
	}
	return wf, nil
}

func (r *WorkflowDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkflowDefinition, error) {
	var rec workflowRecord
	found, err := r.s.getByID(ctx, r.s.tables.Workflows, id, &rec)
	if err != nil || !found {
		return entities.WorkflowDefinition{}, err
	}
	return fromWorkflowRecord(rec), nil
}

// List scans the table; workflow definitions are few and rarely change.
func (r *WorkflowDynamoRepository) List(ctx context.Context) ([]entities.WorkflowDefinition, error) {
	p := dynamodb.NewScanPaginator(r.s.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.s.tables.Workflows),
		ConsistentRead: aws.Bool(true),
	})
	var out []entities.WorkflowDefinition
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "scan workflows")
		}
		for _, row := range page.Items {
			var rec workflowRecord
			if err := unmarshalMap(row, &rec); err != nil {
				return nil, err
			}
			out = append(out, fromWorkflowRecord(rec))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
