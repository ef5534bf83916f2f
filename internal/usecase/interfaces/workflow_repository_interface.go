package interfaces

import (
	"context"
	"fulfillment_engine/internal/domain/entities"
)

type IWorkflowRepository interface {
	Create(ctx context.Context, wf entities.WorkflowDefinition) (entities.WorkflowDefinition, error)
	GetByID(ctx context.Context, id string) (entities.WorkflowDefinition, error)
	List(ctx context.Context) ([]entities.WorkflowDefinition, error)
}
