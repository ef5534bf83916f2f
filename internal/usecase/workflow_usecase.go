package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type CreateWorkflowCommand struct {
	Name  string
	Steps []entities.WorkflowStep
}

type IWorkflowUseCase interface {
	CreateWorkflow(ctx context.Context, cmd CreateWorkflowCommand) (entities.WorkflowDefinition, error)
	GetWorkflow(ctx context.Context, id string) (entities.WorkflowDefinition, error)
	ListWorkflows(ctx context.Context) ([]entities.WorkflowDefinition, error)
}

type WorkflowUseCase struct {
	repo interfaces.IWorkflowRepository
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(repo interfaces.IWorkflowRepository) *WorkflowUseCase {
	return &WorkflowUseCase{repo: repo}
}

func (u *WorkflowUseCase) CreateWorkflow(ctx context.Context, cmd CreateWorkflowCommand) (entities.WorkflowDefinition, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.WorkflowDefinition{}, entities.NewValidationError("name", "required")
	}
	if len(cmd.Steps) == 0 {
		return entities.WorkflowDefinition{}, entities.NewValidationError("steps", "at least one step required")
	}

	steps := make([]entities.WorkflowStep, len(cmd.Steps))
	copy(steps, cmd.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].StepOrder < steps[j].StepOrder })
	for i := range steps {
		steps[i].Name = strings.TrimSpace(steps[i].Name)
		steps[i].DepartmentID = strings.TrimSpace(steps[i].DepartmentID)
		if steps[i].Name == "" {
			return entities.WorkflowDefinition{}, entities.NewValidationError("steps.name", "required")
		}
		if steps[i].DepartmentID == "" {
			return entities.WorkflowDefinition{}, entities.NewValidationError("steps.department_id", "required")
		}
		if steps[i].EstimatedDurationHours < 0 {
			return entities.WorkflowDefinition{}, entities.NewValidationError("steps.estimated_duration_hours", "must not be negative")
		}
		if i > 0 && steps[i].StepOrder == steps[i-1].StepOrder {
			return entities.WorkflowDefinition{}, entities.NewValidationError("steps.step_order", "must be unique")
		}
		steps[i].ID = uuid.NewString()
	}

	wf := entities.WorkflowDefinition{
		ID:        uuid.NewString(),
		Name:      name,
		Steps:     steps,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, wf)
}

func (u *WorkflowUseCase) GetWorkflow(ctx context.Context, id string) (entities.WorkflowDefinition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkflowDefinition{}, entities.NewValidationError("workflow_id", "required")
	}
	wf, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkflowDefinition{}, err
	}
	if wf.ID == "" {
		return entities.WorkflowDefinition{}, ErrWorkflowNotFound
	}
	return wf, nil
}

func (u *WorkflowUseCase) ListWorkflows(ctx context.Context) ([]entities.WorkflowDefinition, error) {
	return u.repo.List(ctx)
}
