package request

import (
	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase"
)

// WorkflowStepRequest describes one step. Steps are required unless
// is_required is sent as false.
type WorkflowStepRequest struct {
	StepOrder              int    `json:"step_order"`
	Name                   string `json:"name"`
	DepartmentID           string `json:"department_id"`
	EstimatedDurationHours int    `json:"estimated_duration_hours"`
	IsRequired             *bool  `json:"is_required"`
}

type CreateWorkflowRequest struct {
	Name  string                `json:"name" binding:"required"`
	Steps []WorkflowStepRequest `json:"steps" binding:"required"`
}

func (r CreateWorkflowRequest) ToCommand() usecase.CreateWorkflowCommand {
	steps := make([]entities.WorkflowStep, 0, len(r.Steps))
	for _, s := range r.Steps {
		required := true
		if s.IsRequired != nil {
			required = *s.IsRequired
		}
		steps = append(steps, entities.WorkflowStep{
			StepOrder:              s.StepOrder,
			Name:                   s.Name,
			DepartmentID:           s.DepartmentID,
			EstimatedDurationHours: s.EstimatedDurationHours,
			IsRequired:             required,
		})
	}
	return usecase.CreateWorkflowCommand{Name: r.Name, Steps: steps}
}
