package entities

import "time"

// WorkflowStep is one department hop in a workflow definition. Optional
// steps (IsRequired false) may be passed over without routing the item.
type WorkflowStep struct {
	ID                     string `json:"id"`
	StepOrder              int    `json:"step_order"`
	Name                   string `json:"name"`
	DepartmentID           string `json:"department_id"`
	EstimatedDurationHours int    `json:"estimated_duration_hours"`
	IsRequired             bool   `json:"is_required"`
}

// DeadlineDays converts the estimate to whole days, never less than one.
func (s WorkflowStep) DeadlineDays() int {
	days := (s.EstimatedDurationHours + 23) / 24
	if days < 1 {
		return 1
	}
	return days
}

// WorkflowDefinition is an ordered template of steps that service items
// follow. Steps are kept sorted by StepOrder.
type WorkflowDefinition struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Steps     []WorkflowStep `json:"steps"`
	CreatedAt time.Time      `json:"created_at"`
}
