package response

import (
	"time"

	"fulfillment_engine/internal/domain/entities"
)

type RoutingEventResponse struct {
	ID               string     `json:"id"`
	OrderItemID      string     `json:"order_item_id"`
	FromDepartmentID *string    `json:"from_department_id"`
	ToDepartmentID   string     `json:"to_department_id"`
	Reason           string     `json:"reason"`
	Deadline         time.Time  `json:"deadline"`
	Status           string     `json:"status"`
	CreatedBy        string     `json:"created_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
}

func FromRoutingEvent(e entities.RoutingEvent) RoutingEventResponse {
	return RoutingEventResponse{
		ID:               e.ID,
		OrderItemID:      e.OrderItemID,
		FromDepartmentID: e.FromDepartmentID,
		ToDepartmentID:   e.ToDepartmentID,
		Reason:           e.Reason,
		Deadline:         e.Deadline,
		Status:           string(e.Status),
		CreatedBy:        e.CreatedBy,
		CreatedAt:        e.CreatedAt,
		ClosedAt:         e.ClosedAt,
	}
}

func FromRoutingEvents(events []entities.RoutingEvent) []RoutingEventResponse {
	out := make([]RoutingEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromRoutingEvent(e))
	}
	return out
}

type ExtensionRequestResponse struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"order_id"`
	RequestedBy    string     `json:"requested_by,omitempty"`
	Reason         string     `json:"reason"`
	Status         string     `json:"status"`
	CurrentDueAt   *time.Time `json:"current_due_at,omitempty"`
	NewDueAt       *time.Time `json:"new_due_at,omitempty"`
	CustomerResult string     `json:"customer_result,omitempty"`
	ValidReason    *bool      `json:"valid_reason,omitempty"`
	ResolvedBy     string     `json:"resolved_by,omitempty"`
	ApprovedBy     string     `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromExtensionRequest(e entities.ExtensionRequest) ExtensionRequestResponse {
	return ExtensionRequestResponse{
		ID:             e.ID,
		OrderID:        e.OrderID,
		RequestedBy:    e.RequestedBy,
		Reason:         e.Reason,
		Status:         string(e.Status),
		CurrentDueAt:   e.CurrentDueAt,
		NewDueAt:       e.NewDueAt,
		CustomerResult: e.CustomerResult,
		ValidReason:    e.ValidReason,
		ResolvedBy:     e.ResolvedBy,
		ApprovedBy:     e.ApprovedBy,
		ApprovedAt:     e.ApprovedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromExtensionRequests(reqs []entities.ExtensionRequest) []ExtensionRequestResponse {
	out := make([]ExtensionRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromExtensionRequest(r))
	}
	return out
}
