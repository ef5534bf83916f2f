package request

import (
	"strings"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase"
)

type TechnicianRequest struct {
	TechnicianID      string  `json:"technician_id"`
	CommissionPercent float64 `json:"commission_percent"`
}

type CreateOrderItemRequest struct {
	ItemType           string              `json:"item_type" binding:"required"`
	Name               string              `json:"name" binding:"required"`
	Quantity           int                 `json:"quantity"`
	UnitPrice          int64               `json:"unit_price"`
	IsCustomerSupplied bool                `json:"is_customer_supplied"`
	ParentIndex        *int                `json:"parent_index"`
	Technicians        []TechnicianRequest `json:"technicians"`
}

// CreateOrderRequest creates an order with its lines. parent_index points at
// an earlier entry of items to group a package.
type CreateOrderRequest struct {
	CustomerID string                   `json:"customer_id" binding:"required"`
	SalesRepID string                   `json:"sales_rep_id"`
	WorkflowID string                   `json:"workflow_id"`
	DueAt      *time.Time               `json:"due_at"`
	Items      []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	items := make([]usecase.CreateItemCommand, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.CreateItemCommand{
			ItemType:           entities.ItemType(strings.ToLower(strings.TrimSpace(it.ItemType))),
			Name:               it.Name,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
			IsCustomerSupplied: it.IsCustomerSupplied,
			ParentIndex:        it.ParentIndex,
			Technicians:        ToTechnicians(it.Technicians),
		})
	}
	return usecase.CreateOrderCommand{
		CustomerID: r.CustomerID,
		SalesRepID: r.SalesRepID,
		WorkflowID: r.WorkflowID,
		DueAt:      r.DueAt,
		Items:      items,
	}
}

func ToTechnicians(in []TechnicianRequest) []entities.TechnicianAssignment {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.TechnicianAssignment, 0, len(in))
	for _, t := range in {
		out = append(out, entities.TechnicianAssignment{TechnicianID: t.TechnicianID, CommissionPercent: t.CommissionPercent})
	}
	return out
}

type RequestExtensionRequest struct {
	Reason string `json:"reason"`
}

// ResolveExtensionRequest decides a pending extension. approve is required;
// new_due_at is required when approving.
type ResolveExtensionRequest struct {
	Approve        *bool      `json:"approve" binding:"required"`
	NewDueAt       *time.Time `json:"new_due_at"`
	ValidReason    *bool      `json:"valid_reason"`
	CustomerResult string     `json:"customer_result"`
}

func (r ResolveExtensionRequest) ToCommand(requestID, resolvedBy string) usecase.ResolveExtensionCommand {
	return usecase.ResolveExtensionCommand{
		RequestID:      requestID,
		Approve:        r.Approve != nil && *r.Approve,
		NewDueAt:       r.NewDueAt,
		ValidReason:    r.ValidReason,
		CustomerResult: r.CustomerResult,
		ResolvedBy:     resolvedBy,
	}
}
