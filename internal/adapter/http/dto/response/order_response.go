package response

import (
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase"
)

type TechnicianResponse struct {
	TechnicianID      string  `json:"technician_id"`
	CommissionPercent float64 `json:"commission_percent"`
}

type OrderItemResponse struct {
	ID                  string               `json:"id"`
	OrderID             string               `json:"order_id"`
	ParentItemID        string               `json:"parent_item_id,omitempty"`
	LineNumber          int                  `json:"line_number"`
	ItemType            string               `json:"item_type"`
	ItemCode            string               `json:"item_code"`
	Name                string               `json:"name"`
	Quantity            int                  `json:"quantity"`
	UnitPrice           int64                `json:"unit_price"`
	TotalPrice          int64                `json:"total_price"`
	IsCustomerSupplied  bool                 `json:"is_customer_supplied"`
	Status              string               `json:"status"`
	CurrentDepartmentID string               `json:"current_department_id,omitempty"`
	Technicians         []TechnicianResponse `json:"technicians"`
	WorkflowID          string               `json:"workflow_id,omitempty"`
	WorkflowStepIndex   int                  `json:"workflow_step_index"`
	Note                string               `json:"note,omitempty"`
	StatusReason        string               `json:"status_reason,omitempty"`
	StartedAt           *time.Time           `json:"started_at,omitempty"`
	CompletedAt         *time.Time           `json:"completed_at,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func FromOrderItem(it entities.OrderItem) OrderItemResponse {
	techs := make([]TechnicianResponse, 0, len(it.AssignedTechnicians))
	for _, t := range it.AssignedTechnicians {
		techs = append(techs, TechnicianResponse(t))
	}
	return OrderItemResponse{
		ID:                  it.ID,
		OrderID:             it.OrderID,
		ParentItemID:        it.ParentItemID,
		LineNumber:          it.LineNumber,
		ItemType:            string(it.ItemType),
		ItemCode:            it.ItemCode,
		Name:                it.Name,
		Quantity:            it.Quantity,
		UnitPrice:           it.UnitPrice,
		TotalPrice:          it.TotalPrice,
		IsCustomerSupplied:  it.IsCustomerSupplied,
		Status:              string(it.Status),
		CurrentDepartmentID: it.CurrentDepartmentID,
		Technicians:         techs,
		WorkflowID:          it.WorkflowID,
		WorkflowStepIndex:   it.WorkflowStepIndex,
		Note:                it.Note,
		StatusReason:        it.StatusReason,
		StartedAt:           it.StartedAt,
		CompletedAt:         it.CompletedAt,
		CreatedAt:           it.CreatedAt,
		UpdatedAt:           it.UpdatedAt,
	}
}

func FromOrderItems(items []entities.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromOrderItem(it))
	}
	return out
}

type ProgressResponse struct {
	OrderID        string         `json:"order_id"`
	TotalItems     int            `json:"total_items"`
	ByStatus       map[string]int `json:"by_status"`
	Terminal       int            `json:"terminal"`
	ReadyToInvoice bool           `json:"ready_to_invoice"`
}

func FromProgress(p entities.OrderProgress) ProgressResponse {
	by := make(map[string]int, len(p.ByStatus))
	for st, n := range p.ByStatus {
		by[string(st)] = n
	}
	return ProgressResponse{
		OrderID:        p.OrderID,
		TotalItems:     p.TotalItems,
		ByStatus:       by,
		Terminal:       p.Terminal,
		ReadyToInvoice: p.ReadyToInvoice,
	}
}

type OrderResponse struct {
	ID                 string              `json:"id"`
	CustomerID         string              `json:"customer_id"`
	SalesRepID         string              `json:"sales_rep_id,omitempty"`
	WorkflowID         string              `json:"workflow_id,omitempty"`
	TotalAmount        int64               `json:"total_amount"`
	DueAt              *time.Time          `json:"due_at,omitempty"`
	PendingExtensionID string              `json:"pending_extension_id,omitempty"`
	ActiveInvoiceID    string              `json:"active_invoice_id,omitempty"`
	Items              []OrderItemResponse `json:"items"`
	Progress           ProgressResponse    `json:"progress"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func FromOrderDetails(d usecase.OrderDetails) OrderResponse {
	return OrderResponse{
		ID:                 d.Order.ID,
		CustomerID:         d.Order.CustomerID,
		SalesRepID:         d.Order.SalesRepID,
		WorkflowID:         d.Order.WorkflowID,
		TotalAmount:        d.Order.TotalAmount,
		DueAt:              d.Order.DueAt,
		PendingExtensionID: d.Order.PendingExtensionID,
		ActiveInvoiceID:    d.Order.ActiveInvoiceID,
		Items:              FromOrderItems(d.Items),
		Progress:           FromProgress(d.Progress),
		CreatedAt:          d.Order.CreatedAt,
		UpdatedAt:          d.Order.UpdatedAt,
	}
}
