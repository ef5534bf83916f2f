package response

import (
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase"
)

type InvoiceResponse struct {
	ID        string     `json:"id"`
	OrderID   string     `json:"order_id"`
	Amount    int64      `json:"amount"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		OrderID:   inv.OrderID,
		Amount:    inv.Amount,
		Status:    string(inv.Status),
		PaidAt:    inv.PaidAt,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

type CommissionResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	InvoiceID      string    `json:"invoice_id"`
	OrderID        string    `json:"order_id"`
	LineItemID     string    `json:"line_item_id,omitempty"`
	CommissionType string    `json:"commission_type"`
	BaseAmount     int64     `json:"base_amount"`
	Percentage     float64   `json:"percentage"`
	Amount         int64     `json:"amount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromCommissions(cs []entities.Commission) []CommissionResponse {
	out := make([]CommissionResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CommissionResponse{
			ID:             c.ID,
			UserID:         c.UserID,
			InvoiceID:      c.InvoiceID,
			OrderID:        c.OrderID,
			LineItemID:     c.LineItemID,
			CommissionType: string(c.CommissionType),
			BaseAmount:     c.BaseAmount,
			Percentage:     c.Percentage,
			Amount:         c.Amount,
			Status:         string(c.Status),
			CreatedAt:      c.CreatedAt,
		})
	}
	return out
}

type PaymentConfirmationResponse struct {
	ProviderPaymentID string               `json:"provider_payment_id"`
	ProviderStatus    string               `json:"provider_status"`
	InvoiceID         string               `json:"invoice_id,omitempty"`
	Applied           bool                 `json:"applied"`
	Commissions       []CommissionResponse `json:"commissions"`
}

func FromPaymentConfirmation(p usecase.PaymentConfirmation) PaymentConfirmationResponse {
	return PaymentConfirmationResponse{
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		InvoiceID:         p.InvoiceID,
		Applied:           p.Applied,
		Commissions:       FromCommissions(p.Commissions),
	}
}

type WorkflowStepResponse struct {
	ID                     string `json:"id"`
	StepOrder              int    `json:"step_order"`
	Name                   string `json:"name"`
	DepartmentID           string `json:"department_id"`
	EstimatedDurationHours int    `json:"estimated_duration_hours"`
	IsRequired             bool   `json:"is_required"`
}

type WorkflowResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Steps     []WorkflowStepResponse `json:"steps"`
	CreatedAt time.Time              `json:"created_at"`
}

func FromWorkflow(wf entities.WorkflowDefinition) WorkflowResponse {
	steps := make([]WorkflowStepResponse, 0, len(wf.Steps))
	for _, s := range wf.Steps {
		steps = append(steps, WorkflowStepResponse(s))
	}
	return WorkflowResponse{ID: wf.ID, Name: wf.Name, Steps: steps, CreatedAt: wf.CreatedAt}
}

func FromWorkflows(wfs []entities.WorkflowDefinition) []WorkflowResponse {
	out := make([]WorkflowResponse, 0, len(wfs))
	for _, wf := range wfs {
		out = append(out, FromWorkflow(wf))
	}
	return out
}
