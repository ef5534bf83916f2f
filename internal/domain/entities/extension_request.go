package entities

import "time"

type ExtensionStatus string

const (
	ExtensionStatusPending  ExtensionStatus = "pending"
	ExtensionStatusApproved ExtensionStatus = "approved"
	ExtensionStatusRejected ExtensionStatus = "rejected"
)

// ExtensionRequest asks to move an order's due date.
//
// ValidReason is set when the request is approved and feeds KPI reporting:
// false means the delay was caused by staff.
type ExtensionRequest struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	RequestedBy    string          `json:"requested_by"`
	Reason         string          `json:"reason"`
	Status         ExtensionStatus `json:"status"`
	CurrentDueAt   *time.Time      `json:"current_due_at,omitempty"`
	NewDueAt       *time.Time      `json:"new_due_at,omitempty"`
	CustomerResult string          `json:"customer_result,omitempty"`
	ValidReason    *bool           `json:"valid_reason,omitempty"`
	ResolvedBy     string          `json:"resolved_by,omitempty"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
