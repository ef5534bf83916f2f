package entities

import "time"

type InvoiceStatus string

const (
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsActive reports whether the invoice still counts against its order.
func (s InvoiceStatus) IsActive() bool {
	return s == InvoiceStatusIssued || s == InvoiceStatusPaid
}

// Invoice bills an order. Amount is in minor currency units.
type Invoice struct {
	ID        string        `json:"id"`
	OrderID   string        `json:"order_id"`
	Amount    int64         `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	PaidAt    *time.Time    `json:"paid_at,omitempty"`
	Version   int           `json:"version"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
