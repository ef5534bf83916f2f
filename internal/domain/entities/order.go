package entities

import (
	"math"
	"time"
)

// Order groups the lines a customer requested.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PendingExtensionID and ActiveInvoiceID are maintained by the adapters so
// that "at most one pending extension" and "at most one active invoice"
// can be enforced with a conditional write on the order row.
type Order struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customer_id"`
	SalesRepID         string     `json:"sales_rep_id,omitempty"`
	WorkflowID         string     `json:"workflow_id,omitempty"`
	TotalAmount        int64      `json:"total_amount"`
	DueAt              *time.Time `json:"due_at,omitempty"`
	PendingExtensionID string     `json:"pending_extension_id,omitempty"`
	ActiveInvoiceID    string     `json:"active_invoice_id,omitempty"`
	Version            int        `json:"version"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// OrderProgress is derived from the current item statuses on every read.
type OrderProgress struct {
	OrderID        string             `json:"order_id"`
	TotalItems     int                `json:"total_items"`
	ByStatus       map[ItemStatus]int `json:"by_status"`
	Terminal       int                `json:"terminal"`
	ReadyToInvoice bool               `json:"ready_to_invoice"`
}

// ComputeProgress summarises items. An order is ready to invoice when every
// line is terminal and at least one was completed.
func ComputeProgress(orderID string, items []OrderItem) OrderProgress {
	p := OrderProgress{
		OrderID:    orderID,
		TotalItems: len(items),
		ByStatus:   make(map[ItemStatus]int, len(ItemStatuses())),
	}
	for _, st := range ItemStatuses() {
		p.ByStatus[st] = 0
	}
	for _, it := range items {
		p.ByStatus[it.Status]++
		if it.Status.IsTerminal() {
			p.Terminal++
		}
	}
	p.ReadyToInvoice = p.TotalItems > 0 && p.Terminal == p.TotalItems && p.ByStatus[ItemStatusCompleted] > 0
	return p
}

// LineTotal is quantity * unitPrice, rejected when it does not fit in int64.
func LineTotal(quantity int, unitPrice int64) (int64, error) {
	if quantity > 0 && unitPrice > math.MaxInt64/int64(quantity) {
		return 0, NewValidationError("unit_price", "line total exceeds the supported amount")
	}
	return int64(quantity) * unitPrice, nil
}

// BillableTotal sums TotalPrice of lines the shop supplies.
func BillableTotal(items []OrderItem) (int64, error) {
	var total int64
	for _, it := range items {
		if it.IsCustomerSupplied {
			continue
		}
		if it.TotalPrice > math.MaxInt64-total {
			return 0, NewValidationError("items", "order total exceeds the supported amount")
		}
		total += it.TotalPrice
	}
	return total, nil
}
