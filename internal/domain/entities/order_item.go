package entities

import "time"

// ItemType distinguishes stock products from labour lines.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

func (t ItemType) IsValid() bool {
	return t == ItemTypeProduct || t == ItemTypeService
}

// ItemStatus is the per-line fulfillment state.
//
// Allowed moves:
//
//	pending     -> assigned | skipped | failed
//	assigned    -> assigned | in_progress | completed | skipped | failed
//	in_progress -> completed | skipped | failed
//
// completed, skipped and failed are terminal.
type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusAssigned   ItemStatus = "assigned"
	ItemStatusInProgress ItemStatus = "in_progress"
	ItemStatusCompleted  ItemStatus = "completed"
	ItemStatusSkipped    ItemStatus = "skipped"
	ItemStatusFailed     ItemStatus = "failed"
)

var itemTransitions = map[ItemStatus][]ItemStatus{
	ItemStatusPending:    {ItemStatusAssigned, ItemStatusSkipped, ItemStatusFailed},
	ItemStatusAssigned:   {ItemStatusAssigned, ItemStatusInProgress, ItemStatusCompleted, ItemStatusSkipped, ItemStatusFailed},
	ItemStatusInProgress: {ItemStatusCompleted, ItemStatusSkipped, ItemStatusFailed},
}

// ItemStatuses lists every status in lifecycle order.
func ItemStatuses() []ItemStatus {
	return []ItemStatus{
		ItemStatusPending,
		ItemStatusAssigned,
		ItemStatusInProgress,
		ItemStatusCompleted,
		ItemStatusSkipped,
		ItemStatusFailed,
	}
}

func (s ItemStatus) IsValid() bool {
	for _, st := range ItemStatuses() {
		if st == s {
			return true
		}
	}
	return false
}

func (s ItemStatus) IsTerminal() bool {
	return s == ItemStatusCompleted || s == ItemStatusSkipped || s == ItemStatusFailed
}

// CanTransition reports whether the state machine allows s -> to.
func (s ItemStatus) CanTransition(to ItemStatus) bool {
	for _, allowed := range itemTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TechnicianAssignment is one technician on a service line and the share
// of the line's unit price they earn when the invoice is paid.
type TechnicianAssignment struct {
	TechnicianID      string  `json:"technician_id"`
	CommissionPercent float64 `json:"commission_percent"`
}

// OrderItem is a single line of an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Monetary representation:
//   - UnitPrice and TotalPrice are integer minor currency units.
//
// Concurrency:
//   - Version is incremented on every write; writers condition on the
//     version they read.
//   - OpenRoutingEventID mirrors the single open routing event so adapters
//     can close it in the same write that opens the next one.
type OrderItem struct {
	ID                  string                 `json:"id"`
	OrderID             string                 `json:"order_id"`
	ParentItemID        string                 `json:"parent_item_id,omitempty"`
	LineNumber          int                    `json:"line_number"`
	ItemType            ItemType               `json:"item_type"`
	ItemCode            string                 `json:"item_code"`
	Name                string                 `json:"name"`
	Quantity            int                    `json:"quantity"`
	UnitPrice           int64                  `json:"unit_price"`
	TotalPrice          int64                  `json:"total_price"`
	IsCustomerSupplied  bool                   `json:"is_customer_supplied"`
	Status              ItemStatus             `json:"status"`
	CurrentDepartmentID string                 `json:"current_department_id,omitempty"`
	OpenRoutingEventID  string                 `json:"open_routing_event_id,omitempty"`
	AssignedTechnicians []TechnicianAssignment `json:"assigned_technicians"`
	WorkflowID          string                 `json:"workflow_id,omitempty"`
	WorkflowStepIndex   int                    `json:"workflow_step_index"`
	Note                string                 `json:"note,omitempty"`
	StatusReason        string                 `json:"status_reason,omitempty"`
	StartedAt           *time.Time             `json:"started_at,omitempty"`
	CompletedAt         *time.Time             `json:"completed_at,omitempty"`
	Version             int                    `json:"version"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// TechnicianPercentTotal sums the commission percentages on the line.
func (i OrderItem) TechnicianPercentTotal() float64 {
	var total float64
	for _, t := range i.AssignedTechnicians {
		total += t.CommissionPercent
	}
	return total
}

// IsService reports whether the line is labour rather than stock.
func (i OrderItem) IsService() bool {
	return i.ItemType == ItemTypeService
}
