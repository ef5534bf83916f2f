package entities

import "time"

type RoutingStatus string

const (
	RoutingStatusOpen   RoutingStatus = "open"
	RoutingStatusClosed RoutingStatus = "closed"
)

// RoutingEvent records one move of an item into a department. Events are
// append-only apart from closing; an item has at most one open event.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_item_id-index): order_item_id
type RoutingEvent struct {
	ID               string        `json:"id"`
	OrderItemID      string        `json:"order_item_id"`
	FromDepartmentID *string       `json:"from_department_id"`
	ToDepartmentID   string        `json:"to_department_id"`
	Reason           string        `json:"reason"`
	Deadline         time.Time     `json:"deadline"`
	Status           RoutingStatus `json:"status"`
	CreatedBy        string        `json:"created_by,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	ClosedAt         *time.Time    `json:"closed_at,omitempty"`
}

// Close returns a closed copy of e.
func (e RoutingEvent) Close(at time.Time) RoutingEvent {
	e.Status = RoutingStatusClosed
	e.ClosedAt = &at
	return e
}
