package repository

import (
	"fulfillment_engine/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// Records mirror the entities with DynamoDB attribute names. Times are
// RFC3339Nano strings; optional attributes are omitted when empty so that
// attribute_not_exists conditions work on them.

type orderRecord struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	SalesRepID         string `dynamodbav:"sales_rep_id,omitempty"`
	WorkflowID         string `dynamodbav:"workflow_id,omitempty"`
	TotalAmount        int64  `dynamodbav:"total_amount"`
	DueAt              string `dynamodbav:"due_at,omitempty"`
	PendingExtensionID string `dynamodbav:"pending_extension_id,omitempty"`
	ActiveInvoiceID    string `dynamodbav:"active_invoice_id,omitempty"`
	Version            int    `dynamodbav:"version"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

type technicianRecord struct {
	TechnicianID      string  `dynamodbav:"technician_id"`
	CommissionPercent float64 `dynamodbav:"commission_percent"`
}

type orderItemRecord struct {
	ID                  string             `dynamodbav:"id"`
	OrderID             string             `dynamodbav:"order_id"`
	ParentItemID        string             `dynamodbav:"parent_item_id,omitempty"`
	LineNumber          int                `dynamodbav:"line_number"`
	ItemType            string             `dynamodbav:"item_type"`
	ItemCode            string             `dynamodbav:"item_code"`
	Name                string             `dynamodbav:"name"`
	Quantity            int                `dynamodbav:"quantity"`
	UnitPrice           int64              `dynamodbav:"unit_price"`
	TotalPrice          int64              `dynamodbav:"total_price"`
	IsCustomerSupplied  bool               `dynamodbav:"is_customer_supplied"`
	Status              string             `dynamodbav:"status"`
	CurrentDepartmentID string             `dynamodbav:"current_department_id,omitempty"`
	OpenRoutingEventID  string             `dynamodbav:"open_routing_event_id,omitempty"`
	Technicians         []technicianRecord `dynamodbav:"technicians"`
	WorkflowID          string             `dynamodbav:"workflow_id,omitempty"`
	WorkflowStepIndex   int                `dynamodbav:"workflow_step_index"`
	Note                string             `dynamodbav:"note,omitempty"`
	StatusReason        string             `dynamodbav:"status_reason,omitempty"`
	StartedAt           string             `dynamodbav:"started_at,omitempty"`
	CompletedAt         string             `dynamodbav:"completed_at,omitempty"`
	Version             int                `dynamodbav:"version"`
	CreatedAt           string             `dynamodbav:"created_at"`
	UpdatedAt           string             `dynamodbav:"updated_at"`
}

type routingEventRecord struct {
	ID               string `dynamodbav:"id"`
	OrderItemID      string `dynamodbav:"order_item_id"`
	FromDepartmentID string `dynamodbav:"from_department_id,omitempty"`
	ToDepartmentID   string `dynamodbav:"to_department_id"`
	Reason           string `dynamodbav:"reason"`
	Deadline         string `dynamodbav:"deadline"`
	Status           string `dynamodbav:"status"`
	CreatedBy        string `dynamodbav:"created_by,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	ClosedAt         string `dynamodbav:"closed_at,omitempty"`
}

type extensionRequestRecord struct {
	ID             string `dynamodbav:"id"`
	OrderID        string `dynamodbav:"order_id"`
	RequestedBy    string `dynamodbav:"requested_by,omitempty"`
	Reason         string `dynamodbav:"reason"`
	Status         string `dynamodbav:"status"`
	CurrentDueAt   string `dynamodbav:"current_due_at,omitempty"`
	NewDueAt       string `dynamodbav:"new_due_at,omitempty"`
	CustomerResult string `dynamodbav:"customer_result,omitempty"`
	ValidReason    *bool  `dynamodbav:"valid_reason,omitempty"`
	ResolvedBy     string `dynamodbav:"resolved_by,omitempty"`
	ApprovedBy     string `dynamodbav:"approved_by,omitempty"`
	ApprovedAt     string `dynamodbav:"approved_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type invoiceRecord struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	Amount    int64  `dynamodbav:"amount"`
	Status    string `dynamodbav:"status"`
	PaidAt    string `dynamodbav:"paid_at,omitempty"`
	Version   int    `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type commissionRecord struct {
	ID             string  `dynamodbav:"id"`
	UserID         string  `dynamodbav:"user_id"`
	InvoiceID      string  `dynamodbav:"invoice_id"`
	OrderID        string  `dynamodbav:"order_id"`
	LineItemID     string  `dynamodbav:"line_item_id,omitempty"`
	CommissionType string  `dynamodbav:"commission_type"`
	BaseAmount     int64   `dynamodbav:"base_amount"`
	Percentage     float64 `dynamodbav:"percentage"`
	Amount         int64   `dynamodbav:"amount"`
	Status         string  `dynamodbav:"status"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

type workflowStepRecord struct {
	ID                     string `dynamodbav:"id"`
	StepOrder              int    `dynamodbav:"step_order"`
	Name                   string `dynamodbav:"name"`
	DepartmentID           string `dynamodbav:"department_id"`
	EstimatedDurationHours int    `dynamodbav:"estimated_duration_hours"`
	IsRequired             bool   `dynamodbav:"is_required"`
}

type workflowRecord struct {
	ID        string               `dynamodbav:"id"`
	Name      string               `dynamodbav:"name"`
	Steps     []workflowStepRecord `dynamodbav:"steps"`
	CreatedAt string               `dynamodbav:"created_at"`
}

func marshalMap(v any) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal record")
	}
	return av, nil
}

func unmarshalMap(av map[string]types.AttributeValue, out any) error {
	if err := attributevalue.UnmarshalMap(av, out); err != nil {
		return errors.Wrap(err, "unmarshal record")
	}
	return nil
}

func toOrderRecord(o entities.Order) orderRecord {
	return orderRecord{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		SalesRepID:         o.SalesRepID,
		WorkflowID:         o.WorkflowID,
		TotalAmount:        o.TotalAmount,
		DueAt:              formatTimePtr(o.DueAt),
		PendingExtensionID: o.PendingExtensionID,
		ActiveInvoiceID:    o.ActiveInvoiceID,
		Version:            o.Version,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
	}
}

func fromOrderRecord(r orderRecord) entities.Order {
	return entities.Order{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		SalesRepID:         r.SalesRepID,
		WorkflowID:         r.WorkflowID,
		TotalAmount:        r.TotalAmount,
		DueAt:              parseTimePtr(r.DueAt),
		PendingExtensionID: r.PendingExtensionID,
		ActiveInvoiceID:    r.ActiveInvoiceID,
		Version:            r.Version,
		CreatedAt:          parseTime(r.CreatedAt),
		UpdatedAt:          parseTime(r.UpdatedAt),
	}
}

func toOrderItemRecord(it entities.OrderItem) orderItemRecord {
	techs := make([]technicianRecord, 0, len(it.AssignedTechnicians))
	for _, t := range it.AssignedTechnicians {
		techs = append(techs, technicianRecord{TechnicianID: t.TechnicianID, CommissionPercent: t.CommissionPercent})
	}
	return orderItemRecord{
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
		OpenRoutingEventID:  it.OpenRoutingEventID,
		Technicians:         techs,
		WorkflowID:          it.WorkflowID,
		WorkflowStepIndex:   it.WorkflowStepIndex,
		Note:                it.Note,
		StatusReason:        it.StatusReason,
		StartedAt:           formatTimePtr(it.StartedAt),
		CompletedAt:         formatTimePtr(it.CompletedAt),
		Version:             it.Version,
		CreatedAt:           formatTime(it.CreatedAt),
		UpdatedAt:           formatTime(it.UpdatedAt),
	}
}

func fromOrderItemRecord(r orderItemRecord) entities.OrderItem {
	techs := make([]entities.TechnicianAssignment, 0, len(r.Technicians))
	for _, t := range r.Technicians {
		techs = append(techs, entities.TechnicianAssignment{TechnicianID: t.TechnicianID, CommissionPercent: t.CommissionPercent})
	}
	return entities.OrderItem{
		ID:                  r.ID,
		OrderID:             r.OrderID,
		ParentItemID:        r.ParentItemID,
		LineNumber:          r.LineNumber,
		ItemType:            entities.ItemType(r.ItemType),
		ItemCode:            r.ItemCode,
		Name:                r.Name,
		Quantity:            r.Quantity,
		UnitPrice:           r.UnitPrice,
		TotalPrice:          r.TotalPrice,
		IsCustomerSupplied:  r.IsCustomerSupplied,
		Status:              entities.ItemStatus(r.Status),
		CurrentDepartmentID: r.CurrentDepartmentID,
		OpenRoutingEventID:  r.OpenRoutingEventID,
		AssignedTechnicians: techs,
		WorkflowID:          r.WorkflowID,
		WorkflowStepIndex:   r.WorkflowStepIndex,
		Note:                r.Note,
		StatusReason:        r.StatusReason,
		StartedAt:           parseTimePtr(r.StartedAt),
		CompletedAt:         parseTimePtr(r.CompletedAt),
		Version:             r.Version,
		CreatedAt:           parseTime(r.CreatedAt),
		UpdatedAt:           parseTime(r.UpdatedAt),
	}
}

func toRoutingEventRecord(e entities.RoutingEvent) routingEventRecord {
	from := ""
	if e.FromDepartmentID != nil {
		from = *e.FromDepartmentID
	}
	return routingEventRecord{
		ID:               e.ID,
		OrderItemID:      e.OrderItemID,
		FromDepartmentID: from,
		ToDepartmentID:   e.ToDepartmentID,
		Reason:           e.Reason,
		Deadline:         formatTime(e.Deadline),
		Status:           string(e.Status),
		CreatedBy:        e.CreatedBy,
		CreatedAt:        formatTime(e.CreatedAt),
		ClosedAt:         formatTimePtr(e.ClosedAt),
	}
}

func fromRoutingEventRecord(r routingEventRecord) entities.RoutingEvent {
	var from *string
	if r.FromDepartmentID != "" {
		f := r.FromDepartmentID
		from = &f
	}
	return entities.RoutingEvent{
		ID:               r.ID,
		OrderItemID:      r.OrderItemID,
		FromDepartmentID: from,
		ToDepartmentID:   r.ToDepartmentID,
		Reason:           r.Reason,
		Deadline:         parseTime(r.Deadline),
		Status:           entities.RoutingStatus(r.Status),
		CreatedBy:        r.CreatedBy,
		CreatedAt:        parseTime(r.CreatedAt),
		ClosedAt:         parseTimePtr(r.ClosedAt),
	}
}

func toExtensionRequestRecord(e entities.ExtensionRequest) extensionRequestRecord {
	return extensionRequestRecord{
		ID:             e.ID,
		OrderID:        e.OrderID,
		RequestedBy:    e.RequestedBy,
		Reason:         e.Reason,
		Status:         string(e.Status),
		CurrentDueAt:   formatTimePtr(e.CurrentDueAt),
		NewDueAt:       formatTimePtr(e.NewDueAt),
		CustomerResult: e.CustomerResult,
		ValidReason:    e.ValidReason,
		ResolvedBy:     e.ResolvedBy,
		ApprovedBy:     e.ApprovedBy,
		ApprovedAt:     formatTimePtr(e.ApprovedAt),
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
	}
}

func fromExtensionRequestRecord(r extensionRequestRecord) entities.ExtensionRequest {
	return entities.ExtensionRequest{
		ID:             r.ID,
		OrderID:        r.OrderID,
		RequestedBy:    r.RequestedBy,
		Reason:         r.Reason,
		Status:         entities.ExtensionStatus(r.Status),
		CurrentDueAt:   parseTimePtr(r.CurrentDueAt),
		NewDueAt:       parseTimePtr(r.NewDueAt),
		CustomerResult: r.CustomerResult,
		ValidReason:    r.ValidReason,
		ResolvedBy:     r.ResolvedBy,
		ApprovedBy:     r.ApprovedBy,
		ApprovedAt:     parseTimePtr(r.ApprovedAt),
		CreatedAt:      parseTime(r.CreatedAt),
		UpdatedAt:      parseTime(r.UpdatedAt),
	}
}

func toInvoiceRecord(inv entities.Invoice) invoiceRecord {
	return invoiceRecord{
		ID:        inv.ID,
		OrderID:   inv.OrderID,
		Amount:    inv.Amount,
		Status:    string(inv.Status),
		PaidAt:    formatTimePtr(inv.PaidAt),
		Version:   inv.Version,
		CreatedAt: formatTime(inv.CreatedAt),
		UpdatedAt: formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceRecord(r invoiceRecord) entities.Invoice {
	return entities.Invoice{
		ID:        r.ID,
		OrderID:   r.OrderID,
		Amount:    r.Amount,
		Status:    entities.InvoiceStatus(r.Status),
		PaidAt:    parseTimePtr(r.PaidAt),
		Version:   r.Version,
		CreatedAt: parseTime(r.CreatedAt),
		UpdatedAt: parseTime(r.UpdatedAt),
	}
}

func toCommissionRecord(c entities.Commission) commissionRecord {
	return commissionRecord{
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
		CreatedAt:      formatTime(c.CreatedAt),
	}
}

func fromCommissionRecord(r commissionRecord) entities.Commission {
	return entities.Commission{
		ID:             r.ID,
		UserID:         r.UserID,
		InvoiceID:      r.InvoiceID,
		OrderID:        r.OrderID,
		LineItemID:     r.LineItemID,
		CommissionType: entities.CommissionType(r.CommissionType),
		BaseAmount:     r.BaseAmount,
		Percentage:     r.Percentage,
		Amount:         r.Amount,
		Status:         entities.CommissionStatus(r.Status),
		CreatedAt:      parseTime(r.CreatedAt),
	}
}

func toWorkflowRecord(wf entities.WorkflowDefinition) workflowRecord {
	steps := make([]workflowStepRecord, 0, len(wf.Steps))
	for _, s := range wf.Steps {
		steps = append(steps, workflowStepRecord(s))
	}
	return workflowRecord{ID: wf.ID, Name: wf.Name, Steps: steps, CreatedAt: formatTime(wf.CreatedAt)}
}

func fromWorkflowRecord(r workflowRecord) entities.WorkflowDefinition {
	steps := make([]entities.WorkflowStep, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, entities.WorkflowStep(s))
	}
	return entities.WorkflowDefinition{ID: r.ID, Name: r.Name, Steps: steps, CreatedAt: parseTime(r.CreatedAt)}
}
