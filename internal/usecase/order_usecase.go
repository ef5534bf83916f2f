package usecase

import (
	"context"
	"strings"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CreateItemCommand describes one requested line. ParentIndex, when set,
// points at an earlier line of the same request and groups the two.
type CreateItemCommand struct {
	ItemType           entities.ItemType
	Name               string
	Quantity           int
	UnitPrice          int64
	IsCustomerSupplied bool
	ParentIndex        *int
	Technicians        []entities.TechnicianAssignment
}

type CreateOrderCommand struct {
	CustomerID string
	SalesRepID string
	WorkflowID string
	DueAt      *time.Time
	Items      []CreateItemCommand
}

// OrderDetails is an order with its lines and derived progress.
type OrderDetails struct {
	Order    entities.Order
	Items    []entities.OrderItem
	Progress entities.OrderProgress
}

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (OrderDetails, error)
	GetOrder(ctx context.Context, orderID string) (OrderDetails, error)
	GetProgress(ctx context.Context, orderID string) (entities.OrderProgress, error)
	IssueInvoice(ctx context.Context, orderID string) (entities.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error)
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	items     interfaces.IOrderItemRepository
	invoices  interfaces.IInvoiceRepository
	workflows interfaces.IWorkflowRepository
	log       zerolog.Logger
	now       func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	items interfaces.IOrderItemRepository,
	invoices interfaces.IInvoiceRepository,
	workflows interfaces.IWorkflowRepository,
	log zerolog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		items:     items,
		invoices:  invoices,
		workflows: workflows,
		log:       log.With().Str("component", "order").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (OrderDetails, error) {
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return OrderDetails{}, entities.NewValidationError("customer_id", "required")
	}
	if len(cmd.Items) == 0 {
		return OrderDetails{}, entities.NewValidationError("items", "at least one item required")
	}

	workflowID := strings.TrimSpace(cmd.WorkflowID)
	if workflowID != "" {
		wf, err := u.workflows.GetByID(ctx, workflowID)
		if err != nil {
			return OrderDetails{}, err
		}
		if wf.ID == "" {
			return OrderDetails{}, ErrWorkflowNotFound
		}
	}

	now := u.now()
	order := entities.Order{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		SalesRepID: strings.TrimSpace(cmd.SalesRepID),
		WorkflowID: workflowID,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if cmd.DueAt != nil {
		due := cmd.DueAt.UTC()
		order.DueAt = &due
	}

	items := make([]entities.OrderItem, 0, len(cmd.Items))
	for i, ic := range cmd.Items {
		it, err := buildItem(order, ic, i, items, now)
		if err != nil {
			return OrderDetails{}, err
		}
		if workflowID != "" && it.IsService() {
			it.WorkflowID = workflowID
		}
		items = append(items, it)
	}
	total, err := entities.BillableTotal(items)
	if err != nil {
		return OrderDetails{}, err
	}
	order.TotalAmount = total

	created, err := u.orders.Create(ctx, order, items)
	if err != nil {
		return OrderDetails{}, err
	}
	u.log.Info().Str("order_id", created.ID).Int("items", len(items)).Int64("total_amount", created.TotalAmount).Msg("order created")
	return OrderDetails{Order: created, Items: items, Progress: entities.ComputeProgress(created.ID, items)}, nil
}

func buildItem(order entities.Order, ic CreateItemCommand, idx int, earlier []entities.OrderItem, now time.Time) (entities.OrderItem, error) {
	if !ic.ItemType.IsValid() {
		return entities.OrderItem{}, entities.NewValidationError("item_type", "must be product or service")
	}
	name := strings.TrimSpace(ic.Name)
	if name == "" {
		return entities.OrderItem{}, entities.NewValidationError("name", "required")
	}
	if ic.Quantity < 1 {
		return entities.OrderItem{}, entities.NewValidationError("quantity", "must be at least 1")
	}
	if ic.UnitPrice < 0 {
		return entities.OrderItem{}, entities.NewValidationError("unit_price", "must not be negative")
	}
	if len(ic.Technicians) > 0 && ic.ItemType != entities.ItemTypeService {
		return entities.OrderItem{}, entities.NewValidationError("technicians", "only service items take technicians")
	}
	techs, err := normalizeTechnicians(ic.Technicians)
	if err != nil {
		return entities.OrderItem{}, err
	}
	lineTotal, err := entities.LineTotal(ic.Quantity, ic.UnitPrice)
	if err != nil {
		return entities.OrderItem{}, err
	}

	it := entities.OrderItem{
		ID:                  uuid.NewString(),
		OrderID:             order.ID,
		ItemType:            ic.ItemType,
		LineNumber:          idx + 1,
		ItemCode:            newItemCode(),
		Name:                name,
		Quantity:            ic.Quantity,
		UnitPrice:           ic.UnitPrice,
		TotalPrice:          lineTotal,
		IsCustomerSupplied:  ic.IsCustomerSupplied,
		Status:              entities.ItemStatusPending,
		AssignedTechnicians: techs,
		WorkflowStepIndex:   -1,
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if ic.ParentIndex != nil {
		p := *ic.ParentIndex
		if p < 0 || p >= idx {
			return entities.OrderItem{}, entities.NewValidationError("parent_index", "must reference an earlier item")
		}
		it.ParentItemID = earlier[p].ID
	}
	return it, nil
}

func newItemCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "IT-" + strings.ToUpper(hex[:10])
}

func (u *OrderUseCase) GetOrder(ctx context.Context, orderID string) (OrderDetails, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return OrderDetails{}, err
	}
	items, err := u.items.ListByOrderID(ctx, order.ID)
	if err != nil {
		return OrderDetails{}, err
	}
	return OrderDetails{Order: order, Items: items, Progress: entities.ComputeProgress(order.ID, items)}, nil
}

func (u *OrderUseCase) GetProgress(ctx context.Context, orderID string) (entities.OrderProgress, error) {
	d, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return entities.OrderProgress{}, err
	}
	return d.Progress, nil
}

// IssueInvoice bills a finished order. An order has at most one active invoice.
func (u *OrderUseCase) IssueInvoice(ctx context.Context, orderID string) (entities.Invoice, error) {
	d, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if d.Order.ActiveInvoiceID != "" {
		return entities.Invoice{}, entities.NewConflictError("invoice", d.Order.ID, "order already has an active invoice")
	}
	if !d.Progress.ReadyToInvoice {
		return entities.Invoice{}, entities.NewInvalidTransitionError(d.Order.ID, "in_fulfillment", "invoiced")
	}

	now := u.now()
	inv := entities.Invoice{
		ID:        uuid.NewString(),
		OrderID:   d.Order.ID,
		Amount:    d.Order.TotalAmount,
		Status:    entities.InvoiceStatusIssued,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.log.Info().Str("order_id", d.Order.ID).Str("invoice_id", created.ID).Int64("amount", created.Amount).Msg("invoice issued")
	return created, nil
}

func (u *OrderUseCase) GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, entities.NewValidationError("invoice_id", "required")
	}
	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *OrderUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.NewValidationError("order_id", "required")
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
