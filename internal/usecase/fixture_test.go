package usecase

import (
	"context"
	"testing"
	"time"

	"fulfillment_engine/internal/adapter/persistence/memory"
	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store      *memory.Store
	lifecycle  *LifecycleUseCase
	routing    *RoutingUseCase
	extension  *ExtensionUseCase
	commission *CommissionUseCase
	orders     *OrderUseCase
	workflows  *WorkflowUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	log := zerolog.Nop()
	clock := func() time.Time { return fixedNow }

	f := &fixture{
		store:      s,
		lifecycle:  NewLifecycleUseCase(s.Items(), s.Routing(), log),
		routing:    NewRoutingUseCase(s.Items(), s.Routing(), s.Workflows(), log),
		extension:  NewExtensionUseCase(s.Orders(), s.Extensions(), log),
		commission: NewCommissionUseCase(s.Invoices(), s.Orders(), s.Items(), s.Commissions(), 0.05, log),
		orders:     NewOrderUseCase(s.Orders(), s.Items(), s.Invoices(), s.Workflows(), log),
		workflows:  NewWorkflowUseCase(s.Workflows()),
	}
	f.lifecycle.now = clock
	f.routing.now = clock
	f.extension.now = clock
	f.commission.now = clock
	f.orders.now = clock
	return f
}

// createOrder places an order and returns it with its items in request order.
func (f *fixture) createOrder(t *testing.T, cmd CreateOrderCommand) OrderDetails {
	t.Helper()
	if cmd.CustomerID == "" {
		cmd.CustomerID = "cus-1"
	}
	d, err := f.orders.CreateOrder(context.Background(), cmd)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return d
}

func serviceLine(name string, unitPrice int64, techs ...entities.TechnicianAssignment) CreateItemCommand {
	return CreateItemCommand{
		ItemType:    entities.ItemTypeService,
		Name:        name,
		Quantity:    1,
		UnitPrice:   unitPrice,
		Technicians: techs,
	}
}

func productLine(name string, qty int, unitPrice int64) CreateItemCommand {
	return CreateItemCommand{ItemType: entities.ItemTypeProduct, Name: name, Quantity: qty, UnitPrice: unitPrice}
}

func tech(id string, pct float64) entities.TechnicianAssignment {
	return entities.TechnicianAssignment{TechnicianID: id, CommissionPercent: pct}
}

func (f *fixture) item(t *testing.T, id string) entities.OrderItem {
	t.Helper()
	it, err := f.store.Items().GetByID(context.Background(), id)
	if err != nil || it.ID == "" {
		t.Fatalf("load item %s: %v", id, err)
	}
	return it
}

// assignAndStart moves a pending item to in_progress.
func (f *fixture) assignAndStart(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	if _, err := f.lifecycle.Assign(ctx, id, AssignCommand{DepartmentID: "dep-workshop"}); err != nil {
		t.Fatalf("assign %s: %v", id, err)
	}
	if _, err := f.lifecycle.Start(ctx, id); err != nil {
		t.Fatalf("start %s: %v", id, err)
	}
}

func itemOnly(it entities.OrderItem) interfaces.ItemTransition {
	return interfaces.ItemTransition{Items: []entities.OrderItem{it}}
}
