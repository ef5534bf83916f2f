package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type execCall struct {
	sql  string
	args []any
}

// fakePool hands out fakeTx values whose Exec results come from respond.
// Statements are recorded whether they run on the pool or in a transaction.
type fakePool struct {
	respond   func(call execCall) (pgconn.CommandTag, error)
	calls     []execCall
	commits   int
	rollbacks int
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	call := execCall{sql: sql, args: args}
	p.calls = append(p.calls, call)
	if p.respond == nil {
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return p.respond(call)
}

func (p *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (p *fakePool) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	return &fakeTx{pool: p}, nil
}

func (p *fakePool) statements(prefix string) int {
	n := 0
	for _, c := range p.calls {
		if strings.HasPrefix(strings.TrimSpace(c.sql), prefix) {
			n++
		}
	}
	return n
}

// fakeTx implements the parts of pgx.Tx the repositories call; anything else
// panics through the nil embedded interface.
type fakeTx struct {
	pgx.Tx
	pool *fakePool
	done bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.pool.Exec(ctx, sql, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.done = true
	t.pool.commits++
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.pool.rollbacks++
	return nil
}

// failOn returns respond that answers the n-th statement starting with prefix
// with tag/err and every other statement with one affected row.
func failOn(prefix string, n int, tag string, err error) func(execCall) (pgconn.CommandTag, error) {
	seen := 0
	return func(call execCall) (pgconn.CommandTag, error) {
		if strings.HasPrefix(strings.TrimSpace(call.sql), prefix) {
			seen++
			if seen == n {
				return pgconn.NewCommandTag(tag), err
			}
		}
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
}

var txNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func routedTransition() interfaces.ItemTransition {
	closedAt := txNow
	return interfaces.ItemTransition{
		Items: []entities.OrderItem{
			{ID: "item-1", Status: entities.ItemStatusAssigned, CurrentDepartmentID: "paint", Version: 3, UpdatedAt: txNow},
			{ID: "item-2", Status: entities.ItemStatusAssigned, Version: 7, UpdatedAt: txNow},
		},
		CloseRouting: []entities.RoutingEvent{{ID: "ev-1", Status: entities.RoutingStatusClosed, ClosedAt: &closedAt}},
		OpenRouting:  &entities.RoutingEvent{ID: "ev-2", OrderItemID: "item-1", ToDepartmentID: "paint", Status: entities.RoutingStatusOpen, CreatedAt: txNow},
	}
}

func TestApplyTransitionCommitsEveryWrite(t *testing.T) {
	pool := &fakePool{respond: failOn("", 0, "", nil)}
	if err := NewStore(pool).Items().ApplyTransition(context.Background(), routedTransition()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if pool.commits != 1 || pool.rollbacks != 0 {
		t.Fatalf("expected one commit, got commits=%d rollbacks=%d", pool.commits, pool.rollbacks)
	}
	if got := pool.statements("UPDATE order_items"); got != 2 {
		t.Fatalf("expected 2 item updates, got %d", got)
	}
	if pool.statements("UPDATE routing_events") != 1 || pool.statements("INSERT INTO routing_events") != 1 {
		t.Fatalf("routing writes missing: %+v", pool.calls)
	}
	first := pool.calls[0]
	if !strings.Contains(first.sql, "version = $13") || first.args[12] != 3 {
		t.Fatalf("item update must check the loaded version, got %q args=%v", first.sql, first.args)
	}
}

func TestApplyTransitionRollsBackOnStaleVersion(t *testing.T) {
	pool := &fakePool{respond: failOn("UPDATE order_items", 2, "UPDATE 0", nil)}
	err := NewStore(pool).Items().ApplyTransition(context.Background(), routedTransition())
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
	if pool.commits != 0 || pool.rollbacks != 1 {
		t.Fatalf("expected rollback only, got commits=%d rollbacks=%d", pool.commits, pool.rollbacks)
	}
	if pool.statements("INSERT INTO routing_events") != 0 {
		t.Fatalf("no routing event may be written after a stale item")
	}
}

func TestApplyTransitionMapsErrors(t *testing.T) {
	t.Run("second open event", func(t *testing.T) {
		pool := &fakePool{respond: failOn("INSERT INTO routing_events", 1, "", &pgconn.PgError{Code: uniqueViolation})}
		err := NewStore(pool).Items().ApplyTransition(context.Background(), routedTransition())
		if !errors.Is(err, entities.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
		if pool.rollbacks != 1 {
			t.Fatalf("expected rollback")
		}
	})

	t.Run("event already closed", func(t *testing.T) {
		pool := &fakePool{respond: failOn("UPDATE routing_events", 1, "UPDATE 0", nil)}
		err := NewStore(pool).Items().ApplyTransition(context.Background(), routedTransition())
		if !errors.Is(err, entities.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("connection failure", func(t *testing.T) {
		boom := errors.New("connection reset")
		pool := &fakePool{respond: failOn("UPDATE order_items", 1, "", boom)}
		err := NewStore(pool).Items().ApplyTransition(context.Background(), routedTransition())
		if !errors.Is(err, boom) || errors.Is(err, entities.ErrConcurrentModification) {
			t.Fatalf("expected wrapped infrastructure error, got %v", err)
		}
	})
}

func paidInvoice() (entities.Invoice, []entities.Commission) {
	paidAt := txNow
	inv := entities.Invoice{ID: "inv-1", OrderID: "order-1", Status: entities.InvoiceStatusPaid, PaidAt: &paidAt, Version: 2, UpdatedAt: txNow}
	comms := []entities.Commission{
		{ID: "c-1", UserID: "sales-1", InvoiceID: "inv-1", OrderID: "order-1", CommissionType: entities.CommissionTypeSale, BaseAmount: 10000, Percentage: 5, Amount: 500, Status: entities.CommissionStatusPending, CreatedAt: txNow},
		{ID: "c-2", UserID: "tech-1", InvoiceID: "inv-1", OrderID: "order-1", LineItemID: "item-1", CommissionType: entities.CommissionTypeService, BaseAmount: 5000, Percentage: 20, Amount: 1000, Status: entities.CommissionStatusPending, CreatedAt: txNow},
	}
	return inv, comms
}

func TestMarkPaidWritesInvoiceAndCommissionsTogether(t *testing.T) {
	pool := &fakePool{respond: failOn("", 0, "", nil)}
	inv, comms := paidInvoice()
	if err := NewStore(pool).Invoices().MarkPaid(context.Background(), inv, comms); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if pool.commits != 1 || pool.statements("INSERT INTO commissions") != 2 {
		t.Fatalf("expected one commit with 2 inserts, got commits=%d calls=%+v", pool.commits, pool.calls)
	}
	flip := pool.calls[0]
	if !strings.Contains(flip.sql, "status = 'issued'") || flip.args[4] != 2 {
		t.Fatalf("invoice flip must be guarded by status and version, got %q args=%v", flip.sql, flip.args)
	}
}

func TestMarkPaidAlreadyPaid(t *testing.T) {
	pool := &fakePool{respond: failOn("UPDATE invoices", 1, "UPDATE 0", nil)}
	inv, comms := paidInvoice()
	err := NewStore(pool).Invoices().MarkPaid(context.Background(), inv, comms)
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
	if pool.statements("INSERT INTO commissions") != 0 || pool.rollbacks != 1 {
		t.Fatalf("a lost flip must insert nothing and roll back: %+v", pool.calls)
	}
}

func TestMarkPaidDuplicateCommissionRollsBack(t *testing.T) {
	pool := &fakePool{respond: failOn("INSERT INTO commissions", 2, "", &pgconn.PgError{Code: uniqueViolation})}
	inv, comms := paidInvoice()
	err := NewStore(pool).Invoices().MarkPaid(context.Background(), inv, comms)
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
	if pool.commits != 0 || pool.rollbacks != 1 {
		t.Fatalf("expected rollback only, got commits=%d rollbacks=%d", pool.commits, pool.rollbacks)
	}
}

func TestWorkflowStepsKeepIDAndRequiredFlag(t *testing.T) {
	pool := &fakePool{}
	wf := entities.WorkflowDefinition{
		ID:   "wf-1",
		Name: "Detailing",
		Steps: []entities.WorkflowStep{
			{ID: "st-1", StepOrder: 1, Name: "Wash", DepartmentID: "wash", IsRequired: true},
			{ID: "st-2", StepOrder: 2, Name: "Polish", DepartmentID: "polish"},
		},
		CreatedAt: txNow,
	}
	if _, err := NewStore(pool).Workflows().Create(context.Background(), wf); err != nil {
		t.Fatalf("create: %v", err)
	}
	raw, ok := pool.calls[0].args[2].(string)
	if !ok {
		t.Fatalf("steps column should be JSON text, got %T", pool.calls[0].args[2])
	}
	var steps []entities.WorkflowStep
	if err := fromJSON([]byte(raw), &steps); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(steps) != 2 || steps[0].ID != "st-1" || !steps[0].IsRequired || steps[1].IsRequired {
		t.Fatalf("unexpected stored steps: %s", raw)
	}
}
