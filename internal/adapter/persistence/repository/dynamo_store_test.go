package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps rows per table and records transactions. When txErr is
// set, TransactWriteItems fails with it and writes nothing.
type fakeDynamo struct {
	rows    map[string]map[string]map[string]types.AttributeValue
	txs     [][]types.TransactWriteItem
	txErr   error
	created []string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{rows: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) put(table string, av map[string]types.AttributeValue) {
	if f.rows[table] == nil {
		f.rows[table] = map[string]map[string]types.AttributeValue{}
	}
	id := av["id"].(*types.AttributeValueMemberS).Value
	f.rows[table][id] = av
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.rows[aws.ToString(in.TableName)][id]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	if _, exists := f.rows[aws.ToString(in.TableName)][id]; exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.put(aws.ToString(in.TableName), in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	attr := in.ExpressionAttributeNames["#k"]
	want := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value
	var items []map[string]types.AttributeValue
	for _, row := range f.rows[aws.ToString(in.TableName)] {
		if v, ok := row[attr].(*types.AttributeValueMemberS); ok && v.Value == want {
			items = append(items, row)
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	var items []map[string]types.AttributeValue
	for _, row := range f.rows[aws.ToString(in.TableName)] {
		items = append(items, row)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.txs = append(f.txs, in.TransactItems)
	if f.txErr != nil {
		return nil, f.txErr
	}
	for _, it := range in.TransactItems {
		if it.Put != nil {
			f.put(aws.ToString(it.Put.TableName), it.Put.Item)
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	for _, c := range f.created {
		if c == name {
			return nil, &types.ResourceInUseException{Message: aws.String("exists")}
		}
	}
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

var testTables = Tables{
	Orders:      "orders",
	OrderItems:  "order_items",
	Routing:     "routing_events",
	Extensions:  "extension_requests",
	Invoices:    "invoices",
	Commissions: "commissions",
	Workflows:   "workflows",
}

func conditionCancelled() error {
	return &types.TransactionCanceledException{
		Message: aws.String("cancelled"),
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
}

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func sampleItem() entities.OrderItem {
	started := t0.Add(time.Hour)
	return entities.OrderItem{
		ID:                  "item-1",
		OrderID:             "order-1",
		LineNumber:          1,
		ItemType:            entities.ItemTypeService,
		ItemCode:            "IT-0A1B2C3D4E",
		Name:                "Brake service",
		Quantity:            2,
		UnitPrice:           5000,
		TotalPrice:          10000,
		Status:              entities.ItemStatusInProgress,
		CurrentDepartmentID: "dept-1",
		AssignedTechnicians: []entities.TechnicianAssignment{
			{TechnicianID: "tech-1", CommissionPercent: 12.5},
			{TechnicianID: "tech-2", CommissionPercent: 7.5},
		},
		WorkflowStepIndex: -1,
		StartedAt:         &started,
		Version:           3,
		CreatedAt:         t0,
		UpdatedAt:         started,
	}
}

func TestOrderItemRecordRoundTrip(t *testing.T) {
	in := sampleItem()
	av, err := marshalMap(toOrderItemRecord(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["completed_at"]; ok {
		t.Fatalf("empty completed_at should be omitted")
	}
	var rec orderItemRecord
	if err := unmarshalMap(av, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out := fromOrderItemRecord(rec)
	if out.TechnicianPercentTotal() != 20 || len(out.AssignedTechnicians) != 2 {
		t.Fatalf("technicians lost: %+v", out.AssignedTechnicians)
	}
	if out.StartedAt == nil || !out.StartedAt.Equal(*in.StartedAt) || out.CompletedAt != nil {
		t.Fatalf("timestamps mismatch: %+v / %+v", out.StartedAt, out.CompletedAt)
	}
	if out.Status != in.Status || out.Version != in.Version || out.TotalPrice != in.TotalPrice {
		t.Fatalf("got %+v", out)
	}
}

func TestRoutingRecordKeepsNilFromDepartment(t *testing.T) {
	ev := entities.RoutingEvent{ID: "ev-1", OrderItemID: "item-1", ToDepartmentID: "dept-1", Status: entities.RoutingStatusOpen, Deadline: t0, CreatedAt: t0}
	out := fromRoutingEventRecord(toRoutingEventRecord(ev))
	if out.FromDepartmentID != nil {
		t.Fatalf("expected nil from department, got %q", *out.FromDepartmentID)
	}
	from := "dept-0"
	ev.FromDepartmentID = &from
	out = fromRoutingEventRecord(toRoutingEventRecord(ev))
	if out.FromDepartmentID == nil || *out.FromDepartmentID != from {
		t.Fatalf("from department lost")
	}
}

func TestOrderItemGetByIDNotFound(t *testing.T) {
	store := NewDynamoStore(newFakeDynamo(), testTables)
	it, err := store.Items().GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID != "" {
		t.Fatalf("expected zero item, got %+v", it)
	}
}

func TestOrderCreateAndListItemsSorted(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDynamo(), testTables)
	order := entities.Order{ID: "order-1", CustomerID: "cust-1", Version: 1, CreatedAt: t0, UpdatedAt: t0}
	second := sampleItem()
	second.ID, second.LineNumber = "item-2", 2
	first := sampleItem()

	if _, err := store.Orders().Create(ctx, order, []entities.OrderItem{second, first}); err != nil {
		t.Fatalf("create: %v", err)
	}
	items, err := store.Items().ListByOrderID(ctx, "order-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "item-1" || items[1].ID != "item-2" {
		t.Fatalf("unexpected order: %+v", items)
	}
	got, err := store.Orders().GetByID(ctx, "order-1")
	if err != nil || got.CustomerID != "cust-1" {
		t.Fatalf("get order: %+v %v", got, err)
	}
}

func TestOrderCreateConditionFailureIsConflict(t *testing.T) {
	fake := newFakeDynamo()
	fake.txErr = conditionCancelled()
	store := NewDynamoStore(fake, testTables)
	_, err := store.Orders().Create(context.Background(), entities.Order{ID: "order-1"}, nil)
	if !errors.Is(err, entities.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestApplyTransitionWrites(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, testTables)
	it := sampleItem()
	closed := entities.RoutingEvent{ID: "ev-1", OrderItemID: it.ID, ToDepartmentID: "dept-1", Status: entities.RoutingStatusClosed}
	opened := entities.RoutingEvent{ID: "ev-2", OrderItemID: it.ID, ToDepartmentID: "dept-2", Status: entities.RoutingStatusOpen}

	err := store.Items().ApplyTransition(context.Background(), interfaces.ItemTransition{
		Items:        []entities.OrderItem{it},
		CloseRouting: []entities.RoutingEvent{closed},
		OpenRouting:  &opened,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(fake.txs) != 1 || len(fake.txs[0]) != 3 {
		t.Fatalf("expected one transaction with 3 writes, got %+v", fake.txs)
	}

	itemPut := fake.txs[0][0].Put
	if aws.ToString(itemPut.ConditionExpression) != "#version = :expected_version" {
		t.Fatalf("item condition: %s", aws.ToString(itemPut.ConditionExpression))
	}
	if v := itemPut.Item["version"].(*types.AttributeValueMemberN).Value; v != "4" {
		t.Fatalf("expected stored version 4, got %s", v)
	}
	if v := itemPut.ExpressionAttributeValues[":expected_version"].(*types.AttributeValueMemberN).Value; v != "3" {
		t.Fatalf("expected version check against 3, got %s", v)
	}
	if c := aws.ToString(fake.txs[0][1].Put.ConditionExpression); c != "#status = :open" {
		t.Fatalf("close condition: %s", c)
	}
	if c := aws.ToString(fake.txs[0][2].Put.ConditionExpression); c != "attribute_not_exists(#id)" {
		t.Fatalf("open condition: %s", c)
	}
}

func TestApplyTransitionConditionFailure(t *testing.T) {
	fake := newFakeDynamo()
	fake.txErr = conditionCancelled()
	store := NewDynamoStore(fake, testTables)
	err := store.Items().ApplyTransition(context.Background(), interfaces.ItemTransition{Items: []entities.OrderItem{sampleItem()}})
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected concurrent modification, got %v", err)
	}
}

func TestApplyTransitionOtherErrorIsWrapped(t *testing.T) {
	fake := newFakeDynamo()
	fake.txErr = errors.New("throttled")
	store := NewDynamoStore(fake, testTables)
	err := store.Items().ApplyTransition(context.Background(), interfaces.ItemTransition{Items: []entities.OrderItem{sampleItem()}})
	if err == nil || errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected plain error, got %v", err)
	}
}

func TestExtensionCreateConflictWhenPending(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, testTables)
	av, _ := marshalMap(toOrderRecord(entities.Order{ID: "order-1", PendingExtensionID: "ext-0", Version: 2}))
	fake.put(testTables.Orders, av)
	fake.txErr = conditionCancelled()

	_, err := store.Extensions().Create(ctx,
		entities.ExtensionRequest{ID: "ext-1", OrderID: "order-1", Status: entities.ExtensionStatusPending},
		entities.Order{ID: "order-1", PendingExtensionID: "ext-1", Version: 2})
	if !errors.Is(err, entities.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestExtensionCreateVersionRace(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, testTables)
	av, _ := marshalMap(toOrderRecord(entities.Order{ID: "order-1", Version: 5}))
	fake.put(testTables.Orders, av)
	fake.txErr = conditionCancelled()

	_, err := store.Extensions().Create(ctx,
		entities.ExtensionRequest{ID: "ext-1", OrderID: "order-1", Status: entities.ExtensionStatusPending},
		entities.Order{ID: "order-1", PendingExtensionID: "ext-1", Version: 4})
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected concurrent modification, got %v", err)
	}
}

func TestExtensionResolveAlreadyDecided(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, testTables)
	av, _ := marshalMap(toExtensionRequestRecord(entities.ExtensionRequest{ID: "ext-1", OrderID: "order-1", Status: entities.ExtensionStatusApproved}))
	fake.put(testTables.Extensions, av)
	fake.txErr = conditionCancelled()

	err := store.Extensions().Resolve(ctx,
		entities.ExtensionRequest{ID: "ext-1", OrderID: "order-1", Status: entities.ExtensionStatusRejected},
		entities.Order{ID: "order-1", Version: 3})
	if !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestInvoiceCreateLinksOrder(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, testTables)
	inv := entities.Invoice{ID: "inv-1", OrderID: "order-1", Amount: 1000, Status: entities.InvoiceStatusIssued, Version: 1, CreatedAt: t0}
	if _, err := store.Invoices().Create(context.Background(), inv); err != nil {
		t.Fatalf("create: %v", err)
	}
	update := fake.txs[0][1].Update
	if update == nil || aws.ToString(update.TableName) != testTables.Orders {
		t.Fatalf("expected order update, got %+v", fake.txs[0][1])
	}
	if c := aws.ToString(update.ConditionExpression); c != "attribute_exists(#id) AND attribute_not_exists(#active)" {
		t.Fatalf("condition: %s", c)
	}
}

func TestInvoiceCreateConflictWhenActive(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, testTables)
	av, _ := marshalMap(toOrderRecord(entities.Order{ID: "order-1", ActiveInvoiceID: "inv-0", Version: 2}))
	fake.put(testTables.Orders, av)
	fake.txErr = conditionCancelled()

	_, err := store.Invoices().Create(context.Background(), entities.Invoice{ID: "inv-1", OrderID: "order-1"})
	if !errors.Is(err, entities.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestMarkPaidWritesInvoiceAndCommissions(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, testTables)
	paidAt := t0
	inv := entities.Invoice{ID: "inv-1", OrderID: "order-1", Amount: 10000, Status: entities.InvoiceStatusPaid, PaidAt: &paidAt, Version: 1}
	cs := []entities.Commission{
		{ID: "c-2", UserID: "tech-1", InvoiceID: "inv-1", LineItemID: "item-1", CommissionType: entities.CommissionTypeService, Amount: 1250, CreatedAt: t0},
		{ID: "c-1", UserID: "rep-1", InvoiceID: "inv-1", CommissionType: entities.CommissionTypeSale, Amount: 500, CreatedAt: t0},
	}
	if err := store.Invoices().MarkPaid(ctx, inv, cs); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if len(fake.txs[0]) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(fake.txs[0]))
	}
	if c := aws.ToString(fake.txs[0][0].Put.ConditionExpression); c != "#version = :expected_version AND #status = :issued" {
		t.Fatalf("invoice condition: %s", c)
	}

	got, err := store.Commissions().ListByInvoiceID(ctx, "inv-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].CommissionType != entities.CommissionTypeSale {
		t.Fatalf("expected sale row first, got %+v", got)
	}
	byUser, _ := store.Commissions().ListByUserID(ctx, "tech-1")
	if len(byUser) != 1 || byUser[0].Amount != 1250 {
		t.Fatalf("by user: %+v", byUser)
	}
}

func TestMarkPaidRaceIsConcurrentModification(t *testing.T) {
	fake := newFakeDynamo()
	fake.txErr = conditionCancelled()
	store := NewDynamoStore(fake, testTables)
	err := store.Invoices().MarkPaid(context.Background(), entities.Invoice{ID: "inv-1", Version: 1}, nil)
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected concurrent modification, got %v", err)
	}
}

func TestTooManyWritesRejected(t *testing.T) {
	store := NewDynamoStore(newFakeDynamo(), testTables)
	items := make([]entities.OrderItem, maxTransactItems)
	for i := range items {
		items[i] = sampleItem()
	}
	_, err := store.Orders().Create(context.Background(), entities.Order{ID: "order-1"}, items)
	if !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMarkPaidCommissionBatchLimit(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, testTables)
	inv := entities.Invoice{ID: "inv-1", OrderID: "order-1", Status: entities.InvoiceStatusPaid, Version: 1}

	// The invoice flip takes one slot of the transaction.
	cs := make([]entities.Commission, maxTransactItems)
	for i := range cs {
		cs[i] = entities.Commission{ID: fmt.Sprintf("c-%d", i), InvoiceID: "inv-1", UserID: "u"}
	}
	err := store.Invoices().MarkPaid(context.Background(), inv, cs)
	if !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fake.txs) != 0 {
		t.Fatalf("nothing may be written past the limit, got %d transactions", len(fake.txs))
	}

	if err := store.Invoices().MarkPaid(context.Background(), inv, cs[:maxTransactItems-1]); err != nil {
		t.Fatalf("largest batch that fits: %v", err)
	}
}

func TestWorkflowCreateListAndDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDynamo(), testTables)
	wf := entities.WorkflowDefinition{
		ID:        "wf-1",
		Name:      "Standard",
		Steps: []entities.WorkflowStep{
			{ID: "st-1", StepOrder: 1, Name: "Intake", DepartmentID: "dept-1", EstimatedDurationHours: 4, IsRequired: true},
			{ID: "st-2", StepOrder: 2, Name: "Polish", DepartmentID: "dept-2"},
		},
		CreatedAt: t0,
	}
	if _, err := store.Workflows().Create(ctx, wf); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Workflows().Create(ctx, wf); !errors.Is(err, entities.ErrConflict) {
		t.Fatalf("expected conflict on duplicate, got %v", err)
	}
	list, err := store.Workflows().List(ctx)
	if err != nil || len(list) != 1 || list[0].Steps[0].DepartmentID != "dept-1" {
		t.Fatalf("list: %+v %v", list, err)
	}
	steps := list[0].Steps
	if steps[0].ID != "st-1" || !steps[0].IsRequired || steps[1].IsRequired {
		t.Fatalf("step id or required flag lost: %+v", steps)
	}
}

func TestEnsureTablesIgnoresExisting(t *testing.T) {
	fake := newFakeDynamo()
	fake.created = []string{testTables.Orders}
	store := NewDynamoStore(fake, testTables)
	if err := store.EnsureTables(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if len(fake.created) != 7 {
		t.Fatalf("expected 7 tables, got %v", fake.created)
	}
}
